package game

// State represents the current input mode.
type State int

const (
	// StateExplore is the default mode where movement drives the player.
	StateExplore State = iota
	// StateEditor is the placement mode where movement drags the selected
	// editor element instead.
	StateEditor
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateEditor:
		return "editor"
	default:
		return "unknown"
	}
}
