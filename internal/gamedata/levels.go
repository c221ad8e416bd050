package gamedata

import (
	"fmt"

	"github.com/samdwyer/gridrealm/internal/world"
)

// Generator names accepted by a level definition.
const (
	// GeneratorMaze fills the level with walls and carves a maze.
	GeneratorMaze = "maze"
	// GeneratorBordered builds an open floor enclosed by a box border,
	// the house-editor layout.
	GeneratorBordered = "bordered"
)

// PortalDef places a transition on a level: stepping on Symbol relocates
// the player to the spawn cell on the destination level.
type PortalDef struct {
	Symbol      string `json:"symbol"`      // Single-character portal symbol
	Destination string `json:"destination"` // Target level id
	SpawnRow    int    `json:"spawnRow"`    // Arrival row on the target level
	SpawnCol    int    `json:"spawnCol"`    // Arrival column on the target level
	Row         int    `json:"row"`         // Portal cell row on this level
	Col         int    `json:"col"`         // Portal cell column on this level
}

// ElementDef places a glyph on a level at load time.
type ElementDef struct {
	Glyph string `json:"glyph"` // Glyph id from glyphs.json
	Row   int    `json:"row"`
	Col   int    `json:"col"`
}

// LevelDef defines one map, its generator, and its wiring to other maps.
type LevelDef struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Width     int          `json:"width"`
	Height    int          `json:"height"`
	Generator string       `json:"generator"`
	Seed      int64        `json:"seed"`
	Wall      string       `json:"wall"`
	Floor     string       `json:"floor"`
	Blockers  []string     `json:"blockers"`
	Portals   []PortalDef  `json:"portals"`
	Elements  []ElementDef `json:"elements"`
	StartRow  int          `json:"startRow"` // Player spawn when this is the first level
	StartCol  int          `json:"startCol"`
}

// WallSymbol returns the wall symbol, defaulting to '#'.
func (l *LevelDef) WallSymbol() world.Symbol {
	return symbolOrDefault(l.Wall, world.SymbolWall)
}

// FloorSymbol returns the floor symbol, defaulting to '.'.
func (l *LevelDef) FloorSymbol() world.Symbol {
	return symbolOrDefault(l.Floor, world.SymbolFloor)
}

// BlockerSymbols returns the level's impassable symbols.
func (l *LevelDef) BlockerSymbols() []world.Symbol {
	out := make([]world.Symbol, 0, len(l.Blockers))
	for _, b := range l.Blockers {
		out = append(out, symbolOrDefault(b, world.SymbolWall))
	}
	return out
}

func symbolOrDefault(s string, def world.Symbol) world.Symbol {
	runes := []rune(s)
	if len(runes) == 0 {
		return def
	}
	return world.Symbol(runes[0])
}

// LevelsFile represents the structure of levels.json.
type LevelsFile struct {
	Levels []LevelDef `json:"levels"`
}

// LoadLevels loads level definitions from the embedded levels.json and
// validates the cross-level wiring: ids must be unique and every portal
// destination must name a defined level.
func LoadLevels() ([]LevelDef, error) {
	file, err := Load[LevelsFile]("levels.json")
	if err != nil {
		return nil, err
	}
	if len(file.Levels) == 0 {
		return nil, fmt.Errorf("no levels defined in levels.json")
	}

	ids := make(map[string]bool, len(file.Levels))
	for _, l := range file.Levels {
		if ids[l.ID] {
			return nil, fmt.Errorf("duplicate level id %q in levels.json", l.ID)
		}
		ids[l.ID] = true
	}
	for _, l := range file.Levels {
		for _, p := range l.Portals {
			if !ids[p.Destination] {
				return nil, fmt.Errorf("level %q portal %q points at undefined level %q",
					l.ID, p.Symbol, p.Destination)
			}
		}
	}
	return file.Levels, nil
}
