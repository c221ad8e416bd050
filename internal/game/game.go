package game

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/gridrealm/internal/engine"
	"github.com/samdwyer/gridrealm/internal/entity"
	"github.com/samdwyer/gridrealm/internal/gamedata"
	"github.com/samdwyer/gridrealm/internal/ui"
	"github.com/samdwyer/gridrealm/internal/world"
)

// Game holds the entire game state: the screen, the assembled world, the
// player, and the per-entity footprints the placer hands back each turn.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	cfg      Config
	log      logrus.FieldLogger

	world     *World
	player    *entity.Entity
	playerFP  engine.Footprint
	registry  *engine.Registry
	turnCount *turnCounter

	state   State
	running bool
}

// turnCounter is the demo registry system: it just counts turns for the
// status line.
type turnCounter struct {
	turns int
}

func (c *turnCounter) Update() { c.turns++ }

// New creates a new game instance.
func New(cfg Config, log logrus.FieldLogger) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		cfg:      cfg,
		log:      log,
		state:    StateExplore,
		running:  true,
	}, nil
}

// Run builds the world and executes the main loop: render, poll one
// event, run one turn.
func (g *Game) Run(ctx context.Context) error {
	w, err := BuildWorld(ctx, g.cfg)
	if err != nil {
		return fmt.Errorf("build world: %w", err)
	}
	g.world = w
	g.renderer.SetSymbolColors(gamedata.SymbolColors(w.Glyphs))

	startGrid, startPos := w.StartGrid()
	g.player = entity.NewPlayer(startGrid, startPos, '@')
	g.playerFP = engine.Place(startGrid, g.player)

	g.turnCount = &turnCounter{}
	g.registry = engine.NewRegistry()
	g.registry.Register("clock", g.turnCount)

	g.log.WithFields(logrus.Fields{
		"levels": len(w.Grids),
		"start":  w.StartLevel,
	}).Info("world built")

	for g.running {
		g.render()
		g.handleInput(ctx)
	}

	g.screen.Close()
	return nil
}

// render draws the player's active grid and a status line.
func (g *Game) render() {
	level, _ := g.world.LevelOf(g.player.Grid)
	status := fmt.Sprintf("[%s] %s  turn %d", g.state, level, g.turnCount.turns)
	if g.state == StateEditor {
		if sel, ok := g.selectedElement(); ok {
			status += fmt.Sprintf("  dragging %s", sel.ID[:8])
		}
	}
	g.renderer.Render(g.player.Grid, status)
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input for both modes.
func (g *Game) handleKeyEvent(_ context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
		return

	case tcell.KeyUp:
		g.step(world.DeltaUp)
		return
	case tcell.KeyDown:
		g.step(world.DeltaDown)
		return
	case tcell.KeyLeft:
		g.step(world.DeltaLeft)
		return
	case tcell.KeyRight:
		g.step(world.DeltaRight)
		return

	case tcell.KeyTab:
		if g.state == StateEditor {
			if set, ok := g.activeElements(); ok {
				set.Next()
			}
		}
		return
	}

	switch ev.Rune() {
	case 'q', 'Q':
		g.running = false
	case 'w', 'W':
		g.step(world.DeltaUp)
	case 's', 'S':
		g.step(world.DeltaDown)
	case 'a', 'A':
		g.step(world.DeltaLeft)
	case 'd', 'D':
		g.step(world.DeltaRight)
	case 'e', 'E':
		g.toggleEditor()
	}
}

// toggleEditor switches between explore and editor mode when the active
// level has editor elements.
func (g *Game) toggleEditor() {
	if g.state == StateEditor {
		g.state = StateExplore
		return
	}
	if set, ok := g.activeElements(); ok && set.Len() > 0 {
		g.state = StateEditor
	}
}

// activeElements returns the element set for the player's current level.
func (g *Game) activeElements() (*entity.ElementSet, bool) {
	level, ok := g.world.LevelOf(g.player.Grid)
	if !ok {
		return nil, false
	}
	set, ok := g.world.Elements[level]
	return set, ok
}

// selectedElement returns the editor's currently selected element.
func (g *Game) selectedElement() (*entity.Entity, bool) {
	set, ok := g.activeElements()
	if !ok {
		return nil, false
	}
	return set.Selected()
}

// step runs one turn for whichever entity the current mode drives.
func (g *Game) step(d world.Delta) {
	deps := engine.TurnDeps{
		Blockers:    g.world.Blockers,
		Transitions: g.world.Transitions,
		Worlds:      g.world.Set,
		Registry:    g.registry,
		Log:         g.log,
	}

	if g.state == StateEditor {
		sel, ok := g.selectedElement()
		if !ok {
			return
		}
		// Dragged elements never ride portals; their bounds rect keeps
		// them inside the walls.
		deps.Transitions = nil
		// The player glyph was placed after every element, so footprints
		// must unwind in reverse order: lift the player before touching
		// an element that may sit under it, redraw on top afterwards.
		engine.Remove(g.player.Grid, g.playerFP)
		rep := engine.Turn(sel, d, g.world.Footprints[sel.ID], deps)
		g.world.Footprints[sel.ID] = rep.Footprint
		g.playerFP = engine.Place(g.player.Grid, g.player)
		return
	}

	deps.Occupancy = g.occupancyExcludingPlayer()
	rep := engine.Turn(g.player, d, g.playerFP, deps)
	g.playerFP = rep.Footprint
	if rep.Err != nil {
		g.log.WithError(rep.Err).Error("turn failed")
	}
	if rep.Transitioned {
		level, _ := g.world.LevelOf(g.player.Grid)
		g.log.WithField("level", level).Info("entered level")
	}
}

// occupancyExcludingPlayer gathers every other entity for collision
// checks.
func (g *Game) occupancyExcludingPlayer() []*entity.Entity {
	var out []*entity.Entity
	for _, set := range g.world.Elements {
		out = append(out, set.Elements()...)
	}
	return out
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
