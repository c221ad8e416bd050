package game

import (
	"context"
	"fmt"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gridrealm/internal/engine"
	"github.com/samdwyer/gridrealm/internal/entity"
	"github.com/samdwyer/gridrealm/internal/gamedata"
	"github.com/samdwyer/gridrealm/internal/telemetry"
	"github.com/samdwyer/gridrealm/internal/world"
)

// World bundles the live grids with the per-grid collaborators the engine
// needs every turn: blocker sets, portal tables, and the live-grid set.
type World struct {
	Grids       map[string]*world.Grid
	Defs        map[string]*gamedata.LevelDef
	Glyphs      []gamedata.GlyphDef
	Blockers    map[*world.Grid]engine.BlockerSet
	Transitions map[*world.Grid]*engine.TransitionTable
	Set         *engine.WorldSet
	Elements    map[string]*entity.ElementSet
	Footprints  map[string]engine.Footprint
	StartLevel  string
}

// LevelOf returns the level id owning the given grid.
func (w *World) LevelOf(g *world.Grid) (string, bool) {
	for id, grid := range w.Grids {
		if grid == g {
			return id, true
		}
	}
	return "", false
}

// StartGrid returns the first level's grid and player spawn point.
func (w *World) StartGrid() (*world.Grid, world.Point) {
	def := w.Defs[w.StartLevel]
	return w.Grids[w.StartLevel], world.Point{Row: def.StartRow, Col: def.StartCol}
}

// BuildWorld assembles every level from the embedded definitions: grids
// are generated, portal symbols stamped, transition tables wired, and
// editor elements placed.
func BuildWorld(ctx context.Context, cfg Config) (*World, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "world.build")
	defer span.End()

	defs, err := gamedata.LoadLevels()
	if err != nil {
		return nil, err
	}
	glyphs, err := gamedata.LoadGlyphs()
	if err != nil {
		return nil, err
	}

	seed := cfg.EffectiveSeed()

	w := &World{
		Grids:       make(map[string]*world.Grid, len(defs)),
		Defs:        make(map[string]*gamedata.LevelDef, len(defs)),
		Glyphs:      glyphs,
		Blockers:    make(map[*world.Grid]engine.BlockerSet),
		Transitions: make(map[*world.Grid]*engine.TransitionTable),
		Set:         engine.NewWorldSet(),
		Elements:    make(map[string]*entity.ElementSet),
		Footprints:  make(map[string]engine.Footprint),
		StartLevel:  defs[0].ID,
	}

	// First pass: generate every grid so transition targets exist.
	for i := range defs {
		def := &defs[i]
		g, err := buildGrid(ctx, def, seed)
		if err != nil {
			return nil, err
		}
		w.Grids[def.ID] = g
		w.Defs[def.ID] = def
		w.Blockers[g] = engine.NewBlockerSet(def.BlockerSymbols()...)
		w.Set.Add(g)
	}

	// Second pass: stamp portals, wire transitions, place elements.
	for i := range defs {
		def := &defs[i]
		g := w.Grids[def.ID]

		tbl := engine.NewTransitionTable()
		for _, p := range def.Portals {
			sym := world.Symbol([]rune(p.Symbol)[0])
			cell := world.Point{Row: p.Row, Col: p.Col}
			if err := g.Set(cell, sym); err != nil {
				return nil, fmt.Errorf("level %q portal %q: %w", def.ID, p.Symbol, err)
			}
			dest := w.Grids[p.Destination]
			spawn := world.Point{Row: p.SpawnRow, Col: p.SpawnCol}
			tbl.Register(engine.NewTransitionLink(sym, dest, spawn))
		}
		w.Transitions[g] = tbl

		set := entity.NewElementSet(g)
		for _, ed := range def.Elements {
			glyph, ok := gamedata.GlyphByID(glyphs, ed.Glyph)
			if !ok {
				return nil, fmt.Errorf("level %q references unknown glyph %q", def.ID, ed.Glyph)
			}
			e := entity.NewElement(g, world.Point{Row: ed.Row, Col: ed.Col},
				entity.NewArt(glyph.ArtString()))
			set.Add(e)
			w.Footprints[e.ID] = engine.Place(g, e)
		}
		w.Elements[def.ID] = set
	}

	span.SetAttributes(
		attribute.Int("world.levels", len(defs)),
		attribute.Int64("world.seed", seed),
		attribute.String("world.start_level", w.StartLevel),
	)
	return w, nil
}

// buildGrid generates one level's grid from its definition.
func buildGrid(ctx context.Context, def *gamedata.LevelDef, seed int64) (*world.Grid, error) {
	switch def.Generator {
	case gamedata.GeneratorBordered:
		return world.NewBorderedGrid(def.Width, def.Height, def.FloorSymbol()), nil

	case gamedata.GeneratorMaze, "":
		g := world.NewGrid(def.Width, def.Height, def.WallSymbol())
		rng := rand.New(rand.NewSource(seed + def.Seed))
		gen := world.NewMazeGenerator(rng)
		start := world.Point{Row: def.StartRow, Col: def.StartCol}
		if err := gen.Carve(ctx, g, start, def.WallSymbol(), def.FloorSymbol()); err != nil {
			return nil, fmt.Errorf("level %q: %w", def.ID, err)
		}
		return g, nil

	default:
		return nil, fmt.Errorf("level %q has unknown generator %q", def.ID, def.Generator)
	}
}
