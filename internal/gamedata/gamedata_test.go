package gamedata

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gridrealm/internal/world"
)

func TestLoadGlyphs(t *testing.T) {
	glyphs, err := LoadGlyphs()
	if err != nil {
		t.Fatalf("LoadGlyphs: %v", err)
	}
	if len(glyphs) == 0 {
		t.Fatal("no glyphs loaded")
	}

	house, ok := GlyphByID(glyphs, "house")
	if !ok {
		t.Fatal("house glyph missing")
	}
	if len(house.Art) == 0 {
		t.Error("house glyph has no art rows")
	}
	if house.ArtString() == "" {
		t.Error("ArtString should join art rows")
	}
}

func TestLoadLevels(t *testing.T) {
	levels, err := LoadLevels()
	if err != nil {
		t.Fatalf("LoadLevels: %v", err)
	}
	if len(levels) < 2 {
		t.Fatalf("expected multiple levels, got %d", len(levels))
	}

	ids := make(map[string]*LevelDef, len(levels))
	for i := range levels {
		ids[levels[i].ID] = &levels[i]
	}

	over, ok := ids["overworld"]
	if !ok {
		t.Fatal("overworld level missing")
	}
	if over.Generator != GeneratorMaze {
		t.Errorf("overworld generator = %q, want %q", over.Generator, GeneratorMaze)
	}
	if over.WallSymbol() != world.SymbolWall || over.FloorSymbol() != world.SymbolFloor {
		t.Error("overworld symbols should default to # and .")
	}

	// Every portal must point at a defined level with an in-bounds spawn.
	for _, l := range levels {
		for _, p := range l.Portals {
			dest, ok := ids[p.Destination]
			if !ok {
				t.Fatalf("level %q portal %q dangles", l.ID, p.Symbol)
			}
			if p.SpawnRow < 0 || p.SpawnRow >= dest.Height ||
				p.SpawnCol < 0 || p.SpawnCol >= dest.Width {
				t.Errorf("level %q portal %q spawn (%d,%d) outside %q",
					l.ID, p.Symbol, p.SpawnRow, p.SpawnCol, dest.ID)
			}
			if p.Row < 0 || p.Row >= l.Height || p.Col < 0 || p.Col >= l.Width {
				t.Errorf("level %q portal %q cell (%d,%d) out of bounds",
					l.ID, p.Symbol, p.Row, p.Col)
			}
		}
	}
}

func TestLevelBlockerSymbols(t *testing.T) {
	l := LevelDef{Blockers: []string{"#", "║"}}

	got := l.BlockerSymbols()
	if len(got) != 2 || got[0] != '#' || got[1] != '║' {
		t.Errorf("BlockerSymbols = %v", got)
	}
}

func TestSymbolColors(t *testing.T) {
	glyphs := []GlyphDef{
		{ID: "tree", Art: []string{" ^ ", "^^^", " | "}, Color: "#228B22"},
		{ID: "bed", Art: []string{"╓╖", "▒▒"}, Color: "#87CEEB"},
	}

	colors := SymbolColors(glyphs)

	if got, ok := colors['^']; !ok || got != tcell.NewRGBColor(0x22, 0x8B, 0x22) {
		t.Errorf("colors['^'] = %v, %v; want tree green", got, ok)
	}
	if got, ok := colors['▒']; !ok || got != tcell.NewRGBColor(0x87, 0xCE, 0xEB) {
		t.Errorf("colors['▒'] = %v, %v; want bed blue", got, ok)
	}
	if _, ok := colors[world.SymbolSpace]; ok {
		t.Error("transparent space cells should not get a color")
	}
}

func TestParseHexColor(t *testing.T) {
	if _, err := ParseHexColor("#228B22"); err != nil {
		t.Errorf("valid color rejected: %v", err)
	}
	if _, err := ParseHexColor("nope"); err == nil {
		t.Error("invalid color accepted")
	}
}
