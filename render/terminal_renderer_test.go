package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/term-snake/constants"
	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/engine"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init failed: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func testSnapshot(w, h int) engine.Snapshot {
	return engine.Snapshot{
		Width:     w,
		Height:    h,
		Cells:     make([]engine.CellState, w*h),
		Head:      core.Point{X: w / 2, Y: h / 2},
		Direction: core.Down,
		Length:    1,
		Status:    engine.Alive,
	}
}

func runeAt(screen tcell.SimulationScreen, col, row int) rune {
	r, _, _, _ := screen.GetContent(col, row)
	return r
}

func TestRenderGlyphs(t *testing.T) {
	screen := newSimScreen(t, 20, 10)
	renderer := NewTerminalRenderer(screen, DefaultStyles())

	snap := testSnapshot(10, 10)
	snap.Cells[2*10+3] = engine.CellApple    // (3,2)
	snap.Cells[5*10+4] = engine.TrailCell(2) // (4,5)

	renderer.Render(snap)

	tests := []struct {
		name     string
		col, row int
		want     rune
	}{
		{"head", 10, 5, constants.GlyphHead},
		{"head spacer", 11, 5, ' '},
		{"apple", 6, 2, constants.GlyphApple},
		{"trail", 8, 5, constants.GlyphTrail},
		{"empty", 0, 0, constants.GlyphEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := runeAt(screen, tt.col, tt.row); got != tt.want {
				t.Errorf("rune at (%d,%d) = %q, want %q", tt.col, tt.row, got, tt.want)
			}
		})
	}
}

func TestRenderStyles(t *testing.T) {
	screen := newSimScreen(t, 20, 10)
	styles := DefaultStyles()
	renderer := NewTerminalRenderer(screen, styles)

	snap := testSnapshot(10, 10)
	snap.Cells[0] = engine.CellApple
	renderer.Render(snap)

	_, _, style, _ := screen.GetContent(0, 0)
	if style != styles.Apple {
		t.Errorf("apple style = %v, want %v", style, styles.Apple)
	}
	_, _, style, _ = screen.GetContent(10, 5)
	if style != styles.Head {
		t.Errorf("head style = %v, want %v", style, styles.Head)
	}
}

func TestRenderGameOverBanner(t *testing.T) {
	screen := newSimScreen(t, 40, 11)
	renderer := NewTerminalRenderer(screen, MonoStyles())

	snap := testSnapshot(20, 11)
	snap.Status = engine.Dead
	renderer.Render(snap)

	origin := BannerOrigin(20, 11)
	if origin != (core.Point{X: 5, Y: 5}) {
		t.Fatalf("BannerOrigin = %v, want (5,5)", origin)
	}

	for i, want := range []rune(constants.GameOverMessage) {
		col := (origin.X + i) * constants.CellColumns
		if got := runeAt(screen, col, origin.Y); got != want {
			t.Errorf("banner rune %d = %q, want %q", i, got, want)
		}
	}
}

func TestRenderNoBannerWhileAlive(t *testing.T) {
	screen := newSimScreen(t, 40, 11)
	renderer := NewTerminalRenderer(screen, MonoStyles())

	renderer.Render(testSnapshot(20, 11))

	origin := BannerOrigin(20, 11)
	if got := runeAt(screen, origin.X*constants.CellColumns, origin.Y); got == 'G' {
		t.Error("banner drawn while alive")
	}
}

func TestRenderBannerClippedOnNarrowGrid(t *testing.T) {
	screen := newSimScreen(t, 8, 3)
	renderer := NewTerminalRenderer(screen, MonoStyles())

	snap := testSnapshot(4, 3)
	snap.Status = engine.Dead

	// Must not draw outside the grid
	renderer.Render(snap)

	if got := runeAt(screen, 0, 1); got != 'e' {
		t.Errorf("first visible banner rune = %q, want 'e'", got)
	}
}
