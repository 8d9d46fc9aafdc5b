package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/term-snake/constants"
	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/engine"
)

// TerminalRenderer draws board snapshots to a tcell screen
// Each grid cell takes two columns: the glyph and a spacer
type TerminalRenderer struct {
	screen tcell.Screen
	styles Styles
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer(screen tcell.Screen, styles Styles) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		styles: styles,
	}
}

// Render draws the grid, the head and, when dead, the game over banner
func (r *TerminalRenderer) Render(snap engine.Snapshot) {
	r.screen.Clear()

	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			glyph, style := r.cellGlyph(snap.Cells[y*snap.Width+x])
			r.setCell(x, y, glyph, style)
		}
	}

	r.setCell(snap.Head.X, snap.Head.Y, constants.GlyphHead, r.styles.Head)

	if snap.Status == engine.Dead {
		r.drawGameOver(snap.Width, snap.Height)
	}

	r.screen.Show()
}

// cellGlyph returns the glyph and style of a cell state
func (r *TerminalRenderer) cellGlyph(c engine.CellState) (rune, tcell.Style) {
	switch {
	case c == engine.CellApple:
		return constants.GlyphApple, r.styles.Apple
	case c.IsTrail():
		return constants.GlyphTrail, r.styles.Trail
	default:
		return constants.GlyphEmpty, r.styles.Empty
	}
}

// setCell writes a glyph and its spacer column
func (r *TerminalRenderer) setCell(x, y int, glyph rune, style tcell.Style) {
	col := x * constants.CellColumns
	r.screen.SetContent(col, y, glyph, nil, style)
	r.screen.SetContent(col+1, y, ' ', nil, style)
}

// drawGameOver centers the banner on the middle row, one letter per cell
func (r *TerminalRenderer) drawGameOver(width, height int) {
	origin := BannerOrigin(width, height)
	for i, ch := range []rune(constants.GameOverMessage) {
		x := origin.X + i
		if x < 0 || x >= width {
			continue
		}
		r.setCell(x, origin.Y, ch, r.styles.GameOver)
	}
}

// BannerOrigin returns the grid cell where the game over banner begins
func BannerOrigin(width, height int) core.Point {
	n := len([]rune(constants.GameOverMessage))
	return core.Point{X: width/2 - n/2, Y: height / 2}
}
