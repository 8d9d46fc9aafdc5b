package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions for board glyphs
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbHead       = tcell.NewRGBColor(50, 255, 50)   // Bright Green
	RgbTrail      = tcell.NewRGBColor(0, 170, 0)     // Normal Green
	RgbApple      = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbGameOver   = tcell.NewRGBColor(255, 255, 255) // White
	RgbGameOverBg = tcell.NewRGBColor(200, 50, 50)   // Red banner
)

// Styles holds the style of each glyph class
type Styles struct {
	Empty    tcell.Style
	Head     tcell.Style
	Trail    tcell.Style
	Apple    tcell.Style
	GameOver tcell.Style
}

// DefaultStyles returns the colored palette
func DefaultStyles() Styles {
	base := tcell.StyleDefault.Background(RgbBackground)
	return Styles{
		Empty:    base,
		Head:     base.Foreground(RgbHead).Bold(true),
		Trail:    base.Foreground(RgbTrail),
		Apple:    base.Foreground(RgbApple).Bold(true),
		GameOver: tcell.StyleDefault.Foreground(RgbGameOver).Background(RgbGameOverBg).Bold(true),
	}
}

// MonoStyles returns terminal-default styles for terminals without color
func MonoStyles() Styles {
	return Styles{
		Empty:    tcell.StyleDefault,
		Head:     tcell.StyleDefault.Bold(true),
		Trail:    tcell.StyleDefault,
		Apple:    tcell.StyleDefault.Bold(true),
		GameOver: tcell.StyleDefault.Reverse(true),
	}
}
