package constants

// Board glyphs
const (
	GlyphHead  = 'O'
	GlyphTrail = 'o'
	GlyphApple = '@'
	GlyphEmpty = ' '
)

// GameOverMessage is drawn centered over the grid when the snake dies
const GameOverMessage = "Game Over!"
