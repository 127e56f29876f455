package constants

// Board layout
const (
	// CellWidth is the number of terminal columns drawn per board cell
	// Terminal cells are roughly twice as tall as wide, two columns keep the board square
	CellWidth = 2

	// StatusLineGap is the number of rows between the board border and the status line
	StatusLineGap = 1
)

// Palette sizes, phase themes wrap with modulo
const (
	BackgroundPaletteSize = 15
	FoodPaletteSize       = 15
)

// Glyphs
const (
	GlyphSnakeHead   = '█'
	GlyphSnakeBody   = '▓'
	GlyphBarrier     = '▒'
	GlyphFoodNormal  = '●'
	GlyphFoodSpecial = '★'
	GlyphBorderH     = '─'
	GlyphBorderV     = '│'
	GlyphCornerTL    = '┌'
	GlyphCornerTR    = '┐'
	GlyphCornerBL    = '└'
	GlyphCornerBR    = '┘'
)

// Overlay text
const (
	TextGameOver    = "GAME OVER"
	TextRestartHint = "r: restart   q: quit"
	TextMuted       = "[muted]"
	TextTooSmall    = "terminal too small"
)
