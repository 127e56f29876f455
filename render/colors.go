package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/constants"
)

// Board and chrome colors
var (
	RgbSnakeHead  = tcell.NewRGBColor(50, 255, 50)   // Bright Green
	RgbSnakeBody  = tcell.NewRGBColor(0, 200, 0)     // Normal Green
	RgbBarrier    = tcell.NewRGBColor(180, 180, 180) // Light gray
	RgbBorder     = tcell.NewRGBColor(120, 120, 140) // Muted slate
	RgbStatusText = tcell.NewRGBColor(255, 255, 255) // White
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbOverlayBg  = tcell.NewRGBColor(0, 0, 0)       // Black
	RgbGameOver   = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbHint       = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbMuted      = tcell.NewRGBColor(255, 165, 0)   // Orange
)

// foodPalette holds one food color per phase theme
var foodPalette = [constants.FoodPaletteSize]tcell.Color{
	tcell.NewRGBColor(255, 0, 0),     // red
	tcell.NewRGBColor(255, 165, 0),   // orange
	tcell.NewRGBColor(255, 255, 0),   // yellow
	tcell.NewRGBColor(0, 200, 0),     // green
	tcell.NewRGBColor(60, 100, 255),  // blue
	tcell.NewRGBColor(128, 0, 128),   // purple
	tcell.NewRGBColor(255, 192, 203), // pink
	tcell.NewRGBColor(0, 255, 255),   // cyan
	tcell.NewRGBColor(255, 0, 255),   // magenta
	tcell.NewRGBColor(50, 205, 50),   // lime
	tcell.NewRGBColor(0, 128, 128),   // teal
	tcell.NewRGBColor(75, 0, 130),    // indigo
	tcell.NewRGBColor(238, 130, 238), // violet
	tcell.NewRGBColor(139, 69, 19),   // brown
	tcell.NewRGBColor(128, 128, 128), // grey
}

// backgroundPalette holds one dark board background per phase theme
var backgroundPalette = [constants.BackgroundPaletteSize]tcell.Color{
	tcell.NewRGBColor(26, 27, 38),
	tcell.NewRGBColor(30, 20, 40),
	tcell.NewRGBColor(20, 32, 36),
	tcell.NewRGBColor(38, 24, 24),
	tcell.NewRGBColor(22, 36, 22),
	tcell.NewRGBColor(18, 22, 44),
	tcell.NewRGBColor(40, 30, 18),
	tcell.NewRGBColor(34, 18, 34),
	tcell.NewRGBColor(16, 34, 30),
	tcell.NewRGBColor(36, 36, 20),
	tcell.NewRGBColor(28, 28, 28),
	tcell.NewRGBColor(44, 20, 30),
	tcell.NewRGBColor(20, 26, 44),
	tcell.NewRGBColor(32, 40, 24),
	tcell.NewRGBColor(12, 12, 16),
}

// FoodColor returns the food color for a theme index, wrapping out-of-range values
func FoodColor(index int) tcell.Color {
	return foodPalette[wrap(index, len(foodPalette))]
}

// BackgroundColor returns the board background for a theme index, wrapping out-of-range values
func BackgroundColor(index int) tcell.Color {
	return backgroundPalette[wrap(index, len(backgroundPalette))]
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
