package engine

import "github.com/lixenwraith/vi-snake/constants"

// BackgroundIndex selects the board background theme for a phase
func BackgroundIndex(phase int) int {
	return phase % constants.BackgroundPaletteSize
}

// FoodColorIndex selects the food color for a phase
func FoodColorIndex(phase int) int {
	return phase % constants.FoodPaletteSize
}
