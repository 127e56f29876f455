package constants

import "time"

// Board
const (
	// GridSize is the width and height of the square board in cells
	GridSize = 20

	// InitialSnakeX, InitialSnakeY is the single-cell snake position on a new game
	InitialSnakeX = 5
	InitialSnakeY = 5

	// InitialFoodX, InitialFoodY is the food position on a new game
	InitialFoodX = 10
	InitialFoodY = 10
)

// Phases
const (
	// NumPhases is the number of difficulty phases, phase index is capped at NumPhases-1
	NumPhases = 15

	// PhaseScoreStep is the score span of one phase; phase p advances at score >= (p+1)*PhaseScoreStep
	PhaseScoreStep = 5

	// MaxBarriers caps the barrier count, reached from phase MaxBarriers-1 onward
	MaxBarriers = 10
)

// Food
const (
	// NormalFoodScore is awarded for a normal food item
	NormalFoodScore = 1

	// SpecialFoodScore is awarded for a special food item
	SpecialFoodScore = 5

	// SpecialFoodChance is the probability of a newly generated food being special
	SpecialFoodChance = 0.1
)

// Tick timing
const (
	// InitialTickInterval is the delay between simulation ticks on a new game
	InitialTickInterval = 150 * time.Millisecond

	// MinTickInterval is the hard floor of the speed ratchet
	MinTickInterval = 50 * time.Millisecond

	// TickIntervalStep is subtracted each time the score lands on a multiple of SpeedUpScoreStep
	TickIntervalStep = 5 * time.Millisecond

	// SpeedUpScoreStep is the score multiple that triggers a speed-up
	SpeedUpScoreStep = 5
)

// Placement
const (
	// MaxPlacementAttempts bounds rejection sampling for food and barriers
	MaxPlacementAttempts = 100_000
)

// Frame loop
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// InputEventBuffer is the capacity of the terminal event channel
	InputEventBuffer = 64
)
