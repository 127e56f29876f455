package engine

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/vi-snake/constants"
)

// ErrPlacementExhausted is returned when rejection sampling cannot find a free cell
// within MaxPlacementAttempts draws
var ErrPlacementExhausted = errors.New("placement attempts exhausted")

// Rand is the random source consumed by the generators
// *golang.org/x/exp/rand.Rand satisfies it
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// randomCell draws a uniformly distributed board cell
func randomCell(rng Rand) Cell {
	return Cell{
		X: rng.Intn(constants.GridSize),
		Y: rng.Intn(constants.GridSize),
	}
}

// RollFoodKind draws a food kind, special with probability SpecialFoodChance
// Each roll is independent of position and of previous rolls
func RollFoodKind(rng Rand) FoodKind {
	if rng.Float64() < constants.SpecialFoodChance {
		return FoodSpecial
	}
	return FoodNormal
}

// GenerateFood places a food item on a cell free of snake and barriers
func GenerateFood(rng Rand, snake []Cell, barriers mapset.Set[Cell]) (Food, error) {
	for attempt := 0; attempt < constants.MaxPlacementAttempts; attempt++ {
		c := randomCell(rng)
		if containsCell(snake, c) || barriers.Has(c) {
			continue
		}
		return Food{Cell: c, Kind: RollFoodKind(rng)}, nil
	}
	return Food{}, fmt.Errorf("generate food: %w", ErrPlacementExhausted)
}

// BarrierCount returns the number of barriers for a phase: phase+1 capped at MaxBarriers
func BarrierCount(phase int) int {
	return min(phase+1, constants.MaxBarriers)
}

// GenerateBarriers picks BarrierCount(phase) distinct cells, none of which is in avoid
func GenerateBarriers(rng Rand, phase int, avoid []Cell) (mapset.Set[Cell], error) {
	count := BarrierCount(phase)
	barriers := mapset.New[Cell]()

	attempts := 0
	for barriers.Size() < count {
		if attempts >= constants.MaxPlacementAttempts {
			return barriers, fmt.Errorf("generate %d barriers for phase %d: %w", count, phase, ErrPlacementExhausted)
		}
		attempts++

		c := randomCell(rng)
		if barriers.Has(c) || containsCell(avoid, c) {
			continue
		}
		barriers.Put(c)
	}
	return barriers, nil
}

func containsCell(cells []Cell, c Cell) bool {
	for _, s := range cells {
		if s == c {
			return true
		}
	}
	return false
}
