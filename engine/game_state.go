package engine

import (
	"slices"
	"time"

	"github.com/zyedidia/generic/mapset"
)

// GameState is the complete simulation state of one game
// Values are replaced, never mutated in place: Snake and Barriers of a published
// state are shared by copies and must be treated as read-only
type GameState struct {
	Snake     []Cell // head first, never empty
	Food      Food
	Direction Direction // committed heading of the last completed tick
	Pending   Direction // heading adopted by the next tick
	Phase     int
	Barriers  mapset.Set[Cell]
	Score     int

	// TickInterval is the delay before the next tick, non-increasing during a game
	TickInterval time.Duration

	GameOver  bool
	Cause     Collision
	HighScore int
}

// Head returns the first snake segment
func (s GameState) Head() Cell {
	return s.Snake[0]
}

// Occupied reports whether c holds a snake segment or a barrier
func (s GameState) Occupied(c Cell) bool {
	return containsCell(s.Snake, c) || s.Barriers.Has(c)
}

// Snapshot is a read-only copy of the state for the renderer
type Snapshot struct {
	Snake        []Cell
	Food         Food
	Barriers     []Cell // sorted row-major
	Direction    Direction
	Phase        int
	Score        int
	HighScore    int
	TickInterval time.Duration
	GameOver     bool
	Cause        Collision
}

// Snapshot copies the state so the caller may hold it across ticks
func (s GameState) Snapshot() Snapshot {
	barriers := make([]Cell, 0, s.Barriers.Size())
	s.Barriers.Each(func(c Cell) {
		barriers = append(barriers, c)
	})
	slices.SortFunc(barriers, func(a, b Cell) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})

	return Snapshot{
		Snake:        slices.Clone(s.Snake),
		Food:         s.Food,
		Barriers:     barriers,
		Direction:    s.Direction,
		Phase:        s.Phase,
		Score:        s.Score,
		HighScore:    s.HighScore,
		TickInterval: s.TickInterval,
		GameOver:     s.GameOver,
		Cause:        s.Cause,
	}
}
