package engine

import (
	"sync"

	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/vi-snake/constants"
)

// ScriptedRand is a Rand that replays fixed draws, for deterministic tests
// Ints cycle when exhausted and are reduced modulo n. Floats fall back to 0.5
// (a normal food roll) once exhausted
type ScriptedRand struct {
	mu     sync.Mutex
	Ints   []int
	Floats []float64
	ni, nf int
}

// NewScriptedRand creates a ScriptedRand replaying ints for Intn draws
func NewScriptedRand(ints ...int) *ScriptedRand {
	return &ScriptedRand{Ints: ints}
}

func (r *ScriptedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Ints) == 0 {
		return 0
	}
	v := r.Ints[r.ni%len(r.Ints)]
	r.ni++
	return ((v % n) + n) % n
}

func (r *ScriptedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.nf < len(r.Floats) {
		v := r.Floats[r.nf]
		r.nf++
		return v
	}
	return 0.5
}

// NewTestState builds a running state around the given snake and food with the
// listed barrier cells, initial speed and phase 0
func NewTestState(snake []Cell, food Food, barriers ...Cell) GameState {
	set := mapset.New[Cell]()
	for _, b := range barriers {
		set.Put(b)
	}
	return GameState{
		Snake:        snake,
		Food:         food,
		Direction:    DirRight,
		Pending:      DirRight,
		Barriers:     set,
		TickInterval: constants.InitialTickInterval,
	}
}
