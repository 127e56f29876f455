package engine

import (
	"fmt"

	"github.com/lixenwraith/vi-snake/constants"
)

// ScoreStore persists the best score across sessions
type ScoreStore interface {
	// HighScore returns the stored best score, 0 when absent or unreadable
	HighScore() int
	// SaveHighScore replaces the stored best score
	SaveHighScore(score int) error
}

// Engine runs the simulation rules against an injected random source and score store
// It holds no game state; every call takes a GameState and returns the next one
type Engine struct {
	rng   Rand
	store ScoreStore
}

// NewEngine creates an engine drawing randomness from rng and persisting to store
func NewEngine(rng Rand, store ScoreStore) *Engine {
	return &Engine{
		rng:   rng,
		store: store,
	}
}

// NewGame creates the initial state with the high score read from the store
func (e *Engine) NewGame() (GameState, error) {
	return e.initialState(e.store.HighScore())
}

// Reset discards s and returns a fresh initial state that keeps s.HighScore
func (e *Engine) Reset(s GameState) (GameState, error) {
	return e.initialState(s.HighScore)
}

func (e *Engine) initialState(highScore int) (GameState, error) {
	snake := []Cell{{X: constants.InitialSnakeX, Y: constants.InitialSnakeY}}
	foodCell := Cell{X: constants.InitialFoodX, Y: constants.InitialFoodY}

	barriers, err := GenerateBarriers(e.rng, 0, append(snake, foodCell))
	if err != nil {
		return GameState{}, fmt.Errorf("new game: %w", err)
	}

	return GameState{
		Snake:        snake,
		Food:         Food{Cell: foodCell, Kind: RollFoodKind(e.rng)},
		Direction:    DirRight,
		Pending:      DirRight,
		Phase:        0,
		Barriers:     barriers,
		Score:        0,
		TickInterval: constants.InitialTickInterval,
		HighScore:    highScore,
	}, nil
}
