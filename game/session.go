package game

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/vi-snake/engine"
)

// Sounds receives cues for tick events; implementations must not block
type Sounds interface {
	PlayEat()
	PlaySpecial()
	PlayPhase()
	PlayGameOver()
}

type silentSounds struct{}

func (silentSounds) PlayEat()      {}
func (silentSounds) PlaySpecial()  {}
func (silentSounds) PlayPhase()    {}
func (silentSounds) PlayGameOver() {}

// Session owns the live game: the current state, the pending direction and the
// clock that advances them
//
// Input goroutine writes the pending direction, the scheduler goroutine steps,
// the render loop reads snapshots. All three go through mu
type Session struct {
	// ID tags log lines of one process run
	ID string

	engine    *engine.Engine
	scheduler *engine.ClockScheduler
	sounds    Sounds

	mu      sync.RWMutex
	state   engine.GameState
	pending engine.Direction

	// Set when the engine could not place an item; only Restart clears it
	halted atomic.Bool
}

// NewSession creates a session with a new game loaded from eng's store
// sounds may be nil
func NewSession(eng *engine.Engine, sounds Sounds) (*Session, error) {
	state, err := eng.NewGame()
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	if sounds == nil {
		sounds = silentSounds{}
	}

	s := &Session{
		ID:      uuid.NewString(),
		engine:  eng,
		sounds:  sounds,
		state:   state,
		pending: state.Pending,
	}
	s.scheduler = engine.NewClockScheduler(state.TickInterval, s.Step)

	log.Printf("session %s: new game, high score %d", s.ID, state.HighScore)
	return s, nil
}

// Start begins ticking
func (s *Session) Start() {
	s.scheduler.Start()
}

// Stop halts the clock and waits for the in-flight step
func (s *Session) Stop() {
	s.scheduler.Stop()
}

// Scheduler exposes the clock for diagnostics
func (s *Session) Scheduler() *engine.ClockScheduler {
	return s.scheduler
}

// SetPendingDirection records the direction for the next step, the last call before a step wins
func (s *Session) SetPendingDirection(d engine.Direction) {
	s.mu.Lock()
	s.pending = d
	s.mu.Unlock()
}

// Direction returns the committed heading of the last completed step
func (s *Session) Direction() engine.Direction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Direction
}

// GameOver reports whether the current game has ended
func (s *Session) GameOver() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.GameOver
}

// Halted reports whether stepping stopped because an item could not be placed
func (s *Session) Halted() bool {
	return s.halted.Load()
}

// Snapshot returns a copy of the current state for rendering
func (s *Session) Snapshot() engine.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Snapshot()
}

// Restart replaces the state with a new game, keeping the high score, and re-arms the clock
func (s *Session) Restart() error {
	s.mu.Lock()
	next, err := s.engine.Reset(s.state)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("restart: %w", err)
	}
	s.state = next
	s.pending = next.Pending
	s.mu.Unlock()

	s.halted.Store(false)
	s.scheduler.Rearm(next.TickInterval)

	log.Printf("session %s: restart, high score %d", s.ID, next.HighScore)
	return nil
}

// Step advances the game one tick; it is the scheduler's StepFunc
func (s *Session) Step() (time.Duration, bool) {
	if s.halted.Load() {
		return 0, false
	}

	s.mu.Lock()
	prev := s.state
	next, ev, err := s.engine.Tick(prev, s.pending)
	if err != nil && errors.Is(err, engine.ErrPlacementExhausted) {
		s.mu.Unlock()
		s.halted.Store(true)
		log.Printf("session %s: halted at score %d: %v", s.ID, prev.Score, err)
		return prev.TickInterval, false
	}
	s.state = next
	s.mu.Unlock()

	if err != nil {
		// State is valid, only persistence failed
		log.Printf("session %s: %v", s.ID, err)
	}

	s.notify(ev, next)
	return next.TickInterval, !next.GameOver
}

// notify plays at most one cue per tick, the most significant one
func (s *Session) notify(ev engine.Event, state engine.GameState) {
	switch {
	case ev.Has(engine.EventGameOver):
		log.Printf("session %s: game over (%s) score %d phase %d", s.ID, state.Cause, state.Score, state.Phase+1)
		if ev.Has(engine.EventHighScore) {
			log.Printf("session %s: new high score %d", s.ID, state.HighScore)
		}
		s.sounds.PlayGameOver()

	case ev.Has(engine.EventPhaseAdvanced):
		log.Printf("session %s: phase %d, %d barriers", s.ID, state.Phase+1, state.Barriers.Size())
		s.sounds.PlayPhase()

	case ev.Has(engine.EventAteSpecial):
		s.sounds.PlaySpecial()

	case ev.Has(engine.EventAte):
		s.sounds.PlayEat()
	}

	if ev.Has(engine.EventSpeedUp) {
		log.Printf("session %s: tick interval %v", s.ID, state.TickInterval)
	}
}
