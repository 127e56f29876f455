package engine

import (
	"fmt"

	"github.com/lixenwraith/vi-snake/constants"
)

// Tick advances s by one step heading in pending and returns the next state
//
// pending is trusted as given; rejecting a reversal is the input layer's job.
// A terminal state is returned unchanged. On error the returned state is still
// valid: placement exhaustion returns s untouched, a failed high score write
// returns the game-over state
func (e *Engine) Tick(s GameState, pending Direction) (GameState, Event, error) {
	if s.GameOver {
		return s, 0, nil
	}

	head := s.Head().Step(pending)

	if cause := s.collision(head); cause != CollisionNone {
		return e.endGame(s, cause)
	}

	next := s
	ev := EventMoved

	if head == s.Food.Cell {
		// Growth keeps the tail
		next.Snake = make([]Cell, 0, len(s.Snake)+1)
		next.Snake = append(next.Snake, head)
		next.Snake = append(next.Snake, s.Snake...)

		var err error
		var grow Event
		if next, grow, err = e.consume(next); err != nil {
			return s, 0, err
		}
		ev |= grow
	} else {
		next.Snake = make([]Cell, len(s.Snake))
		next.Snake[0] = head
		copy(next.Snake[1:], s.Snake[:len(s.Snake)-1])
	}

	next.Direction = pending
	next.Pending = pending
	return next, ev, nil
}

// collision checks head against walls, the current body and barriers, in that order
func (s GameState) collision(head Cell) Collision {
	switch {
	case !head.InBounds():
		return CollisionWall
	case containsCell(s.Snake, head):
		return CollisionSelf
	case s.Barriers.Has(head):
		return CollisionBarrier
	default:
		return CollisionNone
	}
}

// endGame produces the terminal state; nothing but the game-over fields and the high score change
func (e *Engine) endGame(s GameState, cause Collision) (GameState, Event, error) {
	next := s
	next.GameOver = true
	next.Cause = cause
	ev := EventGameOver

	if next.Score > next.HighScore {
		next.HighScore = next.Score
		ev |= EventHighScore
		if err := e.store.SaveHighScore(next.Score); err != nil {
			return next, ev, fmt.Errorf("save high score %d: %w", next.Score, err)
		}
	}
	return next, ev, nil
}

// consume scores the eaten food, advances the phase at most once, places a new
// food and applies the speed ratchet. s.Snake already includes the new head
func (e *Engine) consume(s GameState) (GameState, Event, error) {
	ev := EventAte
	if s.Food.Kind == FoodSpecial {
		ev |= EventAteSpecial
	}
	s.Score += s.Food.Kind.Score()

	if s.Score >= (s.Phase+1)*constants.PhaseScoreStep && s.Phase < constants.NumPhases-1 {
		barriers, err := GenerateBarriers(e.rng, s.Phase+1, s.Snake)
		if err != nil {
			return s, 0, fmt.Errorf("advance to phase %d: %w", s.Phase+1, err)
		}
		s.Phase++
		s.Barriers = barriers
		ev |= EventPhaseAdvanced
	}

	// Food is placed after barriers so it never lands on a fresh barrier
	food, err := GenerateFood(e.rng, s.Snake, s.Barriers)
	if err != nil {
		return s, 0, err
	}
	s.Food = food

	if s.Score%constants.SpeedUpScoreStep == 0 && s.TickInterval > constants.MinTickInterval {
		s.TickInterval = max(s.TickInterval-constants.TickIntervalStep, constants.MinTickInterval)
		ev |= EventSpeedUp
	}

	return s, ev, nil
}
