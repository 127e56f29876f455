package game

import (
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/store"
)

// soundRecorder records cue names in call order
type soundRecorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *soundRecorder) record(name string) {
	r.mu.Lock()
	r.calls = append(r.calls, name)
	r.mu.Unlock()
}

func (r *soundRecorder) PlayEat()      { r.record("eat") }
func (r *soundRecorder) PlaySpecial()  { r.record("special") }
func (r *soundRecorder) PlayPhase()    { r.record("phase") }
func (r *soundRecorder) PlayGameOver() { r.record("gameover") }

func (r *soundRecorder) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

// newTestSession builds a session over scripted draws, defaulting to a stream of zeros
func newTestSession(t *testing.T, high int, draws ...int) (*Session, *store.MemoryStore, *soundRecorder) {
	t.Helper()

	if len(draws) == 0 {
		draws = []int{0}
	}
	scores := store.NewMemoryStore(high)
	sounds := &soundRecorder{}
	eng := engine.NewEngine(engine.NewScriptedRand(draws...), scores)

	s, err := NewSession(eng, sounds)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return s, scores, sounds
}

// TestNewSessionInitialState verifies the session starts from the standard opening
func TestNewSessionInitialState(t *testing.T) {
	s, _, _ := newTestSession(t, 7)

	snap := s.Snapshot()
	if len(snap.Snake) != 1 || snap.Snake[0] != (engine.Cell{X: 5, Y: 5}) {
		t.Errorf("Expected snake [(5,5)], got %v", snap.Snake)
	}
	if snap.Food.Cell != (engine.Cell{X: 10, Y: 10}) {
		t.Errorf("Expected food at (10,10), got %v", snap.Food.Cell)
	}
	if snap.HighScore != 7 {
		t.Errorf("Expected high score 7 from store, got %d", snap.HighScore)
	}
	if s.ID == "" {
		t.Error("Expected session ID to be set")
	}
	if s.Direction() != engine.DirRight {
		t.Errorf("Expected initial direction Right, got %v", s.Direction())
	}
}

// TestSessionStepMoves verifies a step follows the pending direction
func TestSessionStepMoves(t *testing.T) {
	s, _, sounds := newTestSession(t, 0)

	s.SetPendingDirection(engine.DirDown)
	next, running := s.Step()

	if !running {
		t.Fatal("Expected game to keep running")
	}
	if next != constants.InitialTickInterval {
		t.Errorf("Expected interval %v, got %v", constants.InitialTickInterval, next)
	}

	snap := s.Snapshot()
	if snap.Snake[0] != (engine.Cell{X: 5, Y: 6}) {
		t.Errorf("Expected head at (5,6), got %v", snap.Snake[0])
	}
	if s.Direction() != engine.DirDown {
		t.Errorf("Expected committed direction Down, got %v", s.Direction())
	}
	if len(sounds.Calls()) != 0 {
		t.Errorf("Expected no cues for a plain move, got %v", sounds.Calls())
	}
}

// TestSessionLastPendingWins verifies only the latest direction before a step is used
func TestSessionLastPendingWins(t *testing.T) {
	s, _, _ := newTestSession(t, 0)

	s.SetPendingDirection(engine.DirDown)
	s.SetPendingDirection(engine.DirUp)
	s.Step()

	if head := s.Snapshot().Snake[0]; head != (engine.Cell{X: 5, Y: 4}) {
		t.Errorf("Expected head at (5,4), got %v", head)
	}
}

// TestSessionEatCue verifies eating plays the cue matching the food kind
func TestSessionEatCue(t *testing.T) {
	tests := []struct {
		name string
		kind engine.FoodKind
		want string
	}{
		{"normal", engine.FoodNormal, "eat"},
		{"special", engine.FoodSpecial, "special"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, sounds := newTestSession(t, 0)
			s.state = engine.NewTestState(
				[]engine.Cell{{X: 3, Y: 3}},
				engine.Food{Cell: engine.Cell{X: 4, Y: 3}, Kind: tt.kind},
			)

			if _, running := s.Step(); !running {
				t.Fatal("Expected game to keep running after eating")
			}

			calls := sounds.Calls()
			if len(calls) != 1 || calls[0] != tt.want {
				t.Errorf("Expected cue [%s], got %v", tt.want, calls)
			}
			if got := s.Snapshot().Score; got != tt.kind.Score() {
				t.Errorf("Expected score %d, got %d", tt.kind.Score(), got)
			}
		})
	}
}

// TestSessionPhaseCue verifies a phase advance plays the phase cue instead of the eat cue
func TestSessionPhaseCue(t *testing.T) {
	// Distinct cells for the opening barrier, two phase-1 barriers and the next food
	s, _, sounds := newTestSession(t, 0, 0, 1, 2, 3, 4, 5, 6, 7)
	state := engine.NewTestState(
		[]engine.Cell{{X: 3, Y: 3}},
		engine.Food{Cell: engine.Cell{X: 4, Y: 3}, Kind: engine.FoodNormal},
	)
	state.Score = 4
	s.state = state

	s.Step()

	calls := sounds.Calls()
	if len(calls) != 1 || calls[0] != "phase" {
		t.Errorf("Expected cue [phase], got %v", calls)
	}
	if got := s.Snapshot().Phase; got != 1 {
		t.Errorf("Expected phase 1, got %d", got)
	}
}

// TestSessionGameOver verifies a collision stops the clock and persists a new best
func TestSessionGameOver(t *testing.T) {
	s, scores, sounds := newTestSession(t, 2)
	state := engine.NewTestState(
		[]engine.Cell{{X: constants.GridSize - 1, Y: 0}},
		engine.Food{Cell: engine.Cell{X: 0, Y: 10}},
	)
	state.Score = 3
	state.HighScore = 2
	s.state = state

	_, running := s.Step()
	if running {
		t.Error("Expected step to report the game stopped")
	}
	if !s.GameOver() {
		t.Error("Expected GameOver() to be true")
	}
	if scores.HighScore() != 3 || scores.Saves() != 1 {
		t.Errorf("Expected one save of 3, got high %d saves %d", scores.HighScore(), scores.Saves())
	}

	calls := sounds.Calls()
	if len(calls) != 1 || calls[0] != "gameover" {
		t.Errorf("Expected cue [gameover], got %v", calls)
	}

	// Further steps are no-ops
	if _, running := s.Step(); running {
		t.Error("Expected step after game over to report stopped")
	}
	if len(sounds.Calls()) != 1 {
		t.Errorf("Expected no further cues after game over, got %v", sounds.Calls())
	}
}

// TestSessionRestart verifies restart keeps the high score and resets everything else
func TestSessionRestart(t *testing.T) {
	s, _, _ := newTestSession(t, 0)
	state := engine.NewTestState(
		[]engine.Cell{{X: 0, Y: 0}},
		engine.Food{Cell: engine.Cell{X: 10, Y: 10}},
	)
	state.Score = 9
	s.state = state

	s.SetPendingDirection(engine.DirUp)
	s.Step()
	if !s.GameOver() {
		t.Fatal("Expected wall collision")
	}

	if err := s.Restart(); err != nil {
		t.Fatalf("Restart failed: %v", err)
	}

	snap := s.Snapshot()
	if snap.GameOver {
		t.Error("Expected running game after restart")
	}
	if snap.HighScore != 9 {
		t.Errorf("Expected high score 9 preserved, got %d", snap.HighScore)
	}
	if snap.Score != 0 || snap.Phase != 0 {
		t.Errorf("Expected score 0 phase 0, got %d and %d", snap.Score, snap.Phase)
	}
	if snap.TickInterval != constants.InitialTickInterval {
		t.Errorf("Expected interval %v, got %v", constants.InitialTickInterval, snap.TickInterval)
	}

	// Pending direction is reset with the state
	s.Step()
	if head := s.Snapshot().Snake[0]; head != (engine.Cell{X: 6, Y: 5}) {
		t.Errorf("Expected head at (6,5) after restart, got %v", head)
	}
}

// TestSessionHaltsOnPlacementExhaustion verifies the session stops without corrupting state
func TestSessionHaltsOnPlacementExhaustion(t *testing.T) {
	scores := store.NewMemoryStore(0)
	// Every draw lands on (0,0), which the snake occupies after eating
	eng := engine.NewEngine(engine.NewScriptedRand(0), scores)
	s, err := NewSession(eng, nil)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	s.state = engine.NewTestState(
		[]engine.Cell{{X: 0, Y: 0}},
		engine.Food{Cell: engine.Cell{X: 1, Y: 0}},
	)

	if _, running := s.Step(); running {
		t.Error("Expected step to stop on placement exhaustion")
	}
	if !s.Halted() {
		t.Error("Expected session to be halted")
	}

	snap := s.Snapshot()
	if len(snap.Snake) != 1 || snap.Snake[0] != (engine.Cell{X: 0, Y: 0}) {
		t.Errorf("Expected state untouched, got snake %v", snap.Snake)
	}
	if snap.GameOver {
		t.Error("Expected halt without game over")
	}
}

// TestSessionScheduledTicks verifies the clock drives the session until game over
func TestSessionScheduledTicks(t *testing.T) {
	s, _, sounds := newTestSession(t, 0)
	state := engine.NewTestState(
		[]engine.Cell{{X: constants.GridSize - 2, Y: 0}},
		engine.Food{Cell: engine.Cell{X: 0, Y: 10}},
	)
	state.TickInterval = 5 * time.Millisecond
	s.state = state
	s.scheduler = engine.NewClockScheduler(state.TickInterval, s.Step)

	s.Start()
	defer s.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for !s.GameOver() && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	if !s.GameOver() {
		t.Fatal("Expected scheduled ticks to reach the wall")
	}
	if got := s.Scheduler().TickCount(); got < 2 {
		t.Errorf("Expected at least 2 ticks, got %d", got)
	}
	if calls := sounds.Calls(); len(calls) != 1 || calls[0] != "gameover" {
		t.Errorf("Expected cue [gameover], got %v", calls)
	}
}
