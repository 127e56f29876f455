package engine

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-snake/core"
)

// StepFunc advances the game once and reports the delay before the next step
// and whether the game is still running
type StepFunc func() (next time.Duration, running bool)

// ClockScheduler drives a StepFunc from a single timer goroutine
// The timer is re-armed with the interval returned by each step, so a speed-up
// takes effect on the following tick. A step reporting running=false tears the
// timer down; the loop then idles until Rearm or Stop
type ClockScheduler struct {
	step StepFunc

	mu       sync.RWMutex
	interval time.Duration

	// Tick counter for debugging and tests
	tickCount atomic.Uint64
	armed     atomic.Bool

	// Control channels
	stopChan  chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
	running   atomic.Bool
	rearmChan chan time.Duration
}

// NewClockScheduler creates a scheduler that will call step every interval once started
func NewClockScheduler(interval time.Duration, step StepFunc) *ClockScheduler {
	return &ClockScheduler{
		step:      step,
		interval:  interval,
		stopChan:  make(chan struct{}),
		rearmChan: make(chan time.Duration, 1),
	}
}

// Start begins the scheduler loop, subsequent calls are no-ops
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.armed.Store(true)
		cs.wg.Add(1)
		// Use core.Go for safe execution with centralized crash handling
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for it to exit
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

// Rearm restarts ticking with a new interval, used after a restart
// Only the latest request is kept if several arrive before the loop wakes
func (cs *ClockScheduler) Rearm(interval time.Duration) {
	for {
		select {
		case cs.rearmChan <- interval:
			return
		default:
		}
		// Replace the stale request
		select {
		case <-cs.rearmChan:
		default:
		}
	}
}

// Interval returns the delay currently armed
func (cs *ClockScheduler) Interval() time.Duration {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.interval
}

// TickCount returns the number of steps executed
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// Armed reports whether the timer is live, false after a step reported the game stopped
func (cs *ClockScheduler) Armed() bool {
	return cs.armed.Load()
}

func (cs *ClockScheduler) setInterval(d time.Duration) {
	cs.mu.Lock()
	cs.interval = d
	cs.mu.Unlock()
}

// schedulerLoop owns the timer; a nil timerC means idle
func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	timer := time.NewTimer(cs.Interval())
	defer timer.Stop()
	timerC := timer.C

	for {
		select {
		case <-cs.stopChan:
			return

		case d := <-cs.rearmChan:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			cs.setInterval(d)
			timer.Reset(d)
			timerC = timer.C
			cs.armed.Store(true)

		case <-timerC:
			next, running := cs.step()
			cs.tickCount.Add(1)

			if !running {
				// Game over: tear the timer down until rearmed
				timerC = nil
				cs.armed.Store(false)
				continue
			}

			if current := cs.Interval(); next != current {
				log.Printf("scheduler: interval %v -> %v", current, next)
				cs.setInterval(next)
			}
			timer.Reset(next)
		}
	}
}
