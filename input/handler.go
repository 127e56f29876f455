package input

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/engine"
)

// Controller is the game surface the handler drives
type Controller interface {
	SetPendingDirection(d engine.Direction)
	Direction() engine.Direction
	GameOver() bool
	Restart() error
}

// Muter toggles sound output and returns the new muted state
type Muter interface {
	ToggleMute() bool
}

// Handler translates tcell events into game commands
type Handler struct {
	game     Controller
	muter    Muter
	keys     *KeyTable
	onResize func(width, height int)
}

// NewHandler creates a handler with the default key table; muter may be nil
func NewHandler(game Controller, muter Muter) *Handler {
	return &Handler{
		game:  game,
		muter: muter,
		keys:  DefaultKeyTable(),
	}
}

// OnResize registers a callback for terminal resize events
func (h *Handler) OnResize(fn func(width, height int)) {
	h.onResize = fn
}

// HandleEvent processes one event and returns false when the program should exit
func (h *Handler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev)

	case *tcell.EventResize:
		if h.onResize != nil {
			w, ht := ev.Size()
			h.onResize(w, ht)
		}
	}
	return true
}

func (h *Handler) handleKey(ev *tcell.EventKey) bool {
	entry, ok := h.keys.Lookup(ev)
	if !ok {
		return true
	}

	if h.game.GameOver() {
		if !entry.Intent.AllowedWhenOver() {
			return true
		}
	} else if !entry.Intent.AllowedWhileRunning() {
		return true
	}

	switch entry.Intent {
	case IntentQuit:
		return false

	case IntentSteer:
		// Reversal would run the head into the neck
		if entry.Direction == h.game.Direction().Opposite() {
			return true
		}
		h.game.SetPendingDirection(entry.Direction)

	case IntentRestart:
		if err := h.game.Restart(); err != nil {
			log.Printf("input: %v", err)
		}

	case IntentMute:
		if h.muter != nil {
			log.Printf("input: muted=%v", h.muter.ToggleMute())
		}
	}
	return true
}
