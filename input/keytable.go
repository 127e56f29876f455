package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/engine"
)

// KeyEntry binds a key to an intent, Direction is meaningful for IntentSteer only
type KeyEntry struct {
	Intent    Intent
	Direction engine.Direction
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Escape)
	SpecialKeys map[tcell.Key]KeyEntry

	// Rune bindings, looked up lowercased
	Runes map[rune]KeyEntry

	// Rune bindings with Ctrl held, for terminals that report Ctrl+letter as a rune
	CtrlRunes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings: arrows, WASD and hjkl steer
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyUp:     {IntentSteer, engine.DirUp},
			tcell.KeyDown:   {IntentSteer, engine.DirDown},
			tcell.KeyLeft:   {IntentSteer, engine.DirLeft},
			tcell.KeyRight:  {IntentSteer, engine.DirRight},
			tcell.KeyEnter:  {Intent: IntentRestart},
			tcell.KeyEscape: {Intent: IntentQuit},
			tcell.KeyCtrlC:  {Intent: IntentQuit},
			tcell.KeyCtrlQ:  {Intent: IntentQuit},
		},

		Runes: map[rune]KeyEntry{
			// WASD
			'w': {IntentSteer, engine.DirUp},
			'a': {IntentSteer, engine.DirLeft},
			's': {IntentSteer, engine.DirDown},
			'd': {IntentSteer, engine.DirRight},

			// vi
			'h': {IntentSteer, engine.DirLeft},
			'j': {IntentSteer, engine.DirDown},
			'k': {IntentSteer, engine.DirUp},
			'l': {IntentSteer, engine.DirRight},

			'r': {Intent: IntentRestart},
			'm': {Intent: IntentMute},
			'q': {Intent: IntentQuit},
		},

		CtrlRunes: map[rune]KeyEntry{
			'c': {Intent: IntentQuit},
			'q': {Intent: IntentQuit},
		},
	}
}

// Lookup resolves a key event to its binding
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() == tcell.KeyRune {
		r := unicode.ToLower(ev.Rune())
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			entry, ok := kt.CtrlRunes[r]
			return entry, ok
		}
		entry, ok := kt.Runes[r]
		return entry, ok
	}
	entry, ok := kt.SpecialKeys[ev.Key()]
	return entry, ok
}
