package input

// Intent is what a key asks the game to do
type Intent uint8

const (
	IntentNone Intent = iota
	IntentSteer
	IntentRestart
	IntentMute
	IntentQuit
)

var intentNames = [...]string{
	IntentNone:    "none",
	IntentSteer:   "steer",
	IntentRestart: "restart",
	IntentMute:    "mute",
	IntentQuit:    "quit",
}

func (i Intent) String() string {
	if int(i) < len(intentNames) {
		return intentNames[i]
	}
	return "unknown"
}

// AllowedWhenOver reports whether the intent is honored after game over
func (i Intent) AllowedWhenOver() bool {
	return i == IntentRestart || i == IntentMute || i == IntentQuit
}

// AllowedWhileRunning reports whether the intent is honored during play
func (i Intent) AllowedWhileRunning() bool {
	return i == IntentSteer || i == IntentMute || i == IntentQuit
}
