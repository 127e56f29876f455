package engine

// Event is a bitmask of what happened during a single tick
// Observers (sound, logging) react to it; the simulation never reads it back
type Event uint16

const (
	// EventMoved: the snake advanced one cell
	EventMoved Event = 1 << iota

	// EventAte: food was consumed this tick
	EventAte

	// EventAteSpecial: the consumed food was special, always set together with EventAte
	EventAteSpecial

	// EventPhaseAdvanced: phase incremented and barriers were regenerated
	EventPhaseAdvanced

	// EventSpeedUp: tick interval decreased
	EventSpeedUp

	// EventGameOver: collision, state is now terminal
	EventGameOver

	// EventHighScore: game ended with a score above the stored best, always set together with EventGameOver
	EventHighScore
)

// Has reports whether all bits of flag are set
func (e Event) Has(flag Event) bool {
	return e&flag == flag
}
