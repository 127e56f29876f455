package constants

import "time"

// Audio output
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer size expressed as time
	AudioBufferDuration = 100 * time.Millisecond
)

// Eat sound
const (
	EatSoundFreq     = 880.0
	EatSoundDuration = 50 * time.Millisecond
)

// Special eat sound, two rising notes
const (
	SpecialSoundFreqLow  = 988.0
	SpecialSoundFreqHigh = 1319.0
	SpecialSoundNote     = 60 * time.Millisecond
)

// Phase advance sound, upward sweep
const (
	PhaseSoundFreqFrom = 220.0
	PhaseSoundFreqTo   = 880.0
	PhaseSoundDuration = 300 * time.Millisecond
)

// Game over sound, low buzz
const (
	GameOverSoundFreq     = 110.0
	GameOverSoundDuration = 400 * time.Millisecond
)
