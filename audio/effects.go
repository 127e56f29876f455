package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/vi-snake/constants"
)

// envelope applies attack/release shaping to a stream and ends it after duration
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope over s
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}

	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// sweepGenerator glides a sine from one frequency to another over its duration
type sweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	phase    float64
	pos      int
	samples  int
}

// NewSweepGenerator creates a finite frequency sweep
func NewSweepGenerator(sr beep.SampleRate, from, to float64, duration time.Duration) beep.Streamer {
	return &sweepGenerator{
		sr:      sr,
		from:    from,
		to:      to,
		samples: sr.N(duration),
	}
}

func (g *sweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}

		progress := float64(g.pos) / float64(g.samples)
		freq := g.from + (g.to-g.from)*progress
		sample := 0.3 * math.Sin(2*math.Pi*g.phase)

		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *sweepGenerator) Err() error { return nil }

// buzzGenerator generates a low harsh buzz from a fundamental and two harmonics
type buzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates an endless buzz, bound it with beep.Take or an envelope
func NewBuzzGenerator(sr beep.SampleRate, freq float64) beep.Streamer {
	return &buzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *buzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *buzzGenerator) Err() error { return nil }

// tone returns a shaped sine note, silence if the generator rejects the frequency
func tone(rate beep.SampleRate, freq float64, duration time.Duration) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return beep.Silence(rate.N(duration))
	}
	shaped := NewEnvelope(sine, duration, duration/10, duration/2, rate)
	return &effects.Volume{Streamer: shaped, Base: 2, Volume: -1}
}

// CreateEatSound is a short blip for normal food
func CreateEatSound(rate beep.SampleRate) beep.Streamer {
	return tone(rate, constants.EatSoundFreq, constants.EatSoundDuration)
}

// CreateSpecialSound is a two-note rising chime for special food
func CreateSpecialSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		tone(rate, constants.SpecialSoundFreqLow, constants.SpecialSoundNote),
		tone(rate, constants.SpecialSoundFreqHigh, constants.SpecialSoundNote*2),
	)
}

// CreatePhaseSound is an upward sweep for a phase advance
func CreatePhaseSound(rate beep.SampleRate) beep.Streamer {
	sweep := NewSweepGenerator(rate, constants.PhaseSoundFreqFrom, constants.PhaseSoundFreqTo, constants.PhaseSoundDuration)
	return NewEnvelope(sweep, constants.PhaseSoundDuration, 20*time.Millisecond, 100*time.Millisecond, rate)
}

// CreateGameOverSound is a fading low buzz
func CreateGameOverSound(rate beep.SampleRate) beep.Streamer {
	buzz := NewBuzzGenerator(rate, constants.GameOverSoundFreq)
	return NewEnvelope(buzz, constants.GameOverSoundDuration, 10*time.Millisecond, constants.GameOverSoundDuration*3/4, rate)
}
