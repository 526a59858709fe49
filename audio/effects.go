package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves with an optional linear frequency sweep
type oscillator struct {
	freq     float64
	sweep    float64 // Hz added by the end of the duration
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from one frequency to another
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		sweep:    to - from,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2*o.phase - 1
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + o.sweep*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0

		// Attack phase
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		// Release phase
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = math.Max(0, float64(remaining)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain
// math.Log2(0) is -Inf, so 0 volume becomes silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// note is a shaped single tone
func note(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, cueAttack, d/2, rate)
}

// Cue timing
const (
	cueAttack = 5 * time.Millisecond

	moveDuration    = 90 * time.Millisecond
	pewDuration     = 120 * time.Millisecond
	explodeDuration = 300 * time.Millisecond
	chimeNote       = 120 * time.Millisecond
	startupNote     = 150 * time.Millisecond
)

// CreateMoveSound is the low thump of a formation step
func CreateMoveSound(rate beep.SampleRate) beep.Streamer {
	return note(70, moveDuration, WaveSquare, rate)
}

// CreatePewSound is a falling laser zap
func CreatePewSound(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(1400, 400, pewDuration, WaveSaw, rate)
	return NewEnvelope(osc, pewDuration, cueAttack, pewDuration/2, rate)
}

// CreateExplodeSound is a noise burst over a low rumble
func CreateExplodeSound(rate beep.SampleRate) beep.Streamer {
	noise := NewEnvelope(NewOscillator(0, explodeDuration, WaveNoise, rate), explodeDuration, cueAttack, explodeDuration-cueAttack, rate)
	rumble := NewEnvelope(NewSweep(120, 40, explodeDuration, WaveSine, rate), explodeDuration, cueAttack, explodeDuration/2, rate)
	return beep.Mix(newVolume(noise, 0.6), newVolume(rumble, 0.4))
}

// CreateWinSound is a rising major arpeggio
func CreateWinSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		note(1046.50, chimeNote, WaveSquare, rate),   // C6
		note(1318.51, chimeNote, WaveSquare, rate),   // E6
		note(1567.98, chimeNote*3, WaveSquare, rate), // G6
	)
}

// CreateLoseSound is a falling minor line
func CreateLoseSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		note(392.00, chimeNote*2, WaveSaw, rate), // G4
		note(311.13, chimeNote*2, WaveSaw, rate), // Eb4
		note(261.63, chimeNote*4, WaveSaw, rate), // C4
	)
}

// CreateStartupSound plays two pure tones from the beep generators
func CreateStartupSound(rate beep.SampleRate) beep.Streamer {
	low, err := generators.SineTone(rate, 440)
	if err != nil {
		return nil
	}
	high, err := generators.SineTone(rate, 880)
	if err != nil {
		return nil
	}
	return beep.Seq(
		NewEnvelope(beep.Take(rate.N(startupNote), low), startupNote, cueAttack, startupNote/2, rate),
		NewEnvelope(beep.Take(rate.N(startupNote*2), high), startupNote*2, cueAttack, startupNote, rate),
	)
}

// GetSoundEffect returns a fresh streamer for cue at the configured volume
// Unknown cues return nil
func GetSoundEffect(cue Cue, cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var s beep.Streamer
	switch cue {
	case CueStartup:
		s = CreateStartupSound(rate)
	case CueMove:
		s = CreateMoveSound(rate)
	case CuePew:
		s = CreatePewSound(rate)
	case CueExplode:
		s = CreateExplodeSound(rate)
	case CueWin:
		s = CreateWinSound(rate)
	case CueLose:
		s = CreateLoseSound(rate)
	}
	if s == nil {
		return nil
	}
	return newVolume(s, cfg.MasterVolume)
}
