package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// tone is a fixed-length oscillator whose frequency glides linearly from
// `from` to `to` over its duration.
type tone struct {
	from, to float64
	wave     Wave
	rate     beep.SampleRate
	phase    float64
	pos      int
	length   int
	attack   int
	release  int
}

// NewTone creates a tone streamer. A tone with from == to holds its pitch.
// The first and last few milliseconds are ramped to avoid clicks.
func NewTone(from, to float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	length := rate.N(duration)
	ramp := min(rate.N(5*time.Millisecond), length/2)
	return &tone{
		from:    from,
		to:      to,
		wave:    wave,
		rate:    rate,
		length:  length,
		attack:  ramp,
		release: ramp,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.length {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.length {
			return i, true
		}

		var val float64
		switch t.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			val = 1.0
			if t.phase >= 0.5 {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (t.phase - 0.5)
		}
		val *= t.gain()

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(t.pos) / float64(t.length)
		freq := t.from + (t.to-t.from)*progress
		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase) // Keep in [0, 1)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// gain is the attack/release envelope at the current position.
func (t *tone) gain() float64 {
	if t.attack > 0 && t.pos < t.attack {
		return float64(t.pos) / float64(t.attack)
	}
	if left := t.length - t.pos; t.release > 0 && left < t.release {
		return float64(left) / float64(t.release)
	}
	return 1.0
}

// withVolume scales a streamer; vol is linear, 0 is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Sound is one of the game's sound effects.
type Sound int

const (
	SoundJump Sound = iota
	SoundLand
	SoundGameOver
	SoundHighScore
)

// Synth builds a fresh streamer for the sound at the given rate and volume.
func Synth(s Sound, rate beep.SampleRate, vol float64) beep.Streamer {
	var out beep.Streamer
	switch s {
	case SoundJump:
		// Rising chirp
		out = NewTone(330, 880, 120*time.Millisecond, WaveSquare, rate)
		vol *= 0.4
	case SoundLand:
		out = NewTone(180, 120, 50*time.Millisecond, WaveSine, rate)
	case SoundGameOver:
		// Three falling notes
		out = beep.Seq(
			NewTone(523.25, 523.25, 150*time.Millisecond, WaveSaw, rate),
			NewTone(392.00, 392.00, 150*time.Millisecond, WaveSaw, rate),
			NewTone(261.63, 196.00, 400*time.Millisecond, WaveSaw, rate),
		)
		vol *= 0.5
	case SoundHighScore:
		out = beep.Seq(
			NewTone(987.77, 987.77, 90*time.Millisecond, WaveSquare, rate),
			NewTone(1318.51, 1318.51, 250*time.Millisecond, WaveSquare, rate),
		)
		vol *= 0.4
	default:
		return nil
	}
	return withVolume(out, vol)
}
