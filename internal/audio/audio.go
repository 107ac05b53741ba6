// Package audio plays SkyHop's sound effects through the system speaker
// using beep. All tones are synthesised; no sound files are loaded.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/skyhop/internal/core"
)

const sampleRate = beep.SampleRate(48000)

// Player mixes sound effects onto the speaker. A nil or uninitialised
// Player is silent, so callers never need to check whether sound is on.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer creates a silent player. Call Init to open the speaker.
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Init opens the speaker and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops every playing sound.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// Play starts a sound effect.
func (p *Player) Play(s Sound) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	streamer := Synth(s, sampleRate, p.volume)
	if streamer == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}

// PlayEvents plays the sounds for one tick's game events.
// Recycled platforms are silent; a new high score replaces the game-over tune.
func (p *Player) PlayEvents(events []core.Event) {
	for _, s := range SoundsFor(events) {
		p.Play(s)
	}
}

// SoundsFor maps game events to the sounds they trigger.
func SoundsFor(events []core.Event) []Sound {
	var out []Sound
	high := false
	for _, e := range events {
		if e == core.EventHighScore {
			high = true
		}
	}
	for _, e := range events {
		switch e {
		case core.EventJump:
			out = append(out, SoundJump)
		case core.EventLand:
			out = append(out, SoundLand)
		case core.EventGameOver:
			if high {
				out = append(out, SoundHighScore)
			} else {
				out = append(out, SoundGameOver)
			}
		}
	}
	return out
}
