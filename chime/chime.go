package chime

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player plays short confirmation tones for keyboard commands. Speaker
// initialization failure is non-fatal: the simulation runs silently.
type Player struct {
	ready bool
}

func NewPlayer(enabled bool) *Player {
	p := &Player{}
	if !enabled {
		return p
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without sound)", err)
		return p
	}
	p.ready = true
	return p
}

// Restart plays the grid-restart cue
func (p *Player) Restart() {
	p.play(660, 60*time.Millisecond)
}

// Save plays the snapshot/file-save cue
func (p *Player) Save() {
	p.play(880, 50*time.Millisecond)
}

// Pause plays the pause-toggle cue
func (p *Player) Pause() {
	p.play(440, 50*time.Millisecond)
}

func (p *Player) play(freq float64, d time.Duration) {
	if !p.ready {
		return
	}
	tone, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), tone))
}

// Close shuts the speaker down if it was initialized
func (p *Player) Close() {
	if p.ready {
		p.ready = false
		speaker.Close()
	}
}
