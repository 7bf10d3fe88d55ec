// Package audio synthesizes the game's sound effects and background
// ambience. Everything is generated; there is no asset pipeline. A Player
// that failed to initialize (headless box, no audio device) swallows all
// calls, so the game itself never depends on sound working.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Player owns the speaker and mixes all game sounds into it.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	ambient     *beep.Ctrl
	initialized bool
}

// NewPlayer creates a silent Player. Call Init to bring up the speaker.
func NewPlayer() *Player {
	return &Player{
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker and starts the mixer. Safe to call once.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops the ambience and silences the mixer.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	if p.ambient != nil {
		p.ambient.Paused = true
	}
	p.mixer.Clear()
	speaker.Unlock()

	p.initialized = false
}

// play adds a finite streamer to the mixer.
func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// StartAmbient starts the background drone. Restarting is a no-op while
// the drone is already running.
func (p *Player) StartAmbient() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	if p.ambient != nil && !p.ambient.Paused {
		return
	}

	ctrl := &beep.Ctrl{Streamer: NewDrone(55.0, 0.2, 0.04, sampleRate)}
	p.ambient = ctrl

	speaker.Lock()
	p.mixer.Add(ctrl)
	speaker.Unlock()
}

// FireShot plays a quick descending blip.
func (p *Player) FireShot() {
	s := NewSweep(900, 300, 80*time.Millisecond, WaveSaw, sampleRate)
	p.play(NewEnvelope(s, 80*time.Millisecond, time.Millisecond, 60*time.Millisecond, 0.10, sampleRate))
}

// Explosion plays a noise burst; size 1..3 scales length and loudness.
func (p *Player) Explosion(size int) {
	if size < 1 {
		size = 1
	}
	if size > 3 {
		size = 3
	}
	dur := time.Duration(100+100*size) * time.Millisecond
	gain := 0.08 + 0.05*float64(size)

	s := NewTone(0, dur, WaveNoise, sampleRate)
	p.play(NewEnvelope(s, dur, 2*time.Millisecond, dur/2, gain, sampleRate))
}

// PowerUp plays a rising three-note chime.
func (p *Player) PowerUp() {
	note := func(freq float64) beep.Streamer {
		s := NewTone(freq, 70*time.Millisecond, WaveSine, sampleRate)
		return NewEnvelope(s, 70*time.Millisecond, 5*time.Millisecond, 30*time.Millisecond, 0.15, sampleRate)
	}
	p.play(beep.Seq(note(523.25), note(659.25), note(783.99)))
}

// ShieldBreak plays a dropping square buzz for an absorbed hit.
func (p *Player) ShieldBreak() {
	s := NewSweep(220, 110, 250*time.Millisecond, WaveSquare, sampleRate)
	p.play(NewEnvelope(s, 250*time.Millisecond, time.Millisecond, 150*time.Millisecond, 0.12, sampleRate))
}

// ShipDestroyed plays the death rumble.
func (p *Player) ShipDestroyed() {
	noise := NewTone(0, 600*time.Millisecond, WaveNoise, sampleRate)
	fall := NewSweep(200, 40, 600*time.Millisecond, WaveSine, sampleRate)
	p.play(beep.Mix(
		NewEnvelope(noise, 600*time.Millisecond, 2*time.Millisecond, 400*time.Millisecond, 0.15, sampleRate),
		NewEnvelope(fall, 600*time.Millisecond, 2*time.Millisecond, 300*time.Millisecond, 0.12, sampleRate),
	))
}
