package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave for a fixed duration, sweeping linearly
// from startFreq to endFreq. Equal start and end gives a steady tone.
type oscillator struct {
	startFreq float64
	endFreq   float64
	phase     float64
	duration  int
	position  int
	wave      WaveType
	rate      beep.SampleRate
}

// NewSweep creates an oscillator that sweeps between two frequencies over
// the given duration.
func NewSweep(startFreq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		startFreq: startFreq,
		endFreq:   endFreq,
		duration:  rate.N(duration),
		wave:      wave,
		rate:      rate,
	}
}

// NewTone creates a steady tone of the given frequency and duration.
func NewTone(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
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
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.duration)
		freq := o.startFreq + (o.endFreq-o.startFreq)*t
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope shapes a stream with a linear attack and release and an overall
// gain, ending the stream after the total duration.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
	gain           float64
}

// NewEnvelope wraps s in an attack/release envelope with the given gain.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, gain float64, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	if att+rel > total {
		rel = total - att
		if rel < 0 {
			att, rel = total, 0
		}
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		totalSamples:   total,
		gain:           gain,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := e.gain
		switch {
		case e.position < e.attackSamples:
			vol *= float64(e.position) / float64(e.attackSamples)
		case e.position >= e.totalSamples-e.releaseSamples && e.releaseSamples > 0:
			vol *= float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	if e.position >= e.totalSamples {
		return n, false
	}
	return n, ok
}

func (e *envelope) Err() error { return nil }

// drone is an endless low hum with a slow amplitude wobble, used as
// background ambience.
type drone struct {
	freq      float64
	wobbleHz  float64
	gain      float64
	phase     float64
	wobblePos float64
	rate      beep.SampleRate
}

// NewDrone creates the ambient background streamer.
func NewDrone(freq, wobbleHz, gain float64, rate beep.SampleRate) beep.Streamer {
	return &drone{
		freq:     freq,
		wobbleHz: wobbleHz,
		gain:     gain,
		rate:     rate,
	}
}

func (d *drone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		wobble := 0.6 + 0.4*math.Sin(2*math.Pi*d.wobblePos)
		val := math.Sin(2*math.Pi*d.phase) * d.gain * wobble

		samples[i][0] = val
		samples[i][1] = val

		d.phase += d.freq / float64(d.rate)
		d.phase -= math.Floor(d.phase)
		d.wobblePos += d.wobbleHz / float64(d.rate)
		d.wobblePos -= math.Floor(d.wobblePos)
	}
	return len(samples), true
}

func (d *drone) Err() error { return nil }
