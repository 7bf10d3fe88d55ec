package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams until the streamer reports done, returning the total sample
// count and the peak amplitude seen.
func drain(t *testing.T, s beep.Streamer, limit int) (total int, peak float64) {
	t.Helper()

	buf := make([][2]float64, 512)
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if a := math.Abs(buf[i][0]); a > peak {
				peak = a
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatalf("streamer did not finish within %d samples", limit)
	return total, peak
}

func TestToneDuration(t *testing.T) {
	dur := 10 * time.Millisecond
	s := NewTone(440, dur, WaveSine, sampleRate)

	total, _ := drain(t, s, sampleRate.N(time.Second))
	if want := sampleRate.N(dur); total != want {
		t.Errorf("expected %d samples, got %d", want, total)
	}
}

func TestSweepDuration(t *testing.T) {
	dur := 25 * time.Millisecond
	s := NewSweep(900, 300, dur, WaveSaw, sampleRate)

	total, _ := drain(t, s, sampleRate.N(time.Second))
	if want := sampleRate.N(dur); total != want {
		t.Errorf("expected %d samples, got %d", want, total)
	}
}

func TestOscillatorAmplitudeBounds(t *testing.T) {
	waves := []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise}
	for _, wave := range waves {
		s := NewTone(200, 10*time.Millisecond, wave, sampleRate)
		_, peak := drain(t, s, sampleRate.N(time.Second))
		if peak > 1.0 {
			t.Errorf("wave %d exceeded unit amplitude: %f", wave, peak)
		}
	}
}

func TestEnvelopeAppliesGain(t *testing.T) {
	dur := 20 * time.Millisecond
	tone := NewTone(440, dur, WaveSquare, sampleRate)
	s := NewEnvelope(tone, dur, time.Millisecond, 5*time.Millisecond, 0.25, sampleRate)

	_, peak := drain(t, s, sampleRate.N(time.Second))
	if peak > 0.25+0.001 {
		t.Errorf("envelope gain 0.25 exceeded: peak %f", peak)
	}
	if peak < 0.1 {
		t.Errorf("envelope attenuated too much: peak %f", peak)
	}
}

func TestEnvelopeCapsDuration(t *testing.T) {
	// Source outlives the envelope; the envelope must end the stream
	long := NewTone(440, time.Second, WaveSine, sampleRate)
	dur := 15 * time.Millisecond
	s := NewEnvelope(long, dur, time.Millisecond, 5*time.Millisecond, 0.2, sampleRate)

	total, _ := drain(t, s, sampleRate.N(2*time.Second))
	if want := sampleRate.N(dur); total > want {
		t.Errorf("expected at most %d samples, got %d", want, total)
	}
}

func TestDroneStreamsForever(t *testing.T) {
	d := NewDrone(55, 0.2, 0.04, sampleRate)

	buf := make([][2]float64, 1024)
	for i := 0; i < 10; i++ {
		n, ok := d.Stream(buf)
		if n != len(buf) || !ok {
			t.Fatal("drone should always fill the buffer and keep going")
		}
	}

	for _, frame := range buf {
		if math.Abs(frame[0]) > 0.04+0.001 {
			t.Errorf("drone exceeded its gain: %f", frame[0])
			break
		}
	}
}

func TestPlayerSilentWithoutInit(t *testing.T) {
	p := NewPlayer()

	// All calls must be safe no-ops before Init
	p.StartAmbient()
	p.FireShot()
	p.Explosion(2)
	p.PowerUp()
	p.ShieldBreak()
	p.ShipDestroyed()
	p.Close()
}
