package audio

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/tomz197/missiles/internal/game"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSaw
	WaveNoise
)

// oscillator generates a finite wave whose frequency may sweep linearly.
type oscillator struct {
	freq     float64
	sweep    float64 // Hz added per second
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a wave of the given shape lasting duration.
func NewOscillator(freq, sweep float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		sweep:    sweep,
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
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := math.Max(o.freq+o.sweep*float64(o.position)/float64(o.rate), 0)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	totalSamples int
}

// NewEnvelope shapes s with linear attack and release over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:     s,
		attack:       rate.N(attack),
		release:      rate.N(release),
		totalSamples: rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.totalSamples - e.position; remaining < e.release {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; zero or negative volume is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound returns the one-shot streamer for a cue. Music cues have no
// one-shot sound and return nil.
func Sound(cue game.Cue, rate beep.SampleRate) (beep.Streamer, error) {
	switch cue {
	case game.CueSpawn:
		// Falling whistle
		d := 180 * time.Millisecond
		osc := NewOscillator(1400, -3000, d, WaveSine, rate)
		return newVolume(NewEnvelope(osc, d, 5*time.Millisecond, 60*time.Millisecond, rate), 0.12), nil

	case game.CueSmallExplosion:
		d := 250 * time.Millisecond
		noise := NewOscillator(0, 0, d, WaveNoise, rate)
		return newVolume(NewEnvelope(noise, d, 3*time.Millisecond, 220*time.Millisecond, rate), 0.35), nil

	case game.CueLargeExplosion:
		d := 900 * time.Millisecond
		noise := NewEnvelope(NewOscillator(0, 0, d, WaveNoise, rate), d, 5*time.Millisecond, 800*time.Millisecond, rate)
		rumble := NewEnvelope(NewOscillator(70, -40, d, WaveSaw, rate), d, 5*time.Millisecond, 850*time.Millisecond, rate)
		return newVolume(beep.Mix(newVolume(noise, 0.6), newVolume(rumble, 0.4)), 0.7), nil

	case game.CueLevelUp:
		note := rate.N(120 * time.Millisecond)
		low, err := generators.SineTone(rate, 660)
		if err != nil {
			return nil, fmt.Errorf("level-up tone: %w", err)
		}
		high, err := generators.SineTone(rate, 990)
		if err != nil {
			return nil, fmt.Errorf("level-up tone: %w", err)
		}
		return newVolume(beep.Seq(beep.Take(note, low), beep.Take(note, high)), 0.25), nil

	default:
		return nil, nil
	}
}

// musicGenerator is an endless bass arpeggio with a kick on every beat.
type musicGenerator struct {
	rate  beep.SampleRate
	pos   int
	beat  int
	notes []float64
}

// NewMusic returns the background music stream. It never ends.
func NewMusic(rate beep.SampleRate) beep.Streamer {
	return &musicGenerator{
		rate:  rate,
		beat:  rate.N(300 * time.Millisecond),
		notes: []float64{55, 55, 65.41, 73.42, 55, 55, 82.41, 73.42},
	}
}

func (g *musicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	kickLen := g.rate.N(80 * time.Millisecond)
	for i := range samples {
		beatPos := g.pos % g.beat
		note := g.notes[(g.pos/g.beat)%len(g.notes)]
		t := float64(g.pos) / float64(g.rate)

		kick := 0.0
		if beatPos < kickLen {
			env := 1.0 - float64(beatPos)/float64(kickLen)
			kick = 0.35 * env * math.Sin(2*math.Pi*60*(1+2*env)*float64(beatPos)/float64(g.rate))
		}
		bass := 0.12 * math.Sin(2*math.Pi*note*t)

		samples[i][0] = kick + bass
		samples[i][1] = kick + bass
		g.pos++
	}
	return len(samples), true
}

func (g *musicGenerator) Err() error { return nil }
