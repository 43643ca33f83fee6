// Package audio plays game cues: synthesized sound through the local
// speaker, the terminal bell, or nothing at all.
package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/tomz197/missiles/internal/game"
)

// DefaultSampleRate is used when NewSpeaker gets a non-positive rate.
const DefaultSampleRate = beep.SampleRate(44100)

// Speaker plays cues on the local audio device. Playback happens on the
// speaker's own goroutine; Play only queues streamers.
type Speaker struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	mixer  *beep.Mixer
	music  *beep.Ctrl
	closed bool
}

// NewSpeaker initializes the audio device.
func NewSpeaker(rate beep.SampleRate) (*Speaker, error) {
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	s := &Speaker{
		rate:  rate,
		mixer: &beep.Mixer{},
	}
	speaker.Play(s.mixer)
	return s, nil
}

// Play queues the sound for a cue. Music cues start or pause the
// background loop.
func (s *Speaker) Play(cue game.Cue) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return fmt.Errorf("play %s: speaker closed", cue)
	}

	switch cue {
	case game.CueMusicStart:
		speaker.Lock()
		if s.music != nil {
			s.music.Paused = true
			s.music.Streamer = nil
		}
		s.music = &beep.Ctrl{Streamer: NewMusic(s.rate)}
		s.mixer.Add(s.music)
		speaker.Unlock()
		return nil
	case game.CueMusicStop:
		if s.music != nil {
			speaker.Lock()
			s.music.Paused = true
			s.music.Streamer = nil
			speaker.Unlock()
			s.music = nil
		}
		return nil
	}

	st, err := Sound(cue, s.rate)
	if err != nil {
		return fmt.Errorf("play %s: %w", cue, err)
	}
	if st == nil {
		return nil
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
	return nil
}

// Close silences everything and releases the device.
func (s *Speaker) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	speaker.Clear()
	speaker.Close()
	return nil
}

// Bell rings the terminal bell for the cues worth interrupting for.
type Bell struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBell returns a cue player writing BEL to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// Play rings on a large explosion or a level-up and ignores everything else.
func (b *Bell) Play(cue game.Cue) error {
	if cue != game.CueLargeExplosion && cue != game.CueLevelUp {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, err := io.WriteString(b.w, "\a"); err != nil {
		return fmt.Errorf("ring bell: %w", err)
	}
	return nil
}

// Nop discards every cue.
type Nop struct{}

// Play does nothing.
func (Nop) Play(game.Cue) error { return nil }
