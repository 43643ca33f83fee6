// Package loop drives a game session with the Input → Update → Draw cycle
// at a fixed frame rate.
package loop

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/tomz197/missiles/internal/game"
)

// Renderer draws one frame of the session.
type Renderer interface {
	Render(sess *game.Session) error
}

// AudioCue plays a named sound event without waiting for playback.
type AudioCue interface {
	Play(cue game.Cue) error
}

// InputSource is polled once per frame.
type InputSource interface {
	Poll() game.Input
}

// Options configures Run. Input is required; every other field has a
// silent default.
type Options struct {
	Renderer  Renderer
	Audio     AudioCue
	Input     InputSource
	Clock     Clock
	Logger    *log.Logger
	MaxFrames uint64 // Stop after this many frames, 0 runs until quit
}

// Run ticks the session until the player quits, MaxFrames is reached or
// ctx is cancelled. Renderer and audio failures are logged and discarded;
// they never stop the loop. Returns ctx.Err() on cancellation.
func Run(ctx context.Context, sess *game.Session, opts Options) error {
	if sess == nil {
		return errors.New("loop: nil session")
	}
	if opts.Input == nil {
		return errors.New("loop: no input source")
	}
	if opts.Renderer == nil {
		opts.Renderer = nopRenderer{}
	}
	if opts.Audio == nil {
		opts.Audio = nopAudio{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Clock == nil {
		opts.Clock = NewFixedClock(sess.Settings.TargetFPS)
	}
	defer opts.Clock.Stop()

	logger := opts.Logger
	failures := newFailureLog(logger)
	defer failures.summarize()

	logger.Info("session started", "fps", sess.Settings.TargetFPS)

	for frames := uint64(0); opts.MaxFrames == 0 || frames < opts.MaxFrames; frames++ {
		if err := opts.Clock.Wait(ctx); err != nil {
			logger.Info("session stopped", "reason", err, "score", sess.Progress.Score)
			return err
		}

		// ===== INPUT PHASE =====
		in := opts.Input.Poll()
		if in.Quit {
			logger.Info("session quit", "phase", sess.Phase, "score", sess.Progress.Score, "level", sess.Progress.Level)
			return nil
		}

		// ===== UPDATE PHASE =====
		out := sess.Tick(in)
		logFrame(logger, sess, out)

		for _, cue := range out.Cues {
			if err := opts.Audio.Play(cue); err != nil {
				failures.record("audio", err)
			}
		}

		// ===== DRAW PHASE =====
		if err := opts.Renderer.Render(sess); err != nil {
			failures.record("render", err)
		}
	}
	return nil
}

func logFrame(logger *log.Logger, sess *game.Session, out game.FrameOutput) {
	if out.LevelUps > 0 {
		logger.Info("level up", "level", sess.Progress.Level, "score", sess.Progress.Score,
			"speed", sess.Progress.Speed, "batch", sess.Progress.BatchSize)
	}
	if !out.Transitioned() {
		return
	}
	logger.Debug("phase changed", "from", out.From, "to", out.Phase, "frame", out.Frame)
	if out.Phase == game.PhaseGameOver {
		logger.Info("game over", "score", sess.Progress.Score, "level", sess.Progress.Level)
	}
}

// failureLog reports the first failure of each collaborator and counts the rest.
type failureLog struct {
	logger *log.Logger
	counts map[string]int
}

func newFailureLog(logger *log.Logger) *failureLog {
	return &failureLog{logger: logger, counts: make(map[string]int)}
}

func (f *failureLog) record(kind string, err error) {
	f.counts[kind]++
	if f.counts[kind] == 1 {
		f.logger.Debug("collaborator failed, continuing", "kind", kind, "err", err)
	}
}

func (f *failureLog) summarize() {
	for kind, n := range f.counts {
		f.logger.Debug("collaborator failures", "kind", kind, "count", n)
	}
}

type nopRenderer struct{}

func (nopRenderer) Render(*game.Session) error { return nil }

type nopAudio struct{}

func (nopAudio) Play(game.Cue) error { return nil }
