package loop

import (
	"context"
	"time"

	"github.com/tomz197/missiles/internal/config"
)

// Clock paces the frame loop.
type Clock interface {
	// Wait blocks until the next frame is due or ctx is done.
	Wait(ctx context.Context) error
	// Stop releases the clock's resources.
	Stop()
}

// FixedClock ticks at a constant frame rate. Frames that overrun are not
// replayed; the loop simply picks up at the next tick.
type FixedClock struct {
	ticker *time.Ticker
}

// NewFixedClock returns a clock ticking fps times per second.
// Non-positive values fall back to the default frame rate.
func NewFixedClock(fps int) *FixedClock {
	if fps <= 0 {
		fps = config.TargetFPS
	}
	return &FixedClock{ticker: time.NewTicker(time.Second / time.Duration(fps))}
}

// Wait blocks until the next tick.
func (c *FixedClock) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.ticker.C:
		return nil
	}
}

// Stop stops the underlying ticker.
func (c *FixedClock) Stop() {
	c.ticker.Stop()
}
