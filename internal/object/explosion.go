package object

import (
	"github.com/tomz197/missiles/internal/config"
)

// ExplosionKind selects the explosion preset.
type ExplosionKind int

const (
	ExplosionSmall ExplosionKind = iota // Two projectiles colliding
	ExplosionLarge                      // The craft being destroyed
)

// String returns the kind name.
func (k ExplosionKind) String() string {
	switch k {
	case ExplosionSmall:
		return "small"
	case ExplosionLarge:
		return "large"
	default:
		return "unknown"
	}
}

// Explosion is an expanding, fading burst. While Delay is positive the
// explosion stays dormant and only counts down.
type Explosion struct {
	X, Y       float64 // Origin
	Kind       ExplosionKind
	Radius     float64
	MaxRadius  float64
	GrowthRate float64 // Radius added per frame
	Fade       float64 // 255 = opaque, 0 = gone
	FadeRate   float64 // Fade removed per frame
	Delay      int     // Frames before growth and fade begin
	finished   bool
}

// NewExplosion creates an explosion at (x, y) from a preset.
func NewExplosion(x, y float64, kind ExplosionKind, preset config.ExplosionPreset, delay int) *Explosion {
	if delay < 0 {
		delay = 0
	}
	return &Explosion{
		X:          x,
		Y:          y,
		Kind:       kind,
		Radius:     preset.Radius,
		MaxRadius:  preset.MaxRadius,
		GrowthRate: preset.GrowthRate,
		Fade:       preset.Fade,
		FadeRate:   preset.FadeRate,
		Delay:      delay,
	}
}

// Update advances the explosion one frame. Returns true once it has
// completely faded and should be removed.
func (e *Explosion) Update() (remove bool) {
	if e.finished {
		return true
	}
	if e.Delay > 0 {
		e.Delay--
		return false
	}

	e.Radius += e.GrowthRate
	if e.Radius > e.MaxRadius {
		e.Radius = e.MaxRadius
	}

	e.Fade -= e.FadeRate
	if e.Fade <= 0 {
		e.Fade = 0
		e.finished = true
	}
	return e.finished
}

// Finished reports whether the explosion has faded out.
func (e *Explosion) Finished() bool {
	return e.finished
}

// Active reports whether the explosion is visible (past its delay and not faded).
func (e *Explosion) Active() bool {
	return e.Delay == 0 && !e.finished
}

// Alpha returns the fade as a 0..1 intensity.
func (e *Explosion) Alpha() float64 {
	a := e.Fade / 255
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}
