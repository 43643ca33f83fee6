package object

import (
	"github.com/tomz197/missiles/internal/physics"
)

// flameStep advances the exhaust animation phase each frame.
const flameStep = 0.2

// Projectile is a missile falling from the top of the field.
// Vertical speed is shared by all live projectiles and passed to Update.
type Projectile struct {
	X, Y          float64 // Top-left corner
	VX            float64 // Horizontal drift, reflected off the side walls
	Width, Height float64
	Flame         float64 // Exhaust animation phase
	destroyed     bool    // Marked for destruction
}

// NewProjectile creates a projectile just above the field top at x.
func NewProjectile(x, vx, width, height float64) *Projectile {
	return &Projectile{
		X:      x,
		Y:      -height,
		VX:     vx,
		Width:  width,
		Height: height,
	}
}

// MarkDestroyed marks the projectile for removal.
func (p *Projectile) MarkDestroyed() {
	p.destroyed = true
}

// IsDestroyed returns true if the projectile is marked for destruction.
func (p *Projectile) IsDestroyed() bool {
	return p.destroyed
}

// Bounds returns the collision box.
func (p *Projectile) Bounds() physics.Rect {
	return physics.Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// Center returns the center of the projectile.
func (p *Projectile) Center() (x, y float64) {
	return p.Bounds().Center()
}

// Update moves the projectile one frame. Horizontal drift reverses when
// the box would leave the field sideways. Returns true once the projectile
// has passed the bottom edge.
func (p *Projectile) Update(vy float64, field Field) (exited bool) {
	p.Y += vy

	maxX := field.Width - p.Width
	next := p.X + p.VX
	if next < 0 || next > maxX {
		p.VX = -p.VX
		next = p.X + p.VX
	}
	p.X = physics.Clamp(next, 0, maxX)

	p.Flame += flameStep

	return p.Y > field.Height
}
