package object

import (
	"github.com/tomz197/missiles/internal/config"
	"github.com/tomz197/missiles/internal/physics"
)

// Player is the craft dodging the projectiles.
type Player struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
	Speed         float64 // Units moved per frame per held direction
	Alive         bool

	minX, maxX float64
	minY, maxY float64
}

// NewPlayer creates the craft at its start position.
func NewPlayer(s config.Settings) *Player {
	x, y := s.PlayerStart()
	return &Player{
		X:      x,
		Y:      y,
		Width:  s.PlayerWidth,
		Height: s.PlayerHeight,
		Speed:  s.PlayerSpeed,
		Alive:  true,
		minX:   0,
		maxX:   s.FieldWidth - s.PlayerWidth,
		minY:   s.PlayerMinY,
		maxY:   s.FieldHeight - s.PlayerHeight - s.PlayerBottomMargin,
	}
}

// Move shifts the craft by dirX/dirY steps of Speed, clamped to the
// allowed part of the field. Directions are expected in [-1, 1].
func (p *Player) Move(dirX, dirY float64) {
	p.X = physics.Clamp(p.X+dirX*p.Speed, p.minX, p.maxX)
	p.Y = physics.Clamp(p.Y+dirY*p.Speed, p.minY, p.maxY)
}

// Bounds returns the collision box.
func (p *Player) Bounds() physics.Rect {
	return physics.Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// Center returns the center of the craft.
func (p *Player) Center() (x, y float64) {
	return p.Bounds().Center()
}
