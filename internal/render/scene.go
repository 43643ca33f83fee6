package render

import (
	"fmt"
	"math"

	"github.com/tomz197/missiles/internal/draw"
	"github.com/tomz197/missiles/internal/game"
	"github.com/tomz197/missiles/internal/object"
)

// Screen texts.
const (
	TitleText     = "M I S S I L E   D O D G E"
	StartPrompt   = "Press SPACE to start"
	ControlsText  = "Arrows or WASD to move, Q to quit"
	RestartPrompt = "Game Over! Press R to restart"
)

// Paint rasterizes the session onto c. The craft is hidden once it has
// been destroyed; explosions are drawn last so they cover everything.
func Paint(c *draw.Canvas, sess *game.Session) {
	for _, s := range sess.Stars {
		c.SetFloat(s.X, s.Y, draw.Gray(s.Brightness))
	}
	for _, p := range sess.Planets {
		paintPlanet(c, p)
	}
	for _, p := range sess.Projectiles {
		paintProjectile(c, p)
	}
	if sess.Phase == game.PhaseNotStarted || sess.Phase == game.PhasePlaying {
		paintPlayer(c, sess.Player)
	}
	for _, e := range sess.Explosions.Explosions() {
		paintExplosion(c, e)
	}
}

func paintPlanet(c *draw.Canvas, p *object.Planet) {
	c.FillCircle(p.X, p.Y, p.Size, draw.Gray(float64(p.Gray)/255))
	dx := math.Cos(p.RingAngle) * p.Size * 1.6
	dy := math.Sin(p.RingAngle) * p.Size * 1.6
	c.DrawLine(draw.Point{X: p.X - dx, Y: p.Y - dy}, draw.Point{X: p.X + dx, Y: p.Y + dy}, draw.Gray(0.6))
}

func paintProjectile(c *draw.Canvas, p *object.Projectile) {
	// Exhaust trails above the falling body and flickers with Flame.
	flame := p.Height * (0.3 + 0.15*math.Sin(p.Flame))
	c.FillRect(p.X+p.Width*0.25, p.Y-flame, p.Width*0.5, flame, draw.Orange)
	c.FillRect(p.X, p.Y, p.Width, p.Height, draw.Gray(0.75))
	c.FillRect(p.X, p.Y+p.Height*0.8, p.Width, p.Height*0.2, draw.Red)
}

// craftShape is the player outline as fractions of its box, nose up.
var craftShape = []draw.Point{
	{X: 0.5, Y: 0}, {X: 0.6, Y: 0.3}, {X: 1, Y: 0.55}, {X: 1, Y: 0.65},
	{X: 0.6, Y: 0.6}, {X: 0.65, Y: 1}, {X: 0.35, Y: 1}, {X: 0.4, Y: 0.6},
	{X: 0, Y: 0.65}, {X: 0, Y: 0.55}, {X: 0.4, Y: 0.3},
}

func paintPlayer(c *draw.Canvas, p *object.Player) {
	if p == nil || !p.Alive {
		return
	}
	points := c.BorrowPoints(len(craftShape))
	for i, s := range craftShape {
		points[i] = draw.Point{X: p.X + s.X*p.Width, Y: p.Y + s.Y*p.Height}
	}
	c.DrawPolygon(points, draw.Cyan, true)
}

func paintExplosion(c *draw.Canvas, e *object.Explosion) {
	if !e.Active() {
		return
	}
	alpha := e.Alpha()
	c.FillCircle(e.X, e.Y, e.Radius*0.6, draw.Fire(alpha))
	c.DrawCircle(e.X, e.Y, e.Radius, draw.Fire(alpha*0.6))
}

// HUD returns the status line shown during play.
func HUD(sess *game.Session) string {
	return fmt.Sprintf("Score: %d  Level: %d  Speed: %.1f  Missiles/wave: %d",
		sess.Progress.Score, sess.Progress.Level, sess.Progress.Speed, sess.Progress.BatchSize)
}

// Line is a text overlay positioned relative to the canvas center row.
type Line struct {
	Text   string
	Offset int
}

// Overlay returns the centered texts for the session's phase.
func Overlay(sess *game.Session) []Line {
	switch sess.Phase {
	case game.PhaseNotStarted:
		return []Line{{TitleText, -2}, {StartPrompt, 0}, {ControlsText, 2}}
	case game.PhaseGameOver:
		return []Line{{RestartPrompt, -1}, {fmt.Sprintf("Score: %d", sess.Progress.Score), 1}}
	default:
		return nil
	}
}

// ShowHUD reports whether the status line is visible in the session's phase.
func ShowHUD(sess *game.Session) bool {
	return sess.Phase != game.PhaseNotStarted
}
