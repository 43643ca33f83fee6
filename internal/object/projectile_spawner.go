package object

import (
	"github.com/tomz197/missiles/internal/config"
)

// ProjectileSpawner releases a batch of projectiles along the top edge
// every Interval frames.
type ProjectileSpawner struct {
	Interval int // Frames between spawn events
	counter  int

	field  Field
	width  float64
	height float64
	jitter float64
}

// NewProjectileSpawner creates a spawner from the settings.
func NewProjectileSpawner(s config.Settings) *ProjectileSpawner {
	interval := s.SpawnInterval
	if interval < 1 {
		interval = 1
	}
	return &ProjectileSpawner{
		Interval: interval,
		field:    Field{Width: s.FieldWidth, Height: s.FieldHeight},
		width:    s.ProjectileWidth,
		height:   s.ProjectileHeight,
		jitter:   s.ProjectileJitter,
	}
}

// Update advances the frame counter by one. When the counter reaches the
// interval it returns exactly batch new projectiles at independent random
// positions and restarts the count; otherwise it returns nil.
func (s *ProjectileSpawner) Update(batch int, rng Rand) []*Projectile {
	s.counter++
	if s.counter < s.Interval {
		return nil
	}
	s.counter = 0

	if batch < 0 {
		batch = 0
	}
	spawned := make([]*Projectile, 0, batch)
	maxX := int(s.field.Width - s.width)
	for i := 0; i < batch; i++ {
		x := float64(randInt(rng, 0, maxX))
		vx := uniform(rng, -s.jitter, s.jitter)
		spawned = append(spawned, NewProjectile(x, vx, s.width, s.height))
	}
	return spawned
}

// Counter returns the frames counted since the last spawn event.
func (s *ProjectileSpawner) Counter() int {
	return s.counter
}

// Reset restarts the frame count.
func (s *ProjectileSpawner) Reset() {
	s.counter = 0
}
