// Package object defines the simulation entities: the player craft,
// falling projectiles, explosions and the cosmetic background.
package object

import (
	"math/rand"

	"github.com/tomz197/missiles/internal/physics"
)

// Rand is the randomness source entities draw from. *rand.Rand satisfies it;
// tests supply deterministic sequences.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a seeded pseudo-random source.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// Field holds the play-field dimensions in logical units.
type Field struct {
	Width  float64
	Height float64
}

// Destructible is implemented by objects that can be destroyed/marked for removal.
type Destructible interface {
	// MarkDestroyed marks the object for removal at the end of the frame.
	MarkDestroyed()
	// IsDestroyed returns true if the object is marked for destruction.
	IsDestroyed() bool
}

// Boxed is implemented by entities with a collision box.
type Boxed interface {
	Bounds() physics.Rect
}

// uniform returns a value in [lo, hi).
func uniform(rng Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// randInt returns an integer in [lo, hi], both ends inclusive.
func randInt(rng Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
