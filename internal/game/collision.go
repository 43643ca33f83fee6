package game

import (
	"slices"

	"github.com/tomz197/missiles/internal/object"
	"github.com/tomz197/missiles/internal/physics"
)

// Collision records two projectiles that destroyed each other.
type Collision struct {
	A, B *object.Projectile
	X, Y float64 // Midpoint of the two centers
}

// DetectProjectileCollisions destroys every overlapping pair of live
// projectiles and returns the pairs in (i, j), i < j order. A projectile
// already destroyed earlier in the pass is skipped, so no projectile
// collides twice. When grid is nil every pair is tested directly.
func DetectProjectileCollisions(projectiles []*object.Projectile, grid *physics.SpatialGrid) []Collision {
	if len(projectiles) < 2 {
		return nil
	}
	if grid == nil {
		return bruteForceCollisions(projectiles)
	}

	grid.Clear()
	for i, p := range projectiles {
		if p.IsDestroyed() {
			continue
		}
		x, y := p.Center()
		grid.Insert(x, y, i)
	}

	var (
		collisions []Collision
		candidates []int
	)
	for i, a := range projectiles {
		if a.IsDestroyed() {
			continue
		}
		ax, ay := a.Center()
		candidates = candidates[:0]
		grid.QueryAround(ax, ay, func(j int) bool {
			if j > i {
				candidates = append(candidates, j)
			}
			return false
		})
		// Cells are visited row by row, restore slice order.
		slices.Sort(candidates)

		for _, j := range candidates {
			b := projectiles[j]
			if b.IsDestroyed() || !a.Bounds().Overlaps(b.Bounds()) {
				continue
			}
			collisions = append(collisions, collide(a, b))
			break
		}
	}
	return collisions
}

func bruteForceCollisions(projectiles []*object.Projectile) []Collision {
	var collisions []Collision
	for i, a := range projectiles {
		if a.IsDestroyed() {
			continue
		}
		for _, b := range projectiles[i+1:] {
			if b.IsDestroyed() || !a.Bounds().Overlaps(b.Bounds()) {
				continue
			}
			collisions = append(collisions, collide(a, b))
			break
		}
	}
	return collisions
}

func collide(a, b *object.Projectile) Collision {
	a.MarkDestroyed()
	b.MarkDestroyed()
	ax, ay := a.Center()
	bx, by := b.Center()
	x, y := physics.Midpoint(ax, ay, bx, by)
	return Collision{A: a, B: b, X: x, Y: y}
}

// DetectPlayerCollision returns the first live projectile overlapping the
// craft, or nil.
func DetectPlayerCollision(player *object.Player, projectiles []*object.Projectile) *object.Projectile {
	if player == nil || !player.Alive {
		return nil
	}
	box := player.Bounds()
	for _, p := range projectiles {
		if !p.IsDestroyed() && box.Overlaps(p.Bounds()) {
			return p
		}
	}
	return nil
}
