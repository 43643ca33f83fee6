package game

import (
	"github.com/tomz197/missiles/internal/config"
	"github.com/tomz197/missiles/internal/object"
	"github.com/tomz197/missiles/internal/physics"
)

// ChainPoint is a candidate burst of the death chain reaction.
type ChainPoint struct {
	X, Y  float64
	Delay int
}

// chainOffsets are the fixed candidates as fractions of the craft box,
// cascading outward in time.
var chainOffsets = []struct {
	fx, fy float64
	delay  int
}{
	{0.5, 0.5, 0},  // center
	{0.2, 0.5, 5},  // left rotor
	{0.8, 0.5, 5},  // right rotor
	{0.3, 0.3, 10}, // left wing
	{0.7, 0.3, 10}, // right wing
	{0.4, 0.6, 15}, // body
	{0.6, 0.6, 15}, // body
	{0.5, 0.0, 20}, // nose
	{0.5, 1.0, 20}, // tail
}

// chainRandomDelays are the delays of the two randomly placed candidates.
var chainRandomDelays = []int{25, 30}

// ChainCandidates returns all candidate points for a craft occupying box,
// in increasing delay order. The last two are placed at random inside the box.
func ChainCandidates(box physics.Rect, rng object.Rand) []ChainPoint {
	points := make([]ChainPoint, 0, len(chainOffsets)+len(chainRandomDelays))
	for _, o := range chainOffsets {
		points = append(points, ChainPoint{
			X:     box.X + box.W*o.fx,
			Y:     box.Y + box.H*o.fy,
			Delay: o.delay,
		})
	}
	for _, delay := range chainRandomDelays {
		x := box.X + rng.Float64()*box.W
		y := box.Y + rng.Float64()*box.H
		points = append(points, ChainPoint{X: x, Y: y, Delay: delay})
	}
	return points
}

// ChainReaction builds the delayed large explosions for a destroyed craft.
// Each candidate is kept independently with the given probability. When
// every draw fails the center burst is kept, so there is always at least one.
func ChainReaction(box physics.Rect, rng object.Rand, preset config.ExplosionPreset, probability float64) []*object.Explosion {
	candidates := ChainCandidates(box, rng)
	explosions := make([]*object.Explosion, 0, len(candidates))
	for _, c := range candidates {
		if rng.Float64() < probability {
			explosions = append(explosions, object.NewExplosion(c.X, c.Y, object.ExplosionLarge, preset, c.Delay))
		}
	}
	if len(explosions) == 0 {
		c := candidates[0]
		explosions = append(explosions, object.NewExplosion(c.X, c.Y, object.ExplosionLarge, preset, c.Delay))
	}
	return explosions
}
