package object

import (
	"testing"

	"github.com/tomz197/missiles/internal/config"
)

// seqRand replays fixed values, cycling when exhausted.
type seqRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *seqRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *seqRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.ii%len(r.ints)]
	r.ii++
	if v >= n {
		v = n - 1
	}
	return v
}

func TestPlayerMoveClamps(t *testing.T) {
	s := config.Default()
	p := NewPlayer(s)

	for i := 0; i < 500; i++ {
		p.Move(-1, -1)
	}
	if p.X != 0 {
		t.Errorf("Expected X clamped to 0, got %v", p.X)
	}
	if p.Y != s.PlayerMinY {
		t.Errorf("Expected Y clamped to %v, got %v", s.PlayerMinY, p.Y)
	}

	for i := 0; i < 500; i++ {
		p.Move(1, 1)
	}
	if want := s.FieldWidth - s.PlayerWidth; p.X != want {
		t.Errorf("Expected X clamped to %v, got %v", want, p.X)
	}
	if want := s.FieldHeight - s.PlayerHeight - s.PlayerBottomMargin; p.Y != want {
		t.Errorf("Expected Y clamped to %v, got %v", want, p.Y)
	}
}

func TestPlayerMoveStep(t *testing.T) {
	s := config.Default()
	p := NewPlayer(s)
	x0, y0 := p.X, p.Y

	p.Move(1, -1)
	if p.X != x0+s.PlayerSpeed || p.Y != y0-s.PlayerSpeed {
		t.Errorf("Expected (%v, %v), got (%v, %v)", x0+s.PlayerSpeed, y0-s.PlayerSpeed, p.X, p.Y)
	}
	if !p.Alive {
		t.Error("Expected new player to be alive")
	}
}

func TestProjectileFallsAndExits(t *testing.T) {
	field := Field{Width: 100, Height: 100}
	p := NewProjectile(40, 0, 20, 40)
	if p.Y != -40 {
		t.Fatalf("Expected spawn y -40, got %v", p.Y)
	}

	frames := 0
	for !p.Update(5, field) {
		frames++
		if frames > 100 {
			t.Fatal("Projectile never exited")
		}
	}
	if p.Y <= field.Height {
		t.Errorf("Expected y past bottom, got %v", p.Y)
	}
}

func TestProjectileBouncesOffWalls(t *testing.T) {
	field := Field{Width: 100, Height: 1000}

	left := NewProjectile(0.5, -1, 20, 40)
	left.Update(1, field)
	if left.VX != 1 {
		t.Errorf("Expected reflected VX 1, got %v", left.VX)
	}
	if left.X < 0 {
		t.Errorf("Expected X inside field, got %v", left.X)
	}

	right := NewProjectile(79.5, 1, 20, 40)
	right.Update(1, field)
	if right.VX != -1 {
		t.Errorf("Expected reflected VX -1, got %v", right.VX)
	}
	if right.X > 80 {
		t.Errorf("Expected X <= 80, got %v", right.X)
	}

	for i := 0; i < 500; i++ {
		right.Update(0, field)
		if right.X < 0 || right.X > 80 {
			t.Fatalf("Frame %d: X left the field: %v", i, right.X)
		}
	}
}

func TestProjectileDestroyedIdempotent(t *testing.T) {
	p := NewProjectile(0, 0, 20, 40)
	if p.IsDestroyed() {
		t.Fatal("Expected fresh projectile not destroyed")
	}
	p.MarkDestroyed()
	p.MarkDestroyed()
	if !p.IsDestroyed() {
		t.Error("Expected projectile destroyed")
	}
}

func TestExplosionGrowsAndFades(t *testing.T) {
	e := NewExplosion(10, 20, ExplosionSmall, config.SmallExplosion, 0)

	frames := 0
	lastFade := e.Fade
	for !e.Update() {
		frames++
		if e.Fade > lastFade {
			t.Fatalf("Fade increased from %v to %v", lastFade, e.Fade)
		}
		lastFade = e.Fade
		if e.Radius > e.MaxRadius {
			t.Fatalf("Radius %v exceeded max %v", e.Radius, e.MaxRadius)
		}
	}
	// 255 / 8 -> finished on the 32nd update
	if frames != 31 {
		t.Errorf("Expected 31 live updates, got %d", frames)
	}
	if e.Radius != e.MaxRadius {
		t.Errorf("Expected radius clamped at %v, got %v", e.MaxRadius, e.Radius)
	}
	if !e.Finished() || e.Active() {
		t.Error("Expected finished, inactive explosion")
	}
	if !e.Update() {
		t.Error("Expected finished explosion to keep requesting removal")
	}
}

func TestExplosionDelayIsDormant(t *testing.T) {
	e := NewExplosion(0, 0, ExplosionLarge, config.LargeExplosion, 3)

	for i := 0; i < 3; i++ {
		if e.Active() {
			t.Fatalf("Frame %d: expected dormant explosion", i)
		}
		e.Update()
		if e.Radius != config.LargeExplosion.Radius || e.Fade != config.LargeExplosion.Fade {
			t.Fatalf("Frame %d: dormant explosion changed: r=%v fade=%v", i, e.Radius, e.Fade)
		}
	}
	if e.Delay != 0 || !e.Active() {
		t.Fatalf("Expected delay elapsed, got %d", e.Delay)
	}

	e.Update()
	if e.Radius != 18 || e.Fade != 250 {
		t.Errorf("Expected r=18 fade=250, got r=%v fade=%v", e.Radius, e.Fade)
	}
}

func TestStarTwinklesWithinRange(t *testing.T) {
	s := &Star{Brightness: 0.95, Speed: 0.08}
	for i := 0; i < 200; i++ {
		s.Update()
		if s.Brightness < starMinBrightness || s.Brightness > starMaxBrightness {
			t.Fatalf("Brightness out of range: %v", s.Brightness)
		}
	}
}

func TestPlanetResetsAfterLeaving(t *testing.T) {
	field := Field{Width: 800, Height: 100}
	rng := &seqRand{floats: []float64{0.5}, ints: []int{10}}
	p := NewPlanet(field, rng)
	p.Y = field.Height + p.Size - 0.1

	p.Update(field, rng)
	if p.Y >= 0 {
		t.Errorf("Expected planet back above the field, got y=%v", p.Y)
	}
	if p.Size < 40 || p.Size > 60 {
		t.Errorf("Expected size within [40, 60], got %v", p.Size)
	}
}

func TestSpawnerEmitsBatchOnInterval(t *testing.T) {
	s := config.Default()
	s.SpawnInterval = 3
	sp := NewProjectileSpawner(s)
	rng := &seqRand{floats: []float64{0.25}, ints: []int{100, 700}}

	if got := sp.Update(2, rng); got != nil {
		t.Fatalf("Expected nothing on frame 1, got %d", len(got))
	}
	if got := sp.Update(2, rng); got != nil {
		t.Fatalf("Expected nothing on frame 2, got %d", len(got))
	}
	got := sp.Update(2, rng)
	if len(got) != 2 {
		t.Fatalf("Expected batch of 2, got %d", len(got))
	}
	if sp.Counter() != 0 {
		t.Errorf("Expected counter reset, got %d", sp.Counter())
	}
	if got[0].X != 100 || got[1].X != 700 {
		t.Errorf("Expected x 100 and 700, got %v and %v", got[0].X, got[1].X)
	}
	if got[0].VX != -0.5 {
		t.Errorf("Expected jitter -0.5, got %v", got[0].VX)
	}
	if got[0].Y != -s.ProjectileHeight {
		t.Errorf("Expected spawn above the field, got y=%v", got[0].Y)
	}
}

func TestSpawnerReset(t *testing.T) {
	sp := NewProjectileSpawner(config.Default())
	sp.Update(1, &seqRand{})
	sp.Reset()
	if sp.Counter() != 0 {
		t.Errorf("Expected 0 after reset, got %d", sp.Counter())
	}
}
