package game

import (
	"math"

	"github.com/tomz197/missiles/internal/config"
	"github.com/tomz197/missiles/internal/object"
	"github.com/tomz197/missiles/internal/physics"
)

// Session holds all state for one game. It is owned by a single frame loop
// and must not be shared between goroutines.
type Session struct {
	Settings      config.Settings
	Field         object.Field
	Phase         Phase
	ExplodeFrames int    // Frames left before Exploding turns into GameOver
	Frame         uint64 // Frames ticked since creation
	Progress      Progression
	Player        *object.Player
	Projectiles   []*object.Projectile
	Explosions    Sequencer
	Spawner       *object.ProjectileSpawner
	Stars         []*object.Star
	Planets       []*object.Planet

	rng  object.Rand
	grid *physics.SpatialGrid
}

// NewSession creates a session on the title screen.
func NewSession(s config.Settings, rng object.Rand) *Session {
	field := object.Field{Width: s.FieldWidth, Height: s.FieldHeight}
	sess := &Session{
		Settings: s,
		Field:    field,
		Progress: NewProgression(s),
		Spawner:  object.NewProjectileSpawner(s),
		rng:      rng,
		grid:     physics.NewSpatialGrid(s.FieldWidth, s.FieldHeight, math.Max(s.ProjectileWidth, s.ProjectileHeight)),
	}
	for range s.StarCount {
		sess.Stars = append(sess.Stars, object.NewStar(field, rng))
	}
	for range s.PlanetCount {
		sess.Planets = append(sess.Planets, object.NewPlanet(field, rng))
	}
	sess.Reset()
	return sess
}

// Reset returns to the title screen with a fresh craft and cleared
// projectiles, explosions and progression. The background is kept.
func (s *Session) Reset() {
	s.Phase = PhaseNotStarted
	s.ExplodeFrames = 0
	s.Player = object.NewPlayer(s.Settings)
	clear(s.Projectiles)
	s.Projectiles = s.Projectiles[:0]
	s.Explosions.Clear()
	s.Spawner.Reset()
	s.Progress.Reset()
}

// Tick advances the session by one frame using the given input.
func (s *Session) Tick(in Input) FrameOutput {
	s.Frame++
	out := FrameOutput{Frame: s.Frame, From: s.Phase}

	s.updateBackground()

	switch s.Phase {
	case PhaseNotStarted:
		if in.Start {
			s.Phase = PhasePlaying
			out.emit(CueMusicStart)
		}
	case PhasePlaying:
		s.updatePlaying(in, &out)
	case PhaseExploding:
		s.updateExploding()
	case PhaseGameOver:
		if in.Restart {
			s.Reset()
		}
	}

	out.Phase = s.Phase
	return out
}

func (s *Session) updateBackground() {
	for _, st := range s.Stars {
		st.Update()
	}
	for _, p := range s.Planets {
		p.Update(s.Field, s.rng)
	}
}

// updatePlaying runs one gameplay frame: move, spawn, advance, collide,
// purge, then progression.
func (s *Session) updatePlaying(in Input, out *FrameOutput) {
	s.Player.Move(axis(in.Left, in.Right), axis(in.Up, in.Down))

	if batch := s.Spawner.Update(s.Progress.BatchSize, s.rng); len(batch) > 0 {
		s.Projectiles = append(s.Projectiles, batch...)
		out.Spawned = len(batch)
		out.emit(CueSpawn)
	}

	for _, p := range s.Projectiles {
		if p.IsDestroyed() {
			continue
		}
		if p.Update(s.Progress.Speed, s.Field) {
			p.MarkDestroyed()
			s.Progress.RecordExit()
			out.Scored++
		}
	}

	for _, c := range DetectProjectileCollisions(s.Projectiles, s.grid) {
		s.Explosions.Add(object.NewExplosion(c.X, c.Y, object.ExplosionSmall, s.Settings.SmallExplosion, 0))
		out.Collisions++
		out.emit(CueSmallExplosion)
	}

	if hit := DetectPlayerCollision(s.Player, s.Projectiles); hit != nil {
		s.destroyPlayer(hit)
		out.PlayerHit = true
		out.emit(CueLargeExplosion)
		out.emit(CueMusicStop)
	}

	s.purgeProjectiles()
	s.Explosions.Advance()

	if n := s.Progress.CheckLevelUp(); n > 0 {
		out.LevelUps = n
		for range n {
			out.emit(CueLevelUp)
		}
	}
}

// destroyPlayer starts the death sequence: a large burst where the
// projectile struck plus the chain reaction across the craft.
func (s *Session) destroyPlayer(hit *object.Projectile) {
	hit.MarkDestroyed()
	s.Player.Alive = false

	x, y := hit.Center()
	s.Explosions.Add(object.NewExplosion(x, y, object.ExplosionLarge, s.Settings.LargeExplosion, 0))
	s.Explosions.Add(ChainReaction(s.Player.Bounds(), s.rng, s.Settings.LargeExplosion, s.Settings.ChainProbability)...)

	s.Phase = PhaseExploding
	s.ExplodeFrames = s.Settings.DeathFrames()
}

// updateExploding animates the explosions while the projectiles stay frozen.
func (s *Session) updateExploding() {
	s.Explosions.Advance()
	s.ExplodeFrames--
	if s.ExplodeFrames <= 0 {
		s.ExplodeFrames = 0
		s.Phase = PhaseGameOver
	}
}

func (s *Session) purgeProjectiles() {
	kept := s.Projectiles[:0] // reuse backing array
	for _, p := range s.Projectiles {
		if !p.IsDestroyed() {
			kept = append(kept, p)
		}
	}
	clear(s.Projectiles[len(kept):])
	s.Projectiles = kept
}

func axis(neg, pos bool) float64 {
	switch {
	case neg && !pos:
		return -1
	case pos && !neg:
		return 1
	default:
		return 0
	}
}
