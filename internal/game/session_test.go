package game

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/tomz197/missiles/internal/config"
	"github.com/tomz197/missiles/internal/object"
)

// newTestSession returns a session without background decorations so
// that the random source only feeds gameplay.
func newTestSession(rng object.Rand) *Session {
	s := config.Default()
	s.StarCount = 0
	s.PlanetCount = 0
	return NewSession(s, rng)
}

func startedSession(t *testing.T, rng object.Rand) *Session {
	t.Helper()
	sess := newTestSession(rng)
	out := sess.Tick(Input{Start: true})
	if sess.Phase != PhasePlaying {
		t.Fatalf("Expected playing after start, got %s", sess.Phase)
	}
	if !slices.Equal(out.Cues, []Cue{CueMusicStart}) {
		t.Fatalf("Expected music start cue, got %v", out.Cues)
	}
	return sess
}

func TestNewSessionInitialState(t *testing.T) {
	sess := NewSession(config.Default(), object.NewRand(1))

	if sess.Phase != PhaseNotStarted {
		t.Errorf("Expected not started, got %s", sess.Phase)
	}
	if sess.Progress.Score != 0 || sess.Progress.Level != 1 {
		t.Errorf("Expected score 0 level 1, got %d/%d", sess.Progress.Score, sess.Progress.Level)
	}
	if sess.Progress.Speed != 5 || sess.Progress.BatchSize != 1 {
		t.Errorf("Expected speed 5 batch 1, got %v/%d", sess.Progress.Speed, sess.Progress.BatchSize)
	}
	if sess.Player.X != 750 || sess.Player.Y != 880 || !sess.Player.Alive {
		t.Errorf("Expected live craft at (750, 880), got %+v", sess.Player)
	}
	if len(sess.Stars) != 200 || len(sess.Planets) != 1 {
		t.Errorf("Expected 200 stars and 1 planet, got %d/%d", len(sess.Stars), len(sess.Planets))
	}
}

func TestNotStartedIgnoresGameplayInput(t *testing.T) {
	sess := newTestSession(&seqRand{})
	for range 60 {
		out := sess.Tick(Input{Left: true, Up: true, Restart: true})
		if out.Transitioned() {
			t.Fatalf("Expected no transition without start, got %s", out.Phase)
		}
	}
	if sess.Player.X != 750 || sess.Player.Y != 880 {
		t.Errorf("Expected craft not to move, got (%v, %v)", sess.Player.X, sess.Player.Y)
	}
	if len(sess.Projectiles) != 0 {
		t.Errorf("Expected no projectiles before start, got %d", len(sess.Projectiles))
	}
}

func TestPlayingMovesCraft(t *testing.T) {
	sess := startedSession(t, &seqRand{})
	sess.Tick(Input{Left: true, Up: true})
	if sess.Player.X != 740 || sess.Player.Y != 870 {
		t.Errorf("Expected (740, 870), got (%v, %v)", sess.Player.X, sess.Player.Y)
	}
	sess.Tick(Input{Left: true, Right: true})
	if sess.Player.X != 740 {
		t.Errorf("Expected opposite keys to cancel, got x %v", sess.Player.X)
	}
}

func TestSpawnEveryInterval(t *testing.T) {
	sess := startedSession(t, &seqRand{ints: []int{300}, floats: []float64{0.5}})

	for frame := 1; frame <= 60; frame++ {
		out := sess.Tick(Input{})
		spawned := frame%30 == 0
		if spawned != (out.Spawned == 1) {
			t.Fatalf("Frame %d: expected spawned=%v, got %d", frame, spawned, out.Spawned)
		}
		if spawned != slices.Contains(out.Cues, CueSpawn) {
			t.Fatalf("Frame %d: spawn cue mismatch, got %v", frame, out.Cues)
		}
	}
	if len(sess.Projectiles) != 2 {
		t.Fatalf("Expected 2 projectiles, got %d", len(sess.Projectiles))
	}
	p := sess.Projectiles[1]
	if p.X != 300 || p.VX != 0 {
		t.Errorf("Expected projectile at x 300 with no drift, got x %v vx %v", p.X, p.VX)
	}
}

func TestExitScoresAndLevelsUp(t *testing.T) {
	sess := startedSession(t, &seqRand{})
	sess.Progress.Score = 29
	sess.Projectiles = append(sess.Projectiles, projectileAt(0, 998))

	out := sess.Tick(Input{})
	if out.Scored != 1 || sess.Progress.Score != 30 {
		t.Fatalf("Expected 1 scored and score 30, got %d and %d", out.Scored, sess.Progress.Score)
	}
	if len(sess.Projectiles) != 0 {
		t.Errorf("Expected exited projectile removed, got %d", len(sess.Projectiles))
	}
	if out.LevelUps != 1 || !slices.Contains(out.Cues, CueLevelUp) {
		t.Errorf("Expected a level-up cue, got %d %v", out.LevelUps, out.Cues)
	}
	if sess.Progress.Level != 2 || sess.Progress.Speed != 5.5 || sess.Progress.BatchSize != 2 {
		t.Errorf("Expected level 2 speed 5.5 batch 2, got %+v", sess.Progress)
	}
}

func TestProjectileCollisionInSession(t *testing.T) {
	sess := startedSession(t, &seqRand{})
	sess.Projectiles = append(sess.Projectiles, projectileAt(100, 300), projectileAt(110, 310))

	out := sess.Tick(Input{})
	if out.Collisions != 1 {
		t.Fatalf("Expected 1 collision, got %d", out.Collisions)
	}
	if !slices.Equal(out.Cues, []Cue{CueSmallExplosion}) {
		t.Errorf("Expected small explosion cue, got %v", out.Cues)
	}
	if len(sess.Projectiles) != 0 {
		t.Errorf("Expected destroyed projectiles purged, got %d", len(sess.Projectiles))
	}
	if sess.Explosions.Len() != 1 || sess.Explosions.Explosions()[0].Kind != object.ExplosionSmall {
		t.Errorf("Expected one small explosion, got %d", sess.Explosions.Len())
	}
	if sess.Progress.Score != 0 {
		t.Errorf("Expected collisions not to score, got %d", sess.Progress.Score)
	}
}

// TestFullGameCycle walks NotStarted -> Playing -> Exploding -> GameOver -> NotStarted.
func TestFullGameCycle(t *testing.T) {
	sess := startedSession(t, &seqRand{floats: []float64{0}})
	sess.Progress.Score = 12

	frozen := projectileAt(0, 500)
	sess.Projectiles = append(sess.Projectiles, frozen, projectileAt(780, 870))

	out := sess.Tick(Input{})
	if out.Phase != PhaseExploding || !out.PlayerHit {
		t.Fatalf("Expected the hit to start exploding, got %s", out.Phase)
	}
	if !slices.Equal(out.Cues, []Cue{CueLargeExplosion, CueMusicStop}) {
		t.Errorf("Expected large explosion then music stop, got %v", out.Cues)
	}
	if sess.Player.Alive {
		t.Errorf("Expected craft destroyed")
	}
	if sess.ExplodeFrames != 100 {
		t.Errorf("Expected 100 death frames, got %d", sess.ExplodeFrames)
	}
	// Impact burst plus all 11 chain candidates with a zero random source.
	if sess.Explosions.Len() != 12 {
		t.Errorf("Expected 12 explosions, got %d", sess.Explosions.Len())
	}
	if len(sess.Projectiles) != 1 {
		t.Fatalf("Expected the striking projectile purged, got %d left", len(sess.Projectiles))
	}

	frozenY := frozen.Y
	for frame := 1; frame < 100; frame++ {
		out = sess.Tick(Input{Restart: true, Left: true})
		if out.Phase != PhaseExploding {
			t.Fatalf("Frame %d: expected exploding, got %s", frame, out.Phase)
		}
	}
	if frozen.Y != frozenY {
		t.Errorf("Expected projectiles frozen while exploding, moved to %v", frozen.Y)
	}
	if sess.Progress.Score != 12 {
		t.Errorf("Expected score frozen at 12, got %d", sess.Progress.Score)
	}

	out = sess.Tick(Input{})
	if out.From != PhaseExploding || out.Phase != PhaseGameOver {
		t.Fatalf("Expected game over after 100 frames, got %s -> %s", out.From, out.Phase)
	}
	if sess.Explosions.Len() != 0 {
		t.Errorf("Expected chain reaction finished by game over, got %d left", sess.Explosions.Len())
	}

	out = sess.Tick(Input{Start: true})
	if out.Phase != PhaseGameOver {
		t.Fatalf("Expected start to be ignored after game over, got %s", out.Phase)
	}

	out = sess.Tick(Input{Restart: true})
	if out.Phase != PhaseNotStarted {
		t.Fatalf("Expected restart to return to the title, got %s", out.Phase)
	}
	if sess.Progress.Score != 0 || sess.Progress.Level != 1 || sess.Progress.Speed != 5 || sess.Progress.BatchSize != 1 {
		t.Errorf("Expected progression reset, got %+v", sess.Progress)
	}
	if len(sess.Projectiles) != 0 || sess.Explosions.Len() != 0 {
		t.Errorf("Expected cleared field, got %d projectiles %d explosions", len(sess.Projectiles), sess.Explosions.Len())
	}
	if !sess.Player.Alive || sess.Player.X != 750 || sess.Player.Y != 880 {
		t.Errorf("Expected a fresh craft at the start position, got %+v", sess.Player)
	}
	if sess.Spawner.Counter() != 0 {
		t.Errorf("Expected spawner reset, got %d", sess.Spawner.Counter())
	}
}

func TestSnapshotJSON(t *testing.T) {
	sess := startedSession(t, &seqRand{})
	sess.Projectiles = append(sess.Projectiles, projectileAt(10, 20))

	data, err := json.Marshal(sess.Snapshot().WithCues([]Cue{CueSpawn}))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got["phase"] != "playing" {
		t.Errorf("Expected phase playing, got %v", got["phase"])
	}
	if got["level"] != float64(1) {
		t.Errorf("Expected level 1, got %v", got["level"])
	}
	if ps, _ := got["projectiles"].([]any); len(ps) != 1 {
		t.Errorf("Expected 1 projectile, got %v", got["projectiles"])
	}
	if cues, _ := got["cues"].([]any); len(cues) != 1 || cues[0] != "spawn" {
		t.Errorf("Expected spawn cue, got %v", got["cues"])
	}
}
