package config

import (
	"fmt"
	"time"
)

// Play field
const (
	FieldWidth  = 1600
	FieldHeight = 1000
)

// Player
const (
	PlayerWidth        = 100
	PlayerHeight       = 80
	PlayerSpeed        = 10
	PlayerMinY         = 100 // Highest the craft may climb
	PlayerBottomMargin = 20  // Gap kept between the craft and the field bottom
	PlayerStartMargin  = 40  // Start position distance from the field bottom
)

// Projectiles
const (
	ProjectileWidth          = 20
	ProjectileHeight         = 40
	ProjectileBaseSpeed      = 5.0
	ProjectileSpeedIncrement = 0.5
	ProjectileJitter         = 1.0 // Horizontal speed is drawn from [-jitter, jitter)
)

// Spawning and progression
const (
	SpawnInterval    = 30 // Frames between spawn events
	InitialBatchSize = 1
	BatchIncrement   = 1 // Added to the batch size on every level-up
	LevelUpThreshold = 30
)

// Death sequence
const (
	ExplosionDuration = 60 // Frames
	ExplosionBuffer   = 40 // Extra frames so the chain reaction can finish
	ChainProbability  = 0.7
)

// Decorations
const (
	StarCount   = 200
	PlanetCount = 1
)

// Frame timing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// ExplosionPreset holds the growth and fade parameters of an explosion kind.
type ExplosionPreset struct {
	Radius     float64
	MaxRadius  float64
	GrowthRate float64
	Fade       float64
	FadeRate   float64
}

// Explosion presets.
var (
	SmallExplosion = ExplosionPreset{Radius: 8, MaxRadius: 60, GrowthRate: 2, Fade: 255, FadeRate: 8}
	LargeExplosion = ExplosionPreset{Radius: 15, MaxRadius: 150, GrowthRate: 3, Fade: 255, FadeRate: 5}
)

// Settings carries every tunable the simulation reads. Zero values are not
// meaningful; start from Default.
type Settings struct {
	FieldWidth  float64
	FieldHeight float64

	PlayerWidth        float64
	PlayerHeight       float64
	PlayerSpeed        float64
	PlayerMinY         float64
	PlayerBottomMargin float64
	PlayerStartMargin  float64

	ProjectileWidth          float64
	ProjectileHeight         float64
	ProjectileBaseSpeed      float64
	ProjectileSpeedIncrement float64
	ProjectileJitter         float64

	SpawnInterval    int
	InitialBatchSize int
	BatchIncrement   int
	LevelUpThreshold int

	SmallExplosion    ExplosionPreset
	LargeExplosion    ExplosionPreset
	ExplosionDuration int
	ExplosionBuffer   int
	ChainProbability  float64

	StarCount   int
	PlanetCount int

	TargetFPS int
}

// Default returns the canonical game settings.
func Default() Settings {
	return Settings{
		FieldWidth:               FieldWidth,
		FieldHeight:              FieldHeight,
		PlayerWidth:              PlayerWidth,
		PlayerHeight:             PlayerHeight,
		PlayerSpeed:              PlayerSpeed,
		PlayerMinY:               PlayerMinY,
		PlayerBottomMargin:       PlayerBottomMargin,
		PlayerStartMargin:        PlayerStartMargin,
		ProjectileWidth:          ProjectileWidth,
		ProjectileHeight:         ProjectileHeight,
		ProjectileBaseSpeed:      ProjectileBaseSpeed,
		ProjectileSpeedIncrement: ProjectileSpeedIncrement,
		ProjectileJitter:         ProjectileJitter,
		SpawnInterval:            SpawnInterval,
		InitialBatchSize:         InitialBatchSize,
		BatchIncrement:           BatchIncrement,
		LevelUpThreshold:         LevelUpThreshold,
		SmallExplosion:           SmallExplosion,
		LargeExplosion:           LargeExplosion,
		ExplosionDuration:        ExplosionDuration,
		ExplosionBuffer:          ExplosionBuffer,
		ChainProbability:         ChainProbability,
		StarCount:                StarCount,
		PlanetCount:              PlanetCount,
		TargetFPS:                TargetFPS,
	}
}

// FromEnv loads .env (if present) and returns Default overridden by any
// GAME_* variables. Overrides that fail validation are dropped.
func FromEnv() Settings {
	_ = LoadDotEnv()

	def := Default()
	s := def
	s.FieldWidth = GetEnvFloat("GAME_FIELD_WIDTH", s.FieldWidth)
	s.FieldHeight = GetEnvFloat("GAME_FIELD_HEIGHT", s.FieldHeight)
	s.PlayerSpeed = GetEnvFloat("GAME_PLAYER_SPEED", s.PlayerSpeed)
	s.ProjectileBaseSpeed = GetEnvFloat("GAME_PROJECTILE_SPEED", s.ProjectileBaseSpeed)
	s.ProjectileSpeedIncrement = GetEnvFloat("GAME_SPEED_INCREMENT", s.ProjectileSpeedIncrement)
	s.ProjectileJitter = GetEnvFloat("GAME_PROJECTILE_JITTER", s.ProjectileJitter)
	s.SpawnInterval = GetEnvInt("GAME_SPAWN_INTERVAL", s.SpawnInterval)
	s.InitialBatchSize = GetEnvInt("GAME_INITIAL_BATCH", s.InitialBatchSize)
	s.BatchIncrement = GetEnvInt("GAME_BATCH_INCREMENT", s.BatchIncrement)
	s.LevelUpThreshold = GetEnvInt("GAME_LEVEL_THRESHOLD", s.LevelUpThreshold)
	s.ExplosionDuration = GetEnvInt("GAME_EXPLOSION_DURATION", s.ExplosionDuration)
	s.ExplosionBuffer = GetEnvInt("GAME_EXPLOSION_BUFFER", s.ExplosionBuffer)
	s.ChainProbability = GetEnvFloat("GAME_CHAIN_PROBABILITY", s.ChainProbability)
	s.StarCount = GetEnvInt("GAME_STARS", s.StarCount)
	s.PlanetCount = GetEnvInt("GAME_PLANETS", s.PlanetCount)

	if err := s.Validate(); err != nil {
		return def
	}
	return s
}

// Validate reports the first setting that would make the simulation
// ill-formed.
func (s Settings) Validate() error {
	switch {
	case s.FieldWidth <= s.PlayerWidth || s.FieldWidth <= s.ProjectileWidth:
		return fmt.Errorf("field width %.0f too small", s.FieldWidth)
	case s.FieldHeight <= s.PlayerMinY+s.PlayerHeight+s.PlayerBottomMargin:
		return fmt.Errorf("field height %.0f too small", s.FieldHeight)
	case s.PlayerSpeed <= 0:
		return fmt.Errorf("player speed must be positive, got %v", s.PlayerSpeed)
	case s.ProjectileBaseSpeed <= 0:
		return fmt.Errorf("projectile speed must be positive, got %v", s.ProjectileBaseSpeed)
	case s.ProjectileSpeedIncrement < 0:
		return fmt.Errorf("speed increment must not be negative, got %v", s.ProjectileSpeedIncrement)
	case s.ProjectileJitter < 0:
		return fmt.Errorf("jitter must not be negative, got %v", s.ProjectileJitter)
	case s.SpawnInterval < 1:
		return fmt.Errorf("spawn interval must be at least 1 frame, got %d", s.SpawnInterval)
	case s.InitialBatchSize < 1:
		return fmt.Errorf("initial batch must be at least 1, got %d", s.InitialBatchSize)
	case s.BatchIncrement < 0:
		return fmt.Errorf("batch increment must not be negative, got %d", s.BatchIncrement)
	case s.LevelUpThreshold < 1:
		return fmt.Errorf("level threshold must be at least 1, got %d", s.LevelUpThreshold)
	case s.ExplosionDuration < 0 || s.ExplosionBuffer < 0:
		return fmt.Errorf("explosion duration and buffer must not be negative")
	case s.ChainProbability < 0 || s.ChainProbability > 1:
		return fmt.Errorf("chain probability must be within [0, 1], got %v", s.ChainProbability)
	case s.StarCount < 0 || s.PlanetCount < 0:
		return fmt.Errorf("decoration counts must not be negative")
	case s.TargetFPS < 1:
		return fmt.Errorf("target fps must be at least 1, got %d", s.TargetFPS)
	}
	return nil
}

// DeathFrames returns how many frames the exploding phase lasts.
func (s Settings) DeathFrames() int {
	return s.ExplosionDuration + s.ExplosionBuffer
}

// FrameTime returns the duration of one simulation frame.
func (s Settings) FrameTime() time.Duration {
	return time.Second / time.Duration(s.TargetFPS)
}

// PlayerStart returns the top-left corner the craft starts from.
func (s Settings) PlayerStart() (x, y float64) {
	return s.FieldWidth/2 - s.PlayerWidth/2, s.FieldHeight - s.PlayerHeight - s.PlayerStartMargin
}
