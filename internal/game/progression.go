package game

import "github.com/tomz197/missiles/internal/config"

// Progression tracks score and the difficulty curve.
type Progression struct {
	Score       int
	Level       int
	Speed       float64 // Vertical speed shared by all projectiles
	BatchSize   int     // Projectiles per spawn event
	LastLevelUp int     // Score at which the last level-up happened

	threshold      int
	baseSpeed      float64
	speedIncrement float64
	initialBatch   int
	batchIncrement int
}

// NewProgression returns a progression at level 1.
func NewProgression(s config.Settings) Progression {
	p := Progression{
		threshold:      s.LevelUpThreshold,
		baseSpeed:      s.ProjectileBaseSpeed,
		speedIncrement: s.ProjectileSpeedIncrement,
		initialBatch:   s.InitialBatchSize,
		batchIncrement: s.BatchIncrement,
	}
	if p.threshold < 1 {
		p.threshold = 1
	}
	p.Reset()
	return p
}

// Reset returns to score 0, level 1, base speed and the initial batch.
func (p *Progression) Reset() {
	p.Score = 0
	p.Level = 1
	p.Speed = p.baseSpeed
	p.BatchSize = p.initialBatch
	p.LastLevelUp = 0
}

// RecordExit scores one projectile leaving through the bottom.
func (p *Progression) RecordExit() {
	p.Score++
}

// CheckLevelUp levels up once for every threshold multiple reached since
// the last level-up and returns how many levels were gained. A score that
// jumps past several multiples in one frame still triggers each of them.
func (p *Progression) CheckLevelUp() int {
	gained := 0
	for next := p.LastLevelUp + p.threshold; p.Score > 0 && next <= p.Score; next += p.threshold {
		p.Level++
		p.Speed += p.speedIncrement
		p.BatchSize += p.batchIncrement
		p.LastLevelUp = next
		gained++
	}
	return gained
}

// NextLevelAt returns the score that triggers the next level-up.
func (p *Progression) NextLevelAt() int {
	return p.LastLevelUp + p.threshold
}
