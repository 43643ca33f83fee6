// Package game implements the simulation core: the session state machine,
// spawning, collisions, the explosion sequencer and score progression.
// Everything here runs synchronously inside one frame and never blocks.
package game

// Phase is the top-level state of a session.
type Phase int

const (
	PhaseNotStarted Phase = iota // Title screen
	PhasePlaying                 // Active gameplay
	PhaseExploding               // Craft destroyed, death sequence counting down
	PhaseGameOver                // Waiting for restart
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhasePlaying:
		return "playing"
	case PhaseExploding:
		return "exploding"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Cue names a fire-and-forget audio event emitted by the simulation.
type Cue int

const (
	CueSpawn Cue = iota
	CueSmallExplosion
	CueLargeExplosion
	CueLevelUp
	CueMusicStart
	CueMusicStop
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueSpawn:
		return "spawn"
	case CueSmallExplosion:
		return "small_explosion"
	case CueLargeExplosion:
		return "large_explosion"
	case CueLevelUp:
		return "level_up"
	case CueMusicStart:
		return "music_start"
	case CueMusicStop:
		return "music_stop"
	default:
		return "unknown"
	}
}

// Input is the per-frame control state, polled once before the update.
type Input struct {
	Left    bool
	Right   bool
	Up      bool
	Down    bool
	Start   bool // Only meaningful before the game starts
	Restart bool // Only meaningful after game over
	Quit    bool // Handled by the frame loop, ignored by the simulation
}

// FrameOutput summarizes what happened during one tick.
type FrameOutput struct {
	Frame      uint64
	From       Phase // Phase when the tick began
	Phase      Phase // Phase when the tick ended
	Cues       []Cue // Audio cues in emission order
	Spawned    int   // Projectiles released
	Collisions int   // Projectile pairs destroyed
	Scored     int   // Projectiles that left through the bottom while playing
	LevelUps   int
	PlayerHit  bool
}

// Transitioned reports whether the phase changed during the tick.
func (o FrameOutput) Transitioned() bool {
	return o.From != o.Phase
}

func (o *FrameOutput) emit(c Cue) {
	o.Cues = append(o.Cues, c)
}
