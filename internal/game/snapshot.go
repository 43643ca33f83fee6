package game

import "github.com/tomz197/missiles/internal/object"

// Snapshot is a serializable view of a session for remote renderers.
type Snapshot struct {
	Frame       uint64           `json:"frame"`
	Phase       string           `json:"phase"`
	Width       float64          `json:"width"`
	Height      float64          `json:"height"`
	Score       int              `json:"score"`
	Level       int              `json:"level"`
	Speed       float64          `json:"speed"`
	BatchSize   int              `json:"batch"`
	Player      PlayerView       `json:"player"`
	Projectiles []ProjectileView `json:"projectiles"`
	Explosions  []ExplosionView  `json:"explosions"`
	Stars       []StarView       `json:"stars"`
	Planets     []PlanetView     `json:"planets"`
	Cues        []string         `json:"cues,omitempty"`
}

type PlayerView struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	W     float64 `json:"w"`
	H     float64 `json:"h"`
	Alive bool    `json:"alive"`
}

type ProjectileView struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	W     float64 `json:"w"`
	H     float64 `json:"h"`
	Flame float64 `json:"flame"`
}

type ExplosionView struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Kind   string  `json:"kind"`
	Radius float64 `json:"r"`
	Alpha  float64 `json:"a"`
}

type StarView struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Size       int     `json:"s"`
	Brightness float64 `json:"b"`
}

type PlanetView struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Size float64 `json:"s"`
	Tilt float64 `json:"t"`
	Gray int     `json:"g"`
}

// Snapshot captures the current session state. Dormant explosions are left out.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Frame:       s.Frame,
		Phase:       s.Phase.String(),
		Width:       s.Field.Width,
		Height:      s.Field.Height,
		Score:       s.Progress.Score,
		Level:       s.Progress.Level,
		Speed:       s.Progress.Speed,
		BatchSize:   s.Progress.BatchSize,
		Player:      playerView(s.Player),
		Projectiles: make([]ProjectileView, 0, len(s.Projectiles)),
		Explosions:  make([]ExplosionView, 0, s.Explosions.Len()),
		Stars:       make([]StarView, 0, len(s.Stars)),
		Planets:     make([]PlanetView, 0, len(s.Planets)),
	}
	for _, p := range s.Projectiles {
		snap.Projectiles = append(snap.Projectiles, ProjectileView{X: p.X, Y: p.Y, W: p.Width, H: p.Height, Flame: p.Flame})
	}
	for _, e := range s.Explosions.Explosions() {
		if !e.Active() {
			continue
		}
		snap.Explosions = append(snap.Explosions, ExplosionView{X: e.X, Y: e.Y, Kind: e.Kind.String(), Radius: e.Radius, Alpha: e.Alpha()})
	}
	for _, st := range s.Stars {
		snap.Stars = append(snap.Stars, StarView{X: st.X, Y: st.Y, Size: st.Size, Brightness: st.Brightness})
	}
	for _, p := range s.Planets {
		snap.Planets = append(snap.Planets, PlanetView{X: p.X, Y: p.Y, Size: p.Size, Tilt: p.RingAngle, Gray: p.Gray})
	}
	return snap
}

// WithCues attaches the cue names of a frame to the snapshot.
func (snap Snapshot) WithCues(cues []Cue) Snapshot {
	for _, c := range cues {
		snap.Cues = append(snap.Cues, c.String())
	}
	return snap
}

func playerView(p *object.Player) PlayerView {
	if p == nil {
		return PlayerView{}
	}
	return PlayerView{X: p.X, Y: p.Y, W: p.Width, H: p.Height, Alive: p.Alive}
}
