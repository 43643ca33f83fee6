package object

// Star is a twinkling background point.
type Star struct {
	X, Y       float64
	Size       int
	Brightness float64 // 0.2..1
	Speed      float64 // Brightness change per frame, sign flips at the limits
}

const (
	starMinBrightness = 0.2
	starMaxBrightness = 1.0
	starMaxTwinkle    = 0.1
)

// NewStar places a star at a random position in the field.
func NewStar(field Field, rng Rand) *Star {
	return &Star{
		X:          float64(randInt(rng, 0, int(field.Width))),
		Y:          float64(randInt(rng, 0, int(field.Height))),
		Size:       randInt(rng, 1, 3),
		Brightness: rng.Float64(),
		Speed:      rng.Float64() * starMaxTwinkle,
	}
}

// Update twinkles the star.
func (s *Star) Update() {
	s.Brightness += s.Speed
	if s.Brightness > starMaxBrightness {
		s.Brightness = starMaxBrightness
		s.Speed = -s.Speed
	} else if s.Brightness < starMinBrightness {
		s.Brightness = starMinBrightness
		s.Speed = -s.Speed
	}
}

// Planet is a ringed planet drifting slowly down the background.
type Planet struct {
	X, Y      float64 // Center
	Size      float64 // Radius
	Speed     float64
	RingAngle float64 // Ring tilt in radians
	Gray      int     // Surface shade 60..100
}

// NewPlanet creates a planet somewhere above the visible field.
func NewPlanet(field Field, rng Rand) *Planet {
	p := &Planet{}
	p.reset(field, rng)
	p.Y = -float64(randInt(rng, 0, 200))
	return p
}

func (p *Planet) reset(field Field, rng Rand) {
	p.X = float64(randInt(rng, 100, int(field.Width)-100))
	p.Y = -float64(randInt(rng, 100, 300))
	p.Size = float64(randInt(rng, 40, 60))
	p.Speed = uniform(rng, 0.2, 0.5)
	p.RingAngle = uniform(rng, -0.2, 0.2)
	p.Gray = randInt(rng, 60, 100)
}

// Update drifts the planet down and starts it over above the field once
// it has left through the bottom.
func (p *Planet) Update(field Field, rng Rand) {
	p.Y += p.Speed
	if p.Y > field.Height+p.Size {
		p.reset(field, rng)
	}
}
