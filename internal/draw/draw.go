// Package draw renders to ANSI terminals: a half-block pixel canvas with
// 256-color output and a chunked writer for text overlays.
package draw

import "math"

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Color is an xterm 256-color palette index. Zero means "no pixel".
type Color uint8

// Palette entries used by the game.
const (
	None   Color = 0
	Red    Color = 196
	Orange Color = 208
	Amber  Color = 214
	Yellow Color = 226
	White  Color = 231
	Cyan   Color = 51
	Steel  Color = 67
)

// Gray returns the grayscale ramp entry for an intensity in [0, 1].
// The ramp spans palette entries 232 (near black) to 255 (near white).
func Gray(intensity float64) Color {
	intensity = clamp01(intensity)
	return Color(232 + int(math.Round(intensity*23)))
}

// Fire returns a color for an explosion at the given intensity: white hot
// when fresh, through yellow and orange, to dark red as it fades.
func Fire(intensity float64) Color {
	switch intensity = clamp01(intensity); {
	case intensity > 0.85:
		return White
	case intensity > 0.6:
		return Yellow
	case intensity > 0.4:
		return Amber
	case intensity > 0.2:
		return Orange
	case intensity > 0:
		return Red
	default:
		return None
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
