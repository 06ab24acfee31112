package physics

import (
	"image/color"
	"math"
)

// --- Ciało fizyczne ---
type Body struct {
	Mass   float64
	Pos    Vec2
	Vel    Vec2
	Acc    Vec2
	Radius float64
	Locked bool // ciało nieruchome: przyciąga, ale nie jest całkowane
	ColorC color.RGBA
}

// NewBody tworzy ciało o promieniu wyliczonym z masy (promień służy tylko
// do rysowania).
func NewBody(pos, vel Vec2, mass float64) Body {
	return Body{
		Mass:   mass,
		Pos:    pos,
		Vel:    vel,
		Radius: math.Max(math.Pow(mass, 0.3), 2.0),
		ColorC: color.RGBA{200, 200, 255, 255},
	}
}

func (b Body) Color() color.Color {
	return b.ColorC
}
