package gauge

import (
	"image/color"
	"math"
)

// Ring colors, matching the system palette the face was designed with.
var (
	Blue   = color.RGBA{R: 0, G: 122, B: 255, A: 255}
	Green  = color.RGBA{R: 52, G: 199, B: 89, A: 255}
	Yellow = color.RGBA{R: 255, G: 204, B: 0, A: 255}
	Red    = color.RGBA{R: 255, G: 59, B: 48, A: 255}
)

// AngularGradient sweeps its colors clockwise around a center. Stops are
// evenly spaced over the full turn, starting at three o'clock turned by
// RotationDeg. The last color meets the first with a hard edge.
type AngularGradient struct {
	Colors      []color.RGBA
	RotationDeg float64
}

// RingGradient is the gradient used on the clock ring.
func RingGradient() AngularGradient {
	return AngularGradient{
		Colors:      []color.RGBA{Blue, Green, Yellow, Red},
		RotationDeg: -100,
	}
}

// At returns the color at deg, measured clockwise from three o'clock.
func (g AngularGradient) At(deg float64) color.RGBA {
	switch len(g.Colors) {
	case 0:
		return color.RGBA{}
	case 1:
		return g.Colors[0]
	}
	t := normDeg(deg-g.RotationDeg) / 360
	pos := t * float64(len(g.Colors)-1)
	i := int(pos)
	if i >= len(g.Colors)-1 {
		return g.Colors[len(g.Colors)-1]
	}
	return lerpRGBA(g.Colors[i], g.Colors[i+1], pos-float64(i))
}

// normDeg maps deg into [0, 360).
func normDeg(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
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
