package gauge

import (
	"math"
	"strconv"
)

// RingStyle is the user-adjustable look of the ring.
type RingStyle struct {
	ThicknessPx float64
	DashGapPx   float64
}

// Slider ranges for the dash gap.
const (
	MinDashGap = 1
	MaxDashGap = 25
)

// Clamp limits the thickness to [0, radius] and the dash gap to
// [MinDashGap, MaxDashGap].
func (s RingStyle) Clamp(radius float64) RingStyle {
	return RingStyle{
		ThicknessPx: math.Min(math.Max(s.ThicknessPx, 0), radius),
		DashGapPx:   math.Min(math.Max(s.DashGapPx, MinDashGap), MaxDashGap),
	}
}

// Face fixes where and how large the clock is drawn.
type Face struct {
	CenterX, CenterY float64
	Radius           float64
	// Padding surrounds the ring; the numerals sit in it, LabelInset in
	// from its outer edge.
	Padding    float64
	LabelInset float64
}

// Diameter of the ring's outer edge.
func (f Face) Diameter() float64 {
	return 2 * f.Radius
}

// Point returns the screen position at distance r from the center, deg
// degrees clockwise from twelve o'clock.
func (f Face) Point(deg, r float64) (x, y float64) {
	rad := deg * math.Pi / 180
	return f.CenterX + r*math.Sin(rad), f.CenterY - r*math.Cos(rad)
}

// Arc is a drawn stretch of the ring, in degrees clockwise from twelve.
type Arc struct {
	StartDeg float64
	EndDeg   float64
}

// Ring describes the dashed gradient band.
type Ring struct {
	InnerRadius float64
	OuterRadius float64
	Pattern     DashPattern
	Arcs        []Arc
	Gradient    AngularGradient
}

// Label is a numeral on the face.
type Label struct {
	Text     string
	AngleDeg float64
	X, Y     float64
}

// HandKind names a hand.
type HandKind int

const (
	HourHand HandKind = iota
	MinuteHand
	SecondHand
)

func (k HandKind) String() string {
	switch k {
	case HourHand:
		return "hour"
	case MinuteHand:
		return "minute"
	case SecondHand:
		return "second"
	}
	return "unknown"
}

// Hand is a rectangle rooted at the center and rotated by AngleDeg.
type Hand struct {
	Kind     HandKind
	AngleDeg float64
	Length   float64
	Width    float64
}

// Tip returns the far end of the hand.
func (h Hand) Tip(f Face) (x, y float64) {
	return f.Point(h.AngleDeg, h.Length)
}

// Scene is everything needed to draw one frame of the clock.
type Scene struct {
	Face      Face
	Ring      Ring
	Labels    []Label
	Hands     [3]Hand
	DotRadius float64
}

// Labels returns the twelve numerals at 30° steps clockwise from twelve.
func Labels(f Face) []Label {
	r := f.Radius + f.Padding - f.LabelInset
	labels := make([]Label, 0, Ticks)
	for i := 0; i < Ticks; i++ {
		text := strconv.Itoa(i)
		if i == 0 {
			text = "12"
		}
		deg := float64(i) * 30
		x, y := f.Point(deg, r)
		labels = append(labels, Label{Text: text, AngleDeg: deg, X: x, Y: y})
	}
	return labels
}

// Compose builds the scene for a ring style and a set of hand angles.
func Compose(f Face, style RingStyle, angles HandAngles) Scene {
	style = style.Clamp(f.Radius)

	diameter := f.Diameter()
	pattern := Dashes(diameter, style.ThicknessPx, style.DashGapPx)

	// The stroke is centered on a circle inset by half its width, so its
	// outer edge touches the frame.
	center := (diameter - style.ThicknessPx) / 2
	length := 2 * math.Pi * center
	var arcs []Arc
	if style.ThicknessPx > 0 {
		for _, s := range Spans(length, pattern) {
			arcs = append(arcs, Arc{
				StartDeg: s.Start / length * 360,
				EndDeg:   s.End / length * 360,
			})
		}
	}

	return Scene{
		Face: f,
		Ring: Ring{
			InnerRadius: f.Radius - style.ThicknessPx,
			OuterRadius: f.Radius,
			Pattern:     pattern,
			Arcs:        arcs,
			Gradient:    RingGradient(),
		},
		Labels: Labels(f),
		Hands: [3]Hand{
			{Kind: HourHand, AngleDeg: angles.HourDeg, Length: f.Radius / 2, Width: 10},
			{Kind: MinuteHand, AngleDeg: angles.MinuteDeg, Length: f.Radius, Width: 5},
			{Kind: SecondHand, AngleDeg: angles.SecondDeg, Length: f.Radius, Width: 2},
		},
		DotRadius: 8,
	}
}
