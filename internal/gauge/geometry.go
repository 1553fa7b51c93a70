// Package gauge holds the pure geometry behind the clock face: hand angles
// from a time of day, the dash pattern of the ring and the render
// description built from both.
package gauge

import (
	"math"
	"time"
)

// Ticks is the number of dashes on the ring, one per hour mark.
const Ticks = 12

// TimeOfDay is a wall-clock reading in a 24-hour calendar.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// TimeOfDayFrom decomposes t in loc, or in time.Local when loc is nil.
// A zero timestamp cannot be read and yields midnight.
func TimeOfDayFrom(t time.Time, loc *time.Location) TimeOfDay {
	if t.IsZero() {
		return TimeOfDay{}
	}
	if loc == nil {
		loc = time.Local
	}
	h, m, s := t.In(loc).Clock()
	return TimeOfDay{Hour: h, Minute: m, Second: s}
}

// HandAngles are rotations in degrees, clockwise from twelve o'clock.
type HandAngles struct {
	HourDeg   float64
	MinuteDeg float64
	SecondDeg float64
}

// Angles converts a time of day to hand rotations. The hour is not reduced
// modulo 12: 13h gives 390°, which draws the same as 30°.
func Angles(t TimeOfDay) HandAngles {
	return HandAngles{
		HourDeg:   float64(t.Hour) * 30,
		MinuteDeg: float64(t.Minute) * 6,
		SecondDeg: float64(t.Second) * 6,
	}
}

// DashPattern is the on/off sequence used to stroke the ring.
type DashPattern struct {
	DashLength float64
	GapLength  float64
	DashPhase  float64
	// Degenerate is set when the ring was too small for the dashes and
	// GapLength was clamped to zero.
	Degenerate bool
}

// Dashes spreads Ticks dashes of length desiredGap evenly around the
// centerline of a ring with the given outer diameter and stroke thickness.
// The slider called "dash gap" sets the dash length; the visible gap is what
// remains of the circumference.
func Dashes(diameter, thickness, desiredGap float64) DashPattern {
	gap := ((diameter-thickness)*math.Pi - desiredGap*Ticks) / Ticks
	p := DashPattern{
		DashLength: desiredGap,
		GapLength:  gap,
		DashPhase:  desiredGap / 2,
	}
	if gap < 0 {
		p.GapLength = 0
		p.Degenerate = true
	}
	return p
}

// Span is a drawn stretch of a dashed path, in arc length from the path's
// start.
type Span struct {
	Start float64
	End   float64
}

// Spans walks pattern along a closed path of the given length and returns
// the stretches that are drawn. The pattern starts DashPhase into its first
// dash, so a dash straddling the start is returned as two spans, one at each
// end.
func Spans(length float64, p DashPattern) []Span {
	if length <= 0 || p.DashLength <= 0 {
		return nil
	}
	period := p.DashLength + p.GapLength
	if p.GapLength <= 0 {
		return []Span{{Start: 0, End: length}}
	}

	var spans []Span
	for s := -math.Mod(p.DashPhase, period); s < length; s += period {
		start := math.Max(s, 0)
		end := math.Min(s+p.DashLength, length)
		if end > start {
			spans = append(spans, Span{Start: start, End: end})
		}
	}
	return spans
}
