// Package widget holds input models for on-screen controls. Drawing is left
// to the caller so the models can be exercised without a window.
package widget

import "math"

// Slider is a horizontal track with a draggable knob.
type Slider struct {
	Label    string
	Min, Max float64
	Value    float64

	// Track rectangle in screen pixels.
	X, Y          int
	Width, Height int

	dragging bool
	hovered  bool
}

// NewSlider returns a slider holding value, clamped to [min, max].
func NewSlider(label string, min, max, value float64, x, y, width, height int) *Slider {
	s := &Slider{
		Label: label,
		Min:   min, Max: max,
		X: x, Y: y,
		Width: width, Height: height,
	}
	s.Value = s.clamp(value)
	return s
}

// Contains reports whether the point is over the track.
func (s *Slider) Contains(x, y int) bool {
	return x >= s.X && x <= s.X+s.Width && y >= s.Y && y <= s.Y+s.Height
}

// ValueAt maps a horizontal position on the track to a value.
func (s *Slider) ValueAt(x int) float64 {
	if s.Width <= 0 {
		return s.Min
	}
	frac := float64(x-s.X) / float64(s.Width)
	return s.clamp(s.Min + frac*(s.Max-s.Min))
}

// Fraction is the knob position along the track, in [0, 1].
func (s *Slider) Fraction() float64 {
	if s.Max <= s.Min {
		return 0
	}
	return (s.Value - s.Min) / (s.Max - s.Min)
}

// KnobX is the knob's horizontal center in screen pixels.
func (s *Slider) KnobX() float64 {
	return float64(s.X) + s.Fraction()*float64(s.Width)
}

// Hover records the cursor position.
func (s *Slider) Hover(x, y int) {
	s.hovered = s.Contains(x, y)
}

// Hovered reports whether the cursor was last seen over the track.
func (s *Slider) Hovered() bool {
	return s.hovered
}

// Dragging reports whether a drag that started on the track is in progress.
func (s *Slider) Dragging() bool {
	return s.dragging
}

// Press starts a drag when (x, y) is on the track and jumps the knob there.
// It reports whether the value changed.
func (s *Slider) Press(x, y int) bool {
	if !s.Contains(x, y) {
		return false
	}
	s.dragging = true
	return s.set(s.ValueAt(x))
}

// Drag follows the cursor while a drag is in progress, even off the track.
// It reports whether the value changed.
func (s *Slider) Drag(x int) bool {
	if !s.dragging {
		return false
	}
	return s.set(s.ValueAt(x))
}

// Release ends a drag.
func (s *Slider) Release() {
	s.dragging = false
}

func (s *Slider) set(v float64) bool {
	if v == s.Value {
		return false
	}
	s.Value = v
	return true
}

func (s *Slider) clamp(v float64) float64 {
	return math.Min(math.Max(v, s.Min), s.Max)
}
