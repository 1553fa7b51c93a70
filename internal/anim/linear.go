// Package anim interpolates values over time.
package anim

import "time"

// Linear moves a value to a target at constant speed over Duration.
// The zero value is usable and snaps to the first target it is given.
type Linear struct {
	Duration time.Duration

	from, to float64
	start    time.Time
	set      bool
}

// NewLinear returns a tween that takes d to reach each new target.
func NewLinear(d time.Duration) *Linear {
	return &Linear{Duration: d}
}

// Retarget starts moving from the value at now towards to. The first call
// jumps straight to the target.
func (l *Linear) Retarget(to float64, now time.Time) {
	if !l.set {
		l.from, l.to, l.start, l.set = to, to, now, true
		return
	}
	if to == l.to {
		return
	}
	l.from = l.Value(now)
	l.to = to
	l.start = now
}

// Value returns the interpolated value at now.
func (l *Linear) Value(now time.Time) float64 {
	if l.Duration <= 0 {
		return l.to
	}
	elapsed := now.Sub(l.start)
	if elapsed >= l.Duration {
		return l.to
	}
	if elapsed <= 0 {
		return l.from
	}
	frac := float64(elapsed) / float64(l.Duration)
	return l.from + (l.to-l.from)*frac
}
