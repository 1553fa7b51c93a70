package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var t0 = time.Date(2020, 2, 11, 12, 0, 0, 0, time.UTC)

func TestLinearFirstTargetSnaps(t *testing.T) {
	l := NewLinear(350 * time.Millisecond)
	l.Retarget(90, t0)

	assert.Equal(t, 90.0, l.Value(t0))
	assert.Equal(t, 90.0, l.Value(t0.Add(350*time.Millisecond)))
}

func TestLinearInterpolates(t *testing.T) {
	l := NewLinear(400 * time.Millisecond)
	l.Retarget(0, t0)
	l.Retarget(6, t0)

	assert.Equal(t, 0.0, l.Value(t0))
	assert.InDelta(t, 1.5, l.Value(t0.Add(100*time.Millisecond)), 1e-9)
	assert.InDelta(t, 3, l.Value(t0.Add(200*time.Millisecond)), 1e-9)
	assert.Equal(t, 6.0, l.Value(t0.Add(400*time.Millisecond)))
	assert.Equal(t, 6.0, l.Value(t0.Add(time.Hour)))
	assert.Less(t, l.Value(t0.Add(399*time.Millisecond)), 6.0)
}

func TestLinearRetargetMidway(t *testing.T) {
	l := NewLinear(400 * time.Millisecond)
	l.Retarget(0, t0)
	l.Retarget(12, t0)

	mid := t0.Add(200 * time.Millisecond)
	l.Retarget(0, mid)
	assert.InDelta(t, 6, l.Value(mid), 1e-9)
	assert.InDelta(t, 3, l.Value(mid.Add(200*time.Millisecond)), 1e-9)
}

func TestLinearSameTargetKeepsMoving(t *testing.T) {
	l := NewLinear(400 * time.Millisecond)
	l.Retarget(0, t0)
	l.Retarget(8, t0)
	l.Retarget(8, t0.Add(200*time.Millisecond))

	assert.InDelta(t, 6, l.Value(t0.Add(300*time.Millisecond)), 1e-9)
}

func TestLinearZeroDuration(t *testing.T) {
	var l Linear
	l.Retarget(1, t0)
	l.Retarget(5, t0)
	assert.Equal(t, 5.0, l.Value(t0))
}
