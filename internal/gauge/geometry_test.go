package gauge

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestAnglesStepSizes(t *testing.T) {
	for h := 0; h < 24; h++ {
		got := Angles(TimeOfDay{Hour: h})
		assert.InDelta(t, float64(h)*30, got.HourDeg, eps, "hour %d", h)
	}
	for v := 0; v < 60; v++ {
		got := Angles(TimeOfDay{Minute: v, Second: v})
		assert.InDelta(t, float64(v)*6, got.MinuteDeg, eps, "minute %d", v)
		assert.InDelta(t, float64(v)*6, got.SecondDeg, eps, "second %d", v)
	}
}

func TestAnglesQuarterPastThree(t *testing.T) {
	got := Angles(TimeOfDay{Hour: 3, Minute: 15, Second: 30})
	assert.Equal(t, HandAngles{HourDeg: 90, MinuteDeg: 90, SecondDeg: 180}, got)
}

func TestAnglesAfternoonIsNotReduced(t *testing.T) {
	got := Angles(TimeOfDay{Hour: 13})
	assert.Equal(t, 390.0, got.HourDeg)
	assert.InDelta(t, 30, math.Mod(got.HourDeg, 360), eps)
}

func TestTimeOfDayFrom(t *testing.T) {
	loc := time.FixedZone("test", 2*60*60)
	ts := time.Date(2020, 2, 11, 13, 5, 59, 0, time.UTC)

	assert.Equal(t, TimeOfDay{Hour: 15, Minute: 5, Second: 59}, TimeOfDayFrom(ts, loc))
	assert.Equal(t, TimeOfDay{Hour: 13, Minute: 5, Second: 59}, TimeOfDayFrom(ts, time.UTC))
}

func TestTimeOfDayFromZeroDefaultsToMidnight(t *testing.T) {
	assert.Equal(t, TimeOfDay{}, TimeOfDayFrom(time.Time{}, nil))
}

func TestDashesBoundaries(t *testing.T) {
	tests := []struct {
		name                      string
		diameter, thickness, gap  float64
		wantGap, wantDash, wantPh float64
	}{
		{
			name:     "thin ring, smallest dash",
			diameter: 400, thickness: 0, gap: 1,
			wantGap: (400*math.Pi - 12) / 12, wantDash: 1, wantPh: 0.5,
		},
		{
			name:     "thickness equals radius",
			diameter: 400, thickness: 200, gap: 5,
			wantGap: (200*math.Pi - 60) / 12, wantDash: 5, wantPh: 2.5,
		},
		{
			name:     "defaults",
			diameter: 400, thickness: 40, gap: 5,
			wantGap: (360*math.Pi - 60) / 12, wantDash: 5, wantPh: 2.5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Dashes(tt.diameter, tt.thickness, tt.gap)
			assert.InDelta(t, tt.wantGap, p.GapLength, eps)
			assert.Equal(t, tt.wantDash, p.DashLength)
			assert.Equal(t, tt.wantPh, p.DashPhase)
			assert.False(t, p.Degenerate)
		})
	}

	assert.InDelta(t, 103.72, Dashes(400, 0, 1).GapLength, 0.01)
	assert.InDelta(t, 47.36, Dashes(400, 200, 5).GapLength, 0.01)
}

func TestDashesClampsDegenerateRing(t *testing.T) {
	p := Dashes(400, 400, 5)
	assert.True(t, p.Degenerate)
	assert.Equal(t, 0.0, p.GapLength)
	assert.Equal(t, 5.0, p.DashLength)

	p = Dashes(400, 500, 1)
	assert.True(t, p.Degenerate)
	assert.Equal(t, 0.0, p.GapLength)
}

func TestDashesIsPureAndContinuous(t *testing.T) {
	a := Dashes(400, 40, 5)
	b := Dashes(400, 40, 5)
	require.Equal(t, a, b)

	const d = 1e-6
	assert.InDelta(t, a.GapLength, Dashes(400, 40+d, 5).GapLength, 1e-5)
	assert.InDelta(t, a.GapLength, Dashes(400, 40, 5+d).GapLength, 1e-5)
}

func TestSpansCenterDashesOnHourMarks(t *testing.T) {
	const diameter, thickness = 400.0, 40.0
	p := Dashes(diameter, thickness, 5)
	length := (diameter - thickness) * math.Pi
	spans := Spans(length, p)

	// The dash at twelve o'clock is split across the path's start and end.
	require.Len(t, spans, Ticks+1)
	assert.InDelta(t, 0, spans[0].Start, eps)
	assert.InDelta(t, 2.5, spans[0].End, eps)
	last := spans[len(spans)-1]
	assert.InDelta(t, length-2.5, last.Start, 1e-6)
	assert.InDelta(t, length, last.End, eps)

	step := length / Ticks
	for i := 1; i < Ticks; i++ {
		mid := (spans[i].Start + spans[i].End) / 2
		assert.InDelta(t, float64(i)*step, mid, 1e-6, "dash %d", i)
		assert.InDelta(t, 5, spans[i].End-spans[i].Start, 1e-9)
	}
}

func TestSpansEdgeCases(t *testing.T) {
	assert.Nil(t, Spans(0, Dashes(400, 40, 5)))
	assert.Nil(t, Spans(100, DashPattern{}))

	full := Spans(100, DashPattern{DashLength: 5, GapLength: 0, Degenerate: true})
	assert.Equal(t, []Span{{Start: 0, End: 100}}, full)
}
