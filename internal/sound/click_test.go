package sound

import (
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 256)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestClickLength(t *testing.T) {
	c := Click{Freq: 1000, Duration: 10 * time.Millisecond, Volume: 1}
	samples := drain(c.Streamer(SampleRate))
	assert.Len(t, samples, SampleRate.N(10*time.Millisecond))
}

func TestClickStaysWithinVolume(t *testing.T) {
	samples := drain(DefaultClick.Streamer(SampleRate))
	require.NotEmpty(t, samples)

	peak := 0.0
	for _, s := range samples {
		assert.Equal(t, s[0], s[1], "click is mono")
		peak = math.Max(peak, math.Abs(s[0]))
	}
	assert.LessOrEqual(t, peak, DefaultClick.Volume)
	assert.Greater(t, peak, 0.0)
}

func TestClickDecays(t *testing.T) {
	samples := drain(DefaultClick.Streamer(SampleRate))
	half := len(samples) / 2

	energy := func(xs [][2]float64) float64 {
		sum := 0.0
		for _, x := range xs {
			sum += x[0] * x[0]
		}
		return sum
	}
	assert.Greater(t, energy(samples[:half]), energy(samples[half:]))
}

func TestClickEndsAndStaysEnded(t *testing.T) {
	s := Click{Freq: 440, Duration: time.Millisecond, Volume: 1}.Streamer(SampleRate)
	drain(s)
	n, ok := s.Stream(make([][2]float64, 8))
	assert.Equal(t, 0, n)
	assert.False(t, ok)
}
