// Package sound synthesizes the tick the clock can play each second.
package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// SampleRate is used for both synthesis and speaker.Init.
const SampleRate beep.SampleRate = 44100

// Click describes a short decaying sine burst.
type Click struct {
	Freq     float64
	Duration time.Duration
	Volume   float64
}

// DefaultClick is a soft, short tick.
var DefaultClick = Click{Freq: 1800, Duration: 25 * time.Millisecond, Volume: 0.3}

// Streamer renders the click at sr. The streamer ends after Duration.
func (c Click) Streamer(sr beep.SampleRate) beep.Streamer {
	total := sr.N(c.Duration)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			t := float64(pos) / float64(sr)
			env := 1 - float64(pos)/float64(total)
			v := c.Volume * env * env * math.Sin(2*math.Pi*c.Freq*t)
			samples[i][0], samples[i][1] = v, v
			pos++
			n++
		}
		return n, true
	})
}
