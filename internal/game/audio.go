package game

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/faiface/beep/speaker"
	"github.com/pkg/errors"

	"github.com/iburimskiy/gauge/internal/sound"
)

// clicker plays the tick sound. The speaker is opened the first time sound
// is switched on and stays open.
type clicker struct {
	logger  *log.Logger
	enabled bool
	ready   bool
}

func (c *clicker) setEnabled(on bool) {
	if on && !c.ready {
		if err := speaker.Init(sound.SampleRate, sound.SampleRate.N(time.Second/20)); err != nil {
			c.logger.Warn("tick sound unavailable", "err", errors.Wrap(err, "init speaker"))
			return
		}
		c.ready = true
	}
	c.enabled = on
	c.logger.Info("tick sound", "enabled", on)
}

func (c *clicker) play() {
	if !c.enabled || !c.ready {
		return
	}
	speaker.Play(sound.DefaultClick.Streamer(sound.SampleRate))
}

func (c *clicker) stop() {
	if !c.ready {
		return
	}
	// Clear takes the speaker lock itself.
	speaker.Clear()
}
