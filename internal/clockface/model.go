// Package clockface is the presentation state of the clock: it turns ticks
// and slider input into the scene the renderer draws.
package clockface

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/iburimskiy/gauge/internal/anim"
	"github.com/iburimskiy/gauge/internal/clock"
	"github.com/iburimskiy/gauge/internal/config"
	"github.com/iburimskiy/gauge/internal/gauge"
	"github.com/iburimskiy/gauge/internal/widget"
)

// Options configures a Model.
type Options struct {
	Clock clock.Clock
	// Location for reading the time; nil means time.Local.
	Location *time.Location
	Face     gauge.Face
	Style    gauge.RingStyle
	// HandAnimation is how long hands take to reach a new angle.
	HandAnimation time.Duration
	Logger        *log.Logger
}

// Pointer is the mouse state for one frame.
type Pointer struct {
	X, Y         int
	JustPressed  bool
	JustReleased bool
}

// Model owns the ring style, the current time of day and the hand tweens.
// It is not safe for concurrent use; the game loop drives it from one
// goroutine.
type Model struct {
	clk    clock.Clock
	loc    *time.Location
	face   gauge.Face
	logger *log.Logger

	now   gauge.TimeOfDay
	hands [3]*anim.Linear

	thickness *widget.Slider
	dashGap   *widget.Slider

	degenerate bool
}

// NewModel seeds the hands from the clock's current time so the first frame
// does not show midnight.
func NewModel(opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	style := opts.Style.Clamp(opts.Face.Radius)
	m := &Model{
		clk:    opts.Clock,
		loc:    opts.Location,
		face:   opts.Face,
		logger: logger,
		thickness: widget.NewSlider("Thickness", config.MinThickness, opts.Face.Radius, style.ThicknessPx,
			config.SliderX, config.ThicknessY, config.SliderWidth, config.SliderHeight),
		dashGap: widget.NewSlider("Dash gap", config.MinDashGap, config.MaxDashGap, style.DashGapPx,
			config.SliderX, config.DashGapY, config.SliderWidth, config.SliderHeight),
	}
	for i := range m.hands {
		m.hands[i] = anim.NewLinear(opts.HandAnimation)
	}
	m.Tick(m.clk.Now())
	return m
}

// Tick consumes a timestamp from the ticker and reports whether the second
// hand moved.
func (m *Model) Tick(ts time.Time) bool {
	tod := gauge.TimeOfDayFrom(ts, m.loc)
	moved := tod != m.now
	m.now = tod

	a := gauge.Angles(tod)
	at := m.clk.Now()
	m.hands[gauge.HourHand].Retarget(a.HourDeg, at)
	m.hands[gauge.MinuteHand].Retarget(a.MinuteDeg, at)
	m.hands[gauge.SecondHand].Retarget(a.SecondDeg, at)
	return moved
}

// Poll consumes every timestamp waiting on ticks without blocking and
// calls onSecond each time the second hand moves. It reports false once
// ticks has been closed.
func (m *Model) Poll(ticks <-chan time.Time, onSecond func()) bool {
	for {
		select {
		case ts, ok := <-ticks:
			if !ok {
				return false
			}
			if m.Tick(ts) && onSecond != nil {
				onSecond()
			}
		default:
			return true
		}
	}
}

// Input applies one frame of mouse state to the sliders and reports whether
// the ring style changed.
func (m *Model) Input(p Pointer) bool {
	changed := false
	for _, s := range m.Sliders() {
		s.Hover(p.X, p.Y)
		if p.JustPressed && s.Press(p.X, p.Y) {
			changed = true
		}
		if s.Drag(p.X) {
			changed = true
		}
		if p.JustReleased {
			s.Release()
		}
	}
	if changed {
		st := m.Style()
		m.logger.Debug("ring style changed", "thickness", st.ThicknessPx, "dash_gap", st.DashGapPx)
	}
	return changed
}

// Time is the last time of day read from a tick.
func (m *Model) Time() gauge.TimeOfDay {
	return m.now
}

// Style is the ring style set by the sliders.
func (m *Model) Style() gauge.RingStyle {
	return gauge.RingStyle{ThicknessPx: m.thickness.Value, DashGapPx: m.dashGap.Value}
}

// Sliders returns the thickness and dash gap sliders, in that order.
func (m *Model) Sliders() []*widget.Slider {
	return []*widget.Slider{m.thickness, m.dashGap}
}

// Angles returns the hand angles shown at now, part way through any
// animation.
func (m *Model) Angles(now time.Time) gauge.HandAngles {
	return gauge.HandAngles{
		HourDeg:   m.hands[gauge.HourHand].Value(now),
		MinuteDeg: m.hands[gauge.MinuteHand].Value(now),
		SecondDeg: m.hands[gauge.SecondHand].Value(now),
	}
}

// Scene composes the frame to draw at the clock's current time.
func (m *Model) Scene() gauge.Scene {
	s := gauge.Compose(m.face, m.Style(), m.Angles(m.clk.Now()))
	if s.Ring.Pattern.Degenerate != m.degenerate {
		m.degenerate = s.Ring.Pattern.Degenerate
		if m.degenerate {
			m.logger.Warn("ring too thick for its dashes, gap clamped to zero", "thickness", m.thickness.Value)
		}
	}
	return s
}
