package game

import (
	"image"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"github.com/iburimskiy/gauge/internal/clock"
	"github.com/iburimskiy/gauge/internal/clockface"
	"github.com/iburimskiy/gauge/internal/config"
	"github.com/iburimskiy/gauge/internal/gauge"
	"github.com/iburimskiy/gauge/internal/ticker"
)

// Options wires a Game to its time source and starting style.
type Options struct {
	Clock     clock.Clock
	Ticker    *ticker.Ticker
	Style     gauge.RingStyle
	TickSound bool
	Logger    *log.Logger
}

// Game is the ebiten front end of the clock.
type Game struct {
	model  *clockface.Model
	ticker *ticker.Ticker
	ticks  <-chan time.Time
	sound  *clicker
	logger *log.Logger

	// 1x1 white source for DrawTriangles; vertex colors tint it.
	white    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewGame starts the ticker and returns a game ready for ebiten.RunGame.
func NewGame(opts Options) (*Game, error) {
	if opts.Ticker == nil {
		return nil, errors.New("game: nil ticker")
	}
	clk := opts.Clock
	if clk == nil {
		clk = clock.NewReal()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ticks, err := opts.Ticker.Start()
	if err != nil {
		return nil, errors.Wrap(err, "start ticker")
	}

	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)

	g := &Game{
		model: clockface.NewModel(clockface.Options{
			Clock: clk,
			Face: gauge.Face{
				CenterX:    config.WindowWidth / 2,
				CenterY:    config.FaceTop + config.Padding + config.Radius,
				Radius:     config.Radius,
				Padding:    config.Padding,
				LabelInset: config.LabelInset,
			},
			Style:         opts.Style,
			HandAnimation: config.HandAnimation,
			Logger:        logger,
		}),
		ticker: opts.Ticker,
		ticks:  ticks,
		sound:  &clicker{logger: logger},
		logger: logger,
		white:  img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
	if opts.TickSound {
		g.sound.setEnabled(true)
	}
	logger.Info("clock started", "interval", opts.Ticker.Interval(), "time", formatClock(g.model.Time()))
	return g, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.sound.setEnabled(!g.sound.enabled)
	}

	g.pollTicks()

	x, y := ebiten.CursorPosition()
	g.model.Input(clockface.Pointer{
		X:            x,
		Y:            y,
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	})
	return nil
}

// pollTicks takes every tick waiting on the channel without blocking the
// frame. A nil channel, after the ticker closed it, is never ready.
func (g *Game) pollTicks() {
	if !g.model.Poll(g.ticks, g.sound.play) {
		g.ticks = nil
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// Close stops the ticker and silences the speaker.
func (g *Game) Close() {
	g.ticker.Stop()
	g.sound.stop()
	g.logger.Debug("clock closed")
}
