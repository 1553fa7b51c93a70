package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/iburimskiy/gauge/internal/clock"
	"github.com/iburimskiy/gauge/internal/config"
	"github.com/iburimskiy/gauge/internal/game"
	"github.com/iburimskiy/gauge/internal/gauge"
	"github.com/iburimskiy/gauge/internal/ticker"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "gauge",
	})

	err := run(logger, os.Args[1:])
	if err == nil {
		return
	}
	// pflag already printed the usage for a bad command line.
	var usage *config.UsageError
	if errors.As(err, &usage) {
		os.Exit(2)
	}
	logger.Error("gauge failed", "err", err)
	_ = zenity.Error(err.Error(), zenity.Title("Gauge"), zenity.ErrorIcon)
	os.Exit(1)
}

func run(logger *log.Logger, args []string) error {
	cfg, err := config.FromArgs(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	logger.SetLevel(lvl)

	interval, err := cfg.Interval()
	if err != nil {
		return err
	}

	clk := clock.NewReal()
	tk, err := ticker.New(clk, interval, ticker.WithLogger(logger))
	if err != nil {
		return err
	}

	g, err := game.NewGame(game.Options{
		Clock:     clk,
		Ticker:    tk,
		Style:     gauge.RingStyle{ThicknessPx: cfg.Thickness, DashGapPx: cfg.DashGap},
		TickSound: cfg.TickSound,
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	defer g.Close()

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Gauge - drag the sliders, S: tick sound, Esc/Q: quit")

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "run game")
	}
	return nil
}
