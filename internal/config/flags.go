package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// UsageError is a command line that could not be parsed. pflag has already
// printed the usage text for it.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// FromArgs reads the optional config file named by --config, then applies
// the flags that were set on the command line.
func FromArgs(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("gauge", pflag.ContinueOnError)
	path := fs.StringP("config", "c", "", "YAML config file")
	thickness := fs.Float64("thickness", 0, "ring thickness in pixels (0-200)")
	dashGap := fs.Float64("dash-gap", 0, "dash length in pixels (1-25)")
	tickSound := fs.Bool("tick-sound", false, "play a tick each second")
	level := fs.String("log-level", "", "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return nil, &UsageError{Err: err}
	}

	cfg := Default()
	if *path != "" {
		var err error
		if cfg, err = Load(*path); err != nil {
			return nil, err
		}
	}
	if fs.Changed("thickness") {
		cfg.Thickness = *thickness
	}
	if fs.Changed("dash-gap") {
		cfg.DashGap = *dashGap
	}
	if fs.Changed("tick-sound") {
		cfg.TickSound = *tickSound
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = *level
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "flags")
	}
	return cfg, nil
}
