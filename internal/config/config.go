package config

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/gauge/internal/gauge"
)

const (
	WindowWidth  = 496
	WindowHeight = 720

	// Clock face
	Radius     = 200
	Padding    = 24
	LabelInset = 8
	FaceTop    = 50

	// Slider dimensions
	SliderX      = 24
	SliderWidth  = WindowWidth - 2*SliderX
	SliderHeight = 16
	ThicknessY   = FaceTop + 2*(Radius+Padding) + 70
	DashGapY     = ThicknessY + 60

	// Slider ranges
	MinThickness = 0
	MaxThickness = Radius
	MinDashGap   = gauge.MinDashGap
	MaxDashGap   = gauge.MaxDashGap

	// Hands glide to each new position over this long.
	HandAnimation = 350 * time.Millisecond
)

// Config holds the startup settings. Slider changes made while running are
// not written back.
type Config struct {
	TickInterval string  `yaml:"tick_interval"`
	Thickness    float64 `yaml:"thickness"`
	DashGap      float64 `yaml:"dash_gap"`
	TickSound    bool    `yaml:"tick_sound"`
	LogLevel     string  `yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		TickInterval: "500ms",
		Thickness:    40,
		DashGap:      5,
		TickSound:    false,
		LogLevel:     "info",
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return c, nil
}

// Interval parses TickInterval.
func (c *Config) Interval() (time.Duration, error) {
	d, err := time.ParseDuration(c.TickInterval)
	if err != nil {
		return 0, errors.Wrap(err, "tick_interval")
	}
	if d <= 0 {
		return 0, errors.Errorf("tick_interval must be positive, got %s", d)
	}
	return d, nil
}

// Level parses LogLevel.
func (c *Config) Level() (log.Level, error) {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, errors.Wrap(err, "log_level")
	}
	return lvl, nil
}

// Validate checks every field against its allowed range.
func (c *Config) Validate() error {
	if _, err := c.Interval(); err != nil {
		return err
	}
	if c.Thickness < MinThickness || c.Thickness > MaxThickness {
		return errors.Errorf("thickness %v out of range [%d, %d]", c.Thickness, MinThickness, MaxThickness)
	}
	if c.DashGap < MinDashGap || c.DashGap > MaxDashGap {
		return errors.Errorf("dash_gap %v out of range [%d, %d]", c.DashGap, MinDashGap, MaxDashGap)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}
