package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/nbodyviz/internal/viz"
)

const (
	DefaultBounds     = 5000.0
	DefaultElevation  = 25.0
	DefaultAzimuth    = 10.0
	DefaultIntervalMs = 50
	DefaultExportFPS  = viz.DefaultExportFPS
	DefaultOutput     = "figures/nbody.gif"
	DefaultTheme      = "dark"
	DefaultWidth      = 80
	DefaultHeight     = 32
)

// ErrInvalidConfig indicates a config value outside its valid range.
var ErrInvalidConfig = errors.New("config: invalid value")

type Config struct {
	Bounds     float64 `yaml:"bounds"`
	Elevation  float64 `yaml:"elevation"`
	Azimuth    float64 `yaml:"azimuth"`
	IntervalMs int     `yaml:"interval_ms"`
	ExportFPS  int     `yaml:"export_fps"`
	Output     string  `yaml:"output"`
	Theme      string  `yaml:"theme"`
	Loop       bool    `yaml:"loop"`
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Bounds:     DefaultBounds,
		Elevation:  DefaultElevation,
		Azimuth:    DefaultAzimuth,
		IntervalMs: DefaultIntervalMs,
		ExportFPS:  DefaultExportFPS,
		Output:     DefaultOutput,
		Theme:      DefaultTheme,
		Loop:       true,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
	}
}

// Load reads a YAML file over the defaults; keys absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a YAML file over a copy of base.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch {
	case c.Bounds <= 0:
		return fmt.Errorf("%w: bounds must be positive, got %g", ErrInvalidConfig, c.Bounds)
	case c.IntervalMs <= 0:
		return fmt.Errorf("%w: interval_ms must be positive, got %d", ErrInvalidConfig, c.IntervalMs)
	case c.ExportFPS <= 0:
		return fmt.Errorf("%w: export_fps must be positive, got %d", ErrInvalidConfig, c.ExportFPS)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: width and height must be positive, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.Output == "":
		return fmt.Errorf("%w: output must not be empty", ErrInvalidConfig)
	}
	if _, ok := viz.GetTheme(c.Theme); !ok {
		return fmt.Errorf("%w: unknown theme %q (available: %v)", ErrInvalidConfig, c.Theme, viz.ThemeNames())
	}
	return nil
}

func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalMs) * time.Millisecond
}

// VizOptions builds the fixed visual mapping for one run.
func (c *Config) VizOptions() viz.Options {
	opts := viz.DefaultOptions()
	opts.Bounds = c.Bounds
	opts.Elevation = c.Elevation
	opts.Azimuth = c.Azimuth
	opts.Theme, _ = viz.GetTheme(c.Theme)
	opts.Cols = c.Width
	opts.Rows = c.Height
	return opts
}
