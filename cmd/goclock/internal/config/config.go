// Package config loads the optional goclock.yaml configuration file and
// resolves it, with defaults, into the settings the CLI renders with.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sjamesr/goclock/pkg/clock"
)

// Defaults applied when goclock.yaml is absent or partial.
const (
	DefaultFPS    = 40
	DefaultWidth  = 256
	DefaultHeight = 256
)

// Config represents the optional goclock.yaml configuration.
//
// Boolean options are pointers so that "not set" can fall back to the
// clock's defaults rather than to false.
type Config struct {
	Zone        string `yaml:"zone,omitempty"`
	FPS         int    `yaml:"fps,omitempty"`
	Width       int    `yaml:"width,omitempty"`
	Height      int    `yaml:"height,omitempty"`
	SecondHand  *bool  `yaml:"second_hand,omitempty"`
	SweepSecond *bool  `yaml:"sweep_second,omitempty"`
	Elliptical  *bool  `yaml:"elliptical,omitempty"`
	Antialias   *bool  `yaml:"antialias,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	ZoneName string
	Zone     *time.Location
	FPS      int
	Width    int
	Height   int
	Options  clock.RenderOptions
}

// LoadOptional reads goclock.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "goclock.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read goclock.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse goclock.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads goclock.yaml (if present) and resolves defaults. The time
// zone is validated here, at the boundary; an unknown identifier fails
// with a clock.ZoneError before any rendering starts.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	return cfg.Resolve()
}

// Resolve fills in defaults and validates the configuration.
func (cfg *Config) Resolve() (*Resolved, error) {
	zone, err := clock.LoadZone(cfg.Zone)
	if err != nil {
		return nil, err
	}

	fps := cfg.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	width := cfg.Width
	if width <= 0 {
		width = DefaultWidth
	}
	height := cfg.Height
	if height <= 0 {
		height = DefaultHeight
	}

	options := clock.DefaultRenderOptions()
	if cfg.SecondHand != nil {
		options.DrawSecondHand = *cfg.SecondHand
	}
	if cfg.SweepSecond != nil {
		options.SweepSecond = *cfg.SweepSecond
	}
	if cfg.Elliptical != nil {
		options.AllowEllipticalClock = *cfg.Elliptical
	}
	if cfg.Antialias != nil {
		options.Antialiasing = *cfg.Antialias
	}

	return &Resolved{
		ZoneName: cfg.Zone,
		Zone:     zone,
		FPS:      fps,
		Width:    width,
		Height:   height,
		Options:  options,
	}, nil
}
