// Package config loads driver settings. Gameplay constants are fixed and
// deliberately absent here.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

type Config struct {
	// TicksPerSecond is the simulation rate. Physics is tuned for 60.
	TicksPerSecond int            `yaml:"ticks_per_second"`
	Seed           uint64         `yaml:"seed"`
	Debug          bool           `yaml:"debug"`
	Window         WindowConfig   `yaml:"window"`
	Terminal       TerminalConfig `yaml:"terminal"`
}

type WindowConfig struct {
	Title string  `yaml:"title"`
	Scale float64 `yaml:"scale"`
}

type TerminalConfig struct {
	AvatarGlyph   string `yaml:"avatar_glyph"`
	ObstacleGlyph string `yaml:"obstacle_glyph"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		TicksPerSecond: 60,
		Window: WindowConfig{
			Title: "flapecs",
			Scale: 1,
		},
		Terminal: TerminalConfig{
			AvatarGlyph:   "@",
			ObstacleGlyph: "#",
		},
	}
}

// Load reads path on top of the defaults. A missing file yields the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.TicksPerSecond <= 0 || c.TicksPerSecond > 1000 {
		return fmt.Errorf("%w: ticks_per_second %d out of range (1-1000)", ErrInvalid, c.TicksPerSecond)
	}
	if c.Window.Scale <= 0 {
		return fmt.Errorf("%w: window scale %v must be positive", ErrInvalid, c.Window.Scale)
	}
	if n := len([]rune(c.Terminal.AvatarGlyph)); n != 1 {
		return fmt.Errorf("%w: avatar_glyph %q must be a single character", ErrInvalid, c.Terminal.AvatarGlyph)
	}
	if n := len([]rune(c.Terminal.ObstacleGlyph)); n != 1 {
		return fmt.Errorf("%w: obstacle_glyph %q must be a single character", ErrInvalid, c.Terminal.ObstacleGlyph)
	}
	return nil
}

// TickInterval is the wall time between ticks.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TicksPerSecond)
}

// SeedOrNow returns Seed, or the current time when Seed is zero.
func (c Config) SeedOrNow() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}

// Glyphs returns the terminal glyphs as runes.
func (c Config) Glyphs() (avatar, obstacle rune) {
	return []rune(c.Terminal.AvatarGlyph)[0], []rune(c.Terminal.ObstacleGlyph)[0]
}
