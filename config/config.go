// Package config loads runtime settings from defaults, an optional TOML or YAML file and REWIND_* environment variables, in that order of precedence
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/rewind/parameter"
)

// Sentinel errors
var (
	ErrInvalidLimits   = errors.New("invalid time limits")
	ErrInvalidTickRate = errors.New("invalid tick rate")
	ErrInvalidWorld    = errors.New("invalid world size")
	ErrInvalidVolume   = errors.New("invalid volume")
)

// Config is the full runtime configuration
type Config struct {
	Clock ClockConfig `toml:"clock" yaml:"clock"`
	Game  GameConfig  `toml:"game" yaml:"game"`
	Audio AudioConfig `toml:"audio" yaml:"audio"`
}

// ClockConfig positions the global clock, limits are in minutes
type ClockConfig struct {
	StartingMinute int `toml:"starting_minute" yaml:"starting_minute" env:"REWIND_START"`
	TimeLimitLower int `toml:"time_limit_lower" yaml:"time_limit_lower" env:"REWIND_LOWER"`
	TimeLimitUpper int `toml:"time_limit_upper" yaml:"time_limit_upper" env:"REWIND_UPPER"`
	// Real ticks per second; game time always counts parameter.TicksPerSecond per second
	TickRate int `toml:"tick_rate" yaml:"tick_rate" env:"REWIND_TICK_RATE"`
}

// GameConfig sizes the demo world
type GameConfig struct {
	Width     int `toml:"width" yaml:"width" env:"REWIND_WIDTH"`
	Height    int `toml:"height" yaml:"height" env:"REWIND_HEIGHT"`
	MaxGhosts int `toml:"max_ghosts" yaml:"max_ghosts" env:"REWIND_MAX_GHOSTS"`
}

// AudioConfig toggles and scales sound effects
type AudioConfig struct {
	Enabled bool    `toml:"enabled" yaml:"enabled" env:"REWIND_AUDIO"`
	Volume  float64 `toml:"volume" yaml:"volume" env:"REWIND_VOLUME"`
}

// Default returns the compile-time configuration
func Default() *Config {
	return &Config{
		Clock: ClockConfig{
			StartingMinute: parameter.DefaultStartingMinute,
			TimeLimitLower: parameter.DefaultTimeLimitLower,
			TimeLimitUpper: parameter.DefaultTimeLimitUpper,
			TickRate:       parameter.TicksPerSecond,
		},
		Game: GameConfig{
			Width:     parameter.DefaultWorldWidth,
			Height:    parameter.DefaultWorldHeight,
			MaxGhosts: parameter.DefaultMaxGhosts,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  parameter.AudioMasterVolume,
		},
	}
}

// Load builds a validated configuration
// An empty path skips the file; a named file that cannot be read is an error
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		decode := Decode
		if isYAML(path) {
			decode = DecodeYAML
		}
		if err := decode(data, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode overlays TOML data onto cfg, rejecting unknown keys
func Decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var missing *toml.StrictMissingError
		if errors.As(err, &missing) {
			return fmt.Errorf("decode toml: %s", missing.String())
		}
		return fmt.Errorf("decode toml: %w", err)
	}
	return nil
}

// DecodeYAML overlays YAML data onto cfg, rejecting unknown keys
// An empty document leaves cfg unchanged
func DecodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode yaml: %w", err)
	}
	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Encode renders cfg as TOML
func Encode(cfg *Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode toml: %w", err)
	}
	return data, nil
}

// Validate checks cross-field constraints
func (c *Config) Validate() error {
	clock := c.Clock
	if clock.TickRate <= 0 {
		return fmt.Errorf("%w: %d ticks per second", ErrInvalidTickRate, clock.TickRate)
	}
	if clock.TimeLimitLower < 0 || clock.TimeLimitUpper > parameter.BufferMinutes {
		return fmt.Errorf("%w: limits %d..%d outside 0..%d minutes",
			ErrInvalidLimits, clock.TimeLimitLower, clock.TimeLimitUpper, parameter.BufferMinutes)
	}
	if clock.TimeLimitLower >= clock.TimeLimitUpper {
		return fmt.Errorf("%w: lower %d not below upper %d", ErrInvalidLimits, clock.TimeLimitLower, clock.TimeLimitUpper)
	}
	if clock.StartingMinute < clock.TimeLimitLower || clock.StartingMinute > clock.TimeLimitUpper {
		return fmt.Errorf("%w: starting minute %d outside %d..%d",
			ErrInvalidLimits, clock.StartingMinute, clock.TimeLimitLower, clock.TimeLimitUpper)
	}
	if c.Game.Width < parameter.MinWorldWidth || c.Game.Height < parameter.MinWorldHeight {
		return fmt.Errorf("%w: %dx%d", ErrInvalidWorld, c.Game.Width, c.Game.Height)
	}
	if c.Game.MaxGhosts < 0 {
		return fmt.Errorf("%w: negative ghost cap %d", ErrInvalidWorld, c.Game.MaxGhosts)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: %.2f not in 0..1", ErrInvalidVolume, c.Audio.Volume)
	}
	return nil
}
