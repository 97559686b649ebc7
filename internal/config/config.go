// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/samdwyer/rogue/internal/fov"
	"github.com/samdwyer/rogue/internal/game"
	"github.com/samdwyer/rogue/internal/world"
)

// LogLevel is a textual slog level.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// Slog converts the level for a slog handler. Unknown values map to info.
func (l LogLevel) Slog() slog.Level {
	switch LogLevel(strings.ToLower(string(l))) {
	case LogDebug:
		return slog.LevelDebug
	case LogWarn:
		return slog.LevelWarn
	case LogError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Config holds every setting read from the environment.
type Config struct {
	// Seed for random number generation. A seed of 0 means a time-based seed.
	Seed int64 `env:"ROGUE_SEED" envDefault:"0"`

	MapWidth        int `env:"ROGUE_MAP_WIDTH" envDefault:"80"`
	MapHeight       int `env:"ROGUE_MAP_HEIGHT" envDefault:"45"`
	MaxRooms        int `env:"ROGUE_MAX_ROOMS" envDefault:"30"`
	RoomMinSize     int `env:"ROGUE_ROOM_MIN_SIZE" envDefault:"6"`
	RoomMaxSize     int `env:"ROGUE_ROOM_MAX_SIZE" envDefault:"10"`
	MaxRoomMonsters int `env:"ROGUE_MAX_ROOM_MONSTERS" envDefault:"5"`

	TorchRadius   int    `env:"ROGUE_TORCH_RADIUS" envDefault:"10"`
	FOVAlgorithm  string `env:"ROGUE_FOV_ALGORITHM" envDefault:"basic"`
	FOVLightWalls bool   `env:"ROGUE_FOV_LIGHT_WALLS" envDefault:"true"`

	LogFile  string   `env:"ROGUE_LOG_FILE" envDefault:"rogue.log"`
	LogLevel LogLevel `env:"ROGUE_LOG_LEVEL" envDefault:"info"`

	// MetricsAddr enables the Prometheus endpoint when set.
	MetricsAddr string `env:"ROGUE_METRICS_ADDR"`

	HoneycombAPIKey  string `env:"HONEYCOMB_ROGUE_API_KEY"`
	HoneycombDataset string `env:"HONEYCOMB_ROGUE_DATASET" envDefault:"rogue"`
}

// Load parses the process environment and validates the result.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFrom parses the given variables instead of the process environment.
// Useful in tests.
func LoadFrom(environ map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate returns a joined error listing all problems found.
func (c *Config) Validate() error {
	var errs []error
	if err := c.GenParams().Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.MaxRoomMonsters < 0 {
		errs = append(errs, fmt.Errorf("max room monsters must not be negative, got %d", c.MaxRoomMonsters))
	}
	if c.TorchRadius < 0 {
		errs = append(errs, fmt.Errorf("torch radius must not be negative, got %d", c.TorchRadius))
	}
	if _, err := fov.ParseAlgorithm(c.FOVAlgorithm); err != nil {
		errs = append(errs, err)
	}
	switch LogLevel(strings.ToLower(string(c.LogLevel))) {
	case LogDebug, LogInfo, LogWarn, LogError:
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", c.LogLevel))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// GenParams returns the dungeon generation parameters.
func (c *Config) GenParams() world.GenParams {
	return world.GenParams{
		Width:       c.MapWidth,
		Height:      c.MapHeight,
		MaxRooms:    c.MaxRooms,
		RoomMinSize: c.RoomMinSize,
		RoomMaxSize: c.RoomMaxSize,
	}
}

// Game returns the settings for a game session.
func (c *Config) Game() game.Config {
	algo, _ := fov.ParseAlgorithm(c.FOVAlgorithm)
	return game.Config{
		Seed:            c.Seed,
		Gen:             c.GenParams(),
		MaxRoomMonsters: c.MaxRoomMonsters,
		TorchRadius:     c.TorchRadius,
		FOVAlgorithm:    algo,
		FOVLightWalls:   c.FOVLightWalls,
	}
}
