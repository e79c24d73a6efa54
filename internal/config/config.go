// Package config reads the command's settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/joeshaw/envdecode"

	"github.com/talgya/hexsettlers/internal/world"
)

// Config holds every setting of the replay command.
type Config struct {
	DBPath       string   `env:"SETTLERS_DB,default=settlers.db"`
	Seed         int64    `env:"SETTLERS_SEED,default=0"`
	Radius       int      `env:"SETTLERS_RADIUS,default=2"`
	Players      []string `env:"SETTLERS_PLAYERS,default=red;blue;white;orange"`
	Scenario     string   `env:"SETTLERS_SCENARIO"`
	RandomOrgKey string   `env:"RANDOM_ORG_API_KEY"`
	LogLevel     string   `env:"SETTLERS_LOG_LEVEL,default=info"`
}

// Load decodes the environment and validates the result.
func Load() (*Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("decode environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if c.Radius < 1 {
		return fmt.Errorf("SETTLERS_RADIUS must be positive, got %d", c.Radius)
	}
	if _, err := c.Colors(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Colors parses the seat order. Repeated colors are an error.
func (c *Config) Colors() ([]world.Color, error) {
	var out []world.Color
	seen := make(map[world.Color]bool)
	for _, name := range c.Players {
		if strings.TrimSpace(name) == "" {
			continue
		}
		col, err := world.ParseColor(name)
		if err != nil {
			return nil, fmt.Errorf("SETTLERS_PLAYERS: %w", err)
		}
		if seen[col] {
			return nil, fmt.Errorf("SETTLERS_PLAYERS: %s listed twice", col)
		}
		seen[col] = true
		out = append(out, col)
	}
	if len(out) == 0 {
		return nil, errors.New("SETTLERS_PLAYERS: no players")
	}
	return out, nil
}

// Level parses the log level name.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("SETTLERS_LOG_LEVEL: %w", err)
	}
	return l, nil
}

// GenConfig returns the board generation parameters.
func (c *Config) GenConfig() world.GenConfig {
	return world.GenConfig{Radius: c.Radius, Seed: c.Seed}
}
