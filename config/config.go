// Package config loads the command configuration from WAR_* environment
// variables, then lets command line flags override them.
package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"war/game"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

const (
	ModePlay     = "play"
	ModeSimulate = "simulate"
)

type Config struct {
	Mode     string       `env:"WAR_MODE"      envDefault:"play"`
	Seed     int64        `env:"WAR_SEED"`
	Player   game.Faction `env:"WAR_PLAYER"    envDefault:"Green"`
	Games    int          `env:"WAR_GAMES"     envDefault:"100"`
	MaxTurns int          `env:"WAR_MAX_TURNS"`
	OutDir   string       `env:"WAR_OUT_DIR"`
	LogLevel string       `env:"WAR_LOG_LEVEL" envDefault:"warn"`
}

// Parse reads the environment, then the flags in args.
func Parse(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "play or simulate")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = random)")
	fs.TextVar(&cfg.Player, "player", cfg.Player, "player faction")
	fs.IntVar(&cfg.Games, "games", cfg.Games, "number of simulated games")
	fs.IntVar(&cfg.MaxTurns, "max-turns", cfg.MaxTurns, "turn limit per game (0 = none when playing)")
	fs.StringVar(&cfg.OutDir, "out", cfg.OutDir, "directory for simulation records")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.Mode = strings.ToLower(strings.TrimSpace(cfg.Mode))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Mode != ModePlay && c.Mode != ModeSimulate {
		errs = append(errs, fmt.Errorf("unknown mode %q", c.Mode))
	}
	if !c.Player.Valid() {
		errs = append(errs, fmt.Errorf("unknown player faction %d", int(c.Player)))
	}
	if c.Seed < 0 {
		errs = append(errs, errors.New("seed must not be negative"))
	}
	if c.Games < 1 {
		errs = append(errs, errors.New("games must be at least 1"))
	}
	if c.MaxTurns < 0 {
		errs = append(errs, errors.New("max turns must not be negative"))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level parses the configured log level.
func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}
