// Package config loads settings for the example command from the environment,
// then lets command-line flags override them.
package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the example command settings.
type Config struct {
	Seed         uint64 `env:"RNGENIE_SEED" envDefault:"100"`
	Stream       uint64 `env:"RNGENIE_STREAM" envDefault:"15726070495360670683"`
	Samples      int    `env:"RNGENIE_SAMPLES" envDefault:"100000"`
	LogLevel     string `env:"RNGENIE_LOG_LEVEL" envDefault:"info"`
	Bench        bool   `env:"RNGENIE_BENCH" envDefault:"false"`
	BenchRepeats int    `env:"RNGENIE_BENCH_REPEATS" envDefault:"31"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads the environment into a Config and then applies args as flags on fs.
func Load(fs *flag.FlagSet, args []string) (Config, error) {
	if fs == nil {
		return Config{}, errors.New("flag set is required")
	}
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "engine seed")
	fs.Uint64Var(&cfg.Stream, "stream", cfg.Stream, "engine stream id")
	fs.IntVar(&cfg.Samples, "samples", cfg.Samples, "draws per sampler summary")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "trace, debug, info, warn or error")
	fs.BoolVar(&cfg.Bench, "bench", cfg.Bench, "compare the throughput of the random sources")
	fs.IntVar(&cfg.BenchRepeats, "bench-repeats", cfg.BenchRepeats, "runtime samples per source")
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Samples < 1 {
		return fmt.Errorf("samples must be >= 1, got %d", c.Samples)
	}
	if c.Bench && c.BenchRepeats < 11 {
		return fmt.Errorf("bench repeats must be >= 11, got %d", c.BenchRepeats)
	}
	return nil
}
