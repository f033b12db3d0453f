// Package config reads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

// Storage backends
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

// Server is the configuration of cmd/server
type Server struct {
	Host            string        `env:"WORDTILES_HOST"`
	Port            int           `env:"WORDTILES_PORT" envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"WORDTILES_SHUTDOWN_TIMEOUT" envDefault:"30s"`

	Storage  string        `env:"WORDTILES_STORAGE" envDefault:"memory"`
	RedisURL string        `env:"WORDTILES_REDIS_URL"`
	MatchTTL time.Duration `env:"WORDTILES_MATCH_TTL" envDefault:"168h"`

	// DictionaryDir holds one <locale>.txt word list per locale
	DictionaryDir string `env:"WORDTILES_DICTIONARY_DIR" envDefault:"data/dictionary"`

	LogLevel string `env:"WORDTILES_LOG_LEVEL" envDefault:"info"`
}

// Load parses the server configuration from environment variables
func Load() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

// Validate checks settings that depend on each other
func (c Server) Validate() error {
	switch c.Storage {
	case StorageMemory:
	case StorageRedis:
		if c.RedisURL == "" {
			return errors.New("WORDTILES_REDIS_URL required when WORDTILES_STORAGE=redis")
		}
	default:
		return fmt.Errorf("invalid WORDTILES_STORAGE %q: must be memory or redis", c.Storage)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid WORDTILES_PORT %d", c.Port)
	}
	return nil
}

// Level returns the configured log level, defaulting to info
func (c Server) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
