package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Host              string `env:"HOST"                envDefault:"0.0.0.0"`
	Port              int    `env:"PORT"                envDefault:"5000"`
	Debug             bool   `env:"DEBUG"               envDefault:"false"`
	Seed              uint64 `env:"FEED_SEED"           envDefault:"123"`
	PostgresURL       string `env:"POSTGRES_URL"`
	ChangeLogCapacity int    `env:"CHANGE_LOG_CAPACITY" envDefault:"1000"`
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// LoadConfig reads .env when present and then the process environment.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.ChangeLogCapacity < 1 {
		return Config{}, fmt.Errorf("CHANGE_LOG_CAPACITY must be positive, got %d", cfg.ChangeLogCapacity)
	}
	return cfg, nil
}
