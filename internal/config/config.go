// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// devSessionSecret signs flash cookies in development only.
const devSessionSecret = "development-only-secret-change-me"

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string `env:"APP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"APP_PORT" envDefault:"8080"`
	Env  string `env:"APP_ENV" envDefault:"development"` // "development", "production", "testing"

	// Content backend. Required outside development.
	APIBaseURL string        `env:"API_BASE_URL"`
	APITimeout time.Duration `env:"API_TIMEOUT" envDefault:"15s"`

	// Cookie signing and admin session lifetime.
	SessionSecret string        `env:"SESSION_SECRET"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"12h"`

	// Login attempts allowed per client IP per minute.
	LoginRateLimit int `env:"LOGIN_RATE_LIMIT" envDefault:"10"`

	// Valkey (Redis-compatible) session store
	ValkeyHost     string `env:"VALKEY_HOST" envDefault:"localhost"`
	ValkeyPort     string `env:"VALKEY_PORT" envDefault:"6379"`
	ValkeyPassword string `env:"VALKEY_PASSWORD"`

	// Sync log database: "postgres", "sqlite", or empty to disable.
	DBDriver   string `env:"DB_DRIVER"`
	DBHost     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	DBPort     string `env:"POSTGRES_PORT" envDefault:"5432"`
	DBUser     string `env:"POSTGRES_USER" envDefault:"sonchiraiya"`
	DBPassword string `env:"POSTGRES_PASSWORD" envDefault:"changeme"`
	DBName     string `env:"POSTGRES_DB" envDefault:"sonchiraiya"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"sonchiraiya.db"`
}

// Load reads configuration from the process environment.
func Load() (*Config, error) {
	return LoadFrom(env.ToMap(os.Environ()))
}

// LoadFrom parses configuration from the given variables, applying
// defaults for development. It returns an error if critical values are
// missing in production mode.
func LoadFrom(environ map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.APIBaseURL == "" && cfg.IsDev() {
		cfg.APIBaseURL = "http://localhost:5000"
	}
	if cfg.SessionSecret == "" && cfg.IsDev() {
		cfg.SessionSecret = devSessionSecret
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error

	if c.APIBaseURL == "" {
		errs = append(errs, errors.New("API_BASE_URL must be set outside development"))
	} else if u, err := url.Parse(c.APIBaseURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("API_BASE_URL %q is not an absolute http(s) URL", c.APIBaseURL))
	}

	if c.SessionSecret == "" {
		errs = append(errs, errors.New("SESSION_SECRET must be set outside development"))
	} else if len(c.SessionSecret) < 32 && !c.IsDev() {
		errs = append(errs, errors.New("SESSION_SECRET must be at least 32 bytes"))
	}

	switch c.DBDriver {
	case "", "postgres", "sqlite":
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER %q is not one of postgres, sqlite", c.DBDriver))
	}

	if c.Env == "production" && c.DBDriver == "postgres" && c.DBPassword == "changeme" {
		errs = append(errs, errors.New("POSTGRES_PASSWORD must be set in production"))
	}

	if c.LoginRateLimit < 1 {
		errs = append(errs, errors.New("LOGIN_RATE_LIMIT must be at least 1"))
	}

	return errors.Join(errs...)
}

// DSN returns the connection string for the configured sync log driver.
func (c *Config) DSN() string {
	if c.DBDriver == "sqlite" {
		return c.SQLitePath
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		url.QueryEscape(c.DBUser), url.QueryEscape(c.DBPassword), c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// LogValue keeps secrets out of structured logs.
func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("env", c.Env),
		slog.String("addr", c.Addr()),
		slog.String("api_base_url", c.APIBaseURL),
		slog.Duration("api_timeout", c.APITimeout),
		slog.String("db_driver", c.DBDriver),
		slog.String("valkey", c.ValkeyHost+":"+c.ValkeyPort),
	)
}
