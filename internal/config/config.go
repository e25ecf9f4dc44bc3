// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	FlightAPI FlightAPIConfig
	Directory DirectoryConfig
	Redis     RedisConfig
	Logging   LoggingConfig
	App       AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// FlightAPIConfig holds settings for the external flight-search API.
type FlightAPIConfig struct {
	BaseURL string        `env:"FLIGHT_API_BASE_URL" envDefault:"http://localhost:9090"`
	Timeout time.Duration `env:"FLIGHT_API_TIMEOUT" envDefault:"10s"`

	// RatePerSecond caps outbound dispatch calls.
	RatePerSecond float64 `env:"FLIGHT_API_RATE" envDefault:"5"`
	RateBurst     int     `env:"FLIGHT_API_BURST" envDefault:"10"`
}

// DirectoryConfig holds settings for the remote location directory.
type DirectoryConfig struct {
	BaseURL string        `env:"LOCATION_API_BASE_URL" envDefault:"http://localhost:9091"`
	Timeout time.Duration `env:"LOCATION_API_TIMEOUT" envDefault:"5s"`

	// Debounce is the quiet period after the last keystroke before a
	// lookup fires.
	Debounce time.Duration `env:"LOCATION_DEBOUNCE" envDefault:"300ms"`
}

// RedisConfig holds settings for the recent-searches store.
type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string        `env:"REDIS_PASSWORD" envDefault:""`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL      time.Duration `env:"RECENT_SEARCHES_TTL" envDefault:"720h"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.FlightAPI.BaseURL == "" {
		return fmt.Errorf("FLIGHT_API_BASE_URL is required")
	}
	if cfg.FlightAPI.Timeout <= 0 {
		return fmt.Errorf("FLIGHT_API_TIMEOUT must be positive")
	}
	if cfg.FlightAPI.RatePerSecond <= 0 {
		return fmt.Errorf("FLIGHT_API_RATE must be positive")
	}
	if cfg.Directory.Timeout <= 0 {
		return fmt.Errorf("LOCATION_API_TIMEOUT must be positive")
	}
	if cfg.Directory.Debounce <= 0 {
		return fmt.Errorf("LOCATION_DEBOUNCE must be positive")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
