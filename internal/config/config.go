package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	JWT      JWTConfig
	App      AppConfig
	Upstream UpstreamConfig
	Office   OfficeConfig
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
	Timezone    string
	Location    *time.Location
}

// UpstreamConfig points at the attendance API this service fronts
type UpstreamConfig struct {
	URL     string
	Timeout time.Duration
}

// OfficeConfig is the office position used to estimate check-in distance.
// Set is false when either coordinate is missing.
type OfficeConfig struct {
	Latitude  float64
	Longitude float64
	Set       bool
}

// Load reads configuration from the environment, after loading .env when
// one is present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	timezone := getEnv("APP_TIMEZONE", "Local")
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		Timezone:    timezone,
		Location:    location,
	}

	// Upstream configuration
	upstreamTimeout, err := time.ParseDuration(getEnv("UPSTREAM_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT: %w", err)
	}

	config.Upstream = UpstreamConfig{
		URL:     getEnv("UPSTREAM_URL", ""),
		Timeout: upstreamTimeout,
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"),
	}

	// Office location
	lat, latSet, err := getEnvFloat("OFFICE_LATITUDE")
	if err != nil {
		return nil, err
	}
	lon, lonSet, err := getEnvFloat("OFFICE_LONGITUDE")
	if err != nil {
		return nil, err
	}
	config.Office = OfficeConfig{
		Latitude:  lat,
		Longitude: lon,
		Set:       latSet && lonSet,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}
	if c.Upstream.URL == "" {
		return fmt.Errorf("UPSTREAM_URL is required")
	}
	if c.Upstream.Timeout <= 0 {
		return fmt.Errorf("UPSTREAM_TIMEOUT must be positive")
	}
	if c.Office.Set {
		if c.Office.Latitude < -90 || c.Office.Latitude > 90 {
			return fmt.Errorf("OFFICE_LATITUDE must be between -90 and 90")
		}
		if c.Office.Longitude < -180 || c.Office.Longitude > 180 {
			return fmt.Errorf("OFFICE_LONGITUDE must be between -180 and 180")
		}
	}
	return nil
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (c AppConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvFloat(key string) (float64, bool, error) {
	value := getEnv(key, "")
	if value == "" {
		return 0, false, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, true, nil
}
