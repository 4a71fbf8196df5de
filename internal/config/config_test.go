package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("UPSTREAM_URL", "https://upstream.example.com/api")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_TIMEZONE", "UTC")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "http://localhost:3000", cfg.App.FrontendURL)
	assert.Equal(t, time.UTC, cfg.App.Location)
	assert.Equal(t, 15*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, "12h", cfg.JWT.AccessExpiration)
	assert.False(t, cfg.Office.Set)
}

func TestLoad_OfficeLocation(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("OFFICE_LATITUDE", "17.4435")
	t.Setenv("OFFICE_LONGITUDE", "78.3772")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Office.Set)
	assert.InDelta(t, 17.4435, cfg.Office.Latitude, 1e-9)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")
	t.Setenv("UPSTREAM_URL", "https://upstream.example.com/api")

	_, err := Load()
	assert.ErrorContains(t, err, "JWT_SECRET_KEY")
}

func TestLoad_MissingUpstream(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("UPSTREAM_URL", "")

	_, err := Load()
	assert.ErrorContains(t, err, "UPSTREAM_URL")
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"port", "APP_PORT", "eighty"},
		{"timezone", "APP_TIMEZONE", "Mars/Olympus"},
		{"timeout", "UPSTREAM_TIMEOUT", "soon"},
		{"expiration", "JWT_ACCESS_EXPIRATION_TIME", "forever"},
		{"latitude", "OFFICE_LATITUDE", "north"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			assert.ErrorContains(t, err, tt.key)
		})
	}
}

func TestConfig_Validate_OfficeOutOfRange(t *testing.T) {
	cfg := &Config{
		JWT:      JWTConfig{Secret: "s", AccessExpiration: "1h"},
		Upstream: UpstreamConfig{URL: "https://x", Timeout: time.Second},
		Office:   OfficeConfig{Latitude: 91, Longitude: 0, Set: true},
	}
	assert.ErrorContains(t, cfg.Validate(), "OFFICE_LATITUDE")
}

func TestAppConfig_SlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, AppConfig{LogLevel: "DEBUG"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, AppConfig{LogLevel: "warn"}.SlogLevel())
	assert.Equal(t, slog.LevelError, AppConfig{LogLevel: "error"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, AppConfig{LogLevel: ""}.SlogLevel())
}
