package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var managedKeys = []string{
	"APP_ENV", "LOG_LEVEL", "SERVER_PORT", "REDIS_URL",
	"SESSION_TTL", "SESSION_MAX", "AUTO_DISMISS_DELAY",
	"BANNER_SOURCE_URL", "BANNER_SOURCE_TOKEN", "BANNER_SOURCE_FILE", "BANNER_CACHE_TTL",
	"BANNER_MODE", "BANNER_TOKEN_PRESET", "BANNER_STICKY_WIDTH", "BANNER_TICKER_SPEED_SECONDS",
	"OUTBOUND_PROXY_ENABLED", "OUTBOUND_PROXY_HOST", "OUTBOUND_PROXY_PORT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range managedKeys {
		os.Unsetenv(key)
	}
	t.Cleanup(func() {
		for _, key := range managedKeys {
			os.Unsetenv(key)
		}
	})
}

// TestLoad_Defaults verifies that default values are used when env vars are missing.
func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	os.Setenv("REDIS_URL", "redis://localhost:6379/0")
	os.Setenv("BANNER_SOURCE_URL", "https://example.my.salesforce.com/services/data/v60.0/graphql")

	cfg, err := Load(".")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, 10000, cfg.Session.MaxSessions)
	assert.Equal(t, 15*time.Second, cfg.Session.AutoDismissDelay)
	assert.Equal(t, 10*time.Second, cfg.BannerSource.Timeout)
	assert.Equal(t, 30*time.Second, cfg.BannerSource.CacheTTL)
	assert.Equal(t, "sticky", cfg.Display.Mode)
	assert.Equal(t, "default", cfg.Display.TokenPreset)
	assert.Equal(t, "#6d5bf6", cfg.Display.InfoColor)
	assert.False(t, cfg.Proxy.Enabled)
}

// TestLoad_EnvVars verifies that environment variables override defaults.
func TestLoad_EnvVars(t *testing.T) {
	clearEnv(t)
	os.Setenv("APP_ENV", "production")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("REDIS_URL", "redis://cache:6379/1")
	os.Setenv("BANNER_SOURCE_FILE", "banners.yaml")
	os.Setenv("SESSION_TTL", "2h")
	os.Setenv("BANNER_MODE", "ticker")
	os.Setenv("BANNER_STICKY_WIDTH", "75%")
	os.Setenv("OUTBOUND_PROXY_ENABLED", "true")
	os.Setenv("OUTBOUND_PROXY_HOST", "proxy.local")
	os.Setenv("OUTBOUND_PROXY_PORT", "3128")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "redis://cache:6379/1", cfg.Redis.URL)
	assert.Equal(t, "banners.yaml", cfg.BannerSource.File)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "ticker", cfg.Display.Mode)
	assert.Equal(t, "75%", cfg.Display.StickyWidth)
	assert.Equal(t, "http://proxy.local:3128", cfg.Proxy.Settings().HostPort())
}

// TestLoad_File verifies that values are loaded from a .env file.
func TestLoad_File(t *testing.T) {
	clearEnv(t)
	content := []byte(`
APP_ENV=staging
LOG_LEVEL=warn
SERVER_PORT=7070
REDIS_URL=redis://staging:6379/0
BANNER_SOURCE_URL=https://staging.example.com/graphql
BANNER_TOKEN_PRESET=broadcast
`)
	err := os.WriteFile(".env", content, 0644)
	require.NoError(t, err)
	defer os.Remove(".env")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 7070, cfg.ServerPort)
	assert.Equal(t, "broadcast", cfg.Display.TokenPreset)
}

// TestLoad_ValidationFailure verifies that missing required fields return an error.
func TestLoad_ValidationFailure(t *testing.T) {
	t.Run("MissingRedis", func(t *testing.T) {
		clearEnv(t)
		os.Setenv("BANNER_SOURCE_URL", "https://example.com/graphql")

		cfg, err := Load(".")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "missing required configuration")
	})

	t.Run("MissingSource", func(t *testing.T) {
		clearEnv(t)
		os.Setenv("REDIS_URL", "redis://localhost:6379/0")

		cfg, err := Load(".")
		assert.Nil(t, cfg)
		assert.ErrorIs(t, err, ErrMissingBannerSource)
	})
}

func TestDisplayConfig_Individual(t *testing.T) {
	d := DisplayConfig{
		Mode:               "ticker",
		TokenPreset:        "compact",
		StickyWidth:        "80%",
		TickerSpeedSeconds: "40",
		InfoColor:          "#123456",
	}

	values := d.Individual()

	assert.Equal(t, "ticker", values["mode"])
	assert.Equal(t, "compact", values["tokenPreset"])
	assert.Equal(t, "80%", values["stickyWidth"])
	assert.Equal(t, "40", values["tickerSpeedSeconds"])
	assert.Equal(t, "#123456", values["infoColor"])

	_, ok := values["stickyMaxWidth"]
	assert.False(t, ok, "unset values must stay undefined")
}
