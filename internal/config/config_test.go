package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "support-desk-sim", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
	assert.Equal(t, "info", cfg.Logger.Level)

	assert.True(t, cfg.Latency.Enabled)
	wideMin, wideMax := cfg.Latency.Wide()
	assert.Equal(t, 250*time.Millisecond, wideMin)
	assert.Equal(t, 2*time.Second, wideMax)
	quickMin, quickMax := cfg.Latency.Quick()
	assert.Equal(t, 250*time.Millisecond, quickMin)
	assert.Equal(t, time.Second, quickMax)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("SIM_LATENCY_ENABLED", "false")
	t.Setenv("SIM_LATENCY_WIDE_MAX_MS", "500")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_MINUTES", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.False(t, cfg.Latency.Enabled)
	_, wideMax := cfg.Latency.Wide()
	assert.Equal(t, 500*time.Millisecond, wideMax)
	assert.Equal(t, 5, cfg.Auth.AccessTokenTTLMinutes)
}

func TestLoadRejectsInvertedLatencyWindow(t *testing.T) {
	t.Setenv("SIM_LATENCY_WIDE_MIN_MS", "3000")
	t.Setenv("SIM_LATENCY_WIDE_MAX_MS", "1000")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_MINUTES", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.Auth.AccessTokenTTLMinutes)
}
