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

	assert.Equal(t, "dev", cfg.Logger.Env)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.True(t, cfg.Browser.Headless)
	assert.Equal(t, 10*time.Second, cfg.Browser.Timeout)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "file://migrations", cfg.Migrations.Path)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PW_HEADLESS", "false")
	t.Setenv("PW_TIMEOUT_SEC", "25")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("HTTP_ADDR", ":9000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.Browser.Headless)
	assert.Equal(t, 25*time.Second, cfg.Browser.Timeout)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, ":9000", cfg.Server.Addr)
}

func TestEnvBool(t *testing.T) {
	t.Setenv("BOOL_KEY", "")
	assert.True(t, envBool("BOOL_KEY", true))
	assert.False(t, envBool("BOOL_KEY", false))

	t.Setenv("BOOL_KEY", "yes")
	assert.True(t, envBool("BOOL_KEY", false))

	t.Setenv("BOOL_KEY", "0")
	assert.False(t, envBool("BOOL_KEY", true))
}

func TestEnvInt(t *testing.T) {
	t.Setenv("INT_KEY", "не число")
	assert.Equal(t, 42, envInt("INT_KEY", 42))

	t.Setenv("INT_KEY", "7")
	assert.Equal(t, 7, envInt("INT_KEY", 42))
}
