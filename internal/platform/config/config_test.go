package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnvFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad_Defaults(t *testing.T) {
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cfg, err := Load(noEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, SourceMemory, cfg.Source)
	assert.Equal(t, AuthDev, cfg.AuthMode)
	assert.Equal(t, "http://localhost:8000", cfg.UpstreamAPIURL)
	assert.Equal(t, 10*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, "clinic-records", cfg.AppName)
	assert.Equal(t, 50.0, cfg.RateLimitRPS)
	assert.Equal(t, 100, cfg.RateLimitBurst)
	assert.True(t, cfg.IsDev())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", ":9090")
	t.Setenv("SOURCE", "API")
	t.Setenv("UPSTREAM_API_URL", "http://clinic:8000/")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")
	t.Setenv("AUTH_MODE", "jwt")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("ENV", "production")

	cfg, err := Load(noEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, SourceAPI, cfg.Source)
	assert.Equal(t, "http://clinic:8000", cfg.UpstreamAPIURL)
	assert.Equal(t, 3*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, AuthJWT, cfg.AuthMode)
	assert.False(t, cfg.IsDev())
}

func TestLoad_EnvFile(t *testing.T) {
	t.Setenv("SOURCE", "")
	require.NoError(t, os.Unsetenv("SOURCE"))
	t.Setenv("LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("LOG_LEVEL"))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL=debug\nSOURCE=memory\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	base := Config{Port: "8080", Source: SourceMemory, AuthMode: AuthDev}
	require.NoError(t, base.Validate())

	cases := map[string]func(c *Config){
		"postgres without dsn": func(c *Config) { c.Source = SourcePostgres },
		"unknown source":       func(c *Config) { c.Source = "mongo" },
		"jwt without secret":   func(c *Config) { c.AuthMode = AuthJWT },
		"unknown auth mode":    func(c *Config) { c.AuthMode = "oauth" },
		"upstream without url": func(c *Config) { c.AuthMode = AuthUpstream },
		"empty port":           func(c *Config) { c.Port = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := base
			mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}
}
