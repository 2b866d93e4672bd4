package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"contacts/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
env: Production
server:
  host: 0.0.0.0
  port: 8080
jwt:
  secret_key: file-secret
  access_token_expires: 15m
database:
  name: contacts
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, config.EnvProd, cfg.Env)
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "file-secret", cfg.JWT.SecretKey)
	require.Equal(t, 15*time.Minute, cfg.JWT.AccessExpires)
	require.Equal(t, "contacts", cfg.Database.Name)

	// Keys missing from the file keep their defaults.
	require.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshExpires)
	require.Equal(t, "HS256", cfg.JWT.Algorithm)
	require.Equal(t, uint16(5432), cfg.Database.Port)
	require.Equal(t, 10*time.Second, cfg.Server.Timeout)
	require.Equal(t, 60, cfg.RateLimit.Requests)
	require.Equal(t, 15*time.Minute, cfg.Redis.CacheTTL)
	require.False(t, cfg.RateLimit.TrustProxy)
	require.Equal(t, []string{"*"}, cfg.HTTP.CORSOrigins)
}

func TestLoadCORSOrigins(t *testing.T) {
	path := writeConfig(t, "http:\n  cors_origins: [\"https://app.example.com\"]\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"https://app.example.com"}, cfg.HTTP.CORSOrigins)
	require.Equal(t, 5*time.Second, cfg.HTTP.Timeout)
}

func TestLoadInvalidRateLimit(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{name: "Zero requests", body: "rate_limit:\n  requests: 0\n"},
		{name: "Negative requests", body: "rate_limit:\n  requests: -5\n"},
		{name: "Zero window", body: "rate_limit:\n  window: 0s\n"},
		{name: "Negative window", body: "rate_limit:\n  window: -1m\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tc.body))
			require.ErrorIs(t, err, config.ErrInvalidRateLimit)
		})
	}
}

func TestLoadSecretFromEnv(t *testing.T) {
	path := writeConfig(t, "jwt:\n  secret_key: file-secret\n")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "env-secret", cfg.JWT.SecretKey)
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load("")
	require.ErrorIs(t, err, config.ErrEmptyPath)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := writeConfig(t, "server: [not, a, map")
	_, err = config.Load(path)
	require.Error(t, err)
}
