package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig([]string{"-c", filepath.Join(t.TempDir(), "missing.env")})
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Addr())
	assert.Equal(t, SessionBackendMemory, cfg.SessionBackend)
	assert.Equal(t, 720*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "https://api.changenow.io/v1", cfg.ChangeNowAPIURL)
	assert.True(t, cfg.TrustProxyHeaders)
	assert.False(t, cfg.IsProduction())
	assert.Empty(t, cfg.KafkaBrokers)
}

func TestNewConfig_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.env")
	content := "APP_PORT=9090\nKAFKA_BROKERS=k1:9092,k2:9092\nAPP_ENV=production\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	// godotenv never overrides variables already present
	t.Setenv("APP_ENV", "staging")
	t.Setenv("TRUST_PROXY_HEADERS", "false")
	t.Cleanup(func() {
		os.Unsetenv("APP_PORT")
		os.Unsetenv("KAFKA_BROKERS")
	})

	cfg, err := NewConfig([]string{"-c", path})
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "staging", cfg.AppEnv)
	assert.False(t, cfg.TrustProxyHeaders)
}

func TestNewConfig_FlagOverrides(t *testing.T) {
	t.Setenv("APP_LOG_LEVEL", "warn")

	cfg, err := NewConfig([]string{
		"-c", filepath.Join(t.TempDir(), "missing.env"),
		"-a", "0.0.0.0", "-p", "7000", "-l", "debug", "-d", "postgres://x",
	})
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:7000", cfg.Addr())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "postgres://x", cfg.DatabaseDSN)
}

func TestNewConfig_Validation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown backend", env: map[string]string{"SESSION_BACKEND": "sqlite"}},
		{name: "redis without addr", env: map[string]string{"SESSION_BACKEND": "redis"}},
		{name: "bad max entries", env: map[string]string{"SESSION_MAX_ENTRIES": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := NewConfig([]string{"-c", filepath.Join(t.TempDir(), "missing.env")})
			assert.Error(t, err)
		})
	}
}

func TestNewConfig_UnknownFlag(t *testing.T) {
	_, err := NewConfig([]string{"--nope"})
	assert.Error(t, err)
}
