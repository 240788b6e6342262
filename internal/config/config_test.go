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

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, StoreBackendRedis, cfg.Store.Backend)
	assert.Equal(t, "session_id", cfg.Session.CookieName)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORE_BACKEND", StoreBackendMemory)
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreBackendMemory, cfg.Store.Backend)
	assert.Equal(t, time.Hour, cfg.Session.TTL)
	assert.True(t, cfg.IsProduction())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantError string
	}{
		{
			name:      "missing port",
			mutate:    func(c *Config) { c.Server.Port = "" },
			wantError: "APP_PORT is required",
		},
		{
			name:      "unknown store backend",
			mutate:    func(c *Config) { c.Store.Backend = "etcd" },
			wantError: "STORE_BACKEND must be one of",
		},
		{
			name: "redis backend without host",
			mutate: func(c *Config) {
				c.Store.Backend = StoreBackendRedis
				c.Redis.Host = ""
			},
			wantError: "REDIS_HOST is required",
		},
		{
			name:      "non-positive session TTL",
			mutate:    func(c *Config) { c.Session.TTL = 0 },
			wantError: "SESSION_TTL must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load()
			require.NoError(t, err)

			tt.mutate(cfg)
			err = cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantError)
		})
	}
}
