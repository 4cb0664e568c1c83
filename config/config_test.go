package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Success - defaults", func(t *testing.T) {
		cfg := LoadConfig()

		require.NotNil(t, cfg)
		assert.Same(t, cfg, AppConfig)
		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, int32(25), cfg.Database.MaxConns)
		assert.Equal(t, int32(5), cfg.Database.MinConns)
		assert.Equal(t, time.Hour, cfg.Database.MaxConnLifetime)
		assert.Equal(t, 60, cfg.RateLimit.Requests)
		assert.Equal(t, time.Minute, cfg.RateLimit.Window)
		assert.Equal(t, []string{"https://localhost:3000", "http://localhost:3000"}, cfg.CORS.AllowedOrigins)
		assert.Equal(t, 100*time.Millisecond, cfg.DeleteSettleDelay)
		assert.False(t, cfg.Server.IsProduction())
		assert.Empty(t, cfg.Server.TrustedProxies)
	})

	t.Run("Success - environment overrides", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("APP_ENV", "Production")
		t.Setenv("DB_MAX_CONNS", "10")
		t.Setenv("RATE_LIMIT_ENABLED", "false")
		t.Setenv("RATE_LIMIT_WINDOW", "30s")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
		t.Setenv("DELETE_SETTLE_DELAY", "0s")
		t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 192.168.1.10")

		cfg := LoadConfig()

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.True(t, cfg.Server.IsProduction())
		assert.Equal(t, int32(10), cfg.Database.MaxConns)
		assert.False(t, cfg.RateLimit.Enabled)
		assert.Equal(t, 30*time.Second, cfg.RateLimit.Window)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
		assert.Equal(t, time.Duration(0), cfg.DeleteSettleDelay)
		assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.10"}, cfg.Server.TrustedProxies)
	})

	t.Run("Failed - invalid integer panics", func(t *testing.T) {
		t.Setenv("REDIS_DB", "abc")

		assert.Panics(t, func() { LoadConfig() })
	})
}

func TestDatabaseConfig_URL(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db",
		Port:     "5432",
		User:     "app",
		Password: "p@ss word",
		DBName:   "activities",
		SSLMode:  "disable",
	}

	assert.Equal(t, "pgx5://app:p%40ss%20word@db:5432/activities?sslmode=disable", cfg.URL("pgx5"))
	assert.Contains(t, cfg.DSN(), "host=db port=5432 user=app")
}
