package config_test

import (
	"testing"
	"time"

	"go-timesheet/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("environment", func(t *testing.T) {
		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("OUTBOX_POLL_SECONDS", "7")

		cfg, err := config.Load("test", nil)

		require.NoError(t, err)
		assert.Equal(t, "db.internal", cfg.Postgres.Host)
		assert.Equal(t, "s3cret", cfg.JWTSecret)
		assert.Equal(t, 7*time.Second, cfg.PollInterval)
		assert.NoError(t, cfg.RequireAPI())
	})

	t.Run("flags override environment", func(t *testing.T) {
		t.Setenv("PORT", "4000")

		cfg, err := config.Load("test", []string{"--port", "5000", "--auto-migrate"})

		require.NoError(t, err)
		assert.Equal(t, "5000", cfg.Port)
		assert.True(t, cfg.AutoMigrate)
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := config.Load("test", nil)

		require.NoError(t, err)
		assert.Equal(t, "development", cfg.AppEnv)
		assert.True(t, cfg.IsDevelopment())
		assert.Equal(t, 5, cfg.MaxRetries)
		assert.Error(t, cfg.RequireKafka())
	})
}
