package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CHAIR_DATABASE_URL", "postgres://chair:pw@localhost:5432/chair")
	t.Setenv("ESTATE_DATABASE_URL", "postgres://estate:pw@localhost:5432/estate")
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults apply when only shard URLs are set", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := LoadConfig("testdata/absent.env")
		require.NoError(t, err)
		assert.Equal(t, "listing-service", cfg.AppName)
		assert.Equal(t, "8080", cfg.Rest.PORT)
		assert.Equal(t, "db", cfg.Catalog.SQLDir)
		assert.Equal(t, "fixture/chair_condition.json", cfg.Catalog.ChairConditionPath)
		assert.False(t, cfg.RabbitMQ.Enabled)
		assert.False(t, cfg.FluentBit.Enabled)
		assert.Equal(t, "debug", cfg.StdoutLogger.Level)
	})

	t.Run("missing chair shard URL is an error", func(t *testing.T) {
		t.Setenv("CHAIR_DATABASE_URL", "")
		t.Setenv("ESTATE_DATABASE_URL", "postgres://estate:pw@localhost:5432/estate")

		_, err := LoadConfig("testdata/absent.env")
		assert.Error(t, err)
	})

	t.Run("rabbitmq without URL falls back to disabled", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("RABBITMQ_ENABLED", "true")
		t.Setenv("RABBITMQ_URL", "")

		cfg, err := LoadConfig("testdata/absent.env")
		require.NoError(t, err)
		assert.False(t, cfg.RabbitMQ.Enabled)
	})

	t.Run("fluentbit settings are read when enabled", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("FLUENTBIT_ENABLED", "true")
		t.Setenv("FLUENTBIT_HOST", "fluentbit.local")
		t.Setenv("FLUENTBIT_PORT", "24225")
		t.Setenv("FLUENTBIT_LOG_LEVEL", "warn")

		cfg, err := LoadConfig("testdata/absent.env")
		require.NoError(t, err)
		assert.True(t, cfg.FluentBit.Enabled)
		assert.Equal(t, "fluentbit.local", cfg.FluentBit.Host)
		assert.Equal(t, 24225, cfg.FluentBit.Port)
		assert.Equal(t, "warn", cfg.FluentBit.Level)
	})

	t.Run("unparsable port falls back to the default", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("FLUENTBIT_ENABLED", "true")
		t.Setenv("FLUENTBIT_HOST", "fluentbit.local")
		t.Setenv("FLUENTBIT_PORT", "not-a-number")

		cfg, err := LoadConfig("testdata/absent.env")
		require.NoError(t, err)
		assert.Equal(t, 24224, cfg.FluentBit.Port)
	})
}
