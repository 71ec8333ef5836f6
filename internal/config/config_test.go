package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnv = []string{
	"LOG_LEVEL", "STRICT_LIFECYCLE", "SCENARIO_MODE", "NARRATION_LOG",
	"FULFILLMENT_WORKERS", "FULFILLMENT_QUEUE_SIZE", "FULFILLMENT_SCAN_INTERVAL",
	"KAFKA_BROKERS", "KAFKA_TOPIC",
}

// clearEnv убирает переменные конфигурации на время теста
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnv {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadFrom_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFrom(nil, "")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.StrictLifecycle)
	assert.Equal(t, ModeSync, cfg.ScenarioMode)
	assert.Equal(t, 2, cfg.FulfillmentWorkers)
	assert.Equal(t, 100, cfg.FulfillmentQueueSize)
	assert.Equal(t, 10*time.Second, cfg.FulfillmentScanInterval)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Empty(t, cfg.NarrationLog)
}

func TestLoadFrom_Flags(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFrom([]string{"-strict", "-mode", "async", "-k", "localhost:9092"}, "")
	require.NoError(t, err)

	assert.True(t, cfg.StrictLifecycle)
	assert.Equal(t, ModeAsync, cfg.ScenarioMode)
	assert.Equal(t, "localhost:9092", cfg.KafkaBrokers)
}

func TestLoadFrom_EnvOverridesFlags(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "production")
	t.Setenv("STRICT_LIFECYCLE", "false")
	t.Setenv("SCENARIO_MODE", "sync")
	t.Setenv("FULFILLMENT_WORKERS", "5")
	t.Setenv("FULFILLMENT_QUEUE_SIZE", "200")
	t.Setenv("FULFILLMENT_SCAN_INTERVAL", "30s")
	t.Setenv("KAFKA_BROKERS", "a:9092,b:9092")
	t.Setenv("KAFKA_TOPIC", "orders")
	t.Setenv("NARRATION_LOG", "/tmp/narration.log")

	cfg, err := LoadFrom([]string{"-strict", "-mode", "async", "-k", "localhost:9092"}, "")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.LogLevel)
	assert.False(t, cfg.StrictLifecycle)
	assert.Equal(t, ModeSync, cfg.ScenarioMode)
	assert.Equal(t, 5, cfg.FulfillmentWorkers)
	assert.Equal(t, 200, cfg.FulfillmentQueueSize)
	assert.Equal(t, 30*time.Second, cfg.FulfillmentScanInterval)
	assert.Equal(t, "a:9092,b:9092", cfg.KafkaBrokers)
	assert.Equal(t, "orders", cfg.KafkaTopic)
	assert.Equal(t, "/tmp/narration.log", cfg.NarrationLog)
}

func TestLoadFrom_EnvFile(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("STRICT_LIFECYCLE=true\nKAFKA_TOPIC=from-file\n"), 0o600))
	t.Setenv("KAFKA_TOPIC", "from-env")

	cfg, err := LoadFrom(nil, envFile)
	require.NoError(t, err)

	assert.True(t, cfg.StrictLifecycle)
	assert.Equal(t, "from-env", cfg.KafkaTopic)
}

func TestLoadFrom_MissingEnvFile(t *testing.T) {
	clearEnv(t)

	_, err := LoadFrom(nil, filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}

func TestLoadFrom_Invalid(t *testing.T) {
	t.Run("Unknown mode", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SCENARIO_MODE", "batch")

		_, err := LoadFrom(nil, "")
		assert.Error(t, err)
	})

	t.Run("Async without workers", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("FULFILLMENT_WORKERS", "0")

		_, err := LoadFrom([]string{"-mode", "async"}, "")
		assert.Error(t, err)
	})

	t.Run("Bad strict value", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("STRICT_LIFECYCLE", "maybe")

		_, err := LoadFrom(nil, "")
		assert.Error(t, err)
	})

	t.Run("Unknown flag", func(t *testing.T) {
		clearEnv(t)

		_, err := LoadFrom([]string{"-nope"}, "")
		assert.Error(t, err)
	})
}
