package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaultBroker = "localhost:9092"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 50, cfg.BatchSize)
	assert.Equal(t, 500*time.Millisecond, cfg.BatchFlushInterval)

	assert.Equal(t, 3*time.Second, cfg.DetectorInterval)
	assert.InDelta(t, 0.3, cfg.DetectorProbability, 1e-9)
	assert.InDelta(t, 0.4, cfg.DetectorFireRatio, 1e-9)
	assert.Equal(t, 5, cfg.DetectorCurrentCap)
	assert.Equal(t, 10, cfg.DetectorRecentCap)
	assert.Zero(t, cfg.DetectorSeed)

	assert.Equal(t, 2*time.Second, cfg.ProcessingDelay)
	assert.Equal(t, 30*time.Second, cfg.RestartDelay)
	assert.Equal(t, 2*time.Second, cfg.ActionDelay)
	assert.Equal(t, 2*time.Second, cfg.AssistantDelay)
	assert.Equal(t, time.Minute, cfg.ChartCacheTTL)
	assert.InDelta(t, 1.0, cfg.SubmitRateLimit, 1e-9)
	assert.Equal(t, 5, cfg.SubmitBurst)

	assert.False(t, cfg.KafkaEnabled)
	assert.Equal(t, []string{defaultBroker}, cfg.KafkaBrokers)
	assert.Equal(t, "wildfire-alerts", cfg.KafkaAlertTopic)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("BATCH_SIZE", "100")
	t.Setenv("BATCH_FLUSH_INTERVAL", "1s")
	t.Setenv("DETECTOR_INTERVAL", "500ms")
	t.Setenv("DETECTOR_PROBABILITY", "1")
	t.Setenv("DETECTOR_FIRE_RATIO", "0")
	t.Setenv("DETECTOR_CURRENT_CAP", "3")
	t.Setenv("DETECTOR_RECENT_CAP", "20")
	t.Setenv("DETECTOR_SEED", "42")
	t.Setenv("PROCESSING_DELAY", "0s")
	t.Setenv("RESTART_DELAY", "5s")
	t.Setenv("ACTION_DELAY", "100ms")
	t.Setenv("ASSISTANT_DELAY", "1s")
	t.Setenv("CHART_CACHE_TTL", "10s")
	t.Setenv("SUBMIT_RATE_LIMIT", "0.5")
	t.Setenv("SUBMIT_BURST", "2")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "broker1:9092,broker2:9092")
	t.Setenv("KAFKA_ALERT_TOPIC", "custom-alerts")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 100, cfg.BatchSize)
	assert.Equal(t, time.Second, cfg.BatchFlushInterval)
	assert.Equal(t, 500*time.Millisecond, cfg.DetectorInterval)
	assert.InDelta(t, 1.0, cfg.DetectorProbability, 1e-9)
	assert.Zero(t, cfg.DetectorFireRatio)
	assert.Equal(t, 3, cfg.DetectorCurrentCap)
	assert.Equal(t, 20, cfg.DetectorRecentCap)
	assert.Equal(t, uint64(42), cfg.DetectorSeed)
	assert.Zero(t, cfg.ProcessingDelay)
	assert.Equal(t, 5*time.Second, cfg.RestartDelay)
	assert.Equal(t, 100*time.Millisecond, cfg.ActionDelay)
	assert.Equal(t, time.Second, cfg.AssistantDelay)
	assert.Equal(t, 10*time.Second, cfg.ChartCacheTTL)
	assert.InDelta(t, 0.5, cfg.SubmitRateLimit, 1e-9)
	assert.Equal(t, 2, cfg.SubmitBurst)
	assert.True(t, cfg.KafkaEnabled)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "custom-alerts", cfg.KafkaAlertTopic)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"SHUTDOWN_TIMEOUT", "not-a-duration"},
		{"SHUTDOWN_TIMEOUT", "-1s"},
		{"BATCH_SIZE", "0"},
		{"BATCH_SIZE", "9999"},
		{"BATCH_FLUSH_INTERVAL", "not-a-duration"},
		{"DETECTOR_INTERVAL", "0s"},
		{"DETECTOR_INTERVAL", "soon"},
		{"DETECTOR_PROBABILITY", "1.5"},
		{"DETECTOR_FIRE_RATIO", "-0.1"},
		{"DETECTOR_CURRENT_CAP", "0"},
		{"DETECTOR_RECENT_CAP", "many"},
		{"DETECTOR_SEED", "-7"},
		{"PROCESSING_DELAY", "-2s"},
		{"RESTART_DELAY", "later"},
		{"ACTION_DELAY", "x"},
		{"ASSISTANT_DELAY", "-1ms"},
		{"CHART_CACHE_TTL", "forever"},
		{"SUBMIT_RATE_LIMIT", "0"},
		{"SUBMIT_BURST", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
