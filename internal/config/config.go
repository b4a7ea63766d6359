package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	BatchSize          int
	BatchFlushInterval time.Duration

	// Detection simulator.
	DetectorInterval    time.Duration
	DetectorProbability float64
	DetectorFireRatio   float64
	DetectorCurrentCap  int
	DetectorRecentCap   int
	DetectorSeed        uint64 // 0 picks a random seed

	// Simulated latencies.
	ProcessingDelay time.Duration
	RestartDelay    time.Duration
	ActionDelay     time.Duration
	AssistantDelay  time.Duration

	ChartCacheTTL   time.Duration
	SubmitRateLimit float64 // submissions per second
	SubmitBurst     int

	// Optional Kafka alert sink.
	KafkaEnabled    bool
	KafkaBrokers    []string
	KafkaAlertTopic string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	batchSize, err := sharedcfg.ParseBatchSize()
	if err != nil {
		return nil, err
	}

	flushInterval, err := sharedcfg.ParseBatchFlushInterval()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:           sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:           sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:          sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout:    shutdownTimeout,
		BatchSize:          batchSize,
		BatchFlushInterval: flushInterval,
		KafkaEnabled:       os.Getenv("KAFKA_ENABLED") == "true",
		KafkaBrokers:       sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaAlertTopic:    sharedcfg.EnvOrDefault("KAFKA_ALERT_TOPIC", "wildfire-alerts"),
	}

	durations := []struct {
		key string
		def time.Duration
		dst *time.Duration
	}{
		{"DETECTOR_INTERVAL", 3 * time.Second, &cfg.DetectorInterval},
		{"PROCESSING_DELAY", 2 * time.Second, &cfg.ProcessingDelay},
		{"RESTART_DELAY", 30 * time.Second, &cfg.RestartDelay},
		{"ACTION_DELAY", 2 * time.Second, &cfg.ActionDelay},
		{"ASSISTANT_DELAY", 2 * time.Second, &cfg.AssistantDelay},
		{"CHART_CACHE_TTL", time.Minute, &cfg.ChartCacheTTL},
	}
	for _, d := range durations {
		if *d.dst, err = parseDuration(d.key, d.def); err != nil {
			return nil, err
		}
	}
	if cfg.DetectorInterval == 0 {
		return nil, errors.New("invalid DETECTOR_INTERVAL")
	}

	if cfg.DetectorProbability, err = parseFraction("DETECTOR_PROBABILITY", 0.3); err != nil {
		return nil, err
	}
	if cfg.DetectorFireRatio, err = parseFraction("DETECTOR_FIRE_RATIO", 0.4); err != nil {
		return nil, err
	}
	if cfg.DetectorCurrentCap, err = parsePositiveInt("DETECTOR_CURRENT_CAP", 5); err != nil {
		return nil, err
	}
	if cfg.DetectorRecentCap, err = parsePositiveInt("DETECTOR_RECENT_CAP", 10); err != nil {
		return nil, err
	}
	if cfg.SubmitBurst, err = parsePositiveInt("SUBMIT_BURST", 5); err != nil {
		return nil, err
	}

	if s := os.Getenv("DETECTOR_SEED"); s != "" {
		seed, perr := strconv.ParseUint(s, 10, 64)
		if perr != nil {
			return nil, errors.New("invalid DETECTOR_SEED")
		}
		cfg.DetectorSeed = seed
	}

	cfg.SubmitRateLimit = 1
	if s := os.Getenv("SUBMIT_RATE_LIMIT"); s != "" {
		v, perr := strconv.ParseFloat(s, 64)
		if perr != nil || v <= 0 {
			return nil, errors.New("invalid SUBMIT_RATE_LIMIT")
		}
		cfg.SubmitRateLimit = v
	}

	if cfg.KafkaEnabled {
		if len(cfg.KafkaBrokers) == 0 {
			return nil, errors.New("KAFKA_BROKERS is required when KAFKA_ENABLED is true")
		}
		if cfg.KafkaAlertTopic == "" {
			return nil, errors.New("KAFKA_ALERT_TOPIC is required when KAFKA_ENABLED is true")
		}
	}

	return cfg, nil
}

// parseDuration reads a non-negative duration; zero disables the delay.
func parseDuration(key string, def time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func parseFraction(key string, def float64) (float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || v > 1 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return v, nil
}

func parsePositiveInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return n, nil
}
