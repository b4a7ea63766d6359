package main

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	httpadapter "github.com/couchcryptid/wildfire-watch/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/wildfire-watch/internal/adapter/kafka"
	"github.com/couchcryptid/wildfire-watch/internal/assistant"
	"github.com/couchcryptid/wildfire-watch/internal/broadcast"
	"github.com/couchcryptid/wildfire-watch/internal/chart"
	"github.com/couchcryptid/wildfire-watch/internal/config"
	"github.com/couchcryptid/wildfire-watch/internal/memstore"
	"github.com/couchcryptid/wildfire-watch/internal/observability"
	"github.com/couchcryptid/wildfire-watch/internal/pipeline"
	"github.com/couchcryptid/wildfire-watch/internal/simulator"
)

// streamBuffer is the per-subscriber backlog of the live alert stream.
const streamBuffer = 16

// randFunc adapts the goroutine-safe top-level math/rand/v2 functions.
type randFunc func() float64

func (f randFunc) Float64() float64 { return f() }

// newLogger builds the service logger and installs it as the slog default,
// so packages logging through slog directly share its level and format.
func newLogger(cfg *config.Config) *slog.Logger {
	return sharedobs.NewLogger(cfg.LogLevel, cfg.LogFormat)
}

func main() {
	start := time.Now()
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	metrics := observability.NewMetrics()
	clk := clockwork.NewRealClock()

	seed := cfg.DetectorSeed
	if seed == 0 {
		seed = rand.Uint64()
	}
	// Each consumer owns its source; *rand.Rand is not safe for shared use.
	newRand := func(stream uint64) *rand.Rand { return rand.New(rand.NewPCG(seed, stream)) }

	boardCfg := memstore.DefaultConfig()
	boardCfg.ProcessingDelay = cfg.ProcessingDelay
	boardCfg.RestartDelay = cfg.RestartDelay
	boardCfg.ActionDelay = cfg.ActionDelay
	board := memstore.New(boardCfg, clk, newRand(1), logger)
	defer board.Close()

	gen := simulator.New(simulator.Config{
		Interval:    cfg.DetectorInterval,
		Probability: cfg.DetectorProbability,
		FireRatio:   cfg.DetectorFireRatio,
		CurrentCap:  cfg.DetectorCurrentCap,
		RecentCap:   cfg.DetectorRecentCap,
		CameraID:    simulator.DefaultConfig().CameraID,
	}, clk, newRand(2), logger, metrics, cfg.BatchSize*2)

	hub := broadcast.NewHub(streamBuffer, logger, metrics)

	loaders := pipeline.MultiLoader{hub, board}
	var writer *kafkaadapter.Writer
	if cfg.KafkaEnabled {
		writer = kafkaadapter.NewWriter(cfg, logger)
		loaders = append(loaders, writer)
		logger.Info("kafka alert sink enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaAlertTopic)
	} else {
		logger.Info("kafka alert sink disabled")
	}

	p := pipeline.New(
		pipeline.NewChannelSource(gen.Events(), cfg.BatchFlushInterval),
		pipeline.NewAlertTransformer(board),
		loaders,
		logger,
		metrics,
		cfg.BatchSize,
	)

	srv := httpadapter.NewServer(cfg.HTTPAddr, httpadapter.Deps{
		Board:       board,
		Simulator:   gen,
		Stream:      hub,
		Assistant:   assistant.New(clk, newRand(3), cfg.AssistantDelay),
		Ready:       p,
		Charts:      chart.NewCache(cfg.ChartCacheTTL, metrics),
		Rand:        randFunc(rand.Float64),
		Clock:       clk,
		Metrics:     metrics,
		SubmitRate:  rate.Limit(cfg.SubmitRateLimit),
		SubmitBurst: cfg.SubmitBurst,
	}, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return p.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		gen.Stop()
		hub.Close()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("http server shutdown error", "error", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("service error", "error", err)
	}

	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete", "alerts_delivered", p.Loaded(), "uptime", time.Since(start).Round(time.Second))
}
