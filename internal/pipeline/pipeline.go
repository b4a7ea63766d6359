package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/storm-data-shared/retry"

	"github.com/couchcryptid/wildfire-watch/internal/domain"
	"github.com/couchcryptid/wildfire-watch/internal/observability"
)

// BatchExtractor reads up to batchSize detections from the source.
type BatchExtractor interface {
	ExtractBatch(ctx context.Context, batchSize int) ([]domain.Detection, error)
}

// Transformer converts a detection into an alert event.
type Transformer interface {
	Transform(ctx context.Context, d domain.Detection) (domain.AlertEvent, error)
}

// BatchLoader delivers alert events to a destination.
type BatchLoader interface {
	LoadBatch(ctx context.Context, events []domain.AlertEvent) error
}

const (
	initialBackoff = 200 * time.Millisecond
	maxBackoff     = 5 * time.Second
)

// Pipeline orchestrates the extract-transform-load loop.
type Pipeline struct {
	extractor   BatchExtractor
	transformer Transformer
	loader      BatchLoader
	logger      *slog.Logger
	metrics     *observability.Metrics
	running     atomic.Bool
	loaded      atomic.Int64
	batchSize   int
}

// New creates a Pipeline with the given stages and observability.
func New(e BatchExtractor, t Transformer, l BatchLoader, logger *slog.Logger, metrics *observability.Metrics, batchSize int) *Pipeline {
	return &Pipeline{
		extractor:   e,
		transformer: t,
		loader:      l,
		logger:      logger,
		metrics:     metrics,
		batchSize:   batchSize,
	}
}

// CheckReadiness returns nil while the loop is running. The live feed starts
// idle, so readiness does not wait for a first detection.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.running.Load() {
		return errors.New("alert pipeline is not running")
	}
	return nil
}

// Loaded returns the number of alert events delivered so far.
func (p *Pipeline) Loaded() int64 {
	return p.loaded.Load()
}

// Run executes the batch loop until the context is cancelled.
func (p *Pipeline) Run(ctx context.Context) error {
	p.logger.Info("pipeline started", "batch_size", p.batchSize)
	p.metrics.PipelineRunning.Set(1)
	p.running.Store(true)
	defer func() {
		p.running.Store(false)
		p.metrics.PipelineRunning.Set(0)
	}()

	backoff := initialBackoff
	for {
		select {
		case <-ctx.Done():
			p.logger.Info("pipeline stopping", "reason", ctx.Err())
			return nil
		default:
		}

		if !p.processBatch(ctx, &backoff) {
			return nil
		}
	}
}

// processBatch runs one extract-transform-load cycle. Returns false if the pipeline should stop.
func (p *Pipeline) processBatch(ctx context.Context, backoff *time.Duration) bool {
	start := time.Now()

	batch, err := p.extractor.ExtractBatch(ctx, p.batchSize)
	if err != nil {
		if ctx.Err() != nil {
			return false
		}
		p.logger.Error("extract batch failed", "error", err)
		return p.backoffOrStop(ctx, backoff)
	}

	if len(batch) == 0 {
		return ctx.Err() == nil
	}

	p.metrics.DetectionsConsumed.Add(float64(len(batch)))
	p.metrics.BatchSize.Observe(float64(len(batch)))
	*backoff = initialBackoff

	if !p.transformAndLoad(ctx, batch, backoff) {
		return false
	}
	p.metrics.BatchProcessingDuration.Observe(time.Since(start).Seconds())
	return true
}

// transformAndLoad enriches each detection, skipping invalid ones, and loads
// the rest as one batch. Returns false if the pipeline should stop.
func (p *Pipeline) transformAndLoad(ctx context.Context, batch []domain.Detection, backoff *time.Duration) bool {
	events := make([]domain.AlertEvent, 0, len(batch))
	for _, d := range batch {
		ev, err := p.transformer.Transform(ctx, d)
		if err != nil {
			p.logger.Warn("transform failed, skipping detection",
				"error", err,
				"detection_id", d.ID,
				"camera_id", d.CameraID,
			)
			p.metrics.TransformErrors.Inc()
			continue
		}
		events = append(events, ev)
	}

	if len(events) == 0 {
		return true
	}

	if err := p.loader.LoadBatch(ctx, events); err != nil {
		p.logger.Error("load batch failed", "error", err, "batch_size", len(events))
		return p.backoffOrStop(ctx, backoff)
	}

	p.metrics.AlertsDelivered.Add(float64(len(events)))
	p.loaded.Add(int64(len(events)))
	return true
}

// backoffOrStop sleeps with the current backoff and advances it. Returns
// false if the pipeline should stop.
func (p *Pipeline) backoffOrStop(ctx context.Context, backoff *time.Duration) bool {
	if ctx.Err() != nil {
		return false
	}
	if !retry.SleepWithContext(ctx, *backoff) {
		return false
	}
	*backoff = retry.NextBackoff(*backoff, maxBackoff)
	return true
}
