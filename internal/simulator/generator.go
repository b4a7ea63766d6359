// Package simulator produces synthetic fire and smoke detections on a fixed
// interval, standing in for an inference model on the live feed.
package simulator

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/couchcryptid/wildfire-watch/internal/domain"
	"github.com/couchcryptid/wildfire-watch/internal/observability"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// Rand is the source of uniform [0, 1) draws. *rand.Rand from math/rand/v2
// satisfies it.
type Rand interface {
	Float64() float64
}

// Config controls the detection cadence and the rolling list sizes.
type Config struct {
	Interval    time.Duration
	Probability float64 // chance that a tick yields a detection
	FireRatio   float64 // chance that a detection is fire rather than smoke
	CurrentCap  int
	RecentCap   int
	CameraID    string
}

// DefaultConfig returns the live-feed defaults: one roll every 3s, a 30% hit
// rate, 40% of hits fire, and lists of 5 and 10.
func DefaultConfig() Config {
	return Config{
		Interval:    3 * time.Second,
		Probability: 0.3,
		FireRatio:   0.4,
		CurrentCap:  5,
		RecentCap:   10,
		CameraID:    "cam-001",
	}
}

// Generator emits detections while active. Each detection is kept in two
// bounded rolling lists and offered to the Events channel.
type Generator struct {
	cfg     Config
	clock   clockwork.Clock
	logger  *slog.Logger
	metrics *observability.Metrics
	events  chan domain.Detection
	newID   func() string

	randMu sync.Mutex
	rnd    Rand

	mu      sync.Mutex
	active  bool
	run     uint64
	cancel  context.CancelFunc
	done    chan struct{}
	current []domain.Detection
	recent  []domain.Detection
}

// New creates an idle Generator. buffer sizes the Events channel; detections
// that find it full are dropped and counted.
func New(cfg Config, clk clockwork.Clock, rnd Rand, logger *slog.Logger, metrics *observability.Metrics, buffer int) *Generator {
	return &Generator{
		cfg:     cfg,
		clock:   clk,
		rnd:     rnd,
		logger:  logger,
		metrics: metrics,
		events:  make(chan domain.Detection, buffer),
		newID:   func() string { return "det-" + uuid.NewString() },
	}
}

// Events returns the channel on which new detections are published.
func (g *Generator) Events() <-chan domain.Detection {
	return g.events
}

// Start clears the current list and begins ticking. Calling Start on an
// active generator does nothing. The timer is released when Stop is called or
// ctx is cancelled.
func (g *Generator) Start(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.active {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	g.run++
	g.active = true
	g.cancel = cancel
	g.done = make(chan struct{})
	g.current = nil
	g.metrics.SimulatorActive.Set(1)

	go g.loop(runCtx, g.run, g.done)
	g.logger.Info("detection simulator started", "interval", g.cfg.Interval, "probability", g.cfg.Probability)
}

// Stop halts ticking, clears the current list and keeps recent alerts. It
// waits for the ticking goroutine to exit.
func (g *Generator) Stop() {
	g.mu.Lock()
	if !g.active {
		g.mu.Unlock()
		return
	}
	g.active = false
	g.current = nil
	cancel, done := g.cancel, g.done
	g.metrics.SimulatorActive.Set(0)
	g.mu.Unlock()

	cancel()
	<-done
	g.logger.Info("detection simulator stopped")
}

// Active reports whether the generator is ticking.
func (g *Generator) Active() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.active
}

// Current returns a copy of the detections shown on the live overlay, oldest
// first.
func (g *Generator) Current() []domain.Detection {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]domain.Detection{}, g.current...)
}

// Recent returns a copy of the recent alert list, oldest first.
func (g *Generator) Recent() []domain.Detection {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]domain.Detection{}, g.recent...)
}

func (g *Generator) loop(ctx context.Context, run uint64, done chan struct{}) {
	defer close(done)

	ticker := g.clock.NewTicker(g.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			g.expire(run)
			return
		case <-ticker.Chan():
			g.tick(run)
		}
	}
}

// expire marks the run inactive when its parent context ends without Stop.
func (g *Generator) expire(run uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.active || g.run != run {
		return
	}
	g.active = false
	g.current = nil
	g.cancel()
	g.metrics.SimulatorActive.Set(0)
	g.logger.Info("detection simulator stopped", "reason", "context done")
}

// tick performs one roll for run. It returns the detection and true when one
// was produced. A tick from a run that has since been stopped records nothing.
func (g *Generator) tick(run uint64) (domain.Detection, bool) {
	d, ok := g.roll()
	if !ok {
		return domain.Detection{}, false
	}

	g.mu.Lock()
	if !g.active || g.run != run {
		g.mu.Unlock()
		return domain.Detection{}, false
	}
	g.current = appendCapped(g.current, d, g.cfg.CurrentCap)
	g.recent = appendCapped(g.recent, d, g.cfg.RecentCap)
	g.mu.Unlock()

	g.metrics.DetectionsGenerated.WithLabelValues(string(d.Type)).Inc()

	select {
	case g.events <- d:
	default:
		g.metrics.DetectionsDropped.Inc()
		g.logger.Warn("detection channel full, dropping detection", "id", d.ID)
	}
	return d, true
}

// roll draws the next detection from the shared source.
func (g *Generator) roll() (domain.Detection, bool) {
	g.randMu.Lock()
	defer g.randMu.Unlock()
	return Roll(g.cfg, g.rnd, g.clock.Now(), g.newID)
}

// Roll performs one detection roll at time now. It draws, in order: emit,
// type, confidence, x, y, width, height. Only the emit draw is taken when no
// detection results.
func Roll(cfg Config, rnd Rand, now time.Time, newID func() string) (domain.Detection, bool) {
	if rnd.Float64() >= cfg.Probability {
		return domain.Detection{}, false
	}

	typ := domain.DetectionSmoke
	if rnd.Float64() < cfg.FireRatio {
		typ = domain.DetectionFire
	}

	return domain.Detection{
		ID:         newID(),
		CameraID:   cfg.CameraID,
		Type:       typ,
		Confidence: 0.6 + rnd.Float64()*0.4,
		BBox: domain.BoundingBox{
			X:      0.1 + rnd.Float64()*0.6,
			Y:      0.1 + rnd.Float64()*0.6,
			Width:  0.1 + rnd.Float64()*0.2,
			Height: 0.1 + rnd.Float64()*0.2,
		},
		Timestamp: now,
	}, true
}

// appendCapped appends d and drops the oldest entries beyond limit.
func appendCapped(list []domain.Detection, d domain.Detection, limit int) []domain.Detection {
	list = append(list, d)
	if limit > 0 && len(list) > limit {
		list = append([]domain.Detection{}, list[len(list)-limit:]...)
	}
	return list
}
