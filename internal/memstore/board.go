// Package memstore keeps the mutable demo state in process memory: incidents,
// public reports, notification alerts, camera state, quick-action runs, and
// operator settings. Nothing survives a restart.
package memstore

import (
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/wildfire-watch/internal/domain"
	"github.com/couchcryptid/wildfire-watch/internal/mockdata"
)

// Rand is the source of uniform [0, 1) draws for simulated analysis results.
type Rand interface {
	Float64() float64
}

// Config holds the simulated delays and list bounds.
type Config struct {
	ProcessingDelay time.Duration // report analysis
	RestartDelay    time.Duration // camera offline time after a restart
	ActionDelay     time.Duration // delayed quick actions
	AlertCap        int
	RunCap          int // quick-action runs kept for polling
}

// DefaultConfig returns the delays used by the demo pages.
func DefaultConfig() Config {
	return Config{
		ProcessingDelay: 2 * time.Second,
		RestartDelay:    30 * time.Second,
		ActionDelay:     2 * time.Second,
		AlertCap:        50,
		RunCap:          100,
	}
}

// Board is the mutex-guarded in-memory store. All getters return copies.
type Board struct {
	cfg    Config
	clock  clockwork.Clock
	logger *slog.Logger

	randMu sync.Mutex
	rnd    Rand

	mu        sync.RWMutex
	cameras   []domain.Camera
	settings  map[string]domain.CameraSettings
	incidents []domain.Incident
	reports   []domain.Report
	alerts    []domain.Alert
	runs      map[string]domain.ActionRun
	runOrder  []string
	user      domain.UserSettings
	timers    map[string]clockwork.Timer
	closed    bool
}

// New creates a Board seeded with the mock records, timestamped from clk.
func New(cfg Config, clk clockwork.Clock, rnd Rand, logger *slog.Logger) *Board {
	now := clk.Now()
	b := &Board{
		cfg:       cfg,
		clock:     clk,
		logger:    logger,
		rnd:       rnd,
		cameras:   mockdata.Cameras(),
		settings:  make(map[string]domain.CameraSettings),
		incidents: mockdata.Incidents(now),
		reports:   mockdata.Reports(now),
		alerts:    mockdata.Alerts(now),
		runs:      make(map[string]domain.ActionRun),
		user:      domain.DefaultUserSettings(),
		timers:    make(map[string]clockwork.Timer),
	}
	for _, c := range b.cameras {
		b.settings[c.ID] = domain.DefaultCameraSettings()
	}
	return b
}

// Close cancels every pending delayed update. It is safe to call more than
// once.
func (b *Board) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for key, t := range b.timers {
		t.Stop()
		delete(b.timers, key)
	}
	b.closed = true
}

// after runs fn once d has elapsed, replacing any pending timer under key.
// The caller must hold b.mu. fn runs with b.mu held.
func (b *Board) after(key string, d time.Duration, fn func()) {
	if b.closed {
		return
	}
	if prev, ok := b.timers[key]; ok {
		prev.Stop()
	}
	var t clockwork.Timer
	t = b.clock.AfterFunc(d, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.timers[key] != t {
			return
		}
		delete(b.timers, key)
		fn()
	})
	b.timers[key] = t
}

func (b *Board) draw() float64 {
	b.randMu.Lock()
	defer b.randMu.Unlock()
	return b.rnd.Float64()
}
