// Package fixture builds and checks deterministic recordings of the
// detection simulator, used by the genmock and validate tools.
package fixture

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/wildfire-watch/internal/domain"
	"github.com/couchcryptid/wildfire-watch/internal/mockdata"
	"github.com/couchcryptid/wildfire-watch/internal/simulator"
)

// Fixture is a recorded simulator run.
type Fixture struct {
	Seed        uint64    `json:"seed"`
	Ticks       int       `json:"ticks"`
	Start       time.Time `json:"start"`
	Interval    string    `json:"interval"`
	Probability float64   `json:"probability"`
	FireRatio   float64   `json:"fire_ratio"`
	CurrentCap  int       `json:"current_cap"`
	RecentCap   int       `json:"recent_cap"`

	Detections []domain.Detection  `json:"detections"`
	Current    []domain.Detection  `json:"current"`
	Recent     []domain.Detection  `json:"recent"`
	Alerts     []domain.AlertEvent `json:"alerts"`
}

// Options control a recording.
type Options struct {
	Config simulator.Config
	Seed   uint64
	Ticks  int
	// NewID names detections; defaults to "det-" plus a uuid.
	NewID func() string
}

// Generate rolls opts.Ticks detections, advancing clk by one interval before
// each roll. Alerts are enriched with the seeded cameras and stamped from the
// domain clock, so callers that want reproducible output install clk there.
func Generate(opts Options, clk *clockwork.FakeClock) (Fixture, error) {
	cfg := opts.Config
	if cfg.Interval <= 0 {
		return Fixture{}, fmt.Errorf("interval must be positive, got %s", cfg.Interval)
	}
	newID := opts.NewID
	if newID == nil {
		newID = func() string { return "det-" + uuid.NewString() }
	}

	cams := make(map[string]domain.Camera)
	for _, c := range mockdata.Cameras() {
		cams[c.ID] = c
	}

	f := Fixture{
		Seed:        opts.Seed,
		Ticks:       opts.Ticks,
		Start:       clk.Now(),
		Interval:    cfg.Interval.String(),
		Probability: cfg.Probability,
		FireRatio:   cfg.FireRatio,
		CurrentCap:  cfg.CurrentCap,
		RecentCap:   cfg.RecentCap,
		Detections:  []domain.Detection{},
		Alerts:      []domain.AlertEvent{},
	}

	rnd := rand.New(rand.NewPCG(opts.Seed, opts.Seed))
	for range opts.Ticks {
		clk.Advance(cfg.Interval)
		d, ok := simulator.Roll(cfg, rnd, clk.Now(), newID)
		if !ok {
			continue
		}
		ev, err := domain.EnrichDetection(d, cams[d.CameraID])
		if err != nil {
			return Fixture{}, err
		}
		f.Detections = append(f.Detections, d)
		f.Alerts = append(f.Alerts, ev)
	}

	f.Current = tail(f.Detections, cfg.CurrentCap)
	f.Recent = tail(f.Detections, cfg.RecentCap)
	return f, nil
}

// tail returns a copy of the last n entries, matching what the live rolling
// lists hold after the same sequence. n <= 0 keeps everything.
func tail(ds []domain.Detection, n int) []domain.Detection {
	if n <= 0 {
		n = len(ds)
	}
	return append([]domain.Detection{}, ds[max(0, len(ds)-n):]...)
}
