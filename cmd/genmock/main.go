// Command genmock records a seeded run of the detection simulator as a JSON
// fixture. Detection ids, timestamps and alert enrichment are reproducible for
// a given seed, so the output can be checked in and verified by cmd/validate.
//
// Usage:
//
//	go run ./cmd/genmock -seed 42 -ticks 200 -out data/mock/detections_seed42.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/wildfire-watch/internal/domain"
	"github.com/couchcryptid/wildfire-watch/internal/fixture"
	"github.com/couchcryptid/wildfire-watch/internal/simulator"
)

var baseTime = time.Date(2024, time.January, 20, 14, 0, 0, 0, time.UTC)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	defaults := simulator.DefaultConfig()

	out := flag.String("out", "", "output path for the JSON fixture")
	seed := flag.Uint64("seed", 42, "random seed")
	ticks := flag.Int("ticks", 200, "number of simulator ticks to record")
	interval := flag.Duration("interval", defaults.Interval, "time between ticks")
	probability := flag.Float64("probability", defaults.Probability, "chance that a tick yields a detection")
	fireRatio := flag.Float64("fire-ratio", defaults.FireRatio, "chance that a detection is fire")
	currentCap := flag.Int("current-cap", defaults.CurrentCap, "length of the current detections list")
	recentCap := flag.Int("recent-cap", defaults.RecentCap, "length of the recent detections list")
	camera := flag.String("camera", "cam-001", "camera the detections are attributed to")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}
	if *ticks <= 0 {
		return fmt.Errorf("-ticks must be positive, got %d", *ticks)
	}

	// Fixed clock and id source for reproducible timestamps and ids.
	clk := clockwork.NewFakeClockAt(baseTime)
	domain.SetClock(clk)
	defer domain.SetClock(nil)

	var idSeed [32]byte
	for i := range 8 {
		idSeed[i] = byte(*seed >> (8 * i))
	}
	uuid.SetRand(rand.NewChaCha8(idSeed))
	defer uuid.SetRand(nil)

	f, err := fixture.Generate(fixture.Options{
		Config: simulator.Config{
			Interval:    *interval,
			Probability: *probability,
			FireRatio:   *fireRatio,
			CurrentCap:  *currentCap,
			RecentCap:   *recentCap,
			CameraID:    *camera,
		},
		Seed:  *seed,
		Ticks: *ticks,
	}, clk)
	if err != nil {
		return err
	}

	if err := writeJSON(*out, f); err != nil {
		return fmt.Errorf("writing fixture: %w", err)
	}

	printStats(f)
	log.Printf("wrote %s", *out)
	return nil
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

func printStats(f fixture.Fixture) {
	types := make(map[domain.DetectionType]int)
	severities := make(map[domain.AlertSeverity]int)
	for _, a := range f.Alerts {
		types[a.Detection.Type]++
		severities[a.Severity]++
	}

	log.Printf("ticks: %d, detections: %d (%.1f%% hit rate)",
		f.Ticks, len(f.Detections), 100*float64(len(f.Detections))/float64(f.Ticks))
	log.Printf("types: fire=%d smoke=%d", types[domain.DetectionFire], types[domain.DetectionSmoke])
	log.Printf("severity: high=%d medium=%d low=%d",
		severities[domain.SeverityHigh], severities[domain.SeverityMedium], severities[domain.SeverityLow])
	log.Printf("current: %d, recent: %d", len(f.Current), len(f.Recent))
}
