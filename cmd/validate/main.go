// Command validate checks a simulator fixture written by cmd/genmock: value
// ranges, tick timing, rolling list caps and alert enrichment.
//
// Usage:
//
//	go run ./cmd/validate -fixture data/mock/detections_seed42.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/couchcryptid/wildfire-watch/internal/fixture"
)

func main() {
	path := flag.String("fixture", "", "path to the JSON fixture")
	flag.Parse()

	if *path == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*path); code != 0 {
		os.Exit(code)
	}
}

func run(path string) int {
	fmt.Println("=== Detection Fixture Validation ===")
	fmt.Println()

	f, err := load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load fixture: %v\n", err)
		return 1
	}

	phases := fixture.Check(f)

	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.Passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.Errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.Name, status)
	}

	fmt.Println()
	fmt.Printf("Seed %d: %d ticks, %d detections, %d alerts, %d current, %d recent\n",
		f.Seed, f.Ticks, len(f.Detections), len(f.Alerts), len(f.Current), len(f.Recent))

	for _, p := range phases {
		if p.Passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.Name)
		for i, e := range p.Errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

func load(path string) (fixture.Fixture, error) {
	var f fixture.Fixture
	data, err := os.ReadFile(path) //nolint:gosec // path is a CLI argument
	if err != nil {
		return f, err
	}
	if err := json.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("decode %s: %w", path, err)
	}
	return f, nil
}
