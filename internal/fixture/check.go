package fixture

import (
	"fmt"
	"regexp"
	"time"

	"github.com/couchcryptid/wildfire-watch/internal/domain"
)

// Phase is one group of checks and the problems it found.
type Phase struct {
	Name   string
	Errors []string
}

func (p *Phase) errorf(format string, args ...any) {
	p.Errors = append(p.Errors, fmt.Sprintf(format, args...))
}

// Passed reports whether the phase found no problems.
func (p *Phase) Passed() bool { return len(p.Errors) == 0 }

var percentPattern = regexp.MustCompile(`^\d{1,3}\.\d%$`)

// Check runs every phase against f.
func Check(f Fixture) []*Phase {
	return []*Phase{
		checkRanges(f),
		checkTiming(f),
		checkCaps(f),
		checkAlerts(f),
	}
}

func checkRanges(f Fixture) *Phase {
	p := &Phase{Name: "Phase 1: Detection ranges"}
	seen := make(map[string]bool, len(f.Detections))
	for i, d := range f.Detections {
		if err := d.Validate(); err != nil {
			p.errorf("detection %d (%s): %v", i, d.ID, err)
		}
		if !within(d.Confidence, 0.6, 1) {
			p.errorf("detection %d (%s): confidence %g outside [0.6, 1.0]", i, d.ID, d.Confidence)
		}
		b := d.BBox
		if !within(b.X, 0.1, 0.7) || !within(b.Y, 0.1, 0.7) {
			p.errorf("detection %d (%s): origin %g,%g outside [0.1, 0.7]", i, d.ID, b.X, b.Y)
		}
		if !within(b.Width, 0.1, 0.3) || !within(b.Height, 0.1, 0.3) {
			p.errorf("detection %d (%s): size %gx%g outside [0.1, 0.3]", i, d.ID, b.Width, b.Height)
		}
		if d.ID == "" {
			p.errorf("detection %d: empty id", i)
		} else if seen[d.ID] {
			p.errorf("detection %d: duplicate id %s", i, d.ID)
		}
		seen[d.ID] = true
	}
	return p
}

func checkTiming(f Fixture) *Phase {
	p := &Phase{Name: "Phase 2: Tick timing"}
	interval, err := time.ParseDuration(f.Interval)
	if err != nil || interval <= 0 {
		p.errorf("invalid interval %q", f.Interval)
		return p
	}
	if len(f.Detections) > f.Ticks {
		p.errorf("%d detections from %d ticks", len(f.Detections), f.Ticks)
	}

	var prev time.Time
	for i, d := range f.Detections {
		offset := d.Timestamp.Sub(f.Start)
		if offset <= 0 || offset%interval != 0 {
			p.errorf("detection %d (%s): timestamp %s is not on a tick", i, d.ID, d.Timestamp.Format(time.RFC3339))
		}
		if offset > time.Duration(f.Ticks)*interval {
			p.errorf("detection %d (%s): timestamp after the last tick", i, d.ID)
		}
		if i > 0 && !d.Timestamp.After(prev) {
			p.errorf("detection %d (%s): more than one detection per tick", i, d.ID)
		}
		prev = d.Timestamp
	}
	return p
}

func checkCaps(f Fixture) *Phase {
	p := &Phase{Name: "Phase 3: Rolling list caps"}
	if f.CurrentCap > 0 && len(f.Current) > f.CurrentCap {
		p.errorf("current holds %d detections, cap is %d", len(f.Current), f.CurrentCap)
	}
	if f.RecentCap > 0 && len(f.Recent) > f.RecentCap {
		p.errorf("recent holds %d detections, cap is %d", len(f.Recent), f.RecentCap)
	}
	checkTail(p, "current", f.Current, f.Detections, f.CurrentCap)
	checkTail(p, "recent", f.Recent, f.Detections, f.RecentCap)
	return p
}

func checkTail(p *Phase, name string, list, all []domain.Detection, limit int) {
	want := tail(all, limit)
	if len(list) != len(want) {
		p.errorf("%s: expected the last %d detections, got %d", name, len(want), len(list))
		return
	}
	for i := range list {
		if list[i].ID != want[i].ID {
			p.errorf("%s[%d]: expected %s, got %s", name, i, want[i].ID, list[i].ID)
		}
	}
}

func checkAlerts(f Fixture) *Phase {
	p := &Phase{Name: "Phase 4: Alert enrichment"}
	if len(f.Alerts) != len(f.Detections) {
		p.errorf("expected %d alerts, got %d", len(f.Detections), len(f.Alerts))
		return p
	}
	for i, a := range f.Alerts {
		d := f.Detections[i]
		if a.ID != "alert-"+d.ID {
			p.errorf("alert %d: id %s does not match detection %s", i, a.ID, d.ID)
		}
		if want := domain.DeriveSeverity(d.Type, d.Confidence); a.Severity != want {
			p.errorf("alert %d (%s): severity %s, expected %s", i, a.ID, a.Severity, want)
		}
		if !percentPattern.MatchString(a.ConfidencePercent) {
			p.errorf("alert %d (%s): confidence %q is not a one-decimal percentage", i, a.ID, a.ConfidencePercent)
		} else if want := domain.FormatPercent(d.Confidence); a.ConfidencePercent != want {
			p.errorf("alert %d (%s): confidence %q, expected %q", i, a.ID, a.ConfidencePercent, want)
		}
		if want := d.OverlayLabel(); a.Label != want {
			p.errorf("alert %d (%s): label %q, expected %q", i, a.ID, a.Label, want)
		}
	}
	return p
}

// within is inclusive at both ends; the generator's half-open ranges can
// round up to the bound.
func within(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}
