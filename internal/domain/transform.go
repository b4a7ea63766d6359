package domain

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FormatPercent renders a 0–1 fraction as a percentage with one decimal place,
// e.g. 0.8734 -> "87.3%".
func FormatPercent(fraction float64) string {
	return strconv.FormatFloat(fraction*100, 'f', 1, 64) + "%"
}

// PercentValue converts a 0–1 fraction to a percentage rounded to one
// decimal place, e.g. 0.873456 -> 87.3.
func PercentValue(fraction float64) float64 {
	return math.Round(fraction*1000) / 10
}

// ConfidencePercent returns the detection confidence formatted for lists.
func (d Detection) ConfidencePercent() string {
	return FormatPercent(d.Confidence)
}

// OverlayLabel returns the short label drawn above a bounding box,
// e.g. "fire 87%".
func (d Detection) OverlayLabel() string {
	return fmt.Sprintf("%s %s%%", d.Type, strconv.FormatFloat(d.Confidence*100, 'f', 0, 64))
}

// DisplayName returns the capitalized type name, e.g. "Fire".
func (t DetectionType) DisplayName() string {
	// A Caser holds state and must not be shared across goroutines.
	return cases.Title(language.English).String(string(t))
}

// Valid reports whether t is a known detection type.
func (t DetectionType) Valid() bool {
	return t == DetectionFire || t == DetectionSmoke
}

// Validate checks the detection's type, confidence range, and that the
// bounding box lies within the frame.
func (d Detection) Validate() error {
	var bad []string
	if !d.Type.Valid() {
		bad = append(bad, "type")
	}
	if !inUnit(d.Confidence) {
		bad = append(bad, "confidence")
	}
	b := d.BBox
	if !inUnit(b.X) || !inUnit(b.Width) || b.X+b.Width > 1 {
		bad = append(bad, "bbox.x")
	}
	if !inUnit(b.Y) || !inUnit(b.Height) || b.Y+b.Height > 1 {
		bad = append(bad, "bbox.y")
	}
	if len(bad) > 0 {
		return newValidationError("invalid detection", bad...)
	}
	return nil
}

func inUnit(v float64) bool {
	return v >= 0 && v <= 1
}

// DeriveSeverity maps a detection to an alert severity:
//   - fire: >= 0.85 high, otherwise medium
//   - smoke: >= 0.90 medium, otherwise low
func DeriveSeverity(t DetectionType, confidence float64) AlertSeverity {
	switch t {
	case DetectionFire:
		if confidence >= 0.85 {
			return SeverityHigh
		}
		return SeverityMedium
	default:
		if confidence >= 0.9 {
			return SeverityMedium
		}
		return SeverityLow
	}
}

// EnrichDetection validates a detection and builds the alert event delivered
// to subscribers. cam may be the zero Camera when the source is unknown.
func EnrichDetection(d Detection, cam Camera) (AlertEvent, error) {
	if err := d.Validate(); err != nil {
		return AlertEvent{}, fmt.Errorf("enrich detection %s: %w", d.ID, err)
	}

	where := cam.Name
	if where == "" {
		where = "unknown camera"
	}

	return AlertEvent{
		ID:                "alert-" + d.ID,
		Detection:         d,
		CameraName:        cam.Name,
		Location:          cam.Location,
		Severity:          DeriveSeverity(d.Type, d.Confidence),
		Label:             d.OverlayLabel(),
		ConfidencePercent: d.ConfidencePercent(),
		Message:           fmt.Sprintf("%s detected at %s", d.Type.DisplayName(), where),
		ProcessedAt:       clock.Now(),
	}, nil
}
