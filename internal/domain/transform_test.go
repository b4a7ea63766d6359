package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDetectionID = "det-123"

func validDetection() Detection {
	return Detection{
		ID:         testDetectionID,
		CameraID:   "cam-001",
		Type:       DetectionFire,
		Confidence: 0.8734,
		BBox:       BoundingBox{X: 0.4, Y: 0.25, Width: 0.2, Height: 0.15},
		Timestamp:  time.Date(2024, 1, 26, 14, 30, 0, 0, time.UTC),
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		name     string
		fraction float64
		expected string
	}{
		{"typical", 0.8734, "87.3%"},
		{"rounds up", 0.8768, "87.7%"},
		{"zero", 0, "0.0%"},
		{"one", 1, "100.0%"},
		{"lower bound of simulator", 0.6, "60.0%"},
		{"small", 0.0004, "0.0%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatPercent(tt.fraction))
		})
	}
}

func TestPercentValue(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.873456, 87.3},
		{0.942, 94.2},
		{0.99999, 100},
		{0.6, 60},
		{0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PercentValue(tt.in), "PercentValue(%v)", tt.in)
	}
}

func TestDetection_Labels(t *testing.T) {
	d := validDetection()

	assert.Equal(t, "87.3%", d.ConfidencePercent())
	assert.Equal(t, "fire 87%", d.OverlayLabel())

	d.Type = DetectionSmoke
	d.Confidence = 0.615
	assert.Equal(t, "smoke 62%", d.OverlayLabel())
	assert.Equal(t, "61.5%", d.ConfidencePercent())
}

func TestDetectionType_DisplayName(t *testing.T) {
	assert.Equal(t, "Fire", DetectionFire.DisplayName())
	assert.Equal(t, "Smoke", DetectionSmoke.DisplayName())
}

func TestDetection_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Detection)
		fields []string
	}{
		{"valid", func(*Detection) {}, nil},
		{"unknown type", func(d *Detection) { d.Type = "steam" }, []string{"type"}},
		{"confidence above one", func(d *Detection) { d.Confidence = 1.2 }, []string{"confidence"}},
		{"negative confidence", func(d *Detection) { d.Confidence = -0.1 }, []string{"confidence"}},
		{"box past right edge", func(d *Detection) { d.BBox.X = 0.9 }, []string{"bbox.x"}},
		{"box past bottom edge", func(d *Detection) { d.BBox.Height = 0.9 }, []string{"bbox.y"}},
		{"box touching edges", func(d *Detection) { d.BBox = BoundingBox{X: 0.7, Y: 0.7, Width: 0.3, Height: 0.3} }, nil},
		{"several problems", func(d *Detection) { d.Type = ""; d.Confidence = 2 }, []string{"type", "confidence"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDetection()
			tt.mutate(&d)
			err := d.Validate()
			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.fields, verr.Fields)
		})
	}
}

func TestDeriveSeverity(t *testing.T) {
	tests := []struct {
		name       string
		typ        DetectionType
		confidence float64
		expected   AlertSeverity
	}{
		{"fire high", DetectionFire, 0.92, SeverityHigh},
		{"fire boundary", DetectionFire, 0.85, SeverityHigh},
		{"fire medium", DetectionFire, 0.84, SeverityMedium},
		{"smoke medium", DetectionSmoke, 0.95, SeverityMedium},
		{"smoke boundary", DetectionSmoke, 0.9, SeverityMedium},
		{"smoke low", DetectionSmoke, 0.7, SeverityLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveSeverity(tt.typ, tt.confidence))
		})
	}
}

func TestEnrichDetection(t *testing.T) {
	fixed := time.Date(2024, 1, 26, 14, 31, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(fixed))
	t.Cleanup(func() { SetClock(nil) })

	cam := Camera{ID: "cam-001", Name: "North Ridge Camera", Location: "Sector A-1"}

	t.Run("known camera", func(t *testing.T) {
		event, err := EnrichDetection(validDetection(), cam)
		require.NoError(t, err)

		assert.Equal(t, "alert-"+testDetectionID, event.ID)
		assert.Equal(t, "North Ridge Camera", event.CameraName)
		assert.Equal(t, "Sector A-1", event.Location)
		assert.Equal(t, SeverityHigh, event.Severity)
		assert.Equal(t, "fire 87%", event.Label)
		assert.Equal(t, "87.3%", event.ConfidencePercent)
		assert.Equal(t, "Fire detected at North Ridge Camera", event.Message)
		assert.Equal(t, fixed, event.ProcessedAt)
	})

	t.Run("unknown camera", func(t *testing.T) {
		event, err := EnrichDetection(validDetection(), Camera{})
		require.NoError(t, err)
		assert.Equal(t, "Fire detected at unknown camera", event.Message)
		assert.Empty(t, event.Location)
	})

	t.Run("invalid detection", func(t *testing.T) {
		d := validDetection()
		d.Confidence = 3
		_, err := EnrichDetection(d, cam)
		require.Error(t, err)
		assert.True(t, strings.HasPrefix(err.Error(), "enrich detection "+testDetectionID))
	})
}

func TestAlertEvent_ToAlert(t *testing.T) {
	processed := time.Date(2024, 1, 26, 14, 31, 0, 0, time.UTC)
	event := AlertEvent{
		ID:          "alert-1",
		Detection:   Detection{Confidence: 0.9},
		Location:    "Sector A-1",
		Severity:    SeverityHigh,
		Message:     "Fire detected at North Ridge Camera",
		ProcessedAt: processed,
	}

	alert := event.ToAlert()

	assert.Equal(t, "alert-1", alert.ID)
	assert.Equal(t, AlertActive, alert.Status)
	assert.Equal(t, SeverityHigh, alert.Severity)
	assert.Equal(t, "2:31PM", alert.Time)
	assert.Equal(t, 0.9, alert.Confidence)
	assert.Equal(t, processed, alert.CreatedAt)
}
