package domain

import (
	"time"
)

// DetectionType is the class of a simulated detection.
type DetectionType string

const (
	DetectionFire  DetectionType = "fire"
	DetectionSmoke DetectionType = "smoke"
)

// BoundingBox is a detection region in fractions of the frame size.
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Detection is a synthetic fire or smoke event produced by the simulator.
type Detection struct {
	ID         string        `json:"id"`
	CameraID   string        `json:"camera_id,omitempty"`
	Type       DetectionType `json:"type"`
	Confidence float64       `json:"confidence"` // 0.0–1.0
	BBox       BoundingBox   `json:"bbox"`
	Timestamp  time.Time     `json:"timestamp"`
}

// AlertSeverity is the notification-panel severity of an alert.
type AlertSeverity string

const (
	SeverityHigh   AlertSeverity = "high"
	SeverityMedium AlertSeverity = "medium"
	SeverityLow    AlertSeverity = "low"
)

// AlertStatus is the handling state of an alert.
type AlertStatus string

const (
	AlertActive        AlertStatus = "active"
	AlertInvestigating AlertStatus = "investigating"
	AlertMaintenance   AlertStatus = "maintenance"
)

// Alert is an entry of the notification panel.
type Alert struct {
	ID         string        `json:"id"`
	Message    string        `json:"message"`
	Time       string        `json:"time"`
	Severity   AlertSeverity `json:"severity"`
	Location   string        `json:"location"`
	Confidence float64       `json:"confidence"` // 0.0–1.0
	Status     AlertStatus   `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
}

// AlertEvent is a detection enriched for delivery to live-feed subscribers and
// the alert board.
type AlertEvent struct {
	ID                string        `json:"id"`
	Detection         Detection     `json:"detection"`
	CameraName        string        `json:"camera_name,omitempty"`
	Location          string        `json:"location,omitempty"`
	Severity          AlertSeverity `json:"severity"`
	Label             string        `json:"label"`
	ConfidencePercent string        `json:"confidence_percent"`
	Message           string        `json:"message"`
	ProcessedAt       time.Time     `json:"processed_at"`
}

// ToAlert converts the event into a notification-panel alert.
func (e AlertEvent) ToAlert() Alert {
	return Alert{
		ID:         e.ID,
		Message:    e.Message,
		Time:       e.ProcessedAt.Format(time.Kitchen),
		Severity:   e.Severity,
		Location:   e.Location,
		Confidence: e.Detection.Confidence,
		Status:     AlertActive,
		CreatedAt:  e.ProcessedAt,
	}
}
