package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReportStatus is the review state of a public report.
type ReportStatus string

const (
	ReportPending       ReportStatus = "pending"
	ReportVerified      ReportStatus = "verified"
	ReportInvestigating ReportStatus = "investigating"
	ReportResolved      ReportStatus = "resolved"
)

// PlaceholderImage is used for reports submitted without an image.
const PlaceholderImage = "/placeholder.svg?height=200&width=300"

// Report is a citizen submission from the public portal.
type Report struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Location     string       `json:"location"`
	Description  string       `json:"description"`
	ImageURL     string       `json:"image_url"`
	Timestamp    time.Time    `json:"timestamp"`
	Reporter     string       `json:"reporter"`
	Status       ReportStatus `json:"status"`
	Upvotes      int          `json:"upvotes"`
	Comments     int          `json:"comments"`
	AIConfidence *float64     `json:"ai_confidence,omitempty"` // 0.0–1.0, set once analysis finishes
	Processing   bool         `json:"processing"`
}

// ReportInput is the public portal submission form.
type ReportInput struct {
	Title       string `json:"title"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// RequiredFields lists the fields that must be filled before submitting.
func (in ReportInput) RequiredFields() []Field {
	return []Field{
		{Name: "title", Value: in.Title},
		{Name: "location", Value: in.Location},
		{Name: "description", Value: in.Description},
	}
}

// NewReport validates the form and builds a pending anonymous report awaiting
// analysis.
func NewReport(in ReportInput) (Report, error) {
	if err := RequireFields(in.RequiredFields()...); err != nil {
		return Report{}, err
	}
	return Report{
		ID:          "pub-" + uuid.NewString(),
		Title:       in.Title,
		Location:    in.Location,
		Description: in.Description,
		ImageURL:    PlaceholderImage,
		Timestamp:   clock.Now(),
		Reporter:    "Anonymous",
		Status:      ReportPending,
		Processing:  true,
	}, nil
}
