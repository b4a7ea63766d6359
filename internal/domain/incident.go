package domain

import (
	"fmt"
	"time"
)

// IncidentType classifies an emergency incident.
type IncidentType string

const (
	IncidentFire       IncidentType = "fire"
	IncidentEvacuation IncidentType = "evacuation"
	IncidentMedical    IncidentType = "medical"
	IncidentEquipment  IncidentType = "equipment"
)

// IncidentSeverity ranks an incident.
type IncidentSeverity string

const (
	IncidentLow      IncidentSeverity = "low"
	IncidentMedium   IncidentSeverity = "medium"
	IncidentHigh     IncidentSeverity = "high"
	IncidentCritical IncidentSeverity = "critical"
)

// IncidentStatus is the response state of an incident.
type IncidentStatus string

const (
	IncidentActive     IncidentStatus = "active"
	IncidentResponding IncidentStatus = "responding"
	IncidentResolved   IncidentStatus = "resolved"
)

// Incident is an emergency record created from the response center form.
type Incident struct {
	ID                   string           `json:"id"`
	Type                 IncidentType     `json:"type"`
	Severity             IncidentSeverity `json:"severity"`
	Location             string           `json:"location"`
	Description          string           `json:"description"`
	Timestamp            time.Time        `json:"timestamp"`
	Status               IncidentStatus   `json:"status"`
	AssignedUnits        []string         `json:"assigned_units"`
	EstimatedContainment string           `json:"estimated_containment,omitempty"`
}

// IncidentInput is the create-incident form.
type IncidentInput struct {
	Type        IncidentType     `json:"type"`
	Severity    IncidentSeverity `json:"severity"`
	Location    string           `json:"location"`
	Description string           `json:"description"`
}

// RequiredFields lists the fields that must be filled before submitting.
func (in IncidentInput) RequiredFields() []Field {
	return []Field{
		{Name: "location", Value: in.Location},
		{Name: "description", Value: in.Description},
	}
}

// NewIncident validates the form and builds an active incident with the
// sequential id INC-NNN, where NNN is existing+1. Type and severity default to
// fire and medium, matching the form's initial selection.
func NewIncident(in IncidentInput, existing int) (Incident, error) {
	if err := RequireFields(in.RequiredFields()...); err != nil {
		return Incident{}, err
	}
	if in.Type == "" {
		in.Type = IncidentFire
	}
	if in.Severity == "" {
		in.Severity = IncidentMedium
	}

	var bad []string
	switch in.Type {
	case IncidentFire, IncidentEvacuation, IncidentMedical, IncidentEquipment:
	default:
		bad = append(bad, "type")
	}
	switch in.Severity {
	case IncidentLow, IncidentMedium, IncidentHigh, IncidentCritical:
	default:
		bad = append(bad, "severity")
	}
	if len(bad) > 0 {
		return Incident{}, newValidationError("invalid incident", bad...)
	}

	return Incident{
		ID:            fmt.Sprintf("INC-%03d", existing+1),
		Type:          in.Type,
		Severity:      in.Severity,
		Location:      in.Location,
		Description:   in.Description,
		Timestamp:     clock.Now(),
		Status:        IncidentActive,
		AssignedUnits: []string{},
	}, nil
}

// CountOpen returns the number of incidents that are not resolved.
func CountOpen(incidents []Incident) int {
	n := 0
	for i := range incidents {
		if incidents[i].Status != IncidentResolved {
			n++
		}
	}
	return n
}
