package memstore

import (
	"context"
	"fmt"
	"slices"

	"github.com/couchcryptid/wildfire-watch/internal/domain"
)

// Incidents returns the incidents, newest first.
func (b *Board) Incidents() []domain.Incident {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]domain.Incident, len(b.incidents))
	for i, inc := range b.incidents {
		inc.AssignedUnits = slices.Clone(inc.AssignedUnits)
		out[i] = inc
	}
	return out
}

// CreateIncident validates the form and prepends a new active incident.
func (b *Board) CreateIncident(in domain.IncidentInput) (domain.Incident, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	inc, err := domain.NewIncident(in, len(b.incidents))
	if err != nil {
		return domain.Incident{}, err
	}
	b.incidents = slices.Insert(b.incidents, 0, inc)
	b.logger.Info("incident created", "id", inc.ID, "type", inc.Type, "severity", inc.Severity)
	return inc, nil
}

// Reports returns the public reports, newest first.
func (b *Board) Reports() []domain.Report {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]domain.Report, len(b.reports))
	for i, r := range b.reports {
		if r.AIConfidence != nil {
			c := *r.AIConfidence
			r.AIConfidence = &c
		}
		out[i] = r
	}
	return out
}

// SubmitReport validates the form and prepends a pending report. After the
// processing delay the report receives an AI confidence in [0.7, 1.0).
func (b *Board) SubmitReport(in domain.ReportInput) (domain.Report, error) {
	r, err := domain.NewReport(in)
	if err != nil {
		return domain.Report{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.reports = slices.Insert(b.reports, 0, r)
	b.after("report:"+r.ID, b.cfg.ProcessingDelay, func() {
		i := b.reportIndex(r.ID)
		if i < 0 {
			return
		}
		conf := 0.7 + b.draw()*0.3
		b.reports[i].AIConfidence = &conf
		b.reports[i].Processing = false
		b.logger.Info("report analysed", "id", r.ID, "ai_confidence", conf)
	})
	b.logger.Info("public report submitted", "id", r.ID)
	return r, nil
}

// UpvoteReport adds one upvote and returns the updated report.
func (b *Board) UpvoteReport(id string) (domain.Report, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.reportIndex(id)
	if i < 0 {
		return domain.Report{}, fmt.Errorf("report %s: %w", id, domain.ErrNotFound)
	}
	b.reports[i].Upvotes++
	return b.reports[i], nil
}

func (b *Board) reportIndex(id string) int {
	for i := range b.reports {
		if b.reports[i].ID == id {
			return i
		}
	}
	return -1
}

// Alerts returns the notification panel, newest first.
func (b *Board) Alerts() []domain.Alert {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]domain.Alert{}, b.alerts...)
}

// LoadBatch prepends an alert for each event and marks the source camera as
// alerting. The alert list keeps at most AlertCap entries.
func (b *Board) LoadBatch(_ context.Context, events []domain.AlertEvent) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, e := range events {
		b.alerts = slices.Insert(b.alerts, 0, e.ToAlert())

		if i := b.cameraIndex(e.Detection.CameraID); i >= 0 && b.cameras[i].Status != domain.CameraOffline {
			pct := domain.PercentValue(e.Detection.Confidence)
			b.cameras[i].Status = domain.CameraAlert
			b.cameras[i].Confidence = &pct
			b.cameras[i].LastUpdate = "just now"
		}
	}
	if b.cfg.AlertCap > 0 && len(b.alerts) > b.cfg.AlertCap {
		b.alerts = slices.Clip(b.alerts[:b.cfg.AlertCap])
	}
	return nil
}
