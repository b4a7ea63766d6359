// Package pipeline moves simulated detections through an extract, transform,
// load loop: detections are batched from the simulator, enriched into alert
// events, and fanned out to the live-feed hub, the alert board, and
// optionally Kafka.
package pipeline

import (
	"context"
	"errors"

	"github.com/couchcryptid/wildfire-watch/internal/domain"
)

// CameraLookup resolves the camera a detection came from.
type CameraLookup interface {
	Camera(id string) (domain.Camera, error)
}

// AlertTransformer enriches detections with their camera and severity.
type AlertTransformer struct {
	cameras CameraLookup
}

// NewAlertTransformer creates an AlertTransformer. cameras may be nil, in
// which case every detection is attributed to an unknown camera.
func NewAlertTransformer(cameras CameraLookup) *AlertTransformer {
	return &AlertTransformer{cameras: cameras}
}

// Transform validates d and builds its alert event. A camera id that does not
// resolve is not an error.
func (t *AlertTransformer) Transform(_ context.Context, d domain.Detection) (domain.AlertEvent, error) {
	var cam domain.Camera
	if t.cameras != nil && d.CameraID != "" {
		c, err := t.cameras.Camera(d.CameraID)
		switch {
		case err == nil:
			cam = c
		case !errors.Is(err, domain.ErrNotFound):
			return domain.AlertEvent{}, err
		}
	}
	return domain.EnrichDetection(d, cam)
}
