package memstore

import (
	"fmt"

	"github.com/couchcryptid/wildfire-watch/internal/domain"
)

// Cameras returns every camera in dashboard order.
func (b *Board) Cameras() []domain.Camera {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]domain.Camera{}, b.cameras...)
}

// Camera returns the camera with the given id.
func (b *Board) Camera(id string) (domain.Camera, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	i := b.cameraIndex(id)
	if i < 0 {
		return domain.Camera{}, fmt.Errorf("camera %s: %w", id, domain.ErrNotFound)
	}
	return b.cameras[i], nil
}

func (b *Board) cameraIndex(id string) int {
	for i := range b.cameras {
		if b.cameras[i].ID == id {
			return i
		}
	}
	return -1
}

// CameraSettings returns the current settings of a camera.
func (b *Board) CameraSettings(id string) (domain.CameraSettings, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	s, ok := b.settings[id]
	if !ok {
		return domain.CameraSettings{}, fmt.Errorf("camera %s: %w", id, domain.ErrNotFound)
	}
	return s, nil
}

// UpdateCameraSettings validates and replaces the settings of a camera.
func (b *Board) UpdateCameraSettings(id string, s domain.CameraSettings) (domain.CameraSettings, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.settings[id]; !ok {
		return domain.CameraSettings{}, fmt.Errorf("camera %s: %w", id, domain.ErrNotFound)
	}
	if err := s.Validate(); err != nil {
		return domain.CameraSettings{}, err
	}
	b.settings[id] = s
	b.logger.Info("camera settings updated", "camera_id", id)
	return s, nil
}

// RestartCamera takes the camera offline and brings it back to active after
// the restart delay.
func (b *Board) RestartCamera(id string) (domain.Camera, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.cameraIndex(id)
	if i < 0 {
		return domain.Camera{}, fmt.Errorf("camera %s: %w", id, domain.ErrNotFound)
	}

	b.cameras[i].Status = domain.CameraOffline
	b.cameras[i].LastUpdate = "restarting"
	b.after("restart:"+id, b.cfg.RestartDelay, func() {
		if j := b.cameraIndex(id); j >= 0 {
			b.cameras[j].Status = domain.CameraActive
			b.cameras[j].LastUpdate = "just now"
			b.logger.Info("camera back online", "camera_id", id)
		}
	})
	b.logger.Info("camera restart initiated", "camera_id", id, "offline_for", b.cfg.RestartDelay)
	return b.cameras[i], nil
}

// FactoryReset restores the default settings of a camera.
func (b *Board) FactoryReset(id string) (domain.CameraSettings, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.settings[id]; !ok {
		return domain.CameraSettings{}, fmt.Errorf("camera %s: %w", id, domain.ErrNotFound)
	}
	s := domain.DefaultCameraSettings()
	b.settings[id] = s
	b.logger.Info("camera factory reset", "camera_id", id)
	return s, nil
}

// UserSettings returns the operator preferences.
func (b *Board) UserSettings() domain.UserSettings {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.user
}

// UpdateUserSettings validates and replaces the operator preferences.
func (b *Board) UpdateUserSettings(s domain.UserSettings) (domain.UserSettings, error) {
	if err := s.Validate(); err != nil {
		return domain.UserSettings{}, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.user = s
	return s, nil
}
