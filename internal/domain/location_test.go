package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLocations() []MapLocation {
	return []MapLocation{
		{ID: "cam-001", Type: LocationCamera},
		{ID: "cam-002", Type: LocationCamera},
		{ID: "fire-001", Type: LocationFire},
		{ID: "sensor-001", Type: LocationSensor},
		{ID: "evac-001", Type: LocationEvacuation},
	}
}

func ids(locs []MapLocation) []string {
	out := make([]string, 0, len(locs))
	for _, l := range locs {
		out = append(out, l.ID)
	}
	return out
}

func TestFilterLocations(t *testing.T) {
	tests := []struct {
		name     string
		layer    string
		expected []string
	}{
		{"all", LayerAll, []string{"cam-001", "cam-002", "fire-001", "sensor-001", "evac-001"}},
		{"empty means all", "", []string{"cam-001", "cam-002", "fire-001", "sensor-001", "evac-001"}},
		{"cameras", "camera", []string{"cam-001", "cam-002"}},
		{"fire", "fire", []string{"fire-001"}},
		{"no resources", "resource", []string{}},
		{"unknown layer", "volcano", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterLocations(testLocations(), tt.layer)
			assert.Equal(t, tt.expected, ids(got))
			for _, loc := range got {
				if tt.layer != "" && tt.layer != LayerAll {
					assert.Equal(t, tt.layer, string(loc.Type))
				}
			}
		})
	}
}

func TestFilterLocations_DoesNotAliasInput(t *testing.T) {
	locs := testLocations()
	got := FilterLocations(locs, LayerAll)
	require.Len(t, got, len(locs))

	got[0].Name = "changed"
	assert.Empty(t, locs[0].Name)
}

func TestCountByStatus(t *testing.T) {
	cams := []Camera{
		{Status: CameraActive}, {Status: CameraAlert}, {Status: CameraAlert},
		{Status: CameraOffline}, {Status: CameraActive}, {Status: CameraAlert},
	}
	assert.Equal(t, StatusCounts{Active: 2, Alert: 3, Offline: 1, Total: 6}, CountByStatus(cams))
}

func TestCameraSettings_Validate(t *testing.T) {
	require.NoError(t, DefaultCameraSettings().Validate())

	s := DefaultCameraSettings()
	s.Brightness = 101
	s.Zoom = 50
	s.FrameRate = "24"

	var verr *ValidationError
	require.ErrorAs(t, s.Validate(), &verr)
	assert.Equal(t, []string{"brightness", "zoom", "frame_rate"}, verr.Fields)
}

func TestUserSettings_Validate(t *testing.T) {
	require.NoError(t, DefaultUserSettings().Validate())

	s := DefaultUserSettings()
	s.DetectionThreshold = -1
	assert.Error(t, s.Validate())
}
