// Package mockdata holds the seed records shown by the demo and the random
// series regenerated on each analytics load.
//
// Every function returns fresh slices, so callers may modify the result.
package mockdata

import (
	"time"

	"github.com/couchcryptid/wildfire-watch/internal/domain"
)

func ptr(v float64) *float64 { return &v }

const (
	imgFire   = "https://images.unsplash.com/photo-1574482620881-2eb7c8c50b8e?w=400&h=300&fit=crop"
	imgForest = "https://images.unsplash.com/photo-1441974231531-c6227db76b6e?w=400&h=300&fit=crop"
	imgPeak   = "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=400&h=300&fit=crop"
)

// Cameras returns the six dashboard cameras.
func Cameras() []domain.Camera {
	return []domain.Camera{
		{ID: "cam-001", Name: "North Ridge Camera", Location: "Sector A-1", Status: domain.CameraAlert, LastUpdate: "2 minutes ago", Confidence: ptr(94.2), Temperature: ptr(89), WindSpeed: ptr(15), Image: imgFire},
		{ID: "cam-002", Name: "Valley View Camera", Location: "Sector B-3", Status: domain.CameraActive, LastUpdate: "1 minute ago", Temperature: ptr(72), WindSpeed: ptr(8), Image: imgForest},
		{ID: "cam-003", Name: "Pine Forest Camera", Location: "Sector C-2", Status: domain.CameraAlert, LastUpdate: "5 minutes ago", Confidence: ptr(87.5), Temperature: ptr(95), WindSpeed: ptr(22), Image: imgPeak},
		{ID: "cam-004", Name: "Mountain Peak Camera", Location: "Sector D-1", Status: domain.CameraActive, LastUpdate: "3 minutes ago", Temperature: ptr(68), WindSpeed: ptr(12), Image: imgPeak},
		{ID: "cam-005", Name: "Riverside Camera", Location: "Sector E-4", Status: domain.CameraOffline, LastUpdate: "15 minutes ago", Image: imgForest},
		{ID: "cam-006", Name: "Desert Edge Camera", Location: "Sector F-2", Status: domain.CameraAlert, LastUpdate: "1 minute ago", Confidence: ptr(91.8), Temperature: ptr(102), WindSpeed: ptr(18), Image: imgFire},
	}
}

// Locations returns the situation map points, one or more per layer.
func Locations() []domain.MapLocation {
	return []domain.MapLocation{
		{ID: "cam-001", Name: "North Ridge Camera", Type: domain.LocationCamera, Lat: 34.0522, Lng: -118.2437, Status: "alert",
			Data: map[string]string{"last_detection": "Fire - 89% confidence", "coverage": "2.5km radius"}},
		{ID: "cam-002", Name: "Valley View Camera", Type: domain.LocationCamera, Lat: 34.0622, Lng: -118.2537, Status: "active",
			Data: map[string]string{"coverage": "3.0km radius", "night_vision": "true"}},
		{ID: "fire-001", Name: "Active Fire Zone", Type: domain.LocationFire, Lat: 34.0522, Lng: -118.24, Status: "alert",
			Data: map[string]string{"size": "15 acres", "spread": "Northeast", "severity": "High"}},
		{ID: "sensor-001", Name: "Weather Station Alpha", Type: domain.LocationSensor, Lat: 34.0422, Lng: -118.2337, Status: "active",
			Data: map[string]string{"temp": "32°C", "humidity": "15%", "wind_speed": "25 mph"}},
		{ID: "evac-001", Name: "Evacuation Route 1", Type: domain.LocationEvacuation, Lat: 34.0322, Lng: -118.2237, Status: "active",
			Data: map[string]string{"capacity": "5000 people", "status": "Clear"}},
		{ID: "resource-001", Name: "Fire Station 12", Type: domain.LocationResource, Lat: 34.0722, Lng: -118.2637, Status: "active",
			Data: map[string]string{"units": "3 trucks", "personnel": "12 firefighters", "eta": "8 minutes"}},
	}
}

// Incidents returns the two open incidents, timestamped relative to now.
func Incidents(now time.Time) []domain.Incident {
	return []domain.Incident{
		{
			ID:                   "INC-001",
			Type:                 domain.IncidentFire,
			Severity:             domain.IncidentCritical,
			Location:             "North Ridge Camera Area",
			Description:          "Large wildfire detected with 89% confidence. Fire spreading northeast due to high winds.",
			Timestamp:            now.Add(-2 * time.Minute),
			Status:               domain.IncidentResponding,
			AssignedUnits:        []string{"Engine 12", "Engine 15", "Helicopter 3"},
			EstimatedContainment: "4-6 hours",
		},
		{
			ID:            "INC-002",
			Type:          domain.IncidentEvacuation,
			Severity:      domain.IncidentHigh,
			Location:      "Residential Area Sector B",
			Description:   "Mandatory evacuation order issued for 500 residents due to approaching fire.",
			Timestamp:     now.Add(-5 * time.Minute),
			Status:        domain.IncidentActive,
			AssignedUnits: []string{"Police Unit 7", "Police Unit 12", "Emergency Bus 3"},
		},
	}
}

// Resources returns the response units.
func Resources() []domain.Resource {
	return []domain.Resource{
		{ID: "ENG-12", Name: "Engine 12", Type: "Fire Truck", Status: domain.ResourceAvailable, Location: "Station 12", ETA: "8 min"},
		{ID: "ENG-15", Name: "Engine 15", Type: "Fire Truck", Status: domain.ResourceDeployed, Location: "North Ridge", ETA: "On scene"},
		{ID: "HEL-3", Name: "Helicopter 3", Type: "Air Support", Status: domain.ResourceDeployed, Location: "North Ridge", ETA: "On scene"},
		{ID: "AMB-7", Name: "Ambulance 7", Type: "Medical", Status: domain.ResourceAvailable, Location: "Station 7", ETA: "12 min"},
		{ID: "POL-7", Name: "Police Unit 7", Type: "Law Enforcement", Status: domain.ResourceDeployed, Location: "Sector B", ETA: "On scene"},
	}
}

// Contacts returns the emergency phone list.
func Contacts() []domain.Contact {
	return []domain.Contact{
		{Name: "Fire Department", Number: "911", Type: "primary"},
		{Name: "Police Department", Number: "911", Type: "primary"},
		{Name: "Emergency Medical", Number: "911", Type: "primary"},
		{Name: "Forest Service", Number: "(555) 123-4567", Type: "secondary"},
		{Name: "Emergency Management", Number: "(555) 987-6543", Type: "secondary"},
		{Name: "Red Cross", Number: "(555) 456-7890", Type: "support"},
	}
}

// Reports returns the two community reports already reviewed.
func Reports(now time.Time) []domain.Report {
	return []domain.Report{
		{
			ID:           "pub-001",
			Title:        "Smoke spotted near hiking trail",
			Location:     "Mount Wilson Trail, Mile 3.2",
			Description:  "Noticed thick smoke rising from the valley while hiking. Appears to be getting larger.",
			ImageURL:     domain.PlaceholderImage,
			Timestamp:    now.Add(-30 * time.Minute),
			Reporter:     "HikerMike92",
			Status:       domain.ReportInvestigating,
			Upvotes:      12,
			Comments:     3,
			AIConfidence: ptr(0.84),
		},
		{
			ID:           "pub-002",
			Title:        "Possible fire in residential area",
			Location:     "Oak Street, near elementary school",
			Description:  "Saw orange glow and smoke from my backyard. Fire department should check this out.",
			ImageURL:     domain.PlaceholderImage,
			Timestamp:    now.Add(-time.Hour),
			Reporter:     "ConcernedCitizen",
			Status:       domain.ReportVerified,
			Upvotes:      28,
			Comments:     7,
			AIConfidence: ptr(0.92),
		},
	}
}

// Alerts returns the notification panel entries present at startup.
func Alerts(now time.Time) []domain.Alert {
	return []domain.Alert{
		{ID: "1", Message: "Fire detected at North Ridge Camera", Time: "2 min ago", Severity: domain.SeverityHigh,
			Location: "Sector A-1", Confidence: 0.89, Status: domain.AlertActive, CreatedAt: now.Add(-2 * time.Minute)},
		{ID: "2", Message: "Smoke detected at Mountain Peak Camera", Time: "1 hour ago", Severity: domain.SeverityMedium,
			Location: "Sector C-2", Confidence: 0.65, Status: domain.AlertInvestigating, CreatedAt: now.Add(-time.Hour)},
		{ID: "3", Message: "Camera offline: Forest Edge Camera", Time: "3 hours ago", Severity: domain.SeverityLow,
			Location: "Sector D-1", Confidence: 0, Status: domain.AlertMaintenance, CreatedAt: now.Add(-3 * time.Hour)},
	}
}

// Stats returns the analytics headline figures.
func Stats() domain.Stats {
	return domain.Stats{
		TotalDetections: 1247,
		AccuracyRate:    94.2,
		FalsePositives:  73,
		ResponseTime:    2.3,
		CamerasOnline:   5,
		TotalCameras:    6,
		RiskLevel:       domain.RiskMedium,
		TrendsUp:        12,
		TrendsDown:      3,
	}
}

// Trends returns seven days of detection counts.
func Trends() []domain.TrendPoint {
	return []domain.TrendPoint{
		{Date: "2024-01-20", Fires: 12, Smoke: 8, FalsePositives: 2},
		{Date: "2024-01-21", Fires: 15, Smoke: 11, FalsePositives: 1},
		{Date: "2024-01-22", Fires: 8, Smoke: 6, FalsePositives: 3},
		{Date: "2024-01-23", Fires: 22, Smoke: 18, FalsePositives: 4},
		{Date: "2024-01-24", Fires: 19, Smoke: 14, FalsePositives: 2},
		{Date: "2024-01-25", Fires: 25, Smoke: 20, FalsePositives: 5},
		{Date: "2024-01-26", Fires: 18, Smoke: 13, FalsePositives: 1},
	}
}

// Accuracy returns per-camera detection performance.
func Accuracy() []domain.CameraAccuracy {
	return []domain.CameraAccuracy{
		{Camera: "North Ridge", Accuracy: 96.5, Detections: 234},
		{Camera: "Valley View", Accuracy: 92.1, Detections: 189},
		{Camera: "Mountain Peak", Accuracy: 94.8, Detections: 156},
		{Camera: "Forest Edge", Accuracy: 89.3, Detections: 98},
		{Camera: "River Bend", Accuracy: 97.2, Detections: 267},
		{Camera: "Hilltop", Accuracy: 93.7, Detections: 203},
	}
}

// Distribution returns detections by type. The values sum to the total in
// Stats.
func Distribution() []domain.Slice {
	return []domain.Slice{
		{Name: "Fire", Value: 687, Color: "#ef4444"},
		{Name: "Smoke", Value: 487, Color: "#f97316"},
		{Name: "False Positive", Value: 73, Color: "#6b7280"},
	}
}

// CurrentWeather returns the conditions widget.
func CurrentWeather() domain.Weather {
	return domain.Weather{
		TemperatureC:  32,
		Humidity:      15,
		WindSpeedMPH:  25,
		WindDirection: "NE",
		Visibility:    "Excellent",
		Conditions:    "Clear",
		FireRisk:      domain.RiskHigh,
		UVIndex:       8,
	}
}
