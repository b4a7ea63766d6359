package domain

// CameraStatus is the monitoring state of a camera.
type CameraStatus string

const (
	CameraActive  CameraStatus = "active"
	CameraAlert   CameraStatus = "alert"
	CameraOffline CameraStatus = "offline"
)

// Camera is a mock monitoring feed shown on the dashboard.
type Camera struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Location    string       `json:"location"`
	Status      CameraStatus `json:"status"`
	LastUpdate  string       `json:"last_update"`
	Confidence  *float64     `json:"confidence,omitempty"`  // percent, e.g. 94.2
	Temperature *float64     `json:"temperature,omitempty"` // °F
	WindSpeed   *float64     `json:"wind_speed,omitempty"`  // mph
	Image       string       `json:"image"`
}

// StatusCounts tallies cameras per status.
type StatusCounts struct {
	Active  int `json:"active"`
	Alert   int `json:"alert"`
	Offline int `json:"offline"`
	Total   int `json:"total"`
}

// CountByStatus tallies the cameras in each status.
func CountByStatus(cameras []Camera) StatusCounts {
	var c StatusCounts
	for i := range cameras {
		switch cameras[i].Status {
		case CameraActive:
			c.Active++
		case CameraAlert:
			c.Alert++
		case CameraOffline:
			c.Offline++
		}
	}
	c.Total = len(cameras)
	return c
}

// CameraSettings holds the adjustable parameters of a camera.
type CameraSettings struct {
	Brightness       int    `json:"brightness"` // 0–100
	Contrast         int    `json:"contrast"`   // 0–100
	Saturation       int    `json:"saturation"` // 0–100
	Zoom             int    `json:"zoom"`       // 100–1000 percent
	NightVision      bool   `json:"night_vision"`
	MotionDetection  bool   `json:"motion_detection"`
	FireDetection    bool   `json:"fire_detection"`
	RecordingEnabled bool   `json:"recording_enabled"`
	Resolution       string `json:"resolution"` // 720p, 1080p, 4k
	FrameRate        string `json:"frame_rate"` // 15, 30, 60
}

// DefaultCameraSettings returns the factory settings.
func DefaultCameraSettings() CameraSettings {
	return CameraSettings{
		Brightness:       50,
		Contrast:         50,
		Saturation:       50,
		Zoom:             100,
		NightVision:      true,
		MotionDetection:  true,
		FireDetection:    true,
		RecordingEnabled: true,
		Resolution:       "1080p",
		FrameRate:        "30",
	}
}

// Validate checks every setting against its allowed range.
func (s CameraSettings) Validate() error {
	var bad []string
	if s.Brightness < 0 || s.Brightness > 100 {
		bad = append(bad, "brightness")
	}
	if s.Contrast < 0 || s.Contrast > 100 {
		bad = append(bad, "contrast")
	}
	if s.Saturation < 0 || s.Saturation > 100 {
		bad = append(bad, "saturation")
	}
	if s.Zoom < 100 || s.Zoom > 1000 {
		bad = append(bad, "zoom")
	}
	switch s.Resolution {
	case "720p", "1080p", "4k":
	default:
		bad = append(bad, "resolution")
	}
	switch s.FrameRate {
	case "15", "30", "60":
	default:
		bad = append(bad, "frame_rate")
	}
	if len(bad) > 0 {
		return newValidationError("invalid camera settings", bad...)
	}
	return nil
}

// UserSettings holds the operator preferences of the settings page.
type UserSettings struct {
	DetectionThreshold int  `json:"detection_threshold"` // 0–100
	EmailAlerts        bool `json:"email_alerts"`
	SMSAlerts          bool `json:"sms_alerts"`
	PushNotifications  bool `json:"push_notifications"`
	AutoRecord         bool `json:"auto_record"`
}

// DefaultUserSettings returns the initial operator preferences.
func DefaultUserSettings() UserSettings {
	return UserSettings{
		DetectionThreshold: 75,
		EmailAlerts:        true,
		PushNotifications:  true,
		AutoRecord:         true,
	}
}

// Validate checks the detection threshold range.
func (s UserSettings) Validate() error {
	if s.DetectionThreshold < 0 || s.DetectionThreshold > 100 {
		return newValidationError("invalid settings", "detection_threshold")
	}
	return nil
}
