package domain

// Stats are the headline figures of the analytics page.
type Stats struct {
	TotalDetections int       `json:"total_detections"`
	AccuracyRate    float64   `json:"accuracy_rate"`
	FalsePositives  int       `json:"false_positives"`
	ResponseTime    float64   `json:"response_time"` // minutes
	CamerasOnline   int       `json:"cameras_online"`
	TotalCameras    int       `json:"total_cameras"`
	RiskLevel       RiskLevel `json:"risk_level"`
	TrendsUp        int       `json:"trends_up"`
	TrendsDown      int       `json:"trends_down"`
}

// TrendPoint is one day of the detection trend series.
type TrendPoint struct {
	Date           string  `json:"date"`
	Fires          float64 `json:"fires"`
	Smoke          float64 `json:"smoke"`
	FalsePositives float64 `json:"false_positives"`
}

// CameraAccuracy is a per-camera performance row.
type CameraAccuracy struct {
	Camera     string  `json:"camera"`
	Accuracy   float64 `json:"accuracy"`
	Detections int     `json:"detections"`
}

// Slice is a named value of a distribution, with its display colour.
type Slice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// HourlyCount is the number of detections in one hour of the day.
type HourlyCount struct {
	Hour       int     `json:"hour"`
	Detections float64 `json:"detections"`
}

// TimeRanges lists the accepted analytics ranges.
var TimeRanges = []string{"24h", "7d", "30d", "90d"}

// ValidTimeRange reports whether r is an accepted analytics range.
func ValidTimeRange(r string) bool {
	for _, v := range TimeRanges {
		if v == r {
			return true
		}
	}
	return false
}
