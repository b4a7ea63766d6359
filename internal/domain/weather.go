package domain

// RiskLevel is a coarse fire-risk rating.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Weather is the current-conditions widget.
type Weather struct {
	TemperatureC  float64   `json:"temperature_c"`
	Humidity      float64   `json:"humidity"` // percent
	WindSpeedMPH  float64   `json:"wind_speed_mph"`
	WindDirection string    `json:"wind_direction"`
	Visibility    string    `json:"visibility"`
	Conditions    string    `json:"conditions"`
	FireRisk      RiskLevel `json:"fire_risk"`
	UVIndex       int       `json:"uv_index"`
}

// HeatCell is one cell of the fire-risk heat map.
type HeatCell struct {
	X         int     `json:"x"`
	Y         int     `json:"y"`
	Intensity float64 `json:"intensity"` // 0.0–1.0
}

// HourlyRisk is one row of the hourly risk forecast.
type HourlyRisk struct {
	Hour int       `json:"hour"`
	Risk RiskLevel `json:"risk"`
}
