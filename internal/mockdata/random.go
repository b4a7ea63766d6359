package mockdata

import (
	"time"

	"github.com/couchcryptid/wildfire-watch/internal/domain"
)

// Rand is the source of uniform [0, 1) draws.
type Rand interface {
	Float64() float64
}

// HeatMapSize is the number of cells along each side of the heat map.
const HeatMapSize = 20

// HourlyPattern returns 24 hourly detection counts, each an integer in 10..59.
func HourlyPattern(r Rand) []domain.HourlyCount {
	out := make([]domain.HourlyCount, 24)
	for i := range out {
		out[i] = domain.HourlyCount{Hour: i, Detections: float64(10 + int(r.Float64()*50))}
	}
	return out
}

// HeatMap returns a HeatMapSize×HeatMapSize grid of risk intensities in
// [0, 1), column by column.
func HeatMap(r Rand) []domain.HeatCell {
	out := make([]domain.HeatCell, 0, HeatMapSize*HeatMapSize)
	for x := range HeatMapSize {
		for y := range HeatMapSize {
			out = append(out, domain.HeatCell{X: x, Y: y, Intensity: r.Float64()})
		}
	}
	return out
}

var riskLevels = []domain.RiskLevel{domain.RiskLow, domain.RiskMedium, domain.RiskHigh}

// HourlyRisk returns eight forecast slots three hours apart starting at now's
// hour, each with a random risk level.
func HourlyRisk(r Rand, now time.Time) []domain.HourlyRisk {
	out := make([]domain.HourlyRisk, 8)
	for i := range out {
		out[i] = domain.HourlyRisk{
			Hour: (now.Hour() + i*3) % 24,
			Risk: riskLevels[int(r.Float64()*float64(len(riskLevels)))],
		}
	}
	return out
}
