package chart

import (
	"github.com/couchcryptid/wildfire-watch/internal/domain"
)

const heatCell = 20.0

// HeatColor maps a risk intensity to its fill colour.
func HeatColor(intensity float64) string {
	switch {
	case intensity > 0.8:
		return "#dc2626"
	case intensity > 0.6:
		return "#ea580c"
	case intensity > 0.4:
		return "#facc15"
	case intensity > 0.2:
		return "#65a30d"
	default:
		return "#16a34a"
	}
}

// HeatOpacity is 0.7 + 0.3 × intensity.
func HeatOpacity(intensity float64) float64 {
	return 0.7 + 0.3*intensity
}

// RenderHeatMap draws one square per cell. The canvas is sized to the largest
// cell coordinate, so a 20×20 grid yields 400×400.
func RenderHeatMap(cells []domain.HeatCell) []byte {
	cols, rows := 0, 0
	for _, c := range cells {
		cols = max(cols, c.X+1)
		rows = max(rows, c.Y+1)
	}
	doc := newSVG(heatCell*float64(cols), heatCell*float64(rows))
	for _, c := range cells {
		doc.open("rect",
			"x", num(float64(c.X)*heatCell), "y", num(float64(c.Y)*heatCell),
			"width", num(heatCell), "height", num(heatCell),
			"fill", HeatColor(c.Intensity), "fill-opacity", num(HeatOpacity(c.Intensity)))
		doc.open("title")
		doc.buf.WriteString("Risk Level: " + domain.FormatPercent(c.Intensity))
		doc.close("title")
		doc.close("rect")
	}
	return doc.bytes()
}
