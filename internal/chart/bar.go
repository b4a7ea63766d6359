package chart

import (
	"strconv"

	"github.com/couchcryptid/wildfire-watch/internal/domain"
)

const (
	barMaxHeight = 200.0
	barWidth     = 20.0
	barSlot      = 30.0
	barColor     = "#3b82f6"
)

// Bar is one labelled value of a bar chart.
type Bar struct {
	Label string
	Value float64
}

// HourlyBars labels each hourly count "H:00".
func HourlyBars(counts []domain.HourlyCount) []Bar {
	bars := make([]Bar, len(counts))
	for i, c := range counts {
		bars[i] = Bar{Label: strconv.Itoa(c.Hour) + ":00", Value: c.Detections}
	}
	return bars
}

// BarHeights scales each value to value/max × 200. It returns nil when there
// is nothing to draw, including when the maximum is not positive.
func BarHeights(bars []Bar) []float64 {
	maxV := 0.0
	for _, b := range bars {
		if b.Value > maxV {
			maxV = b.Value
		}
	}
	if maxV <= 0 {
		return nil
	}
	heights := make([]float64, len(bars))
	for i, b := range bars {
		heights[i] = b.Value / maxV * barMaxHeight
	}
	return heights
}

// RenderBar draws the bars left to right with their labels underneath.
func RenderBar(bars []Bar) []byte {
	width := barSlot * float64(max(len(bars), 1))
	doc := newSVG(width, barMaxHeight+20)

	heights := BarHeights(bars)
	for i, h := range heights {
		x := float64(i)*barSlot + (barSlot-barWidth)/2
		doc.elem("rect",
			"x", num(x), "y", num(barMaxHeight-h),
			"width", num(barWidth), "height", num(h),
			"fill", barColor)
	}
	if heights != nil {
		for i, b := range bars {
			doc.text(b.Label,
				"x", num(float64(i)*barSlot+barSlot/2), "y", num(barMaxHeight+15),
				"font-size", "8", "text-anchor", "middle")
		}
	}
	return doc.bytes()
}
