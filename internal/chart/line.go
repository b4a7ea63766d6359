package chart

import (
	"strings"

	"github.com/couchcryptid/wildfire-watch/internal/domain"
)

const (
	lineWidth   = 400.0
	lineHeight  = 200.0
	defaultYMax = 30.0

	FireColor  = "#ef4444"
	SmokeColor = "#f97316"
)

// Point is an SVG coordinate.
type Point struct {
	X, Y float64
}

// LinePoints maps values onto the 400×200 canvas: x = i/(n-1) × 400 and
// y = 200 - v/yMax × 200. A single value sits at x = 0. yMax <= 0 means 30.
func LinePoints(values []float64, yMax float64) []Point {
	if yMax <= 0 {
		yMax = defaultYMax
	}
	pts := make([]Point, len(values))
	for i, v := range values {
		x := 0.0
		if len(values) > 1 {
			x = float64(i) / float64(len(values)-1) * lineWidth
		}
		pts[i] = Point{X: x, Y: lineHeight - v/yMax*lineHeight}
	}
	return pts
}

// RenderTrends draws the fire and smoke series of the detection trend.
func RenderTrends(points []domain.TrendPoint, yMax float64) []byte {
	fires := make([]float64, len(points))
	smoke := make([]float64, len(points))
	for i, p := range points {
		fires[i] = p.Fires
		smoke[i] = p.Smoke
	}
	return RenderLine(yMax,
		Series{Name: "Fire Detections", Color: FireColor, Values: fires},
		Series{Name: "Smoke Detections", Color: SmokeColor, Values: smoke},
	)
}

// Series is a named, coloured line.
type Series struct {
	Name   string
	Color  string
	Values []float64
}

// RenderLine draws five horizontal grid lines, then each series as a polyline
// with an r=3 marker on every sample.
func RenderLine(yMax float64, series ...Series) []byte {
	doc := newSVG(lineWidth, lineHeight)
	for i := range 5 {
		y := num(float64(i) * 40)
		doc.elem("line", "x1", "0", "y1", y, "x2", num(lineWidth), "y2", y,
			"stroke", "#e5e7eb", "stroke-width", "1")
	}

	for _, s := range series {
		if len(s.Values) == 0 {
			continue
		}
		pts := LinePoints(s.Values, yMax)
		coords := make([]string, len(pts))
		for i, p := range pts {
			coords[i] = num(p.X) + "," + num(p.Y)
		}
		doc.elem("polyline", "fill", "none", "stroke", s.Color, "stroke-width", "2",
			"points", strings.Join(coords, " "))
		for _, p := range pts {
			doc.elem("circle", "cx", num(p.X), "cy", num(p.Y), "r", "3", "fill", s.Color)
		}
	}
	return doc.bytes()
}
