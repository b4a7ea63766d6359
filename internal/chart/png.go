package chart

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/couchcryptid/wildfire-watch/internal/domain"
)

// ErrNoData is returned by the PNG renderers when there is nothing to plot.
// The raster backend cannot draw an empty or zero-range chart.
var ErrNoData = errors.New("no data to plot")

const (
	pngWidth  = 800
	pngHeight = 400
)

func hexColor(c string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(c, "#"))
}

func seriesStyle(c string) gochart.Style {
	col := hexColor(c)
	return gochart.Style{
		StrokeColor: col,
		StrokeWidth: 2,
		DotColor:    col,
		DotWidth:    3,
	}
}

// TrendsPNG plots the fire and smoke series against day labels with a fixed
// y range of 0..yMax.
func TrendsPNG(points []domain.TrendPoint, yMax float64) ([]byte, error) {
	if len(points) == 0 {
		return nil, ErrNoData
	}
	if yMax <= 0 {
		yMax = defaultYMax
	}

	xs := make([]float64, len(points))
	fires := make([]float64, len(points))
	smoke := make([]float64, len(points))
	ticks := make([]gochart.Tick, len(points))
	for i, p := range points {
		xs[i] = float64(i)
		fires[i] = p.Fires
		smoke[i] = p.Smoke
		ticks[i] = gochart.Tick{Value: float64(i), Label: p.Date}
	}
	// The backend needs a non-zero x range.
	if len(xs) == 1 {
		xs = append(xs, 1)
		fires = append(fires, fires[0])
		smoke = append(smoke, smoke[0])
	}

	ch := gochart.Chart{
		Width:      pngWidth,
		Height:     pngHeight,
		Background: gochart.Style{Padding: gochart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20}},
		XAxis:      gochart.XAxis{Ticks: ticks},
		YAxis:      gochart.YAxis{Name: "detections", Range: &gochart.ContinuousRange{Min: 0, Max: yMax}},
		Series: []gochart.Series{
			gochart.ContinuousSeries{Name: "Fire Detections", XValues: xs, YValues: fires, Style: seriesStyle(FireColor)},
			gochart.ContinuousSeries{Name: "Smoke Detections", XValues: xs, YValues: smoke, Style: seriesStyle(SmokeColor)},
		},
	}
	ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render trends png: %w", err)
	}
	return buf.Bytes(), nil
}

// BarPNG plots bars of width 20 in the blue used by the SVG renderer.
func BarPNG(title string, bars []Bar) ([]byte, error) {
	if BarHeights(bars) == nil {
		return nil, ErrNoData
	}

	values := make([]gochart.Value, len(bars))
	for i, b := range bars {
		values[i] = gochart.Value{
			Label: b.Label,
			Value: b.Value,
			Style: gochart.Style{FillColor: hexColor(barColor), StrokeColor: hexColor(barColor)},
		}
	}

	bc := gochart.BarChart{
		Title:      title,
		Width:      max(pngWidth, 80+len(bars)*int(barSlot)),
		Height:     pngHeight,
		BarWidth:   int(barWidth),
		BarSpacing: int(barSlot - barWidth),
		Background: gochart.Style{Padding: gochart.Box{Top: 40}},
		Bars:       values,
	}

	var buf bytes.Buffer
	if err := bc.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render bar png: %w", err)
	}
	return buf.Bytes(), nil
}

// PiePNG plots the distribution with each slice in its own colour.
func PiePNG(slices []domain.Slice) ([]byte, error) {
	if PieWedges(slices) == nil {
		return nil, ErrNoData
	}

	values := make([]gochart.Value, 0, len(slices))
	for _, s := range slices {
		if s.Value <= 0 {
			continue
		}
		values = append(values, gochart.Value{
			Label: fmt.Sprintf("%s: %s", s.Name, num(s.Value)),
			Value: s.Value,
			Style: gochart.Style{FillColor: hexColor(s.Color)},
		})
	}

	pc := gochart.PieChart{
		Width:  pngHeight,
		Height: pngHeight,
		Values: values,
	}

	var buf bytes.Buffer
	if err := pc.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render pie png: %w", err)
	}
	return buf.Bytes(), nil
}
