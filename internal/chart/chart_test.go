package chart

import (
	"bytes"
	"encoding/xml"
	"errors"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/wildfire-watch/internal/domain"
	"github.com/couchcryptid/wildfire-watch/internal/observability"
)

// wellFormed fails the test if doc is not parseable XML.
func wellFormed(t *testing.T, doc []byte) {
	t.Helper()
	dec := xml.NewDecoder(bytes.NewReader(doc))
	for {
		_, err := dec.Token()
		if err != nil {
			require.ErrorContains(t, err, "EOF")
			return
		}
	}
}

func countTag(doc []byte, tag string) int {
	return strings.Count(string(doc), "<"+tag+" ")
}

var distribution = []domain.Slice{
	{Name: "Fire", Value: 687, Color: "#ef4444"},
	{Name: "Smoke", Value: 487, Color: "#f97316"},
	{Name: "False Positive", Value: 73, Color: "#6b7280"},
}

func TestBarHeights(t *testing.T) {
	got := BarHeights([]Bar{{Value: 10}, {Value: 40}, {Value: 20}})
	want := []float64{50, 200, 100}
	assert.Empty(t, cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)))

	assert.Nil(t, BarHeights(nil))
	assert.Nil(t, BarHeights([]Bar{{Value: 0}, {Value: 0}}))
}

func TestHourlyBars_Labels(t *testing.T) {
	bars := HourlyBars([]domain.HourlyCount{{Hour: 0, Detections: 12}, {Hour: 13, Detections: 40}})
	assert.Equal(t, []Bar{{Label: "0:00", Value: 12}, {Label: "13:00", Value: 40}}, bars)
}

func TestRenderBar(t *testing.T) {
	doc := RenderBar([]Bar{{Label: "0:00", Value: 10}, {Label: "1:00", Value: 40}})
	wellFormed(t, doc)

	assert.Equal(t, 2, countTag(doc, "rect"))
	assert.Contains(t, string(doc), `width="20" height="50"`)
	assert.Contains(t, string(doc), `y="0" width="20" height="200"`)
	assert.Contains(t, string(doc), ">1:00</text>")
}

func TestRenderBar_NothingToDraw(t *testing.T) {
	for name, bars := range map[string][]Bar{
		"empty":    nil,
		"zero max": {{Label: "a", Value: 0}},
	} {
		t.Run(name, func(t *testing.T) {
			doc := RenderBar(bars)
			wellFormed(t, doc)
			assert.Zero(t, countTag(doc, "rect"))
			assert.True(t, strings.HasPrefix(string(doc), "<svg "))
		})
	}
}

func TestLinePoints(t *testing.T) {
	got := LinePoints([]float64{0, 15, 30}, 0)
	want := []Point{{0, 200}, {200, 100}, {400, 0}}
	assert.Empty(t, cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)))

	single := LinePoints([]float64{12}, 30)
	require.Len(t, single, 1)
	assert.Zero(t, single[0].X)
	assert.InDelta(t, 120, single[0].Y, 1e-9)

	scaled := LinePoints([]float64{50}, 100)
	assert.InDelta(t, 100, scaled[0].Y, 1e-9)
}

func TestRenderTrends(t *testing.T) {
	points := []domain.TrendPoint{
		{Date: "Jan 20", Fires: 12, Smoke: 8},
		{Date: "Jan 21", Fires: 15, Smoke: 12},
		{Date: "Jan 22", Fires: 8, Smoke: 6},
	}
	doc := RenderTrends(points, 30)
	wellFormed(t, doc)

	s := string(doc)
	assert.Contains(t, s, `viewBox="0 0 400 200"`)
	assert.Equal(t, 5, countTag(doc, "line"))
	assert.Equal(t, 2, countTag(doc, "polyline"))
	assert.Equal(t, 6, countTag(doc, "circle"))
	assert.Contains(t, s, `points="0,120 200,100 400,146.67"`)
	assert.Contains(t, s, `stroke="#ef4444"`)
	assert.Contains(t, s, `stroke="#f97316"`)
	assert.Contains(t, s, `r="3"`)
}

func TestRenderTrends_Empty(t *testing.T) {
	doc := RenderTrends(nil, 30)
	wellFormed(t, doc)
	assert.Zero(t, countTag(doc, "polyline"))
	assert.Zero(t, countTag(doc, "circle"))
}

func TestPieWedges(t *testing.T) {
	wedges := PieWedges([]domain.Slice{
		{Name: "a", Value: 25, Color: "#111111"},
		{Name: "b", Value: 25, Color: "#222222"},
		{Name: "c", Value: 50, Color: "#333333"},
	})
	require.Len(t, wedges, 3)

	assert.InDelta(t, 25, wedges[0].Percent, 1e-9)
	assert.InDelta(t, 0, wedges[0].Offset, 1e-9)
	assert.InDelta(t, -25, wedges[1].Offset, 1e-9)
	assert.InDelta(t, -50, wedges[2].Offset, 1e-9)
	assert.Equal(t, "50 50", wedges[2].DashArray())
	assert.Equal(t, "25 75", wedges[0].DashArray())

	assert.Nil(t, PieWedges(nil))
	assert.Nil(t, PieWedges([]domain.Slice{{Name: "z", Value: 0}}))
}

func TestRenderPie(t *testing.T) {
	doc := RenderPie(distribution)
	wellFormed(t, doc)

	s := string(doc)
	assert.Contains(t, s, `r="15.915"`)
	assert.Contains(t, s, `stroke-dasharray="55.09 44.91"`)
	assert.Contains(t, s, ">1247</text>")
	assert.Contains(t, s, ">Fire: 687</text>")
	assert.Contains(t, s, ">False Positive: 73</text>")
}

func TestRenderPie_ZeroTotalDrawsNoWedges(t *testing.T) {
	doc := RenderPie([]domain.Slice{{Name: "Fire", Value: 0, Color: "#ef4444"}})
	wellFormed(t, doc)
	assert.NotContains(t, string(doc), "stroke-dasharray")
	assert.Contains(t, string(doc), ">Fire: 0</text>")
}

func TestHeatColor(t *testing.T) {
	tests := []struct {
		intensity float64
		expected  string
	}{
		{0.95, "#dc2626"},
		{0.8, "#ea580c"},
		{0.61, "#ea580c"},
		{0.5, "#facc15"},
		{0.3, "#65a30d"},
		{0.2, "#16a34a"},
		{0, "#16a34a"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, HeatColor(tt.intensity), "intensity %v", tt.intensity)
	}
	assert.InDelta(t, 0.7, HeatOpacity(0), 1e-9)
	assert.InDelta(t, 1.0, HeatOpacity(1), 1e-9)
}

func TestRenderHeatMap(t *testing.T) {
	cells := make([]domain.HeatCell, 0, 400)
	for x := range 20 {
		for y := range 20 {
			cells = append(cells, domain.HeatCell{X: x, Y: y, Intensity: 0.9})
		}
	}
	doc := RenderHeatMap(cells)
	wellFormed(t, doc)

	assert.Contains(t, string(doc), `viewBox="0 0 400 400"`)
	assert.Equal(t, 400, countTag(doc, "rect"))
	assert.Contains(t, string(doc), `fill-opacity="0.97"`)
	assert.Contains(t, string(doc), "Risk Level: 90.0%")
}

func TestPNGRenderers(t *testing.T) {
	t.Run("trends", func(t *testing.T) {
		b, err := TrendsPNG([]domain.TrendPoint{{Date: "Jan 20", Fires: 12, Smoke: 8}}, 30)
		require.NoError(t, err)
		_, err = png.Decode(bytes.NewReader(b))
		require.NoError(t, err)
	})
	t.Run("bar", func(t *testing.T) {
		b, err := BarPNG("Detections by hour", []Bar{{Label: "0:00", Value: 3}, {Label: "1:00", Value: 9}})
		require.NoError(t, err)
		_, err = png.Decode(bytes.NewReader(b))
		require.NoError(t, err)
	})
	t.Run("pie", func(t *testing.T) {
		b, err := PiePNG(distribution)
		require.NoError(t, err)
		_, err = png.Decode(bytes.NewReader(b))
		require.NoError(t, err)
	})
	t.Run("no data", func(t *testing.T) {
		_, err := TrendsPNG(nil, 30)
		assert.ErrorIs(t, err, ErrNoData)
		_, err = BarPNG("x", []Bar{{Value: 0}})
		assert.ErrorIs(t, err, ErrNoData)
		_, err = PiePNG(nil)
		assert.ErrorIs(t, err, ErrNoData)
	})
}

func TestCache_GetOrRender(t *testing.T) {
	c := NewCache(time.Minute, observability.NewMetricsForTesting())
	calls := 0
	render := func() ([]byte, error) {
		calls++
		return []byte("<svg/>"), nil
	}

	first, err := c.GetOrRender("hourly.svg", render)
	require.NoError(t, err)
	second, err := c.GetOrRender("hourly.svg", render)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)

	c.Delete("hourly.svg")
	_, err = c.GetOrRender("hourly.svg", render)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestMemo_ReusesValueUntilDeleted(t *testing.T) {
	c := NewCache(time.Minute, observability.NewMetricsForTesting())
	n := 0
	gen := func() []int {
		n++
		return []int{n}
	}

	assert.Equal(t, []int{1}, Memo(c, "series", gen))
	assert.Equal(t, []int{1}, Memo(c, "series", gen))

	c.Delete("series")
	assert.Equal(t, []int{2}, Memo(c, "series", gen))
}

func TestCache_DoesNotCacheErrors(t *testing.T) {
	c := NewCache(time.Minute, observability.NewMetricsForTesting())
	boom := errors.New("boom")
	calls := 0

	for range 2 {
		_, err := c.GetOrRender("k", func() ([]byte, error) {
			calls++
			return nil, boom
		})
		assert.ErrorIs(t, err, boom)
	}
	assert.Equal(t, 2, calls)
}
