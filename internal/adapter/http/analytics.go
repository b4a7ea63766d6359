package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/couchcryptid/wildfire-watch/internal/chart"
	"github.com/couchcryptid/wildfire-watch/internal/domain"
	"github.com/couchcryptid/wildfire-watch/internal/mockdata"
)

const defaultTimeRange = "7d"

type weatherResponse struct {
	Current    domain.Weather      `json:"current"`
	HeatMap    []domain.HeatCell   `json:"heat_map"`
	HourlyRisk []domain.HourlyRisk `json:"hourly_risk"`
}

type analyticsResponse struct {
	Range        string                  `json:"range"`
	Stats        domain.Stats            `json:"stats"`
	Trends       []domain.TrendPoint     `json:"trends"`
	Accuracy     []domain.CameraAccuracy `json:"accuracy"`
	Distribution []domain.Slice          `json:"distribution"`
	Hourly       []domain.HourlyCount    `json:"hourly"`
}

func (s *Server) handleLocations(w http.ResponseWriter, r *http.Request) {
	layer := r.URL.Query().Get("layer")
	writeJSON(w, http.StatusOK, domain.FilterLocations(mockdata.Locations(), layer))
}

func (s *Server) handleWeather(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, weatherResponse{
		Current:    mockdata.CurrentWeather(),
		HeatMap:    s.heatMap(),
		HourlyRisk: mockdata.HourlyRisk(s.deps.Rand, s.deps.Clock.Now()),
	})
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	rng := r.URL.Query().Get("range")
	if rng == "" {
		rng = defaultTimeRange
	}
	if !domain.ValidTimeRange(rng) {
		s.writeError(w, r, &domain.ValidationError{
			Reason: fmt.Sprintf("range must be one of %s", strings.Join(domain.TimeRanges, ", ")),
			Fields: []string{"range"},
		})
		return
	}
	writeJSON(w, http.StatusOK, analyticsResponse{
		Range:        rng,
		Stats:        mockdata.Stats(),
		Trends:       mockdata.Trends(),
		Accuracy:     mockdata.Accuracy(),
		Distribution: mockdata.Distribution(),
		Hourly:       s.hourlyPattern(),
	})
}

var chartContentTypes = map[string]string{
	"svg": "image/svg+xml",
	"png": "image/png",
}

// handleChart serves /api/charts/{name}.{svg|png}. Renderings are cached for
// the cache TTL.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	file := r.PathValue("file")
	name, format, _ := strings.Cut(file, ".")
	ct, ok := chartContentTypes[format]
	if !ok {
		s.writeError(w, r, fmt.Errorf("chart %s: %w", file, domain.ErrNotFound))
		return
	}
	render := s.chartRenderer(name, format)
	if render == nil {
		s.writeError(w, r, fmt.Errorf("chart %s: %w", file, domain.ErrNotFound))
		return
	}

	b, err := s.deps.Charts.GetOrRender(file, func() ([]byte, error) {
		s.deps.Metrics.ChartRenders.WithLabelValues(name, format).Inc()
		return render()
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeBytes(w, ct, b)
}

func (s *Server) chartRenderer(name, format string) func() ([]byte, error) {
	svg := func(f func() []byte) func() ([]byte, error) {
		return func() ([]byte, error) { return f(), nil }
	}

	switch name + "." + format {
	case "trends.svg":
		return svg(func() []byte { return chart.RenderTrends(mockdata.Trends(), 0) })
	case "trends.png":
		return func() ([]byte, error) { return chart.TrendsPNG(mockdata.Trends(), 0) }
	case "distribution.svg":
		return svg(func() []byte { return chart.RenderPie(mockdata.Distribution()) })
	case "distribution.png":
		return func() ([]byte, error) { return chart.PiePNG(mockdata.Distribution()) }
	case "hourly.svg":
		return svg(func() []byte { return chart.RenderBar(chart.HourlyBars(s.hourlyPattern())) })
	case "hourly.png":
		return func() ([]byte, error) {
			return chart.BarPNG("Detections by Hour", chart.HourlyBars(s.hourlyPattern()))
		}
	case "heatmap.svg":
		return svg(func() []byte { return chart.RenderHeatMap(s.heatMap()) })
	}
	return nil
}

// The random series are drawn once per cache TTL and shared by the JSON views
// and every chart format. A fresh draw evicts the charts rendered from the
// previous one.

func (s *Server) hourlyPattern() []domain.HourlyCount {
	return chart.Memo(s.deps.Charts, "series:hourly", func() []domain.HourlyCount {
		s.deps.Charts.Delete("hourly.svg", "hourly.png")
		return mockdata.HourlyPattern(s.deps.Rand)
	})
}

func (s *Server) heatMap() []domain.HeatCell {
	return chart.Memo(s.deps.Charts, "series:heatmap", func() []domain.HeatCell {
		s.deps.Charts.Delete("heatmap.svg")
		return mockdata.HeatMap(s.deps.Rand)
	})
}
