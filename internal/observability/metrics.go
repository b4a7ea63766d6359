// Package observability defines the Prometheus metrics of the service.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "wildfire_watch"

// Metrics holds the Prometheus counters, histograms, and gauges for the
// simulator, the alert pipeline and the HTTP surface.
type Metrics struct {
	// Simulator.
	DetectionsGenerated *prometheus.CounterVec // labels: type={fire,smoke}
	DetectionsDropped   prometheus.Counter
	SimulatorActive     prometheus.Gauge

	// Alert pipeline.
	DetectionsConsumed      prometheus.Counter
	AlertsDelivered         prometheus.Counter
	TransformErrors         prometheus.Counter
	PipelineRunning         prometheus.Gauge
	BatchSize               prometheus.Histogram
	BatchProcessingDuration prometheus.Histogram

	// Live feed subscribers.
	StreamSubscribers prometheus.Gauge
	StreamDropped     prometheus.Counter

	// Charts.
	ChartRenders *prometheus.CounterVec // labels: chart, format={svg,png}
	ChartCache   *prometheus.CounterVec // labels: result={hit,miss}

	// Form submissions.
	Submissions         *prometheus.CounterVec // labels: kind={incident,report,assistant}, outcome={accepted,invalid,throttled}
	HTTPRequestDuration *prometheus.HistogramVec
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(m.collectors()...)
	return m
}

// NewMetricsForTesting creates Metrics that are not registered anywhere, so
// tests can build as many as they like.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		DetectionsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "detections_generated_total",
			Help:      "Simulated detections by type.",
		}, []string{"type"}),
		DetectionsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "detections_dropped_total",
			Help:      "Detections dropped because the pipeline channel was full.",
		}),
		SimulatorActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "simulator_active",
			Help:      "1 while the live-feed simulator is ticking.",
		}),
		DetectionsConsumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "detections_consumed_total",
			Help:      "Detections read by the alert pipeline.",
		}),
		AlertsDelivered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_delivered_total",
			Help:      "Alert events loaded into every sink.",
		}),
		TransformErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transform_errors_total",
			Help:      "Detections rejected during enrichment.",
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pipeline_running",
			Help:      "1 when the pipeline is active, 0 when shut down.",
		}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_size",
			Help:      "Detections per pipeline batch.",
			Buckets:   []float64{1, 2, 5, 10, 20, 50},
		}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_processing_duration_seconds",
			Help:      "Duration of a complete batch extract-transform-load cycle.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
		StreamSubscribers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stream_subscribers",
			Help:      "Connected live-feed stream clients.",
		}),
		StreamDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stream_dropped_total",
			Help:      "Alert events skipped for slow stream clients.",
		}),
		ChartRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chart_renders_total",
			Help:      "Chart renderings by chart and format.",
		}, []string{"chart", "format"}),
		ChartCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chart_cache_total",
			Help:      "Chart cache lookups by result.",
		}, []string{"result"}),
		Submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Form submissions by kind and outcome.",
		}, []string{"kind", "outcome"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.DetectionsGenerated,
		m.DetectionsDropped,
		m.SimulatorActive,
		m.DetectionsConsumed,
		m.AlertsDelivered,
		m.TransformErrors,
		m.PipelineRunning,
		m.BatchSize,
		m.BatchProcessingDuration,
		m.StreamSubscribers,
		m.StreamDropped,
		m.ChartRenders,
		m.ChartCache,
		m.Submissions,
		m.HTTPRequestDuration,
	}
}
