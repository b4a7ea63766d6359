// Package http serves the dashboard view models, live-feed stream, chart
// renderings, and health endpoints.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/couchcryptid/wildfire-watch/internal/assistant"
	"github.com/couchcryptid/wildfire-watch/internal/chart"
	"github.com/couchcryptid/wildfire-watch/internal/domain"
	"github.com/couchcryptid/wildfire-watch/internal/observability"
)

// Board is the in-memory record store behind the dashboard pages.
type Board interface {
	Cameras() []domain.Camera
	Camera(id string) (domain.Camera, error)
	CameraSettings(id string) (domain.CameraSettings, error)
	UpdateCameraSettings(id string, s domain.CameraSettings) (domain.CameraSettings, error)
	RestartCamera(id string) (domain.Camera, error)
	FactoryReset(id string) (domain.CameraSettings, error)
	UserSettings() domain.UserSettings
	UpdateUserSettings(s domain.UserSettings) (domain.UserSettings, error)

	Incidents() []domain.Incident
	CreateIncident(in domain.IncidentInput) (domain.Incident, error)
	Reports() []domain.Report
	SubmitReport(in domain.ReportInput) (domain.Report, error)
	UpvoteReport(id string) (domain.Report, error)
	Alerts() []domain.Alert

	RunAction(name string) (domain.ActionRun, error)
	Action(id string) (domain.ActionRun, error)
}

// Simulator controls the live detection feed.
type Simulator interface {
	Start(ctx context.Context)
	Stop()
	Active() bool
	Current() []domain.Detection
	Recent() []domain.Detection
}

// Stream hands out live alert subscriptions.
type Stream interface {
	Subscribe() (int, <-chan domain.AlertEvent)
	Unsubscribe(id int)
}

// Assistant answers chat messages.
type Assistant interface {
	Greeting() assistant.Message
	Reply(ctx context.Context, text string) (assistant.Message, error)
}

// Rand is the source of uniform [0, 1) draws for the random chart series.
// It must be safe for concurrent use.
type Rand interface {
	Float64() float64
}

// Deps are the collaborators the HTTP surface serves from.
type Deps struct {
	Board     Board
	Simulator Simulator
	Stream    Stream
	Assistant Assistant
	Ready     sharedobs.ReadinessChecker
	Charts    *chart.Cache
	Rand      Rand
	Clock     clockwork.Clock
	Metrics   *observability.Metrics

	// SubmitRate and SubmitBurst throttle form submissions. A zero rate
	// disables throttling.
	SubmitRate  rate.Limit
	SubmitBurst int
}

const heartbeatInterval = 15 * time.Second

// Server exposes the dashboard API plus health, readiness, and metrics.
type Server struct {
	httpServer *http.Server
	deps       Deps
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewServer creates an HTTP server with every route registered.
func NewServer(addr string, deps Deps, logger *slog.Logger) *Server {
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}
	if deps.SubmitRate == 0 {
		deps.SubmitRate = rate.Inf
	}
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		deps:    deps,
		limiter: rate.NewLimiter(deps.SubmitRate, deps.SubmitBurst),
		logger:  logger,
	}

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(deps.Ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	s.route(mux, "GET /api/dashboard", s.handleDashboard)

	s.route(mux, "GET /api/cameras", s.handleListCameras)
	s.route(mux, "GET /api/cameras/{id}", s.handleGetCamera)
	s.route(mux, "GET /api/cameras/{id}/settings", s.handleGetCameraSettings)
	s.route(mux, "PUT /api/cameras/{id}/settings", s.handleUpdateCameraSettings)
	s.route(mux, "POST /api/cameras/{id}/restart", s.handleRestartCamera)
	s.route(mux, "POST /api/cameras/{id}/factory-reset", s.handleFactoryReset)

	s.route(mux, "GET /api/live-feed", s.handleLiveFeed)
	s.route(mux, "POST /api/live-feed/start", s.handleStartFeed)
	s.route(mux, "POST /api/live-feed/stop", s.handleStopFeed)
	s.route(mux, "GET /api/live-feed/overlay.svg", s.handleOverlaySVG)
	s.route(mux, "GET /api/live-feed/overlay.png", s.handleOverlayPNG)
	// Streams outlive the request histogram and the write timeout.
	mux.HandleFunc("GET /api/live-feed/stream", s.handleStream)

	s.route(mux, "GET /api/map/locations", s.handleLocations)
	s.route(mux, "GET /api/weather", s.handleWeather)

	s.route(mux, "GET /api/analytics", s.handleAnalytics)
	s.route(mux, "GET /api/charts/{file}", s.handleChart)

	s.route(mux, "GET /api/emergency/incidents", s.handleListIncidents)
	s.route(mux, "POST /api/emergency/incidents", s.throttle("incident", s.handleCreateIncident))
	s.route(mux, "GET /api/emergency/resources", s.handleResources)
	s.route(mux, "GET /api/emergency/contacts", s.handleContacts)

	s.route(mux, "GET /api/public/reports", s.handleListReports)
	s.route(mux, "POST /api/public/reports", s.throttle("report", s.handleSubmitReport))
	s.route(mux, "POST /api/public/reports/{id}/upvote", s.handleUpvoteReport)

	s.route(mux, "GET /api/alerts", s.handleAlerts)
	s.route(mux, "POST /api/actions/{name}", s.handleRunAction)
	s.route(mux, "GET /api/actions/{id}", s.handleGetAction)

	s.route(mux, "GET /api/assistant/messages", s.handleAssistantHistory)
	s.route(mux, "POST /api/assistant/messages", s.throttle("assistant", s.handleAssistantMessage))
	s.route(mux, "GET /api/settings", s.handleGetSettings)
	s.route(mux, "PUT /api/settings", s.handleUpdateSettings)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}
