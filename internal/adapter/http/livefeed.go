package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/couchcryptid/wildfire-watch/internal/domain"
	"github.com/couchcryptid/wildfire-watch/internal/overlay"
)

// liveDetection is a detection with its display strings.
type liveDetection struct {
	domain.Detection
	Label             string `json:"label"`
	ConfidencePercent string `json:"confidence_percent"`
}

type liveFeedResponse struct {
	Active       bool            `json:"active"`
	Current      []liveDetection `json:"current"`
	RecentAlerts []liveDetection `json:"recent_alerts"`
}

func toLive(ds []domain.Detection) []liveDetection {
	out := make([]liveDetection, len(ds))
	for i, d := range ds {
		out[i] = liveDetection{Detection: d, Label: d.OverlayLabel(), ConfidencePercent: d.ConfidencePercent()}
	}
	return out
}

func (s *Server) liveFeed() liveFeedResponse {
	sim := s.deps.Simulator
	return liveFeedResponse{
		Active:       sim.Active(),
		Current:      toLive(sim.Current()),
		RecentAlerts: toLive(sim.Recent()),
	}
}

func (s *Server) handleLiveFeed(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.liveFeed())
}

func (s *Server) handleStartFeed(w http.ResponseWriter, r *http.Request) {
	// The feed runs until stopped, not until this request ends.
	s.deps.Simulator.Start(context.WithoutCancel(r.Context()))
	s.logger.Info("live detection started")
	writeJSON(w, http.StatusOK, s.liveFeed())
}

func (s *Server) handleStopFeed(w http.ResponseWriter, _ *http.Request) {
	s.deps.Simulator.Stop()
	s.logger.Info("live detection stopped")
	writeJSON(w, http.StatusOK, s.liveFeed())
}

func (s *Server) handleOverlaySVG(w http.ResponseWriter, r *http.Request) {
	b, err := overlay.SVG(s.deps.Simulator.Current())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeBytes(w, "image/svg+xml", b)
}

func (s *Server) handleOverlayPNG(w http.ResponseWriter, r *http.Request) {
	b, err := overlay.PNG(s.deps.Simulator.Current())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeBytes(w, "image/png", b)
}

// handleStream pushes alert events as server-sent events until the client
// disconnects or the stream is closed.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	rc := http.NewResponseController(w)
	// Not every writer supports deadlines; the stream still works without.
	_ = rc.SetWriteDeadline(time.Time{})

	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	id, events := s.deps.Stream.Subscribe()
	defer s.deps.Stream.Unsubscribe(id)
	s.logger.Info("stream client connected", "client_id", id, "remote_addr", r.RemoteAddr)
	defer s.logger.Info("stream client disconnected", "client_id", id)

	if err := writeEvent(w, rc, "connected", "", map[string]int{"client_id": id}); err != nil {
		return
	}

	heartbeat := s.deps.Clock.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if err := writeEvent(w, rc, "alert", ev.ID, ev); err != nil {
				s.logger.Debug("stream write failed", "client_id", id, "error", err)
				return
			}
		case <-heartbeat.Chan():
			if _, err := fmt.Fprint(w, ": heartbeat\n\n"); err != nil {
				return
			}
			if err := rc.Flush(); err != nil {
				return
			}
		}
	}
}

func writeEvent(w http.ResponseWriter, rc *http.ResponseController, event, id string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event, err)
	}
	if id != "" {
		if _, err := fmt.Fprintf(w, "id: %s\n", id); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	return rc.Flush()
}
