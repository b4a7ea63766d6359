package http

import (
	"net/http"

	"github.com/couchcryptid/wildfire-watch/internal/domain"
)

type dashboardResponse struct {
	Cameras []domain.Camera     `json:"cameras"`
	Counts  domain.StatusCounts `json:"counts"`
}

func (s *Server) handleDashboard(w http.ResponseWriter, _ *http.Request) {
	cams := s.deps.Board.Cameras()
	writeJSON(w, http.StatusOK, dashboardResponse{Cameras: cams, Counts: domain.CountByStatus(cams)})
}

func (s *Server) handleListCameras(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.deps.Board.Cameras())
}

func (s *Server) handleGetCamera(w http.ResponseWriter, r *http.Request) {
	cam, err := s.deps.Board.Camera(r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cam)
}

func (s *Server) handleGetCameraSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.deps.Board.CameraSettings(r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (s *Server) handleUpdateCameraSettings(w http.ResponseWriter, r *http.Request) {
	var in domain.CameraSettings
	if err := decodeJSON(w, r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}
	settings, err := s.deps.Board.UpdateCameraSettings(r.PathValue("id"), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (s *Server) handleRestartCamera(w http.ResponseWriter, r *http.Request) {
	cam, err := s.deps.Board.RestartCamera(r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusAccepted, cam)
}

func (s *Server) handleFactoryReset(w http.ResponseWriter, r *http.Request) {
	settings, err := s.deps.Board.FactoryReset(r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (s *Server) handleGetSettings(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.deps.Board.UserSettings())
}

func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var in domain.UserSettings
	if err := decodeJSON(w, r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}
	settings, err := s.deps.Board.UpdateUserSettings(in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}
