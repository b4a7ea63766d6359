package http

import (
	"net/http"

	"github.com/couchcryptid/wildfire-watch/internal/domain"
	"github.com/couchcryptid/wildfire-watch/internal/mockdata"
)

type incidentsResponse struct {
	Incidents []domain.Incident `json:"incidents"`
	Open      int               `json:"open"`
}

type resourcesResponse struct {
	Resources []domain.Resource     `json:"resources"`
	Counts    domain.ResourceCounts `json:"counts"`
}

func (s *Server) handleListIncidents(w http.ResponseWriter, _ *http.Request) {
	incs := s.deps.Board.Incidents()
	writeJSON(w, http.StatusOK, incidentsResponse{Incidents: incs, Open: domain.CountOpen(incs)})
}

func (s *Server) handleCreateIncident(w http.ResponseWriter, r *http.Request) {
	var in domain.IncidentInput
	if err := decodeJSON(w, r, &in); err != nil {
		s.recordSubmission("incident", err)
		s.writeError(w, r, err)
		return
	}
	inc, err := s.deps.Board.CreateIncident(in)
	s.recordSubmission("incident", err)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, inc)
}

func (s *Server) handleResources(w http.ResponseWriter, _ *http.Request) {
	res := mockdata.Resources()
	writeJSON(w, http.StatusOK, resourcesResponse{Resources: res, Counts: domain.CountResources(res)})
}

func (s *Server) handleContacts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, mockdata.Contacts())
}

func (s *Server) handleListReports(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.deps.Board.Reports())
}

func (s *Server) handleSubmitReport(w http.ResponseWriter, r *http.Request) {
	var in domain.ReportInput
	if err := decodeJSON(w, r, &in); err != nil {
		s.recordSubmission("report", err)
		s.writeError(w, r, err)
		return
	}
	rep, err := s.deps.Board.SubmitReport(in)
	s.recordSubmission("report", err)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rep)
}

func (s *Server) handleUpvoteReport(w http.ResponseWriter, r *http.Request) {
	rep, err := s.deps.Board.UpvoteReport(r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func (s *Server) handleAlerts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.deps.Board.Alerts())
}

func (s *Server) handleRunAction(w http.ResponseWriter, r *http.Request) {
	run, err := s.deps.Board.RunAction(r.PathValue("name"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	status := http.StatusOK
	if run.Status == domain.ActionRunning {
		status = http.StatusAccepted
	}
	writeJSON(w, status, run)
}

func (s *Server) handleGetAction(w http.ResponseWriter, r *http.Request) {
	run, err := s.deps.Board.Action(r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, run)
}
