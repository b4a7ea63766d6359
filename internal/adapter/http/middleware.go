package http

import (
	"net/http"
	"time"
)

// route registers h under pattern and records its latency.
func (s *Server) route(mux *http.ServeMux, pattern string, h http.HandlerFunc) {
	hist := s.deps.Metrics.HTTPRequestDuration.WithLabelValues(pattern)
	mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		h(w, r)
		hist.Observe(time.Since(start).Seconds())
	})
}

// throttle rejects submissions beyond the configured rate with 429.
func (s *Server) throttle(kind string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			s.deps.Metrics.Submissions.WithLabelValues(kind, "throttled").Inc()
			s.logger.Warn("submission throttled", "kind", kind, "remote_addr", r.RemoteAddr)
			writeJSON(w, http.StatusTooManyRequests, errorBody{Error: "too many submissions, try again shortly"})
			return
		}
		h(w, r)
	}
}

// recordSubmission counts a form submission by outcome.
func (s *Server) recordSubmission(kind string, err error) {
	outcome := "accepted"
	if err != nil {
		outcome = "invalid"
	}
	s.deps.Metrics.Submissions.WithLabelValues(kind, outcome).Inc()
}
