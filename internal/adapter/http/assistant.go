package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/couchcryptid/wildfire-watch/internal/assistant"
)

type assistantRequest struct {
	Content string `json:"content"`
}

type assistantResponse struct {
	Message assistant.Message `json:"message"`
	Reply   assistant.Message `json:"reply"`
}

// handleAssistantHistory returns the opening of a chat. Conversations are not
// stored, so it holds only the greeting.
func (s *Server) handleAssistantHistory(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, []assistant.Message{s.deps.Assistant.Greeting()})
}

func (s *Server) handleAssistantMessage(w http.ResponseWriter, r *http.Request) {
	var in assistantRequest
	if err := decodeJSON(w, r, &in); err != nil {
		s.recordSubmission("assistant", err)
		s.writeError(w, r, err)
		return
	}

	msg := assistant.Message{
		ID:        uuid.NewString(),
		Role:      assistant.RoleUser,
		Content:   in.Content,
		Timestamp: s.deps.Clock.Now(),
	}
	reply, err := s.deps.Assistant.Reply(r.Context(), in.Content)
	s.recordSubmission("assistant", err)
	if err != nil {
		if r.Context().Err() != nil {
			return
		}
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, assistantResponse{Message: msg, Reply: reply})
}
