package handler

import (
	"net/http"

	"github.com/BenedictusDevin/ai-copilot/internal/api/response"
	"github.com/BenedictusDevin/ai-copilot/internal/domain"
	"github.com/BenedictusDevin/ai-copilot/internal/store"
)

// HistoryHandler serves the accumulated chat transcripts grouped by user
type HistoryHandler struct {
	store *store.TranscriptStore
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(store *store.TranscriptStore) *HistoryHandler {
	return &HistoryHandler{store: store}
}

type userHistory struct {
	User  string        `json:"user"`
	Turns []domain.Turn `json:"turns"`
}

// List returns every user's transcript, read-only
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	users := h.store.Users()

	histories := make([]userHistory, 0, len(users))
	for _, user := range users {
		histories = append(histories, userHistory{
			User:  user,
			Turns: h.store.Get(user),
		})
	}

	response.OK(w, map[string]any{
		"users": histories,
	})
}
