package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/BenedictusDevin/ai-copilot/internal/api/middleware"
	"github.com/BenedictusDevin/ai-copilot/internal/api/response"
	"github.com/BenedictusDevin/ai-copilot/internal/domain"
	"github.com/BenedictusDevin/ai-copilot/internal/llm"
	"github.com/BenedictusDevin/ai-copilot/internal/service"
)

// ChatHandler handles the multi-turn chat endpoints
type ChatHandler struct {
	chat    *service.ChatService
	catalog domain.ModelCatalog
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chat *service.ChatService, catalog domain.ModelCatalog) *ChatHandler {
	return &ChatHandler{chat: chat, catalog: catalog}
}

type sendRequest struct {
	Message string `json:"message" validate:"required"`
}

// Send runs one chat turn for the logged-in user
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	state, ok := middleware.GetState(r.Context())
	if !ok {
		response.Unauthorized(w, "login required")
		return
	}

	var input sendRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, "message is required")
		return
	}

	modelID, ok := h.catalog.Resolve(state.ModelLabel)
	if !ok {
		response.BadRequest(w, "unknown model: "+state.ModelLabel)
		return
	}

	reply, err := h.chat.Send(r.Context(), state.Credentials.Name, input.Message, modelID, state.Credentials.APIKey)
	if err != nil {
		var cErr *llm.CompletionError
		if errors.As(err, &cErr) {
			response.BadGateway(w, cErr.Error())
			return
		}
		response.InternalError(w, err.Error())
		return
	}

	response.OK(w, map[string]any{
		"reply": reply,
	})
}

// Transcript returns the logged-in user's conversation so far
func (h *ChatHandler) Transcript(w http.ResponseWriter, r *http.Request) {
	state, ok := middleware.GetState(r.Context())
	if !ok {
		response.Unauthorized(w, "login required")
		return
	}

	response.OK(w, map[string]any{
		"user":  state.Credentials.Name,
		"turns": h.chat.Transcript(state.Credentials.Name),
	})
}
