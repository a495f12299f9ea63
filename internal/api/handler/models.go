package handler

import (
	"encoding/json"
	"net/http"

	"github.com/BenedictusDevin/ai-copilot/internal/api/middleware"
	"github.com/BenedictusDevin/ai-copilot/internal/api/response"
	"github.com/BenedictusDevin/ai-copilot/internal/domain"
	"github.com/BenedictusDevin/ai-copilot/internal/session"
)

// ModelsHandler handles model catalog endpoints
type ModelsHandler struct {
	catalog domain.ModelCatalog
	session *session.Session
}

// NewModelsHandler creates a new models handler
func NewModelsHandler(catalog domain.ModelCatalog, session *session.Session) *ModelsHandler {
	return &ModelsHandler{catalog: catalog, session: session}
}

// List returns the model catalog and the currently selected label
func (h *ModelsHandler) List(w http.ResponseWriter, r *http.Request) {
	state, _ := middleware.GetState(r.Context())

	models := make([]map[string]any, 0, len(h.catalog))
	for _, label := range h.catalog.Labels() {
		id, _ := h.catalog.Resolve(label)
		models = append(models, map[string]any{
			"label":    label,
			"id":       id,
			"selected": label == state.ModelLabel,
		})
	}

	response.OK(w, map[string]any{
		"models":   models,
		"selected": state.ModelLabel,
	})
}

type selectModelRequest struct {
	Model string `json:"model" validate:"required"`
}

// Select switches the active model by display label
func (h *ModelsHandler) Select(w http.ResponseWriter, r *http.Request) {
	var input selectModelRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, "model is required")
		return
	}

	if _, ok := h.catalog.Resolve(input.Model); !ok {
		response.BadRequest(w, "unknown model: "+input.Model)
		return
	}

	h.session.SelectModel(input.Model)
	response.OK(w, map[string]string{"selected": input.Model})
}
