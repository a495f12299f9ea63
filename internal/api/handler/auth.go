package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/BenedictusDevin/ai-copilot/internal/api/response"
	"github.com/BenedictusDevin/ai-copilot/internal/auth"
	"github.com/BenedictusDevin/ai-copilot/internal/session"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

var validate = validator.New()

// AuthHandler handles the login gate
type AuthHandler struct {
	gate    *auth.Gate
	session *session.Session
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(gate *auth.Gate, session *session.Session) *AuthHandler {
	return &AuthHandler{gate: gate, session: session}
}

type loginRequest struct {
	Name   string `json:"name"`
	Age    string `json:"age"`
	APIKey string `json:"api_key"`
}

// Login validates the credentials and unlocks the session. No tokens are
// issued; login state lives in the process.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input loginRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	creds, err := h.gate.Validate(input.Name, input.Age, input.APIKey)
	if err != nil {
		var vErr *auth.ValidationError
		if errors.As(err, &vErr) {
			response.BadRequest(w, map[string]string{
				"code":    string(vErr.Code),
				"message": vErr.Message,
			})
			return
		}
		response.BadRequest(w, err.Error())
		return
	}

	h.session.Unlock(creds)
	log.Info().Str("user", creds.Name).Msg("Session unlocked")

	response.OK(w, map[string]string{
		"name": creds.Name,
		"age":  creds.Age,
	})
}
