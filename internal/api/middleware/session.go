package middleware

import (
	"context"
	"net/http"

	"github.com/BenedictusDevin/ai-copilot/internal/api/response"
	"github.com/BenedictusDevin/ai-copilot/internal/session"
)

type contextKey string

const sessionStateKey contextKey = "sessionState"

// SessionGate blocks requests until the login gate has unlocked the session.
// There are no tokens involved: login state lives in the process.
type SessionGate struct {
	session *session.Session
}

// NewSessionGate creates a session gate middleware.
func NewSessionGate(s *session.Session) *SessionGate {
	return &SessionGate{session: s}
}

// Require rejects requests with 401 while the session is locked, and adds
// the session state to the request context otherwise.
func (m *SessionGate) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		state, ok := m.session.Current()
		if !ok {
			response.Unauthorized(w, "login required")
			return
		}

		ctx := context.WithValue(r.Context(), sessionStateKey, state)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetState gets the session state from context.
func GetState(ctx context.Context) (session.State, bool) {
	state, ok := ctx.Value(sessionStateKey).(session.State)
	return state, ok
}
