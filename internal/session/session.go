package session

import (
	"sync"

	"github.com/BenedictusDevin/ai-copilot/internal/domain"
)

// State is a point-in-time snapshot of the unlocked session.
type State struct {
	Credentials domain.Credentials
	ModelLabel  string
}

// Session holds the process-wide login state: credentials validated by the
// gate and the currently selected model label. The service is single-user,
// so one session object covers the whole process.
type Session struct {
	mu       sync.RWMutex
	unlocked bool
	creds    domain.Credentials
	model    string
}

// New creates a locked session with the given default model label.
func New(defaultModel string) *Session {
	return &Session{model: defaultModel}
}

// Unlock stores validated credentials and opens the rest of the API.
func (s *Session) Unlock(creds domain.Credentials) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = creds
	s.unlocked = true
}

// Current returns the session state, or false while still locked.
func (s *Session) Current() (State, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.unlocked {
		return State{}, false
	}
	return State{Credentials: s.creds, ModelLabel: s.model}, true
}

// SelectModel switches the active model label.
func (s *Session) SelectModel(label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.model = label
}
