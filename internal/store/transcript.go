package store

import (
	"sort"
	"sync"

	"github.com/BenedictusDevin/ai-copilot/internal/domain"
)

// TranscriptStore maps user names to ordered, append-only chat transcripts.
// State lives for the process lifetime only and is discarded at exit.
//
// Transcripts are keyed by display name alone, so two real users entering the
// same name share one transcript. Known limitation, kept as designed.
type TranscriptStore struct {
	mu          sync.RWMutex
	transcripts map[string][]domain.Turn
}

// NewTranscriptStore creates an empty store.
func NewTranscriptStore() *TranscriptStore {
	return &TranscriptStore{
		transcripts: make(map[string][]domain.Turn),
	}
}

// Append adds a turn to the user's transcript, creating it if absent.
// Appended turns are never removed or rewritten.
func (s *TranscriptStore) Append(user string, turn domain.Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcripts[user] = append(s.transcripts[user], turn)
}

// Get returns a copy of the user's transcript in insertion order. An unknown
// user yields an empty transcript without creating an entry.
func (s *TranscriptStore) Get(user string) []domain.Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Turn(nil), s.transcripts[user]...)
}

// Users returns the names with at least one turn, sorted for stable
// history rendering.
func (s *TranscriptStore) Users() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]string, 0, len(s.transcripts))
	for user := range s.transcripts {
		users = append(users, user)
	}
	sort.Strings(users)
	return users
}
