package service

import (
	"context"

	"github.com/BenedictusDevin/ai-copilot/internal/domain"
	"github.com/BenedictusDevin/ai-copilot/internal/store"
	"github.com/rs/zerolog/log"
)

// Completer abstracts the chat-completion API.
type Completer interface {
	Complete(ctx context.Context, messages []domain.Turn, modelID, apiKey string) (string, error)
}

// ChatService runs one chat turn: append the user's message, send the full
// transcript to the completion API, append the assistant's reply.
type ChatService struct {
	store     *store.TranscriptStore
	completer Completer
}

// NewChatService creates a chat service over the given transcript store.
func NewChatService(store *store.TranscriptStore, completer Completer) *ChatService {
	return &ChatService{store: store, completer: completer}
}

// Send runs one turn for the user and returns the assistant's reply turn.
//
// The user turn is appended before the network call and is never rolled
// back: a failed completion leaves a dangling unanswered user turn in the
// transcript, which is valid state.
func (s *ChatService) Send(ctx context.Context, user, prompt, modelID, apiKey string) (domain.Turn, error) {
	s.store.Append(user, domain.NewTurn(domain.RoleUser, prompt))

	reply, err := s.completer.Complete(ctx, s.store.Get(user), modelID, apiKey)
	if err != nil {
		log.Warn().Err(err).Str("user", user).Str("model", modelID).Msg("Completion failed, user turn kept")
		return domain.Turn{}, err
	}

	turn := domain.NewTurn(domain.RoleAssistant, reply)
	s.store.Append(user, turn)
	return turn, nil
}

// Transcript returns the user's full transcript in insertion order.
func (s *ChatService) Transcript(user string) []domain.Turn {
	return s.store.Get(user)
}
