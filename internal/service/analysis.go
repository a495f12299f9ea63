package service

import (
	"context"
	"errors"
	"strings"

	"github.com/BenedictusDevin/ai-copilot/internal/domain"
)

// ErrNothingToAnalyze is returned when a document yields no readable text.
var ErrNothingToAnalyze = errors.New("document contains no readable text")

const analysisInstruction = "Please summarize and analyze the following document professionally:"

// AnalysisService runs a one-shot document analysis. Unlike chat turns,
// nothing is written to the transcript store and no history is kept.
type AnalysisService struct {
	completer Completer
}

// NewAnalysisService creates an analysis service.
func NewAnalysisService(completer Completer) *AnalysisService {
	return &AnalysisService{completer: completer}
}

// Analyze sends the extracted document text to the completion API inside a
// single synthetic user turn and returns the raw result.
func (s *AnalysisService) Analyze(ctx context.Context, text, modelID, apiKey string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrNothingToAnalyze
	}

	prompt := domain.NewTurn(domain.RoleUser, analysisInstruction+"\n\n"+text)
	return s.completer.Complete(ctx, []domain.Turn{prompt}, modelID, apiKey)
}
