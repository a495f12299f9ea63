package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/BenedictusDevin/ai-copilot/internal/domain"
)

// ErrorKind classifies a completion failure.
type ErrorKind string

const (
	KindNetworkFailure    ErrorKind = "network_failure"
	KindHTTPError         ErrorKind = "http_error"
	KindMalformedResponse ErrorKind = "malformed_response"
)

// CompletionError represents a failed completion call. The turn that
// triggered it is treated as not-completed; no retry is attempted.
type CompletionError struct {
	Kind   ErrorKind
	Status int
	cause  error
}

func (e *CompletionError) Error() string {
	switch e.Kind {
	case KindHTTPError:
		return fmt.Sprintf("completion API returned status %d", e.Status)
	case KindMalformedResponse:
		return fmt.Sprintf("completion API returned a malformed response: %v", e.cause)
	default:
		return fmt.Sprintf("completion request failed: %v", e.cause)
	}
}

func (e *CompletionError) Unwrap() error {
	return e.cause
}

// Client calls the OpenRouter chat-completions endpoint. Every call is
// independent and stateless; nothing is cached between calls.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a completion client. An empty baseURL selects the
// production OpenRouter endpoint.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = "https://openrouter.ai/api/v1"
	}
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends the conversation to the completion API and returns the
// assistant's reply verbatim. Single attempt, fail-fast.
func (c *Client) Complete(ctx context.Context, messages []domain.Turn, modelID, apiKey string) (string, error) {
	payload := chatRequest{
		Model:    modelID,
		Messages: make([]chatMessage, 0, len(messages)),
	}
	for _, turn := range messages {
		payload.Messages = append(payload.Messages, chatMessage{
			Role:    string(turn.Role),
			Content: turn.Content,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", &CompletionError{Kind: KindNetworkFailure, cause: fmt.Errorf("marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", &CompletionError{Kind: KindNetworkFailure, cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &CompletionError{Kind: KindNetworkFailure, cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &CompletionError{Kind: KindHTTPError, Status: resp.StatusCode}
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", &CompletionError{Kind: KindMalformedResponse, cause: err}
	}

	// A 2xx with no choices is treated the same as an undecodable body.
	if len(chatResp.Choices) == 0 {
		return "", &CompletionError{Kind: KindMalformedResponse, cause: fmt.Errorf("empty choices array")}
	}

	return chatResp.Choices[0].Message.Content, nil
}
