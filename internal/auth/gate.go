package auth

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/BenedictusDevin/ai-copilot/internal/domain"
)

// ErrorCode identifies which validation rule a login attempt failed.
type ErrorCode string

const (
	CodeMissingField  ErrorCode = "missing_field"
	CodeInvalidName   ErrorCode = "invalid_name"
	CodeInvalidAge    ErrorCode = "invalid_age"
	CodeInvalidAPIKey ErrorCode = "invalid_api_key"
)

// ValidationError represents a credential validation failure.
type ValidationError struct {
	Code    ErrorCode
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var apiKeyPattern = regexp.MustCompile(`^sk-or-v1-[a-f0-9]{64}$`)

// Gate validates login credentials before the rest of the API unlocks.
type Gate struct{}

// NewGate creates a credential gate.
func NewGate() *Gate {
	return &Gate{}
}

// Validate checks the three login fields in order, short-circuiting on the
// first failure. On success the returned credentials carry trimmed values.
func (g *Gate) Validate(name, age, apiKey string) (domain.Credentials, error) {
	if name == "" || age == "" || apiKey == "" {
		return domain.Credentials{}, &ValidationError{
			Code:    CodeMissingField,
			Message: "all fields are required",
		}
	}

	if !isAlphabetic(strings.ReplaceAll(name, " ", "")) {
		return domain.Credentials{}, &ValidationError{
			Code:    CodeInvalidName,
			Message: "name may only contain letters and spaces",
		}
	}

	if !isPositiveInteger(age) {
		return domain.Credentials{}, &ValidationError{
			Code:    CodeInvalidAge,
			Message: "age must be a positive number",
		}
	}

	if !apiKeyPattern.MatchString(strings.TrimSpace(apiKey)) {
		return domain.Credentials{}, &ValidationError{
			Code:    CodeInvalidAPIKey,
			Message: "API key must match sk-or-v1- followed by 64 lowercase hex digits",
		}
	}

	return domain.Credentials{
		Name:   strings.TrimSpace(name),
		Age:    strings.TrimSpace(age),
		APIKey: strings.TrimSpace(apiKey),
	}, nil
}

func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func isPositiveInteger(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return strings.TrimLeft(s, "0") != ""
}
