package auth_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/BenedictusDevin/ai-copilot/internal/auth"
)

var validKey = "sk-or-v1-" + strings.Repeat("a", 64)

func TestGate_Validate(t *testing.T) {
	gate := auth.NewGate()

	tests := []struct {
		name     string
		inName   string
		inAge    string
		inKey    string
		wantCode auth.ErrorCode
	}{
		// Valid credentials
		{"simple name", "Jane Doe", "30", validKey, ""},
		{"single word name", "Jane", "1", validKey, ""},
		{"unicode name", "José Müller", "42", validKey, ""},
		{"key with surrounding whitespace", "Jane", "30", "  " + validKey + "  ", ""},

		// Missing fields
		{"empty name", "", "30", validKey, auth.CodeMissingField},
		{"empty age", "Jane", "", validKey, auth.CodeMissingField},
		{"empty key", "Jane", "30", "", auth.CodeMissingField},
		{"all empty", "", "", "", auth.CodeMissingField},

		// Invalid name
		{"name with digit", "Jane1", "30", validKey, auth.CodeInvalidName},
		{"name with punctuation", "Jane.Doe", "30", validKey, auth.CodeInvalidName},
		{"name of only spaces", "   ", "30", validKey, auth.CodeInvalidName},

		// Invalid age
		{"age zero", "Jane", "0", validKey, auth.CodeInvalidAge},
		{"negative age", "Jane", "-5", validKey, auth.CodeInvalidAge},
		{"non-numeric age", "Jane", "thirty", validKey, auth.CodeInvalidAge},
		{"decimal age", "Jane", "30.5", validKey, auth.CodeInvalidAge},

		// Invalid API key
		{"wrong prefix", "Jane", "30", "sk-v1-" + strings.Repeat("a", 64), auth.CodeInvalidAPIKey},
		{"too short", "Jane", "30", "sk-or-v1-" + strings.Repeat("a", 63), auth.CodeInvalidAPIKey},
		{"too long", "Jane", "30", "sk-or-v1-" + strings.Repeat("a", 65), auth.CodeInvalidAPIKey},
		{"uppercase hex", "Jane", "30", "sk-or-v1-" + strings.Repeat("A", 64), auth.CodeInvalidAPIKey},
		{"non-hex characters", "Jane", "30", "sk-or-v1-" + strings.Repeat("z", 64), auth.CodeInvalidAPIKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds, err := gate.Validate(tt.inName, tt.inAge, tt.inKey)

			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}

			var vErr *auth.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("Validate() error = %v, want *ValidationError", err)
			}
			if vErr.Code != tt.wantCode {
				t.Errorf("Validate() code = %q, want %q", vErr.Code, tt.wantCode)
			}
			if creds.Name != "" || creds.APIKey != "" {
				t.Errorf("Validate() returned credentials on failure: %+v", creds)
			}
		})
	}
}

func TestGate_ValidateTrimsFields(t *testing.T) {
	gate := auth.NewGate()

	creds, err := gate.Validate("  Jane Doe  ", " 30 ", "  "+validKey)
	if err == nil {
		// Age with surrounding spaces is not all-digits, so this must fail.
		t.Fatal("expected age validation to reject padded age")
	}

	creds, err = gate.Validate("  Jane Doe  ", "30", "  "+validKey)
	if err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}
	if creds.Name != "Jane Doe" {
		t.Errorf("name = %q, want %q", creds.Name, "Jane Doe")
	}
	if creds.Age != "30" {
		t.Errorf("age = %q, want %q", creds.Age, "30")
	}
	if creds.APIKey != validKey {
		t.Errorf("api key not trimmed: %q", creds.APIKey)
	}
}
