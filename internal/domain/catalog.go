package domain

import "sort"

// ModelCatalog maps display labels to provider model identifiers. Read-only.
type ModelCatalog map[string]string

// DefaultCatalog returns the models offered in the UI.
func DefaultCatalog() ModelCatalog {
	return ModelCatalog{
		"Mistral 7B (Free)": "mistralai/mistral-7b-instruct:free",
		"Llama 3 8B (Free)": "meta-llama/llama-3-8b-instruct:free",
		"Claude 3.5 Sonnet": "anthropic/claude-3.5-sonnet",
		"Google Gemini Pro": "google/gemini-pro",
	}
}

// Resolve returns the provider identifier for a display label.
func (c ModelCatalog) Resolve(label string) (string, bool) {
	id, ok := c[label]
	return id, ok
}

// Labels returns the display labels in sorted order.
func (c ModelCatalog) Labels() []string {
	labels := make([]string, 0, len(c))
	for label := range c {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}
