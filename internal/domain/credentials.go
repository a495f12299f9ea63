package domain

// Credentials holds the validated login fields. Immutable once validated,
// held in memory for the process lifetime and never persisted.
type Credentials struct {
	Name   string `json:"name"`
	Age    string `json:"age"`
	APIKey string `json:"-"`
}
