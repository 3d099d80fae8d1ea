package models

// ValidationResult is the validator's verdict: OK iff Violations is empty.
// Recomputed from scratch on every check, never merged across passes.
type ValidationResult struct {
	OK         bool     `json:"ok"`
	Violations []string `json:"violations"`
}
