package models

import "strings"

// Candidate categories.
const (
	CATEGORY_RESTAURANT    = "restaurant"
	CATEGORY_ATTRACTION    = "attraction"
	CATEGORY_INDOOR_BACKUP = "indoor_backup"
)

// Candidate is a named real-world venue extracted from search results.
// Never mutated after creation.
type Candidate struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	SourceURL   string `json:"source_url,omitempty"`
	Description string `json:"description,omitempty"`
}

// Key returns the candidate's dedup identity: its lowercase-trimmed name.
func (c Candidate) Key() string {
	return strings.ToLower(strings.TrimSpace(c.Name))
}
