package models

import "strings"

// Budget levels accepted in a TripRequest.
const (
	BUDGET_LOW  = "low"
	BUDGET_MID  = "mid"
	BUDGET_HIGH = "high"
)

// Trip paces accepted in a TripRequest.
const (
	PACE_RELAXED  = "relaxed"
	PACE_BALANCED = "balanced"
	PACE_PACKED   = "packed"
)

// TripRequest captures the parsed trip intent. It is immutable once built:
// every downstream step only reads it.
type TripRequest struct {
	Destination          string   `json:"destination"`
	TripLengthDays       int      `json:"trip_length_days"`
	StartDate            *string  `json:"start_date,omitempty"`
	EndDate              *string  `json:"end_date,omitempty"`
	Travelers            int      `json:"travelers"`
	BudgetLevel          string   `json:"budget_level"`
	Pace                 string   `json:"pace"`
	Interests            []string `json:"interests"`
	Constraints          []string `json:"constraints"`
	MissingInfoQuestions []string `json:"missing_info_questions"`
}

// HasConstraint reports whether the trip carries the given constraint,
// compared case-insensitively.
func (t *TripRequest) HasConstraint(constraint string) bool {
	for _, c := range t.Constraints {
		if strings.EqualFold(strings.TrimSpace(c), constraint) {
			return true
		}
	}
	return false
}
