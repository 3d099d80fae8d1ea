package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"ts-server/models"
	"ts-server/util"
)

// Decode boundary: every generative response crosses one of these functions
// before the rest of the system touches it. Shape is checked here, never
// assumed by convention.

// ErrNoJSON marks raw text from which no balanced JSON could be extracted.
var ErrNoJSON = errors.New("no parseable JSON in model output")

// ErrBadShape marks JSON that parsed but is missing the minimum itinerary
// shape (a string summary and a days array).
var ErrBadShape = errors.New("model output missing summary/days shape")

// DecodeItinerary extracts the first balanced JSON object from raw model
// output and decodes it into an Itinerary. The minimal shape is verified
// before the full decode so a partial object is reported as ErrBadShape
// (recoverable) rather than a parse failure (fatal).
func DecodeItinerary(raw string) (*models.Itinerary, error) {
	text, err := util.FirstJSONObject(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoJSON, err)
	}

	var probe struct {
		Summary *string          `json:"summary"`
		Days    *json.RawMessage `json:"days"`
	}
	if err := json.Unmarshal([]byte(text), &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoJSON, err)
	}
	if probe.Summary == nil || probe.Days == nil || !isJSONArray(*probe.Days) {
		return nil, ErrBadShape
	}

	var itinerary models.Itinerary
	if err := json.Unmarshal([]byte(text), &itinerary); err != nil {
		return nil, ErrBadShape
	}
	return &itinerary, nil
}

// DecodeCandidateArray extracts the first balanced JSON array from raw model
// output and decodes its elements. Elements that fail the candidate shape
// are dropped individually instead of rejecting the whole batch.
func DecodeCandidateArray(raw string) ([]extractedCandidate, error) {
	text, err := util.FirstJSONArray(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoJSON, err)
	}

	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(text), &elements); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoJSON, err)
	}

	var extracted []extractedCandidate
	for _, element := range elements {
		var e extractedCandidate
		if err := json.Unmarshal(element, &e); err != nil {
			log.Printf("[Decode] Dropping malformed candidate element: %v", err)
			continue
		}
		if e.Name == "" {
			continue
		}
		extracted = append(extracted, e)
	}
	return extracted, nil
}

// DecodeTripRequest extracts and decodes a TripRequest from raw model output,
// then normalizes out-of-range fields.
func DecodeTripRequest(raw string) (*models.TripRequest, error) {
	text, err := util.FirstJSONObject(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoJSON, err)
	}

	var trip models.TripRequest
	if err := json.Unmarshal([]byte(text), &trip); err != nil {
		return nil, fmt.Errorf("failed to decode trip request: %w", err)
	}
	if trip.Destination == "" {
		return nil, fmt.Errorf("trip request has no destination")
	}

	normalizeTripRequest(&trip)
	return &trip, nil
}

// normalizeTripRequest clamps numeric fields to their allowed ranges and
// defaults unknown enums.
func normalizeTripRequest(trip *models.TripRequest) {
	if trip.TripLengthDays < 1 {
		trip.TripLengthDays = 1
	}
	if trip.TripLengthDays > 30 {
		trip.TripLengthDays = 30
	}
	if trip.Travelers < 1 {
		trip.Travelers = 1
	}
	if trip.Travelers > 20 {
		trip.Travelers = 20
	}
	switch trip.BudgetLevel {
	case models.BUDGET_LOW, models.BUDGET_MID, models.BUDGET_HIGH:
	default:
		trip.BudgetLevel = models.BUDGET_MID
	}
	switch trip.Pace {
	case models.PACE_RELAXED, models.PACE_BALANCED, models.PACE_PACKED:
	default:
		trip.Pace = models.PACE_BALANCED
	}
}

func isJSONArray(raw json.RawMessage) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '[':
			return true
		default:
			return false
		}
	}
	return false
}
