package services

import (
	"context"
	"fmt"

	"ts-server/api/llm"
	"ts-server/config"
	"ts-server/models"
)

const intentSystemPrompt = "You turn a free-text travel request into structured trip parameters. " +
	"Reply with only a JSON object with keys: \"destination\" (string), \"trip_length_days\" (int), " +
	"\"start_date\"/\"end_date\" (ISO date strings or null), \"travelers\" (int), " +
	"\"budget_level\" (low|mid|high), \"pace\" (relaxed|balanced|packed), \"interests\" (array), " +
	"\"constraints\" (array, e.g. \"vegetarian\"), and \"missing_info_questions\" (array of " +
	"clarification questions for anything the request leaves unclear)."

// IntentService turns free-text trip intent into a TripRequest via one
// generative extraction call.
type IntentService struct {
	llmAPI llm.LLMAPI
}

// NewIntentService constructs a new IntentService.
func NewIntentService(llmAPI llm.LLMAPI) *IntentService {
	return &IntentService{llmAPI: llmAPI}
}

// ExtractTripRequest parses free text into a normalized TripRequest. The
// result is immutable from here on; failures are caller errors since without
// a destination nothing downstream can run.
func (s *IntentService) ExtractTripRequest(ctx context.Context, freeText string) (*models.TripRequest, error) {
	raw, err := s.llmAPI.Complete(ctx, intentSystemPrompt, freeText, config.EXTRACTION_MAX_TOKENS, config.EXTRACTION_TEMPERATURE)
	if err != nil {
		return nil, fmt.Errorf("intent extraction call failed: %w", err)
	}

	trip, err := DecodeTripRequest(raw)
	if err != nil {
		return nil, fmt.Errorf("could not extract trip parameters: %w", err)
	}
	return trip, nil
}
