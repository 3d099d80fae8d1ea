package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"ts-server/api/llm"
	"ts-server/config"
	"ts-server/models"
	"ts-server/util"
)

const generationSystemPrompt = "You are a travel planner. You reply with only a single JSON object, " +
	"no prose and no code fences. The object has keys: \"summary\" (string), \"days\" (array of " +
	"{\"day\", \"theme\", \"blocks\", \"meals\", \"notes\"}), \"must_book\" (array of strings) and " +
	"\"rain_backups\" (array of strings). Each block is {\"time\", \"title\", \"details\"} with a time " +
	"range like \"09:00 - 11:00\". Each meal is a string \"Lunch: Restaurant - Dish\" or " +
	"\"Dinner: Restaurant - Dish\". You may only use venue names from the allowed lists given to you; " +
	"inventing venue names is forbidden."

const repairSystemPrompt = "You repair travel itineraries. You receive an itinerary, a list of rule " +
	"violations and the allowed venue lists. Return the complete corrected itinerary as a single JSON " +
	"object in the same schema, changing only what the violations require. Replace invalid venues with " +
	"allowed-list members; reusing an already-used allowed venue is acceptable, inventing a new venue " +
	"name is not."

const jsonRepairSystemPrompt = "You fix malformed JSON. Return only the corrected JSON document, " +
	"nothing else."

const evaluatorSystemPrompt = "You review travel itineraries for quality: variety, realistic timing, " +
	"geographic sanity. Reply with only a JSON object {\"score\": 0-100, \"fixes\": [strings]} where " +
	"fixes are concrete suggested changes. An empty fixes array means nothing worth changing."

// shapeViolation is the validation stand-in used while no structurally
// complete itinerary exists yet.
var shapeViolation = models.ValidationResult{
	OK:         false,
	Violations: []string{"itinerary is missing the required summary/days shape"},
}

// evaluatorVerdict is the quality evaluator's reply shape.
type evaluatorVerdict struct {
	Score int      `json:"score"`
	Fixes []string `json:"fixes"`
}

// PlannerService runs the candidate-constrained generate-validate-repair
// loop. The loop is bounded purely by attempt count, never by wall clock:
// one generation, at most MAX_REPAIR_ATTEMPTS repair rounds each with one
// schema-fix fallback call, and one advisory quality round.
type PlannerService struct {
	llmAPI llm.LLMAPI
}

// NewPlannerService constructs a new PlannerService.
func NewPlannerService(llmAPI llm.LLMAPI) *PlannerService {
	return &PlannerService{llmAPI: llmAPI}
}

// Plan generates an itinerary constrained to the allowed lists and forces it
// through validation and bounded repair. It returns the best itinerary it
// reached together with the last validation result: exhausting the repair
// budget is not an error, only a degraded result the caller can inspect.
// The only fatal outcomes are no parseable JSON (after one JSON-repair call)
// and a model that never produces a structurally complete object.
func (s *PlannerService) Plan(ctx context.Context, trip *models.TripRequest, lists models.AllowedLists, artifacts *util.ArtifactWriter) (*models.Itinerary, models.ValidationResult, error) {
	if lists.Empty() {
		return nil, models.ValidationResult{}, fmt.Errorf("allowed lists are empty, nothing to plan against")
	}

	raw, err := s.llmAPI.Complete(ctx, generationSystemPrompt, buildGenerationPrompt(trip, lists), config.GENERATION_MAX_TOKENS, config.GENERATION_TEMPERATURE)
	if err != nil {
		return nil, models.ValidationResult{}, fmt.Errorf("generation call failed: %w", err)
	}
	artifacts.WriteText("generation_raw.txt", raw)

	current, err := s.decodeWithJSONRepair(ctx, raw, artifacts)
	if err != nil {
		return nil, models.ValidationResult{}, err
	}

	// current may still be nil here: parseable JSON without the minimum
	// shape is a validation failure, not a fatal error.
	validation := shapeViolation
	if current != nil {
		validation = ValidateItinerary(trip, current, lists)
	}
	artifacts.WriteJSON("validation_0.json", validation)

	for attempt := 1; attempt <= config.MAX_REPAIR_ATTEMPTS && !validation.OK; attempt++ {
		log.Printf("[PlannerService] Repair attempt %d/%d (%d violations)", attempt, config.MAX_REPAIR_ATTEMPTS, len(validation.Violations))

		repaired := s.repair(ctx, current, raw, validation.Violations, lists, artifacts, attempt)
		if repaired == nil {
			// Repair produced nothing usable; keep the current itinerary
			// unchanged for this iteration.
			continue
		}
		current = repaired
		validation = ValidateItinerary(trip, current, lists)
		artifacts.WriteJSON(fmt.Sprintf("validation_%d.json", attempt), validation)
	}

	if current == nil {
		return nil, validation, fmt.Errorf("model never produced a structurally complete itinerary (see %s)", artifacts.RunDir())
	}

	if validation.OK {
		current, validation = s.qualityPass(ctx, trip, current, validation, lists, artifacts)
	}

	return current, validation, nil
}

// decodeWithJSONRepair decodes raw model output, invoking the JSON-repair
// collaborator once when no balanced object can be extracted. A shape
// failure returns (nil, nil): recoverable, handled by the repair loop.
func (s *PlannerService) decodeWithJSONRepair(ctx context.Context, raw string, artifacts *util.ArtifactWriter) (*models.Itinerary, error) {
	itinerary, err := DecodeItinerary(raw)
	if err == nil {
		return itinerary, nil
	}
	if errors.Is(err, ErrBadShape) {
		return nil, nil
	}

	log.Printf("[PlannerService] Direct parse failed, invoking JSON repair: %v", err)
	fixed, repairErr := s.llmAPI.Complete(ctx, jsonRepairSystemPrompt, raw, config.GENERATION_MAX_TOKENS, 0)
	if repairErr != nil {
		return nil, fmt.Errorf("json repair call failed: %w", repairErr)
	}
	artifacts.WriteText("json_repair_raw.txt", fixed)

	itinerary, err = DecodeItinerary(fixed)
	if err == nil {
		return itinerary, nil
	}
	if errors.Is(err, ErrBadShape) {
		return nil, nil
	}
	return nil, fmt.Errorf("no parseable JSON after repair (see %s): %w", artifacts.RunDir(), err)
}

// repair runs one repair round: a repair call, and on a shape failure one
// fallback call that explicitly demands a complete object. Returns nil when
// neither produced a structurally complete itinerary.
func (s *PlannerService) repair(ctx context.Context, current *models.Itinerary, generationRaw string, violations []string, lists models.AllowedLists, artifacts *util.ArtifactWriter, attempt int) *models.Itinerary {
	prompt := buildRepairPrompt(current, generationRaw, violations, lists)

	raw, err := s.llmAPI.Complete(ctx, repairSystemPrompt, prompt, config.GENERATION_MAX_TOKENS, config.GENERATION_TEMPERATURE)
	if err != nil {
		log.Printf("[PlannerService] Repair call failed: %v", err)
		return nil
	}
	artifacts.WriteText(fmt.Sprintf("repair_%d_raw.txt", attempt), raw)

	repaired, err := DecodeItinerary(raw)
	if err == nil {
		return repaired
	}
	log.Printf("[PlannerService] Repair output unusable (%v), requesting complete object", err)

	retryPrompt := prompt + "\n\nYour previous reply was not a complete itinerary object. " +
		"Return the ENTIRE corrected itinerary as one JSON object with summary and days, not a fragment."
	raw, err = s.llmAPI.Complete(ctx, repairSystemPrompt, retryPrompt, config.GENERATION_MAX_TOKENS, config.GENERATION_TEMPERATURE)
	if err != nil {
		log.Printf("[PlannerService] Repair fallback call failed: %v", err)
		return nil
	}
	artifacts.WriteText(fmt.Sprintf("repair_%d_fallback_raw.txt", attempt), raw)

	repaired, err = DecodeItinerary(raw)
	if err != nil {
		log.Printf("[PlannerService] Repair fallback output unusable: %v", err)
		return nil
	}
	return repaired
}

// qualityPass scores a valid itinerary and, below the threshold, runs one
// best-effort repair driven by the evaluator's fixes. It never degrades
// correctness: if the reworked itinerary fails strict validation, the valid
// one is kept.
func (s *PlannerService) qualityPass(ctx context.Context, trip *models.TripRequest, current *models.Itinerary, validation models.ValidationResult, lists models.AllowedLists, artifacts *util.ArtifactWriter) (*models.Itinerary, models.ValidationResult) {
	verdict := s.evaluate(ctx, trip, current, artifacts)
	if verdict == nil {
		return current, validation
	}
	log.Printf("[PlannerService] Evaluator score %d (%d fixes)", verdict.Score, len(verdict.Fixes))
	if verdict.Score >= config.EVALUATOR_SCORE_THRESHOLD || len(verdict.Fixes) == 0 {
		return current, validation
	}

	repaired := s.repair(ctx, current, "", verdict.Fixes, lists, artifacts, config.MAX_REPAIR_ATTEMPTS+1)
	if repaired == nil {
		return current, validation
	}
	revalidation := ValidateItinerary(trip, repaired, lists)
	artifacts.WriteJSON("validation_quality.json", revalidation)
	if !revalidation.OK {
		log.Printf("[PlannerService] Quality rework failed validation, keeping valid itinerary")
		return current, validation
	}
	return repaired, revalidation
}

// evaluate runs the quality evaluator. Any failure is advisory: log and skip.
func (s *PlannerService) evaluate(ctx context.Context, trip *models.TripRequest, itinerary *models.Itinerary, artifacts *util.ArtifactWriter) *evaluatorVerdict {
	encoded, err := json.Marshal(itinerary)
	if err != nil {
		return nil
	}
	user := fmt.Sprintf("Trip: %d days in %s, pace %s, budget %s.\nItinerary:\n%s",
		trip.TripLengthDays, trip.Destination, trip.Pace, trip.BudgetLevel, encoded)

	raw, err := s.llmAPI.Complete(ctx, evaluatorSystemPrompt, user, config.EXTRACTION_MAX_TOKENS, 0)
	if err != nil {
		log.Printf("[PlannerService] Evaluator call failed, skipping: %v", err)
		return nil
	}
	artifacts.WriteText("evaluation_raw.txt", raw)

	text, err := util.FirstJSONObject(raw)
	if err != nil {
		log.Printf("[PlannerService] Evaluator output unparseable, skipping: %v", err)
		return nil
	}
	var verdict evaluatorVerdict
	if err := json.Unmarshal([]byte(text), &verdict); err != nil {
		log.Printf("[PlannerService] Evaluator output undecodable, skipping: %v", err)
		return nil
	}
	return &verdict
}

// buildGenerationPrompt renders the trip parameters and allowed lists into
// the generation request.
func buildGenerationPrompt(trip *models.TripRequest, lists models.AllowedLists) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Plan a %d-day trip to %s for %d traveler(s).\n", trip.TripLengthDays, trip.Destination, trip.Travelers)
	fmt.Fprintf(&b, "Pace: %s (this sets how many activity blocks each day gets).\n", trip.Pace)
	fmt.Fprintf(&b, "Budget level: %s.\n", trip.BudgetLevel)
	if len(trip.Interests) > 0 {
		fmt.Fprintf(&b, "Interests: %s.\n", strings.Join(trip.Interests, ", "))
	}
	if len(trip.Constraints) > 0 {
		fmt.Fprintf(&b, "Constraints: %s.\n", strings.Join(trip.Constraints, ", "))
	}
	b.WriteString("Every day needs a Lunch: and a Dinner: meal and at least 2 notes.\n")
	writeAllowedLists(&b, lists)
	return b.String()
}

// buildRepairPrompt renders the current itinerary (or the raw generation
// output when no complete object exists yet), the violations to fix and the
// allowed lists.
func buildRepairPrompt(current *models.Itinerary, generationRaw string, violations []string, lists models.AllowedLists) string {
	var b strings.Builder
	b.WriteString("Current itinerary:\n")
	if current != nil {
		encoded, err := json.Marshal(current)
		if err == nil {
			b.Write(encoded)
		}
	} else {
		b.WriteString(generationRaw)
	}
	b.WriteString("\n\nViolations to fix:\n")
	for _, v := range violations {
		fmt.Fprintf(&b, "- %s\n", v)
	}
	b.WriteString("\n")
	writeAllowedLists(&b, lists)
	return b.String()
}

func writeAllowedLists(b *strings.Builder, lists models.AllowedLists) {
	fmt.Fprintf(b, "Allowed attractions (block titles MUST come from this list): %s\n", strings.Join(lists.Attractions, "; "))
	fmt.Fprintf(b, "Allowed restaurants (meal restaurants MUST come from this list): %s\n", strings.Join(lists.Restaurants, "; "))
	fmt.Fprintf(b, "Allowed indoor backups (rain_backups MUST come from this list): %s\n", strings.Join(lists.IndoorBackups, "; "))
}
