package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"ts-server/config"
	redisdao "ts-server/dao/redis"
	"ts-server/models"
	"ts-server/util"
)

// TripPlanResult is the full outcome of one planning run.
type TripPlanResult struct {
	RunID        string                          `json:"run_id"`
	Trip         *models.TripRequest             `json:"trip"`
	Itinerary    *models.Itinerary               `json:"itinerary"`
	AllowedLists models.AllowedLists             `json:"allowed_lists"`
	Validation   models.ValidationResult         `json:"validation"`
	Places       map[string]*models.PlaceDetails `json:"places,omitempty"`
}

// TripService orchestrates one end-to-end planning run: candidate pool →
// allowed lists → generate-validate-repair loop → optional place enrichment,
// with run artifacts written along the way.
type TripService struct {
	candidatePool *CandidatePoolService
	planner       *PlannerService
	enricher      *PlaceEnricherService
	placeDao      *redisdao.RedisPlaceDAO
}

// NewTripService constructs a new TripService.
func NewTripService(
	candidatePool *CandidatePoolService,
	planner *PlannerService,
	enricher *PlaceEnricherService,
	placeDao *redisdao.RedisPlaceDAO) *TripService {

	return &TripService{
		candidatePool: candidatePool,
		planner:       planner,
		enricher:      enricher,
		placeDao:      placeDao,
	}
}

// PlanTrip runs the whole pipeline for one trip request.
func (s *TripService) PlanTrip(ctx context.Context, trip *models.TripRequest, includePlaceDetails bool) (*TripPlanResult, error) {
	runID := uuid.New().String()
	artifacts := util.NewArtifactWriter(config.GetRunsPath(), runID)
	artifacts.WriteJSON("trip_request.json", trip)
	log.Printf("[TripService] Planning run %s: %d days in %s", runID, trip.TripLengthDays, trip.Destination)

	candidates, err := s.candidatePool.BuildCandidatePool(ctx, trip.Destination)
	if err != nil {
		return nil, fmt.Errorf("candidate pool build failed: %w", err)
	}
	artifacts.WriteJSON("candidates.json", candidates)

	lists := ProjectAllowedLists(candidates,
		config.MAX_ALLOWED_ATTRACTIONS,
		config.MAX_ALLOWED_RESTAURANTS,
		config.MAX_ALLOWED_INDOOR_BACKUPS)
	artifacts.WriteJSON("allowed_lists.json", lists)

	itinerary, validation, err := s.planner.Plan(ctx, trip, lists, artifacts)
	if err != nil {
		return nil, err
	}
	artifacts.WriteJSON("itinerary.json", itinerary)
	artifacts.WriteJSON("validation_final.json", validation)
	util.PlotItineraryTimeline(itinerary, artifacts.RunDir())

	result := &TripPlanResult{
		RunID:        runID,
		Trip:         trip,
		Itinerary:    itinerary,
		AllowedLists: lists,
		Validation:   validation,
	}

	if includePlaceDetails {
		names := collectVenueNames(itinerary)
		result.Places = s.enricher.EnrichPlaces(names, trip.Destination)
	}

	if err := s.placeDao.SetItineraryRun(runID, result); err != nil {
		// Stored runs are an audit convenience, not part of the contract.
		log.Printf("[TripService] Failed to store run %s: %v", runID, err)
	}

	return result, nil
}

// GetRun retrieves a stored run as raw JSON, "" when absent or expired.
func (s *TripService) GetRun(runID string) (string, error) {
	return s.placeDao.GetItineraryRun(runID)
}

// collectVenueNames gathers the unique venue names an itinerary references:
// block titles and meal restaurants, in order of first appearance.
func collectVenueNames(itinerary *models.Itinerary) []string {
	seen := make(map[string]struct{})
	var names []string
	add := func(name string) {
		if name == "" {
			return
		}
		key := models.Candidate{Name: name}.Key()
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		names = append(names, name)
	}

	for _, day := range itinerary.Days {
		for _, block := range day.Blocks {
			add(block.Title)
		}
		for _, meal := range day.Meals {
			add(parseMealRestaurant(meal))
		}
	}
	return names
}
