package services

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	redisdao "ts-server/dao/redis"
	"ts-server/db"
	"ts-server/models"
)

// pipelineItinerary only uses venues the scripted extraction produces, so the
// whole pipeline validates on the first pass.
func pipelineItinerary(days int) *models.Itinerary {
	itinerary := &models.Itinerary{
		Summary:     "A few days in Lisbon.",
		RainBackups: []string{"Fado Museum"},
	}
	for n := 1; n <= days; n++ {
		itinerary.Days = append(itinerary.Days, models.DayPlan{
			Day:   n,
			Theme: "Exploring",
			Blocks: []models.Block{
				{Time: "09:00 - 11:00", Title: "Belem Tower"},
				{Time: "11:30 - 13:00", Title: "Jeronimos Monastery"},
				{Time: "15:00 - 17:00", Title: "MAAT"},
			},
			Meals: []string{
				"Lunch: Time Out Market - Cod cakes",
				"Dinner: Honest Greens - Grain bowl",
			},
			Notes: []string{"Carry water.", "Check opening hours."},
		})
	}
	return itinerary
}

// pipelineLLM routes by system prompt, so candidate extraction, generation and
// evaluation can share one stub regardless of call order.
func pipelineLLM(t *testing.T) *stubLLMAPI {
	t.Helper()
	generation, err := json.Marshal(pipelineItinerary(3))
	if err != nil {
		t.Fatalf("Failed to marshal itinerary: %v", err)
	}
	return &stubLLMAPI{fn: func(system, user string) (string, error) {
		switch {
		case strings.Contains(system, "extract real-world venue names"):
			switch {
			case strings.Contains(user, "Category: "+models.CATEGORY_RESTAURANT):
				return `[{"name": "Time Out Market"}, {"name": "Honest Greens"}]`, nil
			case strings.Contains(user, "Category: "+models.CATEGORY_INDOOR_BACKUP):
				return `[{"name": "Oceanario de Lisboa"}, {"name": "Fado Museum"}]`, nil
			default:
				return `[{"name": "Belem Tower"}, {"name": "Jeronimos Monastery"}, {"name": "Castelo de Sao Jorge"}, {"name": "MAAT"}]`, nil
			}
		case strings.Contains(system, "review travel itineraries"):
			return `{"score": 95, "fixes": []}`, nil
		default:
			return string(generation), nil
		}
	}}
}

func newTripServiceForTest(t *testing.T, placesAPI *countingPlacesAPI) *TripService {
	t.Helper()
	// Keep run artifacts inside the test sandbox.
	t.Setenv("PROJECT_ROOT", t.TempDir())
	llmAPI := pipelineLLM(t)
	searchAPI := &stubSearchAPI{fn: func(query string, maxResults int) ([]models.SearchResult, error) {
		return oneResult(query), nil
	}}
	placeDao := redisdao.NewRedisPlaceDAO(db.NewMockCacheClient())
	return NewTripService(
		NewCandidatePoolService(searchAPI, llmAPI),
		NewPlannerService(llmAPI),
		NewPlaceEnricherService(placesAPI, placeDao),
		placeDao,
	)
}

func TestPlanTrip_EndToEnd(t *testing.T) {
	// Arrange
	service := newTripServiceForTest(t, &countingPlacesAPI{})
	trip := makeTrip(models.PACE_BALANCED, 3)

	// Act
	result, err := service.PlanTrip(context.Background(), trip, false)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.RunID == "" {
		t.Error("Expected a run id")
	}
	if !result.Validation.OK {
		t.Fatalf("Expected a valid plan, got: %v", result.Validation.Violations)
	}
	if len(result.Itinerary.Days) != 3 {
		t.Errorf("Expected 3 days, got %d", len(result.Itinerary.Days))
	}
	if len(result.AllowedLists.Restaurants) != 2 {
		t.Errorf("Expected 2 allowed restaurants, got %v", result.AllowedLists.Restaurants)
	}
	if result.Places != nil {
		t.Error("Expected no place details when not requested")
	}
}

func TestPlanTrip_StoresRunForRetrieval(t *testing.T) {
	// Arrange
	service := newTripServiceForTest(t, &countingPlacesAPI{})
	trip := makeTrip(models.PACE_BALANCED, 3)

	// Act
	result, err := service.PlanTrip(context.Background(), trip, false)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	stored, err := service.GetRun(result.RunID)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if stored == "" {
		t.Fatal("Expected the run to be stored")
	}
	var roundTripped TripPlanResult
	if err := json.Unmarshal([]byte(stored), &roundTripped); err != nil {
		t.Fatalf("Stored run is not valid JSON: %v", err)
	}
	if roundTripped.RunID != result.RunID {
		t.Errorf("Expected stored run id %s, got %s", result.RunID, roundTripped.RunID)
	}
}

func TestPlanTrip_UnknownRun(t *testing.T) {
	// Arrange
	service := newTripServiceForTest(t, &countingPlacesAPI{})

	// Act
	stored, err := service.GetRun("no-such-run")

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if stored != "" {
		t.Errorf("Expected an empty result, got %q", stored)
	}
}

func TestPlanTrip_WithPlaceDetails(t *testing.T) {
	// Arrange
	placesAPI := &countingPlacesAPI{}
	service := newTripServiceForTest(t, placesAPI)
	trip := makeTrip(models.PACE_BALANCED, 3)

	// Act
	result, err := service.PlanTrip(context.Background(), trip, true)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	// Three block venues plus two meal restaurants, deduplicated across days.
	if len(result.Places) != 5 {
		t.Errorf("Expected 5 enriched places, got %d", len(result.Places))
	}
	if placesAPI.textSearches != 5 {
		t.Errorf("Expected 5 text searches, got %d", placesAPI.textSearches)
	}
}

func TestCollectVenueNames(t *testing.T) {
	// Arrange
	itinerary := pipelineItinerary(2)

	// Act
	names := collectVenueNames(itinerary)

	// Assert
	expected := []string{"Belem Tower", "Jeronimos Monastery", "MAAT", "Time Out Market", "Honest Greens"}
	if len(names) != len(expected) {
		t.Fatalf("Expected %d names, got %d: %v", len(expected), len(names), names)
	}
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("Expected names[%d] = %q, got %q", i, name, names[i])
		}
	}
}
