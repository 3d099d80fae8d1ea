package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"ts-server/config"
	"ts-server/util"
)

// Canned extraction arrays per candidate category. Names stay consistent with
// the itinerary fixture so the plan it produces validates against the pool
// these hand out: every block title is an attraction here, every meal
// restaurant a restaurant, every rain backup an indoor backup, and no name
// appears in more than one category.
const fixtureAttractionCandidates = `[
  {"name": "Belem Tower", "description": "Riverside fortress tower", "source_url": "https://example.com/lisbon/belem-tower"},
  {"name": "Jeronimos Monastery", "description": "Manueline monastery in Belem", "source_url": "https://example.com/lisbon/jeronimos"},
  {"name": "MAAT", "description": "Museum of art, architecture and technology", "source_url": "https://example.com/lisbon/maat"},
  {"name": "Castelo de Sao Jorge", "description": "Hilltop Moorish castle", "source_url": "https://example.com/lisbon/castelo"},
  {"name": "Lisbon Cathedral", "description": "Romanesque cathedral in Alfama", "source_url": "https://example.com/lisbon/se"},
  {"name": "Fado Museum", "description": "Museum dedicated to fado music", "source_url": "https://example.com/lisbon/fado"},
  {"name": "Oceanario de Lisboa", "description": "Large indoor aquarium", "source_url": "https://example.com/lisbon/oceanario"},
  {"name": "Pavilhao do Conhecimento", "description": "Hands-on science museum", "source_url": "https://example.com/lisbon/pavilhao"},
  {"name": "Telecabine Lisboa", "description": "Waterfront cable car", "source_url": "https://example.com/lisbon/telecabine"}
]`

const fixtureIndoorBackupCandidates = `[
  {"name": "Lisbon Story Centre", "description": "Interactive city history exhibition", "source_url": "https://example.com/lisbon/story-centre"},
  {"name": "Museu do Oriente", "description": "Asian art museum in a dockside warehouse", "source_url": "https://example.com/lisbon/oriente"}
]`

const fixtureRestaurantCandidates = `[
  {"name": "Ze dos Cornos", "description": "Traditional tasca near Mouraria", "source_url": "https://example.com/lisbon/ze-dos-cornos"},
  {"name": "PSI", "description": "Vegan tasting menus in a garden setting", "source_url": "https://example.com/lisbon/psi"},
  {"name": "The Food Temple", "description": "Plant-based spot in Mouraria", "source_url": "https://example.com/lisbon/food-temple"},
  {"name": "Jardim das Cerejas", "description": "Vegetarian buffet downtown", "source_url": "https://example.com/lisbon/jardim"},
  {"name": "Honest Greens", "description": "Market-driven grain bowls", "source_url": "https://example.com/lisbon/honest-greens"},
  {"name": "Os Tibetanos", "description": "Tibetan vegetarian restaurant", "source_url": "https://example.com/lisbon/tibetanos"}
]`

const fixtureTripRequestResponse = `{
  "destination": "Lisbon",
  "trip_length_days": 3,
  "start_date": null,
  "end_date": null,
  "travelers": 2,
  "budget_level": "mid",
  "pace": "balanced",
  "interests": ["history", "food"],
  "constraints": [],
  "missing_info_questions": []
}`

const fixtureEvaluatorResponse = `{"score": 95, "fixes": []}`

// LLMApiClientFixtureMock embeds mocked logic for the llm api client,
// answering every prompt kind from canned content so the full planning
// pipeline works offline. Requests are told apart by markers the services
// put into the user content.
type LLMApiClientFixtureMock struct {
}

// NewLLMApiClientFixtureMock creates a new instance of LLMApiClientFixtureMock
func NewLLMApiClientFixtureMock() *LLMApiClientFixtureMock {
	return &LLMApiClientFixtureMock{}
}

// Complete routes on the request shape: candidate extraction gets a canned
// per-category array, generation and repair get the itinerary fixture,
// evaluation gets a passing verdict, and anything else is treated as intent
// extraction.
func (c *LLMApiClientFixtureMock) Complete(ctx context.Context, system, user string, maxTokens int, temperature float32) (string, error) {
	switch {
	case strings.Contains(user, "Search results:"):
		return fixtureCandidateArray(user), nil
	case strings.Contains(user, "Allowed attractions"):
		return fixtureItineraryJSON()
	case strings.Contains(user, "Itinerary:"):
		return fixtureEvaluatorResponse, nil
	default:
		return fixtureTripRequestResponse, nil
	}
}

func fixtureCandidateArray(user string) string {
	switch {
	case strings.Contains(user, "Category: restaurant"):
		return fixtureRestaurantCandidates
	case strings.Contains(user, "Category: indoor_backup"):
		return fixtureIndoorBackupCandidates
	default:
		return fixtureAttractionCandidates
	}
}

func fixtureItineraryJSON() (string, error) {
	itinerary, err := util.ReadItineraryFromJSON(config.GetResourcePath(config.ITINERARY_RESOURCE))
	if err != nil {
		fmt.Println("Could not read itinerary from json")
		return "", err
	}
	encoded, err := json.Marshal(itinerary)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}
