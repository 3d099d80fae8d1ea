package config

import (
	"os"
	"path/filepath"
)

// Redis Config
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Allowed-list caps. These bound prompt size, not candidate quality.
const MAX_ALLOWED_ATTRACTIONS = 12
const MAX_ALLOWED_RESTAURANTS = 10
const MAX_ALLOWED_INDOOR_BACKUPS = 6

// Candidate pool config
const SEARCH_RESULTS_PER_QUERY = 5
const MAX_CANDIDATES_PER_CATEGORY = 20
const JUNK_NAME_MAX_LENGTH = 60

// Repair loop config: two repair rounds, each with one schema-fix fallback
// call, applied uniformly to every request path.
const MAX_REPAIR_ATTEMPTS = 2
const EVALUATOR_SCORE_THRESHOLD = 90

// Generative step config
const GENERATION_MAX_TOKENS = 4096
const EXTRACTION_MAX_TOKENS = 1024
const GENERATION_TEMPERATURE = 0.4
const EXTRACTION_TEMPERATURE = 0.0

// Places cache TTLs (hours)
const PLACE_DETAILS_TTL_HOURS = 72
const PLACE_PHOTO_TTL_HOURS = 72
const ITINERARY_RUN_TTL_HOURS = 24

// Place enrichment worker pool size
const PLACE_ENRICHER_WORKERS = 4

// External endpoints
const SEARCH_ENDPOINT_BASE = "https://api.tavily.com"
const PLACES_ENDPOINT_BASE = "https://maps.googleapis.com/maps/api/place"

// Run artifacts directory name, relative to BaseDir.
const RUNS_DIR = "runs"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const SEARCH_RESULTS_RESOURCE = "search_results.json"
const ITINERARY_RESOURCE = "itinerary.json"
const PLACE_DETAILS_RESOURCE = "place_details.json"

// RedisAddr returns the Redis address, overridable via REDIS_ADDR.
func RedisAddr() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}
	return "redis:6379"
}

// SearchAPIKey returns the search collaborator key from the environment.
func SearchAPIKey() string {
	return os.Getenv("SEARCH_API_KEY")
}

// OpenAIAPIKey returns the generative collaborator key from the environment.
func OpenAIAPIKey() string {
	return os.Getenv("OPENAI_API_KEY")
}

// OpenAIModel returns the chat model name, defaulting to gpt-4o-mini.
func OpenAIModel() string {
	if m := os.Getenv("OPENAI_MODEL"); m != "" {
		return m
	}
	return "gpt-4o-mini"
}

// PlacesAPIKey returns the places collaborator key from the environment.
func PlacesAPIKey() string {
	return os.Getenv("PLACES_API_KEY")
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}

// GetRunsPath returns the directory run artifacts are written under.
func GetRunsPath() string {
	return filepath.Join(BaseDir(), RUNS_DIR)
}
