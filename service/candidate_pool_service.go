package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"

	"ts-server/api/llm"
	"ts-server/api/search"
	"ts-server/config"
	"ts-server/models"
)

// searchTopic pairs a query template with the candidate category its results
// are extracted into.
type searchTopic struct {
	QueryFormat string
	Category    string
}

// searchTopics is the fixed query fan-out, broad enough to cover attractions,
// rainy-day backups and dining in one pass.
var searchTopics = []searchTopic{
	{"top attractions to visit in %s", models.CATEGORY_ATTRACTION},
	{"famous landmarks in %s", models.CATEGORY_ATTRACTION},
	{"best museums in %s", models.CATEGORY_ATTRACTION},
	{"family friendly things to do in %s", models.CATEGORY_ATTRACTION},
	{"indoor activities in %s for a rainy day", models.CATEGORY_INDOOR_BACKUP},
	{"popular restaurants in %s", models.CATEGORY_RESTAURANT},
	{"best vegetarian friendly restaurants in %s", models.CATEGORY_RESTAURANT},
}

// junkNameTerms are boilerplate fragments that mark an extracted "venue" as a
// listicle title rather than a real place.
var junkNameTerms = []string{"best", "top", "guide", "tripadvisor"}

const extractionSystemPrompt = "You extract real-world venue names from web search results. " +
	"Reply with only a JSON array; each element is an object with keys " +
	"\"name\", \"description\" and \"source_url\". Only include actual named venues. " +
	"Never invent venues that do not appear in the results."

// extractedCandidate is the element shape the extraction step must return.
type extractedCandidate struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	SourceURL   string `json:"source_url"`
}

// CandidatePoolService gathers, normalizes and deduplicates venue candidates
// for a destination city.
type CandidatePoolService struct {
	searchAPI search.SearchAPI
	llmAPI    llm.LLMAPI
}

// NewCandidatePoolService constructs a new CandidatePoolService.
func NewCandidatePoolService(searchAPI search.SearchAPI, llmAPI llm.LLMAPI) *CandidatePoolService {
	return &CandidatePoolService{
		searchAPI: searchAPI,
		llmAPI:    llmAPI,
	}
}

// BuildCandidatePool fires all topic searches concurrently, extracts typed
// candidates per batch, merges them with first-wins dedup and caps each
// category. A failed query or extraction only shrinks the pool; the build
// fails only when no candidate at all could be gathered.
func (s *CandidatePoolService) BuildCandidatePool(ctx context.Context, city string) ([]models.Candidate, error) {
	log.Printf("[CandidatePoolService] Building candidate pool for %q across %d topics", city, len(searchTopics))

	// One slot per topic keeps the merge order deterministic regardless of
	// which goroutine finishes first.
	batches := make([][]models.Candidate, len(searchTopics))
	var wg sync.WaitGroup
	for i, topic := range searchTopics {
		wg.Add(1)
		go func(i int, topic searchTopic) {
			defer wg.Done()
			candidates, err := s.buildTopicBatch(ctx, city, topic)
			if err != nil {
				log.Printf("[CandidatePoolService] Topic %q failed, skipping: %v", topic.QueryFormat, err)
				return
			}
			batches[i] = candidates
		}(i, topic)
	}
	wg.Wait()

	merged := mergeCandidateBatches(batches, config.MAX_CANDIDATES_PER_CATEGORY)
	if len(merged) == 0 {
		return nil, fmt.Errorf("no candidates could be gathered for %q", city)
	}

	log.Printf("[CandidatePoolService] Gathered %d candidates for %q", len(merged), city)
	return merged, nil
}

// buildTopicBatch runs one search query and normalizes its results through
// the extraction step.
func (s *CandidatePoolService) buildTopicBatch(ctx context.Context, city string, topic searchTopic) ([]models.Candidate, error) {
	query := fmt.Sprintf(topic.QueryFormat, city)
	results, err := s.searchAPI.Search(query, config.SEARCH_RESULTS_PER_QUERY)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	extracted, err := s.extractCandidates(ctx, city, topic.Category, results)
	if err != nil {
		return nil, fmt.Errorf("extraction failed: %w", err)
	}

	var candidates []models.Candidate
	for _, e := range extracted {
		candidate := models.Candidate{
			Name:        strings.TrimSpace(e.Name),
			Category:    topic.Category,
			SourceURL:   e.SourceURL,
			Description: e.Description,
		}
		if isJunkCandidate(candidate) {
			continue
		}
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}

// extractCandidates asks the generative step to normalize one result batch
// into a strictly-typed JSON array and rejects anything off-shape.
func (s *CandidatePoolService) extractCandidates(ctx context.Context, city, category string, results []models.SearchResult) ([]extractedCandidate, error) {
	batch, err := json.Marshal(results)
	if err != nil {
		return nil, err
	}

	user := fmt.Sprintf("City: %s\nCategory: %s\nSearch results:\n%s", city, category, batch)
	raw, err := s.llmAPI.Complete(ctx, extractionSystemPrompt, user, config.EXTRACTION_MAX_TOKENS, config.EXTRACTION_TEMPERATURE)
	if err != nil {
		return nil, err
	}

	return DecodeCandidateArray(raw)
}

// isJunkCandidate applies the junk-name heuristics: empty or overlong names
// and listicle boilerplate are dropped.
func isJunkCandidate(c models.Candidate) bool {
	if c.Name == "" || len(c.Name) > config.JUNK_NAME_MAX_LENGTH {
		return true
	}
	lower := strings.ToLower(c.Name)
	for _, term := range junkNameTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// mergeCandidateBatches concatenates batches in topic order, deduplicates by
// lowercase-trimmed name with first occurrence winning, then independently
// caps each category.
func mergeCandidateBatches(batches [][]models.Candidate, perCategoryCap int) []models.Candidate {
	seen := make(map[string]struct{})
	perCategory := make(map[string]int)
	var merged []models.Candidate
	for _, batch := range batches {
		for _, c := range batch {
			key := c.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			if perCategoryCap > 0 && perCategory[c.Category] >= perCategoryCap {
				continue
			}
			perCategory[c.Category]++
			merged = append(merged, c)
		}
	}
	return merged
}
