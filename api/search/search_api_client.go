package search

import (
	"fmt"

	"ts-server/api"
	"ts-server/models"
)

// searchRequest is the JSON body of the search endpoint.
type searchRequest struct {
	APIKey     string `json:"api_key"`
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

// SearchApiClient embeds the common HTTPClient
type SearchApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
	apiKey          string
}

// NewSearchApiClient creates a new instance of SearchApiClient. A missing
// API key fails here, before any request is attempted.
func NewSearchApiClient(httpClient *api.HTTPClient, apiKey string) (*SearchApiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("search api key is not set")
	}
	return &SearchApiClient{
		HTTPClient: httpClient,
		apiKey:     apiKey,
	}, nil
}

// Search runs one query and decodes the response into SearchResults.
func (c *SearchApiClient) Search(query string, maxResults int) ([]models.SearchResult, error) {
	body := searchRequest{
		APIKey:     c.apiKey,
		Query:      query,
		MaxResults: maxResults,
	}

	var response models.SearchResponse
	if err := c.Request("POST", "/search", nil, body, &response); err != nil {
		return nil, fmt.Errorf("search request failed for %q: %w", query, err)
	}
	return response.Results, nil
}
