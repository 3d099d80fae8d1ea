package search

import (
	"fmt"

	"ts-server/config"
	"ts-server/models"
	"ts-server/util"
)

// SearchApiClientMock embeds mocked logic for the search api client
type SearchApiClientMock struct {
}

// NewSearchApiClientMock creates a new instance of SearchApiClientMock
func NewSearchApiClientMock() *SearchApiClientMock {
	return &SearchApiClientMock{}
}

// Search returns canned results from the resources fixture for any query.
func (c *SearchApiClientMock) Search(query string, maxResults int) ([]models.SearchResult, error) {
	response, err := util.ReadSearchResponseFromJSON(config.GetResourcePath(config.SEARCH_RESULTS_RESOURCE))
	if err != nil {
		fmt.Println("Could not read search response from json")
		return nil, err
	}

	results := response.Results
	if maxResults > 0 && len(results) > maxResults {
		results = results[:maxResults]
	}
	return results, nil
}
