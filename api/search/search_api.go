package search

import (
	"ts-server/models"
)

// SearchAPI defines the interface for the web search collaborator
type SearchAPI interface {
	Search(query string, maxResults int) ([]models.SearchResult, error)
}
