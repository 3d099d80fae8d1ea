package places

import (
	"fmt"
	"net/url"

	"ts-server/api"
	"ts-server/models"
)

// Field masks are explicit and minimal: details lookups are billed per field.
const TEXT_SEARCH_FIELDS = "place_id,name,formatted_address"
const DETAILS_FIELDS = "place_id,name,formatted_address,rating,photo"

const PHOTO_MAX_WIDTH = "800"

// textSearchResponse is the envelope of the /textsearch endpoint.
type textSearchResponse struct {
	Status  string                `json:"status"`
	Results []models.PlaceSummary `json:"results"`
}

// detailsResponse is the envelope of the /details endpoint.
type detailsResponse struct {
	Status string        `json:"status"`
	Result detailsResult `json:"result"`
}

type detailsResult struct {
	PlaceID string       `json:"place_id"`
	Name    string       `json:"name"`
	Address string       `json:"formatted_address"`
	Rating  float64      `json:"rating"`
	Photos  []photoEntry `json:"photos"`
}

type photoEntry struct {
	PhotoReference string `json:"photo_reference"`
}

// PlacesApiClient embeds the common HTTPClient
type PlacesApiClient struct {
	*api.HTTPClient
	apiKey string
}

// NewPlacesApiClient creates a new instance of PlacesApiClient. A missing
// API key fails here, before any request is attempted.
func NewPlacesApiClient(httpClient *api.HTTPClient, apiKey string) (*PlacesApiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("places api key is not set")
	}
	return &PlacesApiClient{
		HTTPClient: httpClient,
		apiKey:     apiKey,
	}, nil
}

// TextSearch resolves a venue name within a city to its first matching place.
func (c *PlacesApiClient) TextSearch(name, city string) (*models.PlaceSummary, error) {
	query := url.Values{}
	query.Set("query", name+" "+city)
	query.Set("fields", TEXT_SEARCH_FIELDS)
	query.Set("key", c.apiKey)

	var response textSearchResponse
	if err := c.Get("/textsearch/json", query, &response); err != nil {
		return nil, fmt.Errorf("text search failed for %q: %w", name, err)
	}
	if response.Status != "OK" || len(response.Results) == 0 {
		return nil, fmt.Errorf("no place found for %q (status=%s)", name, response.Status)
	}
	return &response.Results[0], nil
}

// Details looks up the billed details for a place id.
func (c *PlacesApiClient) Details(placeID string) (*models.PlaceDetails, error) {
	query := url.Values{}
	query.Set("place_id", placeID)
	query.Set("fields", DETAILS_FIELDS)
	query.Set("key", c.apiKey)

	var response detailsResponse
	if err := c.Get("/details/json", query, &response); err != nil {
		return nil, fmt.Errorf("details lookup failed for %s: %w", placeID, err)
	}
	if response.Status != "OK" {
		return nil, fmt.Errorf("details lookup for %s returned status %s", placeID, response.Status)
	}

	details := &models.PlaceDetails{
		PlaceID: response.Result.PlaceID,
		Name:    response.Result.Name,
		Address: response.Result.Address,
		Rating:  response.Result.Rating,
	}
	for _, p := range response.Result.Photos {
		details.PhotoRefs = append(details.PhotoRefs, p.PhotoReference)
	}
	return details, nil
}

// PhotoURL resolves a photo reference to the image URL behind the API's
// redirect response.
func (c *PlacesApiClient) PhotoURL(photoRef string) (string, error) {
	query := url.Values{}
	query.Set("photo_reference", photoRef)
	query.Set("maxwidth", PHOTO_MAX_WIDTH)
	query.Set("key", c.apiKey)

	loc, err := c.ResolveRedirect("/photo", query)
	if err != nil {
		return "", fmt.Errorf("photo resolution failed: %w", err)
	}
	return loc, nil
}
