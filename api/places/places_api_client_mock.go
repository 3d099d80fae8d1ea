package places

import (
	"fmt"

	"ts-server/config"
	"ts-server/models"
	"ts-server/util"
)

// PlacesApiClientMock embeds mocked logic for the places api client
type PlacesApiClientMock struct {
}

// NewPlacesApiClientMock creates a new instance of PlacesApiClientMock
func NewPlacesApiClientMock() *PlacesApiClientMock {
	return &PlacesApiClientMock{}
}

// TextSearch returns a summary derived from the fixture details.
func (c *PlacesApiClientMock) TextSearch(name, city string) (*models.PlaceSummary, error) {
	details, err := c.Details("")
	if err != nil {
		return nil, err
	}
	return &models.PlaceSummary{
		PlaceID: details.PlaceID,
		Name:    name,
		Address: details.Address,
	}, nil
}

// Details returns the canned fixture details for any place id.
func (c *PlacesApiClientMock) Details(placeID string) (*models.PlaceDetails, error) {
	details, err := util.ReadPlaceDetailsFromJSON(config.GetResourcePath(config.PLACE_DETAILS_RESOURCE))
	if err != nil {
		fmt.Println("Could not read place details from json")
		return nil, err
	}
	return details, nil
}

// PhotoURL returns a static URL for any photo reference.
func (c *PlacesApiClientMock) PhotoURL(photoRef string) (string, error) {
	return "https://photos.example.com/" + photoRef, nil
}
