package places

import (
	"ts-server/models"
)

// PlacesAPI defines the interface for the places/photo collaborator. The
// protocol is three independent steps: text search to find the place id,
// details lookup for the billing-sensitive fields, and photo-reference
// resolution to a concrete image URL.
type PlacesAPI interface {
	TextSearch(name, city string) (*models.PlaceSummary, error)
	Details(placeID string) (*models.PlaceDetails, error)
	PhotoURL(photoRef string) (string, error)
}
