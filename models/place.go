package models

// PlaceSummary is the first step of the places protocol: a text search hit
// carrying just enough to drive the details lookup.
type PlaceSummary struct {
	PlaceID string `json:"place_id"`
	Name    string `json:"name"`
	Address string `json:"formatted_address"`
}

// PlaceDetails is the billing-sensitive details payload, requested with a
// minimal field mask.
type PlaceDetails struct {
	PlaceID   string   `json:"place_id"`
	Name      string   `json:"name"`
	Address   string   `json:"formatted_address"`
	Rating    float64  `json:"rating"`
	PhotoRefs []string `json:"photo_refs,omitempty"`
	PhotoURLs []string `json:"photo_urls,omitempty"`
}
