package util

import (
    "encoding/json"
    "fmt"
    "os"

    "ts-server/models"
)

// ReadSearchResponseFromJSON loads a SearchResponse from JSON on disk.
func ReadSearchResponseFromJSON(filePath string) (*models.SearchResponse, error) {
    data, err := os.ReadFile(filePath)
    if err != nil {
        return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
    }
    var resp models.SearchResponse
    if err := json.Unmarshal(data, &resp); err != nil {
        return nil, fmt.Errorf("failed to unmarshal SearchResponse: %w", err)
    }
    return &resp, nil
}

// ReadItineraryFromJSON loads an Itinerary from JSON on disk.
func ReadItineraryFromJSON(filePath string) (*models.Itinerary, error) {
    data, err := os.ReadFile(filePath)
    if err != nil {
        return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
    }
    var itinerary models.Itinerary
    if err := json.Unmarshal(data, &itinerary); err != nil {
        return nil, fmt.Errorf("failed to unmarshal Itinerary: %w", err)
    }
    return &itinerary, nil
}

// ReadPlaceDetailsFromJSON loads PlaceDetails from JSON on disk.
func ReadPlaceDetailsFromJSON(filePath string) (*models.PlaceDetails, error) {
    data, err := os.ReadFile(filePath)
    if err != nil {
        return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
    }
    var details models.PlaceDetails
    if err := json.Unmarshal(data, &details); err != nil {
        return nil, fmt.Errorf("failed to unmarshal PlaceDetails: %w", err)
    }
    return &details, nil
}

// PrintItineraryPartially prints key fields of an Itinerary.
func PrintItineraryPartially(itinerary *models.Itinerary) {
    fmt.Printf("Summary: %s\n", itinerary.Summary)
    fmt.Printf("Days: %d\n", len(itinerary.Days))
    for _, day := range itinerary.Days {
        fmt.Printf("Day %d (%s): %d blocks, %d meals\n", day.Day, day.Theme, len(day.Blocks), len(day.Meals))
    }
    fmt.Printf("Rain backups: %v\n", itinerary.RainBackups)
}
