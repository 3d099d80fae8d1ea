package services

import (
	"log"
	"sync"
	"sync/atomic"

	"ts-server/api/places"
	"ts-server/config"
	redisdao "ts-server/dao/redis"
	"ts-server/models"
)

// PlaceEnricherService resolves venue names to address/rating/photo details
// through the places collaborator, cache-first with a multi-day TTL.
type PlaceEnricherService struct {
	placesAPI places.PlacesAPI
	placeDao  *redisdao.RedisPlaceDAO
	workers   int
}

// NewPlaceEnricherService constructs a new PlaceEnricherService.
func NewPlaceEnricherService(placesAPI places.PlacesAPI, placeDao *redisdao.RedisPlaceDAO) *PlaceEnricherService {
	return &PlaceEnricherService{
		placesAPI: placesAPI,
		placeDao:  placeDao,
		workers:   config.PLACE_ENRICHER_WORKERS,
	}
}

// EnrichPlaces resolves details for each name with a fixed-size worker pool:
// workers pull indices from a shared cursor until it is exhausted, one place
// at a time. A failed place is skipped; the aggregate is keyed by name so
// completion order never matters.
func (s *PlaceEnricherService) EnrichPlaces(names []string, city string) map[string]*models.PlaceDetails {
	results := make(map[string]*models.PlaceDetails)
	if len(names) == 0 {
		return results
	}

	var mu sync.Mutex
	var cursor int64 = -1
	var wg sync.WaitGroup

	workers := s.workers
	if workers > len(names) {
		workers = len(names)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				i := int(atomic.AddInt64(&cursor, 1))
				if i >= len(names) {
					return
				}
				name := names[i]
				details, err := s.resolvePlace(name, city)
				if err != nil {
					log.Printf("[PlaceEnricherService] Skipping %q: %v", name, err)
					continue
				}
				mu.Lock()
				results[name] = details
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	return results
}

// resolvePlace runs the three-step protocol for one venue, consulting the
// cache before each billed call.
func (s *PlaceEnricherService) resolvePlace(name, city string) (*models.PlaceDetails, error) {
	cached, err := s.placeDao.GetPlaceDetails(name, city)
	if err != nil {
		log.Printf("[PlaceEnricherService] Cache read failed for %q: %v", name, err)
	}
	if cached != nil {
		return cached, nil
	}

	summary, err := s.placesAPI.TextSearch(name, city)
	if err != nil {
		return nil, err
	}

	details, err := s.placesAPI.Details(summary.PlaceID)
	if err != nil {
		return nil, err
	}

	// Resolve at most one photo; the rest only costs money.
	if len(details.PhotoRefs) > 0 {
		url := s.resolvePhoto(details.PhotoRefs[0])
		if url != "" {
			details.PhotoURLs = []string{url}
		}
	}

	if err := s.placeDao.SetPlaceDetails(name, city, details); err != nil {
		log.Printf("[PlaceEnricherService] Cache write failed for %q: %v", name, err)
	}
	return details, nil
}

func (s *PlaceEnricherService) resolvePhoto(photoRef string) string {
	cached, err := s.placeDao.GetPhotoURL(photoRef)
	if err != nil {
		log.Printf("[PlaceEnricherService] Photo cache read failed: %v", err)
	}
	if cached != "" {
		return cached
	}

	url, err := s.placesAPI.PhotoURL(photoRef)
	if err != nil {
		log.Printf("[PlaceEnricherService] Photo resolution failed: %v", err)
		return ""
	}
	if err := s.placeDao.SetPhotoURL(photoRef, url); err != nil {
		log.Printf("[PlaceEnricherService] Photo cache write failed: %v", err)
	}
	return url
}
