package redis

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"ts-server/config"
	"ts-server/db"
	"ts-server/models"
)

const PLACE_DETAILS_KEY_FORMAT = "place_details_v1:%s"
const PLACE_PHOTO_KEY_FORMAT = "place_photo_v1:%s"
const ITINERARY_RUN_KEY_FORMAT = "itinerary_run_v1:%s"

// RedisPlaceDAO handles cached place and itinerary-run storage.
type RedisPlaceDAO struct {
	client db.CacheClient
}

// NewRedisPlaceDAO initializes a RedisPlaceDAO with the cache client.
func NewRedisPlaceDAO(client db.CacheClient) *RedisPlaceDAO {
	return &RedisPlaceDAO{client: client}
}

// contentKey derives a stable cache key from arbitrary content.
func contentKey(parts ...string) string {
	h := sha1.Sum([]byte(strings.ToLower(strings.Join(parts, "|"))))
	return hex.EncodeToString(h[:])
}

// SetPlaceDetails caches resolved details for a venue name within a city.
func (dao *RedisPlaceDAO) SetPlaceDetails(name, city string, details *models.PlaceDetails) error {
	key := fmt.Sprintf(PLACE_DETAILS_KEY_FORMAT, contentKey(name, city))
	data, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("failed to marshal place details for %q: %w", name, err)
	}
	ttl := time.Duration(config.PLACE_DETAILS_TTL_HOURS) * time.Hour
	if err := dao.client.Set(key, string(data), ttl); err != nil {
		return fmt.Errorf("failed to set place details in cache: %w", err)
	}
	return nil
}

// GetPlaceDetails retrieves cached details for a venue name within a city.
// A miss returns (nil, nil).
func (dao *RedisPlaceDAO) GetPlaceDetails(name, city string) (*models.PlaceDetails, error) {
	key := fmt.Sprintf(PLACE_DETAILS_KEY_FORMAT, contentKey(name, city))
	str, err := dao.client.Get(key)
	if err == db.ErrCacheMiss {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get place details from cache: %w", err)
	}
	var details models.PlaceDetails
	if err := json.Unmarshal([]byte(str), &details); err != nil {
		return nil, fmt.Errorf("failed to unmarshal place details JSON: %w", err)
	}
	return &details, nil
}

// SetPhotoURL caches the resolved image URL for a photo reference.
func (dao *RedisPlaceDAO) SetPhotoURL(photoRef, url string) error {
	key := fmt.Sprintf(PLACE_PHOTO_KEY_FORMAT, contentKey(photoRef))
	ttl := time.Duration(config.PLACE_PHOTO_TTL_HOURS) * time.Hour
	if err := dao.client.Set(key, url, ttl); err != nil {
		return fmt.Errorf("failed to set photo url in cache: %w", err)
	}
	return nil
}

// GetPhotoURL retrieves the cached image URL for a photo reference.
// A miss returns ("", nil).
func (dao *RedisPlaceDAO) GetPhotoURL(photoRef string) (string, error) {
	key := fmt.Sprintf(PLACE_PHOTO_KEY_FORMAT, contentKey(photoRef))
	url, err := dao.client.Get(key)
	if err == db.ErrCacheMiss {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get photo url from cache: %w", err)
	}
	return url, nil
}

// SetItineraryRun stores a finished run's itinerary and validation report
// under its run id for later retrieval.
func (dao *RedisPlaceDAO) SetItineraryRun(runID string, run interface{}) error {
	key := fmt.Sprintf(ITINERARY_RUN_KEY_FORMAT, runID)
	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("failed to marshal itinerary run %s: %w", runID, err)
	}
	ttl := time.Duration(config.ITINERARY_RUN_TTL_HOURS) * time.Hour
	if err := dao.client.Set(key, string(data), ttl); err != nil {
		return fmt.Errorf("failed to set itinerary run in cache: %w", err)
	}
	return nil
}

// GetItineraryRun retrieves a stored run as raw JSON. A miss returns ("", nil).
func (dao *RedisPlaceDAO) GetItineraryRun(runID string) (string, error) {
	key := fmt.Sprintf(ITINERARY_RUN_KEY_FORMAT, runID)
	str, err := dao.client.Get(key)
	if err == db.ErrCacheMiss {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get itinerary run from cache: %w", err)
	}
	return str, nil
}

// ListItineraryRunIDs returns the run ids of all stored itinerary runs.
func (dao *RedisPlaceDAO) ListItineraryRunIDs() ([]string, error) {
	pattern := fmt.Sprintf(ITINERARY_RUN_KEY_FORMAT, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list itinerary run keys: %w", err)
	}
	prefix := fmt.Sprintf(ITINERARY_RUN_KEY_FORMAT, "")
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}
