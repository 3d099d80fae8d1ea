package services

import (
	"ts-server/models"
)

// ProjectAllowedLists reduces a candidate pool into the three capped,
// ordered, deduplicated name lists used as the constraint surface for
// generation. Pure: no I/O, no failure modes, empty input yields empty lists.
func ProjectAllowedLists(candidates []models.Candidate, maxAttractions, maxRestaurants, maxIndoorBackups int) models.AllowedLists {
	return models.AllowedLists{
		Attractions:   projectCategory(candidates, models.CATEGORY_ATTRACTION, maxAttractions),
		Restaurants:   projectCategory(candidates, models.CATEGORY_RESTAURANT, maxRestaurants),
		IndoorBackups: projectCategory(candidates, models.CATEGORY_INDOOR_BACKUP, maxIndoorBackups),
	}
}

// projectCategory extracts names of one category, deduplicating by
// lowercase-trimmed identity with first-seen order and casing winning.
func projectCategory(candidates []models.Candidate, category string, cap int) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, c := range candidates {
		if c.Category != category {
			continue
		}
		key := c.Key()
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		names = append(names, c.Name)
		if cap > 0 && len(names) == cap {
			break
		}
	}
	return names
}
