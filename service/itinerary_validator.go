package services

import (
	"fmt"
	"sort"
	"strings"

	"ts-server/models"
)

// RANGE_DELIMITER separates start/end in block times and restaurant/dish in
// meal strings.
const RANGE_DELIMITER = " - "

// dietarySignals are the substrings accepted as evidence that a meal suits a
// vegetarian constraint.
var dietarySignals = []string{
	"vegetarian", "vegan", "veg", "plant", "tofu", "paneer", "lentil", "chickpea", "vegetable",
}

// paceBlockRange returns the allowed per-day block count range for a pace.
// Unknown paces fall back to the balanced range.
func paceBlockRange(pace string) (int, int) {
	switch pace {
	case models.PACE_RELAXED:
		return 2, 3
	case models.PACE_PACKED:
		return 4, 6
	default:
		return 3, 4
	}
}

// ValidateItinerary checks a generated itinerary against the trip parameters
// and the allowed lists, collecting every violation rather than stopping at
// the first. Pure and deterministic: identical inputs always yield identical
// results, which is what lets the repair loop reason about termination.
func ValidateItinerary(trip *models.TripRequest, itinerary *models.Itinerary, lists models.AllowedLists) models.ValidationResult {
	violations := []string{}

	violations = append(violations, checkDayNumbering(trip, itinerary)...)

	minBlocks, maxBlocks := paceBlockRange(trip.Pace)
	vegetarian := trip.HasConstraint("vegetarian")
	for _, day := range itinerary.Days {
		violations = append(violations, checkDayBlocks(day, minBlocks, maxBlocks, trip.Pace, lists)...)
		violations = append(violations, checkDayNotes(day)...)
		violations = append(violations, checkDayMeals(day, lists, vegetarian)...)
	}

	for _, backup := range itinerary.RainBackups {
		if !models.ContainsFold(lists.IndoorBackups, backup) {
			violations = append(violations, fmt.Sprintf("rain backup %q is not in the allowed indoor backup list", backup))
		}
	}

	return models.ValidationResult{
		OK:         len(violations) == 0,
		Violations: violations,
	}
}

// checkDayNumbering verifies the day count and that day numbers are exactly
// 1..tripLengthDays with no gaps or duplicates.
func checkDayNumbering(trip *models.TripRequest, itinerary *models.Itinerary) []string {
	var violations []string

	if len(itinerary.Days) != trip.TripLengthDays {
		violations = append(violations, fmt.Sprintf(
			"itinerary has %d days, expected %d", len(itinerary.Days), trip.TripLengthDays))
	}

	numbers := make([]int, len(itinerary.Days))
	for i, day := range itinerary.Days {
		numbers[i] = day.Day
	}
	sort.Ints(numbers)
	for i, n := range numbers {
		if n != i+1 {
			violations = append(violations, fmt.Sprintf(
				"day numbers are not a contiguous 1..%d sequence: got %v", trip.TripLengthDays, numbers))
			break
		}
	}

	return violations
}

func checkDayBlocks(day models.DayPlan, minBlocks, maxBlocks int, pace string, lists models.AllowedLists) []string {
	var violations []string

	if len(day.Blocks) < minBlocks || len(day.Blocks) > maxBlocks {
		violations = append(violations, fmt.Sprintf(
			"day %d has %d blocks, expected %d-%d for pace %q", day.Day, len(day.Blocks), minBlocks, maxBlocks, pace))
	}

	for _, block := range day.Blocks {
		if !strings.Contains(block.Time, "-") {
			violations = append(violations, fmt.Sprintf(
				"day %d block %q has no time range delimiter in %q", day.Day, block.Title, block.Time))
		}

		title := strings.ToLower(block.Title)
		if strings.Contains(title, "lunch") || strings.Contains(title, "dinner") {
			violations = append(violations, fmt.Sprintf(
				"day %d block %q looks like a meal; meals belong in the meals list, not blocks", day.Day, block.Title))
		}

		if !models.ContainsFold(lists.Attractions, block.Title) {
			violations = append(violations, fmt.Sprintf(
				"day %d has invalid attraction %q: not in the allowed attraction list", day.Day, block.Title))
		}
	}

	return violations
}

func checkDayNotes(day models.DayPlan) []string {
	if len(day.Notes) < 2 {
		return []string{fmt.Sprintf("day %d has %d notes, expected at least 2", day.Day, len(day.Notes))}
	}
	return nil
}

func checkDayMeals(day models.DayPlan, lists models.AllowedLists, vegetarian bool) []string {
	var violations []string

	hasLunch := false
	hasDinner := false
	for _, meal := range day.Meals {
		if strings.HasPrefix(meal, "Lunch:") {
			hasLunch = true
		}
		if strings.HasPrefix(meal, "Dinner:") {
			hasDinner = true
		}

		restaurant := parseMealRestaurant(meal)
		if restaurant == "" || !models.ContainsFold(lists.Restaurants, restaurant) {
			violations = append(violations, fmt.Sprintf(
				"day %d has invalid restaurant %q in meal %q: not in the allowed restaurant list", day.Day, restaurant, meal))
		}

		if vegetarian && !hasDietarySignal(meal) {
			violations = append(violations, fmt.Sprintf(
				"day %d meal %q may not clearly indicate vegetarian options", day.Day, meal))
		}
	}

	if !hasLunch {
		violations = append(violations, fmt.Sprintf("day %d has no meal prefixed \"Lunch:\"", day.Day))
	}
	if !hasDinner {
		violations = append(violations, fmt.Sprintf("day %d has no meal prefixed \"Dinner:\"", day.Day))
	}

	return violations
}

// parseMealRestaurant extracts the restaurant from a
// "MealType: Restaurant - Dish" string. The type label is whatever precedes
// the first colon; the restaurant is the remainder up to the range delimiter.
func parseMealRestaurant(meal string) string {
	_, rest, found := strings.Cut(meal, ":")
	if !found {
		return ""
	}
	restaurant, _, _ := strings.Cut(rest, RANGE_DELIMITER)
	return strings.TrimSpace(restaurant)
}

func hasDietarySignal(meal string) bool {
	lower := strings.ToLower(meal)
	for _, signal := range dietarySignals {
		if strings.Contains(lower, signal) {
			return true
		}
	}
	return false
}
