package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ts-server/models"
)

func TestProjectAllowedLists_SplitsByCategory(t *testing.T) {
	// Arrange
	candidates := []models.Candidate{
		{Name: "Belem Tower", Category: models.CATEGORY_ATTRACTION},
		{Name: "Time Out Market", Category: models.CATEGORY_RESTAURANT},
		{Name: "Oceanario de Lisboa", Category: models.CATEGORY_INDOOR_BACKUP},
		{Name: "Jeronimos Monastery", Category: models.CATEGORY_ATTRACTION},
	}

	// Act
	lists := ProjectAllowedLists(candidates, 12, 10, 6)

	// Assert
	assert.Equal(t, []string{"Belem Tower", "Jeronimos Monastery"}, lists.Attractions)
	assert.Equal(t, []string{"Time Out Market"}, lists.Restaurants)
	assert.Equal(t, []string{"Oceanario de Lisboa"}, lists.IndoorBackups)
}

func TestProjectAllowedLists_DedupFirstSeenWins(t *testing.T) {
	// Arrange. Identity is lowercase-trimmed, first-seen casing survives.
	candidates := []models.Candidate{
		{Name: "Cafe A", Category: models.CATEGORY_RESTAURANT},
		{Name: "cafe a ", Category: models.CATEGORY_RESTAURANT},
		{Name: "Cafe B", Category: models.CATEGORY_RESTAURANT},
	}

	// Act
	lists := ProjectAllowedLists(candidates, 12, 10, 6)

	// Assert
	assert.Equal(t, []string{"Cafe A", "Cafe B"}, lists.Restaurants)
}

func TestProjectAllowedLists_CapsPerCategory(t *testing.T) {
	// Arrange
	candidates := []models.Candidate{
		{Name: "One", Category: models.CATEGORY_ATTRACTION},
		{Name: "Two", Category: models.CATEGORY_ATTRACTION},
		{Name: "Three", Category: models.CATEGORY_ATTRACTION},
	}

	// Act
	lists := ProjectAllowedLists(candidates, 2, 10, 6)

	// Assert
	assert.Equal(t, []string{"One", "Two"}, lists.Attractions)
}

func TestProjectAllowedLists_EmptyInput(t *testing.T) {
	// Act
	lists := ProjectAllowedLists(nil, 12, 10, 6)

	// Assert
	if !lists.Empty() {
		t.Errorf("Expected empty lists, got %+v", lists)
	}
}

func TestProjectAllowedLists_SkipsBlankNames(t *testing.T) {
	// Arrange
	candidates := []models.Candidate{
		{Name: "   ", Category: models.CATEGORY_ATTRACTION},
		{Name: "Belem Tower", Category: models.CATEGORY_ATTRACTION},
	}

	// Act
	lists := ProjectAllowedLists(candidates, 12, 10, 6)

	// Assert
	assert.Equal(t, []string{"Belem Tower"}, lists.Attractions)
}
