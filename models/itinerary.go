package models

// Block is a single scheduled attraction-only time slot within a day.
// Its title must be an allowed attraction name, never a restaurant.
type Block struct {
	Time    string `json:"time"`
	Title   string `json:"title"`
	Details string `json:"details,omitempty"`
}

// DayPlan is one day of the itinerary. Meals encode
// "MealType: Restaurant - Dish" strings, kept flat so the generative step
// produces them directly.
type DayPlan struct {
	Day    int      `json:"day"`
	Theme  string   `json:"theme"`
	Blocks []Block  `json:"blocks"`
	Meals  []string `json:"meals"`
	Notes  []string `json:"notes"`
}

// Itinerary is the full multi-day plan. Repair passes replace it wholesale,
// never patch it in place.
type Itinerary struct {
	Summary     string    `json:"summary"`
	Days        []DayPlan `json:"days"`
	MustBook    []string  `json:"must_book"`
	RainBackups []string  `json:"rain_backups"`
}
