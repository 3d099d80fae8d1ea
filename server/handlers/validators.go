package handlers

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
)

var errTripLength = errors.New("trip length must be 1-30 days (set trip_length_days or a valid date range)")

func RegisterCustomValidators(v *validator.Validate) {
	// Register the custom validation function
	v.RegisterValidation("tripDatesOrdered", validateTripDatesOrdered)
}

// validateTripDatesOrdered checks that end_date is not before start_date.
// Format errors are left to the datetime tag.
func validateTripDatesOrdered(fl validator.FieldLevel) bool {
	request := fl.Parent().Interface().(PlanTripRequest)
	if request.StartDate == "" || request.EndDate == "" {
		return true
	}
	start, err := time.Parse("2006-01-02", request.StartDate)
	if err != nil {
		return true
	}
	end, err := time.Parse("2006-01-02", request.EndDate)
	if err != nil {
		return true
	}
	return !end.Before(start)
}
