package handlers

import (
    "encoding/json"
    "log"
    "net/http"
    "strings"
    "time"

    "github.com/go-playground/validator/v10"
    "github.com/gorilla/mux"

    "ts-server/models"
    services "ts-server/service"
)

// PlanTripRequest is the inbound JSON body of the plan endpoint. Callers
// provide either structured fields or a free-text intent to extract them from.
type PlanTripRequest struct {
    Intent              string   `json:"intent" validate:"omitempty,max=2000"`
    Destination         string   `json:"destination" validate:"required_without=Intent,max=120"`
    StartDate           string   `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
    EndDate             string   `json:"end_date" validate:"omitempty,datetime=2006-01-02,required_with=StartDate,tripDatesOrdered"`
    TripLengthDays      int      `json:"trip_length_days" validate:"omitempty,min=1,max=30"`
    Travelers           int      `json:"travelers" validate:"omitempty,min=1,max=20"`
    BudgetLevel         string   `json:"budget_level" validate:"omitempty,oneof=low mid high"`
    Pace                string   `json:"pace" validate:"omitempty,oneof=relaxed balanced packed"`
    Interests           []string `json:"interests"`
    Constraints         []string `json:"constraints"`
    IncludePlaceDetails bool     `json:"include_place_details"`
}

// TimelineEntry is one row of the UI-shaped per-day sequence, an activity
// block or a meal.
type TimelineEntry struct {
    Kind    string                `json:"kind"` // "activity" | "meal"
    Time    string                `json:"time,omitempty"`
    Title   string                `json:"title"`
    Details string                `json:"details,omitempty"`
    Place   *models.PlaceDetails  `json:"place,omitempty"`
}

// TimelineDay merges a day's blocks and meals into one ordered sequence.
type TimelineDay struct {
    Day      int             `json:"day"`
    Theme    string          `json:"theme"`
    Timeline []TimelineEntry `json:"timeline"`
    Notes    []string        `json:"notes"`
}

// UIItinerary is the response shape of the plan endpoint's itinerary field.
type UIItinerary struct {
    Summary     string        `json:"summary"`
    Days        []TimelineDay `json:"days"`
    MustBook    []string      `json:"must_book"`
    RainBackups []string      `json:"rain_backups"`
}

// PlanTripResponse is the plan endpoint's response envelope.
type PlanTripResponse struct {
    RunID        string                  `json:"run_id"`
    Itinerary    UIItinerary             `json:"itinerary"`
    AllowedLists models.AllowedLists     `json:"allowed_lists"`
    Validation   models.ValidationResult `json:"validation"`
}

type ItineraryHandler struct {
    tripService   *services.TripService
    intentService *services.IntentService
    validate      *validator.Validate
}

func NewItineraryHandler(tripService *services.TripService, intentService *services.IntentService) *ItineraryHandler {
    validate := validator.New()
    RegisterCustomValidators(validate)
    return &ItineraryHandler{
        tripService:   tripService,
        intentService: intentService,
        validate:      validate,
    }
}

// PlanTrip handles POST /v1/itinerary/plan
func (h *ItineraryHandler) PlanTrip(w http.ResponseWriter, r *http.Request) {
    // 1) Decode + validate the body
    var body PlanTripRequest
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "Invalid JSON body: "+err.Error(), http.StatusBadRequest)
        return
    }
    if err := h.validate.Struct(body); err != nil {
        http.Error(w, "Invalid request: "+err.Error(), http.StatusBadRequest)
        return
    }

    // 2) Build the trip request, extracting from free text when needed
    trip, err := h.buildTripRequest(r, &body)
    if err != nil {
        http.Error(w, "Invalid request: "+err.Error(), http.StatusBadRequest)
        return
    }

    // 3) Run the planning pipeline
    result, err := h.tripService.PlanTrip(r.Context(), trip, body.IncludePlaceDetails)
    if err != nil {
        log.Println("Error planning trip:", err)
        http.Error(w, err.Error(), http.StatusInternalServerError)
        return
    }

    // 4) Transform to the UI shape and write JSON
    response := PlanTripResponse{
        RunID:        result.RunID,
        Itinerary:    buildUIItinerary(result),
        AllowedLists: result.AllowedLists,
        Validation:   result.Validation,
    }

    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(http.StatusOK)
    if err := json.NewEncoder(w).Encode(response); err != nil {
        log.Println("Error encoding response:", err)
    }
}

// GetRun handles GET /v1/itinerary/{runId}
func (h *ItineraryHandler) GetRun(w http.ResponseWriter, r *http.Request) {
    runID := mux.Vars(r)["runId"]

    raw, err := h.tripService.GetRun(runID)
    if err != nil {
        log.Println("Error loading run:", err)
        http.Error(w, "Internal server error", http.StatusInternalServerError)
        return
    }
    if raw == "" {
        http.Error(w, "Run not found", http.StatusNotFound)
        return
    }

    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(http.StatusOK)
    if _, err := w.Write([]byte(raw)); err != nil {
        log.Println("Error writing response:", err)
    }
}

// Ping handles GET /ping
func (h *ItineraryHandler) Ping(w http.ResponseWriter, r *http.Request) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(http.StatusOK)
    json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// buildTripRequest assembles the immutable TripRequest, either from the
// structured fields or via the intent extraction step.
func (h *ItineraryHandler) buildTripRequest(r *http.Request, body *PlanTripRequest) (*models.TripRequest, error) {
    if body.Destination == "" {
        return h.intentService.ExtractTripRequest(r.Context(), body.Intent)
    }

    trip := &models.TripRequest{
        Destination: body.Destination,
        Travelers:   body.Travelers,
        BudgetLevel: body.BudgetLevel,
        Pace:        body.Pace,
        Interests:   body.Interests,
        Constraints: body.Constraints,
    }
    if body.StartDate != "" {
        trip.StartDate = &body.StartDate
    }
    if body.EndDate != "" {
        trip.EndDate = &body.EndDate
    }

    trip.TripLengthDays = body.TripLengthDays
    if trip.TripLengthDays == 0 && body.StartDate != "" && body.EndDate != "" {
        start, _ := time.Parse("2006-01-02", body.StartDate)
        end, _ := time.Parse("2006-01-02", body.EndDate)
        trip.TripLengthDays = int(end.Sub(start).Hours()/24) + 1
    }
    if trip.TripLengthDays < 1 || trip.TripLengthDays > 30 {
        return nil, errTripLength
    }

    if trip.Travelers == 0 {
        trip.Travelers = 1
    }
    if trip.BudgetLevel == "" {
        trip.BudgetLevel = models.BUDGET_MID
    }
    if trip.Pace == "" {
        trip.Pace = models.PACE_BALANCED
    }
    return trip, nil
}

// buildUIItinerary reshapes the planning result for the UI, merging each
// day's blocks and meals into one ordered timeline.
func buildUIItinerary(result *services.TripPlanResult) UIItinerary {
    ui := UIItinerary{
        Summary:     result.Itinerary.Summary,
        MustBook:    result.Itinerary.MustBook,
        RainBackups: result.Itinerary.RainBackups,
    }

    for _, day := range result.Itinerary.Days {
        ui.Days = append(ui.Days, TimelineDay{
            Day:      day.Day,
            Theme:    day.Theme,
            Timeline: mergeTimeline(day, result.Places),
            Notes:    day.Notes,
        })
    }
    return ui
}

// mergeTimeline interleaves blocks and meals deterministically: breakfast
// entries first, lunch after the morning half of the blocks, dinner and any
// remaining meals at the end.
func mergeTimeline(day models.DayPlan, places map[string]*models.PlaceDetails) []TimelineEntry {
    var breakfast, lunch, dinner, other []TimelineEntry
    for _, meal := range day.Meals {
        entry := TimelineEntry{Kind: "meal", Title: meal}
        label := strings.ToLower(meal)
        switch {
        case strings.HasPrefix(label, "breakfast:"):
            breakfast = append(breakfast, entry)
        case strings.HasPrefix(label, "lunch:"):
            lunch = append(lunch, entry)
        case strings.HasPrefix(label, "dinner:"):
            dinner = append(dinner, entry)
        default:
            other = append(other, entry)
        }
    }

    morning := (len(day.Blocks) + 1) / 2

    var timeline []TimelineEntry
    timeline = append(timeline, breakfast...)
    for i, block := range day.Blocks {
        if i == morning {
            timeline = append(timeline, lunch...)
            lunch = nil
        }
        timeline = append(timeline, TimelineEntry{
            Kind:    "activity",
            Time:    block.Time,
            Title:   block.Title,
            Details: block.Details,
            Place:   places[block.Title],
        })
    }
    timeline = append(timeline, lunch...)
    timeline = append(timeline, dinner...)
    timeline = append(timeline, other...)
    return timeline
}
