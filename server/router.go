package server

import (
	"ts-server/server/handlers"

	"github.com/gorilla/mux"
)

type Router struct {
	itineraryHandler *handlers.ItineraryHandler
	router           *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	itineraryHandler *handlers.ItineraryHandler,
	router *mux.Router) *Router {
	return &Router{
		itineraryHandler: itineraryHandler,
		router:           router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects a PlanTripRequest JSON body
	r.router.HandleFunc("/v1/itinerary/plan", r.itineraryHandler.PlanTrip).Methods("POST")

	r.router.HandleFunc("/v1/itinerary/{runId}", r.itineraryHandler.GetRun).Methods("GET")

	r.router.HandleFunc("/ping", r.itineraryHandler.Ping).Methods("GET")
}
