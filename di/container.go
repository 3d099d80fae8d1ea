package di

import (
	"context"
	"fmt"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"ts-server/api"
	"ts-server/api/llm"
	"ts-server/api/places"
	"ts-server/api/search"
	"ts-server/config"
	redisdao "ts-server/dao/redis"
	"ts-server/db"
	"ts-server/server"
	"ts-server/server/handlers"
	services "ts-server/service"
)

// Container holds all application dependencies.
type Container struct {
	CacheClient         db.CacheClient
	RedisPlaceDao       *redisdao.RedisPlaceDAO
	SearchAPI           search.SearchAPI
	LLMAPI              llm.LLMAPI
	PlacesAPI           places.PlacesAPI
	CandidatePool       *services.CandidatePoolService
	Planner             *services.PlannerService
	PlaceEnricher       *services.PlaceEnricherService
	IntentService       *services.IntentService
	TripService         *services.TripService
	ItineraryHandler    *handlers.ItineraryHandler
	MuxRouter           *mux.Router
	Router              *server.Router
	TripSenseHttpServer *server.TripSenseHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	// Initialize the cache client
	var cacheClient db.CacheClient
	if env != "prod" {
		cacheClient = db.NewMockCacheClient()
		log.Printf("Using in-memory cache")
	} else {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     config.RedisAddr(),
			Password: config.REDIS_DB_PASSWORD,
			DB:       config.REDIS_DB,
		})
		cacheClient = db.NewRedisCacheClient(ctx, redisInternalClient)
	}

	// Initialize the place DAO
	redisPlaceDao := redisdao.NewRedisPlaceDAO(cacheClient)

	// Initialize the external collaborators - mocks outside prod
	var searchAPI search.SearchAPI
	var llmAPI llm.LLMAPI
	var placesAPI places.PlacesAPI
	if env != "prod" {
		searchAPI = search.NewSearchApiClientMock()
		llmAPI = llm.NewLLMApiClientFixtureMock()
		placesAPI = places.NewPlacesApiClientMock()
		log.Printf("Using mock collaborators")
	} else {
		log.Printf("Using prod collaborators")

		searchClient, err := search.NewSearchApiClient(api.NewHTTPClient(config.SEARCH_ENDPOINT_BASE), config.SearchAPIKey())
		if err != nil {
			panic(fmt.Sprintf("Failed to initialize search client: %v", err))
		}
		searchAPI = searchClient

		llmClient, err := llm.NewOpenAILLMClient(config.OpenAIAPIKey(), config.OpenAIModel())
		if err != nil {
			panic(fmt.Sprintf("Failed to initialize llm client: %v", err))
		}
		llmAPI = llmClient

		placesClient, err := places.NewPlacesApiClient(api.NewHTTPClient(config.PLACES_ENDPOINT_BASE), config.PlacesAPIKey())
		if err != nil {
			panic(fmt.Sprintf("Failed to initialize places client: %v", err))
		}
		placesAPI = placesClient
	}

	// Initialize service layer
	candidatePool := services.NewCandidatePoolService(searchAPI, llmAPI)
	planner := services.NewPlannerService(llmAPI)
	placeEnricher := services.NewPlaceEnricherService(placesAPI, redisPlaceDao)
	intentService := services.NewIntentService(llmAPI)
	tripService := services.NewTripService(candidatePool, planner, placeEnricher, redisPlaceDao)

	// Initialize itinerary handler
	itineraryHandler := handlers.NewItineraryHandler(tripService, intentService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(itineraryHandler, muxRouter)

	// initialize trip sense server
	tripSenseHttpServer := server.NewTripSenseHttpServer(router, muxRouter)

	return &Container{
		CacheClient:         cacheClient,
		RedisPlaceDao:       redisPlaceDao,
		SearchAPI:           searchAPI,
		LLMAPI:              llmAPI,
		PlacesAPI:           placesAPI,
		CandidatePool:       candidatePool,
		Planner:             planner,
		PlaceEnricher:       placeEnricher,
		IntentService:       intentService,
		TripService:         tripService,
		ItineraryHandler:    itineraryHandler,
		MuxRouter:           muxRouter,
		Router:              router,
		TripSenseHttpServer: tripSenseHttpServer,
	}
}
