package api

import (
	"delivery-sim-service/internal/api/handlers"
	"delivery-sim-service/internal/ports"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// RouterConfig carries the dependencies and policy knobs for the HTTP surface.
type RouterConfig struct {
	Repo           ports.FleetRepository
	Store          ports.SimulationStore
	Cache          ports.SimulationCache
	Log            zerolog.Logger
	AllowedOrigins []string
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(cfg RouterConfig) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(requestLogger(cfg.Log))
	router.Use(middleware.Recoverer)

	if len(cfg.AllowedOrigins) > 0 {
		corsHandler := cors.New(cors.Options{
			AllowedOrigins: cfg.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", handlers.ActorHeader},
		})
		router.Use(corsHandler.Handler)
	}

	fleetHandler := &handlers.FleetHandler{Repo: cfg.Repo, Log: cfg.Log}
	simHandler := &handlers.SimulationHandler{
		Repo:  cfg.Repo,
		Store: cfg.Store,
		Cache: cfg.Cache,
		Log:   cfg.Log,
	}

	router.Get("/health", handlers.Health)
	router.Get("/drivers", fleetHandler.ListDrivers)
	router.Get("/routes", fleetHandler.ListRoutes)
	router.Get("/orders", fleetHandler.ListOrders)

	router.Post("/simulations", simHandler.Run)
	router.Get("/simulations", simHandler.List)
	router.Get("/simulations/{id}", simHandler.Get)

	return router
}
