package handlers

import (
	"delivery-sim-service/internal/api/dto"
	"delivery-sim-service/internal/domain"
	"delivery-sim-service/internal/ports"
	"delivery-sim-service/internal/services"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/rs/zerolog"
)

// ActorHeader carries the optional creator identity attached to a run.
// Authentication itself happens upstream; this layer only records the id.
const ActorHeader = "X-Actor-Id"

// SimulationHandler runs simulations and serves stored results.
type SimulationHandler struct {
	Repo  ports.FleetRepository
	Store ports.SimulationStore
	Cache ports.SimulationCache
	Log   zerolog.Logger
}

// Run executes one simulation and returns the persisted result.
func (h *SimulationHandler) Run(w http.ResponseWriter, r *http.Request) {
	var req dto.SimulationRequest
	if err := render.Bind(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	actorID := strings.TrimSpace(r.Header.Get(ActorHeader))

	result, err := services.RunSimulation(r.Context(), services.SimulationRequest{
		Name:           req.SimulationName,
		DriverCount:    req.DriverCount,
		RouteStartTime: req.RouteStartTime,
		MaxHours:       req.MaxHours,
		DriverIDs:      req.DriverIDs,
		RouteIDs:       req.RouteIDs,
	}, h.Repo, h.Store, actorID)
	if err != nil {
		h.renderRunError(w, r, err)
		return
	}

	if h.Cache != nil {
		if err := h.Cache.Put(r.Context(), result); err != nil {
			// Cache population is best effort; the result is already durable.
			h.Log.Warn().Err(err).Str("simulation_id", result.SimulationID).Msg("cache put failed")
		}
	}

	writeJSON(w, r, http.StatusCreated, result)
}

func (h *SimulationHandler) renderRunError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrTimeFormat), errors.Is(err, domain.ErrValidation):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNoDriversAvailable), errors.Is(err, domain.ErrNoOrdersAvailable):
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
	default:
		h.Log.Error().Err(err).Msg("run simulation failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

// Get serves one stored result, preferring the cache.
func (h *SimulationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if h.Cache != nil {
		cached, ok, err := h.Cache.Get(r.Context(), id)
		if err != nil {
			h.Log.Warn().Err(err).Str("simulation_id", id).Msg("cache get failed")
		} else if ok {
			writeJSON(w, r, http.StatusOK, cached)
			return
		}
	}

	result, err := h.Store.GetSimulation(r.Context(), id)
	if err != nil {
		if errors.Is(err, ports.ErrSimulationNotFound) {
			writeError(w, r, http.StatusNotFound, "simulation not found")
			return
		}
		h.Log.Error().Err(err).Str("simulation_id", id).Msg("get simulation failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	if h.Cache != nil {
		if err := h.Cache.Put(r.Context(), result); err != nil {
			h.Log.Warn().Err(err).Str("simulation_id", id).Msg("cache fill failed")
		}
	}

	writeJSON(w, r, http.StatusOK, result)
}

// List serves headline rows for all stored results, newest first.
func (h *SimulationHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Store.ListSimulations(r.Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("list simulations failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{"simulations": items})
}
