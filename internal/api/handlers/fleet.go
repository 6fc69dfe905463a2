package handlers

import (
	"delivery-sim-service/internal/api/dto"
	"delivery-sim-service/internal/ports"
	"net/http"

	"github.com/rs/zerolog"
)

// FleetHandler exposes read-only driver/route/order retrieval endpoints.
type FleetHandler struct {
	Repo ports.FleetRepository
	Log  zerolog.Logger
}

func (h *FleetHandler) ListDrivers(w http.ResponseWriter, r *http.Request) {
	drivers, err := h.Repo.ListDrivers(r.Context(), nil)
	if err != nil {
		h.Log.Error().Err(err).Msg("list drivers failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListDriversResponse{Drivers: make([]dto.DriverResponse, 0, len(drivers))}
	for _, d := range drivers {
		res.Drivers = append(res.Drivers, dto.DriverResponse{
			DriverID:      d.DriverID,
			Name:          d.Name,
			ShiftHours:    d.ShiftHours,
			PastWeekHours: d.PastWeekHours,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *FleetHandler) ListRoutes(w http.ResponseWriter, r *http.Request) {
	routes, err := h.Repo.ListRoutes(r.Context(), nil)
	if err != nil {
		h.Log.Error().Err(err).Msg("list routes failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListRoutesResponse{Routes: make([]dto.RouteResponse, 0, len(routes))}
	for _, rt := range routes {
		res.Routes = append(res.Routes, dto.RouteResponse{
			RouteID:     rt.RouteID,
			DistanceKm:  rt.DistanceKm,
			Traffic:     string(rt.Traffic),
			BaseTimeMin: rt.BaseTimeMin,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *FleetHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Repo.ListOrders(r.Context(), nil)
	if err != nil {
		h.Log.Error().Err(err).Msg("list orders failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListOrdersResponse{Orders: make([]dto.OrderResponse, 0, len(orders))}
	for _, o := range orders {
		res.Orders = append(res.Orders, dto.OrderResponse{
			ID:           o.ID,
			OrderID:      o.OrderID,
			ValueRs:      o.ValueRs,
			RouteID:      o.RouteID,
			DeliveryTime: o.DeliveryTime,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
