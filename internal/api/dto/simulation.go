package dto

import (
	"delivery-sim-service/internal/domain"
	"fmt"
	"net/http"
)

// SimulationRequest is the POST /simulations body. Shape validation happens
// here at the boundary; the engine re-validates defensively.
type SimulationRequest struct {
	SimulationName string `json:"simulation_name,omitempty"`
	DriverCount    int    `json:"driver_count"`
	RouteStartTime string `json:"route_start_time"`
	MaxHours       int    `json:"max_hours"`
	DriverIDs      []int  `json:"driver_ids,omitempty"`
	RouteIDs       []int  `json:"route_ids,omitempty"`
}

// Bind implements render.Binder.
func (req *SimulationRequest) Bind(_ *http.Request) error {
	if _, err := domain.ParseClock(req.RouteStartTime); err != nil {
		return fmt.Errorf("route_start_time must be a valid HH:MM clock: %w", err)
	}
	if req.MaxHours < 1 || req.MaxHours > 24 {
		return fmt.Errorf("max_hours must be between 1 and 24")
	}
	if req.DriverCount < 1 {
		return fmt.Errorf("driver_count must be at least 1")
	}
	for _, id := range req.DriverIDs {
		if id < 1 {
			return fmt.Errorf("driver_ids must contain positive ids")
		}
	}
	for _, id := range req.RouteIDs {
		if id < 1 {
			return fmt.Errorf("route_ids must contain positive ids")
		}
	}
	return nil
}
