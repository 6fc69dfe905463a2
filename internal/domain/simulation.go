package domain

import "time"

// Assignment is the transient work list built for one driver during the
// assignment pass. StartClockMin records the global clock value at the
// moment the driver received their first order.
type Assignment struct {
	DriverID      int
	OrderIDs      []string
	StartClockMin float64
}

// OrderResult is the costed outcome of one placed order.
type OrderResult struct {
	OrderID           string  `json:"order_id"`
	DriverID          int     `json:"driver_id"`
	RouteID           int     `json:"route_id"`
	ExpectedTime      string  `json:"expected_time"`
	ActualDurationMin float64 `json:"actual_duration_min"`
	OnTime            bool    `json:"on_time"`
	Penalty           float64 `json:"penalty"`
	Bonus             float64 `json:"bonus"`
	FuelCost          float64 `json:"fuel_cost"`
}

// DriverAssignmentResult is the per-driver view of a finished run.
type DriverAssignmentResult struct {
	DriverID     int      `json:"driver_id"`
	DriverName   string   `json:"driver_name"`
	OrderIDs     []string `json:"order_ids"`
	TotalMinutes float64  `json:"total_minutes"`
	Efficiency   float64  `json:"efficiency"`
}

// SimulationSummary aggregates run totals and threshold-rule recommendations.
type SimulationSummary struct {
	TotalOrders       int      `json:"total_orders"`
	TotalRoutes       int      `json:"total_routes"`
	DroppedOrders     int      `json:"dropped_orders"`
	AverageEfficiency float64  `json:"average_efficiency"`
	ProfitMargin      float64  `json:"profit_margin"`
	Recommendations   []string `json:"recommendations"`
}

// SimulationData bundles the three derived collections of a run.
type SimulationData struct {
	DriverAssignments []DriverAssignmentResult `json:"driver_assignments"`
	OrderResults      []OrderResult            `json:"order_results"`
	Summary           SimulationSummary        `json:"summary"`
}

// SimulationResult is the engine's sole output: headline totals plus the
// derived collections. DriverCount is recorded for audit and does not bound
// participation.
type SimulationResult struct {
	SimulationID     string         `json:"simulation_id"`
	Name             string         `json:"name,omitempty"`
	CreatedBy        string         `json:"created_by,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	DriverCount      int            `json:"driver_count"`
	TotalProfit      float64        `json:"total_profit"`
	FuelCost         float64        `json:"fuel_cost"`
	Penalties        float64        `json:"penalties"`
	Bonuses          float64        `json:"bonuses"`
	EfficiencyScore  float64        `json:"efficiency_score"`
	OnTimeDeliveries int            `json:"on_time_deliveries"`
	TotalDeliveries  int            `json:"total_deliveries"`
	Data             SimulationData `json:"simulation_data"`
}
