package ports

import (
	"context"
	"delivery-sim-service/internal/domain"
	"errors"
)

// ErrSimulationNotFound reports an unknown simulation id.
var ErrSimulationNotFound = errors.New("simulation not found")

// SimulationListItem is the headline view used by result listings.
type SimulationListItem struct {
	SimulationID    string  `json:"simulation_id"`
	Name            string  `json:"name,omitempty"`
	CreatedBy       string  `json:"created_by,omitempty"`
	CreatedAt       string  `json:"created_at"`
	TotalProfit     float64 `json:"total_profit"`
	EfficiencyScore float64 `json:"efficiency_score"`
	TotalDeliveries int     `json:"total_deliveries"`
}

// Port: durable storage for finished simulation results.
type SimulationStore interface {
	// SaveSimulation durably stores one finished result keyed by its id.
	SaveSimulation(ctx context.Context, result *domain.SimulationResult) error
	// GetSimulation returns a stored result, or an error wrapping
	// ErrSimulationNotFound when the id is unknown.
	GetSimulation(ctx context.Context, id string) (*domain.SimulationResult, error)
	// ListSimulations returns headline rows, newest first.
	ListSimulations(ctx context.Context) ([]SimulationListItem, error)
}

// Port: optional read-through cache in front of a SimulationStore.
type SimulationCache interface {
	Get(ctx context.Context, id string) (*domain.SimulationResult, bool, error)
	Put(ctx context.Context, result *domain.SimulationResult) error
}
