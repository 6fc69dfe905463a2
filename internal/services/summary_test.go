package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSummaryProfitMargin(t *testing.T) {
	s := BuildSummary(RunTotals{TotalProfit: 3420, FuelCost: 150, Penalties: 0, EfficiencyScore: 80, Bonuses: 270})
	assert.InDelta(t, 95.7983193277, s.ProfitMargin, 1e-6)

	// Zero or negative profit pins the margin at zero.
	s = BuildSummary(RunTotals{TotalProfit: 0, FuelCost: 150, EfficiencyScore: 80, Bonuses: 100})
	assert.Zero(t, s.ProfitMargin)

	s = BuildSummary(RunTotals{TotalProfit: -50, FuelCost: 150, EfficiencyScore: 80, Bonuses: 100})
	assert.Zero(t, s.ProfitMargin)
}

func TestBuildSummaryRecommendations(t *testing.T) {
	// Healthy run: high efficiency, negligible penalties/fuel, strong bonuses.
	s := BuildSummary(RunTotals{
		TotalProfit:     1000,
		FuelCost:        100,
		Penalties:       0,
		Bonuses:         100,
		EfficiencyScore: 85,
	})
	assert.Empty(t, s.Recommendations)

	// Each rule fires independently.
	s = BuildSummary(RunTotals{
		TotalProfit:     1000,
		FuelCost:        400,  // > 0.3 * profit
		Penalties:       150,  // > 0.1 * profit
		Bonuses:         10,   // < 0.05 * profit
		EfficiencyScore: 42.5, // < 70
	})
	assert.Len(t, s.Recommendations, 4)
	assert.Equal(t, "Consider optimizing driver assignments to improve efficiency", s.Recommendations[0])
}

func TestBuildSummaryCarriesTotals(t *testing.T) {
	s := BuildSummary(RunTotals{
		TotalOrders:     12,
		TotalRoutes:     4,
		DroppedOrders:   3,
		EfficiencyScore: 75,
		TotalProfit:     500,
		Bonuses:         50,
	})
	assert.Equal(t, 12, s.TotalOrders)
	assert.Equal(t, 4, s.TotalRoutes)
	assert.Equal(t, 3, s.DroppedOrders)
	assert.InDelta(t, 75, s.AverageEfficiency, 1e-9)
}
