package services

import "delivery-sim-service/internal/domain"

// Recommendation thresholds, each evaluated independently against the run
// totals; any subset may fire.
const (
	lowEfficiencyThreshold = 70
	penaltyShareThreshold  = 0.1
	fuelShareThreshold     = 0.3
	bonusShareThreshold    = 0.05
)

// RunTotals carries the aggregate numbers the summary is derived from.
type RunTotals struct {
	TotalOrders     int
	TotalRoutes     int
	DroppedOrders   int
	EfficiencyScore float64
	TotalProfit     float64
	FuelCost        float64
	Penalties       float64
	Bonuses         float64
}

// BuildSummary derives the profit margin and qualitative recommendations
// from one run's totals.
func BuildSummary(t RunTotals) domain.SimulationSummary {
	margin := 0.0
	if t.TotalProfit > 0 {
		margin = t.TotalProfit / (t.TotalProfit + t.FuelCost + t.Penalties) * 100
	}

	recommendations := []string{}
	if t.EfficiencyScore < lowEfficiencyThreshold {
		recommendations = append(recommendations, "Consider optimizing driver assignments to improve efficiency")
	}
	if t.Penalties > penaltyShareThreshold*t.TotalProfit {
		recommendations = append(recommendations, "Consider better route planning and delivery time management to reduce late penalties")
	}
	if t.FuelCost > fuelShareThreshold*t.TotalProfit {
		recommendations = append(recommendations, "Consider route optimization and traffic avoidance to reduce fuel costs")
	}
	if t.Bonuses < bonusShareThreshold*t.TotalProfit {
		recommendations = append(recommendations, "Prioritize high-value orders to earn more on-time bonuses")
	}

	return domain.SimulationSummary{
		TotalOrders:       t.TotalOrders,
		TotalRoutes:       t.TotalRoutes,
		DroppedOrders:     t.DroppedOrders,
		AverageEfficiency: t.EfficiencyScore,
		ProfitMargin:      margin,
		Recommendations:   recommendations,
	}
}
