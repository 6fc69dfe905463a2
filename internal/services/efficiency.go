package services

import (
	"delivery-sim-service/internal/domain"
	"math"
)

// Efficiency weighting between shift utilization and workload consistency.
const (
	utilizationWeight = 0.7
	consistencyWeight = 0.3
)

// DriverEfficiency scores one driver given the total minutes of work they
// were assigned. Utilization is capped at 1; consistency is not capped
// below, so the score can go negative when a driver's recent average
// workload differs from their contracted shift by more than 100%.
func DriverEfficiency(driver *domain.Driver, totalMinutes float64) float64 {
	utilization := totalMinutes / 60 / float64(driver.ShiftHours)
	if utilization > 1 {
		utilization = 1
	}

	consistency := 1 - math.Abs(driver.AveragePastWeekHours()-float64(driver.ShiftHours))/float64(driver.ShiftHours)

	return (utilization*utilizationWeight + consistency*consistencyWeight) * 100
}

// AggregateEfficiency averages per-driver scores. Callers pass only drivers
// that received at least one order; idle drivers are excluded rather than
// scored as zero.
func AggregateEfficiency(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	total := 0.0
	for _, s := range scores {
		total += s
	}
	return total / float64(len(scores))
}
