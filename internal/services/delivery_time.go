package services

import "delivery-sim-service/internal/domain"

// Company business-rule multipliers for the delivery-time model.
const fatigueMultiplier = 1.3

func trafficMultiplier(level domain.TrafficLevel) float64 {
	switch level {
	case domain.TrafficMedium:
		return 1.2
	case domain.TrafficHigh:
		return 1.5
	default:
		return 1.0
	}
}

// DeliveryDuration computes the minutes one driver needs to deliver one
// order on the given route. The fatigue multiplier applies when the driver
// worked more than 8 hours on the most recent recorded day.
//
// The result is a pure function of (route, driver): it does not depend on
// the simulation clock, so repeated deliveries on the same pair always take
// the same duration within one run.
func DeliveryDuration(route *domain.Route, driver *domain.Driver) float64 {
	minutes := float64(route.BaseTimeMin)
	minutes *= trafficMultiplier(route.Traffic)
	if driver.WorkedOvertimeYesterday() {
		minutes *= fatigueMultiplier
	}
	return minutes
}
