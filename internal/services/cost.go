package services

import (
	"delivery-sim-service/internal/domain"
	"fmt"
)

// Company business-rule constants for the cost model, in currency units.
const (
	baseFuelRatePerKm    = 5.0
	highTrafficSurcharge = 2.0

	latePenalty      = 50.0
	bonusThresholdRs = 1000.0
	bonusRate        = 0.1

	graceMinutes = 10
)

// FuelCost computes fuel spend for one delivery on the route. High-traffic
// routes carry a per-km surcharge.
func FuelCost(route *domain.Route) float64 {
	perKm := baseFuelRatePerKm
	if route.Traffic == domain.TrafficHigh {
		perKm += highTrafficSurcharge
	}
	return perKm * route.DistanceKm
}

// IsOnTime reports whether a delivery counts as on time: the computed
// delivery duration must not exceed the expected delivery clock plus a
// 10-minute grace window. The compared quantity is the per-order duration,
// not an absolute arrival clock; existing cost reports depend on this exact
// comparison.
func IsOnTime(order *domain.Order, actualDurationMin float64) (bool, error) {
	expected, err := domain.ParseClock(order.DeliveryTime)
	if err != nil {
		return false, fmt.Errorf("on-time check: order %s: %w", order.OrderID, err)
	}
	return actualDurationMin <= float64(expected+graceMinutes), nil
}

// PenaltyAndBonus applies the late-penalty and high-value on-time bonus
// rules for one order. Exactly one of the two can be non-zero.
func PenaltyAndBonus(order *domain.Order, onTime bool) (penalty, bonus float64) {
	if !onTime {
		return latePenalty, 0
	}
	if order.ValueRs > bonusThresholdRs {
		return 0, bonusRate * order.ValueRs
	}
	return 0, 0
}
