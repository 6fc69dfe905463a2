package services

import (
	"delivery-sim-service/internal/domain"
	"fmt"
)

// PlacedOrder is one order that fit inside the working window, paired with
// the driver and route it was scheduled against.
type PlacedOrder struct {
	Order       *domain.Order
	Route       *domain.Route
	Driver      *domain.Driver
	DurationMin float64
}

// AssignmentOutcome is the result of one assignment pass. Assignments are
// ordered by each driver's first placement; Placed preserves the input
// order sequence. Dropped counts orders that did not fit the window.
type AssignmentOutcome struct {
	Assignments []*domain.Assignment
	Placed      []PlacedOrder
	Dropped     int
}

// AssignOrders distributes orders across drivers using a cyclic round-robin
// policy bounded by a shift-time window.
//
// The clock is a single accumulator shared across all drivers, not a
// per-driver timeline: capacity is governed by the cumulative duration of
// every order placed so far. This keeps the policy a single deterministic
// pass and must not be swapped for per-driver clocks without changing the
// published capacity behavior.
//
// An order whose estimated slot would overrun startClockMin + maxHours*60
// is dropped (never reassigned or retried); the driver index still advances
// so the rotation stays aligned with the input sequence.
func AssignOrders(
	drivers []*domain.Driver,
	orders []*domain.Order,
	routes map[int]*domain.Route,
	startClockMin int,
	maxHours int,
) (*AssignmentOutcome, error) {
	if len(drivers) == 0 {
		return nil, fmt.Errorf("assign orders: %w", domain.ErrNoDriversAvailable)
	}

	clock := float64(startClockMin)
	windowEnd := float64(startClockMin + maxHours*60)

	byDriver := make(map[int]*domain.Assignment, len(drivers))
	outcome := &AssignmentOutcome{}

	driverIndex := 0
	for _, order := range orders {
		driver := drivers[driverIndex%len(drivers)]
		driverIndex++

		route, ok := routes[order.RouteID]
		if !ok {
			return nil, fmt.Errorf(
				"assign orders: order %s references unknown route %d: %w",
				order.OrderID, order.RouteID, domain.ErrValidation,
			)
		}

		est := DeliveryDuration(route, driver)
		if clock+est > windowEnd {
			outcome.Dropped++
			continue
		}

		a := byDriver[driver.DriverID]
		if a == nil {
			a = &domain.Assignment{
				DriverID:      driver.DriverID,
				StartClockMin: clock,
			}
			byDriver[driver.DriverID] = a
			outcome.Assignments = append(outcome.Assignments, a)
		}
		a.OrderIDs = append(a.OrderIDs, order.OrderID)

		outcome.Placed = append(outcome.Placed, PlacedOrder{
			Order:       order,
			Route:       route,
			Driver:      driver,
			DurationMin: est,
		})
		clock += est
	}

	return outcome, nil
}
