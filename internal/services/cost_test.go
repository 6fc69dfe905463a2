package services

import (
	"delivery-sim-service/internal/domain"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuelCost(t *testing.T) {
	low := &domain.Route{RouteID: 1, DistanceKm: 10, Traffic: domain.TrafficLow, BaseTimeMin: 30}
	medium := &domain.Route{RouteID: 2, DistanceKm: 10, Traffic: domain.TrafficMedium, BaseTimeMin: 30}
	high := &domain.Route{RouteID: 3, DistanceKm: 10, Traffic: domain.TrafficHigh, BaseTimeMin: 30}

	assert.InDelta(t, 50, FuelCost(low), 1e-9)
	// Only HIGH traffic carries the surcharge.
	assert.InDelta(t, 50, FuelCost(medium), 1e-9)
	assert.InDelta(t, 70, FuelCost(high), 1e-9)
}

func TestIsOnTimeGraceWindow(t *testing.T) {
	order := &domain.Order{ID: 1, OrderID: "ORD-1", ValueRs: 500, RouteID: 1, DeliveryTime: "01:00"}

	cases := []struct {
		duration float64
		want     bool
	}{
		{60, true},
		{69.5, true},
		{70, true}, // exactly at the grace boundary
		{70.5, false},
		{71, false},
	}

	for _, c := range cases {
		got, err := IsOnTime(order, c.duration)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "duration %v", c.duration)
	}
}

func TestIsOnTimeRejectsBadExpectedTime(t *testing.T) {
	order := &domain.Order{ID: 1, OrderID: "ORD-1", ValueRs: 500, RouteID: 1, DeliveryTime: "25:00"}
	_, err := IsOnTime(order, 30)
	assert.True(t, errors.Is(err, domain.ErrTimeFormat), "got %v", err)
}

func TestPenaltyAndBonus(t *testing.T) {
	highValue := &domain.Order{OrderID: "ORD-1", ValueRs: 1200, DeliveryTime: "09:00"}
	lowValue := &domain.Order{OrderID: "ORD-2", ValueRs: 600, DeliveryTime: "09:10"}
	boundary := &domain.Order{OrderID: "ORD-3", ValueRs: 1000, DeliveryTime: "09:20"}

	penalty, bonus := PenaltyAndBonus(highValue, false)
	assert.InDelta(t, 50, penalty, 1e-9)
	assert.Zero(t, bonus)

	penalty, bonus = PenaltyAndBonus(highValue, true)
	assert.Zero(t, penalty)
	assert.InDelta(t, 120, bonus, 1e-9)

	penalty, bonus = PenaltyAndBonus(lowValue, true)
	assert.Zero(t, penalty)
	assert.Zero(t, bonus)

	// Bonus requires strictly more than 1000.
	penalty, bonus = PenaltyAndBonus(boundary, true)
	assert.Zero(t, penalty)
	assert.Zero(t, bonus)
}
