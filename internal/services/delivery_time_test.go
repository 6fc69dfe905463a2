package services

import (
	"delivery-sim-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
)

func restedDriver() *domain.Driver {
	return &domain.Driver{DriverID: 1, Name: "Asha", ShiftHours: 8, PastWeekHours: []int{8, 8, 8, 8, 8, 8, 8}}
}

func tiredDriver() *domain.Driver {
	return &domain.Driver{DriverID: 2, Name: "Ravi", ShiftHours: 8, PastWeekHours: []int{8, 8, 8, 8, 8, 8, 10}}
}

func TestDeliveryDurationTrafficMultipliers(t *testing.T) {
	driver := restedDriver()

	cases := []struct {
		traffic domain.TrafficLevel
		want    float64
	}{
		{domain.TrafficLow, 30},
		{domain.TrafficMedium, 36},
		{domain.TrafficHigh, 45},
	}

	for _, c := range cases {
		route := &domain.Route{RouteID: 1, DistanceKm: 10, Traffic: c.traffic, BaseTimeMin: 30}
		assert.InDelta(t, c.want, DeliveryDuration(route, driver), 1e-9, "traffic %s", c.traffic)
	}
}

func TestDeliveryDurationFatigue(t *testing.T) {
	route := &domain.Route{RouteID: 1, DistanceKm: 10, Traffic: domain.TrafficLow, BaseTimeMin: 30}

	assert.InDelta(t, 30, DeliveryDuration(route, restedDriver()), 1e-9)
	assert.InDelta(t, 39, DeliveryDuration(route, tiredDriver()), 1e-9)

	// Fatigue compounds with traffic.
	high := &domain.Route{RouteID: 2, DistanceKm: 10, Traffic: domain.TrafficHigh, BaseTimeMin: 30}
	assert.InDelta(t, 30*1.5*1.3, DeliveryDuration(high, tiredDriver()), 1e-9)
}

func TestDeliveryDurationIsPure(t *testing.T) {
	route := &domain.Route{RouteID: 1, DistanceKm: 10, Traffic: domain.TrafficMedium, BaseTimeMin: 25}
	driver := tiredDriver()

	first := DeliveryDuration(route, driver)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, DeliveryDuration(route, driver))
	}
}
