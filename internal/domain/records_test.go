package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDriver() Driver {
	return Driver{
		DriverID:      1,
		Name:          "Asha",
		ShiftHours:    8,
		PastWeekHours: []int{8, 8, 8, 8, 8, 8, 8},
	}
}

func TestDriverValidate(t *testing.T) {
	d := validDriver()
	require.NoError(t, d.Validate())

	d = validDriver()
	d.ShiftHours = 0
	assert.True(t, errors.Is(d.Validate(), ErrValidation))

	d = validDriver()
	d.ShiftHours = 25
	assert.True(t, errors.Is(d.Validate(), ErrValidation))

	d = validDriver()
	d.PastWeekHours = []int{8, 8, 8}
	assert.True(t, errors.Is(d.Validate(), ErrValidation))

	d = validDriver()
	d.PastWeekHours[3] = -1
	assert.True(t, errors.Is(d.Validate(), ErrValidation))
}

func TestDriverDerivedValues(t *testing.T) {
	d := validDriver()
	assert.False(t, d.WorkedOvertimeYesterday())
	assert.InDelta(t, 8.0, d.AveragePastWeekHours(), 1e-9)

	d.PastWeekHours[6] = 10
	assert.True(t, d.WorkedOvertimeYesterday())
	assert.InDelta(t, 58.0/7.0, d.AveragePastWeekHours(), 1e-9)
}

func TestRouteValidate(t *testing.T) {
	r := Route{RouteID: 1, DistanceKm: 10, Traffic: TrafficLow, BaseTimeMin: 30}
	require.NoError(t, r.Validate())

	bad := []Route{
		{RouteID: 2, DistanceKm: 0, Traffic: TrafficLow, BaseTimeMin: 30},
		{RouteID: 3, DistanceKm: 10, Traffic: TrafficLow, BaseTimeMin: 0},
		{RouteID: 4, DistanceKm: 10, Traffic: "GRIDLOCK", BaseTimeMin: 30},
	}
	for _, r := range bad {
		assert.True(t, errors.Is(r.Validate(), ErrValidation), "route %d", r.RouteID)
	}
}

func TestOrderValidate(t *testing.T) {
	o := Order{ID: 1, OrderID: "ORD-1", ValueRs: 1200, RouteID: 1, DeliveryTime: "09:00"}
	require.NoError(t, o.Validate())

	o.DeliveryTime = "9:61"
	err := o.Validate()
	assert.True(t, errors.Is(err, ErrTimeFormat), "got %v", err)

	o = Order{ID: 2, OrderID: " ", ValueRs: 100, RouteID: 1, DeliveryTime: "09:00"}
	assert.True(t, errors.Is(o.Validate(), ErrValidation))

	o = Order{ID: 3, OrderID: "ORD-3", ValueRs: 0, RouteID: 1, DeliveryTime: "09:00"}
	assert.True(t, errors.Is(o.Validate(), ErrValidation))
}
