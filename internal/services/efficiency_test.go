package services

import (
	"delivery-sim-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDriverEfficiency(t *testing.T) {
	// Two 30-minute deliveries against an 8h shift with a perfectly
	// consistent week: (0.125*0.7 + 1*0.3) * 100.
	assert.InDelta(t, 38.75, DriverEfficiency(restedDriver(), 60), 1e-9)

	// One 39-minute delivery with 10h worked yesterday.
	assert.InDelta(t, 34.6160714285, DriverEfficiency(tiredDriver(), 39), 1e-6)
}

func TestDriverEfficiencyUtilizationCap(t *testing.T) {
	d := restedDriver()
	// 20h of work against an 8h shift: utilization caps at 1.
	assert.InDelta(t, 100, DriverEfficiency(d, 20*60), 1e-9)
}

func TestDriverEfficiencyCanGoNegative(t *testing.T) {
	d := &domain.Driver{
		DriverID:      5,
		Name:          "Noor",
		ShiftHours:    4,
		PastWeekHours: []int{14, 14, 14, 14, 14, 14, 14},
	}
	// Consistency = 1 - |14-4|/4 = -1.5, no work assigned:
	// (0*0.7 + -1.5*0.3) * 100 = -45.
	assert.InDelta(t, -45, DriverEfficiency(d, 0), 1e-9)
}

func TestAggregateEfficiency(t *testing.T) {
	assert.Zero(t, AggregateEfficiency(nil))
	assert.InDelta(t, 36.6830357142, AggregateEfficiency([]float64{38.75, 34.6160714285}), 1e-6)
}
