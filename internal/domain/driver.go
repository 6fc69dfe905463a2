package domain

import "fmt"

// Driver is a delivery driver record, immutable for the duration of one
// simulation run. PastWeekHours holds exactly seven entries; index 6 is the
// most recent day.
type Driver struct {
	DriverID      int
	Name          string
	ShiftHours    int
	PastWeekHours []int
}

// Validate enforces the driver record invariants.
func (d *Driver) Validate() error {
	if d.ShiftHours < 1 || d.ShiftHours > 24 {
		return fmt.Errorf("driver %d: shift hours %d out of range [1,24]: %w", d.DriverID, d.ShiftHours, ErrValidation)
	}
	if len(d.PastWeekHours) != 7 {
		return fmt.Errorf("driver %d: past week hours has %d entries, want 7: %w", d.DriverID, len(d.PastWeekHours), ErrValidation)
	}
	for i, h := range d.PastWeekHours {
		if h < 0 {
			return fmt.Errorf("driver %d: negative hours %d at day %d: %w", d.DriverID, h, i, ErrValidation)
		}
	}
	return nil
}

// WorkedOvertimeYesterday reports whether the most recent day exceeded 8 hours.
func (d *Driver) WorkedOvertimeYesterday() bool {
	return d.PastWeekHours[6] > 8
}

// AveragePastWeekHours returns the mean of the seven recorded days.
func (d *Driver) AveragePastWeekHours() float64 {
	total := 0
	for _, h := range d.PastWeekHours {
		total += h
	}
	return float64(total) / float64(len(d.PastWeekHours))
}
