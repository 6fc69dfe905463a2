package domain

import (
	"fmt"
	"strings"
)

// Order is a delivery order awaiting assignment. DeliveryTime is the
// expected delivery clock time as an "HH:MM" string.
type Order struct {
	ID           int
	OrderID      string
	ValueRs      float64
	RouteID      int
	DeliveryTime string
}

// Validate enforces the order record invariants.
func (o *Order) Validate() error {
	if strings.TrimSpace(o.OrderID) == "" {
		return fmt.Errorf("order %d: order id must not be empty: %w", o.ID, ErrValidation)
	}
	if o.ValueRs <= 0 {
		return fmt.Errorf("order %s: value %v must be > 0: %w", o.OrderID, o.ValueRs, ErrValidation)
	}
	if _, err := ParseClock(o.DeliveryTime); err != nil {
		return fmt.Errorf("order %s: delivery time: %w", o.OrderID, err)
	}
	return nil
}
