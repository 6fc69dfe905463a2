package domain

import "fmt"

// TrafficLevel is the congestion rating attached to a route.
type TrafficLevel string

const (
	TrafficLow    TrafficLevel = "LOW"
	TrafficMedium TrafficLevel = "MEDIUM"
	TrafficHigh   TrafficLevel = "HIGH"
)

// ParseTrafficLevel validates and normalizes a stored traffic level value.
func ParseTrafficLevel(s string) (TrafficLevel, error) {
	switch TrafficLevel(s) {
	case TrafficLow, TrafficMedium, TrafficHigh:
		return TrafficLevel(s), nil
	default:
		return "", fmt.Errorf("traffic level %q: %w", s, ErrValidation)
	}
}

// Route is a fixed delivery route record, immutable during a run.
type Route struct {
	RouteID     int
	DistanceKm  float64
	Traffic     TrafficLevel
	BaseTimeMin int
}

// Validate enforces the route record invariants.
func (r *Route) Validate() error {
	if r.DistanceKm <= 0 {
		return fmt.Errorf("route %d: distance %v must be > 0: %w", r.RouteID, r.DistanceKm, ErrValidation)
	}
	if r.BaseTimeMin <= 0 {
		return fmt.Errorf("route %d: base time %d must be > 0: %w", r.RouteID, r.BaseTimeMin, ErrValidation)
	}
	if _, err := ParseTrafficLevel(string(r.Traffic)); err != nil {
		return fmt.Errorf("route %d: %w", r.RouteID, err)
	}
	return nil
}
