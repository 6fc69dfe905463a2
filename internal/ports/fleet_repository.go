package ports

import (
	"context"
	"delivery-sim-service/internal/domain"
)

// Port: read access to the active driver/route/order snapshot.
// A nil or empty id filter means "all active records". Implementations
// validate records as they load them; the engine treats the returned
// slices as immutable.
type FleetRepository interface {
	// ListDrivers returns active drivers, optionally filtered by id.
	ListDrivers(ctx context.Context, ids []int) ([]*domain.Driver, error)
	// ListRoutes returns active routes, optionally filtered by id.
	ListRoutes(ctx context.Context, ids []int) ([]*domain.Route, error)
	// ListOrders returns active orders whose route is in the given route
	// filter (all orders when the filter is empty), in stable id order.
	ListOrders(ctx context.Context, routeIDs []int) ([]*domain.Order, error)
}
