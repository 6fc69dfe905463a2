package repositories

import (
	"context"
	"database/sql"
	"delivery-sim-service/internal/domain"
	"errors"
	"fmt"
	"strings"
)

// SQLite-backed implementation of the FleetRepository port. Rows are
// validated as they are scanned so the engine only ever sees well-formed
// records.
type SqliteFleetRepository struct{ DB *sql.DB }

func NewSqliteFleetRepository(db *sql.DB) *SqliteFleetRepository {
	return &SqliteFleetRepository{DB: db}
}

// SQLite does not support binding slices directly in an IN (...) clause.
// Only the placeholder structure is interpolated; all values remain
// parameterized.
func idFilter(column string, ids []int) (string, []any) {
	if len(ids) == 0 {
		return "", nil
	}

	seen := make(map[int]struct{}, len(ids))
	ph := make([]string, 0, len(ids))
	args := make([]any, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ph = append(ph, "?")
		args = append(args, id)
	}

	return fmt.Sprintf(" WHERE %s IN (%s)", column, strings.Join(ph, ",")), args
}

// ListDrivers returns active drivers, optionally filtered by id.
func (s *SqliteFleetRepository) ListDrivers(ctx context.Context, ids []int) ([]*domain.Driver, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite fleet repository: DB is nil")
	}

	where, args := idFilter("driver_id", ids)
	query := `
	SELECT driver_id, name, shift_hours, past_week_hours
	FROM drivers` + where + `
	ORDER BY driver_id;
	`

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list drivers: query drivers table: %w", err)
	}
	defer rows.Close()

	drivers := make([]*domain.Driver, 0, 16)
	for rows.Next() {
		var (
			d    domain.Driver
			week string
		)
		if err := rows.Scan(&d.DriverID, &d.Name, &d.ShiftHours, &week); err != nil {
			return nil, fmt.Errorf("list drivers: scan row: %w", err)
		}
		d.PastWeekHours, err = ParsePastWeekHours(week)
		if err != nil {
			return nil, fmt.Errorf("list drivers: driver %d: %w", d.DriverID, err)
		}
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("list drivers: %w", err)
		}
		drivers = append(drivers, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list drivers: row iteration: %w", err)
	}

	return drivers, nil
}

// ListRoutes returns active routes, optionally filtered by id.
func (s *SqliteFleetRepository) ListRoutes(ctx context.Context, ids []int) ([]*domain.Route, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite fleet repository: DB is nil")
	}

	where, args := idFilter("route_id", ids)
	query := `
	SELECT route_id, distance_km, traffic_level, base_time_min
	FROM routes` + where + `
	ORDER BY route_id;
	`

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list routes: query routes table: %w", err)
	}
	defer rows.Close()

	routes := make([]*domain.Route, 0, 16)
	for rows.Next() {
		var (
			r     domain.Route
			level string
		)
		if err := rows.Scan(&r.RouteID, &r.DistanceKm, &level, &r.BaseTimeMin); err != nil {
			return nil, fmt.Errorf("list routes: scan row: %w", err)
		}
		r.Traffic, err = domain.ParseTrafficLevel(level)
		if err != nil {
			return nil, fmt.Errorf("list routes: route %d: %w", r.RouteID, err)
		}
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("list routes: %w", err)
		}
		routes = append(routes, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list routes: row iteration: %w", err)
	}

	return routes, nil
}

// ListOrders returns active orders, restricted to the given routes when the
// filter is non-empty, in stable id order.
func (s *SqliteFleetRepository) ListOrders(ctx context.Context, routeIDs []int) ([]*domain.Order, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite fleet repository: DB is nil")
	}

	where, args := idFilter("route_id", routeIDs)
	query := `
	SELECT id, order_id, value_rs, route_id, delivery_time
	FROM orders` + where + `
	ORDER BY id;
	`

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: query orders table: %w", err)
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0, 64)
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.OrderID, &o.ValueRs, &o.RouteID, &o.DeliveryTime); err != nil {
			return nil, fmt.Errorf("list orders: scan row: %w", err)
		}
		if err := o.Validate(); err != nil {
			return nil, fmt.Errorf("list orders: %w", err)
		}
		orders = append(orders, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list orders: row iteration: %w", err)
	}

	return orders, nil
}
