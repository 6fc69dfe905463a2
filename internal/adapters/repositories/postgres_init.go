package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// InitPostgresSchema initializes the Postgres schema used by dbtool.
func InitPostgresSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init postgres schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init postgres schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	statements := []string{
		`CREATE TABLE IF NOT EXISTS drivers (
			driver_id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			shift_hours INTEGER NOT NULL,
			past_week_hours TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS routes (
			route_id INTEGER PRIMARY KEY,
			distance_km DOUBLE PRECISION NOT NULL,
			traffic_level TEXT NOT NULL,
			base_time_min INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS orders (
			id INTEGER PRIMARY KEY,
			order_id TEXT NOT NULL UNIQUE,
			value_rs DOUBLE PRECISION NOT NULL,
			route_id INTEGER NOT NULL REFERENCES routes(route_id),
			delivery_time TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS simulations (
			simulation_id TEXT PRIMARY KEY,
			name TEXT,
			created_by TEXT,
			created_at TEXT NOT NULL,
			total_profit DOUBLE PRECISION NOT NULL,
			efficiency_score DOUBLE PRECISION NOT NULL,
			total_deliveries INTEGER NOT NULL,
			result_json TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_orders_route_id ON orders(route_id);`,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init postgres schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init postgres schema: commit tx: %w", err)
	}

	return nil
}

// SeedPostgres upserts the parsed seed data into a Postgres database.
func SeedPostgres(ctx context.Context, db *sql.DB, seed *SeedData) error {
	if db == nil {
		return errors.New("seed postgres: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed postgres: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	driverStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO drivers (driver_id, name, shift_hours, past_week_hours)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (driver_id) DO UPDATE
	SET name = EXCLUDED.name,
		shift_hours = EXCLUDED.shift_hours,
		past_week_hours = EXCLUDED.past_week_hours;
	`)
	if err != nil {
		return fmt.Errorf("seed postgres: prepare drivers insert: %w", err)
	}
	defer driverStmt.Close()

	for _, d := range seed.Drivers {
		if _, err := driverStmt.ExecContext(ctx, d.DriverID, d.Name, d.ShiftHours, FormatPastWeekHours(d.PastWeekHours)); err != nil {
			return fmt.Errorf("seed postgres: insert driver_id=%d: %w", d.DriverID, err)
		}
	}

	routeStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO routes (route_id, distance_km, traffic_level, base_time_min)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (route_id) DO UPDATE
	SET distance_km = EXCLUDED.distance_km,
		traffic_level = EXCLUDED.traffic_level,
		base_time_min = EXCLUDED.base_time_min;
	`)
	if err != nil {
		return fmt.Errorf("seed postgres: prepare routes insert: %w", err)
	}
	defer routeStmt.Close()

	for _, r := range seed.Routes {
		if _, err := routeStmt.ExecContext(ctx, r.RouteID, r.DistanceKm, string(r.Traffic), r.BaseTimeMin); err != nil {
			return fmt.Errorf("seed postgres: insert route_id=%d: %w", r.RouteID, err)
		}
	}

	orderStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO orders (id, order_id, value_rs, route_id, delivery_time)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (id) DO UPDATE
	SET order_id = EXCLUDED.order_id,
		value_rs = EXCLUDED.value_rs,
		route_id = EXCLUDED.route_id,
		delivery_time = EXCLUDED.delivery_time;
	`)
	if err != nil {
		return fmt.Errorf("seed postgres: prepare orders insert: %w", err)
	}
	defer orderStmt.Close()

	for _, o := range seed.Orders {
		if _, err := orderStmt.ExecContext(ctx, o.ID, o.OrderID, o.ValueRs, o.RouteID, o.DeliveryTime); err != nil {
			return fmt.Errorf("seed postgres: insert order_id=%s: %w", o.OrderID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed postgres: commit tx: %w", err)
	}

	return nil
}
