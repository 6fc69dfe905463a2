package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// InitSchema initializes the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createDriversQuery := `
	CREATE TABLE IF NOT EXISTS drivers (
		driver_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		shift_hours INTEGER NOT NULL,
		past_week_hours TEXT NOT NULL
	);
	`

	createRoutesQuery := `
	CREATE TABLE IF NOT EXISTS routes (
		route_id INTEGER PRIMARY KEY,
		distance_km REAL NOT NULL,
		traffic_level TEXT NOT NULL,
		base_time_min INTEGER NOT NULL
	);
	`

	createOrdersQuery := `
	CREATE TABLE IF NOT EXISTS orders (
		id INTEGER PRIMARY KEY,
		order_id TEXT NOT NULL UNIQUE,
		value_rs REAL NOT NULL,
		route_id INTEGER NOT NULL REFERENCES routes(route_id),
		delivery_time TEXT NOT NULL
	);
	`

	createSimulationsQuery := `
	CREATE TABLE IF NOT EXISTS simulations (
		simulation_id TEXT PRIMARY KEY,
		name TEXT,
		created_by TEXT,
		created_at TEXT NOT NULL,
		total_profit REAL NOT NULL,
		efficiency_score REAL NOT NULL,
		total_deliveries INTEGER NOT NULL,
		result_json TEXT NOT NULL
	);
	`

	createOrdersRouteIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_orders_route_id ON orders(route_id);
	`

	statements := []string{
		createDriversQuery,
		createRoutesQuery,
		createOrdersQuery,
		createSimulationsQuery,
		createOrdersRouteIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Seed upserts the parsed seed data into a SQLite database.
func Seed(db *sql.DB, seed *SeedData) error {
	if db == nil {
		return errors.New("seed: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	driverStmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO drivers (driver_id, name, shift_hours, past_week_hours)
	VALUES (?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed: prepare drivers insert: %w", err)
	}
	defer driverStmt.Close()

	for _, d := range seed.Drivers {
		if _, err := driverStmt.Exec(d.DriverID, d.Name, d.ShiftHours, FormatPastWeekHours(d.PastWeekHours)); err != nil {
			return fmt.Errorf("seed: insert driver_id=%d: %w", d.DriverID, err)
		}
	}

	routeStmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO routes (route_id, distance_km, traffic_level, base_time_min)
	VALUES (?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed: prepare routes insert: %w", err)
	}
	defer routeStmt.Close()

	for _, r := range seed.Routes {
		if _, err := routeStmt.Exec(r.RouteID, r.DistanceKm, string(r.Traffic), r.BaseTimeMin); err != nil {
			return fmt.Errorf("seed: insert route_id=%d: %w", r.RouteID, err)
		}
	}

	orderStmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO orders (id, order_id, value_rs, route_id, delivery_time)
	VALUES (?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed: prepare orders insert: %w", err)
	}
	defer orderStmt.Close()

	for _, o := range seed.Orders {
		if _, err := orderStmt.Exec(o.ID, o.OrderID, o.ValueRs, o.RouteID, o.DeliveryTime); err != nil {
			return fmt.Errorf("seed: insert order_id=%s: %w", o.OrderID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed: commit tx: %w", err)
	}

	return nil
}
