package repositories

import (
	"delivery-sim-service/internal/domain"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// SeedData is the parsed content of the seed CSV files.
type SeedData struct {
	Drivers []domain.Driver
	Routes  []domain.Route
	Orders  []domain.Order
}

// LoadSeedCSV reads drivers.csv, routes.csv and orders.csv from dir and
// validates every record. Expected headers:
//
//	drivers.csv: driver_id,name,shift_hours,past_week_hours
//	routes.csv:  route_id,distance_km,traffic_level,base_time_min
//	orders.csv:  id,order_id,value_rs,route_id,delivery_time
//
// past_week_hours is a pipe-separated list of exactly seven integers, the
// last being the most recent day.
func LoadSeedCSV(dir string) (*SeedData, error) {
	seed := &SeedData{}

	if err := readCSV(filepath.Join(dir, "drivers.csv"), 4, func(row []string) error {
		d, err := parseDriverRow(row)
		if err != nil {
			return err
		}
		seed.Drivers = append(seed.Drivers, d)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("seed drivers: %w", err)
	}

	if err := readCSV(filepath.Join(dir, "routes.csv"), 4, func(row []string) error {
		r, err := parseRouteRow(row)
		if err != nil {
			return err
		}
		seed.Routes = append(seed.Routes, r)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("seed routes: %w", err)
	}

	if err := readCSV(filepath.Join(dir, "orders.csv"), 5, func(row []string) error {
		o, err := parseOrderRow(row)
		if err != nil {
			return err
		}
		seed.Orders = append(seed.Orders, o)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("seed orders: %w", err)
	}

	return seed, nil
}

// readCSV streams rows (skipping the header) into fn.
func readCSV(path string, fields int, fn func(row []string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = fields
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return fmt.Errorf("read %q: %w", path, err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("read %q: file is empty", path)
	}

	for i, row := range rows[1:] {
		if err := fn(row); err != nil {
			return fmt.Errorf("%q row %d: %w", path, i+2, err)
		}
	}
	return nil
}

func parseDriverRow(row []string) (domain.Driver, error) {
	id, err := strconv.Atoi(row[0])
	if err != nil {
		return domain.Driver{}, fmt.Errorf("driver id %q: %w", row[0], err)
	}
	shift, err := strconv.Atoi(row[2])
	if err != nil {
		return domain.Driver{}, fmt.Errorf("shift hours %q: %w", row[2], err)
	}
	week, err := ParsePastWeekHours(row[3])
	if err != nil {
		return domain.Driver{}, err
	}

	d := domain.Driver{
		DriverID:      id,
		Name:          strings.TrimSpace(row[1]),
		ShiftHours:    shift,
		PastWeekHours: week,
	}
	if err := d.Validate(); err != nil {
		return domain.Driver{}, err
	}
	return d, nil
}

func parseRouteRow(row []string) (domain.Route, error) {
	id, err := strconv.Atoi(row[0])
	if err != nil {
		return domain.Route{}, fmt.Errorf("route id %q: %w", row[0], err)
	}
	distance, err := strconv.ParseFloat(row[1], 64)
	if err != nil {
		return domain.Route{}, fmt.Errorf("distance %q: %w", row[1], err)
	}
	traffic, err := domain.ParseTrafficLevel(strings.ToUpper(strings.TrimSpace(row[2])))
	if err != nil {
		return domain.Route{}, err
	}
	baseTime, err := strconv.Atoi(row[3])
	if err != nil {
		return domain.Route{}, fmt.Errorf("base time %q: %w", row[3], err)
	}

	r := domain.Route{RouteID: id, DistanceKm: distance, Traffic: traffic, BaseTimeMin: baseTime}
	if err := r.Validate(); err != nil {
		return domain.Route{}, err
	}
	return r, nil
}

func parseOrderRow(row []string) (domain.Order, error) {
	id, err := strconv.Atoi(row[0])
	if err != nil {
		return domain.Order{}, fmt.Errorf("id %q: %w", row[0], err)
	}
	value, err := strconv.ParseFloat(row[2], 64)
	if err != nil {
		return domain.Order{}, fmt.Errorf("value %q: %w", row[2], err)
	}
	routeID, err := strconv.Atoi(row[3])
	if err != nil {
		return domain.Order{}, fmt.Errorf("route id %q: %w", row[3], err)
	}

	o := domain.Order{
		ID:           id,
		OrderID:      strings.TrimSpace(row[1]),
		ValueRs:      value,
		RouteID:      routeID,
		DeliveryTime: strings.TrimSpace(row[4]),
	}
	if err := o.Validate(); err != nil {
		return domain.Order{}, err
	}
	return o, nil
}

// ParsePastWeekHours parses the pipe-separated seven-day hours history used
// by the seed files and the database columns.
func ParsePastWeekHours(s string) ([]int, error) {
	parts := strings.Split(s, "|")
	if len(parts) != 7 {
		return nil, fmt.Errorf("past week hours %q: want 7 values, got %d: %w", s, len(parts), domain.ErrValidation)
	}
	week := make([]int, 0, 7)
	for _, p := range parts {
		h, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("past week hours %q: %w", s, err)
		}
		week = append(week, h)
	}
	return week, nil
}

// FormatPastWeekHours renders the seven-day history for storage.
func FormatPastWeekHours(week []int) string {
	parts := make([]string, 0, len(week))
	for _, h := range week {
		parts = append(parts, strconv.Itoa(h))
	}
	return strings.Join(parts, "|")
}
