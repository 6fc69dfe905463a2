package repositories

import (
	"context"
	"database/sql"
	"delivery-sim-service/internal/domain"
	"delivery-sim-service/internal/ports"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	// Each in-memory sqlite connection is its own database; pin the pool
	// to one connection so every query sees the seeded schema.
	db.SetMaxOpenConns(1)

	require.NoError(t, InitSchema(db))
	return db
}

func testSeed() *SeedData {
	return &SeedData{
		Drivers: []domain.Driver{
			{DriverID: 1, Name: "Asha", ShiftHours: 8, PastWeekHours: []int{8, 8, 8, 8, 8, 8, 8}},
			{DriverID: 2, Name: "Ravi", ShiftHours: 8, PastWeekHours: []int{8, 8, 8, 8, 8, 8, 10}},
		},
		Routes: []domain.Route{
			{RouteID: 1, DistanceKm: 10, Traffic: domain.TrafficLow, BaseTimeMin: 30},
			{RouteID: 2, DistanceKm: 25, Traffic: domain.TrafficHigh, BaseTimeMin: 45},
		},
		Orders: []domain.Order{
			{ID: 1, OrderID: "ORD-1", ValueRs: 1200, RouteID: 1, DeliveryTime: "09:00"},
			{ID: 2, OrderID: "ORD-2", ValueRs: 600, RouteID: 2, DeliveryTime: "09:10"},
			{ID: 3, OrderID: "ORD-3", ValueRs: 1500, RouteID: 1, DeliveryTime: "09:20"},
		},
	}
}

func TestFleetRepositoryRoundTrip(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Seed(db, testSeed()))

	repo := NewSqliteFleetRepository(db)
	ctx := context.Background()

	drivers, err := repo.ListDrivers(ctx, nil)
	require.NoError(t, err)
	require.Len(t, drivers, 2)
	assert.Equal(t, "Asha", drivers[0].Name)
	assert.Equal(t, []int{8, 8, 8, 8, 8, 8, 10}, drivers[1].PastWeekHours)

	routes, err := repo.ListRoutes(ctx, nil)
	require.NoError(t, err)
	require.Len(t, routes, 2)
	assert.Equal(t, domain.TrafficHigh, routes[1].Traffic)

	orders, err := repo.ListOrders(ctx, nil)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, "ORD-1", orders[0].OrderID)
}

func TestFleetRepositoryFilters(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Seed(db, testSeed()))

	repo := NewSqliteFleetRepository(db)
	ctx := context.Background()

	drivers, err := repo.ListDrivers(ctx, []int{2, 2, 99})
	require.NoError(t, err)
	require.Len(t, drivers, 1)
	assert.Equal(t, 2, drivers[0].DriverID)

	// The route filter narrows orders to those on the kept routes.
	orders, err := repo.ListOrders(ctx, []int{1})
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "ORD-1", orders[0].OrderID)
	assert.Equal(t, "ORD-3", orders[1].OrderID)

	routes, err := repo.ListRoutes(ctx, []int{42})
	require.NoError(t, err)
	assert.Empty(t, routes)
}

func TestSeedIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Seed(db, testSeed()))
	require.NoError(t, Seed(db, testSeed()))

	repo := NewSqliteFleetRepository(db)
	orders, err := repo.ListOrders(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, orders, 3)
}

func TestSimulationStoreRoundTrip(t *testing.T) {
	db := newTestDB(t)
	store := NewSqliteSimulationStore(db)
	ctx := context.Background()

	result := &domain.SimulationResult{
		SimulationID:     "a6f7f9a0-0000-4000-8000-000000000001",
		Name:             "morning shift",
		CreatedBy:        "dispatcher-7",
		CreatedAt:        time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC),
		DriverCount:      2,
		TotalProfit:      3420,
		FuelCost:         150,
		Bonuses:          270,
		EfficiencyScore:  36.68,
		OnTimeDeliveries: 3,
		TotalDeliveries:  3,
		Data: domain.SimulationData{
			DriverAssignments: []domain.DriverAssignmentResult{
				{DriverID: 1, DriverName: "D1", OrderIDs: []string{"O1", "O3"}, TotalMinutes: 60, Efficiency: 38.75},
			},
			OrderResults: []domain.OrderResult{
				{OrderID: "O1", DriverID: 1, RouteID: 1, ExpectedTime: "09:00", ActualDurationMin: 30, OnTime: true, Bonus: 120, FuelCost: 50},
			},
			Summary: domain.SimulationSummary{TotalOrders: 3, TotalRoutes: 1, ProfitMargin: 95.8, Recommendations: []string{"Consider optimizing driver assignments to improve efficiency"}},
		},
	}

	require.NoError(t, store.SaveSimulation(ctx, result))

	got, err := store.GetSimulation(ctx, result.SimulationID)
	require.NoError(t, err)
	assert.Equal(t, result, got)

	items, err := store.ListSimulations(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, result.SimulationID, items[0].SimulationID)
	assert.InDelta(t, 3420, items[0].TotalProfit, 1e-9)
}

func TestSimulationStoreUnknownID(t *testing.T) {
	db := newTestDB(t)
	store := NewSqliteSimulationStore(db)

	_, err := store.GetSimulation(context.Background(), "missing")
	assert.True(t, errors.Is(err, ports.ErrSimulationNotFound), "got %v", err)
}
