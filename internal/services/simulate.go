package services

import (
	"context"
	"delivery-sim-service/internal/domain"
	"delivery-sim-service/internal/ports"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// SimulationRequest describes one simulation run. DriverCount is recorded
// for audit and does not bound participation; the participant set is the
// (optionally filtered) active driver set.
type SimulationRequest struct {
	Name           string
	DriverCount    int
	RouteStartTime string
	MaxHours       int
	DriverIDs      []int
	RouteIDs       []int
}

// RunSimulation executes one synchronous simulation run: it loads an
// immutable snapshot of drivers/routes/orders, assigns and costs every
// order, persists exactly one result record, and returns it unmodified.
//
// Runs are stateless with respect to each other; concurrent runs against
// the same store are safe because nothing here mutates fleet records and
// the result write is a single insert.
func RunSimulation(
	ctx context.Context,
	req SimulationRequest,
	repo ports.FleetRepository,
	store ports.SimulationStore,
	actorID string,
) (*domain.SimulationResult, error) {
	// The API boundary validates shape already; re-validate defensively so
	// the engine never trusts its caller.
	startClock, err := domain.ParseClock(req.RouteStartTime)
	if err != nil {
		return nil, fmt.Errorf("run simulation: route start time: %w", err)
	}
	if req.MaxHours < 1 || req.MaxHours > 24 {
		return nil, fmt.Errorf("run simulation: max hours %d out of range [1,24]: %w", req.MaxHours, domain.ErrValidation)
	}

	var (
		drivers []*domain.Driver
		routes  []*domain.Route
		orders  []*domain.Order
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		drivers, err = repo.ListDrivers(gctx, req.DriverIDs)
		return err
	})
	g.Go(func() error {
		var err error
		routes, err = repo.ListRoutes(gctx, req.RouteIDs)
		return err
	})
	g.Go(func() error {
		var err error
		orders, err = repo.ListOrders(gctx, req.RouteIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("run simulation: load snapshot: %w", err)
	}

	if len(drivers) == 0 {
		return nil, fmt.Errorf("run simulation: %w", domain.ErrNoDriversAvailable)
	}
	if len(orders) == 0 {
		return nil, fmt.Errorf("run simulation: %w", domain.ErrNoOrdersAvailable)
	}

	routeByID := make(map[int]*domain.Route, len(routes))
	for _, r := range routes {
		routeByID[r.RouteID] = r
	}

	outcome, err := AssignOrders(drivers, orders, routeByID, startClock, req.MaxHours)
	if err != nil {
		return nil, fmt.Errorf("run simulation: %w", err)
	}

	var (
		orderResults    = make([]domain.OrderResult, 0, len(outcome.Placed))
		minutesByDriver = make(map[int]float64, len(drivers))
		totalValue      float64
		totalFuel       float64
		totalPenalties  float64
		totalBonuses    float64
		onTimeCount     int
	)

	for _, p := range outcome.Placed {
		onTime, err := IsOnTime(p.Order, p.DurationMin)
		if err != nil {
			return nil, fmt.Errorf("run simulation: %w", err)
		}
		penalty, bonus := PenaltyAndBonus(p.Order, onTime)
		fuel := FuelCost(p.Route)

		orderResults = append(orderResults, domain.OrderResult{
			OrderID:           p.Order.OrderID,
			DriverID:          p.Driver.DriverID,
			RouteID:           p.Route.RouteID,
			ExpectedTime:      p.Order.DeliveryTime,
			ActualDurationMin: p.DurationMin,
			OnTime:            onTime,
			Penalty:           penalty,
			Bonus:             bonus,
			FuelCost:          fuel,
		})

		minutesByDriver[p.Driver.DriverID] += p.DurationMin
		totalValue += p.Order.ValueRs
		totalFuel += fuel
		totalPenalties += penalty
		totalBonuses += bonus
		if onTime {
			onTimeCount++
		}
	}

	driverByID := make(map[int]*domain.Driver, len(drivers))
	for _, d := range drivers {
		driverByID[d.DriverID] = d
	}

	// Score only drivers that received work, in first-placement order.
	driverResults := make([]domain.DriverAssignmentResult, 0, len(outcome.Assignments))
	scores := make([]float64, 0, len(outcome.Assignments))
	for _, a := range outcome.Assignments {
		driver := driverByID[a.DriverID]
		totalMinutes := minutesByDriver[a.DriverID]
		score := DriverEfficiency(driver, totalMinutes)
		scores = append(scores, score)

		driverResults = append(driverResults, domain.DriverAssignmentResult{
			DriverID:     a.DriverID,
			DriverName:   driver.Name,
			OrderIDs:     a.OrderIDs,
			TotalMinutes: totalMinutes,
			Efficiency:   score,
		})
	}

	efficiencyScore := AggregateEfficiency(scores)
	totalProfit := totalValue + totalBonuses - totalPenalties - totalFuel

	summary := BuildSummary(RunTotals{
		TotalOrders:     len(orders),
		TotalRoutes:     len(routes),
		DroppedOrders:   outcome.Dropped,
		EfficiencyScore: efficiencyScore,
		TotalProfit:     totalProfit,
		FuelCost:        totalFuel,
		Penalties:       totalPenalties,
		Bonuses:         totalBonuses,
	})

	result := &domain.SimulationResult{
		SimulationID:     uuid.NewString(),
		Name:             req.Name,
		CreatedBy:        actorID,
		CreatedAt:        time.Now().UTC(),
		DriverCount:      req.DriverCount,
		TotalProfit:      totalProfit,
		FuelCost:         totalFuel,
		Penalties:        totalPenalties,
		Bonuses:          totalBonuses,
		EfficiencyScore:  efficiencyScore,
		OnTimeDeliveries: onTimeCount,
		TotalDeliveries:  len(outcome.Placed),
		Data: domain.SimulationData{
			DriverAssignments: driverResults,
			OrderResults:      orderResults,
			Summary:           summary,
		},
	}

	if err := store.SaveSimulation(ctx, result); err != nil {
		return nil, fmt.Errorf("run simulation: save result: %w", err)
	}

	return result, nil
}
