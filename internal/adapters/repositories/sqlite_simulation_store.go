package repositories

import (
	"context"
	"database/sql"
	"delivery-sim-service/internal/domain"
	"delivery-sim-service/internal/platform/obs"
	"delivery-sim-service/internal/ports"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// SQLite-backed implementation of the SimulationStore port. The full
// result is stored as a JSON document next to a few headline columns used
// by listings.
type SqliteSimulationStore struct{ DB *sql.DB }

func NewSqliteSimulationStore(db *sql.DB) *SqliteSimulationStore {
	return &SqliteSimulationStore{DB: db}
}

// SaveSimulation stores one finished result. The write is a single insert;
// concurrent runs never contend on the same key.
func (s *SqliteSimulationStore) SaveSimulation(ctx context.Context, result *domain.SimulationResult) (err error) {
	defer obs.Time(ctx, "store.SaveSimulation")(&err)

	if s.DB == nil {
		return errors.New("simulation store: DB is nil")
	}
	if result == nil || result.SimulationID == "" {
		return errors.New("save simulation: result must have an id")
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("save simulation: marshal result: %w", err)
	}

	query := `
	INSERT INTO simulations (
		simulation_id, name, created_by, created_at,
		total_profit, efficiency_score, total_deliveries, result_json
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err = s.DB.ExecContext(ctx, query,
		result.SimulationID,
		result.Name,
		result.CreatedBy,
		result.CreatedAt.Format(time.RFC3339Nano),
		result.TotalProfit,
		result.EfficiencyScore,
		result.TotalDeliveries,
		string(payload),
	)
	if err != nil {
		return fmt.Errorf("save simulation %s: insert: %w", result.SimulationID, err)
	}

	return nil
}

// GetSimulation loads one stored result by id.
func (s *SqliteSimulationStore) GetSimulation(ctx context.Context, id string) (_ *domain.SimulationResult, err error) {
	defer obs.Time(ctx, "store.GetSimulation")(&err)

	if s.DB == nil {
		return nil, errors.New("simulation store: DB is nil")
	}

	var payload string
	query := `SELECT result_json FROM simulations WHERE simulation_id = ?;`
	if err := s.DB.QueryRowContext(ctx, query, id).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("get simulation %s: %w", id, ports.ErrSimulationNotFound)
		}
		return nil, fmt.Errorf("get simulation %s: query: %w", id, err)
	}

	var result domain.SimulationResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil, fmt.Errorf("get simulation %s: unmarshal result: %w", id, err)
	}

	return &result, nil
}

// ListSimulations returns headline rows, newest first.
func (s *SqliteSimulationStore) ListSimulations(ctx context.Context) (_ []ports.SimulationListItem, err error) {
	defer obs.Time(ctx, "store.ListSimulations")(&err)

	if s.DB == nil {
		return nil, errors.New("simulation store: DB is nil")
	}

	query := `
	SELECT simulation_id, name, created_by, created_at,
		total_profit, efficiency_score, total_deliveries
	FROM simulations
	ORDER BY created_at DESC;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list simulations: query: %w", err)
	}
	defer rows.Close()

	items := make([]ports.SimulationListItem, 0, 32)
	for rows.Next() {
		var item ports.SimulationListItem
		if err := rows.Scan(
			&item.SimulationID,
			&item.Name,
			&item.CreatedBy,
			&item.CreatedAt,
			&item.TotalProfit,
			&item.EfficiencyScore,
			&item.TotalDeliveries,
		); err != nil {
			return nil, fmt.Errorf("list simulations: scan row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list simulations: row iteration: %w", err)
	}

	return items, nil
}
