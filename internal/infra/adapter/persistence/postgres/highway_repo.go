package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"highwaymetric/internal/domain/entity"
	"highwaymetric/internal/repository"
)

type HighwayRepo struct{ db *sql.DB }

func NewHighwayRepo(db *sql.DB) repository.HighwayRepository {
	return &HighwayRepo{db: db}
}

const highwayColumns = `id, highway_number, name, description, status, state, geom,
       estimated_budget, actual_cost, rework_count, completion_date, length_km,
       created_at, updated_at`

func scanHighway(s rowScanner) (*entity.Highway, error) {
	var (
		h                        entity.Highway
		name, description, state sql.NullString
		status                   string
		geom                     []byte
		budget, cost, length     sql.NullFloat64
		completion               sql.NullTime
	)
	if err := s.Scan(
		&h.ID, &h.HighwayNumber, &name, &description, &status, &state, &geom,
		&budget, &cost, &h.ReworkCount, &completion, &length,
		&h.CreatedAt, &h.UpdatedAt,
	); err != nil {
		return nil, err
	}
	h.Status = entity.HighwayStatus(status)
	h.Name = stringPtr(name)
	h.Description = stringPtr(description)
	h.State = stringPtr(state)
	h.Geom = rawJSON(geom)
	h.EstimatedBudget = floatPtr(budget)
	h.ActualCost = floatPtr(cost)
	h.LengthKm = floatPtr(length)
	h.CompletionDate = timePtr(completion)
	return &h, nil
}

func (repo *HighwayRepo) Get(ctx context.Context, id string) (*entity.Highway, error) {
	const query = `
SELECT ` + highwayColumns + `
FROM highway
WHERE id = $1
LIMIT 1`
	h, err := scanHighway(conn(ctx, repo.db).QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return h, nil
}

func (repo *HighwayRepo) GetByNumber(ctx context.Context, number string) (*entity.Highway, error) {
	const query = `
SELECT ` + highwayColumns + `
FROM highway
WHERE highway_number = $1
LIMIT 1`
	h, err := scanHighway(conn(ctx, repo.db).QueryRowContext(ctx, query, number))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByNumber: %w", err)
	}
	return h, nil
}

func (repo *HighwayRepo) List(ctx context.Context, filters repository.HighwayFilters) ([]*entity.Highway, error) {
	query := `
SELECT ` + highwayColumns + `
FROM highway`
	var args []any
	if filters.Status != nil {
		query += `
WHERE status = $1`
		args = append(args, string(*filters.Status))
	}
	query += `
ORDER BY highway_number ASC`

	rows, err := conn(ctx, repo.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	highways := make([]*entity.Highway, 0, 64)
	for rows.Next() {
		h, err := scanHighway(rows)
		if err != nil {
			return nil, fmt.Errorf("List: %w", err)
		}
		highways = append(highways, h)
	}
	return highways, rows.Err()
}

func (repo *HighwayRepo) Create(ctx context.Context, h *entity.Highway) error {
	if h.Status == "" {
		h.Status = entity.HighwayPlanning
	}
	const query = `
INSERT INTO highway (
       highway_number, name, description, status, state, geom,
       estimated_budget, actual_cost, rework_count, completion_date, length_km,
       created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING id`
	err := conn(ctx, repo.db).QueryRowContext(ctx, query,
		h.HighwayNumber, h.Name, h.Description, string(h.Status), h.State, jsonArg(h.Geom),
		h.EstimatedBudget, h.ActualCost, h.ReworkCount, h.CompletionDate, h.LengthKm,
		h.CreatedAt, h.UpdatedAt,
	).Scan(&h.ID)
	if err != nil {
		return translate("Create", err)
	}
	return nil
}

func (repo *HighwayRepo) Summary(ctx context.Context) (entity.HighwaySummary, error) {
	const query = `
SELECT COUNT(*),
       COALESCE(SUM(estimated_budget), 0),
       COALESCE(SUM(actual_cost), 0),
       COALESCE(SUM(rework_count), 0)
FROM highway`
	var s entity.HighwaySummary
	err := conn(ctx, repo.db).QueryRowContext(ctx, query).Scan(
		&s.TotalHighways, &s.TotalEstimatedBudget, &s.TotalActualCost, &s.TotalReworks,
	)
	if err != nil {
		return entity.HighwaySummary{}, fmt.Errorf("Summary: %w", err)
	}
	return s, nil
}
