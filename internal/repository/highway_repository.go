package repository

import (
	"context"

	"highwaymetric/internal/domain/entity"
)

// HighwayFilters narrows List results. A nil field means no filter.
type HighwayFilters struct {
	Status *entity.HighwayStatus
}

// HighwayRepository persists highways.
type HighwayRepository interface {
	Get(ctx context.Context, id string) (*entity.Highway, error)
	GetByNumber(ctx context.Context, number string) (*entity.Highway, error)
	List(ctx context.Context, filters HighwayFilters) ([]*entity.Highway, error)
	// Create inserts the highway and assigns the generated ID.
	Create(ctx context.Context, h *entity.Highway) error
	Summary(ctx context.Context) (entity.HighwaySummary, error)
}
