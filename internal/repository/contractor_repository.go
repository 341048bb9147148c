package repository

import (
	"context"

	"highwaymetric/internal/domain/entity"
)

// ContractorRepository persists contractors.
// Lookups return (nil, nil) when no row matches.
type ContractorRepository interface {
	Get(ctx context.Context, id string) (*entity.Contractor, error)
	GetByName(ctx context.Context, name string) (*entity.Contractor, error)
	List(ctx context.Context) ([]*entity.Contractor, error)
	// Create inserts the contractor and assigns the generated ID.
	Create(ctx context.Context, c *entity.Contractor) error
	Update(ctx context.Context, c *entity.Contractor) error
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, id string) (bool, error)
}
