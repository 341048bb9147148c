package repository

import (
	"context"
	"time"

	"highwaymetric/internal/domain/entity"
)

// ProjectWithContractor pairs a project with the name of its contractor.
// ContractorName is nil when the project has no contractor.
type ProjectWithContractor struct {
	Project        *entity.Project
	ContractorName *string
}

// ProjectRepository persists projects and their highway associations.
type ProjectRepository interface {
	Get(ctx context.Context, id string) (*ProjectWithContractor, error)
	GetByName(ctx context.Context, name string) (*entity.Project, error)
	// List returns every project with HighwayIDs populated.
	List(ctx context.Context) ([]ProjectWithContractor, error)
	// Create inserts the project row and one project_highway row per HighwayIDs entry.
	Create(ctx context.Context, p *entity.Project) error
	// Delete removes the project and its highway associations.
	// News articles must be removed beforehand.
	Delete(ctx context.Context, id string) (bool, error)
	// DetachContractor clears contractor_id on every project of the contractor
	// and stamps updated_at with at.
	DetachContractor(ctx context.Context, contractorID string, at time.Time) (int64, error)
}
