package contractor

import (
	"time"

	"highwaymetric/internal/domain/entity"
)

type DTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Input is the body of create and update requests.
type Input struct {
	Name        string  `json:"name" validate:"notblank,max=255" example:"Acme Infra Ltd"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

func toDTO(c *entity.Contractor) DTO {
	return DTO{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
