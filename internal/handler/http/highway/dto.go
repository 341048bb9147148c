package highway

import (
	"encoding/json"
	"time"

	"highwaymetric/internal/domain/entity"
)

type DTO struct {
	ID              string          `json:"id"`
	HighwayNumber   string          `json:"highwayNumber"`
	Name            *string         `json:"name"`
	Description     *string         `json:"description"`
	Status          string          `json:"status" enums:"PLANNING,CONSTRUCTION,COMPLETED,MAINTENANCE"`
	State           *string         `json:"state"`
	Geom            json.RawMessage `json:"geom" swaggertype:"object"`
	EstimatedBudget *float64        `json:"estimatedBudget"`
	ActualCost      *float64        `json:"actualCost"`
	ReworkCount     int             `json:"reworkCount"`
	CompletionDate  *time.Time      `json:"completionDate"`
	LengthKm        *float64        `json:"lengthKm"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type SummaryDTO struct {
	TotalHighways        int64   `json:"totalHighways"`
	TotalEstimatedBudget float64 `json:"totalEstimatedBudget"`
	TotalActualCost      float64 `json:"totalActualCost"`
	TotalReworks         int64   `json:"totalReworks"`
}

func toDTO(h *entity.Highway) DTO {
	return DTO{
		ID:              h.ID,
		HighwayNumber:   h.HighwayNumber,
		Name:            h.Name,
		Description:     h.Description,
		Status:          string(h.Status),
		State:           h.State,
		Geom:            h.Geom,
		EstimatedBudget: h.EstimatedBudget,
		ActualCost:      h.ActualCost,
		ReworkCount:     h.ReworkCount,
		CompletionDate:  h.CompletionDate,
		LengthKm:        h.LengthKm,
		CreatedAt:       h.CreatedAt,
		UpdatedAt:       h.UpdatedAt,
	}
}
