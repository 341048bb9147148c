package entity

import (
	"encoding/json"
	"time"
)

// Highway is a road identified by its highway number (for example "NH44").
// A highway created as a side effect of project creation carries only its number.
type Highway struct {
	ID              string
	HighwayNumber   string
	Name            *string
	Description     *string
	Status          HighwayStatus
	State           *string
	Geom            json.RawMessage // GeoJSON, stored as-is
	EstimatedBudget *float64
	ActualCost      *float64
	ReworkCount     int
	CompletionDate  *time.Time
	LengthKm        *float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HighwaySummary aggregates budget and rework figures over all highways.
type HighwaySummary struct {
	TotalHighways        int64
	TotalEstimatedBudget float64
	TotalActualCost      float64
	TotalReworks         int64
}
