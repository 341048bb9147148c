package entity

import (
	"encoding/json"
	"time"
)

// Project is a highway construction project. ProjectName is its natural key.
// LOADate and StartDate are calendar dates kept at midnight UTC.
type Project struct {
	ID             string
	ProjectName    string
	NHNumber       *string
	Lanes          *string
	TotalLength    *float64
	State          *string
	Concessionaire *string
	Geom           json.RawMessage
	Status         *ProjectStatus
	LOADate        *time.Time
	StartDate      *time.Time
	ContractorID   *string
	HighwayIDs     []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
