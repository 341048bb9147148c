package project

import (
	"encoding/json"
	"time"

	"highwaymetric/internal/domain/entity"
	"highwaymetric/internal/repository"
	projectUC "highwaymetric/internal/usecase/project"
)

// DTO is the external form of a project. HighwayID is the first associated
// highway; dates are yyyy-MM-dd.
type DTO struct {
	ID             string                `json:"id"`
	ProjectName    string                `json:"projectName"`
	NHNumber       *string               `json:"nhNumber"`
	Lanes          *string               `json:"lanes"`
	TotalLength    *float64              `json:"totalLength"`
	State          *string               `json:"state"`
	Concessionaire *string               `json:"concessionaire"`
	Geom           json.RawMessage       `json:"geom" swaggertype:"object"`
	Status         *entity.ProjectStatus `json:"status" swaggertype:"string" enums:"UNDER_IMPLEMENTATION,AWARDED_BUT_NOT_STARTED,BALANCE_FOR_AWARD,COMPLETED"`
	LOADate        *string               `json:"loaDate" example:"2023-08-15"`
	StartDate      *string               `json:"startDate"`
	ContractorID   *string               `json:"contractorId"`
	ContractorName *string               `json:"contractorName"`
	HighwayID      *string               `json:"highwayId"`
	HighwayIDs     []string              `json:"highwayIds"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}

// Input is the body of POST /api/projects. Dates are dd/MM/yyyy and status
// accepts the enum name or its phrase ("Under Implementation").
type Input struct {
	Name           string                `json:"name" validate:"notblank,max=500" example:"NH44 Widening"`
	HighwayNo      []string              `json:"highwayNo" validate:"omitempty,dive,max=50" example:"NH44"`
	TotalLength    *float64              `json:"totalLength" validate:"omitempty,gte=0"`
	Lanes          *string               `json:"lanes" validate:"omitempty,max=50"`
	LOADate        *string               `json:"LOAdate" example:"15/08/2023"`
	StartDate      *string               `json:"StartDate" example:"01/10/2023"`
	State          *string               `json:"State" validate:"omitempty,max=100"`
	Status         *entity.ProjectStatus `json:"status" swaggertype:"string" example:"Under Implementation"`
	Contractor     *string               `json:"Contractor" validate:"omitempty,max=255" example:"Acme Corp"`
	NHNumber       *string               `json:"nhNumber" validate:"omitempty,max=50"`
	Concessionaire *string               `json:"concessionaire" validate:"omitempty,max=255"`
	Geom           json.RawMessage       `json:"geom" swaggertype:"object"`
}

func (in Input) toUsecase() projectUC.Input {
	out := projectUC.Input{
		Name:           in.Name,
		NHNumber:       in.NHNumber,
		Lanes:          in.Lanes,
		TotalLength:    in.TotalLength,
		State:          in.State,
		Concessionaire: in.Concessionaire,
		Status:         in.Status,
		HighwayNumbers: in.HighwayNo,
		LOADate:        deref(in.LOADate),
		StartDate:      deref(in.StartDate),
		Contractor:     deref(in.Contractor),
	}
	if len(in.Geom) > 0 && string(in.Geom) != "null" {
		out.Geom = in.Geom
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toDTO(pc repository.ProjectWithContractor) DTO {
	p := pc.Project
	dto := DTO{
		ID:             p.ID,
		ProjectName:    p.ProjectName,
		NHNumber:       p.NHNumber,
		Lanes:          p.Lanes,
		TotalLength:    p.TotalLength,
		State:          p.State,
		Concessionaire: p.Concessionaire,
		Geom:           p.Geom,
		Status:         p.Status,
		LOADate:        entity.FormatDate(p.LOADate),
		StartDate:      entity.FormatDate(p.StartDate),
		ContractorID:   p.ContractorID,
		ContractorName: pc.ContractorName,
		HighwayIDs:     make([]string, 0, len(p.HighwayIDs)),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	dto.HighwayIDs = append(dto.HighwayIDs, p.HighwayIDs...)
	if len(p.HighwayIDs) > 0 {
		first := p.HighwayIDs[0]
		dto.HighwayID = &first
	}
	return dto
}
