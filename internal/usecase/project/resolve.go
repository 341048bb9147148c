package project

import (
	"context"
	"fmt"
	"time"

	"highwaymetric/internal/domain/entity"
)

// resolveContractor finds a contractor by name or creates a shell holding only the name.
func (s *Service) resolveContractor(ctx context.Context, name string, now time.Time) (*entity.Contractor, bool, error) {
	c, err := s.Contractors.GetByName(ctx, name)
	if err != nil {
		return nil, false, fmt.Errorf("get contractor by name: %w", err)
	}
	if c != nil {
		return c, false, nil
	}

	c = &entity.Contractor{Name: name, CreatedAt: now, UpdatedAt: now}
	if err := s.Contractors.Create(ctx, c); err != nil {
		return nil, false, fmt.Errorf("create contractor %q: %w", name, err)
	}
	return c, true, nil
}

// resolveHighway finds a highway by number or creates a shell holding only the number.
func (s *Service) resolveHighway(ctx context.Context, number string, now time.Time) (*entity.Highway, bool, error) {
	h, err := s.Highways.GetByNumber(ctx, number)
	if err != nil {
		return nil, false, fmt.Errorf("get highway by number: %w", err)
	}
	if h != nil {
		return h, false, nil
	}

	h = &entity.Highway{
		HighwayNumber: number,
		Status:        entity.HighwayPlanning,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.Highways.Create(ctx, h); err != nil {
		return nil, false, fmt.Errorf("create highway %q: %w", number, err)
	}
	return h, true, nil
}
