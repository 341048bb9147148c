package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"highwaymetric/internal/domain/entity"
	"highwaymetric/internal/repository"
)

type highwayRepo struct{ s *Store }

func (r highwayRepo) Get(ctx context.Context, id string) (*entity.Highway, error) {
	defer r.s.lock(ctx)()
	h, ok := r.s.data.highways[id]
	if !ok {
		return nil, nil
	}
	return &h, nil
}

func (r highwayRepo) GetByNumber(ctx context.Context, number string) (*entity.Highway, error) {
	defer r.s.lock(ctx)()
	for _, h := range r.s.data.highways {
		if h.HighwayNumber == number {
			return &h, nil
		}
	}
	return nil, nil
}

func (r highwayRepo) List(ctx context.Context, filters repository.HighwayFilters) ([]*entity.Highway, error) {
	defer r.s.lock(ctx)()
	out := make([]*entity.Highway, 0, len(r.s.data.highways))
	for _, h := range r.s.data.highways {
		if filters.Status != nil && h.Status != *filters.Status {
			continue
		}
		out = append(out, &h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].HighwayNumber < out[j].HighwayNumber })
	return out, nil
}

func (r highwayRepo) Create(ctx context.Context, h *entity.Highway) error {
	defer r.s.lock(ctx)()
	for _, existing := range r.s.data.highways {
		if existing.HighwayNumber == h.HighwayNumber {
			return fmt.Errorf("create highway: %w: number %q", entity.ErrConflict, h.HighwayNumber)
		}
	}
	if h.Status == "" {
		h.Status = entity.HighwayPlanning
	}
	h.ID = uuid.NewString()
	r.s.data.highways[h.ID] = *h
	return nil
}

func (r highwayRepo) Summary(ctx context.Context) (entity.HighwaySummary, error) {
	defer r.s.lock(ctx)()
	var sum entity.HighwaySummary
	for _, h := range r.s.data.highways {
		sum.TotalHighways++
		if h.EstimatedBudget != nil {
			sum.TotalEstimatedBudget += *h.EstimatedBudget
		}
		if h.ActualCost != nil {
			sum.TotalActualCost += *h.ActualCost
		}
		sum.TotalReworks += int64(h.ReworkCount)
	}
	return sum, nil
}
