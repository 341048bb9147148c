package highway

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"highwaymetric/internal/domain/entity"
	"highwaymetric/internal/repository"
)

// Service provides highway use cases.
type Service struct {
	Repo repository.HighwayRepository
	News repository.NewsArticleRepository
	Tx   repository.Transactor
}

// List returns all highways, or only those in status when it is not blank.
// An unknown status is a ValidationError.
func (s *Service) List(ctx context.Context, status string) ([]*entity.Highway, error) {
	var filters repository.HighwayFilters
	if strings.TrimSpace(status) != "" {
		st, err := entity.ParseHighwayStatus(status)
		if err != nil {
			return nil, err
		}
		filters.Status = &st
	}

	var out []*entity.Highway
	err := s.Tx.WithinReadOnlyTx(ctx, func(ctx context.Context) error {
		var err error
		out, err = s.Repo.List(ctx, filters)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list highways: %w", err)
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id string) (*entity.Highway, error) {
	var h *entity.Highway
	err := s.Tx.WithinReadOnlyTx(ctx, func(ctx context.Context) error {
		var err error
		h, err = s.Repo.Get(ctx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get highway: %w", err)
	}
	if h == nil {
		return nil, ErrHighwayNotFound
	}
	return h, nil
}

// ListNews returns the news articles of a highway, newest first.
func (s *Service) ListNews(ctx context.Context, id string) ([]*entity.NewsArticle, error) {
	var out []*entity.NewsArticle
	err := s.Tx.WithinReadOnlyTx(ctx, func(ctx context.Context) error {
		h, err := s.Repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if h == nil {
			return ErrHighwayNotFound
		}
		out, err = s.News.ListByHighway(ctx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, ErrHighwayNotFound
		}
		return nil, fmt.Errorf("list highway news: %w", err)
	}
	return out, nil
}

// Summary aggregates budget, cost and rework figures over all highways.
func (s *Service) Summary(ctx context.Context) (entity.HighwaySummary, error) {
	var sum entity.HighwaySummary
	err := s.Tx.WithinReadOnlyTx(ctx, func(ctx context.Context) error {
		var err error
		sum, err = s.Repo.Summary(ctx)
		return err
	})
	if err != nil {
		return entity.HighwaySummary{}, fmt.Errorf("highway summary: %w", err)
	}
	return sum, nil
}
