package contractor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"highwaymetric/internal/domain/entity"
	"highwaymetric/internal/repository"
)

const maxDescriptionLen = 2000

// Input carries the writable fields of a contractor.
type Input struct {
	Name        string
	Description *string
}

// Service provides contractor management use cases.
type Service struct {
	Repo     repository.ContractorRepository
	Projects repository.ProjectRepository
	Tx       repository.Transactor
	// Now defaults to time.Now.
	Now func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC().Truncate(time.Microsecond)
	}
	return time.Now().UTC().Truncate(time.Microsecond)
}

func validate(in Input) (Input, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return in, &entity.ValidationError{Field: "name", Message: "is required"}
	}
	if in.Description != nil && len(*in.Description) > maxDescriptionLen {
		return in, &entity.ValidationError{
			Field:   "description",
			Message: fmt.Sprintf("must be at most %d characters", maxDescriptionLen),
		}
	}
	return in, nil
}

// Create persists a new contractor. There is no duplicate-name check here:
// the unique constraint on name rejects duplicates with entity.ErrConflict.
func (s *Service) Create(ctx context.Context, in Input) (*entity.Contractor, error) {
	in, err := validate(in)
	if err != nil {
		return nil, err
	}

	now := s.now()
	c := &entity.Contractor{
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err = s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.Repo.Create(ctx, c)
	})
	if err != nil {
		return nil, fmt.Errorf("create contractor: %w", err)
	}
	return c, nil
}

// List returns every contractor.
func (s *Service) List(ctx context.Context) ([]*entity.Contractor, error) {
	var out []*entity.Contractor
	err := s.Tx.WithinReadOnlyTx(ctx, func(ctx context.Context) error {
		var err error
		out, err = s.Repo.List(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list contractors: %w", err)
	}
	return out, nil
}

// Get returns ErrContractorNotFound when id does not exist.
func (s *Service) Get(ctx context.Context, id string) (*entity.Contractor, error) {
	var c *entity.Contractor
	err := s.Tx.WithinReadOnlyTx(ctx, func(ctx context.Context) error {
		var err error
		c, err = s.Repo.Get(ctx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get contractor: %w", err)
	}
	if c == nil {
		return nil, ErrContractorNotFound
	}
	return c, nil
}

// Update overwrites name and description. UpdatedAt always moves strictly
// forward, even when the clock has not advanced since the last write.
func (s *Service) Update(ctx context.Context, id string, in Input) (*entity.Contractor, error) {
	in, err := validate(in)
	if err != nil {
		return nil, err
	}

	var c *entity.Contractor
	err = s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		c, err = s.Repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if c == nil {
			return ErrContractorNotFound
		}

		c.Name = in.Name
		c.Description = in.Description
		c.UpdatedAt = advance(c.UpdatedAt, s.now())
		return s.Repo.Update(ctx, c)
	})
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, ErrContractorNotFound
		}
		return nil, fmt.Errorf("update contractor: %w", err)
	}
	return c, nil
}

// Delete removes the contractor after detaching its projects.
// Returns ErrContractorNotFound when id does not exist.
func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.Projects.DetachContractor(ctx, id, s.now()); err != nil {
			return err
		}
		ok, err := s.Repo.Delete(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return ErrContractorNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrContractorNotFound
		}
		return fmt.Errorf("delete contractor: %w", err)
	}
	return nil
}

// advance returns now, or prev plus one microsecond when now is not after prev.
func advance(prev, now time.Time) time.Time {
	if now.After(prev) {
		return now
	}
	return prev.Add(time.Microsecond)
}
