package project

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"highwaymetric/internal/domain/entity"
	"highwaymetric/internal/observability/metrics"
	"highwaymetric/internal/observability/tracing"
	"highwaymetric/internal/repository"
)

// Input is a project submission. Contractor and HighwayNumbers are natural
// keys; LOADate and StartDate are dd/MM/yyyy strings where empty means unset.
// Highway numbers are matched case-insensitively and stored upper-cased.
type Input struct {
	Name           string
	NHNumber       *string
	Lanes          *string
	TotalLength    *float64
	State          *string
	Concessionaire *string
	Geom           json.RawMessage
	Status         *entity.ProjectStatus
	LOADate        string
	StartDate      string
	Contractor     string
	HighwayNumbers []string
}

// Service provides project use cases.
type Service struct {
	Projects    repository.ProjectRepository
	Contractors repository.ContractorRepository
	Highways    repository.HighwayRepository
	News        repository.NewsArticleRepository
	Tx          repository.Transactor
	// Now defaults to time.Now.
	Now func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC().Truncate(time.Microsecond)
	}
	return time.Now().UTC().Truncate(time.Microsecond)
}

// shells counts entities created implicitly while adding a project.
type shells struct {
	contractors int
	highways    int
}

// AddNewProject validates and persists a project together with its contractor
// and highway associations, returning the generated id.
//
// The duplicate-name check is best-effort; two concurrent submissions with the
// same name are separated by the unique constraint on project_name.
func (s *Service) AddNewProject(ctx context.Context, in Input) (id string, err error) {
	ctx, span := tracing.Tracer().Start(ctx, "project.AddNewProject")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		metrics.RecordProjectRejected("invalid_input")
		return "", &entity.ValidationError{Field: "name", Message: "is required"}
	}
	span.SetAttributes(attribute.String("project.name", in.Name))

	var created shells
	err = s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		created = shells{}

		existing, err := s.Projects.GetByName(ctx, in.Name)
		if err != nil {
			return fmt.Errorf("get project by name: %w", err)
		}
		if existing != nil {
			return &DuplicateProjectError{Name: in.Name, ExistingID: existing.ID}
		}

		loa, err := parseDate(in.Name, "LOAdate", in.LOADate)
		if err != nil {
			return err
		}
		start, err := parseDate(in.Name, "StartDate", in.StartDate)
		if err != nil {
			return err
		}

		now := s.now()
		p := &entity.Project{
			ProjectName:    in.Name,
			NHNumber:       in.NHNumber,
			Lanes:          in.Lanes,
			TotalLength:    in.TotalLength,
			State:          in.State,
			Concessionaire: in.Concessionaire,
			Geom:           in.Geom,
			Status:         in.Status,
			LOADate:        loa,
			StartDate:      start,
			CreatedAt:      now,
			UpdatedAt:      now,
		}

		if name := strings.TrimSpace(in.Contractor); name != "" {
			c, isNew, err := s.resolveContractor(ctx, name, now)
			if err != nil {
				return err
			}
			if isNew {
				created.contractors++
			}
			p.ContractorID = &c.ID
		}

		for _, number := range highwayNumbers(in.HighwayNumbers) {
			h, isNew, err := s.resolveHighway(ctx, number, now)
			if err != nil {
				return err
			}
			if isNew {
				created.highways++
			}
			p.HighwayIDs = append(p.HighwayIDs, h.ID)
		}

		if err := s.Projects.Create(ctx, p); err != nil {
			return fmt.Errorf("create project: %w", err)
		}
		id = p.ID
		return nil
	})
	if err != nil {
		recordRejection(err)
		var dup *DuplicateProjectError
		var dfe *DateFormatError
		if errors.As(err, &dup) || errors.As(err, &dfe) {
			return "", err
		}
		return "", fmt.Errorf("add project: %w", err)
	}

	for range created.contractors {
		metrics.RecordShellEntityCreated(metrics.EntityContractor)
	}
	for range created.highways {
		metrics.RecordShellEntityCreated(metrics.EntityHighway)
	}
	metrics.RecordProjectCreated()
	span.SetAttributes(attribute.String("project.id", id))
	return id, nil
}

func recordRejection(err error) {
	var dfe *DateFormatError
	switch {
	case errors.Is(err, ErrDuplicateProject), errors.Is(err, entity.ErrConflict):
		metrics.RecordProjectRejected("duplicate")
	case errors.As(err, &dfe):
		metrics.RecordProjectRejected("invalid_date")
	case errors.Is(err, entity.ErrInvalidInput):
		metrics.RecordProjectRejected("invalid_input")
	}
}

func parseDate(project, field, value string) (*time.Time, error) {
	t, err := entity.ParseDayMonthYear(value)
	if err != nil {
		return nil, &DateFormatError{Project: project, Field: field, Value: value}
	}
	return t, nil
}

// highwayNumbers trims and upper-cases the submitted numbers, drops blanks
// and keeps the first occurrence of each repeated number.
func highwayNumbers(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, n := range in {
		n = strings.ToUpper(strings.TrimSpace(n))
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// List returns every project with its highway ids and contractor name.
func (s *Service) List(ctx context.Context) ([]repository.ProjectWithContractor, error) {
	var out []repository.ProjectWithContractor
	err := s.Tx.WithinReadOnlyTx(ctx, func(ctx context.Context) error {
		var err error
		out, err = s.Projects.List(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return out, nil
}

// Get returns ErrProjectNotFound when id does not exist.
func (s *Service) Get(ctx context.Context, id string) (*repository.ProjectWithContractor, error) {
	var p *repository.ProjectWithContractor
	err := s.Tx.WithinReadOnlyTx(ctx, func(ctx context.Context) error {
		var err error
		p, err = s.Projects.Get(ctx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	if p == nil {
		return nil, ErrProjectNotFound
	}
	return p, nil
}

// ListNews returns the news articles of a project, newest first.
func (s *Service) ListNews(ctx context.Context, id string) ([]*entity.NewsArticle, error) {
	var out []*entity.NewsArticle
	err := s.Tx.WithinReadOnlyTx(ctx, func(ctx context.Context) error {
		p, err := s.Projects.Get(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return ErrProjectNotFound
		}
		out, err = s.News.ListByProject(ctx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("list project news: %w", err)
	}
	return out, nil
}

// Remove deletes a project with its news articles and highway associations.
// Removing an unknown id is a no-op; the result reports whether a row existed.
func (s *Service) Remove(ctx context.Context, id string) (bool, error) {
	var removed bool
	err := s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.News.DeleteByProject(ctx, id); err != nil {
			return err
		}
		var err error
		removed, err = s.Projects.Delete(ctx, id)
		return err
	})
	if err != nil {
		return false, fmt.Errorf("remove project: %w", err)
	}
	if removed {
		metrics.RecordProjectDeleted()
	}
	return removed, nil
}
