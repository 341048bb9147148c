package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"highwaymetric/internal/domain/entity"
	"highwaymetric/internal/repository"
)

type projectRepo struct{ s *Store }

func (r projectRepo) withContractor(p entity.Project) repository.ProjectWithContractor {
	p.HighwayIDs = append([]string(nil), p.HighwayIDs...)
	out := repository.ProjectWithContractor{Project: &p}
	if p.ContractorID != nil {
		if c, ok := r.s.data.contractors[*p.ContractorID]; ok {
			name := c.Name
			out.ContractorName = &name
		}
	}
	return out
}

func (r projectRepo) Get(ctx context.Context, id string) (*repository.ProjectWithContractor, error) {
	defer r.s.lock(ctx)()
	p, ok := r.s.data.projects[id]
	if !ok {
		return nil, nil
	}
	out := r.withContractor(p)
	return &out, nil
}

func (r projectRepo) GetByName(ctx context.Context, name string) (*entity.Project, error) {
	defer r.s.lock(ctx)()
	for _, p := range r.s.data.projects {
		if p.ProjectName == name {
			return &p, nil
		}
	}
	return nil, nil
}

func (r projectRepo) List(ctx context.Context) ([]repository.ProjectWithContractor, error) {
	defer r.s.lock(ctx)()
	out := make([]repository.ProjectWithContractor, 0, len(r.s.data.projects))
	for _, p := range r.s.data.projects {
		out = append(out, r.withContractor(p))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Project.ProjectName < out[j].Project.ProjectName
	})
	return out, nil
}

func (r projectRepo) Create(ctx context.Context, p *entity.Project) error {
	defer r.s.lock(ctx)()
	for _, existing := range r.s.data.projects {
		if existing.ProjectName == p.ProjectName {
			return fmt.Errorf("create project: %w: name %q", entity.ErrConflict, p.ProjectName)
		}
	}
	if p.ContractorID != nil {
		if _, ok := r.s.data.contractors[*p.ContractorID]; !ok {
			return fmt.Errorf("create project: contractor %s does not exist", *p.ContractorID)
		}
	}
	for _, hid := range p.HighwayIDs {
		if _, ok := r.s.data.highways[hid]; !ok {
			return fmt.Errorf("create project: highway %s does not exist", hid)
		}
	}
	p.ID = uuid.NewString()
	stored := *p
	stored.HighwayIDs = append([]string(nil), p.HighwayIDs...)
	r.s.data.projects[p.ID] = stored
	return nil
}

func (r projectRepo) Delete(ctx context.Context, id string) (bool, error) {
	defer r.s.lock(ctx)()
	for _, a := range r.s.data.news {
		if a.ProjectID == id {
			return false, fmt.Errorf("delete project: news article %s still references it", a.ID)
		}
	}
	if _, ok := r.s.data.projects[id]; !ok {
		return false, nil
	}
	delete(r.s.data.projects, id)
	return true, nil
}

func (r projectRepo) DetachContractor(ctx context.Context, contractorID string, at time.Time) (int64, error) {
	defer r.s.lock(ctx)()
	var n int64
	for id, p := range r.s.data.projects {
		if p.ContractorID != nil && *p.ContractorID == contractorID {
			p.ContractorID = nil
			p.UpdatedAt = at
			r.s.data.projects[id] = p
			n++
		}
	}
	return n, nil
}
