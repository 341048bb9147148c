package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"highwaymetric/internal/domain/entity"
)

type contractorRepo struct{ s *Store }

func (r contractorRepo) Get(ctx context.Context, id string) (*entity.Contractor, error) {
	defer r.s.lock(ctx)()
	c, ok := r.s.data.contractors[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r contractorRepo) GetByName(ctx context.Context, name string) (*entity.Contractor, error) {
	defer r.s.lock(ctx)()
	for _, c := range r.s.data.contractors {
		if c.Name == name {
			return &c, nil
		}
	}
	return nil, nil
}

func (r contractorRepo) List(ctx context.Context) ([]*entity.Contractor, error) {
	defer r.s.lock(ctx)()
	out := make([]*entity.Contractor, 0, len(r.s.data.contractors))
	for _, c := range r.s.data.contractors {
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r contractorRepo) nameTaken(name, except string) bool {
	for id, c := range r.s.data.contractors {
		if c.Name == name && id != except {
			return true
		}
	}
	return false
}

func (r contractorRepo) Create(ctx context.Context, c *entity.Contractor) error {
	defer r.s.lock(ctx)()
	if r.nameTaken(c.Name, "") {
		return fmt.Errorf("create contractor: %w: name %q", entity.ErrConflict, c.Name)
	}
	c.ID = uuid.NewString()
	r.s.data.contractors[c.ID] = *c
	return nil
}

func (r contractorRepo) Update(ctx context.Context, c *entity.Contractor) error {
	defer r.s.lock(ctx)()
	if _, ok := r.s.data.contractors[c.ID]; !ok {
		return fmt.Errorf("update contractor: %w", entity.ErrNotFound)
	}
	if r.nameTaken(c.Name, c.ID) {
		return fmt.Errorf("update contractor: %w: name %q", entity.ErrConflict, c.Name)
	}
	r.s.data.contractors[c.ID] = *c
	return nil
}

func (r contractorRepo) Delete(ctx context.Context, id string) (bool, error) {
	defer r.s.lock(ctx)()
	if _, ok := r.s.data.contractors[id]; !ok {
		return false, nil
	}
	// contractor_id is ON DELETE SET NULL
	for pid, p := range r.s.data.projects {
		if p.ContractorID != nil && *p.ContractorID == id {
			p.ContractorID = nil
			r.s.data.projects[pid] = p
		}
	}
	delete(r.s.data.contractors, id)
	return true, nil
}
