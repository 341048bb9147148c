package contractor_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"highwaymetric/internal/domain/entity"
	"highwaymetric/internal/repository"
	contractorUC "highwaymetric/internal/usecase/contractor"
)

/*────────────────────  in-memory stubs  ────────────────────*/

type stubRepo struct {
	data map[string]*entity.Contractor
	err  error
}

func newStub() *stubRepo {
	return &stubRepo{data: map[string]*entity.Contractor{}}
}

func (s *stubRepo) Get(_ context.Context, id string) (*entity.Contractor, error) {
	if s.err != nil {
		return nil, s.err
	}
	c, ok := s.data[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (s *stubRepo) GetByName(_ context.Context, name string) (*entity.Contractor, error) {
	for _, c := range s.data {
		if c.Name == name {
			return c, s.err
		}
	}
	return nil, s.err
}

func (s *stubRepo) List(_ context.Context) ([]*entity.Contractor, error) {
	var out []*entity.Contractor
	for _, c := range s.data {
		out = append(out, c)
	}
	return out, s.err
}

func (s *stubRepo) Create(_ context.Context, c *entity.Contractor) error {
	if s.err != nil {
		return s.err
	}
	for _, existing := range s.data {
		if existing.Name == c.Name {
			return entity.ErrConflict
		}
	}
	c.ID = uuid.NewString()
	cp := *c
	s.data[c.ID] = &cp
	return nil
}

func (s *stubRepo) Update(_ context.Context, c *entity.Contractor) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.data[c.ID]; !ok {
		return entity.ErrNotFound
	}
	cp := *c
	s.data[c.ID] = &cp
	return nil
}

func (s *stubRepo) Delete(_ context.Context, id string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	_, ok := s.data[id]
	delete(s.data, id)
	return ok, nil
}

// stubProjects implements only DetachContractor; the rest is unused here.
type stubProjects struct {
	repository.ProjectRepository
	detached []string
}

func (p *stubProjects) DetachContractor(_ context.Context, contractorID string, _ time.Time) (int64, error) {
	p.detached = append(p.detached, contractorID)
	return 1, nil
}

type stubTx struct{ calls int }

func (t *stubTx) WithinTx(ctx context.Context, fn func(context.Context) error) error {
	t.calls++
	return fn(ctx)
}

func (t *stubTx) WithinReadOnlyTx(ctx context.Context, fn func(context.Context) error) error {
	t.calls++
	return fn(ctx)
}

func newService(repo *stubRepo, now func() time.Time) (*contractorUC.Service, *stubProjects) {
	projects := &stubProjects{}
	return &contractorUC.Service{Repo: repo, Projects: projects, Tx: &stubTx{}, Now: now}, projects
}

func strPtr(s string) *string { return &s }

/*────────────────────  tests  ────────────────────*/

func TestService_CreateThenGet(t *testing.T) {
	svc, _ := newService(newStub(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, contractorUC.Input{Name: "Acme Corp", Description: strPtr("roads")})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", got.Name)
	assert.Equal(t, "roads", *got.Description)
	assert.False(t, got.CreatedAt.IsZero())
	assert.False(t, got.UpdatedAt.IsZero())
	assert.Equal(t, got.CreatedAt, got.UpdatedAt)
}

func TestService_Create_Validation(t *testing.T) {
	svc, _ := newService(newStub(), nil)

	tests := []struct {
		name  string
		in    contractorUC.Input
		field string
	}{
		{"empty name", contractorUC.Input{Name: ""}, "name"},
		{"blank name", contractorUC.Input{Name: "   "}, "name"},
		{"description too long", contractorUC.Input{Name: "A", Description: strPtr(string(make([]byte, 2001)))}, "description"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.in)
			var ve *entity.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
			assert.ErrorIs(t, err, entity.ErrInvalidInput)
		})
	}
}

func TestService_Create_DuplicateNameConflicts(t *testing.T) {
	svc, _ := newService(newStub(), nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, contractorUC.Input{Name: "Acme Corp"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, contractorUC.Input{Name: "Acme Corp"})
	assert.ErrorIs(t, err, entity.ErrConflict)
}

func TestService_Get_NotFound(t *testing.T) {
	svc, _ := newService(newStub(), nil)

	_, err := svc.Get(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, contractorUC.ErrContractorNotFound)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestService_Update_NotFound(t *testing.T) {
	svc, _ := newService(newStub(), nil)

	_, err := svc.Update(context.Background(), uuid.NewString(), contractorUC.Input{Name: "X"})
	assert.ErrorIs(t, err, contractorUC.ErrContractorNotFound)
}

func TestService_Update_AdvancesUpdatedAt(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, _ := newService(newStub(), func() time.Time { return fixed })
	ctx := context.Background()

	created, err := svc.Create(ctx, contractorUC.Input{Name: "Acme Corp"})
	require.NoError(t, err)

	// The clock has not moved, so the update has to step past the previous value.
	updated, err := svc.Update(ctx, created.ID, contractorUC.Input{Name: "Acme Infra", Description: strPtr("new")})
	require.NoError(t, err)
	assert.Equal(t, "Acme Infra", updated.Name)
	assert.Equal(t, "new", *updated.Description)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	again, err := svc.Update(ctx, created.ID, contractorUC.Input{Name: "Acme Infra"})
	require.NoError(t, err)
	assert.True(t, again.UpdatedAt.After(updated.UpdatedAt))
	assert.Nil(t, again.Description)
}

func TestService_Update_UsesClockWhenAhead(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, _ := newService(newStub(), func() time.Time { return now })
	ctx := context.Background()

	created, err := svc.Create(ctx, contractorUC.Input{Name: "Acme Corp"})
	require.NoError(t, err)

	now = now.Add(time.Hour)
	updated, err := svc.Update(ctx, created.ID, contractorUC.Input{Name: "Acme Corp"})
	require.NoError(t, err)
	assert.Equal(t, now, updated.UpdatedAt)
}

func TestService_DeleteTwice(t *testing.T) {
	svc, projects := newService(newStub(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, contractorUC.Input{Name: "Acme Corp"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.Equal(t, []string{created.ID}, projects.detached)

	err = svc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, contractorUC.ErrContractorNotFound)
}

func TestService_List(t *testing.T) {
	svc, _ := newService(newStub(), nil)
	ctx := context.Background()

	for _, name := range []string{"A", "B", "C"} {
		_, err := svc.Create(ctx, contractorUC.Input{Name: name})
		require.NoError(t, err)
	}

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestService_StorageErrorsAreWrapped(t *testing.T) {
	repo := newStub()
	repo.err = errors.New("connection reset")
	svc, _ := newService(repo, nil)
	ctx := context.Background()

	_, err := svc.List(ctx)
	assert.EqualError(t, err, "list contractors: connection reset")

	_, err = svc.Get(ctx, "x")
	assert.EqualError(t, err, "get contractor: connection reset")

	err = svc.Delete(ctx, "x")
	assert.EqualError(t, err, "delete contractor: connection reset")
}
