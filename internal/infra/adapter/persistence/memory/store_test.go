package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"highwaymetric/internal/domain/entity"
	"highwaymetric/internal/infra/adapter/persistence/memory"
	"highwaymetric/internal/repository"
)

func ptr[T any](v T) *T { return &v }

func TestContractors_UniqueName(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	a := &entity.Contractor{Name: "Acme Corp"}
	require.NoError(t, s.Contractors().Create(ctx, a))
	assert.NotEmpty(t, a.ID)

	err := s.Contractors().Create(ctx, &entity.Contractor{Name: "Acme Corp"})
	assert.ErrorIs(t, err, entity.ErrConflict)

	b := &entity.Contractor{Name: "Beta Infra"}
	require.NoError(t, s.Contractors().Create(ctx, b))
	b.Name = "Acme Corp"
	assert.ErrorIs(t, s.Contractors().Update(ctx, b), entity.ErrConflict)
}

func TestContractors_UpdateMissing(t *testing.T) {
	s := memory.New()
	err := s.Contractors().Update(context.Background(), &entity.Contractor{ID: "nope", Name: "x"})
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestContractors_DeleteNullsProjects(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	c := &entity.Contractor{Name: "Acme Corp"}
	require.NoError(t, s.Contractors().Create(ctx, c))
	p := &entity.Project{ProjectName: "P1", ContractorID: &c.ID}
	require.NoError(t, s.Projects().Create(ctx, p))

	ok, err := s.Contractors().Delete(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := s.Projects().Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Project.ContractorID)
	assert.Nil(t, got.ContractorName)

	ok, err = s.Contractors().Delete(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHighways_ListAndSummary(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	require.NoError(t, s.Highways().Create(ctx, &entity.Highway{HighwayNumber: "NH48", Status: entity.HighwayConstruction, EstimatedBudget: ptr(100.0), ReworkCount: 2}))
	require.NoError(t, s.Highways().Create(ctx, &entity.Highway{HighwayNumber: "NH44", EstimatedBudget: ptr(50.0), ActualCost: ptr(20.0)}))
	assert.ErrorIs(t, s.Highways().Create(ctx, &entity.Highway{HighwayNumber: "NH44"}), entity.ErrConflict)

	all, err := s.Highways().List(ctx, repository.HighwayFilters{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "NH44", all[0].HighwayNumber)
	assert.Equal(t, entity.HighwayPlanning, all[0].Status)

	st := entity.HighwayConstruction
	filtered, err := s.Highways().List(ctx, repository.HighwayFilters{Status: &st})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "NH48", filtered[0].HighwayNumber)

	sum, err := s.Highways().Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.HighwaySummary{TotalHighways: 2, TotalEstimatedBudget: 150, TotalActualCost: 20, TotalReworks: 2}, sum)
}

func TestProjects_ForeignKeys(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	err := s.Projects().Create(ctx, &entity.Project{ProjectName: "P", HighwayIDs: []string{"missing"}})
	assert.Error(t, err)

	err = s.Projects().Create(ctx, &entity.Project{ProjectName: "P", ContractorID: ptr("missing")})
	assert.Error(t, err)
}

func TestProjects_DeleteBlockedByNews(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	h := &entity.Highway{HighwayNumber: "NH44"}
	require.NoError(t, s.Highways().Create(ctx, h))
	p := &entity.Project{ProjectName: "P", HighwayIDs: []string{h.ID}}
	require.NoError(t, s.Projects().Create(ctx, p))
	require.NoError(t, s.AddNews(ctx, &entity.NewsArticle{URL: "https://a", ProjectID: p.ID, HighwayID: h.ID, PublishedAt: time.Now()}))

	_, err := s.Projects().Delete(ctx, p.ID)
	assert.Error(t, err)

	n, err := s.News().DeleteByProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	ok, err := s.Projects().Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAddNews_Validation(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	h := &entity.Highway{HighwayNumber: "NH44"}
	require.NoError(t, s.Highways().Create(ctx, h))
	p := &entity.Project{ProjectName: "P", HighwayIDs: []string{h.ID}}
	require.NoError(t, s.Projects().Create(ctx, p))

	assert.Error(t, s.AddNews(ctx, &entity.NewsArticle{URL: "https://a", ProjectID: "x", HighwayID: h.ID}))
	assert.Error(t, s.AddNews(ctx, &entity.NewsArticle{URL: "https://a", ProjectID: p.ID, HighwayID: "x"}))
	require.NoError(t, s.AddNews(ctx, &entity.NewsArticle{URL: "https://a", ProjectID: p.ID, HighwayID: h.ID}))
	assert.ErrorIs(t, s.AddNews(ctx, &entity.NewsArticle{URL: "https://a", ProjectID: p.ID, HighwayID: h.ID}), entity.ErrConflict)
}

func TestNews_NewestFirst(t *testing.T) {
	s := memory.New()
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	h := &entity.Highway{HighwayNumber: "NH44"}
	require.NoError(t, s.Highways().Create(ctx, h))
	p := &entity.Project{ProjectName: "P", HighwayIDs: []string{h.ID}}
	require.NoError(t, s.Projects().Create(ctx, p))
	require.NoError(t, s.AddNews(ctx, &entity.NewsArticle{Title: "old", URL: "https://a", ProjectID: p.ID, HighwayID: h.ID, PublishedAt: now}))
	require.NoError(t, s.AddNews(ctx, &entity.NewsArticle{Title: "new", URL: "https://b", ProjectID: p.ID, HighwayID: h.ID, PublishedAt: now.Add(time.Hour)}))

	byHighway, err := s.News().ListByHighway(ctx, h.ID)
	require.NoError(t, err)
	require.Len(t, byHighway, 2)
	assert.Equal(t, "new", byHighway[0].Title)

	none, err := s.News().ListByProject(ctx, "other")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTransactor_RollsBackOnError(t *testing.T) {
	s := memory.New()
	tx := s.Transactor()
	ctx := context.Background()
	boom := errors.New("boom")

	err := tx.WithinTx(ctx, func(ctx context.Context) error {
		require.NoError(t, s.Contractors().Create(ctx, &entity.Contractor{Name: "Acme Corp"}))
		// nested units join the outer one
		return tx.WithinTx(ctx, func(ctx context.Context) error {
			require.NoError(t, s.Highways().Create(ctx, &entity.Highway{HighwayNumber: "NH44"}))
			return boom
		})
	})
	assert.ErrorIs(t, err, boom)

	cs, err := s.Contractors().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, cs)
	hs, err := s.Highways().List(ctx, repository.HighwayFilters{})
	require.NoError(t, err)
	assert.Empty(t, hs)
}

func TestTransactor_Commits(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	err := s.Transactor().WithinTx(ctx, func(ctx context.Context) error {
		return s.Contractors().Create(ctx, &entity.Contractor{Name: "Acme Corp"})
	})
	require.NoError(t, err)

	c, err := s.Contractors().GetByName(ctx, "Acme Corp")
	require.NoError(t, err)
	require.NotNil(t, c)
}
