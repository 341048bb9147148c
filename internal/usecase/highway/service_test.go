package highway_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"highwaymetric/internal/domain/entity"
	"highwaymetric/internal/repository"
	highwayUC "highwaymetric/internal/usecase/highway"
)

type stubRepo struct {
	data    []*entity.Highway
	filters []repository.HighwayFilters
	summary entity.HighwaySummary
	err     error
}

func (s *stubRepo) Get(_ context.Context, id string) (*entity.Highway, error) {
	for _, h := range s.data {
		if h.ID == id {
			return h, s.err
		}
	}
	return nil, s.err
}

func (s *stubRepo) GetByNumber(_ context.Context, number string) (*entity.Highway, error) {
	for _, h := range s.data {
		if h.HighwayNumber == number {
			return h, s.err
		}
	}
	return nil, s.err
}

func (s *stubRepo) List(_ context.Context, f repository.HighwayFilters) ([]*entity.Highway, error) {
	s.filters = append(s.filters, f)
	var out []*entity.Highway
	for _, h := range s.data {
		if f.Status == nil || h.Status == *f.Status {
			out = append(out, h)
		}
	}
	return out, s.err
}

func (s *stubRepo) Create(context.Context, *entity.Highway) error { return s.err }

func (s *stubRepo) Summary(context.Context) (entity.HighwaySummary, error) { return s.summary, s.err }

type stubNews struct{ byHighway map[string][]*entity.NewsArticle }

func (n *stubNews) ListByProject(context.Context, string) ([]*entity.NewsArticle, error) {
	return nil, nil
}

func (n *stubNews) ListByHighway(_ context.Context, id string) ([]*entity.NewsArticle, error) {
	return n.byHighway[id], nil
}

func (n *stubNews) DeleteByProject(context.Context, string) (int64, error) { return 0, nil }

type stubTx struct{ readOnly int }

func (t *stubTx) WithinTx(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) }

func (t *stubTx) WithinReadOnlyTx(ctx context.Context, fn func(context.Context) error) error {
	t.readOnly++
	return fn(ctx)
}

func fixture() (*highwayUC.Service, *stubRepo, *stubTx) {
	repo := &stubRepo{data: []*entity.Highway{
		{ID: "h1", HighwayNumber: "NH44", Status: entity.HighwayPlanning},
		{ID: "h2", HighwayNumber: "NH48", Status: entity.HighwayConstruction},
		{ID: "h3", HighwayNumber: "NH65", Status: entity.HighwayConstruction},
	}}
	news := &stubNews{byHighway: map[string][]*entity.NewsArticle{
		"h1": {{ID: "n1", Title: "Toll plaza opens", HighwayID: "h1", ProjectID: "p1", PublishedAt: time.Now()}},
	}}
	tx := &stubTx{}
	return &highwayUC.Service{Repo: repo, News: news, Tx: tx}, repo, tx
}

func TestService_List(t *testing.T) {
	tests := []struct {
		name   string
		status string
		want   []string
	}{
		{"no filter", "", []string{"NH44", "NH48", "NH65"}},
		{"construction", "CONSTRUCTION", []string{"NH48", "NH65"}},
		{"lower case", "planning", []string{"NH44"}},
		{"no match", "MAINTENANCE", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, tx := fixture()

			got, err := svc.List(context.Background(), tt.status)
			require.NoError(t, err)

			var numbers []string
			for _, h := range got {
				numbers = append(numbers, h.HighwayNumber)
			}
			assert.Equal(t, tt.want, numbers)
			assert.Equal(t, 1, tx.readOnly)
		})
	}
}

func TestService_List_InvalidStatus(t *testing.T) {
	svc, repo, _ := fixture()

	_, err := svc.List(context.Background(), "PAVED")
	assert.ErrorIs(t, err, entity.ErrInvalidInput)
	assert.Empty(t, repo.filters)
}

func TestService_Get(t *testing.T) {
	svc, _, _ := fixture()

	h, err := svc.Get(context.Background(), "h2")
	require.NoError(t, err)
	assert.Equal(t, "NH48", h.HighwayNumber)

	_, err = svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, highwayUC.ErrHighwayNotFound)
}

func TestService_ListNews(t *testing.T) {
	svc, _, _ := fixture()

	got, err := svc.ListNews(context.Background(), "h1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Toll plaza opens", got[0].Title)

	got, err = svc.ListNews(context.Background(), "h2")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = svc.ListNews(context.Background(), "nope")
	assert.ErrorIs(t, err, highwayUC.ErrHighwayNotFound)
}

func TestService_Summary(t *testing.T) {
	svc, repo, _ := fixture()
	repo.summary = entity.HighwaySummary{TotalHighways: 3, TotalEstimatedBudget: 1500, TotalActualCost: 900.5, TotalReworks: 2}

	got, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, repo.summary, got)

	repo.err = errors.New("timeout")
	_, err = svc.Summary(context.Background())
	assert.EqualError(t, err, "highway summary: timeout")
}
