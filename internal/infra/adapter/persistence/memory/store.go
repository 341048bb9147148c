// Package memory provides in-process implementations of the repository
// interfaces. They enforce the same unique and foreign-key rules as the
// Postgres schema and back the seed dry run and the HTTP handler tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"highwaymetric/internal/domain/entity"
	"highwaymetric/internal/repository"
)

type txKey struct{}

// Store holds every table. The zero value is not usable; call New.
type Store struct {
	mu   sync.Mutex
	data tables
}

type tables struct {
	contractors map[string]entity.Contractor
	highways    map[string]entity.Highway
	projects    map[string]entity.Project
	news        map[string]entity.NewsArticle
}

func New() *Store {
	return &Store{data: tables{
		contractors: map[string]entity.Contractor{},
		highways:    map[string]entity.Highway{},
		projects:    map[string]entity.Project{},
		news:        map[string]entity.NewsArticle{},
	}}
}

func (t tables) clone() tables {
	return tables{
		contractors: cloneMap(t.contractors),
		highways:    cloneMap(t.highways),
		projects:    cloneMap(t.projects),
		news:        cloneMap(t.news),
	}
}

func cloneMap[T any](m map[string]T) map[string]T {
	out := make(map[string]T, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// lock takes the store mutex unless ctx already runs inside a transaction,
// which holds it for the whole unit of work.
func (s *Store) lock(ctx context.Context) func() {
	if ctx.Value(txKey{}) != nil {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// Transactor serializes units of work and restores the previous state when
// one fails.
func (s *Store) Transactor() repository.Transactor { return transactor{s} }

func (s *Store) Contractors() repository.ContractorRepository { return contractorRepo{s} }

func (s *Store) Highways() repository.HighwayRepository { return highwayRepo{s} }

func (s *Store) Projects() repository.ProjectRepository { return projectRepo{s} }

func (s *Store) News() repository.NewsArticleRepository { return newsRepo{s} }

// AddNews inserts an article. The API has no write path for news, so this is
// how fixtures get them. URL must be unique and both parents must exist.
func (s *Store) AddNews(ctx context.Context, a *entity.NewsArticle) error {
	defer s.lock(ctx)()

	if _, ok := s.data.projects[a.ProjectID]; !ok {
		return fmt.Errorf("add news: project %s does not exist", a.ProjectID)
	}
	if _, ok := s.data.highways[a.HighwayID]; !ok {
		return fmt.Errorf("add news: highway %s does not exist", a.HighwayID)
	}
	for _, existing := range s.data.news {
		if existing.URL == a.URL {
			return fmt.Errorf("add news: %w: url %s", entity.ErrConflict, a.URL)
		}
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	s.data.news[a.ID] = *a
	return nil
}

type transactor struct{ s *Store }

func (t transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	before := t.s.data.clone()
	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		t.s.data = before
		return err
	}
	return nil
}

func (t transactor) WithinReadOnlyTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.WithinTx(ctx, fn)
}
