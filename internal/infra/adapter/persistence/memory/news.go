package memory

import (
	"context"
	"sort"

	"highwaymetric/internal/domain/entity"
)

type newsRepo struct{ s *Store }

func (r newsRepo) list(match func(entity.NewsArticle) bool) []*entity.NewsArticle {
	out := make([]*entity.NewsArticle, 0)
	for _, a := range r.s.data.news {
		if match(a) {
			out = append(out, &a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PublishedAt.After(out[j].PublishedAt) })
	return out
}

func (r newsRepo) ListByProject(ctx context.Context, projectID string) ([]*entity.NewsArticle, error) {
	defer r.s.lock(ctx)()
	return r.list(func(a entity.NewsArticle) bool { return a.ProjectID == projectID }), nil
}

func (r newsRepo) ListByHighway(ctx context.Context, highwayID string) ([]*entity.NewsArticle, error) {
	defer r.s.lock(ctx)()
	return r.list(func(a entity.NewsArticle) bool { return a.HighwayID == highwayID }), nil
}

func (r newsRepo) DeleteByProject(ctx context.Context, projectID string) (int64, error) {
	defer r.s.lock(ctx)()
	var n int64
	for id, a := range r.s.data.news {
		if a.ProjectID == projectID {
			delete(r.s.data.news, id)
			n++
		}
	}
	return n, nil
}
