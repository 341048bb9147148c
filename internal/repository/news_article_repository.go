package repository

import (
	"context"

	"highwaymetric/internal/domain/entity"
)

// NewsArticleRepository reads news articles by their owning highway or project.
type NewsArticleRepository interface {
	ListByProject(ctx context.Context, projectID string) ([]*entity.NewsArticle, error)
	ListByHighway(ctx context.Context, highwayID string) ([]*entity.NewsArticle, error)
	DeleteByProject(ctx context.Context, projectID string) (int64, error)
}
