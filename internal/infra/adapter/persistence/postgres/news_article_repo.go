package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"highwaymetric/internal/domain/entity"
	"highwaymetric/internal/repository"
)

type NewsArticleRepo struct{ db *sql.DB }

func NewNewsArticleRepo(db *sql.DB) repository.NewsArticleRepository {
	return &NewsArticleRepo{db: db}
}

func (repo *NewsArticleRepo) ListByProject(ctx context.Context, projectID string) ([]*entity.NewsArticle, error) {
	const query = `
SELECT id, title, url, highway_id, project_id, published_at
FROM news_article
WHERE project_id = $1
ORDER BY published_at DESC`
	articles, err := repo.list(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("ListByProject: %w", err)
	}
	return articles, nil
}

func (repo *NewsArticleRepo) ListByHighway(ctx context.Context, highwayID string) ([]*entity.NewsArticle, error) {
	const query = `
SELECT id, title, url, highway_id, project_id, published_at
FROM news_article
WHERE highway_id = $1
ORDER BY published_at DESC`
	articles, err := repo.list(ctx, query, highwayID)
	if err != nil {
		return nil, fmt.Errorf("ListByHighway: %w", err)
	}
	return articles, nil
}

func (repo *NewsArticleRepo) list(ctx context.Context, query, parentID string) ([]*entity.NewsArticle, error) {
	rows, err := conn(ctx, repo.db).QueryContext(ctx, query, parentID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.NewsArticle, 0, 16)
	for rows.Next() {
		var a entity.NewsArticle
		var title sql.NullString
		if err := rows.Scan(&a.ID, &title, &a.URL, &a.HighwayID, &a.ProjectID, &a.PublishedAt); err != nil {
			return nil, err
		}
		a.Title = title.String
		articles = append(articles, &a)
	}
	return articles, rows.Err()
}

func (repo *NewsArticleRepo) DeleteByProject(ctx context.Context, projectID string) (int64, error) {
	const query = `DELETE FROM news_article WHERE project_id = $1`
	res, err := conn(ctx, repo.db).ExecContext(ctx, query, projectID)
	if err != nil {
		return 0, fmt.Errorf("DeleteByProject: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("DeleteByProject: %w", err)
	}
	return n, nil
}
