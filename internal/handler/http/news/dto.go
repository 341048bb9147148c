// Package news renders news articles for the project and highway endpoints.
package news

import (
	"time"

	"highwaymetric/internal/domain/entity"
)

type DTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	HighwayID   string    `json:"highwayId"`
	ProjectID   string    `json:"projectId"`
	PublishedAt time.Time `json:"publishedAt"`
}

// FromEntities keeps the input order and never returns nil.
func FromEntities(in []*entity.NewsArticle) []DTO {
	out := make([]DTO, 0, len(in))
	for _, a := range in {
		out = append(out, DTO{
			ID:          a.ID,
			Title:       a.Title,
			URL:         a.URL,
			HighwayID:   a.HighwayID,
			ProjectID:   a.ProjectID,
			PublishedAt: a.PublishedAt,
		})
	}
	return out
}
