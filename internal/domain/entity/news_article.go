package entity

import "time"

// NewsArticle is a press article about a highway project.
// Both HighwayID and ProjectID are required.
type NewsArticle struct {
	ID          string
	Title       string
	URL         string
	HighwayID   string
	ProjectID   string
	PublishedAt time.Time
}
