// Package entity defines the core domain entities of the highway metrics backend:
// contractors, highways, the projects awarded to them and the news articles linked
// to both. Relationships are expressed as id fields; nothing here holds a pointer
// to another entity.
package entity

import "time"

// Contractor is a company that is awarded highway projects.
// Name is unique across all contractors.
type Contractor struct {
	ID          string
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
