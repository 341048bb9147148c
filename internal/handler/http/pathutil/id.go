// Package pathutil holds helpers for URL path handling: id parsing and route
// normalization for metric labels.
package pathutil

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidID is returned when the ID in the URL path is invalid.
var ErrInvalidID = errors.New("invalid id")

// ParseID validates a path segment as a UUID and returns its canonical
// lower-case form.
//
// Example:
//
//	id, err := ParseID(r.PathValue("id"))
func ParseID(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidID
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", ErrInvalidID
	}
	return id.String(), nil
}
