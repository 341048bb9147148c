// Package project provides use cases for highway projects. Adding a project
// resolves its contractor and highways by natural key, creating minimal shell
// rows for any that do not exist yet, and persists everything in one transaction.
package project

import (
	"errors"
	"fmt"

	"highwaymetric/internal/domain/entity"
)

// Sentinel errors for project use case operations.
var (
	// ErrProjectNotFound indicates that no project has the requested id.
	ErrProjectNotFound = fmt.Errorf("project %w", entity.ErrNotFound)

	// ErrDuplicateProject indicates that a project with the same name already exists.
	ErrDuplicateProject = errors.New("project with this name already exists")
)

// DuplicateProjectError names the project that already holds the requested name.
type DuplicateProjectError struct {
	Name       string
	ExistingID string
}

func (e *DuplicateProjectError) Error() string {
	return fmt.Sprintf("project %q already exists with id: %s", e.Name, e.ExistingID)
}

// Is matches ErrDuplicateProject and entity.ErrConflict.
func (e *DuplicateProjectError) Is(target error) bool {
	return target == ErrDuplicateProject || target == entity.ErrConflict
}

// DateFormatError reports a project date that is not a valid dd/MM/yyyy date.
type DateFormatError struct {
	Project string
	Field   string
	Value   string
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("invalid %s %q for project %q: expected format dd/MM/yyyy", e.Field, e.Value, e.Project)
}

// Is matches entity.ErrInvalidInput.
func (e *DateFormatError) Is(target error) bool {
	return target == entity.ErrInvalidInput
}
