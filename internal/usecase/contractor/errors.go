// Package contractor provides use cases for managing contractors: create, list,
// get, update and delete. Deleting a contractor detaches the projects it owns.
package contractor

import (
	"fmt"

	"highwaymetric/internal/domain/entity"
)

// ErrContractorNotFound indicates that no contractor has the requested id.
// It matches entity.ErrNotFound so it never counts as a storage failure.
var ErrContractorNotFound = fmt.Errorf("contractor %w", entity.ErrNotFound)
