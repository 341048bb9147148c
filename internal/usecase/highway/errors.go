// Package highway provides read-only use cases over highways: listing with an
// optional status filter, lookup, news by highway and the portfolio summary.
// Highways are written only as a side effect of project creation.
package highway

import (
	"fmt"

	"highwaymetric/internal/domain/entity"
)

// ErrHighwayNotFound indicates that no highway has the requested id.
var ErrHighwayNotFound = fmt.Errorf("highway %w", entity.ErrNotFound)
