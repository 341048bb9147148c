package repository

import "context"

// Transactor runs a unit of work inside a single database transaction.
// Repositories called with the context passed to fn take part in that transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
	WithinReadOnlyTx(ctx context.Context, fn func(ctx context.Context) error) error
}
