package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"highwaymetric/internal/domain/entity"
)

const uniqueViolation = "23505"

// translate wraps err with op and maps unique-constraint violations to
// entity.ErrConflict so callers can tell them apart from storage failures.
func translate(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%s: %w: %s", op, entity.ErrConflict, pgErr.Detail)
	}
	return fmt.Errorf("%s: %w", op, err)
}
