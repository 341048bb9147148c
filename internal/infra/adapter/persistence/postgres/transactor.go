package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"highwaymetric/internal/observability/metrics"
	"highwaymetric/internal/repository"
	"highwaymetric/internal/resilience/circuitbreaker"
)

// Transactor runs units of work in database transactions guarded by a circuit breaker.
type Transactor struct {
	db *sql.DB
	cb *circuitbreaker.CircuitBreaker
}

func NewTransactor(db *sql.DB, cb *circuitbreaker.CircuitBreaker) repository.Transactor {
	if cb == nil {
		cb = circuitbreaker.NewDBCircuitBreaker()
	}
	return &Transactor{db: db, cb: cb}
}

func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.run(ctx, "rw", nil, fn)
}

func (t *Transactor) WithinReadOnlyTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.run(ctx, "ro", &sql.TxOptions{ReadOnly: true}, fn)
}

func (t *Transactor) run(ctx context.Context, mode string, opts *sql.TxOptions, fn func(ctx context.Context) error) (err error) {
	// Nested calls join the outer transaction.
	if _, ok := txFrom(ctx); ok {
		return fn(ctx)
	}

	start := time.Now()
	defer func() { metrics.RecordTransaction(mode, time.Since(start), err) }()

	return t.cb.Run(func() error {
		tx, err := t.db.BeginTx(ctx, opts)
		if err != nil {
			return fmt.Errorf("begin tx: %w", err)
		}

		if err := fn(withTx(ctx, tx)); err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				slog.Warn("rollback failed",
					slog.Any("error", rbErr),
					slog.Any("cause", err))
			}
			return err
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit tx: %w", err)
		}
		return nil
	})
}
