package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"highwaymetric/internal/domain/entity"
	"highwaymetric/internal/infra/adapter/persistence/postgres"
	"highwaymetric/internal/resilience/circuitbreaker"
)

func TestTransactor_WithinTx_Commits(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM contractor`)).
		WithArgs("c1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx := postgres.NewTransactor(db, nil)
	repo := postgres.NewContractorRepo(db)

	err := tx.WithinTx(context.Background(), func(ctx context.Context) error {
		_, err := repo.Delete(ctx, "c1")
		return err
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_WithinTx_RollsBackOnError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectRollback()

	want := errors.New("boom")
	err := postgres.NewTransactor(db, nil).WithinTx(context.Background(), func(context.Context) error {
		return want
	})
	assert.ErrorIs(t, err, want)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_NestedCallJoinsOuterTx(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectCommit()

	tx := postgres.NewTransactor(db, nil)
	err := tx.WithinTx(context.Background(), func(ctx context.Context) error {
		return tx.WithinReadOnlyTx(ctx, func(context.Context) error { return nil })
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_BeginFailureTripsBreaker(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	cb := circuitbreaker.New(circuitbreaker.Config{
		Name:             "test-db",
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          time.Minute,
		FailureThreshold: 1.0,
		MinRequests:      2,
		IsFailure:        circuitbreaker.IsStorageFailure,
	})
	tx := postgres.NewTransactor(db, cb)

	for i := 0; i < 2; i++ {
		mock.ExpectBegin().WillReturnError(errors.New("connection refused"))
		err := tx.WithinTx(context.Background(), func(context.Context) error { return nil })
		require.Error(t, err)
	}

	err := tx.WithinTx(context.Background(), func(context.Context) error { return nil })
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_DomainErrorsKeepBreakerClosed(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	cb := circuitbreaker.New(circuitbreaker.Config{
		Name: "test-db", MaxRequests: 1, Interval: time.Minute, Timeout: time.Minute,
		FailureThreshold: 1.0, MinRequests: 2, IsFailure: circuitbreaker.IsStorageFailure,
	})
	tx := postgres.NewTransactor(db, cb)

	for i := 0; i < 3; i++ {
		mock.ExpectBegin()
		mock.ExpectRollback()
		err := tx.WithinTx(context.Background(), func(context.Context) error { return entity.ErrNotFound })
		assert.ErrorIs(t, err, entity.ErrNotFound)
	}
	assert.False(t, cb.IsOpen())
	assert.NoError(t, mock.ExpectationsWereMet())
}
