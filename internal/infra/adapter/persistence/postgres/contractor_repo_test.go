package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgconn"

	"highwaymetric/internal/domain/entity"
	"highwaymetric/internal/infra/adapter/persistence/postgres"
)

/* ──────────────────────────────── helpers ──────────────────────────────── */

var contractorCols = []string{"id", "name", "description", "created_at", "updated_at"}

func contractorRow(c *entity.Contractor) *sqlmock.Rows {
	var desc any
	if c.Description != nil {
		desc = *c.Description
	}
	return sqlmock.NewRows(contractorCols).AddRow(c.ID, c.Name, desc, c.CreatedAt, c.UpdatedAt)
}

func strPtr(s string) *string { return &s }

/* ──────────────────────────────── 1. Get ──────────────────────────────── */

func TestContractorRepo_Get(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	want := &entity.Contractor{
		ID: "6f1c2a4e-0000-4000-8000-000000000001", Name: "L&T",
		Description: strPtr("EPC contractor"), CreatedAt: now, UpdatedAt: now,
	}

	mock.ExpectQuery(regexp.QuoteMeta(`FROM contractor`)).
		WithArgs(want.ID).
		WillReturnRows(contractorRow(want))

	repo := postgres.NewContractorRepo(db)
	got, err := repo.Get(context.Background(), want.ID)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestContractorRepo_Get_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM contractor`)).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(contractorCols))

	got, err := postgres.NewContractorRepo(db).Get(context.Background(), "missing")
	if err != nil || got != nil {
		t.Fatalf("Get got=%v err=%v, want nil, nil", got, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

/* ──────────────────────────────── 2. GetByName ──────────────────────────────── */

func TestContractorRepo_GetByName(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE name = $1`)).
		WithArgs("Acme").
		WillReturnRows(contractorRow(&entity.Contractor{ID: "c1", Name: "Acme", CreatedAt: now, UpdatedAt: now}))

	got, err := postgres.NewContractorRepo(db).GetByName(context.Background(), "Acme")
	if err != nil {
		t.Fatalf("GetByName err=%v", err)
	}
	if got.ID != "c1" || got.Description != nil {
		t.Fatalf("unexpected contractor %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

/* ──────────────────────────────── 3. List ──────────────────────────────── */

func TestContractorRepo_List(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now().UTC()
	mock.ExpectQuery(`FROM contractor`).
		WillReturnRows(sqlmock.NewRows(contractorCols).
			AddRow("c1", "Acme", nil, now, now).
			AddRow("c2", "Bharat", "roads", now, now))

	got, err := postgres.NewContractorRepo(db).List(context.Background())
	if err != nil || len(got) != 2 {
		t.Fatalf("List err=%v len=%d", err, len(got))
	}
	if got[1].Description == nil || *got[1].Description != "roads" {
		t.Fatalf("description not scanned: %+v", got[1])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

/* ──────────────────────────────── 4. Create ──────────────────────────────── */

func TestContractorRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO contractor`)).
		WithArgs("Acme", "builder", now, now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("new-id"))

	c := &entity.Contractor{Name: "Acme", Description: strPtr("builder"), CreatedAt: now, UpdatedAt: now}
	if err := postgres.NewContractorRepo(db).Create(context.Background(), c); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if c.ID != "new-id" {
		t.Fatalf("ID not assigned, got %q", c.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestContractorRepo_Create_UniqueViolation(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO contractor`)).
		WillReturnError(&pgconn.PgError{Code: "23505", Detail: "Key (name)=(Acme) already exists."})

	err := postgres.NewContractorRepo(db).Create(context.Background(), &entity.Contractor{Name: "Acme"})
	if !errors.Is(err, entity.ErrConflict) {
		t.Fatalf("want ErrConflict, got %v", err)
	}
}

/* ──────────────────────────────── 5. Update ──────────────────────────────── */

func TestContractorRepo_Update(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now().UTC()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE contractor SET`)).
		WithArgs("Acme", nil, now, "c1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := postgres.NewContractorRepo(db).Update(context.Background(), &entity.Contractor{ID: "c1", Name: "Acme", UpdatedAt: now})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestContractorRepo_Update_NoRows(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE contractor SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := postgres.NewContractorRepo(db).Update(context.Background(), &entity.Contractor{ID: "c1", Name: "Acme"})
	if !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

/* ──────────────────────────────── 6. Delete ──────────────────────────────── */

func TestContractorRepo_Delete(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM contractor`)).
		WithArgs("c1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM contractor`)).
		WithArgs("c1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := postgres.NewContractorRepo(db)
	if ok, err := repo.Delete(context.Background(), "c1"); err != nil || !ok {
		t.Fatalf("first Delete ok=%v err=%v", ok, err)
	}
	if ok, err := repo.Delete(context.Background(), "c1"); err != nil || ok {
		t.Fatalf("second Delete ok=%v err=%v", ok, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
