package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"highwaymetric/internal/domain/entity"
	"highwaymetric/internal/repository"
)

type ContractorRepo struct{ db *sql.DB }

func NewContractorRepo(db *sql.DB) repository.ContractorRepository {
	return &ContractorRepo{db: db}
}

const contractorColumns = `id, name, description, created_at, updated_at`

func scanContractor(s rowScanner) (*entity.Contractor, error) {
	var c entity.Contractor
	var description sql.NullString
	if err := s.Scan(&c.ID, &c.Name, &description, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	if description.Valid {
		c.Description = &description.String
	}
	return &c, nil
}

func (repo *ContractorRepo) Get(ctx context.Context, id string) (*entity.Contractor, error) {
	const query = `
SELECT ` + contractorColumns + `
FROM contractor
WHERE id = $1
LIMIT 1`
	c, err := scanContractor(conn(ctx, repo.db).QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return c, nil
}

func (repo *ContractorRepo) GetByName(ctx context.Context, name string) (*entity.Contractor, error) {
	const query = `
SELECT ` + contractorColumns + `
FROM contractor
WHERE name = $1
LIMIT 1`
	c, err := scanContractor(conn(ctx, repo.db).QueryRowContext(ctx, query, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByName: %w", err)
	}
	return c, nil
}

func (repo *ContractorRepo) List(ctx context.Context) ([]*entity.Contractor, error) {
	const query = `
SELECT ` + contractorColumns + `
FROM contractor
ORDER BY name ASC`
	rows, err := conn(ctx, repo.db).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	contractors := make([]*entity.Contractor, 0, 32)
	for rows.Next() {
		c, err := scanContractor(rows)
		if err != nil {
			return nil, fmt.Errorf("List: %w", err)
		}
		contractors = append(contractors, c)
	}
	return contractors, rows.Err()
}

func (repo *ContractorRepo) Create(ctx context.Context, c *entity.Contractor) error {
	const query = `
INSERT INTO contractor (name, description, created_at, updated_at)
VALUES ($1, $2, $3, $4)
RETURNING id`
	err := conn(ctx, repo.db).QueryRowContext(ctx, query,
		c.Name, c.Description, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		return translate("Create", err)
	}
	return nil
}

func (repo *ContractorRepo) Update(ctx context.Context, c *entity.Contractor) error {
	const query = `
UPDATE contractor SET
       name        = $1,
       description = $2,
       updated_at  = $3
WHERE id = $4`
	res, err := conn(ctx, repo.db).ExecContext(ctx, query,
		c.Name, c.Description, c.UpdatedAt, c.ID,
	)
	if err != nil {
		return translate("Update", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: %w", entity.ErrNotFound)
	}
	return nil
}

func (repo *ContractorRepo) Delete(ctx context.Context, id string) (bool, error) {
	const query = `DELETE FROM contractor WHERE id = $1`
	res, err := conn(ctx, repo.db).ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("Delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("Delete: %w", err)
	}
	return n > 0, nil
}
