package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"highwaymetric/internal/domain/entity"
	"highwaymetric/internal/repository"
)

type ProjectRepo struct{ db *sql.DB }

func NewProjectRepo(db *sql.DB) repository.ProjectRepository {
	return &ProjectRepo{db: db}
}

const projectColumns = `p.id, p.project_name, p.nh_number, p.lanes, p.total_length, p.state,
       p.concessionaire, p.geom, p.status, p.loa_date, p.start_date, p.contractor_id,
       p.created_at, p.updated_at`

// scanProject reads projectColumns followed by the joined contractor name.
func scanProject(s rowScanner) (repository.ProjectWithContractor, error) {
	var (
		p                                    entity.Project
		nh, lanes, state, concessionaire     sql.NullString
		status, contractorID, contractorName sql.NullString
		totalLength                          sql.NullFloat64
		geom                                 []byte
		loaDate, startDate                   sql.NullTime
	)
	if err := s.Scan(
		&p.ID, &p.ProjectName, &nh, &lanes, &totalLength, &state,
		&concessionaire, &geom, &status, &loaDate, &startDate, &contractorID,
		&p.CreatedAt, &p.UpdatedAt, &contractorName,
	); err != nil {
		return repository.ProjectWithContractor{}, err
	}
	p.NHNumber = stringPtr(nh)
	p.Lanes = stringPtr(lanes)
	p.TotalLength = floatPtr(totalLength)
	p.State = stringPtr(state)
	p.Concessionaire = stringPtr(concessionaire)
	p.Geom = rawJSON(geom)
	if status.Valid {
		st := entity.ProjectStatus(status.String)
		p.Status = &st
	}
	p.LOADate = timePtr(loaDate)
	p.StartDate = timePtr(startDate)
	p.ContractorID = stringPtr(contractorID)
	return repository.ProjectWithContractor{
		Project:        &p,
		ContractorName: stringPtr(contractorName),
	}, nil
}

func (repo *ProjectRepo) Get(ctx context.Context, id string) (*repository.ProjectWithContractor, error) {
	const query = `
SELECT ` + projectColumns + `, c.name
FROM project p
LEFT JOIN contractor c ON c.id = p.contractor_id
WHERE p.id = $1
LIMIT 1`
	db := conn(ctx, repo.db)
	pc, err := scanProject(db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}

	const linkQuery = `
SELECT highway_id
FROM project_highway
WHERE project_id = $1
ORDER BY ordinal ASC`
	rows, err := db.QueryContext(ctx, linkQuery, id)
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var highwayID string
		if err := rows.Scan(&highwayID); err != nil {
			return nil, fmt.Errorf("Get: %w", err)
		}
		pc.Project.HighwayIDs = append(pc.Project.HighwayIDs, highwayID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &pc, nil
}

func (repo *ProjectRepo) GetByName(ctx context.Context, name string) (*entity.Project, error) {
	const query = `
SELECT ` + projectColumns + `, NULL
FROM project p
WHERE p.project_name = $1
LIMIT 1`
	pc, err := scanProject(conn(ctx, repo.db).QueryRowContext(ctx, query, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByName: %w", err)
	}
	return pc.Project, nil
}

func (repo *ProjectRepo) List(ctx context.Context) ([]repository.ProjectWithContractor, error) {
	const query = `
SELECT ` + projectColumns + `, c.name
FROM project p
LEFT JOIN contractor c ON c.id = p.contractor_id
ORDER BY p.project_name ASC`
	db := conn(ctx, repo.db)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	projects := make([]repository.ProjectWithContractor, 0, 64)
	byID := make(map[string]*entity.Project, 64)
	for rows.Next() {
		pc, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("List: %w", err)
		}
		projects = append(projects, pc)
		byID[pc.Project.ID] = pc.Project
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	if len(projects) == 0 {
		return projects, nil
	}

	const linkQuery = `
SELECT project_id, highway_id
FROM project_highway
ORDER BY project_id, ordinal ASC`
	links, err := db.QueryContext(ctx, linkQuery)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = links.Close() }()

	for links.Next() {
		var projectID, highwayID string
		if err := links.Scan(&projectID, &highwayID); err != nil {
			return nil, fmt.Errorf("List: %w", err)
		}
		if p, ok := byID[projectID]; ok {
			p.HighwayIDs = append(p.HighwayIDs, highwayID)
		}
	}
	if err := links.Err(); err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return projects, nil
}

func (repo *ProjectRepo) Create(ctx context.Context, p *entity.Project) error {
	const query = `
INSERT INTO project (
       project_name, nh_number, lanes, total_length, state, concessionaire, geom,
       status, loa_date, start_date, contractor_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING id`
	var status any
	if p.Status != nil {
		status = string(*p.Status)
	}

	db := conn(ctx, repo.db)
	err := db.QueryRowContext(ctx, query,
		p.ProjectName, p.NHNumber, p.Lanes, p.TotalLength, p.State, p.Concessionaire, jsonArg(p.Geom),
		status, p.LOADate, p.StartDate, p.ContractorID, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return translate("Create", err)
	}

	const linkQuery = `
INSERT INTO project_highway (project_id, highway_id, ordinal)
VALUES ($1, $2, $3)`
	for i, highwayID := range p.HighwayIDs {
		if _, err := db.ExecContext(ctx, linkQuery, p.ID, highwayID, i); err != nil {
			return translate("Create", err)
		}
	}
	return nil
}

func (repo *ProjectRepo) Delete(ctx context.Context, id string) (bool, error) {
	db := conn(ctx, repo.db)
	if _, err := db.ExecContext(ctx, `DELETE FROM project_highway WHERE project_id = $1`, id); err != nil {
		return false, fmt.Errorf("Delete: %w", err)
	}
	res, err := db.ExecContext(ctx, `DELETE FROM project WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("Delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("Delete: %w", err)
	}
	return n > 0, nil
}

func (repo *ProjectRepo) DetachContractor(ctx context.Context, contractorID string, at time.Time) (int64, error) {
	const query = `
UPDATE project SET
       contractor_id = NULL,
       updated_at    = $1
WHERE contractor_id = $2`
	res, err := conn(ctx, repo.db).ExecContext(ctx, query, at, contractorID)
	if err != nil {
		return 0, fmt.Errorf("DetachContractor: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("DetachContractor: %w", err)
	}
	return n, nil
}
