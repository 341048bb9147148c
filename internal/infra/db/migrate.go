package db

import (
	"context"
	"database/sql"
	"fmt"
)

// schema creates every table and index idempotently, in dependency order.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS contractor (
    id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    name        TEXT NOT NULL UNIQUE,
    description VARCHAR(2000),
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`CREATE TABLE IF NOT EXISTS highway (
    id               UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    highway_number   TEXT NOT NULL UNIQUE,
    name             TEXT,
    description      TEXT,
    status           VARCHAR(20) NOT NULL DEFAULT 'PLANNING',
    state            TEXT,
    geom             JSONB,
    estimated_budget DOUBLE PRECISION,
    actual_cost      DOUBLE PRECISION,
    rework_count     INTEGER NOT NULL DEFAULT 0,
    completion_date  TIMESTAMPTZ,
    length_km        DOUBLE PRECISION,
    created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
    CONSTRAINT chk_highway_status CHECK (status IN ('PLANNING', 'CONSTRUCTION', 'COMPLETED', 'MAINTENANCE'))
)`,
	`CREATE TABLE IF NOT EXISTS project (
    id             UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    project_name   TEXT NOT NULL UNIQUE,
    nh_number      TEXT,
    lanes          TEXT,
    total_length   DOUBLE PRECISION,
    state          TEXT,
    concessionaire TEXT,
    geom           JSONB,
    status         VARCHAR(32),
    loa_date       DATE,
    start_date     DATE,
    contractor_id  UUID REFERENCES contractor(id) ON DELETE SET NULL,
    created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`CREATE TABLE IF NOT EXISTS project_highway (
    project_id UUID NOT NULL REFERENCES project(id),
    highway_id UUID NOT NULL REFERENCES highway(id),
    ordinal    INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (project_id, highway_id)
)`,
	`CREATE TABLE IF NOT EXISTS news_article (
    id           UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    title        TEXT,
    url          TEXT NOT NULL UNIQUE,
    highway_id   UUID NOT NULL REFERENCES highway(id),
    project_id   UUID NOT NULL REFERENCES project(id),
    published_at TIMESTAMPTZ NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_project_contractor_id ON project(contractor_id)`,
	`CREATE INDEX IF NOT EXISTS idx_project_highway_highway_id ON project_highway(highway_id)`,
	`CREATE INDEX IF NOT EXISTS idx_highway_status ON highway(status)`,
	`CREATE INDEX IF NOT EXISTS idx_news_article_project_id ON news_article(project_id, published_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_news_article_highway_id ON news_article(highway_id, published_at DESC)`,
}

// MigrateUp brings the schema up to date. It is safe to run on every start.
func MigrateUp(ctx context.Context, db *sql.DB) error {
	// gen_random_uuid is built in from PostgreSQL 13; older servers need pgcrypto.
	// Errors are ignored when the role may not create extensions.
	_, _ = db.ExecContext(ctx, `CREATE EXTENSION IF NOT EXISTS pgcrypto`)

	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate step %d: %w", i+1, err)
		}
	}
	return nil
}

// MigrateDown drops all tables in reverse order of creation.
// Use with caution: this deletes all data.
func MigrateDown(ctx context.Context, db *sql.DB) error {
	dropStatements := []string{
		`DROP TABLE IF EXISTS news_article`,
		`DROP TABLE IF EXISTS project_highway`,
		`DROP TABLE IF EXISTS project`,
		`DROP TABLE IF EXISTS highway`,
		`DROP TABLE IF EXISTS contractor`,
	}
	for _, stmt := range dropStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate down: %w", err)
		}
	}
	return nil
}
