package postgres

import (
	"context"
	"fmt"
)

// Schema statements, applied in order at startup. Each statement is
// idempotent so repeated boots are safe.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS recipients (
		nik          VARCHAR(16) PRIMARY KEY,
		name         TEXT        NOT NULL,
		farmer_group TEXT        NOT NULL DEFAULT '',
		verified     BOOLEAN     NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS distributors (
		id   UUID PRIMARY KEY,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS quota_grants (
		nik             VARCHAR(16)   NOT NULL REFERENCES recipients(nik),
		fertilizer_type VARCHAR(16)   NOT NULL,
		granted_kg      NUMERIC(12,2) NOT NULL CHECK (granted_kg >= 0),
		committed_kg    NUMERIC(12,2) NOT NULL DEFAULT 0
			CHECK (committed_kg >= 0 AND committed_kg <= granted_kg),
		PRIMARY KEY (nik, fertilizer_type)
	)`,
	`CREATE TABLE IF NOT EXISTS distribution_requests (
		id              BIGSERIAL     PRIMARY KEY,
		nik             VARCHAR(16)   NOT NULL REFERENCES recipients(nik),
		distributor_id  UUID          NOT NULL REFERENCES distributors(id),
		fertilizer_type VARCHAR(16)   NOT NULL,
		amount_kg       NUMERIC(12,2) NOT NULL CHECK (amount_kg > 0),
		status          VARCHAR(16)   NOT NULL DEFAULT 'PENDING',
		submitted_at    TIMESTAMPTZ   NOT NULL,
		decided_at      TIMESTAMPTZ
	)`,
	// The approver surface lists pending requests constantly; both indexes
	// back the request listing filters
	`CREATE INDEX IF NOT EXISTS idx_requests_nik_status
		ON distribution_requests (nik, status)`,
	`CREATE INDEX IF NOT EXISTS idx_requests_status
		ON distribution_requests (status)`,
}

// Migrate applies the schema to the connected database
func Migrate(ctx context.Context, db *DB) error {
	for _, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply migration: %w", err)
		}
	}
	return nil
}
