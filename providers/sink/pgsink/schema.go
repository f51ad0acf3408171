package pgsink

import (
	"context"
	"fmt"
)

// createTableSQL keeps the raw text of every artifact; document is only set
// for JSON kinds.
const createTableSQL = `CREATE TABLE IF NOT EXISTS %s (
    id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    run_id     TEXT NOT NULL,
    kind       TEXT NOT NULL,
    content    TEXT NOT NULL DEFAULT '',
    document   JSONB,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

const createRunIndexSQL = `CREATE INDEX IF NOT EXISTS %s
    ON %s (run_id, kind)`

// EnsureSchema creates the artifacts table and its run index if missing.
func (s *Sink) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, fmt.Sprintf(createTableSQL, s.tableName)); err != nil {
		return fmt.Errorf("pgsink: create table: %w", err)
	}

	indexName := pgxIdentifier("idx_" + s.rawName + "_run_kind")
	if _, err := s.db.Exec(ctx, fmt.Sprintf(createRunIndexSQL, indexName, s.tableName)); err != nil {
		return fmt.Errorf("pgsink: create run index: %w", err)
	}

	return nil
}
