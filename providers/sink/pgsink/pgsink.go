package pgsink

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/leofalp/llmreport/providers/sink"
)

// defaultTableName is used when no custom name is provided.
const defaultTableName = "llmreport_artifacts"

// Querier abstracts the pgx methods the sink needs. *pgxpool.Pool, *pgx.Conn
// and pgx.Tx all satisfy it.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Sink inserts artifacts into a table.
type Sink struct {
	db        Querier
	tableName string
	rawName   string
}

var _ sink.Sink = (*Sink)(nil)

// Option configures optional Sink behavior.
type Option func(*Sink)

// WithTableName overrides the default table name. The name is sanitized via
// pgx.Identifier because it is interpolated into SQL.
func WithTableName(name string) Option {
	return func(s *Sink) {
		s.rawName = name
		s.tableName = pgx.Identifier{name}.Sanitize()
	}
}

// New returns a Sink writing through db.
func New(db Querier, opts ...Option) *Sink {
	s := &Sink{
		db:        db,
		tableName: defaultTableName,
		rawName:   defaultTableName,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save inserts the artifact and returns "postgres://<table>/<id>".
func (s *Sink) Save(ctx context.Context, artifact sink.Artifact) (string, error) {
	if err := artifact.Validate(); err != nil {
		return "", err
	}

	var document any
	if artifact.Kind.IsJSON() {
		document = string(artifact.Content)
	}

	query := fmt.Sprintf(`INSERT INTO %s (run_id, kind, content, document)
		VALUES ($1, $2, $3, $4::jsonb)
		RETURNING id`, s.tableName)

	var id string
	err := s.db.QueryRow(ctx, query,
		artifact.RunID,
		string(artifact.Kind),
		string(artifact.Content),
		document,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("pgsink: insert %s for run %s: %w", artifact.Kind, artifact.RunID, err)
	}

	return fmt.Sprintf("postgres://%s/%s", s.rawName, id), nil
}

func pgxIdentifier(name string) string {
	return pgx.Identifier{name}.Sanitize()
}
