// Package pgsink stores report artifacts in PostgreSQL, one row per
// artifact. JSON kinds are additionally stored in a JSONB column so reports
// can be queried in SQL:
//
//	SELECT document->'patient_information'->>'name'
//	FROM llmreport_artifacts WHERE kind = 'document';
//
// The sink takes any pgx query executor (*pgxpool.Pool, *pgx.Conn or
// pgx.Tx). Call [Sink.EnsureSchema] once during development; production
// databases should be migrated with dedicated tooling.
package pgsink
