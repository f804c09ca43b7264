package schema

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

const changeSetAuthor = "resume-backend"

// EnsureTables creates the entity tables and the changeset ledger. It
// runs before the ledger itself is usable, so it is deliberately outside
// the changeset mechanism and idempotent on its own.
func EnsureTables(ctx context.Context, db *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS change_sets (
			id TEXT PRIMARY KEY,
			author TEXT NOT NULL,
			description TEXT NOT NULL,
			created_date BIGINT NOT NULL,
			in_progress BOOLEAN NOT NULL DEFAULT FALSE,
			completed BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		`CREATE TABLE IF NOT EXISTS candidates (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			first_name TEXT NOT NULL DEFAULT '',
			last_name TEXT NOT NULL DEFAULT '',
			summary TEXT NOT NULL DEFAULT '',
			linkedin_url TEXT NOT NULL DEFAULT '',
			github_url TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS educations (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			candidate_id TEXT NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			start_date DATE,
			end_date DATE,
			graduated BOOLEAN,
			area_of_study TEXT NOT NULL DEFAULT '',
			education_level TEXT NOT NULL DEFAULT 'NONE'
		)`,
		`CREATE TABLE IF NOT EXISTS jobs (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			candidate_id TEXT NOT NULL,
			company_name TEXT NOT NULL DEFAULT '',
			title TEXT NOT NULL DEFAULT '',
			start_date DATE,
			end_date DATE,
			skills TEXT[] NOT NULL DEFAULT '{}',
			achievements TEXT[] NOT NULL DEFAULT '{}',
			currently_working BOOLEAN,
			reason_for_leaving TEXT NOT NULL DEFAULT ''
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func indexOp(db *pgxpool.Pool, stmt string) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		_, err := db.Exec(ctx, stmt)
		return err
	}
}

// DefaultChangeSets is the ordered index migration list. Append only;
// never renumber shipped ids.
func DefaultChangeSets(db *pgxpool.Pool) []changeSetDef {
	return []changeSetDef{
		{
			ID:          "changeset-001",
			Author:      changeSetAuthor,
			Description: "add index to educations userId and candidateId",
			Op:          indexOp(db, `CREATE INDEX IF NOT EXISTS idx_educations_user_id_candidate_id ON educations (user_id, candidate_id)`),
		},
		{
			ID:          "changeset-002",
			Author:      changeSetAuthor,
			Description: "add educations index to candidateId",
			Op:          indexOp(db, `CREATE INDEX IF NOT EXISTS idx_educations_candidate_id ON educations (candidate_id)`),
		},
		{
			ID:          "changeset-003",
			Author:      changeSetAuthor,
			Description: "add educations index to userId",
			Op:          indexOp(db, `CREATE INDEX IF NOT EXISTS idx_educations_user_id ON educations (user_id)`),
		},
		{
			ID:          "changeset-004",
			Author:      changeSetAuthor,
			Description: "add jobs index to userId and candidateId",
			Op:          indexOp(db, `CREATE INDEX IF NOT EXISTS idx_jobs_user_id_candidate_id ON jobs (user_id, candidate_id)`),
		},
		{
			ID:          "changeset-005",
			Author:      changeSetAuthor,
			Description: "add jobs index to candidateId",
			Op:          indexOp(db, `CREATE INDEX IF NOT EXISTS idx_jobs_candidate_id ON jobs (candidate_id)`),
		},
		{
			ID:          "changeset-006",
			Author:      changeSetAuthor,
			Description: "add jobs index to userId",
			Op:          indexOp(db, `CREATE INDEX IF NOT EXISTS idx_jobs_user_id ON jobs (user_id)`),
		},
		{
			ID:          "changeset-007",
			Author:      changeSetAuthor,
			Description: "add candidates index to userId",
			Op:          indexOp(db, `CREATE INDEX IF NOT EXISTS idx_candidates_user_id ON candidates (user_id)`),
		},
	}
}
