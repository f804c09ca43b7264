package postgres

import (
	"context"
	"errors"

	"go-resume-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type candidateRepository struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepository{db: db}
}

const candidateColumns = `id, user_id, first_name, last_name, summary, linkedin_url, github_url`

func scanCandidate(row pgx.Row) (*domain.Candidate, error) {
	var c domain.Candidate
	err := row.Scan(&c.ID, &c.UserID, &c.FirstName, &c.LastName, &c.Summary, &c.LinkedInURL, &c.GithubURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *candidateRepository) FindAllByUserID(ctx context.Context, userID string) ([]domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE user_id = $1 ORDER BY last_name`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCandidates(rows)
}

func (r *candidateRepository) FindAll(ctx context.Context) ([]domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates ORDER BY last_name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCandidates(rows)
}

func collectCandidates(rows pgx.Rows) ([]domain.Candidate, error) {
	candidates := []domain.Candidate{}
	for rows.Next() {
		var c domain.Candidate
		if err := rows.Scan(&c.ID, &c.UserID, &c.FirstName, &c.LastName, &c.Summary, &c.LinkedInURL, &c.GithubURL); err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

func (r *candidateRepository) FindByID(ctx context.Context, id string) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`
	return scanCandidate(r.db.QueryRow(ctx, query, id))
}

func (r *candidateRepository) FindByIDAndUserID(ctx context.Context, id, userID string) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1 AND user_id = $2`
	return scanCandidate(r.db.QueryRow(ctx, query, id, userID))
}

// Save upserts by id, mirroring document-store save semantics: the whole
// record is written, not a field patch.
func (r *candidateRepository) Save(ctx context.Context, candidate *domain.Candidate) (*domain.Candidate, error) {
	query := `
		INSERT INTO candidates (id, user_id, first_name, last_name, summary, linkedin_url, github_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			user_id = EXCLUDED.user_id,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			summary = EXCLUDED.summary,
			linkedin_url = EXCLUDED.linkedin_url,
			github_url = EXCLUDED.github_url`
	_, err := r.db.Exec(ctx, query,
		candidate.ID, candidate.UserID, candidate.FirstName, candidate.LastName,
		candidate.Summary, candidate.LinkedInURL, candidate.GithubURL,
	)
	if err != nil {
		return nil, err
	}
	return candidate, nil
}

func (r *candidateRepository) DeleteByIDAndUserID(ctx context.Context, id, userID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM candidates WHERE id = $1 AND user_id = $2`, id, userID)
	return err
}
