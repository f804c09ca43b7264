package postgres

import (
	"context"
	"errors"

	"go-resume-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type changeSetRepository struct {
	db *pgxpool.Pool
}

func NewChangeSetRepository(db *pgxpool.Pool) domain.ChangeSetRepository {
	return &changeSetRepository{db: db}
}

func (r *changeSetRepository) FindByID(ctx context.Context, id string) (*domain.ChangeSet, error) {
	query := `SELECT id, author, description, created_date, in_progress, completed
		FROM change_sets WHERE id = $1`
	var cs domain.ChangeSet
	err := r.db.QueryRow(ctx, query, id).Scan(
		&cs.ID, &cs.Author, &cs.Description, &cs.CreatedDate, &cs.InProgress, &cs.Completed,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &cs, nil
}

func (r *changeSetRepository) Save(ctx context.Context, cs *domain.ChangeSet) error {
	query := `
		INSERT INTO change_sets (id, author, description, created_date, in_progress, completed)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			author = EXCLUDED.author,
			description = EXCLUDED.description,
			created_date = EXCLUDED.created_date,
			in_progress = EXCLUDED.in_progress,
			completed = EXCLUDED.completed`
	_, err := r.db.Exec(ctx, query,
		cs.ID, cs.Author, cs.Description, cs.CreatedDate, cs.InProgress, cs.Completed,
	)
	return err
}
