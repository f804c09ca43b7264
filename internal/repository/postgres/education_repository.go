package postgres

import (
	"context"
	"errors"
	"time"

	"go-resume-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type educationRepository struct {
	db *pgxpool.Pool
}

func NewEducationRepository(db *pgxpool.Pool) domain.EducationRepository {
	return &educationRepository{db: db}
}

const educationColumns = `id, user_id, candidate_id, name, start_date, end_date, graduated, area_of_study, education_level`

func scanEducation(row pgx.Row) (*domain.Education, error) {
	var e domain.Education
	var startDate, endDate *time.Time
	err := row.Scan(
		&e.ID, &e.UserID, &e.CandidateID, &e.Name,
		&startDate, &endDate, &e.Graduated, &e.AreaOfStudy, &e.EducationLevel,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	e.StartDate = fromDate(startDate)
	e.EndDate = fromDate(endDate)
	return &e, nil
}

func collectEducations(rows pgx.Rows) ([]domain.Education, error) {
	educations := []domain.Education{}
	for rows.Next() {
		var e domain.Education
		var startDate, endDate *time.Time
		err := rows.Scan(
			&e.ID, &e.UserID, &e.CandidateID, &e.Name,
			&startDate, &endDate, &e.Graduated, &e.AreaOfStudy, &e.EducationLevel,
		)
		if err != nil {
			return nil, err
		}
		e.StartDate = fromDate(startDate)
		e.EndDate = fromDate(endDate)
		educations = append(educations, e)
	}
	return educations, rows.Err()
}

func (r *educationRepository) FindAllByUserIDAndCandidateID(ctx context.Context, userID, candidateID string) ([]domain.Education, error) {
	query := `SELECT ` + educationColumns + ` FROM educations
		WHERE user_id = $1 AND candidate_id = $2 ORDER BY end_date`
	rows, err := r.db.Query(ctx, query, userID, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEducations(rows)
}

func (r *educationRepository) FindAllByCandidateID(ctx context.Context, candidateID string) ([]domain.Education, error) {
	query := `SELECT ` + educationColumns + ` FROM educations WHERE candidate_id = $1`
	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEducations(rows)
}

func (r *educationRepository) FindByID(ctx context.Context, id string) (*domain.Education, error) {
	query := `SELECT ` + educationColumns + ` FROM educations WHERE id = $1`
	return scanEducation(r.db.QueryRow(ctx, query, id))
}

func (r *educationRepository) FindByIDAndUserID(ctx context.Context, id, userID string) (*domain.Education, error) {
	query := `SELECT ` + educationColumns + ` FROM educations WHERE id = $1 AND user_id = $2`
	return scanEducation(r.db.QueryRow(ctx, query, id, userID))
}

func (r *educationRepository) Save(ctx context.Context, education *domain.Education) (*domain.Education, error) {
	startDate, err := toDate(education.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := toDate(education.EndDate)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO educations (id, user_id, candidate_id, name, start_date, end_date, graduated, area_of_study, education_level)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			user_id = EXCLUDED.user_id,
			candidate_id = EXCLUDED.candidate_id,
			name = EXCLUDED.name,
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			graduated = EXCLUDED.graduated,
			area_of_study = EXCLUDED.area_of_study,
			education_level = EXCLUDED.education_level`
	_, err = r.db.Exec(ctx, query,
		education.ID, education.UserID, education.CandidateID, education.Name,
		startDate, endDate, education.Graduated, education.AreaOfStudy, education.EducationLevel,
	)
	if err != nil {
		return nil, err
	}
	return education, nil
}

func (r *educationRepository) DeleteByIDAndUserID(ctx context.Context, id, userID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM educations WHERE id = $1 AND user_id = $2`, id, userID)
	return err
}

func (r *educationRepository) DeleteByUserID(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM educations WHERE user_id = $1`, userID)
	return err
}
