package postgres

import (
	"context"
	"errors"
	"time"

	"go-resume-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type jobRepository struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepository{db: db}
}

const jobColumns = `id, user_id, candidate_id, company_name, title, start_date, end_date, skills, achievements, currently_working, reason_for_leaving`

func scanJob(row pgx.Row) (*domain.Job, error) {
	var j domain.Job
	var startDate, endDate *time.Time
	var skills, achievements []string
	err := row.Scan(
		&j.ID, &j.UserID, &j.CandidateID, &j.CompanyName, &j.Title,
		&startDate, &endDate, pq.Array(&skills), pq.Array(&achievements),
		&j.CurrentlyWorking, &j.ReasonForLeaving,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	j.StartDate = fromDate(startDate)
	j.EndDate = fromDate(endDate)
	j.Skills = skills
	j.Achievements = achievements
	return &j, nil
}

func collectJobs(rows pgx.Rows) ([]domain.Job, error) {
	jobs := []domain.Job{}
	for rows.Next() {
		var j domain.Job
		var startDate, endDate *time.Time
		var skills, achievements []string
		err := rows.Scan(
			&j.ID, &j.UserID, &j.CandidateID, &j.CompanyName, &j.Title,
			&startDate, &endDate, pq.Array(&skills), pq.Array(&achievements),
			&j.CurrentlyWorking, &j.ReasonForLeaving,
		)
		if err != nil {
			return nil, err
		}
		j.StartDate = fromDate(startDate)
		j.EndDate = fromDate(endDate)
		j.Skills = skills
		j.Achievements = achievements
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func (r *jobRepository) FindAllByUserIDAndCandidateID(ctx context.Context, userID, candidateID string) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs
		WHERE user_id = $1 AND candidate_id = $2 ORDER BY end_date`
	rows, err := r.db.Query(ctx, query, userID, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobs(rows)
}

func (r *jobRepository) FindAllByCandidateID(ctx context.Context, candidateID string) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE candidate_id = $1`
	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobs(rows)
}

func (r *jobRepository) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	return scanJob(r.db.QueryRow(ctx, query, id))
}

func (r *jobRepository) FindByIDAndUserID(ctx context.Context, id, userID string) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1 AND user_id = $2`
	return scanJob(r.db.QueryRow(ctx, query, id, userID))
}

func (r *jobRepository) Save(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	startDate, err := toDate(job.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := toDate(job.EndDate)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO jobs (id, user_id, candidate_id, company_name, title, start_date, end_date, skills, achievements, currently_working, reason_for_leaving)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			user_id = EXCLUDED.user_id,
			candidate_id = EXCLUDED.candidate_id,
			company_name = EXCLUDED.company_name,
			title = EXCLUDED.title,
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			skills = EXCLUDED.skills,
			achievements = EXCLUDED.achievements,
			currently_working = EXCLUDED.currently_working,
			reason_for_leaving = EXCLUDED.reason_for_leaving`
	_, err = r.db.Exec(ctx, query,
		job.ID, job.UserID, job.CandidateID, job.CompanyName, job.Title,
		startDate, endDate, pq.Array(job.Skills), pq.Array(job.Achievements),
		job.CurrentlyWorking, job.ReasonForLeaving,
	)
	if err != nil {
		return nil, err
	}
	return job, nil
}

func (r *jobRepository) DeleteByIDAndUserID(ctx context.Context, id, userID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1 AND user_id = $2`, id, userID)
	return err
}

func (r *jobRepository) DeleteByUserID(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE user_id = $1`, userID)
	return err
}
