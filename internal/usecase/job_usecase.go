package usecase

import (
	"context"
	"sort"

	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/apperror"
	"go-resume-backend/pkg/logger"

	"github.com/google/uuid"
)

type jobUsecase struct {
	repo domain.JobRepository
}

func NewJobUsecase(repo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{repo: repo}
}

func (u *jobUsecase) ListForUserAndCandidate(ctx context.Context, userID, candidateID string) ([]domain.Job, error) {
	return u.repo.FindAllByUserIDAndCandidateID(ctx, userID, candidateID)
}

func (u *jobUsecase) GetForUser(ctx context.Context, userID, id string) (*domain.Job, error) {
	return u.repo.FindByIDAndUserID(ctx, id, userID)
}

func (u *jobUsecase) Create(ctx context.Context, userID, candidateID string, upd domain.JobUpdate) (*domain.Job, error) {
	job := &domain.Job{
		ID:               uuid.NewString(),
		UserID:           userID,
		CandidateID:      candidateID,
		CompanyName:      upd.CompanyName,
		Title:            upd.Title,
		StartDate:        upd.StartDate,
		EndDate:          upd.EndDate,
		Skills:           upd.Skills,
		Achievements:     upd.Achievements,
		CurrentlyWorking: upd.CurrentlyWorking,
		ReasonForLeaving: upd.ReasonForLeaving,
	}
	saved, err := u.repo.Save(ctx, job)
	if err != nil {
		logger.Log.Error("createJob save failed", "userId", userID, "candidateId", candidateID, "error", err)
		return nil, nil
	}
	return saved, nil
}

func (u *jobUsecase) Update(ctx context.Context, id, userID, candidateID string, upd domain.JobUpdate) (*domain.Job, error) {
	existing, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if existing == nil {
		return nil, apperror.NotFound("job not found")
	}
	if existing.UserID != userID {
		return nil, apperror.Forbidden("job belongs to a different user")
	}
	if existing.CandidateID != candidateID {
		return nil, apperror.Forbidden("job belongs to a different candidate")
	}

	toSave := &domain.Job{
		ID:               existing.ID,
		UserID:           existing.UserID,
		CandidateID:      existing.CandidateID,
		CompanyName:      upd.CompanyName,
		Title:            upd.Title,
		StartDate:        upd.StartDate,
		EndDate:          upd.EndDate,
		Skills:           upd.Skills,
		Achievements:     upd.Achievements,
		CurrentlyWorking: upd.CurrentlyWorking,
		ReasonForLeaving: upd.ReasonForLeaving,
	}
	saved, err := u.repo.Save(ctx, toSave)
	if err != nil {
		logger.Log.Error("updateJob save failed", "userId", userID, "id", id, "candidateId", candidateID, "error", err)
		return nil, nil
	}
	return saved, nil
}

func (u *jobUsecase) Delete(ctx context.Context, id, userID string) bool {
	if err := u.repo.DeleteByIDAndUserID(ctx, id, userID); err != nil {
		logger.Log.Error("deleteJob failed", "userId", userID, "id", id, "error", err)
		return false
	}
	return true
}

func (u *jobUsecase) ListByCandidateID(ctx context.Context, candidateID string) ([]domain.Job, error) {
	jobs, err := u.repo.FindAllByCandidateID(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(jobs, func(i, j int) bool {
		return endDateLess(jobs[i].EndDate, jobs[j].EndDate)
	})
	return jobs, nil
}
