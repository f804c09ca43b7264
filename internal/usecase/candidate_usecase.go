package usecase

import (
	"context"

	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/apperror"
	"go-resume-backend/pkg/logger"

	"github.com/google/uuid"
)

type candidateUsecase struct {
	candidateRepo domain.CandidateRepository
	jobRepo       domain.JobRepository
	educationRepo domain.EducationRepository
}

func NewCandidateUsecase(
	candidateRepo domain.CandidateRepository,
	jobRepo domain.JobRepository,
	educationRepo domain.EducationRepository,
) domain.CandidateUsecase {
	return &candidateUsecase{
		candidateRepo: candidateRepo,
		jobRepo:       jobRepo,
		educationRepo: educationRepo,
	}
}

func (u *candidateUsecase) ListForUser(ctx context.Context, userID string) ([]domain.Candidate, error) {
	return u.candidateRepo.FindAllByUserID(ctx, userID)
}

// GetForUser returns the candidate only when it exists and is owned by
// userID. Not-found and not-owned are indistinguishable here: both are a
// nil result.
func (u *candidateUsecase) GetForUser(ctx context.Context, userID, id string) (*domain.Candidate, error) {
	return u.candidateRepo.FindByIDAndUserID(ctx, id, userID)
}

// Create stamps the owner from the call argument, never from the payload.
// A store failure is logged and surfaced as an absent result.
func (u *candidateUsecase) Create(ctx context.Context, userID string, upd domain.CandidateUpdate) (*domain.Candidate, error) {
	candidate := &domain.Candidate{
		ID:          uuid.NewString(),
		UserID:      userID,
		FirstName:   upd.FirstName,
		LastName:    upd.LastName,
		Summary:     upd.Summary,
		LinkedInURL: upd.LinkedInURL,
		GithubURL:   upd.GithubURL,
	}
	saved, err := u.candidateRepo.Save(ctx, candidate)
	if err != nil {
		logger.Log.Error("createCandidate save failed", "userId", userID, "error", err)
		return nil, nil
	}
	return saved, nil
}

// Update loads by id alone, then checks ownership against the stored
// owner. The saved value keeps the original id and owner and replaces
// every other field from the payload.
func (u *candidateUsecase) Update(ctx context.Context, id, userID string, upd domain.CandidateUpdate) (*domain.Candidate, error) {
	existing, err := u.candidateRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if existing == nil {
		return nil, apperror.NotFound("candidate not found")
	}
	if existing.UserID != userID {
		return nil, apperror.Forbidden("candidate belongs to a different user")
	}

	toSave := &domain.Candidate{
		ID:          existing.ID,
		UserID:      existing.UserID,
		FirstName:   upd.FirstName,
		LastName:    upd.LastName,
		Summary:     upd.Summary,
		LinkedInURL: upd.LinkedInURL,
		GithubURL:   upd.GithubURL,
	}
	saved, err := u.candidateRepo.Save(ctx, toSave)
	if err != nil {
		logger.Log.Error("updateCandidate save failed", "userId", userID, "id", id, "error", err)
		return nil, nil
	}
	return saved, nil
}

// Delete removes the candidate matching id and owner, then cascades to
// every job and education owned by the user. The cascade is scoped to
// the owner, not the deleted candidate's id.
func (u *candidateUsecase) Delete(ctx context.Context, id, userID string) bool {
	if err := u.candidateRepo.DeleteByIDAndUserID(ctx, id, userID); err != nil {
		logger.Log.Error("deleteCandidate failed", "userId", userID, "id", id, "error", err)
		return false
	}
	if err := u.jobRepo.DeleteByUserID(ctx, userID); err != nil {
		logger.Log.Error("deleteCandidate job cascade failed", "userId", userID, "id", id, "error", err)
		return false
	}
	if err := u.educationRepo.DeleteByUserID(ctx, userID); err != nil {
		logger.Log.Error("deleteCandidate education cascade failed", "userId", userID, "id", id, "error", err)
		return false
	}
	return true
}

func (u *candidateUsecase) ListAll(ctx context.Context) ([]domain.Candidate, error) {
	return u.candidateRepo.FindAll(ctx)
}

func (u *candidateUsecase) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	return u.candidateRepo.FindByID(ctx, id)
}
