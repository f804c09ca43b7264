package usecase

import (
	"context"
	"sort"

	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/apperror"
	"go-resume-backend/pkg/logger"

	"github.com/google/uuid"
)

type educationUsecase struct {
	repo domain.EducationRepository
}

func NewEducationUsecase(repo domain.EducationRepository) domain.EducationUsecase {
	return &educationUsecase{repo: repo}
}

func (u *educationUsecase) ListForUserAndCandidate(ctx context.Context, userID, candidateID string) ([]domain.Education, error) {
	return u.repo.FindAllByUserIDAndCandidateID(ctx, userID, candidateID)
}

func (u *educationUsecase) GetForUser(ctx context.Context, userID, id string) (*domain.Education, error) {
	return u.repo.FindByIDAndUserID(ctx, id, userID)
}

func (u *educationUsecase) Create(ctx context.Context, userID, candidateID string, upd domain.EducationUpdate) (*domain.Education, error) {
	education := &domain.Education{
		ID:             uuid.NewString(),
		UserID:         userID,
		CandidateID:    candidateID,
		Name:           upd.Name,
		StartDate:      upd.StartDate,
		EndDate:        upd.EndDate,
		Graduated:      upd.Graduated,
		AreaOfStudy:    upd.AreaOfStudy,
		EducationLevel: upd.EducationLevel,
	}
	saved, err := u.repo.Save(ctx, education)
	if err != nil {
		logger.Log.Error("createEducation save failed", "userId", userID, "candidateId", candidateID, "error", err)
		return nil, nil
	}
	return saved, nil
}

// Update requires both the stored owner and the stored candidate to
// match the caller's claim; either mismatch is forbidden, a missing id
// is not found. Owner is checked before candidate.
func (u *educationUsecase) Update(ctx context.Context, id, userID, candidateID string, upd domain.EducationUpdate) (*domain.Education, error) {
	existing, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if existing == nil {
		return nil, apperror.NotFound("education not found")
	}
	if existing.UserID != userID {
		return nil, apperror.Forbidden("education belongs to a different user")
	}
	if existing.CandidateID != candidateID {
		return nil, apperror.Forbidden("education belongs to a different candidate")
	}

	toSave := &domain.Education{
		ID:             existing.ID,
		UserID:         existing.UserID,
		CandidateID:    existing.CandidateID,
		Name:           upd.Name,
		StartDate:      upd.StartDate,
		EndDate:        upd.EndDate,
		Graduated:      upd.Graduated,
		AreaOfStudy:    upd.AreaOfStudy,
		EducationLevel: upd.EducationLevel,
	}
	saved, err := u.repo.Save(ctx, toSave)
	if err != nil {
		logger.Log.Error("updateEducation save failed", "userId", userID, "id", id, "candidateId", candidateID, "error", err)
		return nil, nil
	}
	return saved, nil
}

func (u *educationUsecase) Delete(ctx context.Context, id, userID string) bool {
	if err := u.repo.DeleteByIDAndUserID(ctx, id, userID); err != nil {
		logger.Log.Error("deleteEducation failed", "userId", userID, "id", id, "error", err)
		return false
	}
	return true
}

// ListByCandidateID serves the public timeline: entries still in
// progress (nil end date) come first, the rest are ordered latest-ended
// first. ISO dates compare correctly as strings.
func (u *educationUsecase) ListByCandidateID(ctx context.Context, candidateID string) ([]domain.Education, error) {
	educations, err := u.repo.FindAllByCandidateID(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(educations, func(i, j int) bool {
		return endDateLess(educations[i].EndDate, educations[j].EndDate)
	})
	return educations, nil
}
