package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-resume-backend/internal/domain"
	"go-resume-backend/internal/usecase"
	"go-resume-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func strPtr(s string) *string { return &s }

func TestEducationUpdate(t *testing.T) {
	ctx := context.Background()

	stored := &domain.Education{
		ID: "e1", UserID: "owner", CandidateID: "cand1",
		Name: "State University", AreaOfStudy: "CS",
		EducationLevel: domain.EducationLevelBachelors,
	}

	t.Run("Should report not found for an unknown id", func(t *testing.T) {
		repo := new(MockEducationRepo)
		uc := usecase.NewEducationUsecase(repo)

		repo.On("FindByID", ctx, "missing").Return(nil, nil)

		_, err := uc.Update(ctx, "missing", "owner", "cand1", domain.EducationUpdate{})
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})

	t.Run("Should check owner before candidate", func(t *testing.T) {
		repo := new(MockEducationRepo)
		uc := usecase.NewEducationUsecase(repo)

		repo.On("FindByID", ctx, "e1").Return(stored, nil)

		// Both claims are wrong; the owner mismatch must win.
		_, err := uc.Update(ctx, "e1", "intruder", "otherCand", domain.EducationUpdate{})
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 403, appErr.Code)
		assert.Contains(t, appErr.Message, "different user")
	})

	t.Run("Should forbid a candidate mismatch even for the owner", func(t *testing.T) {
		repo := new(MockEducationRepo)
		uc := usecase.NewEducationUsecase(repo)

		repo.On("FindByID", ctx, "e1").Return(stored, nil)

		_, err := uc.Update(ctx, "e1", "owner", "otherCand", domain.EducationUpdate{})
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 403, appErr.Code)
		assert.Contains(t, appErr.Message, "different candidate")
	})

	t.Run("Should keep id, owner and candidate while replacing the rest", func(t *testing.T) {
		repo := new(MockEducationRepo)
		uc := usecase.NewEducationUsecase(repo)

		repo.On("FindByID", ctx, "e1").Return(stored, nil)
		repo.On("Save", ctx, mock.MatchedBy(func(e *domain.Education) bool {
			return e.ID == "e1" && e.UserID == "owner" && e.CandidateID == "cand1" &&
				e.Name == "Night School" && e.EndDate == nil
		})).Return(&domain.Education{ID: "e1", UserID: "owner", CandidateID: "cand1", Name: "Night School"}, nil)

		updated, err := uc.Update(ctx, "e1", "owner", "cand1", domain.EducationUpdate{
			Name:           "Night School",
			AreaOfStudy:    "Math",
			EducationLevel: domain.EducationLevelMasters,
		})
		assert.NoError(t, err)
		assert.NotNil(t, updated)
		repo.AssertExpectations(t)
	})

	t.Run("Should return absent when the save fails", func(t *testing.T) {
		repo := new(MockEducationRepo)
		uc := usecase.NewEducationUsecase(repo)

		repo.On("FindByID", ctx, "e1").Return(stored, nil)
		repo.On("Save", ctx, mock.Anything).Return(nil, errors.New("write failed"))

		updated, err := uc.Update(ctx, "e1", "owner", "cand1", domain.EducationUpdate{})
		assert.NoError(t, err)
		assert.Nil(t, updated)
	})
}

func TestEducationCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Should stamp owner and candidate from the call, not the payload", func(t *testing.T) {
		repo := new(MockEducationRepo)
		uc := usecase.NewEducationUsecase(repo)

		repo.On("Save", ctx, mock.MatchedBy(func(e *domain.Education) bool {
			return e.ID != "" && e.UserID == "owner" && e.CandidateID == "cand1"
		})).Return(&domain.Education{ID: "new", UserID: "owner", CandidateID: "cand1"}, nil)

		created, err := uc.Create(ctx, "owner", "cand1", domain.EducationUpdate{Name: "State University"})
		assert.NoError(t, err)
		assert.NotNil(t, created)
		repo.AssertExpectations(t)
	})
}

func TestEducationPublicTimeline(t *testing.T) {
	ctx := context.Background()

	t.Run("Should order open-ended entries first, then latest ended", func(t *testing.T) {
		repo := new(MockEducationRepo)
		uc := usecase.NewEducationUsecase(repo)

		repo.On("FindAllByCandidateID", ctx, "cand1").Return([]domain.Education{
			{ID: "a", EndDate: strPtr("2000-01-01")},
			{ID: "b", EndDate: nil},
			{ID: "c", EndDate: strPtr("2020-01-01")},
			{ID: "d", EndDate: nil},
		}, nil)

		got, err := uc.ListByCandidateID(ctx, "cand1")
		assert.NoError(t, err)

		ids := make([]string, 0, len(got))
		for _, e := range got {
			ids = append(ids, e.ID)
		}
		// The two nil entries keep their relative input order.
		assert.Equal(t, []string{"b", "d", "c", "a"}, ids)
	})

	t.Run("Should pass a store failure through", func(t *testing.T) {
		repo := new(MockEducationRepo)
		uc := usecase.NewEducationUsecase(repo)

		repo.On("FindAllByCandidateID", ctx, "cand1").Return(nil, errors.New("down"))

		_, err := uc.ListByCandidateID(ctx, "cand1")
		assert.Error(t, err)
	})
}
