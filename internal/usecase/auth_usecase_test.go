package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-resume-backend/internal/domain"
	"go-resume-backend/internal/usecase"
	"go-resume-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthenticateAPI(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	assert.NoError(t, err)
	user := &domain.User{ID: "user1", Email: "ada@example.com", PasswordHash: string(hash)}

	t.Run("Should accept the user id and matching API password", func(t *testing.T) {
		gateway := new(MockUserGateway)
		uc := usecase.NewAuthUsecase(gateway)

		gateway.On("FindByID", ctx, "Basic abc", "user1").Return(user, nil)

		got, err := uc.AuthenticateAPI(ctx, "Basic abc", "user1", "s3cret")
		assert.NoError(t, err)
		assert.Equal(t, "ada@example.com", got.Email)
	})

	t.Run("Should reject a wrong password with the generic message", func(t *testing.T) {
		gateway := new(MockUserGateway)
		uc := usecase.NewAuthUsecase(gateway)

		gateway.On("FindByID", ctx, "Basic abc", "user1").Return(user, nil)

		_, err := uc.AuthenticateAPI(ctx, "Basic abc", "user1", "wrong")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 401, appErr.Code)
		assert.Equal(t, "Invalid credentials", appErr.Message)
	})

	t.Run("Should reject an unknown user with the same message", func(t *testing.T) {
		gateway := new(MockUserGateway)
		uc := usecase.NewAuthUsecase(gateway)

		gateway.On("FindByID", ctx, "Basic abc", "ghost").Return(nil, nil)

		_, err := uc.AuthenticateAPI(ctx, "Basic abc", "ghost", "s3cret")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 401, appErr.Code)
		assert.Equal(t, "Invalid credentials", appErr.Message)
	})

	t.Run("Should hide gateway failures behind unauthorized", func(t *testing.T) {
		gateway := new(MockUserGateway)
		uc := usecase.NewAuthUsecase(gateway)

		gateway.On("FindByID", ctx, "Basic abc", "user1").Return(nil, errors.New("user-service down"))

		_, err := uc.AuthenticateAPI(ctx, "Basic abc", "user1", "s3cret")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 401, appErr.Code)
	})
}

func TestAuthenticateForm(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	assert.NoError(t, err)

	t.Run("Should look the user up by email without forwarding credentials", func(t *testing.T) {
		gateway := new(MockUserGateway)
		uc := usecase.NewAuthUsecase(gateway)

		gateway.On("FindByEmail", ctx, "", "ada@example.com").
			Return(&domain.User{ID: "user1", Email: "ada@example.com", PasswordHash: string(hash)}, nil)

		got, err := uc.AuthenticateForm(ctx, "ada@example.com", "s3cret")
		assert.NoError(t, err)
		assert.Equal(t, "user1", got.ID)
		gateway.AssertExpectations(t)
	})
}
