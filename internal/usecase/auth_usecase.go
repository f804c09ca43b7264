package usecase

import (
	"context"

	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/apperror"
	"go-resume-backend/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	users domain.UserGateway
}

func NewAuthUsecase(users domain.UserGateway) domain.AuthUsecase {
	return &authUsecase{users: users}
}

// AuthenticateAPI resolves the Basic username (a user id) through the
// user-service and verifies the password against the returned bcrypt
// hash. Every failure mode maps to the same unauthorized error; callers
// learn nothing about which stage failed.
func (u *authUsecase) AuthenticateAPI(ctx context.Context, authHeader, userID, password string) (*domain.User, error) {
	user, err := u.users.FindByID(ctx, authHeader, userID)
	if err != nil {
		logger.Log.Error("authenticate lookup failed", "userId", userID, "error", err)
		return nil, apperror.Unauthorized("Invalid credentials")
	}
	return u.verify(user, password)
}

// AuthenticateForm is the browser login path: lookup by email, no
// caller credential to forward.
func (u *authUsecase) AuthenticateForm(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := u.users.FindByEmail(ctx, "", email)
	if err != nil {
		logger.Log.Error("form authenticate lookup failed", "error", err)
		return nil, apperror.Unauthorized("Invalid credentials")
	}
	return u.verify(user, password)
}

func (u *authUsecase) verify(user *domain.User, password string) (*domain.User, error) {
	if user == nil {
		return nil, apperror.Unauthorized("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.Unauthorized("Invalid credentials")
	}
	return user, nil
}

func (u *authUsecase) SignUp(ctx context.Context, email, password string) error {
	if _, err := u.users.CreateUser(ctx, email, password); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *authUsecase) FindByEmail(ctx context.Context, authHeader, email string) (*domain.User, error) {
	return u.users.FindByEmail(ctx, authHeader, email)
}

func (u *authUsecase) GenerateAPIPassword(ctx context.Context, authHeader, userID string) (string, error) {
	password, err := u.users.GeneratePassword(ctx, authHeader, userID)
	if err != nil {
		return "", apperror.Internal(err)
	}
	return password, nil
}
