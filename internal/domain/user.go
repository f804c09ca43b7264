package domain

import "context"

// User is the profile held by the remote user-service. This service
// never stores users itself; PasswordHash is the bcrypt credential hash
// the user-service hands back for Basic auth verification.
type User struct {
	ID           string   `json:"id"`
	Email        string   `json:"email"`
	Roles        []string `json:"roles"`
	PasswordHash string   `json:"emailPassword"`
}

// UserGateway resolves identities through the remote user-service. The
// caller's Authorization header is an explicit argument everywhere it is
// forwarded; there is no ambient request state.
type UserGateway interface {
	FindByID(ctx context.Context, authHeader, id string) (*User, error)
	FindByEmail(ctx context.Context, authHeader, email string) (*User, error)
	CreateUser(ctx context.Context, email, password string) (*User, error)
	// GeneratePassword rotates the user's API password and returns the
	// new plaintext exactly once.
	GeneratePassword(ctx context.Context, authHeader, id string) (string, error)
}

type AuthUsecase interface {
	// AuthenticateAPI verifies Basic credentials. The Basic username is
	// the user's opaque id; the password is the generated API password.
	AuthenticateAPI(ctx context.Context, authHeader, userID, password string) (*User, error)
	// AuthenticateForm verifies a browser login by email.
	AuthenticateForm(ctx context.Context, email, password string) (*User, error)
	SignUp(ctx context.Context, email, password string) error
	FindByEmail(ctx context.Context, authHeader, email string) (*User, error)
	GenerateAPIPassword(ctx context.Context, authHeader, userID string) (string, error)
}
