package domain

import "context"

// Candidate is a resume owned by exactly one user. The ID is an opaque
// string generated at create time and never reassigned.
type Candidate struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Summary     string `json:"summary"`
	LinkedInURL string `json:"linkedInUrl"`
	GithubURL   string `json:"githubUrl"`
}

// CandidateUpdate carries the mutable portion of a Candidate. Updates are
// full replacements: every field overwrites the stored value, no merging.
type CandidateUpdate struct {
	FirstName   string
	LastName    string
	Summary     string
	LinkedInURL string
	GithubURL   string
}

type CandidateRepository interface {
	// FindAllByUserID returns the user's candidates ordered by last name.
	FindAllByUserID(ctx context.Context, userID string) ([]Candidate, error)
	FindByIDAndUserID(ctx context.Context, id, userID string) (*Candidate, error)
	FindByID(ctx context.Context, id string) (*Candidate, error)
	FindAll(ctx context.Context) ([]Candidate, error)
	Save(ctx context.Context, candidate *Candidate) (*Candidate, error)
	// DeleteByIDAndUserID removes the row matching both id and owner.
	// A non-matching id is a no-op, not an error.
	DeleteByIDAndUserID(ctx context.Context, id, userID string) error
}

type CandidateUsecase interface {
	ListForUser(ctx context.Context, userID string) ([]Candidate, error)
	GetForUser(ctx context.Context, userID, id string) (*Candidate, error)
	Create(ctx context.Context, userID string, upd CandidateUpdate) (*Candidate, error)
	Update(ctx context.Context, id, userID string, upd CandidateUpdate) (*Candidate, error)
	Delete(ctx context.Context, id, userID string) bool
	// ListAll and GetByID back the public, unauthenticated resume view.
	ListAll(ctx context.Context) ([]Candidate, error)
	GetByID(ctx context.Context, id string) (*Candidate, error)
}
