package domain

import "context"

type EducationLevel string

const (
	EducationLevelNone       EducationLevel = "NONE"
	EducationLevelDiploma    EducationLevel = "DIPLOMA"
	EducationLevelAssociates EducationLevel = "ASSOCIATES"
	EducationLevelBachelors  EducationLevel = "BACHELORS"
	EducationLevelMasters    EducationLevel = "MASTERS"
	EducationLevelDoctorate  EducationLevel = "DOCTORATE"
)

// Education belongs to one candidate and one owning user; both must
// match on update. Dates are YYYY-MM-DD strings, nil when open-ended.
type Education struct {
	ID             string         `json:"id"`
	UserID         string         `json:"userId"`
	CandidateID    string         `json:"candidateId"`
	Name           string         `json:"name"`
	StartDate      *string        `json:"startDate"`
	EndDate        *string        `json:"endDate"`
	Graduated      *bool          `json:"graduated"`
	AreaOfStudy    string         `json:"areaOfStudy"`
	EducationLevel EducationLevel `json:"educationLevel"`
}

type EducationUpdate struct {
	Name           string
	StartDate      *string
	EndDate        *string
	Graduated      *bool
	AreaOfStudy    string
	EducationLevel EducationLevel
}

type EducationRepository interface {
	// FindAllByUserIDAndCandidateID returns rows ordered by end date ascending.
	FindAllByUserIDAndCandidateID(ctx context.Context, userID, candidateID string) ([]Education, error)
	FindByIDAndUserID(ctx context.Context, id, userID string) (*Education, error)
	FindByID(ctx context.Context, id string) (*Education, error)
	FindAllByCandidateID(ctx context.Context, candidateID string) ([]Education, error)
	Save(ctx context.Context, education *Education) (*Education, error)
	DeleteByIDAndUserID(ctx context.Context, id, userID string) error
	// DeleteByUserID removes every education owned by the user. Used by
	// the candidate delete cascade.
	DeleteByUserID(ctx context.Context, userID string) error
}

type EducationUsecase interface {
	ListForUserAndCandidate(ctx context.Context, userID, candidateID string) ([]Education, error)
	GetForUser(ctx context.Context, userID, id string) (*Education, error)
	Create(ctx context.Context, userID, candidateID string, upd EducationUpdate) (*Education, error)
	Update(ctx context.Context, id, userID, candidateID string, upd EducationUpdate) (*Education, error)
	Delete(ctx context.Context, id, userID string) bool
	// ListByCandidateID is the public timeline view: open-ended entries
	// first, the rest descending by end date.
	ListByCandidateID(ctx context.Context, candidateID string) ([]Education, error)
}
