package domain

import "context"

// Job is a single work-history entry on a candidate's resume. Skills and
// achievements keep their input order.
type Job struct {
	ID               string   `json:"id"`
	UserID           string   `json:"userId"`
	CandidateID      string   `json:"candidateId"`
	CompanyName      string   `json:"companyName"`
	Title            string   `json:"title"`
	StartDate        *string  `json:"startDate"`
	EndDate          *string  `json:"endDate"`
	Skills           []string `json:"skills"`
	Achievements     []string `json:"achievements"`
	CurrentlyWorking *bool    `json:"currentlyWorking"`
	ReasonForLeaving string   `json:"reasonForLeaving"`
}

type JobUpdate struct {
	CompanyName      string
	Title            string
	StartDate        *string
	EndDate          *string
	Skills           []string
	Achievements     []string
	CurrentlyWorking *bool
	ReasonForLeaving string
}

type JobRepository interface {
	FindAllByUserIDAndCandidateID(ctx context.Context, userID, candidateID string) ([]Job, error)
	FindByIDAndUserID(ctx context.Context, id, userID string) (*Job, error)
	FindByID(ctx context.Context, id string) (*Job, error)
	FindAllByCandidateID(ctx context.Context, candidateID string) ([]Job, error)
	Save(ctx context.Context, job *Job) (*Job, error)
	DeleteByIDAndUserID(ctx context.Context, id, userID string) error
	DeleteByUserID(ctx context.Context, userID string) error
}

type JobUsecase interface {
	ListForUserAndCandidate(ctx context.Context, userID, candidateID string) ([]Job, error)
	GetForUser(ctx context.Context, userID, id string) (*Job, error)
	Create(ctx context.Context, userID, candidateID string, upd JobUpdate) (*Job, error)
	Update(ctx context.Context, id, userID, candidateID string, upd JobUpdate) (*Job, error)
	Delete(ctx context.Context, id, userID string) bool
	ListByCandidateID(ctx context.Context, candidateID string) ([]Job, error)
}
