package domain

import "context"

// ChangeSet is the persisted ledger row for a one-time schema operation.
// A changeset is in exactly one of four states:
//
//	unapplied        no row
//	in progress      InProgress=true,  Completed=false
//	applied          InProgress=false, Completed=true
//	failed           InProgress=false, Completed=false (Description holds the error)
//
// Failed changesets are retried on the next run; in-progress and applied
// ones are skipped.
type ChangeSet struct {
	ID          string
	Author      string
	Description string
	CreatedDate int64 // epoch millis
	InProgress  bool
	Completed   bool
}

type ChangeSetRepository interface {
	FindByID(ctx context.Context, id string) (*ChangeSet, error)
	Save(ctx context.Context, cs *ChangeSet) error
}
