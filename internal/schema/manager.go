// Package schema applies one-time, ordered schema changesets against the
// store, keeping a persisted ledger so each operation runs at most once.
package schema

import (
	"context"
	"time"

	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/logger"
)

// changeSetDef pairs a ledger identity with the operation it guards.
// Ids are stable keys: once shipped they must never be reordered or
// renumbered, since the ledger is keyed by id, not position.
type changeSetDef struct {
	ID          string
	Author      string
	Description string
	Op          func(ctx context.Context) error
}

type Manager struct {
	repo       domain.ChangeSetRepository
	changeSets []changeSetDef
}

func NewManager(repo domain.ChangeSetRepository, changeSets []changeSetDef) *Manager {
	return &Manager{repo: repo, changeSets: changeSets}
}

// Run applies every pending changeset in declaration order. The first
// failure aborts the run; the process must not start serving traffic
// with a partially migrated index set.
func (m *Manager) Run(ctx context.Context) error {
	for _, cs := range m.changeSets {
		if err := m.apply(ctx, cs); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) apply(ctx context.Context, def changeSetDef) error {
	logger.Log.Debug("Starting change set", "id", def.ID, "author", def.Author, "description", def.Description)

	existing, err := m.repo.FindByID(ctx, def.ID)
	if err != nil {
		return err
	}

	// Apply when unapplied, or when a prior attempt ended in failure.
	// In-progress and completed rows are skipped.
	if existing != nil && (existing.InProgress || existing.Completed) {
		logger.Log.Debug("Skipping change set, already applied", "id", def.ID)
		return nil
	}

	started := &domain.ChangeSet{
		ID:          def.ID,
		Author:      def.Author,
		Description: def.Description,
		CreatedDate: time.Now().UnixMilli(),
		InProgress:  true,
	}
	if err := m.repo.Save(ctx, started); err != nil {
		return err
	}

	logger.Log.Info("Running change set", "id", def.ID, "author", def.Author, "description", def.Description)
	if err := def.Op(ctx); err != nil {
		logger.Log.Error("Change set failed", "id", def.ID, "error", err)
		failed := &domain.ChangeSet{
			ID:          def.ID,
			Author:      def.Author,
			Description: err.Error(),
			CreatedDate: started.CreatedDate,
			InProgress:  false,
			Completed:   false,
		}
		if saveErr := m.repo.Save(ctx, failed); saveErr != nil {
			logger.Log.Error("Failed to record change set failure", "id", def.ID, "error", saveErr)
		}
		// Propagate to stop initialization.
		return err
	}

	done, err := m.repo.FindByID(ctx, def.ID)
	if err != nil {
		return err
	}
	if done != nil {
		done.InProgress = false
		done.Completed = true
		if err := m.repo.Save(ctx, done); err != nil {
			return err
		}
	}

	logger.Log.Debug("Completed change set", "id", def.ID)
	return nil
}
