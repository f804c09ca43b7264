package schema

import (
	"context"
	"errors"
	"testing"

	"go-resume-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

// fakeLedger is an in-memory ChangeSetRepository.
type fakeLedger struct {
	rows  map[string]domain.ChangeSet
	saves []domain.ChangeSet
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{rows: make(map[string]domain.ChangeSet)}
}

func (f *fakeLedger) FindByID(ctx context.Context, id string) (*domain.ChangeSet, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	copied := row
	return &copied, nil
}

func (f *fakeLedger) Save(ctx context.Context, cs *domain.ChangeSet) error {
	f.rows[cs.ID] = *cs
	f.saves = append(f.saves, *cs)
	return nil
}

func countingOp(ran *int) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		*ran++
		return nil
	}
}

func TestManagerRun(t *testing.T) {
	ctx := context.Background()

	t.Run("Should apply pending changesets in order and mark them completed", func(t *testing.T) {
		ledger := newFakeLedger()
		var order []string
		defs := []changeSetDef{
			{ID: "changeset-001", Author: "a", Description: "first", Op: func(ctx context.Context) error {
				order = append(order, "first")
				return nil
			}},
			{ID: "changeset-002", Author: "a", Description: "second", Op: func(ctx context.Context) error {
				order = append(order, "second")
				return nil
			}},
		}

		err := NewManager(ledger, defs).Run(ctx)
		assert.NoError(t, err)
		assert.Equal(t, []string{"first", "second"}, order)

		for _, id := range []string{"changeset-001", "changeset-002"} {
			row := ledger.rows[id]
			assert.True(t, row.Completed, id)
			assert.False(t, row.InProgress, id)
			assert.NotZero(t, row.CreatedDate, id)
		}
	})

	t.Run("Should be idempotent across repeated runs", func(t *testing.T) {
		ledger := newFakeLedger()
		ran := 0
		defs := []changeSetDef{
			{ID: "changeset-001", Author: "a", Description: "only once", Op: countingOp(&ran)},
		}
		manager := NewManager(ledger, defs)

		assert.NoError(t, manager.Run(ctx))
		assert.NoError(t, manager.Run(ctx))
		assert.Equal(t, 1, ran)
	})

	t.Run("Should skip a changeset another process left in progress", func(t *testing.T) {
		ledger := newFakeLedger()
		ledger.rows["changeset-001"] = domain.ChangeSet{ID: "changeset-001", InProgress: true}

		ran := 0
		defs := []changeSetDef{
			{ID: "changeset-001", Author: "a", Description: "held", Op: countingOp(&ran)},
		}

		assert.NoError(t, NewManager(ledger, defs).Run(ctx))
		assert.Equal(t, 0, ran)
	})

	t.Run("Should retry a changeset whose prior attempt failed", func(t *testing.T) {
		ledger := newFakeLedger()
		// A failed attempt leaves both flags false.
		ledger.rows["changeset-001"] = domain.ChangeSet{
			ID: "changeset-001", Description: "boom", InProgress: false, Completed: false,
		}

		ran := 0
		defs := []changeSetDef{
			{ID: "changeset-001", Author: "a", Description: "index users", Op: countingOp(&ran)},
		}

		assert.NoError(t, NewManager(ledger, defs).Run(ctx))
		assert.Equal(t, 1, ran)
		assert.True(t, ledger.rows["changeset-001"].Completed)
	})

	t.Run("Should record the failure and stop at the first failing changeset", func(t *testing.T) {
		ledger := newFakeLedger()
		laterRan := 0
		defs := []changeSetDef{
			{ID: "changeset-001", Author: "a", Description: "index users", Op: func(ctx context.Context) error {
				return errors.New("index build failed")
			}},
			{ID: "changeset-002", Author: "a", Description: "never reached", Op: countingOp(&laterRan)},
		}

		err := NewManager(ledger, defs).Run(ctx)
		assert.EqualError(t, err, "index build failed")
		assert.Equal(t, 0, laterRan)

		row := ledger.rows["changeset-001"]
		assert.False(t, row.InProgress)
		assert.False(t, row.Completed)
		// The error text replaces the description for later inspection.
		assert.Equal(t, "index build failed", row.Description)

		_, secondStarted := ledger.rows["changeset-002"]
		assert.False(t, secondStarted)
	})

	t.Run("Should persist an in-progress row before running the operation", func(t *testing.T) {
		ledger := newFakeLedger()
		defs := []changeSetDef{
			{ID: "changeset-001", Author: "a", Description: "index users", Op: func(ctx context.Context) error {
				return nil
			}},
		}

		assert.NoError(t, NewManager(ledger, defs).Run(ctx))

		// First save is the started marker, second flips it to completed.
		assert.Len(t, ledger.saves, 2)
		assert.True(t, ledger.saves[0].InProgress)
		assert.False(t, ledger.saves[0].Completed)
		assert.Equal(t, "index users", ledger.saves[0].Description)
	})
}
