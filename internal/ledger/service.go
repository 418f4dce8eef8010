package ledger

import (
	"context"

	"fairsplit/internal/expense"
)

// ExpenseSource provides the expenses balances are derived from.
type ExpenseSource interface {
	GetAll(ctx context.Context) ([]*expense.Expense, error)
}

// Service serves balance reads. Records are materialized from expense data
// on first access and then live in the store, where settlement operations
// mutate them.
//
// Rebuilding from expenses after a settlement resurrects any cleared
// balances whose underlying expenses are still unsettled; Refresh exists so
// that this is an explicit caller decision, never an implicit side effect of
// a read.
type Service struct {
	store    Store
	expenses ExpenseSource
}

// NewService creates a new balance service
func NewService(store Store, expenses ExpenseSource) *Service {
	return &Service{store: store, expenses: expenses}
}

// CurrentBalance returns the subject's consolidated record, materializing it
// from expense data if the store has none.
func (s *Service) CurrentBalance(ctx context.Context, subject string) (*BalanceRecord, error) {
	rec, err := s.store.Consolidated(ctx, subject)
	if err != nil {
		return nil, err
	}
	if rec != nil {
		return rec, nil
	}

	if err := s.Refresh(ctx, subject); err != nil {
		return nil, err
	}

	rec, err = s.store.Consolidated(ctx, subject)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		rec = NewRecord(subject, nil)
	}
	return rec, nil
}

// GroupBalance returns the subject's record for one group, materializing it
// from expense data if the store has none.
func (s *Service) GroupBalance(ctx context.Context, subject string, groupID int64) (*BalanceRecord, error) {
	rec, err := s.store.Group(ctx, subject, groupID)
	if err != nil {
		return nil, err
	}
	if rec != nil {
		return rec, nil
	}

	expenses, err := s.expenses.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	rec = BuildBalance(subject, &groupID, expenses)
	if len(rec.Owes) > 0 || len(rec.OwedBy) > 0 {
		if err := s.store.SaveGroup(ctx, rec); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

// GroupBalances returns all of the subject's per-group records.
func (s *Service) GroupBalances(ctx context.Context, subject string) ([]*BalanceRecord, error) {
	records, err := s.store.Groups(ctx, subject)
	if err != nil {
		return nil, err
	}
	if len(records) > 0 {
		return records, nil
	}

	if err := s.Refresh(ctx, subject); err != nil {
		return nil, err
	}
	return s.store.Groups(ctx, subject)
}

// Summary condenses the consolidated record into dashboard numbers.
func (s *Service) Summary(ctx context.Context, subject string) (*Summary, error) {
	rec, err := s.CurrentBalance(ctx, subject)
	if err != nil {
		return nil, err
	}
	return Summarize(rec), nil
}

// Refresh rebuilds the subject's balance records from unsettled expense
// data, overwriting any settlement state in the store.
func (s *Service) Refresh(ctx context.Context, subject string) error {
	expenses, err := s.expenses.GetAll(ctx)
	if err != nil {
		return err
	}

	records := BuildGroupBalances(subject, expenses)
	rebuilt := map[int64]bool{}
	for _, rec := range records {
		rebuilt[*rec.GroupID] = true
	}

	// A group whose expenses have all been settled since the last build
	// produces no record anymore, but its old one is still in the store and
	// would leak stale debt into the consolidated rebuild. Clear those first.
	stored, err := s.store.Groups(ctx, subject)
	if err != nil {
		return err
	}
	for _, old := range stored {
		if rebuilt[*old.GroupID] {
			continue
		}
		old.Clear()
		if err := s.store.SaveGroup(ctx, old); err != nil {
			return err
		}
	}

	for _, rec := range records {
		if err := s.store.SaveGroup(ctx, rec); err != nil {
			return err
		}
	}
	if len(records) == 0 && len(stored) == 0 {
		if err := s.store.SaveConsolidated(ctx, NewRecord(subject, nil)); err != nil {
			return err
		}
	}
	return nil
}
