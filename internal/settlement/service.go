package settlement

import (
	"context"
	"fmt"
	"sync"

	"fairsplit/internal/ledger"
	"fairsplit/pkg/metrics"
)

// Recorder appends entries to the activity feed. groupID 0 means the event
// is not tied to a single group.
type Recorder interface {
	Record(ctx context.Context, groupID int64, typ, message string)
}

// Service clears balances. It is the only writer of settlement state; the
// ledger store's pure functions have no way to serialize concurrent callers,
// so the engine holds a per-subject lock around every read-modify-write.
//
// Settling never touches the underlying expenses. A later rebuild of
// balances from expense data (ledger.Service.Refresh) will therefore
// resurrect cleared debts whose expenses are still unsettled; that is
// inherited behavior, kept deliberately, and callers own the decision to
// also settle the expenses themselves.
type Service struct {
	store    ledger.Store
	activity Recorder

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewService creates a new settlement service
func NewService(store ledger.Store, activity Recorder) *Service {
	return &Service{
		store:    store,
		activity: activity,
		locks:    map[string]*sync.Mutex{},
	}
}

// SettleAll clears the subject's consolidated record: empty maps, zero net.
// Idempotent; a subject with no record gets a fresh zero record, since a
// missing balance is semantically already settled.
func (s *Service) SettleAll(ctx context.Context, subject string) (*ledger.BalanceRecord, error) {
	unlock := s.lock(subject)
	defer unlock()

	rec, err := s.store.Consolidated(ctx, subject)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		rec = ledger.NewRecord(subject, nil)
	}
	rec.Clear()

	if err := s.store.SaveConsolidated(ctx, rec); err != nil {
		return nil, err
	}

	metrics.Settlements.WithLabelValues("all").Inc()
	s.activity.Record(ctx, 0, "settled_all", fmt.Sprintf("%s settled all balances", subject))

	return rec, nil
}

// SettleGroup clears the subject's record for one group. The store rebuilds
// the consolidated record from the surviving group records in the same
// operation.
func (s *Service) SettleGroup(ctx context.Context, subject string, groupID int64) (*ledger.BalanceRecord, error) {
	unlock := s.lock(subject)
	defer unlock()

	rec, err := s.store.Group(ctx, subject, groupID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		rec = ledger.NewRecord(subject, &groupID)
	}
	rec.Clear()

	if err := s.store.SaveGroup(ctx, rec); err != nil {
		return nil, err
	}

	metrics.Settlements.WithLabelValues("group").Inc()
	s.activity.Record(ctx, groupID, "settled_group", fmt.Sprintf("%s settled up in this group", subject))

	return rec, nil
}

// SettleWithCounterparty removes one counterparty from both sides of the
// subject's consolidated record, wherever their debts originated, and
// re-derives the net balance.
func (s *Service) SettleWithCounterparty(ctx context.Context, subject, counterparty string) (*ledger.BalanceRecord, error) {
	unlock := s.lock(subject)
	defer unlock()

	rec, err := s.store.Consolidated(ctx, subject)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		rec = ledger.NewRecord(subject, nil)
	}

	delete(rec.Owes, counterparty)
	delete(rec.OwedBy, counterparty)
	rec.Recompute()

	if err := s.store.SaveConsolidated(ctx, rec); err != nil {
		return nil, err
	}

	metrics.Settlements.WithLabelValues("counterparty").Inc()
	s.activity.Record(ctx, 0, "settled_counterparty",
		fmt.Sprintf("%s settled up with %s", subject, counterparty))

	return rec, nil
}

// lock serializes settlement operations per subject.
func (s *Service) lock(subject string) func() {
	s.mu.Lock()
	m, ok := s.locks[subject]
	if !ok {
		m = &sync.Mutex{}
		s.locks[subject] = m
	}
	s.mu.Unlock()

	m.Lock()
	return m.Unlock
}
