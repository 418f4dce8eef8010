package ledger

import (
	"context"
	"errors"
	"sync"
)

// ErrNotGroupScoped is returned when a consolidated record is passed to
// SaveGroup.
var ErrNotGroupScoped = errors.New("record is not group-scoped")

// Store persists balance records. One record exists per (subject, group)
// pair plus one consolidated record per subject.
//
// SaveGroup rebuilds and persists the consolidated record in the same call,
// so the "consolidated equals the sum of the group records" invariant is
// restored transactionally with every group-level mutation; callers cannot
// forget it. Only the settlement operations that the contract defines over
// the consolidated view (settle-all, settle-with-counterparty) write it
// directly via SaveConsolidated.
type Store interface {
	// Consolidated returns the subject's cross-group record, or nil if the
	// subject has none.
	Consolidated(ctx context.Context, subject string) (*BalanceRecord, error)

	// Group returns the subject's record for one group, or nil.
	Group(ctx context.Context, subject string, groupID int64) (*BalanceRecord, error)

	// Groups returns all of the subject's per-group records.
	Groups(ctx context.Context, subject string) ([]*BalanceRecord, error)

	// SaveGroup upserts a per-group record, then rebuilds and persists the
	// subject's consolidated record from all surviving group records.
	SaveGroup(ctx context.Context, rec *BalanceRecord) error

	// SaveConsolidated upserts the subject's consolidated record as-is.
	SaveConsolidated(ctx context.Context, rec *BalanceRecord) error
}

// MemStore is an in-memory Store used by tests and as a fallback when no
// database is configured.
type MemStore struct {
	mu           sync.RWMutex
	groups       map[string]map[int64]*BalanceRecord
	consolidated map[string]*BalanceRecord
}

// NewMemStore creates an empty in-memory balance store.
func NewMemStore() *MemStore {
	return &MemStore{
		groups:       map[string]map[int64]*BalanceRecord{},
		consolidated: map[string]*BalanceRecord{},
	}
}

func (s *MemStore) Consolidated(ctx context.Context, subject string) (*BalanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.consolidated[subject]
	if !ok {
		return nil, nil
	}
	return rec.Clone(), nil
}

func (s *MemStore) Group(ctx context.Context, subject string, groupID int64) (*BalanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.groups[subject][groupID]
	if !ok {
		return nil, nil
	}
	return rec.Clone(), nil
}

func (s *MemStore) Groups(ctx context.Context, subject string) ([]*BalanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var records []*BalanceRecord
	for _, rec := range s.groups[subject] {
		records = append(records, rec.Clone())
	}
	return records, nil
}

func (s *MemStore) SaveGroup(ctx context.Context, rec *BalanceRecord) error {
	if rec.GroupID == nil {
		return ErrNotGroupScoped
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.groups[rec.Subject] == nil {
		s.groups[rec.Subject] = map[int64]*BalanceRecord{}
	}
	s.groups[rec.Subject][*rec.GroupID] = rec.Clone()

	var groupRecords []*BalanceRecord
	for _, g := range s.groups[rec.Subject] {
		groupRecords = append(groupRecords, g)
	}
	s.consolidated[rec.Subject] = Consolidate(rec.Subject, groupRecords)

	return nil
}

func (s *MemStore) SaveConsolidated(ctx context.Context, rec *BalanceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.consolidated[rec.Subject] = rec.Clone()
	return nil
}
