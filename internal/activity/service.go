package activity

import (
	"context"
	"log/slog"
)

// Store handles activity persistence
type Store interface {
	Create(ctx context.Context, groupID int64, typ, message string) (*Activity, error)
	List(ctx context.Context, groupID int64, limit int) ([]*Activity, error)
}

// Service handles activity feed business logic
type Service struct {
	store Store
}

// NewService creates a new activity service
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Record appends an entry to the activity feed. The feed is best-effort:
// a failed write is logged, never surfaced, so it can't fail the operation
// that produced the event.
func (s *Service) Record(ctx context.Context, groupID int64, typ, message string) {
	if _, err := s.store.Create(ctx, groupID, typ, message); err != nil {
		slog.Warn("failed to record activity",
			"type", typ,
			"group_id", groupID,
			"error", err)
	}
}

// List returns the most recent activity entries, newest first.
func (s *Service) List(ctx context.Context, groupID int64, limit int) ([]*Activity, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.store.List(ctx, groupID, limit)
}
