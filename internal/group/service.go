package group

import (
	"context"
	"errors"
	"time"
)

// Common errors
var (
	ErrGroupNotFound       = errors.New("group not found")
	ErrMemberNotFound      = errors.New("member not found")
	ErrMemberAlreadyExists = errors.New("a member with this name already exists in the group")
)

// Store abstracts group persistence so the service can be tested against an
// in-memory implementation.
type Store interface {
	Create(ctx context.Context, req *CreateGroupRequest) (*Group, error)
	GetByID(ctx context.Context, id int64) (*Group, error)
	List(ctx context.Context) ([]*Group, error)
	Update(ctx context.Context, id int64, req *UpdateGroupRequest) (*Group, error)
	Delete(ctx context.Context, id int64) error
	AddMember(ctx context.Context, groupID int64, req *AddMemberRequest) (*Member, error)
	GetMember(ctx context.Context, groupID, memberID int64) (*Member, error)
	RemoveMember(ctx context.Context, groupID, memberID int64) error
	TouchActivity(ctx context.Context, groupID int64, at time.Time) error
}

// Service handles group business logic
type Service struct {
	store Store
}

// NewService creates a new group service
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Create creates a new group along with its initial members
func (s *Service) Create(ctx context.Context, req *CreateGroupRequest) (*Group, error) {
	return s.store.Create(ctx, req)
}

// GetByID retrieves a group with its members
func (s *Service) GetByID(ctx context.Context, id int64) (*Group, error) {
	group, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}
	return group, nil
}

// List retrieves all groups with their members
func (s *Service) List(ctx context.Context) ([]*Group, error) {
	return s.store.List(ctx)
}

// ListByMemberName retrieves the groups a person belongs to
func (s *Service) ListByMemberName(ctx context.Context, name string) ([]*Group, error) {
	groups, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*Group, 0, len(groups))
	for _, g := range groups {
		for _, m := range g.Members {
			if m.Name == name {
				matched = append(matched, g)
				break
			}
		}
	}
	return matched, nil
}

// Update modifies an existing group
func (s *Service) Update(ctx context.Context, id int64, req *UpdateGroupRequest) (*Group, error) {
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrGroupNotFound
	}

	return s.store.Update(ctx, id, req)
}

// Delete removes a group and its members
func (s *Service) Delete(ctx context.Context, id int64) error {
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrGroupNotFound
	}
	return s.store.Delete(ctx, id)
}

// AddMember adds a person to a group
func (s *Service) AddMember(ctx context.Context, groupID int64, req *AddMemberRequest) (*Member, error) {
	group, err := s.store.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}

	for _, m := range group.Members {
		if m.Name == req.Name {
			return nil, ErrMemberAlreadyExists
		}
	}

	return s.store.AddMember(ctx, groupID, req)
}

// RemoveMember removes a person from a group
func (s *Service) RemoveMember(ctx context.Context, groupID, memberID int64) error {
	member, err := s.store.GetMember(ctx, groupID, memberID)
	if err != nil {
		return err
	}
	if member == nil {
		return ErrMemberNotFound
	}
	return s.store.RemoveMember(ctx, groupID, memberID)
}

// TouchActivity stamps the group's recent-activity marker
func (s *Service) TouchActivity(ctx context.Context, groupID int64) error {
	return s.store.TouchActivity(ctx, groupID, time.Now())
}
