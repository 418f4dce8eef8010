package group

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	groups  map[int64]*Group
	nextID  int64
	removed []int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{groups: map[int64]*Group{}}
}

func (f *fakeStore) Create(ctx context.Context, req *CreateGroupRequest) (*Group, error) {
	f.nextID++
	g := &Group{ID: f.nextID, Name: req.Name, Type: req.Type, Currency: req.Currency}
	for _, nm := range req.Members {
		f.nextID++
		g.Members = append(g.Members, &Member{ID: f.nextID, GroupID: g.ID, Name: nm.Name})
	}
	f.groups[g.ID] = g
	return g, nil
}

func (f *fakeStore) GetByID(ctx context.Context, id int64) (*Group, error) {
	return f.groups[id], nil
}

func (f *fakeStore) List(ctx context.Context) ([]*Group, error) {
	var out []*Group
	for _, g := range f.groups {
		out = append(out, g)
	}
	return out, nil
}

func (f *fakeStore) Update(ctx context.Context, id int64, req *UpdateGroupRequest) (*Group, error) {
	g := f.groups[id]
	if req.Name != nil {
		g.Name = *req.Name
	}
	return g, nil
}

func (f *fakeStore) Delete(ctx context.Context, id int64) error {
	delete(f.groups, id)
	return nil
}

func (f *fakeStore) AddMember(ctx context.Context, groupID int64, req *AddMemberRequest) (*Member, error) {
	f.nextID++
	m := &Member{ID: f.nextID, GroupID: groupID, Name: req.Name}
	f.groups[groupID].Members = append(f.groups[groupID].Members, m)
	return m, nil
}

func (f *fakeStore) GetMember(ctx context.Context, groupID, memberID int64) (*Member, error) {
	g := f.groups[groupID]
	if g == nil {
		return nil, nil
	}
	for _, m := range g.Members {
		if m.ID == memberID {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) RemoveMember(ctx context.Context, groupID, memberID int64) error {
	f.removed = append(f.removed, memberID)
	return nil
}

func (f *fakeStore) TouchActivity(ctx context.Context, groupID int64, at time.Time) error {
	f.groups[groupID].RecentActivity = at.Format(time.RFC3339)
	return nil
}

func seed(t *testing.T, svc *Service, names ...string) *Group {
	t.Helper()
	req := &CreateGroupRequest{Name: "Trip", Type: "trip", Currency: "USD"}
	for _, n := range names {
		req.Members = append(req.Members, &NewMember{Name: n})
	}
	g, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	return g
}

func TestGetByIDNotFound(t *testing.T) {
	svc := NewService(newFakeStore())

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestAddMemberRejectsDuplicateName(t *testing.T) {
	svc := NewService(newFakeStore())
	g := seed(t, svc, "You", "Alice")

	_, err := svc.AddMember(context.Background(), g.ID, &AddMemberRequest{Name: "Alice"})
	assert.ErrorIs(t, err, ErrMemberAlreadyExists)

	m, err := svc.AddMember(context.Background(), g.ID, &AddMemberRequest{Name: "Bob"})
	require.NoError(t, err)
	assert.Equal(t, "Bob", m.Name)
}

func TestAddMemberUnknownGroup(t *testing.T) {
	svc := NewService(newFakeStore())

	_, err := svc.AddMember(context.Background(), 42, &AddMemberRequest{Name: "Bob"})
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestRemoveMemberUnknownMember(t *testing.T) {
	svc := NewService(newFakeStore())
	g := seed(t, svc, "You")

	err := svc.RemoveMember(context.Background(), g.ID, 999)
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestListByMemberName(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	seed(t, svc, "You", "Alice")
	seed(t, svc, "Alice", "Bob")

	groups, err := svc.ListByMemberName(context.Background(), "You")
	require.NoError(t, err)
	assert.Len(t, groups, 1)

	groups, err = svc.ListByMemberName(context.Background(), "Alice")
	require.NoError(t, err)
	assert.Len(t, groups, 2)
}
