package group

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Repository is the Postgres implementation of Store
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new group repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new group and its initial members
func (r *Repository) Create(ctx context.Context, req *CreateGroupRequest) (*Group, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO groups (name, type, currency)
		VALUES ($1, $2, $3)
		RETURNING id, name, type, currency, recent_activity, created_at
	`

	group := &Group{}
	var recentActivity sql.NullString
	err = tx.QueryRowContext(ctx, query, req.Name, req.Type, req.Currency).Scan(
		&group.ID,
		&group.Name,
		&group.Type,
		&group.Currency,
		&recentActivity,
		&group.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}
	group.RecentActivity = recentActivity.String

	memberQuery := `
		INSERT INTO group_members (group_id, name, avatar_ref)
		VALUES ($1, $2, $3)
		RETURNING id, group_id, name, avatar_ref, joined_at
	`
	for _, nm := range req.Members {
		member := &Member{}
		err = tx.QueryRowContext(ctx, memberQuery, group.ID, nm.Name, nm.AvatarRef).Scan(
			&member.ID,
			&member.GroupID,
			&member.Name,
			&member.AvatarRef,
			&member.JoinedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to add member: %w", err)
		}
		group.Members = append(group.Members, member)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit group creation: %w", err)
	}

	return group, nil
}

// GetByID retrieves a group with its members, or nil if it does not exist
func (r *Repository) GetByID(ctx context.Context, id int64) (*Group, error) {
	query := `
		SELECT id, name, type, currency, recent_activity, created_at
		FROM groups
		WHERE id = $1
	`

	group := &Group{}
	var recentActivity sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&group.ID,
		&group.Name,
		&group.Type,
		&group.Currency,
		&recentActivity,
		&group.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	group.RecentActivity = recentActivity.String

	members, err := r.getMembers(ctx, id)
	if err != nil {
		return nil, err
	}
	group.Members = members

	return group, nil
}

// List retrieves all groups with their members
func (r *Repository) List(ctx context.Context) ([]*Group, error) {
	query := `
		SELECT id, name, type, currency, recent_activity, created_at
		FROM groups
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var groups []*Group
	for rows.Next() {
		group := &Group{}
		var recentActivity sql.NullString
		if err := rows.Scan(
			&group.ID,
			&group.Name,
			&group.Type,
			&group.Currency,
			&recentActivity,
			&group.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		group.RecentActivity = recentActivity.String
		groups = append(groups, group)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}

	for _, g := range groups {
		members, err := r.getMembers(ctx, g.ID)
		if err != nil {
			return nil, err
		}
		g.Members = members
	}

	return groups, nil
}

// Update modifies an existing group
func (r *Repository) Update(ctx context.Context, id int64, req *UpdateGroupRequest) (*Group, error) {
	query := `
		UPDATE groups
		SET name = COALESCE($2, name),
		    type = COALESCE($3, type),
		    currency = COALESCE($4, currency)
		WHERE id = $1
	`

	if _, err := r.db.ExecContext(ctx, query, id, req.Name, req.Type, req.Currency); err != nil {
		return nil, fmt.Errorf("failed to update group: %w", err)
	}

	return r.GetByID(ctx, id)
}

// Delete removes a group; members are removed via ON DELETE CASCADE
func (r *Repository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM groups WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	return nil
}

// AddMember inserts a new member into a group
func (r *Repository) AddMember(ctx context.Context, groupID int64, req *AddMemberRequest) (*Member, error) {
	query := `
		INSERT INTO group_members (group_id, name, avatar_ref)
		VALUES ($1, $2, $3)
		RETURNING id, group_id, name, avatar_ref, joined_at
	`

	member := &Member{}
	err := r.db.QueryRowContext(ctx, query, groupID, req.Name, req.AvatarRef).Scan(
		&member.ID,
		&member.GroupID,
		&member.Name,
		&member.AvatarRef,
		&member.JoinedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	return member, nil
}

// GetMember retrieves a single member of a group, or nil if absent
func (r *Repository) GetMember(ctx context.Context, groupID, memberID int64) (*Member, error) {
	query := `
		SELECT id, group_id, name, avatar_ref, joined_at
		FROM group_members
		WHERE group_id = $1 AND id = $2
	`

	member := &Member{}
	err := r.db.QueryRowContext(ctx, query, groupID, memberID).Scan(
		&member.ID,
		&member.GroupID,
		&member.Name,
		&member.AvatarRef,
		&member.JoinedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return member, nil
}

// RemoveMember deletes a member from a group
func (r *Repository) RemoveMember(ctx context.Context, groupID, memberID int64) error {
	query := `DELETE FROM group_members WHERE group_id = $1 AND id = $2`
	if _, err := r.db.ExecContext(ctx, query, groupID, memberID); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}
	return nil
}

// TouchActivity stamps the group's recent-activity marker
func (r *Repository) TouchActivity(ctx context.Context, groupID int64, at time.Time) error {
	query := `UPDATE groups SET recent_activity = $2 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, groupID, at.Format("2006-01-02")); err != nil {
		return fmt.Errorf("failed to touch group activity: %w", err)
	}
	return nil
}

func (r *Repository) getMembers(ctx context.Context, groupID int64) ([]*Member, error) {
	query := `
		SELECT id, group_id, name, avatar_ref, joined_at
		FROM group_members
		WHERE group_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}
	defer rows.Close()

	var members []*Member
	for rows.Next() {
		member := &Member{}
		if err := rows.Scan(
			&member.ID,
			&member.GroupID,
			&member.Name,
			&member.AvatarRef,
			&member.JoinedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}

	return members, nil
}
