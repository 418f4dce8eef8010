package activity

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles activity data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new activity repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new activity entry into the database. A zero groupID is
// stored as NULL.
func (r *Repository) Create(ctx context.Context, groupID int64, typ, message string) (*Activity, error) {
	query := `
		INSERT INTO activities (group_id, type, message)
		VALUES ($1, $2, $3)
		RETURNING id, COALESCE(group_id, 0), type, message, created_at
	`

	var dbGroupID sql.NullInt64
	if groupID != 0 {
		dbGroupID = sql.NullInt64{Int64: groupID, Valid: true}
	}

	act := &Activity{}
	err := r.db.QueryRowContext(ctx, query, dbGroupID, typ, message).Scan(
		&act.ID,
		&act.GroupID,
		&act.Type,
		&act.Message,
		&act.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}

	return act, nil
}

// List retrieves the most recent activity entries, newest first. When groupID
// is non-zero only that group's entries are returned.
func (r *Repository) List(ctx context.Context, groupID int64, limit int) ([]*Activity, error) {
	query := `
		SELECT id, COALESCE(group_id, 0), type, message, created_at
		FROM activities
	`
	args := []interface{}{}
	if groupID != 0 {
		query += ` WHERE group_id = $1`
		args = append(args, groupID)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var activities []*Activity
	for rows.Next() {
		act := &Activity{}
		if err := rows.Scan(
			&act.ID,
			&act.GroupID,
			&act.Type,
			&act.Message,
			&act.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, act)
	}

	return activities, nil
}
