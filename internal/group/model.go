package group

import "time"

// Group represents a shared-expense group. Members are owned by the group:
// they are created and removed through it and have no life of their own.
type Group struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Type           string    `json:"type"` // e.g. "trip", "home", "couple", "other"
	Currency       string    `json:"currency"`
	RecentActivity string    `json:"recent_activity,omitempty"`
	CreatedAt      time.Time `json:"created_at"`

	// Populated on reads that include membership
	Members []*Member `json:"members,omitempty"`
}

// Member is a participant in a group. IDs are assigned by the database and
// never reused, so a removed member's id stays dead.
type Member struct {
	ID        int64     `json:"id"`
	GroupID   int64     `json:"group_id"`
	Name      string    `json:"name"`
	AvatarRef *string   `json:"avatar_ref,omitempty"`
	JoinedAt  time.Time `json:"joined_at"`
}
