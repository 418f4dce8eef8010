package activity

import "time"

// Activity is one entry in the activity feed. GroupID is 0 when the event is
// not tied to a single group, e.g. a settle-all.
type Activity struct {
	ID        int64     `json:"id"`
	GroupID   int64     `json:"group_id,omitempty"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Activity types recorded by the rest of the system.
const (
	TypeExpenseAdded = "EXPENSE_ADDED"
	TypeSettlement   = "SETTLEMENT"
	TypeMemberAdded  = "MEMBER_ADDED"
)
