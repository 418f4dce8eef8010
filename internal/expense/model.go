package expense

import (
	"time"

	"fairsplit/internal/expense/split"
	"fairsplit/internal/money"
)

// Expense represents a shared expense in the system. Amounts are stored in
// the expense's native currency and never cross-converted; the currency
// service exists for display only.
type Expense struct {
	ID          int64        `json:"id"`
	GroupID     int64        `json:"group_id"`
	Description string       `json:"description"`
	Amount      money.Amount `json:"amount"`
	Currency    string       `json:"currency"`
	PaidBy      string       `json:"paid_by"` // payer's display name
	Category    string       `json:"category"`
	SplitMethod split.Kind   `json:"split_method"`
	Settled     bool         `json:"settled"`
	ReceiptRef  *string      `json:"receipt_ref,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`

	Splits []*Split `json:"split_between,omitempty"`
}

// Split is one member's share of an expense, persisted alongside it. The
// creation validator guarantees the shares of an expense sum to its amount
// within one minor unit; that invariant is not re-checked retroactively.
type Split struct {
	ID         int64        `json:"id"`
	ExpenseID  int64        `json:"expense_id"`
	MemberID   int64        `json:"member_id"`
	MemberName string       `json:"member_name"`
	Amount     money.Amount `json:"amount"`
}

// ReceiptScan is the result of the mocked receipt OCR.
type ReceiptScan struct {
	Description string       `json:"description"`
	Amount      money.Amount `json:"amount"`
	Category    string       `json:"category"`
	ReceiptRef  string       `json:"receipt_ref"`
}
