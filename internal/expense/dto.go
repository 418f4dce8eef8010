package expense

import (
	"fmt"

	"fairsplit/internal/expense/split"
	"fairsplit/internal/money"
)

// SplitParticipant names a group member taking part in a split, with the
// per-member value its method needs (amount for custom, percentage for
// percentage splits).
type SplitParticipant struct {
	MemberID   int64    `json:"member_id" validate:"required"`
	Amount     *float64 `json:"amount,omitempty"`
	Percentage *float64 `json:"percentage,omitempty"`
}

// CreateExpenseRequest represents the request to create an expense
type CreateExpenseRequest struct {
	GroupID      int64               `json:"group_id" validate:"required"`
	Description  string              `json:"description" validate:"required,min=1,max=255"`
	Amount       float64             `json:"amount" validate:"required,gt=0"`
	Currency     string              `json:"currency,omitempty"`
	PaidBy       int64               `json:"paid_by" validate:"required"` // member ID of the payer
	Category     string              `json:"category,omitempty"`
	SplitMethod  string              `json:"split_method" validate:"required,oneof=equal custom percentage"`
	Participants []*SplitParticipant `json:"participants" validate:"required,min=1"`
	ReceiptRef   *string             `json:"receipt_ref,omitempty"`
}

// PreviewSplitRequest runs the split calculator without creating anything,
// so the UI can show live share amounts while the user is still editing.
type PreviewSplitRequest struct {
	GroupID      int64               `json:"group_id" validate:"required"`
	Amount       float64             `json:"amount" validate:"required,gt=0"`
	SplitMethod  string              `json:"split_method" validate:"required,oneof=equal custom percentage"`
	Participants []*SplitParticipant `json:"participants" validate:"required,min=1"`
}

// PreviewSplitResponse reports the computed shares plus everything the
// caller needs to decide whether they reconcile with the total.
type PreviewSplitResponse struct {
	Shares          []split.Share `json:"shares"`
	Total           money.Amount  `json:"total"`
	SharesTotal     money.Amount  `json:"shares_total"`
	Reconciles      bool          `json:"reconciles"`
	PercentageTotal *float64      `json:"percentage_total,omitempty"`
}

// UpdateExpenseRequest represents the request to update an expense. Settled
// goes both ways here: POST /expenses/{id}/settle is the one-way shortcut,
// while an update can also reopen a settled expense.
type UpdateExpenseRequest struct {
	Description *string `json:"description,omitempty" validate:"omitempty,min=1,max=255"`
	Category    *string `json:"category,omitempty"`
	ReceiptRef  *string `json:"receipt_ref,omitempty"`
	Settled     *bool   `json:"settled,omitempty"`
}

// method converts the wire representation into the calculator's sealed
// variant type. Unknown method strings die here, at the API boundary.
func method(kind string, participants []*SplitParticipant) (split.Method, error) {
	switch split.Kind(kind) {
	case split.KindEqual:
		return split.Equal{}, nil
	case split.KindCustom:
		amounts := make(map[int64]money.Amount, len(participants))
		for _, p := range participants {
			if p.Amount != nil {
				amounts[p.MemberID] = money.FromFloat(*p.Amount)
			}
		}
		return split.Custom{Amounts: amounts}, nil
	case split.KindPercentage:
		percentages := make(map[int64]float64, len(participants))
		for _, p := range participants {
			if p.Percentage != nil {
				percentages[p.MemberID] = *p.Percentage
			}
		}
		return split.Percentage{Percentages: percentages}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSplitMethod, kind)
	}
}
