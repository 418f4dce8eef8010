package split

import (
	"errors"

	"fairsplit/internal/money"
)

var (
	ErrNoMembers         = errors.New("at least one member is required")
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")
	ErrNilMethod         = errors.New("split method is required")
	ErrSplitMismatch     = errors.New("split amounts don't add up to the total expense")
)

// Participant is a group member taking part in a split.
type Participant struct {
	ID   int64
	Name string
}

// Share is one participant's computed portion of an expense.
type Share struct {
	MemberID   int64        `json:"member_id"`
	MemberName string       `json:"member_name"`
	Amount     money.Amount `json:"amount"`
}

// Calculate turns a total amount, a split method, and a member list into
// per-member shares.
//
// Calculate is a pure function intended for both expense creation and live
// previews, so it deliberately does not reject shares that fail to reconcile
// with the total (custom amounts may still be mid-edit). Reconciliation is
// enforced at expense creation by Validate.
func Calculate(total money.Amount, method Method, members []Participant) ([]Share, error) {
	if method == nil {
		return nil, ErrNilMethod
	}
	if len(members) == 0 {
		return nil, ErrNoMembers
	}
	if total <= 0 {
		return nil, ErrNonPositiveAmount
	}

	shares := make([]Share, len(members))
	for i, m := range members {
		shares[i] = Share{MemberID: m.ID, MemberName: m.Name}
	}

	switch m := method.(type) {
	case Equal:
		// Integer division leaves a remainder of at most len(members)-1
		// cents; it all goes to the first member so the sum reconciles
		// exactly instead of drifting.
		per := total / money.Amount(len(members))
		for i := range shares {
			shares[i].Amount = per
		}
		shares[0].Amount += total - per*money.Amount(len(members))
	case Custom:
		for i, p := range members {
			shares[i].Amount = m.Amounts[p.ID]
		}
	case Percentage:
		for i, p := range members {
			shares[i].Amount = money.FromFloat(total.Float() * m.Percentages[p.ID] / 100)
		}
	}

	return shares, nil
}

// Validate checks that the shares reconcile with the expense total within
// one minor unit. Percentages that do not sum to 100 fail here naturally.
func Validate(total money.Amount, shares []Share) error {
	var sum money.Amount
	for _, s := range shares {
		sum += s.Amount
	}
	if (sum - total).Abs() > money.Tolerance {
		return ErrSplitMismatch
	}
	return nil
}
