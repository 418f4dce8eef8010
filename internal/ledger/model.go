package ledger

import "fairsplit/internal/money"

// BalanceRecord is a subject's owing relationships within one scope: a
// single group, or the consolidated cross-group view when GroupID is nil.
//
// Both maps hold strictly positive amounts keyed by counterparty display
// name; a relationship that reaches zero is removed, never stored as zero.
// NetBalance is always derived from the maps.
type BalanceRecord struct {
	Subject    string                  `json:"subject"`
	GroupID    *int64                  `json:"group_id,omitempty"`
	Owes       map[string]money.Amount `json:"owes"`
	OwedBy     map[string]money.Amount `json:"owed_by"`
	NetBalance money.Amount            `json:"net_balance"`
}

// NewRecord returns an empty zero-balance record for the given scope.
func NewRecord(subject string, groupID *int64) *BalanceRecord {
	return &BalanceRecord{
		Subject: subject,
		GroupID: groupID,
		Owes:    map[string]money.Amount{},
		OwedBy:  map[string]money.Amount{},
	}
}

// Recompute prunes non-positive entries and re-derives NetBalance from the
// maps. Every mutation of a record goes through this before the record is
// read or stored.
func (r *BalanceRecord) Recompute() {
	var owed, owes money.Amount
	for name, amt := range r.OwedBy {
		if amt <= 0 {
			delete(r.OwedBy, name)
			continue
		}
		owed += amt
	}
	for name, amt := range r.Owes {
		if amt <= 0 {
			delete(r.Owes, name)
			continue
		}
		owes += amt
	}
	r.NetBalance = owed - owes
}

// Clear empties both maps and zeroes the net balance.
func (r *BalanceRecord) Clear() {
	r.Owes = map[string]money.Amount{}
	r.OwedBy = map[string]money.Amount{}
	r.NetBalance = 0
}

// Clone returns a deep copy so stores never hand out shared maps.
func (r *BalanceRecord) Clone() *BalanceRecord {
	c := NewRecord(r.Subject, r.GroupID)
	for name, amt := range r.Owes {
		c.Owes[name] = amt
	}
	for name, amt := range r.OwedBy {
		c.OwedBy[name] = amt
	}
	c.NetBalance = r.NetBalance
	return c
}

// Summary condenses a record into the headline numbers the dashboard shows.
type Summary struct {
	TotalOwed         money.Amount `json:"total_owed"`
	TotalOwes         money.Amount `json:"total_owes"`
	NetBalance        money.Amount `json:"net_balance"`
	NumberOfCreditors int          `json:"number_of_creditors"`
	NumberOfDebtors   int          `json:"number_of_debtors"`
}

// Summarize derives the summary from a record.
func Summarize(r *BalanceRecord) *Summary {
	s := &Summary{
		NumberOfCreditors: len(r.Owes),
		NumberOfDebtors:   len(r.OwedBy),
	}
	for _, amt := range r.OwedBy {
		s.TotalOwed += amt
	}
	for _, amt := range r.Owes {
		s.TotalOwes += amt
	}
	s.NetBalance = s.TotalOwed - s.TotalOwes
	return s
}
