package ledger

import (
	"fairsplit/internal/expense"
)

// BuildBalance turns a set of expenses into the subject's balance record for
// one scope. groupID nil means the consolidated cross-group view, which is
// built by aggregating every per-group record; that makes the consolidation
// invariant (consolidated == per-counterparty sum of group records) hold by
// construction.
//
// Settled expenses contribute nothing. Mutual debts with the same
// counterparty stay as separate owes/owedBy entries and are never netted
// against each other.
func BuildBalance(subject string, groupID *int64, expenses []*expense.Expense) *BalanceRecord {
	if groupID != nil {
		return buildScope(subject, *groupID, expenses)
	}
	return Consolidate(subject, BuildGroupBalances(subject, expenses))
}

// BuildGroupBalances builds one record per group the subject has unsettled
// activity in.
func BuildGroupBalances(subject string, expenses []*expense.Expense) []*BalanceRecord {
	seen := map[int64]bool{}
	var groupIDs []int64
	for _, e := range expenses {
		if !seen[e.GroupID] {
			seen[e.GroupID] = true
			groupIDs = append(groupIDs, e.GroupID)
		}
	}

	var records []*BalanceRecord
	for _, gid := range groupIDs {
		rec := buildScope(subject, gid, expenses)
		if len(rec.Owes) > 0 || len(rec.OwedBy) > 0 {
			records = append(records, rec)
		}
	}
	return records
}

// Consolidate sums per-group records per counterparty name into the
// subject's cross-group record.
func Consolidate(subject string, records []*BalanceRecord) *BalanceRecord {
	out := NewRecord(subject, nil)
	for _, rec := range records {
		for name, amt := range rec.Owes {
			out.Owes[name] += amt
		}
		for name, amt := range rec.OwedBy {
			out.OwedBy[name] += amt
		}
	}
	out.Recompute()
	return out
}

func buildScope(subject string, groupID int64, expenses []*expense.Expense) *BalanceRecord {
	gid := groupID
	rec := NewRecord(subject, &gid)

	for _, e := range expenses {
		if e.GroupID != groupID || e.Settled {
			continue
		}

		if e.PaidBy == subject {
			// Every other participant owes the subject their share.
			for _, sp := range e.Splits {
				if sp.MemberName == subject {
					continue
				}
				rec.OwedBy[sp.MemberName] += sp.Amount
			}
			continue
		}

		// Subject owes the payer their own share, if they participated.
		for _, sp := range e.Splits {
			if sp.MemberName == subject {
				rec.Owes[e.PaidBy] += sp.Amount
			}
		}
	}

	rec.Recompute()
	return rec
}
