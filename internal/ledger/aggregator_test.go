package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fairsplit/internal/expense"
	"fairsplit/internal/money"
)

func exp(id, groupID int64, paidBy string, settled bool, shares map[string]money.Amount) *expense.Expense {
	e := &expense.Expense{ID: id, GroupID: groupID, PaidBy: paidBy, Settled: settled}
	var mid int64
	for name, amt := range shares {
		mid++
		e.Amount += amt
		e.Splits = append(e.Splits, &expense.Split{
			ExpenseID:  id,
			MemberID:   mid,
			MemberName: name,
			Amount:     amt,
		})
	}
	return e
}

func TestBuildBalanceGroupScope(t *testing.T) {
	expenses := []*expense.Expense{
		// Alice paid 60, You owe your 20 share.
		exp(1, 1, "Alice", false, map[string]money.Amount{"You": 2000, "Alice": 2000, "Bob": 2000}),
		// Alice paid 30 split with You only.
		exp(2, 1, "Alice", false, map[string]money.Amount{"You": 1500, "Alice": 1500}),
		// You paid 30, Bob owes you his share.
		exp(3, 1, "You", false, map[string]money.Amount{"You": 1500, "Bob": 1500}),
	}

	gid := int64(1)
	rec := BuildBalance("You", &gid, expenses)

	assert.Equal(t, map[string]money.Amount{"Alice": 3500}, rec.Owes)
	assert.Equal(t, map[string]money.Amount{"Bob": 1500}, rec.OwedBy)
	assert.Equal(t, money.Amount(-2000), rec.NetBalance)
}

func TestBuildBalanceConsolidatedSumsGroups(t *testing.T) {
	expenses := []*expense.Expense{
		exp(1, 1, "Alice", false, map[string]money.Amount{"You": 2000, "Alice": 2000}),
		exp(2, 1, "Alice", false, map[string]money.Amount{"You": 1500, "Alice": 1500}),
		exp(3, 2, "Alice", false, map[string]money.Amount{"You": 500, "Alice": 500}),
		exp(4, 2, "You", false, map[string]money.Amount{"You": 1000, "Bob": 1500}),
	}

	cons := BuildBalance("You", nil, expenses)

	assert.Equal(t, map[string]money.Amount{"Alice": 4000}, cons.Owes)
	assert.Equal(t, map[string]money.Amount{"Bob": 1500}, cons.OwedBy)
	assert.Equal(t, money.Amount(-2500), cons.NetBalance)

	// The consolidated record equals the per-counterparty sum of the group
	// records, by construction.
	groups := BuildGroupBalances("You", expenses)
	assert.Len(t, groups, 2)
	rebuilt := Consolidate("You", groups)
	assert.Equal(t, cons.Owes, rebuilt.Owes)
	assert.Equal(t, cons.OwedBy, rebuilt.OwedBy)
	assert.Equal(t, cons.NetBalance, rebuilt.NetBalance)
}

func TestBuildBalanceSkipsSettled(t *testing.T) {
	expenses := []*expense.Expense{
		exp(1, 1, "Alice", true, map[string]money.Amount{"You": 2000, "Alice": 2000}),
		exp(2, 1, "Alice", false, map[string]money.Amount{"You": 500, "Alice": 500}),
	}

	gid := int64(1)
	rec := BuildBalance("You", &gid, expenses)

	assert.Equal(t, map[string]money.Amount{"Alice": 500}, rec.Owes)
	assert.Empty(t, rec.OwedBy)
}

func TestBuildBalanceKeepsMutualDebts(t *testing.T) {
	// You owe Alice 20 and she owes you 15; both sides stay visible instead
	// of netting to a single 5 entry.
	expenses := []*expense.Expense{
		exp(1, 1, "Alice", false, map[string]money.Amount{"You": 2000, "Alice": 2000}),
		exp(2, 1, "You", false, map[string]money.Amount{"You": 1500, "Alice": 1500}),
	}

	gid := int64(1)
	rec := BuildBalance("You", &gid, expenses)

	assert.Equal(t, map[string]money.Amount{"Alice": 2000}, rec.Owes)
	assert.Equal(t, map[string]money.Amount{"Alice": 1500}, rec.OwedBy)
	assert.Equal(t, money.Amount(-500), rec.NetBalance)
}

func TestBuildGroupBalancesDropsEmptyGroups(t *testing.T) {
	expenses := []*expense.Expense{
		// A group the subject has no part in.
		exp(1, 7, "Alice", false, map[string]money.Amount{"Alice": 1000, "Bob": 1000}),
		exp(2, 1, "Alice", false, map[string]money.Amount{"You": 500, "Alice": 500}),
	}

	groups := BuildGroupBalances("You", expenses)
	assert.Len(t, groups, 1)
	assert.Equal(t, int64(1), *groups[0].GroupID)
}

func TestRecomputePrunesZeroEntries(t *testing.T) {
	rec := NewRecord("You", nil)
	rec.Owes["Alice"] = 1000
	rec.Owes["Bob"] = 0
	rec.OwedBy["Carol"] = -5
	rec.Recompute()

	assert.Equal(t, map[string]money.Amount{"Alice": 1000}, rec.Owes)
	assert.Empty(t, rec.OwedBy)
	assert.Equal(t, money.Amount(-1000), rec.NetBalance)
}

func TestSummarize(t *testing.T) {
	rec := NewRecord("You", nil)
	rec.Owes["Alice"] = 2500
	rec.Owes["Bob"] = 500
	rec.OwedBy["Carol"] = 1000
	rec.Recompute()

	s := Summarize(rec)
	assert.Equal(t, money.Amount(1000), s.TotalOwed)
	assert.Equal(t, money.Amount(3000), s.TotalOwes)
	assert.Equal(t, money.Amount(-2000), s.NetBalance)
	assert.Equal(t, 2, s.NumberOfCreditors)
	assert.Equal(t, 1, s.NumberOfDebtors)
}
