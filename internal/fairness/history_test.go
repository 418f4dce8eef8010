package fairness

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fairsplit/internal/expense"
	"fairsplit/internal/money"
)

func expenseAt(paidBy string, created time.Time, settled bool, shares map[string]money.Amount) *expense.Expense {
	e := &expense.Expense{GroupID: 1, PaidBy: paidBy, Settled: settled, CreatedAt: created}
	for name, amt := range shares {
		e.Amount += amt
		e.Splits = append(e.Splits, &expense.Split{MemberName: name, Amount: amt})
	}
	return e
}

func TestBuildHistory(t *testing.T) {
	jan := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, time.February, 3, 0, 0, 0, 0, time.UTC)

	expenses := []*expense.Expense{
		// You paid 60; only Alice's 30 share counts as contribution.
		expenseAt("You", jan, false, map[string]money.Amount{"You": 3000, "Alice": 3000}),
		// Alice paid; your 10 share is received.
		expenseAt("Alice", jan, false, map[string]money.Amount{"You": 1000, "Alice": 1000}),
		// Settled expenses still shape the history.
		expenseAt("Alice", feb, true, map[string]money.Amount{"You": 2000}),
	}

	history := BuildHistory("You", expenses)
	require.Len(t, history, 2)

	assert.Equal(t, "2026-01", history[0].Period)
	assert.Equal(t, money.Amount(3000), history[0].Contributed)
	assert.Equal(t, money.Amount(1000), history[0].Received)
	assert.Equal(t, money.Amount(2000), history[0].NetContribution)
	assert.Equal(t, 100, history[0].FairnessRating)

	assert.Equal(t, "2026-02", history[1].Period)
	assert.Equal(t, money.Amount(0), history[1].Contributed)
	assert.Equal(t, money.Amount(2000), history[1].Received)
	assert.Equal(t, money.Amount(-2000), history[1].NetContribution)
	assert.Equal(t, 25, history[1].FairnessRating)
}

func TestBuildHistoryIgnoresUnrelatedExpenses(t *testing.T) {
	jan := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)

	expenses := []*expense.Expense{
		// An expense the subject neither paid nor participated in still
		// creates the period bucket, with zero amounts.
		expenseAt("Alice", jan, false, map[string]money.Amount{"Alice": 1000, "Bob": 1000}),
	}

	history := BuildHistory("You", expenses)
	require.Len(t, history, 1)
	assert.Equal(t, money.Amount(0), history[0].Contributed)
	assert.Equal(t, money.Amount(0), history[0].Received)
}
