package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fairsplit/internal/expense"
	"fairsplit/internal/money"
)

type fakeExpenses struct {
	expenses []*expense.Expense
}

func (f *fakeExpenses) GetAll(ctx context.Context) ([]*expense.Expense, error) {
	return f.expenses, nil
}

func TestCurrentBalanceMaterializesFromExpenses(t *testing.T) {
	store := NewMemStore()
	svc := NewService(store, &fakeExpenses{expenses: []*expense.Expense{
		exp(1, 1, "Alice", false, map[string]money.Amount{"You": 2000, "Alice": 2000}),
	}})
	ctx := context.Background()

	rec, err := svc.CurrentBalance(ctx, "You")
	require.NoError(t, err)
	assert.Equal(t, map[string]money.Amount{"Alice": 2000}, rec.Owes)

	// The record now lives in the store.
	stored, err := store.Consolidated(ctx, "You")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, rec.Owes, stored.Owes)
}

func TestCurrentBalanceWithNoExpenses(t *testing.T) {
	svc := NewService(NewMemStore(), &fakeExpenses{})

	rec, err := svc.CurrentBalance(context.Background(), "You")
	require.NoError(t, err)
	assert.Empty(t, rec.Owes)
	assert.Empty(t, rec.OwedBy)
	assert.Equal(t, money.Amount(0), rec.NetBalance)
}

func TestGroupBalancesMaterializeAllGroups(t *testing.T) {
	svc := NewService(NewMemStore(), &fakeExpenses{expenses: []*expense.Expense{
		exp(1, 1, "Alice", false, map[string]money.Amount{"You": 2000, "Alice": 2000}),
		exp(2, 2, "You", false, map[string]money.Amount{"You": 1000, "Bob": 1000}),
	}})

	records, err := svc.GroupBalances(context.Background(), "You")
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestRefreshOverwritesSettlementState(t *testing.T) {
	store := NewMemStore()
	svc := NewService(store, &fakeExpenses{expenses: []*expense.Expense{
		exp(1, 1, "Alice", false, map[string]money.Amount{"You": 2000, "Alice": 2000}),
	}})
	ctx := context.Background()

	// Settle everything, then rebuild from expense data. The expense is
	// still unsettled, so the debt comes back.
	require.NoError(t, store.SaveConsolidated(ctx, NewRecord("You", nil)))
	require.NoError(t, svc.Refresh(ctx, "You"))

	rec, err := store.Consolidated(ctx, "You")
	require.NoError(t, err)
	assert.Equal(t, map[string]money.Amount{"Alice": 2000}, rec.Owes)
}

func TestRefreshClearsGroupsThatWentQuiet(t *testing.T) {
	store := NewMemStore()
	src := &fakeExpenses{expenses: []*expense.Expense{
		exp(1, 1, "Alice", false, map[string]money.Amount{"You": 2000, "Alice": 2000}),
		exp(2, 2, "You", false, map[string]money.Amount{"You": 500, "Bob": 500}),
	}}
	svc := NewService(store, src)
	ctx := context.Background()

	require.NoError(t, svc.Refresh(ctx, "You"))

	// Group 1's only expense gets settled; the rebuild must drop its debt
	// from the stored record, not just stop producing a fresh one.
	src.expenses[0].Settled = true
	require.NoError(t, svc.Refresh(ctx, "You"))

	rec, err := svc.CurrentBalance(ctx, "You")
	require.NoError(t, err)
	assert.Empty(t, rec.Owes)
	assert.Equal(t, map[string]money.Amount{"Bob": 500}, rec.OwedBy)
	assert.Equal(t, money.Amount(500), rec.NetBalance)

	gid := int64(1)
	group1, err := store.Group(ctx, "You", gid)
	require.NoError(t, err)
	require.NotNil(t, group1)
	assert.Empty(t, group1.Owes)
}

func TestRefreshAfterEverythingSettled(t *testing.T) {
	store := NewMemStore()
	src := &fakeExpenses{expenses: []*expense.Expense{
		exp(1, 1, "Alice", false, map[string]money.Amount{"You": 2000, "Alice": 2000}),
	}}
	svc := NewService(store, src)
	ctx := context.Background()

	require.NoError(t, svc.Refresh(ctx, "You"))
	src.expenses[0].Settled = true
	require.NoError(t, svc.Refresh(ctx, "You"))

	rec, err := svc.CurrentBalance(ctx, "You")
	require.NoError(t, err)
	assert.Empty(t, rec.Owes)
	assert.Empty(t, rec.OwedBy)
	assert.Equal(t, money.Amount(0), rec.NetBalance)
}

func TestSummary(t *testing.T) {
	svc := NewService(NewMemStore(), &fakeExpenses{expenses: []*expense.Expense{
		exp(1, 1, "Alice", false, map[string]money.Amount{"You": 2000, "Alice": 2000}),
		exp(2, 1, "You", false, map[string]money.Amount{"You": 500, "Bob": 500}),
	}})

	s, err := svc.Summary(context.Background(), "You")
	require.NoError(t, err)
	assert.Equal(t, money.Amount(500), s.TotalOwed)
	assert.Equal(t, money.Amount(2000), s.TotalOwes)
	assert.Equal(t, money.Amount(-1500), s.NetBalance)
	assert.Equal(t, 1, s.NumberOfCreditors)
	assert.Equal(t, 1, s.NumberOfDebtors)
}
