package settlement

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fairsplit/internal/ledger"
	"fairsplit/internal/money"
)

type recordedEvent struct {
	groupID int64
	typ     string
}

type fakeRecorder struct {
	events []recordedEvent
}

func (f *fakeRecorder) Record(ctx context.Context, groupID int64, typ, message string) {
	f.events = append(f.events, recordedEvent{groupID: groupID, typ: typ})
}

func seedGroup(t *testing.T, store ledger.Store, subject string, groupID int64, owes, owedBy map[string]money.Amount) {
	t.Helper()
	rec := ledger.NewRecord(subject, &groupID)
	for name, amt := range owes {
		rec.Owes[name] = amt
	}
	for name, amt := range owedBy {
		rec.OwedBy[name] = amt
	}
	rec.Recompute()
	require.NoError(t, store.SaveGroup(context.Background(), rec))
}

func TestSettleAll(t *testing.T) {
	store := ledger.NewMemStore()
	recorder := &fakeRecorder{}
	svc := NewService(store, recorder)
	ctx := context.Background()

	seedGroup(t, store, "You", 1, map[string]money.Amount{"Alice": 3500}, nil)
	seedGroup(t, store, "You", 2, nil, map[string]money.Amount{"Bob": 1500})

	rec, err := svc.SettleAll(ctx, "You")
	require.NoError(t, err)
	assert.Empty(t, rec.Owes)
	assert.Empty(t, rec.OwedBy)
	assert.Equal(t, money.Amount(0), rec.NetBalance)

	stored, err := store.Consolidated(ctx, "You")
	require.NoError(t, err)
	assert.Empty(t, stored.Owes)
	assert.Equal(t, money.Amount(0), stored.NetBalance)

	assert.Equal(t, []recordedEvent{{groupID: 0, typ: "settled_all"}}, recorder.events)
}

func TestSettleAllIdempotent(t *testing.T) {
	store := ledger.NewMemStore()
	svc := NewService(store, &fakeRecorder{})
	ctx := context.Background()

	// A subject with no record is already settled; repeating changes nothing.
	first, err := svc.SettleAll(ctx, "You")
	require.NoError(t, err)
	second, err := svc.SettleAll(ctx, "You")
	require.NoError(t, err)

	assert.Equal(t, first.NetBalance, second.NetBalance)
	assert.Empty(t, second.Owes)
	assert.Empty(t, second.OwedBy)
}

func TestSettleGroupRebuildsConsolidated(t *testing.T) {
	store := ledger.NewMemStore()
	recorder := &fakeRecorder{}
	svc := NewService(store, recorder)
	ctx := context.Background()

	seedGroup(t, store, "You", 1, map[string]money.Amount{"Alice": 3500}, nil)
	seedGroup(t, store, "You", 2, map[string]money.Amount{"Alice": 500}, map[string]money.Amount{"Bob": 1500})

	rec, err := svc.SettleGroup(ctx, "You", 1)
	require.NoError(t, err)
	assert.Empty(t, rec.Owes)

	// Group 2 survives, so the consolidated record keeps its entries only.
	cons, err := store.Consolidated(ctx, "You")
	require.NoError(t, err)
	assert.Equal(t, map[string]money.Amount{"Alice": 500}, cons.Owes)
	assert.Equal(t, map[string]money.Amount{"Bob": 1500}, cons.OwedBy)
	assert.Equal(t, money.Amount(1000), cons.NetBalance)

	assert.Equal(t, []recordedEvent{{groupID: 1, typ: "settled_group"}}, recorder.events)
}

func TestSettleWithCounterparty(t *testing.T) {
	store := ledger.NewMemStore()
	svc := NewService(store, &fakeRecorder{})
	ctx := context.Background()

	seedGroup(t, store, "You", 1,
		map[string]money.Amount{"Alice": 2000, "Bob": 500},
		map[string]money.Amount{"Alice": 1500})

	rec, err := svc.SettleWithCounterparty(ctx, "You", "Alice")
	require.NoError(t, err)

	// Alice disappears from both sides; Bob is untouched.
	assert.Equal(t, map[string]money.Amount{"Bob": 500}, rec.Owes)
	assert.Empty(t, rec.OwedBy)
	assert.Equal(t, money.Amount(-500), rec.NetBalance)
}

func TestSettleWithUnknownCounterparty(t *testing.T) {
	store := ledger.NewMemStore()
	svc := NewService(store, &fakeRecorder{})

	rec, err := svc.SettleWithCounterparty(context.Background(), "You", "Nobody")
	require.NoError(t, err)
	assert.Empty(t, rec.Owes)
	assert.Empty(t, rec.OwedBy)
}
