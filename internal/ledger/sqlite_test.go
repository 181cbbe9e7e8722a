package ledger

import (
	"path/filepath"
	"testing"
	"time"

	"market-simulator/internal/simerrors"

	model "market-simulator/internal/models"

	"github.com/stretchr/testify/require"
)

func openTestLedger(t *testing.T) *SQLiteLedger {
	t.Helper()

	l, err := OpenSQLite(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { l.Close() })
	return l
}

// Test schema init plus seed idempotency
func TestSQLiteLedger_Seed(t *testing.T) {
	t.Parallel()

	l := openTestLedger(t)
	seed := DefaultSeed()

	require.NoError(t, l.Seed(seed))
	// Seeding twice must not duplicate rows
	require.NoError(t, l.Seed(seed))

	bidders, err := l.GetParticipants(model.KindAuction)
	require.NoError(t, err)
	require.Len(t, bidders, 3)

	buyers, err := l.GetParticipants(model.KindNegotiation)
	require.NoError(t, err)
	require.Len(t, buyers, 3)

	items, err := l.GetItems(model.KindAuction)
	require.NoError(t, err)
	require.Len(t, items, 3)

	bicycles, err := l.GetItems(model.KindNegotiation)
	require.NoError(t, err)
	require.Len(t, bicycles, 3)
	for _, b := range bicycles {
		require.NotEmpty(t, b.SellerName)
		require.False(t, b.IsSold)
	}
}

// Test batch fetches are parameterized by key set and skip unknown IDs
func TestSQLiteLedger_SnapshotsByIDs(t *testing.T) {
	t.Parallel()

	l := openTestLedger(t)
	require.NoError(t, l.Seed(DefaultSeed()))

	tests := []struct {
		name      string
		kind      model.RunKind
		ids       []string
		wantCount int
	}{
		{name: "all_known", kind: model.KindAuction, ids: []string{"bidder-1", "bidder-2", "bidder-3"}, wantCount: 3},
		{name: "unknown_skipped", kind: model.KindAuction, ids: []string{"bidder-1", "ghost"}, wantCount: 1},
		{name: "wrong_kind_skipped", kind: model.KindAuction, ids: []string{"buyer-1"}, wantCount: 0},
		{name: "empty_set", kind: model.KindAuction, ids: nil, wantCount: 0},
		{name: "hostile_literal_is_data", kind: model.KindAuction, ids: []string{"bidder-1') OR 1=1 --"}, wantCount: 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			participants, err := l.GetParticipantsByIDs(tc.kind, tc.ids)
			require.NoError(t, err)
			require.Len(t, participants, tc.wantCount)
		})
	}
}

// Test transaction persistence, winner resolution and the settled flip
func TestSQLiteLedger_Transactions(t *testing.T) {
	t.Parallel()

	l := openTestLedger(t)
	require.NoError(t, l.Seed(DefaultSeed()))
	require.NoError(t, l.CreateRun(model.Run{ID: "run1", Kind: model.KindAuction, CreatedAt: time.Now().UTC()}))

	_, err := l.WinningTransaction("run1", "item-1")
	require.ErrorIs(t, err, simerrors.ErrNoTransactions)

	txs := []model.Transaction{
		{ID: "tx1", RunID: "run1", ParticipantID: "bidder-1", ItemID: "item-1", Amount: 1200, TimestampNs: 10},
		{ID: "tx2", RunID: "run1", ParticipantID: "bidder-2", ItemID: "item-1", Amount: 1500, TimestampNs: 20},
		{ID: "tx3", RunID: "run1", ParticipantID: "bidder-3", ItemID: "item-1", Amount: 1500, TimestampNs: 30},
	}
	for _, tx := range txs {
		require.NoError(t, l.RecordTransaction(tx))
	}

	winning, err := l.WinningTransaction("run1", "item-1")
	require.NoError(t, err)
	require.Equal(t, "tx2", winning.ID, "tie must resolve to the earliest timestamp")
	require.Equal(t, 1500, winning.Amount)
	require.False(t, winning.Settled)

	require.NoError(t, l.MarkSettled("tx2"))
	winning, err = l.WinningTransaction("run1", "item-1")
	require.NoError(t, err)
	require.True(t, winning.Settled)

	require.ErrorIs(t, l.MarkSettled("ghost"), simerrors.ErrTxNotFound)

	require.NoError(t, l.MarkItemSold("item-1"))
	item, err := l.GetItem("item-1")
	require.NoError(t, err)
	require.True(t, item.IsSold)
}

// Test activity log ordering per item and grouping per run
func TestSQLiteLedger_Activity(t *testing.T) {
	t.Parallel()

	l := openTestLedger(t)
	require.NoError(t, l.CreateRun(model.Run{ID: "run1", Kind: model.KindAuction, CreatedAt: time.Now().UTC()}))

	entries := []model.ActivityLogEntry{
		{ID: "a1", RunID: "run1", ItemID: "item-1", Message: "first", TimestampNs: 10},
		{ID: "a2", RunID: "run1", ItemID: "item-2", Message: "other", TimestampNs: 15},
		{ID: "a3", RunID: "run1", ItemID: "item-1", Message: "second", TimestampNs: 20},
	}
	for _, e := range entries {
		require.NoError(t, l.AppendActivity(e))
	}

	ids, err := l.ItemIDsWithActivity("run1")
	require.NoError(t, err)
	require.Equal(t, []string{"item-1", "item-2"}, ids)

	messages, err := l.ActivityMessages("run1", "item-1")
	require.NoError(t, err)
	require.Equal(t, []string{"first", "second"}, messages)

	_, err = l.ItemIDsWithActivity("ghost")
	require.ErrorIs(t, err, simerrors.ErrNoActivity)
}

// Test ListRuns ordering and kind filter
func TestSQLiteLedger_ListRuns(t *testing.T) {
	t.Parallel()

	l := openTestLedger(t)
	base := time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(t, l.CreateRun(model.Run{ID: "run1", Kind: model.KindAuction, CreatedAt: base}))
	require.NoError(t, l.CreateRun(model.Run{ID: "run2", Kind: model.KindAuction, CreatedAt: base.Add(time.Second)}))
	require.NoError(t, l.CreateRun(model.Run{ID: "run3", Kind: model.KindNegotiation, CreatedAt: base.Add(2 * time.Second)}))

	runs, err := l.ListRuns(model.KindAuction)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	require.Equal(t, "run2", runs[0].ID)
	require.Equal(t, "run1", runs[1].ID)
}
