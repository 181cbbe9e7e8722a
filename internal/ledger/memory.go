package ledger

import (
	"fmt"
	"sort"
	"sync"

	"market-simulator/internal/simerrors"

	model "market-simulator/internal/models"
)

// MemoryLedger is a concurrency-safe in-memory implementation of Ledger,
// used by tests and as a fallback when no database path is configured.
type MemoryLedger struct {
	mu            sync.RWMutex
	runs          []model.Run
	participants  map[string]model.Participant        // key: participantID
	items         map[string]model.Item               // key: itemID
	transactions  map[string][]*model.Transaction     // key: runID|itemID
	txByID        map[string]*model.Transaction       // key: transactionID
	activity      map[string][]model.ActivityLogEntry // key: runID|itemID
	activityItems map[string][]string                 // key: runID -> itemIDs in first-seen order
}

// NewMemoryLedger creates a new in-memory ledger instance.
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		participants:  make(map[string]model.Participant),
		items:         make(map[string]model.Item),
		transactions:  make(map[string][]*model.Transaction),
		txByID:        make(map[string]*model.Transaction),
		activity:      make(map[string][]model.ActivityLogEntry),
		activityItems: make(map[string][]string),
	}
}

func itemKey(runID, itemID string) string {
	return runID + "|" + itemID
}

// AddParticipant seeds a participant. Intended for bootstrap and tests.
func (l *MemoryLedger) AddParticipant(p model.Participant) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.participants[p.ID] = p
}

// AddItem seeds an item. Intended for bootstrap and tests.
func (l *MemoryLedger) AddItem(item model.Item) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items[item.ID] = item
}

// GetItem returns a seeded item by ID.
func (l *MemoryLedger) GetItem(itemID string) (model.Item, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	item, ok := l.items[itemID]
	if !ok {
		return model.Item{}, fmt.Errorf("get item %s: %w", itemID, simerrors.ErrItemNotFound)
	}
	return item, nil
}

// CreateRun persists a new run record.
func (l *MemoryLedger) CreateRun(run model.Run) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.runs = append(l.runs, run)
	return nil
}

// ListRuns returns all runs of a kind, newest first.
func (l *MemoryLedger) ListRuns(kind model.RunKind) ([]model.Run, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	runs := make([]model.Run, 0, len(l.runs))
	for _, r := range l.runs {
		if r.Kind == kind {
			runs = append(runs, r)
		}
	}
	sort.SliceStable(runs, func(i, j int) bool { return runs[i].CreatedAt.After(runs[j].CreatedAt) })
	return runs, nil
}

// GetParticipants returns every participant of a kind.
func (l *MemoryLedger) GetParticipants(kind model.RunKind) ([]model.Participant, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	participants := make([]model.Participant, 0, len(l.participants))
	for _, p := range l.participants {
		if p.Kind == kind {
			participants = append(participants, p)
		}
	}
	sort.Slice(participants, func(i, j int) bool { return participants[i].ID < participants[j].ID })
	return participants, nil
}

// GetParticipantsByIDs returns the participants of a kind matching the IDs.
// Unknown IDs are skipped.
func (l *MemoryLedger) GetParticipantsByIDs(kind model.RunKind, ids []string) ([]model.Participant, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	participants := make([]model.Participant, 0, len(ids))
	for _, id := range ids {
		if p, ok := l.participants[id]; ok && p.Kind == kind {
			participants = append(participants, p)
		}
	}
	return participants, nil
}

// GetItems returns every item of a kind.
func (l *MemoryLedger) GetItems(kind model.RunKind) ([]model.Item, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	items := make([]model.Item, 0, len(l.items))
	for _, item := range l.items {
		if item.Kind == kind {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// GetItemsByIDs returns the items of a kind matching the IDs. Unknown IDs
// are skipped.
func (l *MemoryLedger) GetItemsByIDs(kind model.RunKind, ids []string) ([]model.Item, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	items := make([]model.Item, 0, len(ids))
	for _, id := range ids {
		if item, ok := l.items[id]; ok && item.Kind == kind {
			items = append(items, item)
		}
	}
	return items, nil
}

// RecordTransaction appends a transaction.
func (l *MemoryLedger) RecordTransaction(tx model.Transaction) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	stored := tx
	key := itemKey(tx.RunID, tx.ItemID)
	l.transactions[key] = append(l.transactions[key], &stored)
	l.txByID[tx.ID] = &stored
	return nil
}

// MarkSettled flips a transaction's settled flag.
func (l *MemoryLedger) MarkSettled(txID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	tx, ok := l.txByID[txID]
	if !ok {
		return fmt.Errorf("mark settled %s: %w", txID, simerrors.ErrTxNotFound)
	}
	tx.Settled = true
	return nil
}

// MarkItemSold flips an item's sold flag.
func (l *MemoryLedger) MarkItemSold(itemID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	item, ok := l.items[itemID]
	if !ok {
		return fmt.Errorf("mark sold %s: %w", itemID, simerrors.ErrItemNotFound)
	}
	item.IsSold = true
	l.items[itemID] = item
	return nil
}

// AppendActivity appends an activity-log entry.
func (l *MemoryLedger) AppendActivity(entry model.ActivityLogEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := itemKey(entry.RunID, entry.ItemID)
	if len(l.activity[key]) == 0 {
		l.activityItems[entry.RunID] = append(l.activityItems[entry.RunID], entry.ItemID)
	}
	l.activity[key] = append(l.activity[key], entry)
	return nil
}

// WinningTransaction returns the maximum-amount transaction for the item,
// ties broken by earliest timestamp.
func (l *MemoryLedger) WinningTransaction(runID, itemID string) (model.Transaction, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	txs := l.transactions[itemKey(runID, itemID)]
	if len(txs) == 0 {
		return model.Transaction{}, fmt.Errorf("winning transaction for item %s: %w", itemID, simerrors.ErrNoTransactions)
	}

	winning := txs[0]
	for _, tx := range txs[1:] {
		if tx.Amount > winning.Amount || (tx.Amount == winning.Amount && tx.TimestampNs < winning.TimestampNs) {
			winning = tx
		}
	}
	return *winning, nil
}

// ItemIDsWithActivity returns the item IDs with activity in the run.
func (l *MemoryLedger) ItemIDsWithActivity(runID string) ([]string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	ids, ok := l.activityItems[runID]
	if !ok || len(ids) == 0 {
		return nil, fmt.Errorf("activity items for run %s: %w", runID, simerrors.ErrNoActivity)
	}
	return append([]string(nil), ids...), nil
}

// ActivityMessages returns the item's activity messages ordered by timestamp.
func (l *MemoryLedger) ActivityMessages(runID, itemID string) ([]string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	entries := l.activity[itemKey(runID, itemID)]
	if len(entries) == 0 {
		return nil, fmt.Errorf("activity for item %s: %w", itemID, simerrors.ErrNoActivity)
	}

	sorted := append([]model.ActivityLogEntry(nil), entries...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].TimestampNs < sorted[j].TimestampNs })

	messages := make([]string, 0, len(sorted))
	for _, e := range sorted {
		messages = append(messages, e.Message)
	}
	return messages, nil
}

// ActivityEntries returns copies of the item's raw activity entries in
// insertion order. Intended for tests asserting timestamp ordering.
func (l *MemoryLedger) ActivityEntries(runID, itemID string) []model.ActivityLogEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]model.ActivityLogEntry(nil), l.activity[itemKey(runID, itemID)]...)
}

// Transactions returns copies of all transactions for an item in a run, in
// insertion order. Intended for tests asserting ledger invariants.
func (l *MemoryLedger) Transactions(runID, itemID string) []model.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	txs := l.transactions[itemKey(runID, itemID)]
	out := make([]model.Transaction, 0, len(txs))
	for _, tx := range txs {
		out = append(out, *tx)
	}
	return out
}
