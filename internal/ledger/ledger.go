package ledger

import (
	model "market-simulator/internal/models"
)

// Ledger is the durable store for runs, transactions, activity-log entries
// and sold flags. Implementations must support concurrent appends across
// distinct (runID, itemID) namespaces; each item's worker is the only
// writer into its own namespace.
type Ledger interface {
	// CreateRun persists a new run record.
	CreateRun(run model.Run) error
	// ListRuns returns all runs of a kind, newest first.
	ListRuns(kind model.RunKind) ([]model.Run, error)

	// GetParticipants returns every participant of a kind.
	GetParticipants(kind model.RunKind) ([]model.Participant, error)
	// GetParticipantsByIDs returns the participants of a kind matching the
	// given IDs. Unknown IDs are skipped, not an error.
	GetParticipantsByIDs(kind model.RunKind, ids []string) ([]model.Participant, error)
	// GetItems returns every item of a kind.
	GetItems(kind model.RunKind) ([]model.Item, error)
	// GetItemsByIDs returns the items of a kind matching the given IDs.
	// Unknown IDs are skipped, not an error.
	GetItemsByIDs(kind model.RunKind, ids []string) ([]model.Item, error)

	// RecordTransaction appends a transaction.
	RecordTransaction(tx model.Transaction) error
	// MarkSettled flips a transaction's settled flag. At most one
	// transaction per (runID, itemID) is ever settled.
	MarkSettled(txID string) error
	// MarkItemSold flips an item's sold flag.
	MarkItemSold(itemID string) error

	// AppendActivity appends an activity-log entry.
	AppendActivity(entry model.ActivityLogEntry) error

	// WinningTransaction returns the maximum-amount transaction for the
	// item in the run, ties broken by earliest timestamp. Returns
	// simerrors.ErrNoTransactions when the item has no transactions.
	WinningTransaction(runID, itemID string) (model.Transaction, error)
	// ItemIDsWithActivity returns the item IDs that have activity entries
	// in the run, ordered by first appearance.
	ItemIDsWithActivity(runID string) ([]string, error)
	// ActivityMessages returns the item's activity messages for the run,
	// ordered by timestamp.
	ActivityMessages(runID, itemID string) ([]string, error)
}
