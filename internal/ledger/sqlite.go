package ledger

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"market-simulator/internal/simerrors"

	model "market-simulator/internal/models"
)

// SQLiteLedger implements Ledger on a SQLite database. Workers append
// concurrently; the single-connection pool serializes writes, which is how
// SQLite behaves best with one writer.
type SQLiteLedger struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the ledger database at path and
// initializes the schema. Use ":memory:" for an in-process database.
func OpenSQLite(path string) (*SQLiteLedger, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("ledger: open sqlite %s: %w", path, err)
	}

	db.SetMaxOpenConns(1)

	if err := InitSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteLedger{db: db}, nil
}

// Close releases the underlying database handle.
func (l *SQLiteLedger) Close() error {
	return l.db.Close()
}

// placeholders returns "?, ?, ..." for n parameters.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func idArgs(kind model.RunKind, ids []string) []any {
	args := make([]any, 0, len(ids)+1)
	args = append(args, string(kind))
	for _, id := range ids {
		args = append(args, id)
	}
	return args
}

// CreateRun persists a new run record.
func (l *SQLiteLedger) CreateRun(run model.Run) error {
	_, err := l.db.Exec(
		`INSERT INTO runs (id, kind, created_at) VALUES (?, ?, ?)`,
		run.ID, string(run.Kind), run.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("ledger: create run %s: %w", run.ID, err)
	}
	return nil
}

// ListRuns returns all runs of a kind, newest first.
func (l *SQLiteLedger) ListRuns(kind model.RunKind) ([]model.Run, error) {
	rows, err := l.db.Query(
		`SELECT id, kind, created_at FROM runs WHERE kind = ? ORDER BY created_at DESC`,
		string(kind),
	)
	if err != nil {
		return nil, fmt.Errorf("ledger: list runs: %w", err)
	}
	defer rows.Close()

	var runs []model.Run
	for rows.Next() {
		var (
			run       model.Run
			kindStr   string
			createdAt string
		)
		if err := rows.Scan(&run.ID, &kindStr, &createdAt); err != nil {
			return nil, fmt.Errorf("ledger: scan run: %w", err)
		}
		run.Kind = model.RunKind(kindStr)
		if run.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("ledger: parse run created_at: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func (l *SQLiteLedger) queryParticipants(query string, args ...any) ([]model.Participant, error) {
	rows, err := l.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("ledger: query participants: %w", err)
	}
	defer rows.Close()

	var participants []model.Participant
	for rows.Next() {
		var (
			p    model.Participant
			kind string
		)
		if err := rows.Scan(&p.ID, &kind, &p.Name, &p.Balance); err != nil {
			return nil, fmt.Errorf("ledger: scan participant: %w", err)
		}
		p.Kind = model.RunKind(kind)
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

// GetParticipants returns every participant of a kind.
func (l *SQLiteLedger) GetParticipants(kind model.RunKind) ([]model.Participant, error) {
	return l.queryParticipants(
		`SELECT id, kind, name, balance FROM participants WHERE kind = ? ORDER BY id`,
		string(kind),
	)
}

// GetParticipantsByIDs returns the participants of a kind matching the
// given IDs. Unknown IDs are skipped.
func (l *SQLiteLedger) GetParticipantsByIDs(kind model.RunKind, ids []string) ([]model.Participant, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := fmt.Sprintf(
		`SELECT id, kind, name, balance FROM participants WHERE kind = ? AND id IN (%s) ORDER BY id`,
		placeholders(len(ids)),
	)
	return l.queryParticipants(query, idArgs(kind, ids)...)
}

func (l *SQLiteLedger) queryItems(query string, args ...any) ([]model.Item, error) {
	rows, err := l.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("ledger: query items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var (
			item   model.Item
			kind   string
			isSold int
		)
		if err := rows.Scan(&item.ID, &kind, &item.Name, &item.SellerName, &item.Price, &isSold); err != nil {
			return nil, fmt.Errorf("ledger: scan item: %w", err)
		}
		item.Kind = model.RunKind(kind)
		item.IsSold = isSold != 0
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetItems returns every item of a kind.
func (l *SQLiteLedger) GetItems(kind model.RunKind) ([]model.Item, error) {
	return l.queryItems(
		`SELECT id, kind, name, seller_name, price, is_sold FROM items WHERE kind = ? ORDER BY id`,
		string(kind),
	)
}

// GetItemsByIDs returns the items of a kind matching the given IDs.
// Unknown IDs are skipped.
func (l *SQLiteLedger) GetItemsByIDs(kind model.RunKind, ids []string) ([]model.Item, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := fmt.Sprintf(
		`SELECT id, kind, name, seller_name, price, is_sold FROM items WHERE kind = ? AND id IN (%s) ORDER BY id`,
		placeholders(len(ids)),
	)
	return l.queryItems(query, idArgs(kind, ids)...)
}

// GetItem returns a single item by ID.
func (l *SQLiteLedger) GetItem(itemID string) (model.Item, error) {
	var (
		item   model.Item
		kind   string
		isSold int
	)
	err := l.db.QueryRow(
		`SELECT id, kind, name, seller_name, price, is_sold FROM items WHERE id = ?`, itemID,
	).Scan(&item.ID, &kind, &item.Name, &item.SellerName, &item.Price, &isSold)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Item{}, fmt.Errorf("ledger: get item %s: %w", itemID, simerrors.ErrItemNotFound)
	}
	if err != nil {
		return model.Item{}, fmt.Errorf("ledger: get item %s: %w", itemID, err)
	}
	item.Kind = model.RunKind(kind)
	item.IsSold = isSold != 0
	return item, nil
}

// RecordTransaction appends a transaction.
func (l *SQLiteLedger) RecordTransaction(tx model.Transaction) error {
	_, err := l.db.Exec(
		`INSERT INTO transactions (id, run_id, participant_id, item_id, amount, seller_price, settled, timestamp_ns)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		tx.ID, tx.RunID, tx.ParticipantID, tx.ItemID, tx.Amount, tx.SellerPrice, boolToInt(tx.Settled), tx.TimestampNs,
	)
	if err != nil {
		return fmt.Errorf("ledger: record transaction %s: %w", tx.ID, err)
	}
	return nil
}

// MarkSettled flips a transaction's settled flag.
func (l *SQLiteLedger) MarkSettled(txID string) error {
	res, err := l.db.Exec(`UPDATE transactions SET settled = 1 WHERE id = ?`, txID)
	if err != nil {
		return fmt.Errorf("ledger: mark settled %s: %w", txID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("ledger: mark settled %s: %w", txID, simerrors.ErrTxNotFound)
	}
	return nil
}

// MarkItemSold flips an item's sold flag.
func (l *SQLiteLedger) MarkItemSold(itemID string) error {
	res, err := l.db.Exec(`UPDATE items SET is_sold = 1 WHERE id = ?`, itemID)
	if err != nil {
		return fmt.Errorf("ledger: mark sold %s: %w", itemID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("ledger: mark sold %s: %w", itemID, simerrors.ErrItemNotFound)
	}
	return nil
}

// AppendActivity appends an activity-log entry.
func (l *SQLiteLedger) AppendActivity(entry model.ActivityLogEntry) error {
	_, err := l.db.Exec(
		`INSERT INTO activity_log (id, run_id, item_id, log, timestamp_ns) VALUES (?, ?, ?, ?, ?)`,
		entry.ID, entry.RunID, entry.ItemID, entry.Message, entry.TimestampNs,
	)
	if err != nil {
		return fmt.Errorf("ledger: append activity %s: %w", entry.ID, err)
	}
	return nil
}

// WinningTransaction returns the maximum-amount transaction for the item
// in the run, ties broken by earliest timestamp.
func (l *SQLiteLedger) WinningTransaction(runID, itemID string) (model.Transaction, error) {
	var (
		tx      model.Transaction
		settled int
	)
	err := l.db.QueryRow(
		`SELECT id, run_id, participant_id, item_id, amount, seller_price, settled, timestamp_ns
		 FROM transactions
		 WHERE run_id = ? AND item_id = ?
		 ORDER BY amount DESC, timestamp_ns ASC
		 LIMIT 1`,
		runID, itemID,
	).Scan(&tx.ID, &tx.RunID, &tx.ParticipantID, &tx.ItemID, &tx.Amount, &tx.SellerPrice, &settled, &tx.TimestampNs)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Transaction{}, fmt.Errorf("ledger: winning transaction for item %s: %w", itemID, simerrors.ErrNoTransactions)
	}
	if err != nil {
		return model.Transaction{}, fmt.Errorf("ledger: winning transaction for item %s: %w", itemID, err)
	}
	tx.Settled = settled != 0
	return tx, nil
}

// ItemIDsWithActivity returns the item IDs with activity in the run,
// ordered by first appearance.
func (l *SQLiteLedger) ItemIDsWithActivity(runID string) ([]string, error) {
	rows, err := l.db.Query(
		`SELECT item_id FROM activity_log WHERE run_id = ? GROUP BY item_id ORDER BY MIN(timestamp_ns)`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("ledger: activity items for run %s: %w", runID, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("ledger: scan activity item: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("ledger: activity items for run %s: %w", runID, simerrors.ErrNoActivity)
	}
	return ids, nil
}

// ActivityMessages returns the item's activity messages for the run,
// ordered by timestamp.
func (l *SQLiteLedger) ActivityMessages(runID, itemID string) ([]string, error) {
	rows, err := l.db.Query(
		`SELECT log FROM activity_log WHERE run_id = ? AND item_id = ? ORDER BY timestamp_ns`,
		runID, itemID,
	)
	if err != nil {
		return nil, fmt.Errorf("ledger: activity for item %s: %w", itemID, err)
	}
	defer rows.Close()

	var messages []string
	for rows.Next() {
		var msg string
		if err := rows.Scan(&msg); err != nil {
			return nil, fmt.Errorf("ledger: scan activity: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(messages) == 0 {
		return nil, fmt.Errorf("ledger: activity for item %s: %w", itemID, simerrors.ErrNoActivity)
	}
	return messages, nil
}
