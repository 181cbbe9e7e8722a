package ledger

import (
	"database/sql"
	"fmt"

	model "market-simulator/internal/models"
)

// schema is the SQLite layout backing the ledger. Transactions and
// activity entries are append-only; the only updates ever issued are the
// single settled flip per (run_id, item_id) and the item sold flip.
const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    kind TEXT NOT NULL,
    created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS participants (
    id TEXT PRIMARY KEY,
    kind TEXT NOT NULL,
    name TEXT NOT NULL,
    balance INTEGER NOT NULL CHECK (balance >= 0)
);

CREATE TABLE IF NOT EXISTS items (
    id TEXT PRIMARY KEY,
    kind TEXT NOT NULL,
    name TEXT NOT NULL,
    seller_name TEXT NOT NULL DEFAULT '',
    price INTEGER NOT NULL,
    is_sold INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS transactions (
    id TEXT PRIMARY KEY,
    run_id TEXT NOT NULL,
    participant_id TEXT NOT NULL,
    item_id TEXT NOT NULL,
    amount INTEGER NOT NULL,
    seller_price INTEGER NOT NULL DEFAULT 0,
    settled INTEGER NOT NULL DEFAULT 0,
    timestamp_ns INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_transactions_run_item ON transactions(run_id, item_id);

CREATE TABLE IF NOT EXISTS activity_log (
    id TEXT PRIMARY KEY,
    run_id TEXT NOT NULL,
    item_id TEXT NOT NULL,
    log TEXT NOT NULL,
    timestamp_ns INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_activity_run_item ON activity_log(run_id, item_id);
`

// InitSchema creates the ledger tables if they do not exist.
func InitSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("ledger: init schema: %w", err)
	}
	return nil
}

// SeedData holds the participants and items inserted at bootstrap.
type SeedData struct {
	Participants []model.Participant
	Items        []model.Item
}

// DefaultSeed returns the sample bidders, buyers, auction items and
// bicycles the service starts with.
func DefaultSeed() SeedData {
	return SeedData{
		Participants: []model.Participant{
			{ID: "bidder-1", Kind: model.KindAuction, Name: "Owi", Balance: 3000},
			{ID: "bidder-2", Kind: model.KindAuction, Name: "Fufa", Balance: 1500},
			{ID: "bidder-3", Kind: model.KindAuction, Name: "Fafu", Balance: 2000},
			{ID: "buyer-1", Kind: model.KindNegotiation, Name: "Mulyono", Balance: 5000},
			{ID: "buyer-2", Kind: model.KindNegotiation, Name: "Fufu", Balance: 3000},
			{ID: "buyer-3", Kind: model.KindNegotiation, Name: "Fafa", Balance: 3000},
		},
		Items: []model.Item{
			{ID: "item-1", Kind: model.KindAuction, Name: "Tongkat Diponegoro", Price: 1000},
			{ID: "item-2", Kind: model.KindAuction, Name: "Supersemar", Price: 1200},
			{ID: "item-3", Kind: model.KindAuction, Name: "Surat Hutang", Price: 500},
			{ID: "bicycle-1", Kind: model.KindNegotiation, Name: "Mazda 3-hatchback", SellerName: "Kowee", Price: 500},
			{ID: "bicycle-2", Kind: model.KindNegotiation, Name: "Honda Civic Turbo", SellerName: "Gnarly", Price: 495},
			{ID: "bicycle-3", Kind: model.KindNegotiation, Name: "Yamaha Camel", SellerName: "Raka", Price: 88},
		},
	}
}

// Seed inserts the seed rows, replacing participants and items that
// already exist so repeated startups stay idempotent.
func (l *SQLiteLedger) Seed(data SeedData) error {
	for _, p := range data.Participants {
		_, err := l.db.Exec(
			`INSERT OR REPLACE INTO participants (id, kind, name, balance) VALUES (?, ?, ?, ?)`,
			p.ID, string(p.Kind), p.Name, p.Balance,
		)
		if err != nil {
			return fmt.Errorf("ledger: seed participant %s: %w", p.ID, err)
		}
	}
	for _, item := range data.Items {
		_, err := l.db.Exec(
			`INSERT OR REPLACE INTO items (id, kind, name, seller_name, price, is_sold) VALUES (?, ?, ?, ?, ?, ?)`,
			item.ID, string(item.Kind), item.Name, item.SellerName, item.Price, boolToInt(item.IsSold),
		)
		if err != nil {
			return fmt.Errorf("ledger: seed item %s: %w", item.ID, err)
		}
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
