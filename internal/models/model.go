package models

import "time"

// RunKind distinguishes the two simulation engines sharing one ledger.
type RunKind string

const (
	KindAuction     RunKind = "auction"
	KindNegotiation RunKind = "negotiation"
)

// Run represents one invocation of a simulation over a chosen
// participant/item set. Immutable after creation.
type Run struct {
	ID        string    `json:"id"`
	Kind      RunKind   `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

// Participant is a bidder (auction) or buyer (negotiation). The balance is
// a hard ceiling on any amount the participant may commit, never a
// depleting resource.
type Participant struct {
	ID      string  `json:"id"`
	Kind    RunKind `json:"kind"`
	Name    string  `json:"name"`
	Balance int     `json:"balance"`
}

// Item is a tradable good: an auction lot or a negotiated bicycle.
// IsSold flips true at most once, at outcome resolution.
type Item struct {
	ID         string  `json:"id"`
	Kind       RunKind `json:"kind"`
	Name       string  `json:"name"`
	SellerName string  `json:"seller_name,omitempty"`
	Price      int     `json:"price"`
	IsSold     bool    `json:"is_sold"`
}

// Transaction records a single bid or buyer offer. Append-only; Settled
// flips true for at most one transaction per (RunID, ItemID).
// SellerPrice is the asking price at offer time and is zero for auctions.
type Transaction struct {
	ID            string `json:"id"`
	RunID         string `json:"run_id"`
	ParticipantID string `json:"participant_id"`
	ItemID        string `json:"item_id"`
	Amount        int    `json:"amount"`
	SellerPrice   int    `json:"seller_price,omitempty"`
	Settled       bool   `json:"settled"`
	TimestampNs   int64  `json:"timestamp_ns"`
}

// ActivityLogEntry is one line of the per-item narrative of a run.
// Entries for a given (RunID, ItemID) carry strictly increasing timestamps.
type ActivityLogEntry struct {
	ID          string `json:"id"`
	RunID       string `json:"run_id"`
	ItemID      string `json:"item_id"`
	Message     string `json:"message"`
	TimestampNs int64  `json:"timestamp_ns"`
}
