package simulation

// State is the terminal state of one item's simulation.
type State string

const (
	// StateSold: a settled transaction exists and the item was marked sold.
	StateSold State = "sold"
	// StateNoWinner: the auction ended with no transactions on the ledger.
	StateNoWinner State = "no_winner"
	// StateNoDeal: the negotiation stagnated below the asking price.
	StateNoDeal State = "no_deal"
	// StateStalemate: the negotiation hit the safety round cap.
	StateStalemate State = "stalemate"
	// StateFailed: a ledger operation failed and the item's worker aborted.
	// Sibling items are unaffected.
	StateFailed State = "failed"
)

// Outcome is the per-item result a coordinator returns alongside the run ID.
type Outcome struct {
	ItemID     string `json:"item_id"`
	ItemName   string `json:"item_name"`
	State      State  `json:"state"`
	WinnerID   string `json:"winner_id,omitempty"`
	WinnerName string `json:"winner_name,omitempty"`
	Amount     int    `json:"amount,omitempty"`
	Rounds     int    `json:"rounds"`
	Err        error  `json:"-"`
	Error      string `json:"error,omitempty"`
}

// Terminal reports whether the state represents a completed simulation
// rather than an aborted one.
func (s State) Terminal() bool {
	return s != StateFailed
}
