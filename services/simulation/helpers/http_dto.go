package helpers

import (
	"market-simulator/internal/simulation"
)

// Request/Response DTOs

// SimulateAuctionRequest selects the bidders and items for an auction run.
// Empty or unknown ID sets are accepted and simply shrink the run.
type SimulateAuctionRequest struct {
	BidderIDs []string `json:"bidder_ids"`
	ItemIDs   []string `json:"item_ids"`
}

// SimulateNegotiationRequest selects the buyers and items for a
// negotiation run.
type SimulateNegotiationRequest struct {
	BuyerIDs []string `json:"buyer_ids"`
	ItemIDs  []string `json:"item_ids"`
}

// RunResponse reports a finished run and its per-item outcomes.
type RunResponse struct {
	RunID    string               `json:"run_id"`
	Outcomes []simulation.Outcome `json:"outcomes"`
}

// ActivityLogResponse is the run's narrative: one ordered message
// sequence per item.
type ActivityLogResponse struct {
	RunID string     `json:"run_id"`
	Log   [][]string `json:"log"`
}
