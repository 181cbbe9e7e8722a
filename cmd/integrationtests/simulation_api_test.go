package integrationtests

import (
	"net/http"
	"testing"

	"market-simulator/services/simulation/helpers"

	"github.com/stretchr/testify/require"
)

// Full auction flow: simulate through the API, then read the run and its
// activity log back.
func TestAuctionAPIFlow(t *testing.T) {
	router, _ := SetupTestRouter()

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions", helpers.SimulateAuctionRequest{
		BidderIDs: []string{"bidder-1", "bidder-2", "bidder-3"},
		ItemIDs:   []string{"item-1", "item-2", "item-3"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	data := resp["data"].(map[string]any)
	runID := data["run_id"].(string)
	require.NotEmpty(t, runID)

	outcomes := data["outcomes"].([]any)
	require.Len(t, outcomes, 3)
	for _, o := range outcomes {
		outcome := o.(map[string]any)
		state := outcome["state"].(string)
		require.Contains(t, []string{"sold", "no_winner"}, state)
		if state == "sold" {
			require.NotEmpty(t, outcome["winner_name"])
			require.Greater(t, outcome["amount"].(float64), 0.0)
		}
	}

	// The run shows up in the listing.
	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/auctions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	runs := resp["data"].([]any)
	require.Len(t, runs, 1)
	require.Equal(t, runID, runs[0].(map[string]any)["id"])

	// The activity log narrates every simulated item.
	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/auctions/"+runID+"/log", nil)
	require.Equal(t, http.StatusOK, w.Code)
	logData := resp["data"].(map[string]any)
	require.Equal(t, runID, logData["run_id"])
	itemLogs := logData["log"].([]any)
	require.Len(t, itemLogs, 3)
	for _, raw := range itemLogs {
		messages := raw.([]any)
		require.GreaterOrEqual(t, len(messages), 2)
		require.Contains(t, messages[0].(string), "Auction for ")
		require.Contains(t, messages[1].(string), "Started from: ")
	}
}

// Full negotiation flow
func TestNegotiationAPIFlow(t *testing.T) {
	router, _ := SetupTestRouter()

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/negotiations", helpers.SimulateNegotiationRequest{
		BuyerIDs: []string{"buyer-1", "buyer-2", "buyer-3"},
		ItemIDs:  []string{"bicycle-1", "bicycle-2", "bicycle-3"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	data := resp["data"].(map[string]any)
	runID := data["run_id"].(string)
	require.NotEmpty(t, runID)

	outcomes := data["outcomes"].([]any)
	require.Len(t, outcomes, 3)
	for _, o := range outcomes {
		outcome := o.(map[string]any)
		require.Contains(t, []string{"sold", "no_deal", "stalemate"}, outcome["state"].(string))
	}

	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/negotiations/"+runID+"/log", nil)
	require.Equal(t, http.StatusOK, w.Code)
	logData := resp["data"].(map[string]any)
	itemLogs := logData["log"].([]any)
	require.Len(t, itemLogs, 3)
	for _, raw := range itemLogs {
		messages := raw.([]any)
		require.GreaterOrEqual(t, len(messages), 2)
		require.Contains(t, messages[0].(string), "Negotiation for ")
		require.Contains(t, messages[1].(string), "Initial price: ")
	}
}

// Catalog endpoints expose the seeded participants and items
func TestCatalogEndpoints(t *testing.T) {
	router, _ := SetupTestRouter()

	tests := []struct {
		name      string
		url       string
		wantCount int
		wantName  string
	}{
		{name: "bidders", url: "/auctions/bidders", wantCount: 3, wantName: "Owi"},
		{name: "auction_items", url: "/auctions/items", wantCount: 3, wantName: "Tongkat Diponegoro"},
		{name: "buyers", url: "/negotiations/buyers", wantCount: 3, wantName: "Mulyono"},
		{name: "bicycles", url: "/negotiations/bicycles", wantCount: 3, wantName: "Mazda 3-hatchback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, tt.url, nil)
			require.Equal(t, http.StatusOK, w.Code)

			entries := resp["data"].([]any)
			require.Len(t, entries, tt.wantCount)

			names := map[string]bool{}
			for _, e := range entries {
				names[e.(map[string]any)["name"].(string)] = true
			}
			require.True(t, names[tt.wantName])
		})
	}
}

// Error surface: bad payloads and unknown runs
func TestAPIErrors(t *testing.T) {
	router, _ := SetupTestRouter()

	tests := []struct {
		name       string
		method     string
		url        string
		body       any
		wantStatus int
	}{
		{
			name:       "invalid_auction_json",
			method:     http.MethodPost,
			url:        "/auctions",
			body:       "{bidder_ids: 'missing quotes'}",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown_auction_run_log",
			method:     http.MethodGet,
			url:        "/auctions/nonexistent/log",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unknown_negotiation_run_log",
			method:     http.MethodGet,
			url:        "/negotiations/nonexistent/log",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, w := ExecuteRequestAndParse(t, router, tt.method, tt.url, tt.body)
			require.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

// Unknown IDs shrink the simulation instead of failing it
func TestSimulateUnknownIDs(t *testing.T) {
	router, ledger := SetupTestRouter()

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions", helpers.SimulateAuctionRequest{
		BidderIDs: []string{"bidder-1", "nonexistent"},
		ItemIDs:   []string{"item-3", "also-nonexistent"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	data := resp["data"].(map[string]any)
	outcomes := data["outcomes"].([]any)
	require.Len(t, outcomes, 1, "unknown item IDs are skipped")

	// A single bidder has nobody to outbid, so the lot stays unsold.
	outcome := outcomes[0].(map[string]any)
	require.Equal(t, "no_winner", outcome["state"])

	item, err := ledger.GetItem("item-3")
	require.NoError(t, err)
	require.False(t, item.IsSold)
}
