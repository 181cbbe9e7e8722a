package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	auction "market-simulator/internal/auctionService"
	"market-simulator/internal/ledger"
	negotiation "market-simulator/internal/negotiationService"
	"market-simulator/internal/server"

	"github.com/gin-gonic/gin"
)

// SetupTestRouter initializes the router with an in-memory ledger seeded
// with the default participants and items. Simulations run with a fixed
// seed and no thinking delay to keep the suite fast and repeatable.
func SetupTestRouter() (*gin.Engine, *ledger.MemoryLedger) {
	gin.SetMode(gin.TestMode)

	l := ledger.NewMemoryLedger()
	seed := ledger.DefaultSeed()
	for _, p := range seed.Participants {
		l.AddParticipant(p)
	}
	for _, item := range seed.Items {
		l.AddItem(item)
	}

	auctionSvc := auction.NewService(l, auction.Config{Seed: 42})
	negotiationSvc := negotiation.NewService(l, negotiation.Config{
		Seed:     42,
		MinThink: 0,
		MaxThink: time.Nanosecond,
	})

	router := server.SetupRouter(auctionSvc, negotiationSvc)
	return router, l
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the response envelope.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}
