package negotiation

import (
	"testing"
	"time"

	"market-simulator/internal/ledger"
	"market-simulator/internal/simerrors"
	"market-simulator/internal/simulation"

	model "market-simulator/internal/models"

	"github.com/stretchr/testify/require"
)

// fastConfig removes the thinking delay so rounds complete immediately.
func fastConfig(seed int64, maxRounds int) Config {
	return Config{Seed: seed, MaxRounds: maxRounds, MinThink: 0, MaxThink: time.Nanosecond}
}

func seededLedger(t *testing.T, items []model.Item, buyers []model.Participant) *ledger.MemoryLedger {
	t.Helper()

	l := ledger.NewMemoryLedger()
	for _, item := range items {
		l.AddItem(item)
	}
	for _, b := range buyers {
		l.AddParticipant(b)
	}
	return l
}

func bicycle(id, name, seller string, price int) model.Item {
	return model.Item{ID: id, Kind: model.KindNegotiation, Name: name, SellerName: seller, Price: price}
}

func buyer(id, name string, balance int) model.Participant {
	return model.Participant{ID: id, Kind: model.KindNegotiation, Name: name, Balance: balance}
}

// A price of 2 always deals in round one: every opening offer floors to
// 1, the decayed price floors to 1, and they meet. This holds for any
// seed, so the assertions cover the full deal path deterministically.
func TestNegotiationService_Simulate_Deal(t *testing.T) {
	t.Parallel()

	buyers := []model.Participant{
		buyer("buyer1", "Mulyono", 5000),
		buyer("buyer2", "Fufu", 3000),
	}
	l := seededLedger(t, []model.Item{bicycle("bicycle1", "Yamaha Camel", "Raka", 2)}, buyers)
	svc := NewService(l, fastConfig(42, 0))

	result, err := svc.Simulate([]string{"buyer1", "buyer2"}, []string{"bicycle1"})
	require.NoError(t, err)
	require.Len(t, result.Outcomes, 1)

	outcome := result.Outcomes[0]
	require.Equal(t, simulation.StateSold, outcome.State)
	require.Equal(t, 1, outcome.Rounds)
	require.Equal(t, 1, outcome.Amount)
	require.NotEmpty(t, outcome.WinnerName)

	txs := l.Transactions(result.RunID, "bicycle1")
	require.Len(t, txs, 2, "one offer per buyer in the single round")

	settled := 0
	var earliest int64
	for _, tx := range txs {
		require.Equal(t, 1, tx.Amount)
		require.Equal(t, 2, tx.SellerPrice, "offers carry the asking price they answered")
		if tx.Settled {
			settled++
			require.Equal(t, outcome.WinnerID, tx.ParticipantID)
			earliest = tx.TimestampNs
		}
	}
	require.Equal(t, 1, settled, "exactly one offer may settle")
	for _, tx := range txs {
		require.GreaterOrEqual(t, tx.TimestampNs, earliest, "ties settle on the earliest offer")
	}

	item, err := l.GetItem("bicycle1")
	require.NoError(t, err)
	require.True(t, item.IsSold)

	messages, err := l.ActivityMessages(result.RunID, "bicycle1")
	require.NoError(t, err)
	require.Contains(t, messages[0], "Negotiation for Yamaha Camel")
	require.Contains(t, messages[1], "Initial price: 2")
	require.Contains(t, messages[len(messages)-1], "sold to")
}

// A buyer with no balance offers 0 every round, so the very first round
// fails the improvement check and the negotiation ends with no deal.
func TestNegotiationService_Simulate_NoDeal_Stagnation(t *testing.T) {
	t.Parallel()

	l := seededLedger(t,
		[]model.Item{bicycle("bicycle1", "Mazda 3-hatchback", "Kowee", 500)},
		[]model.Participant{buyer("buyer1", "Mulyono", 0)},
	)
	svc := NewService(l, fastConfig(7, 0))

	result, err := svc.Simulate([]string{"buyer1"}, []string{"bicycle1"})
	require.NoError(t, err)
	require.Len(t, result.Outcomes, 1)
	require.Equal(t, simulation.StateNoDeal, result.Outcomes[0].State)
	require.Equal(t, 1, result.Outcomes[0].Rounds)

	for _, tx := range l.Transactions(result.RunID, "bicycle1") {
		require.False(t, tx.Settled)
	}
	item, err := l.GetItem("bicycle1")
	require.NoError(t, err)
	require.False(t, item.IsSold)

	messages, err := l.ActivityMessages(result.RunID, "bicycle1")
	require.NoError(t, err)
	require.Contains(t, messages[len(messages)-1], "No deal")
}

// An empty buyer snapshot ends before any round is played
func TestNegotiationService_Simulate_NoDeal_NoBuyers(t *testing.T) {
	t.Parallel()

	l := seededLedger(t, []model.Item{bicycle("bicycle1", "Honda Civic Turbo", "Gnarly", 495)}, nil)
	svc := NewService(l, fastConfig(7, 0))

	result, err := svc.Simulate(nil, []string{"bicycle1"})
	require.NoError(t, err)
	require.Len(t, result.Outcomes, 1)
	require.Equal(t, simulation.StateNoDeal, result.Outcomes[0].State)
	require.Zero(t, result.Outcomes[0].Rounds)
	require.Empty(t, l.Transactions(result.RunID, "bicycle1"))
}

// With one round allowed, a wealthy buyer improves from zero but cannot
// reach the asking price: opening offers sit near half price while the
// decayed price stays above 80% of it. The cap turns that into a
// stalemate for any seed.
func TestNegotiationService_Simulate_Stalemate(t *testing.T) {
	t.Parallel()

	l := seededLedger(t,
		[]model.Item{bicycle("bicycle1", "Mazda 3-hatchback", "Kowee", 500)},
		[]model.Participant{buyer("buyer1", "Mulyono", 5000)},
	)
	svc := NewService(l, fastConfig(3, 1))

	result, err := svc.Simulate([]string{"buyer1"}, []string{"bicycle1"})
	require.NoError(t, err)
	require.Len(t, result.Outcomes, 1)
	require.Equal(t, simulation.StateStalemate, result.Outcomes[0].State)
	require.Equal(t, 1, result.Outcomes[0].Rounds)

	item, err := l.GetItem("bicycle1")
	require.NoError(t, err)
	require.False(t, item.IsSold)

	messages, err := l.ActivityMessages(result.RunID, "bicycle1")
	require.NoError(t, err)
	require.Contains(t, messages[len(messages)-1], "Stalemate after 1 rounds")
}

// Identical seeds must produce identical offer sequences
func TestNegotiationService_Simulate_Deterministic(t *testing.T) {
	t.Parallel()

	run := func() []int {
		l := seededLedger(t,
			[]model.Item{bicycle("bicycle1", "Yamaha Camel", "Raka", 88)},
			[]model.Participant{buyer("buyer1", "Mulyono", 5000)},
		)
		svc := NewService(l, fastConfig(11, 0))
		result, err := svc.Simulate([]string{"buyer1"}, []string{"bicycle1"})
		require.NoError(t, err)

		var amounts []int
		for _, tx := range l.Transactions(result.RunID, "bicycle1") {
			amounts = append(amounts, tx.Amount)
		}
		return amounts
	}

	first := run()
	require.Equal(t, first, run())

	// A single buyer's offers never shrink across rounds: the scale window
	// widens each round and the watermark only ever rises.
	for i := 1; i < len(first); i++ {
		require.GreaterOrEqual(t, first[i], first[i-1])
	}
}

// Every item worker keeps its own strictly increasing activity clock
func TestNegotiationService_Simulate_ConcurrencyIsolation(t *testing.T) {
	t.Parallel()

	items := []model.Item{
		bicycle("bicycle1", "Mazda 3-hatchback", "Kowee", 500),
		bicycle("bicycle2", "Honda Civic Turbo", "Gnarly", 495),
		bicycle("bicycle3", "Yamaha Camel", "Raka", 88),
	}
	buyers := []model.Participant{
		buyer("buyer1", "Mulyono", 5000),
		buyer("buyer2", "Fufu", 3000),
		buyer("buyer3", "Fafa", 3000),
	}
	l := seededLedger(t, items, buyers)
	svc := NewService(l, fastConfig(21, 0))

	result, err := svc.Simulate([]string{"buyer1", "buyer2", "buyer3"}, []string{"bicycle1", "bicycle2", "bicycle3"})
	require.NoError(t, err)
	require.Len(t, result.Outcomes, 3)

	for _, o := range result.Outcomes {
		require.True(t, o.State.Terminal())
	}

	log, err := svc.ActivityLog(result.RunID)
	require.NoError(t, err)
	require.Len(t, log, 3)

	for _, item := range items {
		entries := l.ActivityEntries(result.RunID, item.ID)
		require.NotEmpty(t, entries)
		var prev int64
		for _, e := range entries {
			require.Greater(t, e.TimestampNs, prev, "per-item timestamps must be strictly increasing")
			prev = e.TimestampNs
		}
	}
}

// ActivityLog propagates the not-found sentinel for unknown runs
func TestNegotiationService_ActivityLog_UnknownRun(t *testing.T) {
	t.Parallel()

	l := seededLedger(t, nil, nil)
	svc := NewService(l, fastConfig(1, 0))

	_, err := svc.ActivityLog("ghost")
	require.ErrorIs(t, err, simerrors.ErrNoActivity)
}
