package negotiation

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"market-simulator/internal/ledger"
	"market-simulator/internal/simerrors"
	"market-simulator/internal/simulation"
	"market-simulator/utils"

	model "market-simulator/internal/models"
)

// Config tunes a Service. The zero value is production behavior.
type Config struct {
	// Seed fixes the random source for deterministic runs; 0 draws a
	// time-based seed per run.
	Seed int64
	// MaxRounds caps the offer loop; reaching it ends the item in a
	// stalemate. 0 means DefaultMaxRounds. Convergence below the cap is
	// probabilistic: the price floor and the offer ceiling force either a
	// cross or stagnation, but no round count is guaranteed.
	MaxRounds int
	// MinThink/MaxThink bound the per-offer thinking delay. A zero
	// MaxThink selects the defaults; tests shrink both to keep runs fast.
	MinThink time.Duration
	MaxThink time.Duration
}

const (
	// DefaultMaxRounds bounds the negotiation loop.
	DefaultMaxRounds = 64

	defaultMinThink = 100 * time.Millisecond
	defaultMaxThink = 500 * time.Millisecond
)

// Service runs iterative price negotiations: one concurrent worker per
// item, all buyers acting concurrently within each round, every state
// change recorded on the ledger.
type Service struct {
	ledger ledger.Ledger
	cfg    Config
}

// NewService creates a new negotiation Service instance.
func NewService(l ledger.Ledger, cfg Config) *Service {
	if cfg.MaxRounds <= 0 {
		cfg.MaxRounds = DefaultMaxRounds
	}
	if cfg.MaxThink <= 0 {
		cfg.MinThink = defaultMinThink
		cfg.MaxThink = defaultMaxThink
	}
	return &Service{ledger: l, cfg: cfg}
}

// RunResult is what Simulate returns: the run ID plus one outcome per item.
type RunResult struct {
	RunID    string               `json:"run_id"`
	Outcomes []simulation.Outcome `json:"outcomes"`
}

// Simulate creates a run, snapshots the requested buyers and items once,
// and negotiates every item on a bounded worker pool. It blocks until all
// item workers finish. Unknown IDs shrink the snapshots; empty sets yield
// a run with zero items simulated. A single item's failure surfaces as a
// failed outcome without cancelling its siblings.
func (s *Service) Simulate(buyerIDs, itemIDs []string) (RunResult, error) {
	buyers, err := s.ledger.GetParticipantsByIDs(model.KindNegotiation, buyerIDs)
	if err != nil {
		return RunResult{}, fmt.Errorf("negotiation: load buyers: %w", err)
	}
	items, err := s.ledger.GetItemsByIDs(model.KindNegotiation, itemIDs)
	if err != nil {
		return RunResult{}, fmt.Errorf("negotiation: load items: %w", err)
	}

	run := model.Run{ID: utils.GenerateID(), Kind: model.KindNegotiation, CreatedAt: time.Now().UTC()}
	if err := s.ledger.CreateRun(run); err != nil {
		return RunResult{}, fmt.Errorf("negotiation: create run: %w", err)
	}

	seed := s.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	outcomes := make([]simulation.Outcome, len(items))
	simulation.RunPool(len(items), func(i int) {
		outcomes[i] = s.negotiateItem(run.ID, items[i], buyers, simulation.NewRand(seed, i))
	})

	utils.Info("negotiation run finished", map[string]any{
		"run_id": run.ID,
		"items":  len(items),
		"buyers": len(buyers),
	})

	return RunResult{RunID: run.ID, Outcomes: outcomes}, nil
}

// ActivityLog returns the run's chronological narrative: one ordered
// message sequence per item, items in order of first activity.
func (s *Service) ActivityLog(runID string) ([][]string, error) {
	itemIDs, err := s.ledger.ItemIDsWithActivity(runID)
	if err != nil {
		return nil, fmt.Errorf("negotiation: activity log for run %s: %w", runID, err)
	}

	log := make([][]string, 0, len(itemIDs))
	for _, itemID := range itemIDs {
		messages, err := s.ledger.ActivityMessages(runID, itemID)
		if err != nil {
			return nil, fmt.Errorf("negotiation: activity log for run %s: %w", runID, err)
		}
		log = append(log, messages)
	}
	return log, nil
}

// ListRuns returns all negotiation runs, newest first.
func (s *Service) ListRuns() ([]model.Run, error) {
	return s.ledger.ListRuns(model.KindNegotiation)
}

// ListBuyers returns every buyer available for selection.
func (s *Service) ListBuyers() ([]model.Participant, error) {
	return s.ledger.GetParticipants(model.KindNegotiation)
}

// ListItems returns every negotiable item available for selection.
func (s *Service) ListItems() ([]model.Item, error) {
	return s.ledger.GetItems(model.KindNegotiation)
}

// itemNegotiation is the per-item state machine. The owning worker is the
// only goroutine that advances it; buyer sub-tasks only append to the
// ledger through the shared clock, between round barriers.
type itemNegotiation struct {
	svc    *Service
	runID  string
	item   model.Item
	rng    *rand.Rand
	clock  *simulation.Clock
	names  map[string]string // participantID -> name
	rounds int

	sellerPrice  int
	minimumPrice int
	minScale     float64
	maxScale     float64
	highestOffer int
}

func (s *Service) negotiateItem(runID string, item model.Item, buyers []model.Participant, rng *rand.Rand) simulation.Outcome {
	n := &itemNegotiation{
		svc:          s,
		runID:        runID,
		item:         item,
		rng:          rng,
		clock:        &simulation.Clock{},
		sellerPrice:  item.Price,
		minimumPrice: int(float64(item.Price) * simulation.Uniform(rng, 0.5, 0.7)),
		minScale:     1.0,
		maxScale:     1.1,
		names:        make(map[string]string, len(buyers)),
	}
	for _, b := range buyers {
		n.names[b.ID] = b.Name
	}

	outcome, err := n.run(buyers)
	if err != nil {
		utils.Error("negotiation item failed", map[string]any{
			"run_id":  runID,
			"item_id": item.ID,
			"error":   err.Error(),
		})
		return simulation.Outcome{
			ItemID:   item.ID,
			ItemName: item.Name,
			State:    simulation.StateFailed,
			Rounds:   n.rounds,
			Err:      err,
			Error:    err.Error(),
		}
	}
	return outcome
}

func (n *itemNegotiation) log(format string, args ...any) error {
	entry := model.ActivityLogEntry{
		ID:          utils.GenerateID(),
		RunID:       n.runID,
		ItemID:      n.item.ID,
		Message:     fmt.Sprintf(format, args...),
		TimestampNs: n.clock.NowNs(),
	}
	if err := n.svc.ledger.AppendActivity(entry); err != nil {
		return fmt.Errorf("append activity: %w", err)
	}
	return nil
}

func (n *itemNegotiation) outcome(state simulation.State) simulation.Outcome {
	return simulation.Outcome{
		ItemID:   n.item.ID,
		ItemName: n.item.Name,
		State:    state,
		Rounds:   n.rounds,
	}
}

func (n *itemNegotiation) run(buyers []model.Participant) (simulation.Outcome, error) {
	if err := n.log("Negotiation for %s.", n.item.Name); err != nil {
		return simulation.Outcome{}, err
	}
	if err := n.log("Initial price: %d.", n.sellerPrice); err != nil {
		return simulation.Outcome{}, err
	}

	if len(buyers) == 0 {
		if err := n.log("Negotiation ends. No deal."); err != nil {
			return simulation.Outcome{}, err
		}
		return n.outcome(simulation.StateNoDeal), nil
	}

	for n.rounds < n.svc.cfg.MaxRounds {
		n.rounds++

		prevHighest := n.highestOffer
		if err := n.playRound(buyers); err != nil {
			return simulation.Outcome{}, err
		}

		// Offers crossed the asking price: settle with the ledger's best.
		if n.highestOffer >= n.sellerPrice {
			return n.resolveDeal()
		}

		// No improvement over the previous round means nobody will ever
		// cross: offers are non-decreasing and the price only decays.
		if n.highestOffer == prevHighest {
			if err := n.log("Negotiation ends. No deal."); err != nil {
				return simulation.Outcome{}, err
			}
			return n.outcome(simulation.StateNoDeal), nil
		}

		// Buyers stretch, the seller concedes toward the floor.
		n.minScale += 0.1
		n.maxScale += 0.1
		prevPrice := n.sellerPrice
		n.sellerPrice = int(float64(n.sellerPrice) * simulation.Uniform(n.rng, 0.8, 0.95))
		if n.sellerPrice < n.minimumPrice {
			n.sellerPrice = n.minimumPrice
		}

		// The concession may already satisfy the standing highest offer.
		if n.highestOffer >= n.sellerPrice {
			ts := n.clock.NowNs()
			if err := n.log("Seller %s updated the price to %d. | Time: %s",
				n.item.SellerName, n.highestOffer, simulation.FormatNs(ts)); err != nil {
				return simulation.Outcome{}, err
			}
			return n.resolveDeal()
		}

		ts := n.clock.NowNs()
		if n.sellerPrice == prevPrice {
			if err := n.log("Seller %s kept the price at %d. | Time: %s",
				n.item.SellerName, n.sellerPrice, simulation.FormatNs(ts)); err != nil {
				return simulation.Outcome{}, err
			}
		} else {
			if err := n.log("Seller %s updated the price to %d. | Time: %s",
				n.item.SellerName, n.sellerPrice, simulation.FormatNs(ts)); err != nil {
				return simulation.Outcome{}, err
			}
		}
	}

	if err := n.log("Negotiation ends. Stalemate after %d rounds.", n.rounds); err != nil {
		return simulation.Outcome{}, err
	}
	return n.outcome(simulation.StateStalemate), nil
}

// playRound has every buyer offer concurrently, then joins and folds the
// round's offers into the highest-offer watermark.
func (n *itemNegotiation) playRound(buyers []model.Participant) error {
	// Buyer tasks run concurrently, so each gets its own generator seeded
	// from the item's; rand.Rand is not safe for shared use.
	seeds := make([]int64, len(buyers))
	for i := range seeds {
		seeds[i] = n.rng.Int63()
	}

	type offerResult struct {
		amount      int
		timestampNs int64
		err         error
	}
	results := make([]offerResult, len(buyers))

	simulation.RunPool(len(buyers), func(i int) {
		amount, ts, err := n.buyerOffer(buyers[i], rand.New(rand.NewSource(seeds[i])))
		results[i] = offerResult{amount: amount, timestampNs: ts, err: err}
	})

	for _, r := range results {
		if r.err != nil {
			return r.err
		}
	}

	sort.Slice(results, func(i, j int) bool { return results[i].timestampNs < results[j].timestampNs })
	for _, r := range results {
		if r.amount > n.highestOffer {
			n.highestOffer = r.amount
		}
	}
	return nil
}

// buyerOffer is one buyer's turn: think, offer, record. The offer is
// clamped to the buyer's balance and to the asking price, since offering
// above either makes no sense.
func (n *itemNegotiation) buyerOffer(buyer model.Participant, rng *rand.Rand) (int, int64, error) {
	think := n.svc.cfg.MinThink
	if spread := n.svc.cfg.MaxThink - n.svc.cfg.MinThink; spread > 0 {
		think += time.Duration(rng.Int63n(int64(spread)))
	}
	time.Sleep(think)

	offer := int(float64(n.item.Price) * 0.5 * simulation.Uniform(rng, n.minScale, n.maxScale))
	if offer > buyer.Balance {
		offer = buyer.Balance
	}
	if offer > n.sellerPrice {
		offer = n.sellerPrice
	}

	ts := n.clock.NowNs()
	tx := model.Transaction{
		ID:            utils.GenerateID(),
		RunID:         n.runID,
		ParticipantID: buyer.ID,
		ItemID:        n.item.ID,
		Amount:        offer,
		SellerPrice:   n.sellerPrice,
		TimestampNs:   ts,
	}
	if err := n.svc.ledger.RecordTransaction(tx); err != nil {
		return 0, 0, fmt.Errorf("record offer: %w", err)
	}
	if err := n.log("Buyer %s made an offer %d. | Time: %s", buyer.Name, offer, simulation.FormatNs(ts)); err != nil {
		return 0, 0, err
	}
	return offer, ts, nil
}

// resolveDeal settles the ledger's highest offer, ties broken by earliest
// timestamp, and needs the buyers snapshot only for the sale message.
func (n *itemNegotiation) resolveDeal() (simulation.Outcome, error) {
	winning, err := n.svc.ledger.WinningTransaction(n.runID, n.item.ID)
	if errors.Is(err, simerrors.ErrNoTransactions) {
		if err := n.log("Negotiation ends. No deal."); err != nil {
			return simulation.Outcome{}, err
		}
		return n.outcome(simulation.StateNoDeal), nil
	}
	if err != nil {
		return simulation.Outcome{}, fmt.Errorf("resolve deal: %w", err)
	}

	if err := n.svc.ledger.MarkSettled(winning.ID); err != nil {
		return simulation.Outcome{}, fmt.Errorf("settle transaction: %w", err)
	}
	if err := n.svc.ledger.MarkItemSold(n.item.ID); err != nil {
		return simulation.Outcome{}, fmt.Errorf("mark item sold: %w", err)
	}

	winnerName := n.buyerName(winning.ParticipantID)
	if err := n.log("Negotiation ends. %s sold to %s.", n.item.Name, winnerName); err != nil {
		return simulation.Outcome{}, err
	}

	out := n.outcome(simulation.StateSold)
	out.WinnerID = winning.ParticipantID
	out.WinnerName = winnerName
	out.Amount = winning.Amount
	return out, nil
}

func (n *itemNegotiation) buyerName(id string) string {
	if name, ok := n.names[id]; ok {
		return name
	}
	return id
}
