package auction

import (
	"errors"
	"fmt"
	"math/rand"
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
	// MaxRounds caps the bidding loop. Two bidders stuck at the same
	// balance ceiling would otherwise trade clamped bids forever. 0 means
	// DefaultMaxRounds.
	MaxRounds int
}

// DefaultMaxRounds bounds the elimination loop.
const DefaultMaxRounds = 64

// Service runs English-style elimination auctions: one concurrent worker
// per item, every state change recorded on the ledger.
type Service struct {
	ledger ledger.Ledger
	cfg    Config
}

// NewService creates a new auction Service instance.
func NewService(l ledger.Ledger, cfg Config) *Service {
	if cfg.MaxRounds <= 0 {
		cfg.MaxRounds = DefaultMaxRounds
	}
	return &Service{ledger: l, cfg: cfg}
}

// RunResult is what Simulate returns: the run ID plus one outcome per item.
type RunResult struct {
	RunID    string               `json:"run_id"`
	Outcomes []simulation.Outcome `json:"outcomes"`
}

// Simulate creates a run, snapshots the requested bidders and items once,
// and auctions every item on a bounded worker pool. It blocks until all
// item workers finish. Unknown IDs shrink the snapshots; empty sets yield
// a run with zero items simulated. A single item's failure surfaces as a
// failed outcome without cancelling its siblings.
func (s *Service) Simulate(bidderIDs, itemIDs []string) (RunResult, error) {
	bidders, err := s.ledger.GetParticipantsByIDs(model.KindAuction, bidderIDs)
	if err != nil {
		return RunResult{}, fmt.Errorf("auction: load bidders: %w", err)
	}
	items, err := s.ledger.GetItemsByIDs(model.KindAuction, itemIDs)
	if err != nil {
		return RunResult{}, fmt.Errorf("auction: load items: %w", err)
	}

	run := model.Run{ID: utils.GenerateID(), Kind: model.KindAuction, CreatedAt: time.Now().UTC()}
	if err := s.ledger.CreateRun(run); err != nil {
		return RunResult{}, fmt.Errorf("auction: create run: %w", err)
	}

	seed := s.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	outcomes := make([]simulation.Outcome, len(items))
	simulation.RunPool(len(items), func(i int) {
		outcomes[i] = s.auctionItem(run.ID, items[i], bidders, simulation.NewRand(seed, i))
	})

	utils.Info("auction run finished", map[string]any{
		"run_id":  run.ID,
		"items":   len(items),
		"bidders": len(bidders),
	})

	return RunResult{RunID: run.ID, Outcomes: outcomes}, nil
}

// ActivityLog returns the run's chronological narrative: one ordered
// message sequence per item, items in order of first activity.
func (s *Service) ActivityLog(runID string) ([][]string, error) {
	itemIDs, err := s.ledger.ItemIDsWithActivity(runID)
	if err != nil {
		return nil, fmt.Errorf("auction: activity log for run %s: %w", runID, err)
	}

	log := make([][]string, 0, len(itemIDs))
	for _, itemID := range itemIDs {
		messages, err := s.ledger.ActivityMessages(runID, itemID)
		if err != nil {
			return nil, fmt.Errorf("auction: activity log for run %s: %w", runID, err)
		}
		log = append(log, messages)
	}
	return log, nil
}

// ListRuns returns all auction runs, newest first.
func (s *Service) ListRuns() ([]model.Run, error) {
	return s.ledger.ListRuns(model.KindAuction)
}

// ListBidders returns every bidder available for selection.
func (s *Service) ListBidders() ([]model.Participant, error) {
	return s.ledger.GetParticipants(model.KindAuction)
}

// ListItems returns every auction item available for selection.
func (s *Service) ListItems() ([]model.Item, error) {
	return s.ledger.GetItems(model.KindAuction)
}

// itemAuction is the per-item state machine. One goroutine owns it; only
// that goroutine writes into the item's ledger namespace.
type itemAuction struct {
	svc    *Service
	runID  string
	item   model.Item
	rng    *rand.Rand
	clock  *simulation.Clock
	names  map[string]string // participantID -> name
	rounds int
}

func (s *Service) auctionItem(runID string, item model.Item, bidders []model.Participant, rng *rand.Rand) simulation.Outcome {
	a := &itemAuction{
		svc:   s,
		runID: runID,
		item:  item,
		rng:   rng,
		clock: &simulation.Clock{},
		names: make(map[string]string, len(bidders)),
	}
	for _, b := range bidders {
		a.names[b.ID] = b.Name
	}

	outcome, err := a.run(bidders)
	if err != nil {
		utils.Error("auction item failed", map[string]any{
			"run_id":  runID,
			"item_id": item.ID,
			"error":   err.Error(),
		})
		return simulation.Outcome{
			ItemID:   item.ID,
			ItemName: item.Name,
			State:    simulation.StateFailed,
			Rounds:   a.rounds,
			Err:      err,
			Error:    err.Error(),
		}
	}
	return outcome
}

func (a *itemAuction) log(format string, args ...any) error {
	entry := model.ActivityLogEntry{
		ID:          utils.GenerateID(),
		RunID:       a.runID,
		ItemID:      a.item.ID,
		Message:     fmt.Sprintf(format, args...),
		TimestampNs: a.clock.NowNs(),
	}
	if err := a.svc.ledger.AppendActivity(entry); err != nil {
		return fmt.Errorf("append activity: %w", err)
	}
	return nil
}

func (a *itemAuction) run(bidders []model.Participant) (simulation.Outcome, error) {
	if err := a.log("Auction for %s", a.item.Name); err != nil {
		return simulation.Outcome{}, err
	}
	if err := a.log("Started from: %d", a.item.Price); err != nil {
		return simulation.Outcome{}, err
	}

	active := append([]model.Participant(nil), bidders...)
	currentBid := a.item.Price
	lastBidder := ""

	for len(active) > 1 && a.rounds < a.svc.cfg.MaxRounds {
		a.rounds++

		order := roundOrder(a.rng, active, lastBidder)
		eliminated := make(map[string]bool)

		for _, bidder := range order {
			if currentBid > bidder.Balance {
				ts := a.clock.NowNs()
				if err := a.log("%s left. | Time: %s", bidder.Name, simulation.FormatNs(ts)); err != nil {
					return simulation.Outcome{}, err
				}
				eliminated[bidder.ID] = true
				continue
			}

			bid := int(float64(currentBid) * simulation.Uniform(a.rng, 1.1, 2.0))
			if bid > bidder.Balance {
				bid = bidder.Balance
			}

			ts := a.clock.NowNs()
			tx := model.Transaction{
				ID:            utils.GenerateID(),
				RunID:         a.runID,
				ParticipantID: bidder.ID,
				ItemID:        a.item.ID,
				Amount:        bid,
				TimestampNs:   ts,
			}
			if err := a.svc.ledger.RecordTransaction(tx); err != nil {
				return simulation.Outcome{}, fmt.Errorf("record bid: %w", err)
			}
			if err := a.log("%s placed a bid %d. | Time: %s", bidder.Name, bid, simulation.FormatNs(ts)); err != nil {
				return simulation.Outcome{}, err
			}

			currentBid = bid
			lastBidder = bidder.Name
		}

		if len(eliminated) > 0 {
			remaining := active[:0]
			for _, b := range active {
				if !eliminated[b.ID] {
					remaining = append(remaining, b)
				}
			}
			active = remaining
		}
	}

	return a.resolve()
}

// resolve settles the outcome from the transaction ledger. The winner is
// the maximum-amount record regardless of active-set survival: an
// eliminated bidder's earlier bid can still be the historical maximum.
func (a *itemAuction) resolve() (simulation.Outcome, error) {
	winning, err := a.svc.ledger.WinningTransaction(a.runID, a.item.ID)
	if errors.Is(err, simerrors.ErrNoTransactions) {
		// Nobody could meet the starting price, so there is no candidate
		// to settle. Distinct terminal outcome, not a failure.
		if err := a.log("Auction ends. No bids were placed."); err != nil {
			return simulation.Outcome{}, err
		}
		return simulation.Outcome{
			ItemID:   a.item.ID,
			ItemName: a.item.Name,
			State:    simulation.StateNoWinner,
			Rounds:   a.rounds,
		}, nil
	}
	if err != nil {
		return simulation.Outcome{}, fmt.Errorf("resolve winner: %w", err)
	}

	if err := a.svc.ledger.MarkSettled(winning.ID); err != nil {
		return simulation.Outcome{}, fmt.Errorf("settle transaction: %w", err)
	}
	if err := a.svc.ledger.MarkItemSold(a.item.ID); err != nil {
		return simulation.Outcome{}, fmt.Errorf("mark item sold: %w", err)
	}

	winnerName := a.names[winning.ParticipantID]
	if err := a.log("%s sold to %s.", a.item.Name, winnerName); err != nil {
		return simulation.Outcome{}, err
	}

	return simulation.Outcome{
		ItemID:     a.item.ID,
		ItemName:   a.item.Name,
		State:      simulation.StateSold,
		WinnerID:   winning.ParticipantID,
		WinnerName: winnerName,
		Amount:     winning.Amount,
		Rounds:     a.rounds,
	}, nil
}

// roundOrder shuffles the active set, avoiding an immediate repeat of the
// previous round's last bidder when the set is large enough to allow it.
func roundOrder(rng *rand.Rand, active []model.Participant, lastBidder string) []model.Participant {
	order := append([]model.Participant(nil), active...)
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	if len(order) > 1 && order[0].Name == lastBidder {
		swap := 1 + rng.Intn(len(order)-1)
		order[0], order[swap] = order[swap], order[0]
	}
	return order
}
