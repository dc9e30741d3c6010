// Package ranker orders a batch of bids and computes total winnings.
package ranker

import (
	"errors"
	"fmt"
	"io"
	"math"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/lox/camelcards/cards"
)

// ErrNegativeStake is returned when a bid carries a stake below zero.
var ErrNegativeStake = errors.New("negative stake")

// ErrTotalOverflow is returned when a winning or the total exceeds int64.
var ErrTotalOverflow = errors.New("total winnings overflow")

// Bid is one raw record: a hand string and the stake placed on it.
type Bid struct {
	Hand  string
	Stake int64
	Line  int // source line, 0 if unknown
}

// RankedHand is one hand of a ranked batch.
type RankedHand struct {
	Rank       int // 1 = weakest
	Hand       cards.Hand
	Category   cards.Category
	Resolution cards.Resolution // zero value in Standard mode
	Stake      int64
	Winnings   int64
	Line       int
}

// Result is a ranked batch, weakest hand first.
type Result struct {
	Mode  cards.Mode
	Hands []RankedHand
	Total int64
}

// Ranker ranks batches of bids.
type Ranker struct {
	logger *log.Logger
}

// New creates a ranker. A nil logger discards output.
func New(logger *log.Logger) *Ranker {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Ranker{logger: logger}
}

// TotalWinnings ranks the bids under the mode and returns the sum of
// rank * stake. An empty batch yields 0.
func TotalWinnings(bids []Bid, mode cards.Mode) (int64, error) {
	res, err := New(nil).Rank(bids, mode)
	if err != nil {
		return 0, err
	}
	return res.Total, nil
}

type entry struct {
	scored cards.Scored
	bid    Bid
}

// Rank parses and scores every bid, sorts them weakest first and assigns
// ranks. The batch fails as a whole if any hand or stake is invalid.
func (r *Ranker) Rank(bids []Bid, mode cards.Mode) (*Result, error) {
	entries := make([]entry, 0, len(bids))
	for i, bid := range bids {
		hand, err := cards.ParseHand(bid.Hand)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", describe(i, bid), err)
		}
		if bid.Stake < 0 {
			return nil, fmt.Errorf("%s: %w: %d", describe(i, bid), ErrNegativeStake, bid.Stake)
		}
		entries = append(entries, entry{scored: cards.Score(hand, mode), bid: bid})
	}

	// Stable so that identical hand strings keep their input order.
	slices.SortStableFunc(entries, func(a, b entry) int {
		return a.scored.Compare(b.scored)
	})

	res := &Result{
		Mode:  mode,
		Hands: make([]RankedHand, len(entries)),
	}
	for i, e := range entries {
		rank := i + 1
		if e.bid.Stake > (math.MaxInt64-res.Total)/int64(rank) {
			return nil, fmt.Errorf("%w: hand %s at rank %d with stake %d", ErrTotalOverflow, e.scored.Hand, rank, e.bid.Stake)
		}
		won := int64(rank) * e.bid.Stake
		ranked := RankedHand{
			Rank:       rank,
			Hand:       e.scored.Hand,
			Category:   e.scored.Category,
			Resolution: e.scored.Resolution,
			Stake:      e.bid.Stake,
			Winnings:   won,
			Line:       e.bid.Line,
		}
		res.Hands[i] = ranked
		res.Total += won

		r.logger.Debug("hand won",
			"mode", mode,
			"hand", ranked.Hand,
			"category", ranked.Category,
			"rank", rank,
			"stake", ranked.Stake,
			"winnings", won)
	}

	r.logger.Info("ranked batch", "mode", mode, "hands", len(res.Hands), "total", res.Total)
	return res, nil
}

func describe(i int, bid Bid) string {
	if bid.Line > 0 {
		return fmt.Sprintf("line %d", bid.Line)
	}
	return fmt.Sprintf("bid %d", i+1)
}

// CategoryCounts returns how many hands of the result fall in each category.
func (res *Result) CategoryCounts() map[cards.Category]int {
	counts := make(map[cards.Category]int)
	for _, h := range res.Hands {
		counts[h.Category]++
	}
	return counts
}
