// Package deal generates reproducible random bid batches.
package deal

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/camelcards/cards"
	"github.com/lox/camelcards/internal/randutil"
	"github.com/lox/camelcards/internal/ranker"
)

// DistinctHands is the number of different hand strings.
const DistinctHands = cards.NumSymbols * cards.NumSymbols * cards.NumSymbols * cards.NumSymbols * cards.NumSymbols

// NewRand returns the seeded source used for batches.
func NewRand(seed int64) *rand.Rand {
	return randutil.New(seed)
}

// Config describes a batch to generate.
type Config struct {
	Count    int
	MaxStake int64 // stakes are drawn from [1, MaxStake]
	Unique   bool  // no repeated hand strings
}

// Hand draws one hand with every symbol equally likely at each position.
func Hand(rng *rand.Rand) cards.Hand {
	var h cards.Hand
	for i := range h {
		h[i] = cards.Symbol(rng.IntN(cards.NumSymbols))
	}
	return h
}

// Batch draws cfg.Count bids.
func Batch(rng *rand.Rand, cfg Config) ([]ranker.Bid, error) {
	if cfg.Count < 0 {
		return nil, fmt.Errorf("count must not be negative, got %d", cfg.Count)
	}
	if cfg.Unique && cfg.Count > DistinctHands {
		return nil, fmt.Errorf("cannot draw %d unique hands, only %d exist", cfg.Count, DistinctHands)
	}

	maxStake := cfg.MaxStake
	if maxStake < 1 {
		maxStake = 1000
	}

	bids := make([]ranker.Bid, 0, cfg.Count)
	seen := make(map[cards.Hand]struct{}, cfg.Count)
	for len(bids) < cfg.Count {
		h := Hand(rng)
		if cfg.Unique {
			if _, ok := seen[h]; ok {
				continue
			}
			seen[h] = struct{}{}
		}
		bids = append(bids, ranker.Bid{
			Hand:  h.String(),
			Stake: 1 + rng.Int64N(maxStake),
			Line:  len(bids) + 1,
		})
	}
	return bids, nil
}
