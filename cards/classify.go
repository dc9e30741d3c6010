package cards

import (
	"fmt"
	"slices"
)

// shape is the sorted (descending) list of non-zero multiplicities of a
// multiset, zero padded. Every valid hand maps to one of seven shapes.
type shape [HandSize]uint8

func shapeOf(c Counts) shape {
	var s shape
	n := 0
	for _, count := range c {
		if count > 0 {
			s[n] = count
			n++
		}
	}
	slices.SortFunc(s[:n], func(a, b uint8) int { return int(b) - int(a) })
	return s
}

// Classify returns the category of a hand, ignoring wildcards.
func Classify(h Hand) Category {
	return classifyCounts(h.Counts())
}

func classifyCounts(c Counts) Category {
	switch s := shapeOf(c); s {
	case shape{5}:
		return FiveOfAKind
	case shape{4, 1}:
		return FourOfAKind
	case shape{3, 2}:
		return FullHouse
	case shape{3, 1, 1}:
		return ThreeOfAKind
	case shape{2, 2, 1}:
		return TwoPair
	case shape{2, 1, 1, 1}:
		return OnePair
	case shape{1, 1, 1, 1, 1}:
		return HighCard
	default:
		// Counts always sum to HandSize, so the seven shapes above are exhaustive.
		panic(fmt.Sprintf("cards: unclassifiable multiset shape %v", s))
	}
}
