package cards

import (
	"errors"
	"fmt"
)

// HandSize is the number of symbols in every hand.
const HandSize = 5

// ErrInvalidHand is returned for hands of the wrong length or with symbols
// outside the alphabet.
var ErrInvalidHand = errors.New("invalid hand")

// Hand is an ordered sequence of five symbols. Position matters for tie-breaks.
type Hand [HandSize]Symbol

// Counts is the symbol multiset of a hand, indexed by Symbol. Entries sum to 5.
type Counts [NumSymbols]uint8

// ParseHand parses a five character hand such as "KTJJT".
func ParseHand(s string) (Hand, error) {
	var h Hand
	if len(s) != HandSize {
		return h, fmt.Errorf("%w %q: has %d symbols, want %d", ErrInvalidHand, s, len(s), HandSize)
	}
	for i := 0; i < HandSize; i++ {
		sym, err := ParseSymbol(s[i])
		if err != nil {
			return h, fmt.Errorf("%w %q: position %d: %v", ErrInvalidHand, s, i+1, err)
		}
		h[i] = sym
	}
	return h, nil
}

// MustParseHand is like ParseHand but panics on error. Intended for tests and
// constant tables.
func MustParseHand(s string) Hand {
	h, err := ParseHand(s)
	if err != nil {
		panic(err)
	}
	return h
}

// String returns the hand in input notation.
func (h Hand) String() string {
	var b [HandSize]byte
	for i, s := range h {
		b[i] = s.Byte()
	}
	return string(b[:])
}

// Counts returns the multiplicity of every symbol in the hand.
func (h Hand) Counts() Counts {
	var c Counts
	for _, s := range h {
		c[s]++
	}
	return c
}

// Contains reports whether the symbol appears anywhere in the hand.
func (h Hand) Contains(s Symbol) bool {
	for _, x := range h {
		if x == s {
			return true
		}
	}
	return false
}

// Replace returns a copy of the hand with every occurrence of from replaced by to.
func (h Hand) Replace(from, to Symbol) Hand {
	for i, s := range h {
		if s == from {
			h[i] = to
		}
	}
	return h
}
