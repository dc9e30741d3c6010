package cards

import (
	"fmt"
	"strings"
)

// Mode selects the rule set: whether J is a wildcard, and which symbol order
// is used for positional tie-breaks.
type Mode uint8

const (
	// Standard orders symbols 2 < 3 < ... < T < J < Q < K < A.
	Standard Mode = iota
	// Wildcard treats J as a joker for classification and orders it below 2.
	Wildcard
)

// Modes lists every mode in reporting order.
var Modes = [...]Mode{Standard, Wildcard}

// strength tables, indexed by Symbol. Higher is stronger.
var (
	standardOrder = [NumSymbols]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	wildcardOrder = [NumSymbols]uint8{1, 2, 3, 4, 5, 6, 7, 8, 9, 0, 10, 11, 12}
)

// Strength returns the positional strength of a symbol under the mode.
func (m Mode) Strength(s Symbol) int {
	if m == Wildcard {
		return int(wildcardOrder[s])
	}
	return int(standardOrder[s])
}

// Evaluate returns the category of a hand under the mode.
func (m Mode) Evaluate(h Hand) Category {
	return Score(h, m).Category
}

// String returns the mode name as accepted by ParseMode.
func (m Mode) String() string {
	switch m {
	case Standard:
		return "standard"
	case Wildcard:
		return "wildcard"
	default:
		return fmt.Sprintf("mode(%d)", m)
	}
}

// ParseMode parses "standard" or "wildcard" (case insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard":
		return Standard, nil
	case "wildcard", "joker", "jokers":
		return Wildcard, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (want standard or wildcard)", s)
	}
}
