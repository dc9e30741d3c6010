package cards

import "fmt"

// Category enumerates the seven hand strengths ordered from weakest to strongest.
type Category uint8

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

// Categories lists every category from weakest to strongest.
var Categories = [...]Category{
	HighCard,
	OnePair,
	TwoPair,
	ThreeOfAKind,
	FullHouse,
	FourOfAKind,
	FiveOfAKind,
}

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case FiveOfAKind:
		return "Five of a Kind"
	default:
		panic(fmt.Sprintf("unknown category: %d", c))
	}
}

// Compare returns -1 if c is weaker, 0 if equal, 1 if c is stronger.
func (c Category) Compare(other Category) int {
	if c < other {
		return -1
	} else if c > other {
		return 1
	}
	return 0
}
