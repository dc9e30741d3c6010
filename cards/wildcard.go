package cards

import "fmt"

// Resolution is the outcome of resolving wildcards in a hand.
type Resolution struct {
	// Category is the strongest category reachable by substituting wildcards.
	Category Category
	// Natural is the category with wildcards counted as ordinary symbols.
	Natural Category
	// Wildcards is the number of wildcard symbols in the hand.
	Wildcards int
	// Substitute is the symbol every wildcard stands for. Only meaningful
	// when Wildcards > 0; an all-wildcard hand substitutes WildSymbol itself.
	Substitute Symbol
	// Representative is the hand with the substitution applied. It exists for
	// inspection only: tie-breaks always use the original hand.
	Representative Hand
}

// Resolve computes the best category of a hand when WildSymbol is a joker.
func Resolve(h Hand) Resolution {
	counts := h.Counts()
	natural := classifyCounts(counts)
	wilds := int(counts[WildSymbol])

	res := Resolution{
		Category:       natural,
		Natural:        natural,
		Wildcards:      wilds,
		Substitute:     WildSymbol,
		Representative: h,
	}
	if wilds == 0 {
		return res
	}

	res.Category = promote(natural, wilds)
	res.Substitute = substitute(counts)
	res.Representative = h.Replace(WildSymbol, res.Substitute)
	return res
}

// promote maps the natural category of a hand holding wilds jokers to the
// best category the jokers can reach.
func promote(natural Category, wilds int) Category {
	switch {
	case natural == FiveOfAKind && wilds == 5:
		return FiveOfAKind
	case natural == FourOfAKind && (wilds == 1 || wilds == 4):
		// JXXXX or JJJJX
		return FiveOfAKind
	case natural == FullHouse && (wilds == 2 || wilds == 3):
		// JJXXX or JJJXX
		return FiveOfAKind
	case natural == ThreeOfAKind && (wilds == 1 || wilds == 3):
		// JXXXY or JJJXY
		return FourOfAKind
	case natural == TwoPair && wilds == 2:
		// JJXXY: jokers join the other pair
		return FourOfAKind
	case natural == TwoPair && wilds == 1:
		// XXYYJ: joker joins the stronger pair
		return FullHouse
	case natural == OnePair && (wilds == 1 || wilds == 2):
		// JXXYZ or JJXYZ
		return ThreeOfAKind
	case natural == HighCard && wilds == 1:
		return OnePair
	default:
		panic(fmt.Sprintf("cards: %s cannot hold %d wildcards", natural, wilds))
	}
}

// substitute picks the symbol jokers should copy: the most frequent natural
// symbol, preferring the stronger symbol (wildcard order) on ties.
func substitute(c Counts) Symbol {
	best := WildSymbol
	bestCount := uint8(0)
	for s := Two; s <= Ace; s++ {
		if s == WildSymbol || c[s] == 0 {
			continue
		}
		if c[s] > bestCount || (c[s] == bestCount && Wildcard.Strength(s) > Wildcard.Strength(best)) {
			best = s
			bestCount = c[s]
		}
	}
	return best
}
