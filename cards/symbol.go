// Package cards implements the Camel Cards hand engine: parsing, category
// classification, wildcard resolution and hand comparison.
package cards

import "fmt"

// Symbol is one of the 13 card labels. Values follow the natural order,
// Two = 0 through Ace = 12.
type Symbol uint8

const (
	Two Symbol = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumSymbols is the size of the alphabet.
const NumSymbols = 13

// WildSymbol is the symbol treated as a wildcard in Wildcard mode.
const WildSymbol = Jack

const symbolChars = "23456789TJQKA"

// symbolIndex maps an input byte to Symbol+1; zero marks a byte outside the alphabet.
var symbolIndex = func() [256]uint8 {
	var idx [256]uint8
	for i := 0; i < len(symbolChars); i++ {
		idx[symbolChars[i]] = uint8(i) + 1
	}
	return idx
}()

// ParseSymbol converts a single label such as 'K' or '7' into a Symbol.
func ParseSymbol(c byte) (Symbol, error) {
	v := symbolIndex[c]
	if v == 0 {
		return 0, fmt.Errorf("unknown symbol %q", c)
	}
	return Symbol(v - 1), nil
}

// Byte returns the single-character label.
func (s Symbol) Byte() byte {
	if s >= NumSymbols {
		return '?'
	}
	return symbolChars[s]
}

// String returns the single-character label.
func (s Symbol) String() string {
	return string(s.Byte())
}
