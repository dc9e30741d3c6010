package cards

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		a, b string
		mode Mode
		want int
	}{
		{"same category falls through to positions", "AAAA2", "22223", Standard, 1},
		{"stronger category wins", "22223", "AAKKQ", Standard, 1},
		{"first position decides", "33332", "2AAAA", Standard, 1},
		{"later position decides", "KK677", "KTJJT", Standard, 1},
		{"identical", "QQQJA", "QQQJA", Standard, 0},
		{"jack above ten in standard mode", "JKKK2", "TKKK2", Standard, 1},
		{"wildcard jack is weakest", "JKKK2", "QQQQ2", Wildcard, -1},
		{"wildcard jack below two", "J2222", "22222", Wildcard, -1},
		{"wildcard category from substitution", "KTJJT", "QQQJA", Wildcard, 1},
		{"wildcard promotes past natural", "T55J5", "KK677", Wildcard, 1},
		{"standard keeps natural category", "T55J5", "KK677", Standard, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := MustParseHand(tt.a), MustParseHand(tt.b)
			assert.Equal(t, tt.want, Compare(a, b, tt.mode))
			assert.Equal(t, -tt.want, Compare(b, a, tt.mode))
		})
	}
}

func TestComparePositionMatters(t *testing.T) {
	t.Parallel()
	a := MustParseHand("2AAAA")
	b := MustParseHand("A2AAA")
	for _, m := range Modes {
		assert.Equal(t, Classify(a), Classify(b))
		assert.Equal(t, -1, Compare(a, b, m), "mode %s", m)
	}
}

func TestScoreCarriesResolution(t *testing.T) {
	t.Parallel()
	h := MustParseHand("KTJJT")

	wild := Score(h, Wildcard)
	assert.Equal(t, FourOfAKind, wild.Category)
	assert.Equal(t, Resolve(h), wild.Resolution)
	assert.Equal(t, Ten, wild.Resolution.Substitute)

	std := Score(h, Standard)
	assert.Equal(t, TwoPair, std.Category)
	assert.Zero(t, std.Resolution)
}

func TestCompareIsTotalOrder(t *testing.T) {
	t.Parallel()
	hands := sampleHands(600)

	for _, m := range Modes {
		t.Run(m.String(), func(t *testing.T) {
			scored := make([]Scored, len(hands))
			for i, h := range hands {
				scored[i] = Score(h, m)
			}
			slices.SortFunc(scored, Scored.Compare)

			for i := range scored {
				for j := range scored {
					got := scored[i].Compare(scored[j])
					switch {
					case i == j:
						require.Equal(t, 0, got)
					case i < j:
						require.Equal(t, -1, got, "%s vs %s", scored[i].Hand, scored[j].Hand)
					default:
						require.Equal(t, 1, got, "%s vs %s", scored[i].Hand, scored[j].Hand)
					}
				}
			}

			again := slices.Clone(scored)
			slices.SortStableFunc(again, Scored.Compare)
			assert.Equal(t, scored, again, "sorting a sorted batch must not reorder it")
		})
	}
}

func TestModeStrength(t *testing.T) {
	t.Parallel()
	assert.Greater(t, Standard.Strength(Jack), Standard.Strength(Ten))
	assert.Less(t, Standard.Strength(Jack), Standard.Strength(Queen))
	for s := Two; s <= Ace; s++ {
		if s != Jack {
			assert.Greater(t, Wildcard.Strength(s), Wildcard.Strength(Jack), "symbol %s", s)
		}
	}
	assert.Greater(t, Wildcard.Strength(Queen), Wildcard.Strength(Ten))
}

func TestParseMode(t *testing.T) {
	t.Parallel()
	for _, m := range Modes {
		got, err := ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	got, err := ParseMode(" Wildcard ")
	require.NoError(t, err)
	assert.Equal(t, Wildcard, got)

	_, err = ParseMode("both")
	assert.Error(t, err)
}

// sampleHands returns n distinct hands spread across the hand space.
func sampleHands(n int) []Hand {
	const total = 13 * 13 * 13 * 13 * 13
	stride := total / n
	hands := make([]Hand, 0, n)
	for i := 0; i < n; i++ {
		v := i*stride + i%7
		var h Hand
		for pos := HandSize - 1; pos >= 0; pos-- {
			h[pos] = Symbol(v % NumSymbols)
			v /= NumSymbols
		}
		hands = append(hands, h)
	}
	return hands
}
