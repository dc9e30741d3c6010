package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/camelcards/cards"
	"github.com/lox/camelcards/internal/ranker"
)

func rankExample(t *testing.T) []*ranker.Result {
	t.Helper()
	bids := []ranker.Bid{
		{Hand: "32T3K", Stake: 765},
		{Hand: "T55J5", Stake: 684},
		{Hand: "KK677", Stake: 28},
		{Hand: "KTJJT", Stake: 220},
		{Hand: "QQQJA", Stake: 483},
	}
	var results []*ranker.Result
	for _, m := range cards.Modes {
		res, err := ranker.New(nil).Rank(bids, m)
		require.NoError(t, err)
		results = append(results, res)
	}
	return results
}

func TestPrintTotals(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	p := NewPrinter(&buf, Options{Color: "never"})
	require.NoError(t, p.Print(rankExample(t), 1500*time.Microsecond))

	assert.Equal(t, "standard  6440\nwildcard  5905\n\n5 hands ranked in 1.5ms\n", buf.String())
}

func TestPrintHands(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	p := NewPrinter(&buf, Options{Color: "never", ShowHands: true})
	require.NoError(t, p.Print(rankExample(t), time.Millisecond))

	out := buf.String()
	assert.Contains(t, out, "rank  hand   category")
	assert.Contains(t, out, "Three of a Kind")
	assert.Contains(t, out, "Four of a Kind (J=T)")
	assert.Contains(t, out, "QQQJA")
	assert.Contains(t, out, "2415")
	assert.Contains(t, out, "One Pair: 1, Two Pair: 2, Three of a Kind: 2\n")
	assert.Contains(t, out, "One Pair: 1, Two Pair: 1, Four of a Kind: 3\n")
}

func TestPrintHandsEmptyBatch(t *testing.T) {
	t.Parallel()
	res, err := ranker.New(nil).Rank(nil, cards.Standard)
	require.NoError(t, err)

	var buf bytes.Buffer
	p := NewPrinter(&buf, Options{Color: "never", ShowHands: true})
	require.NoError(t, p.Print([]*ranker.Result{res}, 0))
	assert.NotContains(t, buf.String(), ":")
	assert.Contains(t, buf.String(), "standard  0\n")
}

func TestPrintClassification(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	p := NewPrinter(&buf, Options{Color: "never"})
	hands := []cards.Hand{cards.MustParseHand("KTJJT"), cards.MustParseHand("32T3K")}
	require.NoError(t, p.PrintClassification(hands))

	out := buf.String()
	assert.Contains(t, out, "KTJJT  Two Pair  Four of a Kind (J=T -> KTTTT)")
	assert.Contains(t, out, "32T3K  One Pair  One Pair")
}

func TestSummary(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "standard 6440\nwildcard 5905\n", string(Summary(rankExample(t))))
	assert.Empty(t, Summary(nil))
}

func TestWriteSummary(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "winnings.txt")

	require.NoError(t, os.WriteFile(path, []byte("stale"), 0600))
	require.NoError(t, WriteSummary(path, rankExample(t)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "standard 6440\nwildcard 5905\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not remain")
}

func TestWriteSummaryInvalidDir(t *testing.T) {
	t.Parallel()
	err := WriteSummary("/nonexistent/dir/winnings.txt", nil)
	assert.Error(t, err)
}
