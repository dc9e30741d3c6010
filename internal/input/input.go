// Package input reads bid lists in the "HAND STAKE" line format.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lox/camelcards/internal/ranker"
)

// ErrMalformedLine is returned for lines that are not a hand followed by a stake.
var ErrMalformedLine = errors.New("malformed line")

// Parse reads one bid per line. Blank lines are skipped. Hands are not
// validated here; the ranker reports invalid hands with their line number.
func Parse(r io.Reader) ([]ranker.Bid, error) {
	var bids []ranker.Bid
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: %w: want \"HAND STAKE\", got %q", lineNo, ErrMalformedLine, line)
		}

		stake, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil || stake < 0 {
			return nil, fmt.Errorf("line %d: %w: stake %q is not a non-negative integer", lineNo, ErrMalformedLine, fields[1])
		}

		bids = append(bids, ranker.Bid{Hand: fields[0], Stake: stake, Line: lineNo})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading bids: %w", err)
	}
	return bids, nil
}

// ParseFile reads bids from a file, or from stdin when path is "-".
func ParseFile(path string) ([]ranker.Bid, error) {
	if path == "-" {
		return Parse(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bids file: %w", err)
	}
	defer f.Close()

	bids, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return bids, nil
}

// Format writes bids back in input format, one per line.
func Format(w io.Writer, bids []ranker.Bid) error {
	bw := bufio.NewWriter(w)
	for _, b := range bids {
		if _, err := fmt.Fprintf(bw, "%s %d\n", b.Hand, b.Stake); err != nil {
			return err
		}
	}
	return bw.Flush()
}
