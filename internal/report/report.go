// Package report renders ranked batches for the terminal and for result files.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/camelcards/cards"
	"github.com/lox/camelcards/internal/ranker"
)

// Options controls terminal output.
type Options struct {
	ShowHands bool
	Color     string // auto, always or never
}

// Printer writes styled reports.
type Printer struct {
	w         io.Writer
	showHands bool

	headerStyle   lipgloss.Style
	handStyle     lipgloss.Style
	categoryStyle lipgloss.Style
	wildStyle     lipgloss.Style
	totalStyle    lipgloss.Style
	dimStyle      lipgloss.Style
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer, opts Options) *Printer {
	r := lipgloss.NewRenderer(w)
	switch opts.Color {
	case "never":
		r.SetColorProfile(termenv.Ascii)
	case "always":
		r.SetColorProfile(termenv.ANSI256)
	}

	return &Printer{
		w:             w,
		showHands:     opts.ShowHands,
		headerStyle:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		handStyle:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		categoryStyle: r.NewStyle().Foreground(lipgloss.Color("12")),
		wildStyle:     r.NewStyle().Foreground(lipgloss.Color("11")),
		totalStyle:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		dimStyle:      r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Print writes the per-hand tables (when enabled), one total per mode, and a
// timing footer.
func (p *Printer) Print(results []*ranker.Result, elapsed time.Duration) error {
	if p.showHands {
		for _, res := range results {
			if err := p.printHands(res); err != nil {
				return err
			}
			fmt.Fprintln(p.w)
		}
	}

	w := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	for _, res := range results {
		fmt.Fprintf(w, "%s\t%s\n",
			p.headerStyle.Render(res.Mode.String()),
			p.totalStyle.Render(fmt.Sprintf("%d", res.Total)))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	hands := 0
	if len(results) > 0 {
		hands = len(results[0].Hands)
	}
	_, err := fmt.Fprintf(p.w, "\n%s\n", p.dimStyle.Render(
		fmt.Sprintf("%d hands ranked in %v", hands, elapsed.Truncate(time.Microsecond))))
	return err
}

func (p *Printer) printHands(res *ranker.Result) error {
	fmt.Fprintf(p.w, "%s\n", p.headerStyle.Render(res.Mode.String()))

	w := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		p.headerStyle.Render("rank"),
		p.headerStyle.Render("hand"),
		p.headerStyle.Render("category"),
		p.headerStyle.Render("stake"),
		p.headerStyle.Render("won"))

	for _, h := range res.Hands {
		category := p.categoryStyle.Render(h.Category.String())
		if res.Mode == cards.Wildcard && h.Resolution.Wildcards > 0 {
			category += " " + p.wildStyle.Render(fmt.Sprintf("(%s=%s)", cards.WildSymbol, h.Resolution.Substitute))
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\n",
			h.Rank,
			p.handStyle.Render(h.Hand.String()),
			category,
			h.Stake,
			h.Winnings)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	counts := res.CategoryCounts()
	parts := make([]string, 0, len(counts))
	for _, c := range cards.Categories {
		if n := counts[c]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s: %d", c, n))
		}
	}
	if len(parts) == 0 {
		return nil
	}
	_, err := fmt.Fprintln(p.w, p.dimStyle.Render(strings.Join(parts, ", ")))
	return err
}

// PrintClassification writes one line per hand with its category in every mode.
func (p *Printer) PrintClassification(hands []cards.Hand) error {
	w := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		p.headerStyle.Render("hand"),
		p.headerStyle.Render(cards.Standard.String()),
		p.headerStyle.Render(cards.Wildcard.String()))

	for _, h := range hands {
		res := cards.Resolve(h)
		wild := p.categoryStyle.Render(res.Category.String())
		if h.Contains(cards.WildSymbol) {
			wild += " " + p.wildStyle.Render(fmt.Sprintf("(%s=%s -> %s)", cards.WildSymbol, res.Substitute, res.Representative))
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			p.handStyle.Render(h.String()),
			p.categoryStyle.Render(cards.Standard.Evaluate(h).String()),
			wild)
	}
	return w.Flush()
}

// Summary returns the plain "MODE TOTAL" lines written to result files.
func Summary(results []*ranker.Result) []byte {
	var b strings.Builder
	for _, res := range results {
		fmt.Fprintf(&b, "%s %d\n", res.Mode, res.Total)
	}
	return []byte(b.String())
}
