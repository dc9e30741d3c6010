package main

import (
	"fmt"
	"io"
	"os"

	"github.com/coder/quartz"

	"github.com/lox/camelcards/internal/input"
	"github.com/lox/camelcards/internal/ranker"
	"github.com/lox/camelcards/internal/report"
)

// WinningsCmd ranks a bids file under one or both rule sets.
type WinningsCmd struct {
	File   string `arg:"" name:"file" help:"Bids file, one 'HAND STAKE' per line ('-' for stdin)"`
	Mode   string `short:"m" help:"Rule set: standard, wildcard or both" env:"CAMELCARDS_MODE"`
	Hands  bool   `help:"Show every ranked hand"`
	Output string `short:"o" help:"Also write the totals to this file"`
}

func (cmd WinningsCmd) Run(g *Globals) error {
	return cmd.run(g, os.Stdout, os.Stderr, quartz.NewReal())
}

func (cmd WinningsCmd) run(g *Globals, stdout, stderr io.Writer, clock quartz.Clock) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	if cmd.Mode != "" {
		cfg.Mode = cmd.Mode
	}
	if cmd.Hands {
		cfg.Report.ShowHands = true
	}
	if cmd.Output != "" {
		cfg.Report.Output = cmd.Output
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := newLogger(stderr, cfg.Level())
	modes, err := cfg.Modes()
	if err != nil {
		return err
	}

	bids, err := input.ParseFile(cmd.File)
	if err != nil {
		return err
	}
	logger.Debug("loaded bids", "file", cmd.File, "count", len(bids))

	start := clock.Now()
	rk := ranker.New(logger)
	results := make([]*ranker.Result, 0, len(modes))
	for _, m := range modes {
		res, err := rk.Rank(bids, m)
		if err != nil {
			return fmt.Errorf("%s mode: %w", m, err)
		}
		results = append(results, res)
	}
	elapsed := clock.Since(start)

	if err := newPrinter(stdout, cfg).Print(results, elapsed); err != nil {
		return err
	}

	if cfg.Report.Output != "" {
		if err := report.WriteSummary(cfg.Report.Output, results); err != nil {
			return fmt.Errorf("failed to write results: %w", err)
		}
		logger.Info("wrote results", "path", cfg.Report.Output)
	}
	return nil
}
