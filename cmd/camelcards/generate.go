package main

import (
	"fmt"
	"io"
	"os"

	"github.com/coder/quartz"

	"github.com/lox/camelcards/internal/deal"
	"github.com/lox/camelcards/internal/input"
)

// GenerateCmd prints a random bids file.
type GenerateCmd struct {
	Count    int    `short:"n" help:"Number of bids" default:"1000"`
	MaxStake int64  `help:"Largest stake to draw" default:"1000"`
	Unique   bool   `help:"Never repeat a hand" default:"true" negatable:""`
	Seed     *int64 `help:"Random seed for reproducible batches"`
}

func (cmd GenerateCmd) Run(g *Globals) error {
	return cmd.run(g, os.Stdout, os.Stderr, quartz.NewReal())
}

func (cmd GenerateCmd) run(g *Globals, stdout, stderr io.Writer, clock quartz.Clock) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	logger := newLogger(stderr, cfg.Level())

	var seed int64
	if cmd.Seed != nil {
		seed = *cmd.Seed
	} else {
		seed = clock.Now().UnixNano()
	}

	bids, err := deal.Batch(deal.NewRand(seed), deal.Config{
		Count:    cmd.Count,
		MaxStake: cmd.MaxStake,
		Unique:   cmd.Unique,
	})
	if err != nil {
		return err
	}
	logger.Debug("generated bids", "count", len(bids), "seed", seed)

	return input.Format(stdout, bids)
}
