package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/camelcards/cards"
)

// ClassifyCmd prints the category of each hand under both rule sets.
type ClassifyCmd struct {
	Hands []string `arg:"" name:"hand" help:"Hands to classify, e.g. KTJJT"`
}

func (cmd ClassifyCmd) Run(g *Globals) error {
	return cmd.run(g, os.Stdout)
}

func (cmd ClassifyCmd) run(g *Globals, stdout io.Writer) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	hands := make([]cards.Hand, 0, len(cmd.Hands))
	for _, s := range cmd.Hands {
		h, err := cards.ParseHand(s)
		if err != nil {
			return err
		}
		hands = append(hands, h)
	}
	return newPrinter(stdout, cfg).PrintClassification(hands)
}
