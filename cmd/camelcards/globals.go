package main

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/camelcards/internal/config"
	"github.com/lox/camelcards/internal/report"
)

// Globals are flags shared by every command. Non-empty values override the
// configuration file.
type Globals struct {
	Config   string `short:"c" help:"Path to HCL configuration file" default:"camelcards.hcl" env:"CAMELCARDS_CONFIG"`
	LogLevel string `help:"Log level (debug, info, warn, error)" env:"CAMELCARDS_LOG_LEVEL"`
	Debug    bool   `help:"Enable debug logging (per-hand winnings)"`
	Color    string `help:"Colorize output (auto, always, never)" env:"CAMELCARDS_COLOR"`
}

// load reads the configuration file and applies flag overrides.
func (g *Globals) load() (*config.Config, error) {
	cfg, err := config.LoadConfig(g.Config)
	if err != nil {
		return nil, err
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if g.Debug {
		cfg.LogLevel = "debug"
	}
	if g.Color != "" {
		cfg.Report.Color = g.Color
	}
	return cfg, nil
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "camelcards",
		Level:           level,
	})
}

func newPrinter(w io.Writer, cfg *config.Config) *report.Printer {
	return report.NewPrinter(w, report.Options{
		ShowHands: cfg.Report.ShowHands,
		Color:     cfg.Report.Color,
	})
}
