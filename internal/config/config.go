// Package config loads camelcards settings from an HCL file.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/camelcards/cards"
)

// ModeBoth ranks the batch once per mode.
const ModeBoth = "both"

// Config represents the complete configuration
type Config struct {
	Mode     string          `hcl:"mode,optional"`
	LogLevel string          `hcl:"log_level,optional"`
	Report   *ReportSettings `hcl:"report,block"`
}

// ReportSettings controls how results are presented
type ReportSettings struct {
	ShowHands bool   `hcl:"show_hands,optional"`
	Color     string `hcl:"color,optional"`
	Output    string `hcl:"output,optional"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Mode:     ModeBoth,
		LogLevel: "info",
		Report: &ReportSettings{
			ShowHands: false,
			Color:     "auto",
		},
	}
}

// LoadConfig loads configuration from an HCL file. A missing file yields the defaults.
func LoadConfig(filename string) (*Config, error) {
	if filename == "" {
		return DefaultConfig(), nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if config.Mode == "" {
		config.Mode = ModeBoth
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.Report == nil {
		config.Report = &ReportSettings{}
	}
	if config.Report.Color == "" {
		config.Report.Color = "auto"
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := c.Modes(); err != nil {
		return err
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	switch c.Report.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color setting %q (want auto, always or never)", c.Report.Color)
	}
	return nil
}

// Modes expands the mode setting into the modes to rank under.
func (c *Config) Modes() ([]cards.Mode, error) {
	if strings.EqualFold(strings.TrimSpace(c.Mode), ModeBoth) {
		return []cards.Mode{cards.Standard, cards.Wildcard}, nil
	}
	m, err := cards.ParseMode(c.Mode)
	if err != nil {
		return nil, err
	}
	return []cards.Mode{m}, nil
}

// Level returns the parsed log level, falling back to info.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
