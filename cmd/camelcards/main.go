package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Winnings WinningsCmd      `cmd:"" help:"Rank a bids file and print total winnings"`
	Classify ClassifyCmd      `cmd:"" help:"Show the category of hands in both modes"`
	Generate GenerateCmd      `cmd:"" help:"Print a random bids file"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("camelcards"),
		kong.Description("Rank Camel Cards hands and compute total winnings"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
