package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Arena   ArenaCmd         `cmd:"" help:"Evaluate bot lineups over a series of seeded games"`
	Play    PlayCmd          `cmd:"" help:"Play a single game and print the final board"`
	Bots    BotsCmd          `cmd:"" help:"List the built-in bots"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("hanabiforbots"),
		kong.Description("Hanabi arena for bot-vs-bot play"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
