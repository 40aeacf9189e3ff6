package main

import (
	"strings"
	"time"

	"github.com/lox/hanabiforbots/cmd/hanabiforbots/shared"
	"github.com/lox/hanabiforbots/internal/arena"
	"github.com/lox/hanabiforbots/internal/deck"
	"github.com/lox/hanabiforbots/internal/game"
	"github.com/lox/hanabiforbots/internal/variant"
)

// PlayCmd plays one game and prints the final board
type PlayCmd struct {
	Bots     []string `default:"cheating" help:"A bot name for every seat, or a comma-separated name per seat"`
	Players  int      `default:"3" help:"Players at the table"`
	Seed     *int64   `help:"Deterministic deal seed (default: random)"`
	Variant  string   `default:"duck" help:"Rule variant"`
	LogLevel string   `default:"debug" help:"Log level: debug, info, warn, error"`
}

func (c *PlayCmd) Run() error {
	logger := shared.SetupLogger(c.LogLevel)

	rules, err := variant.Get(c.Variant)
	if err != nil {
		return err
	}

	var seed int64
	if c.Seed != nil {
		seed = *c.Seed
		logger.Info("using deterministic seed", "seed", seed)
	} else {
		seed = time.Now().UnixNano()
		logger.Info("using random seed", "seed", seed)
	}

	lineup, err := arena.NewLineup(strings.Join(c.Bots, ","), c.Players, c.Bots)
	if err != nil {
		return err
	}

	state, err := game.New(c.Players, seed, game.WithRules(rules))
	if err != nil {
		return err
	}

	ctx := shared.SetupSignalHandler(logger)

	// Run leaves the final state behind for rendering
	result, err := arena.Run(ctx, seed, state, lineup, arena.WithLogger(logger))
	if err != nil {
		return err
	}

	printBoard(state.FullAccess(0))
	printResult(result, len(rules.Colors())*int(deck.MaxRank))
	return nil
}
