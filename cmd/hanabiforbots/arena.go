package main

import (
	"strings"
	"time"

	"github.com/lox/hanabiforbots/cmd/hanabiforbots/shared"
	"github.com/lox/hanabiforbots/internal/arena"
	"github.com/lox/hanabiforbots/internal/bot"
	"github.com/lox/hanabiforbots/internal/config"
	"github.com/lox/hanabiforbots/internal/variant"
)

// ArenaCmd evaluates bot lineups over a shared series of seeded games
type ArenaCmd struct {
	Config   string   `default:"arena.hcl" help:"Arena configuration file (HCL)"`
	Players  *int     `help:"Players per game (overrides config)"`
	Games    *int     `help:"Games per lineup (overrides config)"`
	Seed     *int64   `help:"Base seed; game i plays seed+i (default: random)"`
	Bots     []string `sep:"none" help:"Lineup: a bot name, or a comma-separated name per seat (repeatable; overrides config lineups)"`
	Workers  *int     `help:"Games run in parallel (overrides config)"`
	Timeout  *string  `help:"Per-game timeout, e.g. 10s (overrides config)"`
	Variant  *string  `help:"Rule variant (overrides config)"`
	Output   string   `short:"o" help:"Write a JSON report to this file"`
	LogLevel *string  `help:"Log level: debug, info, warn, error (overrides config)"`
}

func (c *ArenaCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	c.applyOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := shared.SetupLogger(cfg.Arena.LogLevel)

	// Every lineup faces the same seeds, so scores compare directly
	var seed int64
	if cfg.Arena.Seed != nil {
		seed = *cfg.Arena.Seed
		logger.Info("using deterministic seed", "seed", seed)
	} else {
		seed = time.Now().UnixNano()
		logger.Info("using random seed", "seed", seed)
	}

	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return err
	}
	rules, err := variant.Get(cfg.Arena.Variant)
	if err != nil {
		return err
	}
	lineups, err := buildLineups(cfg)
	if err != nil {
		return err
	}

	logger.Info("starting series",
		"players", cfg.Arena.Players,
		"games", cfg.Arena.Games,
		"lineups", len(lineups),
		"workers", cfg.Arena.Workers,
		"variant", cfg.Arena.Variant)

	ctx := shared.SetupSignalHandler(logger)

	series := arena.NewSeries(arena.Config{
		Lineups: lineups,
		Games:   cfg.Arena.Games,
		Seed:    seed,
		Workers: cfg.Arena.Workers,
		Timeout: timeout,
		Rules:   rules,
		Logger:  logger,
	})

	started := time.Now()
	report, err := series.Run(ctx)
	if err != nil {
		return err
	}

	printReport(report, time.Since(started))

	if c.Output != "" {
		if err := report.WriteFile(c.Output); err != nil {
			return err
		}
		logger.Info("report written", "path", c.Output)
	}
	return nil
}

// applyOverrides lays the command-line flags over the file configuration.
// Only flags the user actually set are applied.
func (c *ArenaCmd) applyOverrides(cfg *config.Config) {
	if c.Players != nil {
		cfg.Arena.Players = *c.Players
	}
	if c.Games != nil {
		cfg.Arena.Games = *c.Games
	}
	if c.Seed != nil {
		cfg.Arena.Seed = c.Seed
	}
	if c.Workers != nil {
		cfg.Arena.Workers = *c.Workers
	}
	if c.Timeout != nil {
		cfg.Arena.Timeout = *c.Timeout
	}
	if c.Variant != nil {
		cfg.Arena.Variant = *c.Variant
	}
	if c.LogLevel != nil {
		cfg.Arena.LogLevel = *c.LogLevel
	}
	if len(c.Bots) > 0 {
		cfg.Lineups = nil
		for _, names := range c.Bots {
			cfg.Lineups = append(cfg.Lineups, config.LineupConfig{
				Name: names,
				Bots: strings.Split(names, ","),
			})
		}
	}
}

// buildLineups resolves the configured lineups. With nothing configured,
// every registered bot gets a lineup of its own.
func buildLineups(cfg *config.Config) ([]arena.Lineup, error) {
	configs := cfg.Lineups
	if len(configs) == 0 {
		for _, name := range bot.Names() {
			configs = append(configs, config.LineupConfig{Name: name, Bots: []string{name}})
		}
	}

	lineups := make([]arena.Lineup, 0, len(configs))
	for _, lc := range configs {
		lineup, err := arena.NewLineup(lc.Name, cfg.Arena.Players, lc.Bots)
		if err != nil {
			return nil, err
		}
		lineups = append(lineups, lineup)
	}
	return lineups, nil
}
