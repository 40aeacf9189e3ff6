// Package arena drives games between bot lineups. The arena owns the
// mutable game state: bots see it only through the restricted view or the
// full-access window handed to them each turn, and every action they return
// goes back through the engine's legality check.
package arena

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/hanabiforbots/internal/bot"
	"github.com/lox/hanabiforbots/internal/game"
	"github.com/lox/hanabiforbots/internal/variant"
)

// Lineup is a fixed seating of strategies
type Lineup struct {
	Name string
	Bots []bot.Bot
}

// NewLineup resolves strategy names into a lineup for the given player
// count. A single name fills every seat; otherwise there must be exactly one
// name per seat.
func NewLineup(name string, players int, botNames []string) (Lineup, error) {
	if len(botNames) != 1 && len(botNames) != players {
		return Lineup{}, fmt.Errorf("lineup %q: %w: %d bots for %d seats",
			name, ErrLineupArity, len(botNames), players)
	}

	bots := make([]bot.Bot, players)
	for seat := range bots {
		choice := botNames[0]
		if len(botNames) > 1 {
			choice = botNames[seat]
		}
		b, err := bot.Get(choice)
		if err != nil {
			return Lineup{}, fmt.Errorf("lineup %q: %w", name, err)
		}
		bots[seat] = b
	}
	return Lineup{Name: name, Bots: bots}, nil
}

// Result summarizes one completed game
type Result struct {
	Seed   int64
	Score  int
	Status game.Status
	Turns  int
}

// Option configures a game run
type Option func(*playConfig)

type playConfig struct {
	logger  *log.Logger
	clock   quartz.Clock
	timeout time.Duration
	rules   variant.Rules
}

// WithLogger sets the logger for per-turn traces, which log at debug level
func WithLogger(l *log.Logger) Option {
	return func(c *playConfig) { c.logger = l }
}

// WithClock sets the clock the timeout watchdog runs on. Tests inject a mock.
func WithClock(clk quartz.Clock) Option {
	return func(c *playConfig) { c.clock = clk }
}

// WithTimeout bounds a game's wall-clock time. Zero means no bound.
func WithTimeout(d time.Duration) Option {
	return func(c *playConfig) { c.timeout = d }
}

// WithVariant sets the rule set games run under. Default is Duck.
func WithVariant(r variant.Rules) Option {
	return func(c *playConfig) { c.rules = r }
}

func newPlayConfig(opts []Option) playConfig {
	cfg := playConfig{
		logger: log.New(io.Discard),
		clock:  quartz.NewReal(),
		rules:  variant.Duck{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Play deals a game from the seed and drives it to completion
func Play(ctx context.Context, seed int64, lineup Lineup, opts ...Option) (Result, error) {
	cfg := newPlayConfig(opts)
	state, err := game.New(len(lineup.Bots), seed, game.WithRules(cfg.rules))
	if err != nil {
		return Result{}, err
	}
	return run(ctx, seed, state, lineup, cfg)
}

// Run drives an existing game to completion, leaving the final state with
// the caller for rendering or inspection
func Run(ctx context.Context, seed int64, state *game.State, lineup Lineup, opts ...Option) (Result, error) {
	return run(ctx, seed, state, lineup, newPlayConfig(opts))
}

func run(ctx context.Context, seed int64, state *game.State, lineup Lineup, cfg playConfig) (Result, error) {
	if len(lineup.Bots) != state.NumPlayers() {
		return Result{}, fmt.Errorf("lineup %q: %w: %d bots for %d seats",
			lineup.Name, ErrLineupArity, len(lineup.Bots), state.NumPlayers())
	}

	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithCancel(ctx)
		defer cancel()
		// The loop notices the cancellation at the next turn boundary
		watchdog := cfg.clock.AfterFunc(cfg.timeout, cancel)
		defer watchdog.Stop()
	}

	for !state.Over() {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("game for seed %d aborted on turn %d: %w", seed, state.Turn(), err)
		}

		seat := state.CurrentPlayer()
		b := lineup.Bots[seat]
		action, err := decide(b, state, seat)
		if err != nil {
			return Result{}, &BotViolationError{Seat: seat, Bot: b.Name(), Err: err}
		}

		cfg.logger.Debug("turn",
			"seed", seed,
			"turn", state.Turn(),
			"seat", seat,
			"bot", b.Name(),
			"action", action,
			"score", state.Score(),
			"clues", state.ClueTokens(),
			"fuses", state.FuseTokens())

		if err := state.Apply(seat, action); err != nil {
			return Result{}, &BotViolationError{Seat: seat, Bot: b.Name(), Err: err}
		}
	}

	res := Result{Seed: seed, Score: state.Score(), Status: state.Status(), Turns: state.Turn()}
	cfg.logger.Debug("game over",
		"seed", seed,
		"status", res.Status,
		"score", res.Score,
		"turns", res.Turns)
	return res, nil
}

// decide asks the bot for its action, recovering panics into errors so one
// misbehaving bot cannot take down a whole series
func decide(b bot.Bot, state *game.State, seat int) (action game.Action, err error) {
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(error); ok {
				err = fmt.Errorf("panic in decide: %w", rerr)
			} else {
				err = fmt.Errorf("panic in decide: %v", r)
			}
		}
	}()

	switch s := b.(type) {
	case bot.Strategy:
		return s.Decide(state.View(seat)), nil
	case bot.CheatingStrategy:
		return s.DecideCheating(state.FullAccess(seat)), nil
	default:
		return game.Action{}, ErrNoDecision
	}
}
