package arena

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/hanabiforbots/internal/game"
	"github.com/lox/hanabiforbots/internal/statistics"
	"github.com/lox/hanabiforbots/internal/variant"
	"golang.org/x/sync/errgroup"
)

// Config holds the configuration for a series run
type Config struct {
	Lineups []Lineup
	Games   int
	Seed    int64
	Workers int
	Timeout time.Duration
	Rules   variant.Rules
	Logger  *log.Logger
	Clock   quartz.Clock
}

// Series evaluates lineups over a shared run of seeds, so every lineup
// faces exactly the same decks
type Series struct {
	config Config
}

// NewSeries creates a series runner with defaults filled in
func NewSeries(config Config) *Series {
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.Rules == nil {
		config.Rules = variant.Duck{}
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	return &Series{config: config}
}

// Entry is one lineup's evaluation over the seed range
type Entry struct {
	Lineup       string
	Bots         []string
	Stats        *statistics.Statistics
	Statuses     map[string]int
	Failures     int
	FirstFailure string
}

// Report collects every lineup's entry for one series
type Report struct {
	Games   int
	Seed    int64
	Entries []Entry
}

// Run evaluates every lineup over seeds Seed..Seed+Games-1. Games run in
// parallel across the worker pool; a bot violation or timeout loses only
// that one game. Lineups run in order so the report is stable.
func (s *Series) Run(ctx context.Context) (*Report, error) {
	report := &Report{Games: s.config.Games, Seed: s.config.Seed}
	for _, lineup := range s.config.Lineups {
		entry, err := s.runLineup(ctx, lineup)
		if err != nil {
			return nil, err
		}
		report.Entries = append(report.Entries, entry)
	}
	return report, nil
}

type outcome struct {
	result Result
	err    error
}

func (s *Series) runLineup(ctx context.Context, lineup Lineup) (Entry, error) {
	logger := s.config.Logger.WithPrefix(lineup.Name)
	outcomes := make([]outcome, s.config.Games)

	var g errgroup.Group
	g.SetLimit(s.config.Workers)
	for i := range outcomes {
		g.Go(func() error {
			seed := s.config.Seed + int64(i)
			res, err := Play(ctx, seed, lineup,
				WithVariant(s.config.Rules),
				WithTimeout(s.config.Timeout),
				WithClock(s.config.Clock),
				WithLogger(logger))
			outcomes[i] = outcome{result: res, err: err}
			return nil
		})
	}
	// Workers never return errors; per-game failures land in outcomes
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return Entry{}, err
	}

	entry := Entry{
		Lineup:   lineup.Name,
		Stats:    &statistics.Statistics{},
		Statuses: make(map[string]int),
	}
	for _, b := range lineup.Bots {
		entry.Bots = append(entry.Bots, b.Name())
	}

	for i, oc := range outcomes {
		if oc.err != nil {
			entry.Failures++
			if entry.FirstFailure == "" {
				entry.FirstFailure = fmt.Sprintf("seed %d: %v", s.config.Seed+int64(i), oc.err)
			}
			continue
		}
		entry.Statuses[oc.result.Status.String()]++
		entry.Stats.Add(statistics.GameResult{
			Score:   oc.result.Score,
			Seed:    oc.result.Seed,
			Turns:   oc.result.Turns,
			Perfect: oc.result.Status == game.StatusWon,
			Struck:  oc.result.Status == game.StatusLostFuses,
		})
	}
	if entry.Stats.Games > 0 {
		if err := entry.Stats.Validate(); err != nil {
			return Entry{}, fmt.Errorf("lineup %s: %w", lineup.Name, err)
		}
	}

	logger.Info("lineup evaluated",
		"games", entry.Stats.Games,
		"mean", entry.Stats.Mean(),
		"failures", entry.Failures)

	return entry, nil
}
