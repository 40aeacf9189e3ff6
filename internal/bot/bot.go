// Package bot contains the built-in strategies and the registry the arena
// draws lineups from. A strategy implements exactly one of two decision
// interfaces: Strategy decides from the restricted view and never sees its
// own cards, CheatingStrategy decides from the full-access window and sees
// everything. Every built-in strategy is a stateless value, safe to share
// across parallel games.
package bot

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lox/hanabiforbots/internal/game"
)

// Bot is the surface every registered strategy exposes
type Bot interface {
	// Name is the registry handle
	Name() string
	// Description is a one-line summary of how the strategy plays
	Description() string
}

// Strategy is an honest bot: it decides from the restricted view, which
// panics if asked for the bot's own hand.
type Strategy interface {
	Bot
	Decide(view *game.View) game.Action
}

// CheatingStrategy is a bot on the privileged channel: it decides from a
// full-access window that can read every hand, its own included.
type CheatingStrategy interface {
	Bot
	DecideCheating(board game.FullAccess) game.Action
}

var registry = map[string]Bot{
	"dumb":           DumbBot{},
	"clue":           ClueBot{},
	"clue-improved":  ClueBotImproved{},
	"clue-mk3":       ClueBotMk3{},
	"clue-advanced":  ClueBotAdvanced{},
	"lookahead":      LookaheadBot{},
	"basic-cheating": BasicCheatingBot{},
	"cheating":       CheatingBot{},
}

// Get returns the strategy registered under name
func Get(name string) (Bot, error) {
	b, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown bot %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return b, nil
}

// Names returns the registered bot names, sorted
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
