package arena

import (
	"errors"
	"fmt"
)

// Configuration errors raised before any game runs
var (
	ErrLineupArity = errors.New("lineup needs one bot or one per seat")
	ErrNoDecision  = errors.New("bot implements no decision interface")
)

// BotViolationError reports a bot that broke its contract: it panicked while
// deciding, or returned an action the engine rejected. Fatal to the game it
// happened in; other games in a series are unaffected.
type BotViolationError struct {
	Seat int
	Bot  string
	Err  error
}

func (e *BotViolationError) Error() string {
	return fmt.Sprintf("bot %s (seat %d) violated its contract: %v", e.Bot, e.Seat, e.Err)
}

func (e *BotViolationError) Unwrap() error {
	return e.Err
}
