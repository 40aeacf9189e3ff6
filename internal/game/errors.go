package game

import (
	"errors"
	"fmt"
)

// Rule violations wrapped by IllegalActionError. Callers match them with
// errors.Is.
var (
	ErrGameOver           = errors.New("game is already over")
	ErrWrongTurn          = errors.New("not this player's turn")
	ErrInvalidSeat        = errors.New("player index out of range")
	ErrInvalidSlot        = errors.New("hand slot out of range")
	ErrNoClueTokens       = errors.New("no clue tokens remaining")
	ErrMaxClueTokens      = errors.New("cannot discard at maximum clue tokens")
	ErrClueSelf           = errors.New("cannot clue own hand")
	ErrClueTouchesNothing = errors.New("clue touches no cards")
	ErrUnknownAction      = errors.New("unknown action type")
)

// Construction errors
var (
	ErrPlayerCount     = errors.New("player count must be between 2 and 5")
	ErrStartingPlayer  = errors.New("starting player out of range")
	ErrDeckComposition = errors.New("deck does not match the variant composition")
)

// ErrOwnHandAccess is the panic value raised when a restricted view is asked
// for its own hand. The arena recovers it into a contract violation.
var ErrOwnHandAccess = errors.New("cannot look at own hand")

// IllegalActionError reports an action the engine rejected. The state is
// untouched when one is returned.
type IllegalActionError struct {
	Seat   int
	Action Action
	Err    error
}

func (e *IllegalActionError) Error() string {
	return fmt.Sprintf("illegal action by player %d (%s): %v", e.Seat, e.Action, e.Err)
}

func (e *IllegalActionError) Unwrap() error {
	return e.Err
}
