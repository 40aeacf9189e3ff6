package game

import (
	"fmt"

	"github.com/lox/hanabiforbots/internal/deck"
	"github.com/lox/hanabiforbots/internal/variant"
)

// ActionType discriminates the three things a player can do on their turn
type ActionType int

const (
	ActionPlay ActionType = iota
	ActionDiscard
	ActionClue
)

// String returns the string representation of an action type
func (t ActionType) String() string {
	switch t {
	case ActionPlay:
		return "play"
	case ActionDiscard:
		return "discard"
	case ActionClue:
		return "clue"
	default:
		return "?"
	}
}

// Action is one player decision. Play and Discard address a slot in the
// acting player's own hand; Clue addresses another player and carries the
// clue value.
type Action struct {
	Type   ActionType
	Slot   int
	Target int
	Clue   variant.Clue
}

// Play creates an action playing the card at slot
func Play(slot int) Action {
	return Action{Type: ActionPlay, Slot: slot}
}

// Discard creates an action discarding the card at slot
func Discard(slot int) Action {
	return Action{Type: ActionDiscard, Slot: slot}
}

// ClueColor creates a color clue aimed at target
func ClueColor(target int, c deck.Color) Action {
	return Action{Type: ActionClue, Target: target, Clue: variant.ColorClue(c)}
}

// ClueRank creates a rank clue aimed at target
func ClueRank(target int, r deck.Rank) Action {
	return Action{Type: ActionClue, Target: target, Clue: variant.RankClue(r)}
}

// ClueAction creates a clue action from an already-built clue value. Bots
// that enumerate candidate clues use this instead of the typed helpers.
func ClueAction(target int, c variant.Clue) Action {
	return Action{Type: ActionClue, Target: target, Clue: c}
}

// String returns a compact rendering, e.g. "play 0" or "clue 2 r"
func (a Action) String() string {
	switch a.Type {
	case ActionPlay, ActionDiscard:
		return fmt.Sprintf("%s %d", a.Type, a.Slot)
	case ActionClue:
		return fmt.Sprintf("clue %d %s", a.Target, a.Clue)
	default:
		return a.Type.String()
	}
}

// ClueRecord is one entry of the public clue history: who clued whom, the
// value given, and the slot indices the clue touched when it was given.
// Records are append-only and never removed.
type ClueRecord struct {
	Turn    int
	Giver   int
	Target  int
	Clue    variant.Clue
	Touched []int
}
