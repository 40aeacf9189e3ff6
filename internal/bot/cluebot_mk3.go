package bot

import (
	"github.com/lox/hanabiforbots/internal/deck"
	"github.com/lox/hanabiforbots/internal/game"
	"github.com/lox/hanabiforbots/internal/variant"
)

// ClueBotMk3 only gives clues whose touch set is exactly the target's
// playable-and-unclued cards, so everything one of its clues touches is
// safe to play. It also discards from the chop, the oldest unclued slot, rather
// than blindly from the end. Its weakness is duplicates: it does not track
// what is already clued in other hands, so two hands can be told to play
// the same card and the second play strikes.
type ClueBotMk3 struct{}

func (ClueBotMk3) Name() string        { return "clue-mk3" }
func (ClueBotMk3) Description() string { return "clues only exact sets of playable cards" }

func (ClueBotMk3) Decide(view *game.View) game.Action {
	if slot := newestTouched(view.Annotations(view.Seat())); slot >= 0 {
		return game.Play(slot)
	}
	if view.ClueTokens() == 0 {
		return game.Discard(chop(view))
	}

	var best game.Action
	bestTouch := 0
	for _, seat := range view.Others() {
		hand := view.Hand(seat)
		notes := view.Annotations(seat)
		for _, clue := range possibleClues(view.Rules()) {
			touched := game.TouchedSlots(view.Rules(), hand, clue)
			if len(touched) == 0 || !touchesExactly(view, hand, notes, touched) {
				continue
			}
			if len(touched) > bestTouch {
				best, bestTouch = game.ClueAction(seat, clue), len(touched)
			}
		}
	}
	if bestTouch > 0 {
		return best
	}

	if view.ClueTokens() >= 7 {
		return throwawayClue(view)
	}
	return game.Discard(chop(view))
}

// touchesExactly reports whether the touched set is precisely the hand's
// playable-and-unclued cards
func touchesExactly(b board, hand []deck.Card, notes []variant.CardInfo, touched []int) bool {
	isTouched := make([]bool, len(hand))
	for _, slot := range touched {
		isTouched[slot] = true
	}
	for i, card := range hand {
		want := b.Playable(card) && !notes[i].Touched
		if isTouched[i] != want {
			return false
		}
	}
	return true
}

// chop returns the seat's oldest unclued slot, or slot 0 when everything is
// clued
func chop(b board) int {
	notes := b.Annotations(b.Seat())
	for i := len(notes) - 1; i >= 0; i-- {
		if !notes[i].Touched {
			return i
		}
	}
	return 0
}
