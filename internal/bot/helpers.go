package bot

import (
	"github.com/lox/hanabiforbots/internal/deck"
	"github.com/lox/hanabiforbots/internal/game"
	"github.com/lox/hanabiforbots/internal/variant"
)

// board is the read surface the planning helpers work against. Both the
// restricted view and the full-access window satisfy it; honest strategies
// simply never ask it for their own hand.
type board interface {
	Seat() int
	ClueTokens() int
	Rules() variant.Rules
	Stacks() game.Stacks
	Hand(seat int) []deck.Card
	HandSize(seat int) int
	Annotations(seat int) []variant.CardInfo
	Others() []int
	Playable(c deck.Card) bool
}

// newestTouched returns the lowest touched slot, or -1 if nothing is touched
func newestTouched(notes []variant.CardInfo) int {
	for i, info := range notes {
		if info.Touched {
			return i
		}
	}
	return -1
}

// oldestTouched returns the highest touched slot, or -1 if nothing is touched
func oldestTouched(notes []variant.CardInfo) int {
	for i := len(notes) - 1; i >= 0; i-- {
		if notes[i].Touched {
			return i
		}
	}
	return -1
}

// oldestSlot returns the seat's own oldest slot index
func oldestSlot(b board) int {
	return b.HandSize(b.Seat()) - 1
}

// throwawayClue burns a token for tempo: it clues the color of the next
// player's newest card, which is guaranteed to touch at least that card
func throwawayClue(b board) game.Action {
	next := b.Others()[0]
	return game.ClueColor(next, b.Hand(next)[0].Color)
}

// possibleClues enumerates every clue value the variant allows, ranks first
// and then colors. Strategies resolve ties by enumeration order, so this
// order is part of their determinism.
func possibleClues(rules variant.Rules) []variant.Clue {
	ranks, colors := rules.Ranks(), rules.Colors()
	clues := make([]variant.Clue, 0, len(ranks)+len(colors))
	for _, r := range ranks {
		clues = append(clues, variant.RankClue(r))
	}
	for _, c := range colors {
		clues = append(clues, variant.ColorClue(c))
	}
	return clues
}

// cluedCards collects every touched card visible in the other hands: the
// cards the table is already committed to playing
func cluedCards(b board) []deck.Card {
	var clued []deck.Card
	for _, seat := range b.Others() {
		hand := b.Hand(seat)
		for i, info := range b.Annotations(seat) {
			if info.Touched {
				clued = append(clued, hand[i])
			}
		}
	}
	return clued
}

func containsCard(cards []deck.Card, c deck.Card) bool {
	for _, x := range cards {
		if x == c {
			return true
		}
	}
	return false
}

func countCard(cards []deck.Card, c deck.Card) int {
	n := 0
	for _, x := range cards {
		if x == c {
			n++
		}
	}
	return n
}

// touchedCount counts a hand's touched annotations
func touchedCount(notes []variant.CardInfo) int {
	n := 0
	for _, info := range notes {
		if info.Touched {
			n++
		}
	}
	return n
}

// validCluesFor enumerates the disciplined clues for one target hand: a
// clue must touch at least one card, touch only cards playable under the
// given predicate, not re-touch a card the table is already committed to,
// and not touch two copies of the same card in the hand.
func validCluesFor(b board, target int, committed []deck.Card, playable func(deck.Card) bool) []variant.Clue {
	hand := b.Hand(target)
	var valid []variant.Clue
	for _, clue := range possibleClues(b.Rules()) {
		touched := game.TouchedSlots(b.Rules(), hand, clue)
		if len(touched) == 0 {
			continue
		}
		ok := true
		for _, slot := range touched {
			card := hand[slot]
			if !playable(card) || containsCard(committed, card) || countCard(hand, card) > 1 {
				ok = false
				break
			}
		}
		if ok {
			valid = append(valid, clue)
		}
	}
	return valid
}

// mostTouching returns the clue touching the most cards of the hand, ties
// going to the earliest clue in enumeration order
func mostTouching(rules variant.Rules, hand []deck.Card, clues []variant.Clue) variant.Clue {
	var best variant.Clue
	bestCount := 0
	for _, clue := range clues {
		if n := len(game.TouchedSlots(rules, hand, clue)); n > bestCount {
			best, bestCount = clue, n
		}
	}
	return best
}
