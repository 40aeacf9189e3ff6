package bot

import (
	"github.com/lox/hanabiforbots/internal/game"
	"github.com/lox/hanabiforbots/internal/variant"
)

// ClueBotImproved refines ClueBot's cluing: it skips cards that already
// carry a clue, and between the color and the rank of the target card it
// picks the flavour that drags fewer extra cards into the touch.
type ClueBotImproved struct{}

func (ClueBotImproved) Name() string { return "clue-improved" }
func (ClueBotImproved) Description() string {
	return "like clue, but picks the tighter of color and rank"
}

func (ClueBotImproved) Decide(view *game.View) game.Action {
	if slot := newestTouched(view.Annotations(view.Seat())); slot >= 0 {
		return game.Play(slot)
	}
	if view.ClueTokens() == 0 {
		return game.Discard(oldestSlot(view))
	}

	for _, seat := range view.Others() {
		hand := view.Hand(seat)
		notes := view.Annotations(seat)
		for i, card := range hand {
			if !view.Playable(card) || notes[i].Touched {
				continue
			}
			byColor := len(game.TouchedSlots(view.Rules(), hand, variant.ColorClue(card.Color)))
			byRank := len(game.TouchedSlots(view.Rules(), hand, variant.RankClue(card.Rank)))
			if byRank < byColor {
				return game.ClueRank(seat, card.Rank)
			}
			return game.ClueColor(seat, card.Color)
		}
	}

	if view.ClueTokens() >= 7 {
		return throwawayClue(view)
	}
	return game.Discard(oldestSlot(view))
}
