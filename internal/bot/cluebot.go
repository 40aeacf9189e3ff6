package bot

import "github.com/lox/hanabiforbots/internal/game"

// ClueBot is the simplest honest strategy: it treats every clue as a play
// signal. It plays its newest touched card, otherwise points at the first
// playable card it can see with a color clue, otherwise discards its oldest
// card.
type ClueBot struct{}

func (ClueBot) Name() string        { return "clue" }
func (ClueBot) Description() string { return "plays touched cards, clues the first playable it sees" }

func (ClueBot) Decide(view *game.View) game.Action {
	if slot := newestTouched(view.Annotations(view.Seat())); slot >= 0 {
		return game.Play(slot)
	}

	// Touched cards never linger, so the oldest card is never one the
	// table has asked us to keep.
	if view.ClueTokens() == 0 {
		return game.Discard(oldestSlot(view))
	}

	for _, seat := range view.Others() {
		for _, card := range view.Hand(seat) {
			if view.Playable(card) {
				return game.ClueColor(seat, card.Color)
			}
		}
	}

	if view.ClueTokens() >= 7 {
		return throwawayClue(view)
	}
	return game.Discard(oldestSlot(view))
}
