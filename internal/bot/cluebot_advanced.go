package bot

import (
	"github.com/lox/hanabiforbots/internal/game"
	"github.com/lox/hanabiforbots/internal/variant"
)

// ClueBotAdvanced plays its oldest touched card and gives only disciplined
// clues: a clue must touch at least one card, touch only playable cards,
// not re-touch a card the table is already committed to, and not touch two
// copies of the same card in one hand. Among the players it can serve it
// picks the least informed, then the clue touching the most cards.
type ClueBotAdvanced struct{}

func (ClueBotAdvanced) Name() string { return "clue-advanced" }
func (ClueBotAdvanced) Description() string {
	return "disciplined clues aimed at the least informed player"
}

func (ClueBotAdvanced) Decide(view *game.View) game.Action {
	// Oldest signal first, so clues resolve in the order they were given
	if slot := oldestTouched(view.Annotations(view.Seat())); slot >= 0 {
		return game.Play(slot)
	}

	if view.ClueTokens() > 0 {
		if a, ok := bestDisciplinedClue(view); ok {
			return a
		}
	}

	if view.ClueTokens() < game.MaxClueTokens {
		// Nothing of ours is touched, so the oldest card is free to go
		return game.Discard(oldestSlot(view))
	}

	// Could not play, clue, or discard. Probably a strike.
	return game.Play(0)
}

// bestDisciplinedClue picks a disciplined clue for the least informed
// player, ties broken towards the next player in turn order, then by most
// cards touched
func bestDisciplinedClue(view *game.View) (game.Action, bool) {
	committed := cluedCards(view)

	bestSeat := -1
	bestInformed := 0
	var bestClues []variant.Clue
	for _, seat := range view.Others() {
		valid := validCluesFor(view, seat, committed, view.Playable)
		if len(valid) == 0 {
			continue
		}
		informed := touchedCount(view.Annotations(seat))
		if bestSeat == -1 || informed < bestInformed {
			bestSeat, bestInformed, bestClues = seat, informed, valid
		}
	}
	if bestSeat == -1 {
		return game.Action{}, false
	}

	clue := mostTouching(view.Rules(), view.Hand(bestSeat), bestClues)
	return game.ClueAction(bestSeat, clue), true
}
