package bot

import "github.com/lox/hanabiforbots/internal/game"

// LookaheadBot reasons one turn ahead. Walking the other players in turn
// order, anyone holding a touched card is assumed to play their oldest
// touched card, and the stacks are advanced hypothetically when that play
// would succeed. The first player with nothing touched is a clue candidate:
// clues follow ClueBotAdvanced's discipline but are judged against the
// hypothetical stacks, so a card playable only after the players before it
// have played can still be clued now.
type LookaheadBot struct{}

func (LookaheadBot) Name() string        { return "lookahead" }
func (LookaheadBot) Description() string { return "clues against stacks one simulated turn ahead" }

func (LookaheadBot) Decide(view *game.View) game.Action {
	if slot := oldestTouched(view.Annotations(view.Seat())); slot >= 0 {
		return game.Play(slot)
	}

	if view.ClueTokens() > 0 {
		future := view.Stacks()
		for _, seat := range view.Others() {
			hand := view.Hand(seat)
			notes := view.Annotations(seat)

			if slot := oldestTouched(notes); slot >= 0 {
				// This player will resolve their own signal before we can
				// clue again; count the play if it would succeed.
				if future.Playable(hand[slot]) {
					future.Play(hand[slot])
				}
				continue
			}

			valid := validCluesFor(view, seat, cluedCards(view), future.Playable)
			if len(valid) > 0 {
				return game.ClueAction(seat, mostTouching(view.Rules(), hand, valid))
			}
		}
	}

	if view.ClueTokens() < game.MaxClueTokens {
		return game.Discard(oldestSlot(view))
	}
	return game.Play(0)
}
