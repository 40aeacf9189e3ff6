package bot

import "github.com/lox/hanabiforbots/internal/game"

// BasicCheatingBot reads every hand through the full-access window and plays
// its oldest playable card. With nothing to play it discards when out of
// clue tokens and otherwise burns a token on a throwaway clue. Its main
// flaw is discarding 5s straight from the deal.
type BasicCheatingBot struct{}

func (BasicCheatingBot) Name() string        { return "basic-cheating" }
func (BasicCheatingBot) Description() string { return "sees every hand, plays the oldest playable card" }

func (BasicCheatingBot) DecideCheating(board game.FullAccess) game.Action {
	hand := board.Hand(board.Seat())
	for i := len(hand) - 1; i >= 0; i-- {
		if board.Playable(hand[i]) {
			return game.Play(i)
		}
	}
	if board.ClueTokens() == 0 {
		return game.Discard(len(hand) - 1)
	}
	return throwawayClue(board)
}
