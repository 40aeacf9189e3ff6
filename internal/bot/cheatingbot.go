package bot

import (
	"sort"

	"github.com/lox/hanabiforbots/internal/game"
)

// CheatingBot improves on BasicCheatingBot by choosing safe discards: dead
// cards first, then the highest-ranked card that still has another copy
// alive. It plays its newest playable card and spends spare clue tokens on
// throwaway clues to defer discarding. Its weakness is unlucky draw order
// running the deck out of turns.
type CheatingBot struct{}

func (CheatingBot) Name() string        { return "cheating" }
func (CheatingBot) Description() string { return "sees every hand, plays greedily and discards safely" }

func (CheatingBot) DecideCheating(board game.FullAccess) game.Action {
	hand := board.Hand(board.Seat())

	for i, card := range hand {
		if board.Playable(card) {
			return game.Play(i)
		}
	}

	// Burn a token rather than discard while near the cap
	if board.ClueTokens() > 6 {
		return throwawayClue(board)
	}

	for i, card := range hand {
		if board.Discardable(card) {
			return game.Discard(i)
		}
	}

	if board.ClueTokens() > 0 {
		return throwawayClue(board)
	}

	// Discard the highest rank that still has another copy alive, so 4s go
	// before 3s before 2s
	slots := make([]int, len(hand))
	for i := range slots {
		slots[i] = i
	}
	sort.SliceStable(slots, func(a, b int) bool {
		return hand[slots[a]].Rank > hand[slots[b]].Rank
	})
	for _, slot := range slots {
		if !board.Critical(hand[slot]) {
			return game.Discard(slot)
		}
	}

	// Every card left is the last of its kind; something has to go
	return game.Discard(0)
}
