package variant

import "github.com/lox/hanabiforbots/internal/deck"

var (
	duckColors    = []deck.Color{deck.Red, deck.Yellow, deck.Green, deck.Blue, deck.Purple}
	duckRanks     = []deck.Rank{1, 2, 3, 4, 5}
	duckDeckRanks = []deck.Rank{1, 1, 1, 2, 2, 3, 3, 4, 4, 5}
)

// Duck implements the "Duck" rules: the standard five-color deck and the
// standard touch rule, but clues are given by quacking. The clued player
// sees which cards were pointed at and nothing else, so annotations carry
// only the touched flag and candidate sets never narrow.
type Duck struct{}

// Name returns the registry handle
func (Duck) Name() string { return "duck" }

// Colors returns the five-color palette
func (Duck) Colors() []deck.Color {
	out := make([]deck.Color, len(duckColors))
	copy(out, duckColors)
	return out
}

// Ranks returns the distinct ranks 1..5
func (Duck) Ranks() []deck.Rank {
	out := make([]deck.Rank, len(duckRanks))
	copy(out, duckRanks)
	return out
}

// DeckRanks returns the per-color multiset: three 1s, two each of 2-4, one 5
func (Duck) DeckRanks() []deck.Rank {
	out := make([]deck.Rank, len(duckDeckRanks))
	copy(out, duckDeckRanks)
	return out
}

// CheckClue validates the clue value against the palette and rank range
func (Duck) CheckClue(c Clue) error {
	switch c.Kind {
	case KindColor:
		for _, pc := range duckColors {
			if c.Color == pc {
				return nil
			}
		}
		return ErrUnknownColor
	case KindRank:
		if c.Rank < deck.MinRank || c.Rank > deck.MaxRank {
			return ErrUnknownRank
		}
		return nil
	default:
		return ErrMalformedClue
	}
}

// Touches applies the standard matching rule: exact color or exact rank
func (Duck) Touches(card deck.Card, c Clue) bool {
	switch c.Kind {
	case KindColor:
		return card.Color == c.Color
	case KindRank:
		return card.Rank == c.Rank
	default:
		return false
	}
}

// Annotate records only the touched flag. No candidate narrowing and no
// negative information: the quack carries no color or rank.
func (Duck) Annotate(info *CardInfo, c Clue, touched bool) {
	if touched {
		info.Touched = true
	}
}

// NewCardInfo returns an annotation with the full candidate sets
func (Duck) NewCardInfo() CardInfo {
	return CardInfo{
		Colors: deck.NewColorSet(duckColors),
		Ranks:  deck.NewRankSet(duckRanks),
	}
}
