package variant

import (
	"errors"
	"testing"

	"github.com/lox/hanabiforbots/internal/deck"
)

func TestDuckDeckComposition(t *testing.T) {
	t.Parallel()

	var d Duck
	if got := len(d.Colors()); got != 5 {
		t.Errorf("palette size = %d", got)
	}
	if got := len(d.DeckRanks()); got != 10 {
		t.Errorf("per-color multiset size = %d", got)
	}

	counts := make(map[deck.Rank]int)
	for _, r := range d.DeckRanks() {
		counts[r]++
	}
	want := map[deck.Rank]int{1: 3, 2: 2, 3: 2, 4: 2, 5: 1}
	for r, n := range want {
		if counts[r] != n {
			t.Errorf("copies of rank %v = %d, want %d", r, counts[r], n)
		}
	}
}

func TestDuckTouches(t *testing.T) {
	t.Parallel()

	var d Duck
	tests := []struct {
		name string
		card deck.Card
		clue Clue
		want bool
	}{
		{"color match", deck.Card{Color: deck.Red, Rank: 1}, ColorClue(deck.Red), true},
		{"color miss", deck.Card{Color: deck.Blue, Rank: 1}, ColorClue(deck.Red), false},
		{"rank match", deck.Card{Color: deck.Blue, Rank: 4}, RankClue(4), true},
		{"rank miss", deck.Card{Color: deck.Blue, Rank: 4}, RankClue(5), false},
		{"rank clue ignores color", deck.Card{Color: deck.Red, Rank: 2}, RankClue(2), true},
		{"color clue ignores rank", deck.Card{Color: deck.Green, Rank: 5}, ColorClue(deck.Green), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Touches(tt.card, tt.clue); got != tt.want {
				t.Errorf("Touches(%v, %v) = %v, want %v", tt.card, tt.clue, got, tt.want)
			}
		})
	}
}

func TestDuckCheckClue(t *testing.T) {
	t.Parallel()

	var d Duck
	for _, c := range d.Colors() {
		if err := d.CheckClue(ColorClue(c)); err != nil {
			t.Errorf("CheckClue(%v): %v", c, err)
		}
	}
	for _, r := range d.Ranks() {
		if err := d.CheckClue(RankClue(r)); err != nil {
			t.Errorf("CheckClue(%v): %v", r, err)
		}
	}

	if err := d.CheckClue(ColorClue(deck.Color(9))); !errors.Is(err, ErrUnknownColor) {
		t.Errorf("bogus color: %v", err)
	}
	if err := d.CheckClue(RankClue(0)); !errors.Is(err, ErrUnknownRank) {
		t.Errorf("rank 0: %v", err)
	}
	if err := d.CheckClue(RankClue(6)); !errors.Is(err, ErrUnknownRank) {
		t.Errorf("rank 6: %v", err)
	}
	if err := d.CheckClue(Clue{Kind: Kind(42)}); !errors.Is(err, ErrMalformedClue) {
		t.Errorf("bad kind: %v", err)
	}
}

func TestDuckAnnotateTouchedFlagOnly(t *testing.T) {
	t.Parallel()

	var d Duck
	fresh := d.NewCardInfo()

	touched := fresh
	d.Annotate(&touched, ColorClue(deck.Red), true)
	if !touched.Touched {
		t.Error("touched flag not set")
	}
	if touched.Colors != fresh.Colors || touched.Ranks != fresh.Ranks {
		t.Error("candidate sets narrowed; the quack carries no information")
	}

	untouched := fresh
	d.Annotate(&untouched, ColorClue(deck.Red), false)
	if untouched.Touched {
		t.Error("untouched card marked touched")
	}
	if untouched.Colors != fresh.Colors || untouched.Ranks != fresh.Ranks {
		t.Error("untouched card received negative information")
	}

	// Rank clues behave identically.
	d.Annotate(&touched, RankClue(2), true)
	if touched.Colors != fresh.Colors || touched.Ranks != fresh.Ranks {
		t.Error("rank clue narrowed candidate sets")
	}
}

func TestDuckNewCardInfo(t *testing.T) {
	t.Parallel()

	info := Duck{}.NewCardInfo()
	if info.Touched {
		t.Error("fresh card marked touched")
	}
	if info.Colors.Len() != 5 {
		t.Errorf("fresh color candidates = %d", info.Colors.Len())
	}
	if info.Ranks.Len() != 5 {
		t.Errorf("fresh rank candidates = %d", info.Ranks.Len())
	}
}
