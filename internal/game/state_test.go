package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/lox/hanabiforbots/internal/deck"
	"github.com/lox/hanabiforbots/internal/variant"
)

// openingDeal builds a full deck for the rules that deals exactly the given
// opening hands, each written slot 0 first. The rest of the composition
// follows in color order as the draw pile.
func openingDeal(t *testing.T, rules variant.Rules, hands ...string) *deck.Deck {
	t.Helper()
	var draw []deck.Card
	for _, h := range hands {
		cards, err := deck.ParseCards(h)
		if err != nil {
			t.Fatalf("bad hand %q: %v", h, err)
		}
		// the first card drawn ends up deepest in the hand, so reverse
		for i := len(cards) - 1; i >= 0; i-- {
			draw = append(draw, cards[i])
		}
	}
	return fillDeck(t, rules, draw)
}

// fillDeck completes a partial draw order to the full composition of the
// rules, appending the unused cards in color order.
func fillDeck(t *testing.T, rules variant.Rules, front []deck.Card) *deck.Deck {
	t.Helper()
	remaining := make(map[deck.Card]int)
	for _, c := range rules.Colors() {
		for _, r := range rules.DeckRanks() {
			remaining[deck.NewCard(c, r)]++
		}
	}
	for _, c := range front {
		if remaining[c] == 0 {
			t.Fatalf("draw order uses too many copies of %s", c)
		}
		remaining[c]--
	}
	cards := append([]deck.Card(nil), front...)
	for _, col := range rules.Colors() {
		for _, r := range rules.DeckRanks() {
			card := deck.NewCard(col, r)
			if remaining[card] > 0 {
				cards = append(cards, card)
				remaining[card]--
			}
		}
	}
	return deck.FromCards(cards)
}

func mustApply(t *testing.T, s *State, seat int, a Action) {
	t.Helper()
	if err := s.Apply(seat, a); err != nil {
		t.Fatalf("turn %d: %s by seat %d rejected: %v", s.Turn(), a, seat, err)
	}
}

func handString(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// miniRules is a two-color rule set used to script short games end to end.
// It also proves the engine takes any Rules implementation, not just the
// ones registered in the variant package.
type miniRules struct{}

func (miniRules) Name() string { return "mini" }

func (miniRules) Colors() []deck.Color {
	return []deck.Color{deck.Red, deck.Yellow}
}

func (miniRules) Ranks() []deck.Rank {
	return []deck.Rank{1, 2, 3, 4, 5}
}

func (miniRules) DeckRanks() []deck.Rank {
	return []deck.Rank{1, 1, 1, 2, 2, 3, 3, 4, 4, 5}
}

func (miniRules) CheckClue(c variant.Clue) error {
	switch c.Kind {
	case variant.KindColor:
		if c.Color != deck.Red && c.Color != deck.Yellow {
			return variant.ErrUnknownColor
		}
		return nil
	case variant.KindRank:
		if c.Rank < deck.MinRank || c.Rank > deck.MaxRank {
			return variant.ErrUnknownRank
		}
		return nil
	default:
		return variant.ErrMalformedClue
	}
}

func (miniRules) Touches(card deck.Card, c variant.Clue) bool {
	if c.Kind == variant.KindColor {
		return card.Color == c.Color
	}
	return card.Rank == c.Rank
}

func (miniRules) Annotate(info *variant.CardInfo, c variant.Clue, touched bool) {
	if touched {
		info.Touched = true
	}
}

func (miniRules) NewCardInfo() variant.CardInfo {
	return variant.CardInfo{
		Colors: deck.NewColorSet([]deck.Color{deck.Red, deck.Yellow}),
		Ranks:  deck.NewRankSet([]deck.Rank{1, 2, 3, 4, 5}),
	}
}

func TestNewHandSizes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		players  int
		handSize int
	}{
		{2, 5},
		{3, 5},
		{4, 4},
		{5, 4},
	}
	for _, tt := range tests {
		s, err := New(tt.players, 1)
		if err != nil {
			t.Fatalf("New(%d) failed: %v", tt.players, err)
		}
		for seat := 0; seat < tt.players; seat++ {
			if s.HandSize(seat) != tt.handSize {
				t.Errorf("%d players: seat %d has %d cards, want %d", tt.players, seat, s.HandSize(seat), tt.handSize)
			}
		}
		wantDeck := 50 - tt.players*tt.handSize
		if s.DeckSize() != wantDeck {
			t.Errorf("%d players: deck has %d cards, want %d", tt.players, s.DeckSize(), wantDeck)
		}
	}
}

func TestNewInitialState(t *testing.T) {
	t.Parallel()
	s, err := New(3, 42)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if s.ClueTokens() != MaxClueTokens {
		t.Errorf("Expected %d clue tokens, got %d", MaxClueTokens, s.ClueTokens())
	}
	if s.FuseTokens() != MaxFuseTokens {
		t.Errorf("Expected %d fuse tokens, got %d", MaxFuseTokens, s.FuseTokens())
	}
	if s.Turn() != 0 {
		t.Errorf("Expected turn 0, got %d", s.Turn())
	}
	if s.CurrentPlayer() != 0 {
		t.Errorf("Expected seat 0 to start, got %d", s.CurrentPlayer())
	}
	if s.Score() != 0 {
		t.Errorf("Expected score 0, got %d", s.Score())
	}
	if s.Status() != StatusOngoing {
		t.Errorf("Expected ongoing status, got %s", s.Status())
	}
	if s.Over() {
		t.Error("Fresh game should not be over")
	}
	if s.TurnsLeft() != -1 {
		t.Errorf("Countdown should be inactive, got %d", s.TurnsLeft())
	}
	if len(s.History()) != 0 {
		t.Errorf("Expected empty history, got %d records", len(s.History()))
	}
	if len(s.Discards()) != 0 {
		t.Errorf("Expected empty discard pile, got %d cards", len(s.Discards()))
	}
	for _, c := range s.Rules().Colors() {
		if s.Stacks()[c] != 0 {
			t.Errorf("Stack %s should start at 0, got %d", c, s.Stacks()[c])
		}
	}
}

func TestNewPlayerCountValidation(t *testing.T) {
	t.Parallel()
	for _, players := range []int{-1, 0, 1, 6, 10} {
		_, err := New(players, 0)
		if !errors.Is(err, ErrPlayerCount) {
			t.Errorf("New(%d) error = %v, want ErrPlayerCount", players, err)
		}
	}
}

func TestNewStartingPlayer(t *testing.T) {
	t.Parallel()
	s, err := New(3, 0, WithStartingPlayer(2))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if s.CurrentPlayer() != 2 {
		t.Errorf("Expected seat 2 to start, got %d", s.CurrentPlayer())
	}
	mustApply(t, s, 2, ClueColor(0, s.hands[0][0].Color))
	if s.CurrentPlayer() != 0 {
		t.Errorf("Expected seat 0 after seat 2, got %d", s.CurrentPlayer())
	}

	for _, seat := range []int{-1, 3, 7} {
		_, err := New(3, 0, WithStartingPlayer(seat))
		if !errors.Is(err, ErrStartingPlayer) {
			t.Errorf("WithStartingPlayer(%d) error = %v, want ErrStartingPlayer", seat, err)
		}
	}
}

func TestNewDeterministicDeal(t *testing.T) {
	t.Parallel()
	a, err := New(4, 99)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	b, err := New(4, 99)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if a.String() != b.String() {
		t.Errorf("Same seed produced different deals:\n%s\n---\n%s", a, b)
	}

	c, err := New(4, 100)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if a.String() == c.String() {
		t.Error("Different seeds produced the same deal")
	}
}

func TestNewWithDeck(t *testing.T) {
	t.Parallel()
	d := openingDeal(t, variant.Duck{}, "r1 y3 g4 b2 p5", "y1 y2 b3 b4 g5")
	s, err := New(2, 0, WithDeck(d))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	f := s.FullAccess(0)
	if got := handString(f.Hand(0)); got != "r1 y3 g4 b2 p5" {
		t.Errorf("Seat 0 hand = %q, want %q", got, "r1 y3 g4 b2 p5")
	}
	if got := handString(f.Hand(1)); got != "y1 y2 b3 b4 g5" {
		t.Errorf("Seat 1 hand = %q, want %q", got, "y1 y2 b3 b4 g5")
	}
	if s.DeckSize() != 40 {
		t.Errorf("Expected 40 cards left, got %d", s.DeckSize())
	}
}

func TestNewWithDeckComposition(t *testing.T) {
	t.Parallel()
	valid := openingDeal(t, variant.Duck{}, "r1 y3 g4 b2 p5", "y1 y2 b3 b4 g5")

	// one card short
	short := valid.Cards()[:49]
	_, err := New(2, 0, WithDeck(deck.FromCards(short)))
	if !errors.Is(err, ErrDeckComposition) {
		t.Errorf("Short deck error = %v, want ErrDeckComposition", err)
	}

	// right size, wrong multiset
	swapped := valid.Cards()
	swapped[0] = swapped[1]
	_, err = New(2, 0, WithDeck(deck.FromCards(swapped)))
	if !errors.Is(err, ErrDeckComposition) {
		t.Errorf("Swapped deck error = %v, want ErrDeckComposition", err)
	}
}

func TestStacksPredicates(t *testing.T) {
	t.Parallel()
	st := Stacks{deck.Red: 2, deck.Yellow: 0}

	if !st.Playable(deck.NewCard(deck.Red, 3)) {
		t.Error("r3 should be playable on a red stack of height 2")
	}
	if st.Playable(deck.NewCard(deck.Red, 2)) {
		t.Error("r2 should not be playable twice")
	}
	if st.Playable(deck.NewCard(deck.Red, 4)) {
		t.Error("r4 should not be playable out of order")
	}
	if !st.Playable(deck.NewCard(deck.Yellow, 1)) {
		t.Error("y1 should be playable on an empty stack")
	}
	if !st.Discardable(deck.NewCard(deck.Red, 1)) {
		t.Error("r1 should be discardable once the red stack reached 2")
	}
	if st.Discardable(deck.NewCard(deck.Red, 3)) {
		t.Error("r3 should not be discardable yet")
	}

	clone := st.Clone()
	clone.Play(deck.NewCard(deck.Red, 3))
	if clone[deck.Red] != 3 {
		t.Errorf("Clone stack = %d after play, want 3", clone[deck.Red])
	}
	if st[deck.Red] != 2 {
		t.Errorf("Original stack mutated to %d", st[deck.Red])
	}
	if clone.Score() != 3 {
		t.Errorf("Clone score = %d, want 3", clone.Score())
	}
}

func TestTouchedSlots(t *testing.T) {
	t.Parallel()
	hand, err := deck.ParseCards("r1 y2 r3")
	if err != nil {
		t.Fatalf("ParseCards failed: %v", err)
	}
	rules := variant.Duck{}

	got := TouchedSlots(rules, hand, variant.ColorClue(deck.Red))
	if len(got) != 2 || got[0] != 0 || got[1] != 2 {
		t.Errorf("Red touches %v, want [0 2]", got)
	}
	got = TouchedSlots(rules, hand, variant.RankClue(2))
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("Rank 2 touches %v, want [1]", got)
	}
	got = TouchedSlots(rules, hand, variant.ColorClue(deck.Green))
	if len(got) != 0 {
		t.Errorf("Green touches %v, want none", got)
	}
}
