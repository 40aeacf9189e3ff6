package game

import (
	"fmt"
	"strings"

	"github.com/lox/hanabiforbots/internal/deck"
	"github.com/lox/hanabiforbots/internal/randutil"
	"github.com/lox/hanabiforbots/internal/variant"
)

const (
	MinPlayers = 2
	MaxPlayers = 5

	MaxClueTokens = 8
	MaxFuseTokens = 3
)

// countdownInactive marks the final-round countdown as not yet started
const countdownInactive = -1

// Status is the terminal state of a game
type Status int

const (
	StatusOngoing Status = iota
	StatusWon
	StatusLostFuses
	StatusDeckExhausted
)

// String returns the string representation of a status
func (s Status) String() string {
	switch s {
	case StatusOngoing:
		return "ongoing"
	case StatusWon:
		return "won"
	case StatusLostFuses:
		return "lost-by-fuses"
	case StatusDeckExhausted:
		return "ended-by-deck"
	default:
		return "?"
	}
}

// Stacks maps each color to the highest rank played on it (0 = nothing)
type Stacks map[deck.Color]deck.Rank

// Height returns the stack height for a color
func (st Stacks) Height(c deck.Color) deck.Rank {
	return st[c]
}

// Score returns the sum of all stack heights
func (st Stacks) Score() int {
	total := 0
	for _, r := range st {
		total += int(r)
	}
	return total
}

// Clone returns an independent copy, useful for hypothetical planning
func (st Stacks) Clone() Stacks {
	out := make(Stacks, len(st))
	for c, r := range st {
		out[c] = r
	}
	return out
}

// Playable reports whether the card would extend its stack right now
func (st Stacks) Playable(c deck.Card) bool {
	return st[c.Color] == c.Rank-1
}

// Discardable reports whether the card is dead weight, its rank already
// played on its color
func (st Stacks) Discardable(c deck.Card) bool {
	return st[c.Color] >= c.Rank
}

// Play pushes the card onto its stack. The card must be playable; this is
// the hypothetical-planning mutator, not the engine's.
func (st Stacks) Play(c deck.Card) {
	st[c.Color] = c.Rank
}

// State is the authoritative model of one game: hands, annotations, deck,
// stacks, discards, tokens, clue history and turn bookkeeping. It is
// exclusively owned by the turn loop; bots receive a View or FullAccess,
// never the State itself.
type State struct {
	rules          variant.Rules
	maxRank        deck.Rank
	numPlayers     int
	startingPlayer int
	turn           int
	hands          [][]deck.Card
	notes          [][]variant.CardInfo
	deck           *deck.Deck
	stacks         Stacks
	discards       []deck.Card
	clueTokens     int
	fuseTokens     int
	countdown      int
	history        []ClueRecord
	status         Status
}

// Option configures a State during creation
type Option func(*gameConfig)

type gameConfig struct {
	rules          variant.Rules
	startingPlayer int
	deck           *deck.Deck
}

// WithRules sets the rule set. Default is the Duck rules.
func WithRules(r variant.Rules) Option {
	return func(c *gameConfig) {
		c.rules = r
	}
}

// WithStartingPlayer sets which seat acts first. Default is seat 0.
func WithStartingPlayer(seat int) Option {
	return func(c *gameConfig) {
		c.startingPlayer = seat
	}
}

// WithDeck sets an explicit deck order instead of shuffling from the seed.
// The cards must form exactly the variant's composition. Used by tests that
// need full control over the deal.
func WithDeck(d *deck.Deck) Option {
	return func(c *gameConfig) {
		c.deck = d
	}
}

// New creates the initial state for a game with the given player count,
// shuffling the deck deterministically from seed and dealing the opening
// hands. Configuration problems are reported before any turn can run.
func New(players int, seed int64, opts ...Option) (*State, error) {
	cfg := &gameConfig{
		rules: variant.Duck{},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if players < MinPlayers || players > MaxPlayers {
		return nil, fmt.Errorf("%w, got %d", ErrPlayerCount, players)
	}
	if cfg.startingPlayer < 0 || cfg.startingPlayer >= players {
		return nil, fmt.Errorf("%w: seat %d with %d players", ErrStartingPlayer, cfg.startingPlayer, players)
	}

	var d *deck.Deck
	if cfg.deck != nil {
		if err := checkComposition(cfg.rules, cfg.deck); err != nil {
			return nil, err
		}
		d = deck.FromCards(cfg.deck.Cards())
	} else {
		d = deck.New(cfg.rules.Colors(), cfg.rules.DeckRanks())
		d.Shuffle(randutil.New(seed))
	}

	maxRank := deck.Rank(0)
	for _, r := range cfg.rules.Ranks() {
		if r > maxRank {
			maxRank = r
		}
	}

	s := &State{
		rules:          cfg.rules,
		maxRank:        maxRank,
		numPlayers:     players,
		startingPlayer: cfg.startingPlayer,
		hands:          make([][]deck.Card, players),
		notes:          make([][]variant.CardInfo, players),
		deck:           d,
		stacks:         make(Stacks, len(cfg.rules.Colors())),
		clueTokens:     MaxClueTokens,
		fuseTokens:     MaxFuseTokens,
		countdown:      countdownInactive,
	}
	for _, c := range cfg.rules.Colors() {
		s.stacks[c] = 0
	}

	for seat := 0; seat < players; seat++ {
		for i := 0; i < HandSizeFor(players); i++ {
			s.draw(seat)
		}
	}

	return s, nil
}

// HandSizeFor returns the hand capacity for a player count: five cards for
// two or three players, four for four or five.
func HandSizeFor(players int) int {
	if players <= 3 {
		return 5
	}
	return 4
}

// checkComposition verifies an explicit deck holds exactly the variant's
// card multiset.
func checkComposition(rules variant.Rules, d *deck.Deck) error {
	expected := make(map[deck.Card]int)
	for _, c := range rules.Colors() {
		for _, r := range rules.DeckRanks() {
			expected[deck.NewCard(c, r)]++
		}
	}

	cards := d.Cards()
	got := make(map[deck.Card]int)
	for _, c := range cards {
		got[c]++
	}

	if len(cards) != len(rules.Colors())*len(rules.DeckRanks()) {
		return fmt.Errorf("%w: %d cards", ErrDeckComposition, len(cards))
	}
	for card, n := range expected {
		if got[card] != n {
			return fmt.Errorf("%w: %d copies of %s, want %d", ErrDeckComposition, got[card], card, n)
		}
	}
	return nil
}

// draw moves the top deck card into the seat's hand at slot 0, so slot 0 is
// always the newest card and the highest index the oldest.
func (s *State) draw(seat int) {
	card, ok := s.deck.Draw()
	if !ok {
		return
	}
	s.hands[seat] = append([]deck.Card{card}, s.hands[seat]...)
	s.notes[seat] = append([]variant.CardInfo{s.rules.NewCardInfo()}, s.notes[seat]...)
}

// NumPlayers returns the seat count
func (s *State) NumPlayers() int {
	return s.numPlayers
}

// CurrentPlayer returns the seat whose turn it is
func (s *State) CurrentPlayer() int {
	return (s.turn + s.startingPlayer) % s.numPlayers
}

// Turn returns how many actions have been applied
func (s *State) Turn() int {
	return s.turn
}

// Status returns the game status
func (s *State) Status() Status {
	return s.status
}

// Over reports whether the game has reached a terminal status
func (s *State) Over() bool {
	return s.status != StatusOngoing
}

// Score returns the current score, the sum of stack heights
func (s *State) Score() int {
	return s.stacks.Score()
}

// ClueTokens returns the clue tokens remaining
func (s *State) ClueTokens() int {
	return s.clueTokens
}

// FuseTokens returns the fuse tokens remaining
func (s *State) FuseTokens() int {
	return s.fuseTokens
}

// DeckSize returns how many cards are left to draw
func (s *State) DeckSize() int {
	return s.deck.Len()
}

// TurnsLeft returns the final-round countdown, or -1 while the deck still
// has cards
func (s *State) TurnsLeft() int {
	return s.countdown
}

// HandSize returns the number of cards currently held by seat
func (s *State) HandSize(seat int) int {
	return len(s.hands[seat])
}

// Rules returns the rule set the game runs under
func (s *State) Rules() variant.Rules {
	return s.rules
}

// Stacks returns a copy of the play stacks
func (s *State) Stacks() Stacks {
	return s.stacks.Clone()
}

// Discards returns a copy of the discard pile in discard order
func (s *State) Discards() []deck.Card {
	out := make([]deck.Card, len(s.discards))
	copy(out, s.discards)
	return out
}

// History returns a copy of the public clue history
func (s *State) History() []ClueRecord {
	return copyHistory(s.history)
}

func copyHistory(history []ClueRecord) []ClueRecord {
	out := make([]ClueRecord, len(history))
	for i, rec := range history {
		out[i] = rec
		out[i].Touched = append([]int(nil), rec.Touched...)
	}
	return out
}

// String renders a compact debugging summary of the whole board, hidden
// hands included
func (s *State) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "turn %d (%s) score=%d clues=%d fuses=%d deck=%d",
		s.turn, s.status, s.Score(), s.clueTokens, s.fuseTokens, s.deck.Len())
	if s.countdown != countdownInactive {
		fmt.Fprintf(&b, " turns-left=%d", s.countdown)
	}
	b.WriteString("\nstacks:")
	for _, c := range s.rules.Colors() {
		fmt.Fprintf(&b, " %s:%d", c, s.stacks[c])
	}
	for seat, hand := range s.hands {
		fmt.Fprintf(&b, "\nplayer %d:", seat)
		for i, card := range hand {
			fmt.Fprintf(&b, " %s(%s)", card, s.notes[seat][i])
		}
		if seat == s.CurrentPlayer() {
			b.WriteString(" <- current")
		}
	}
	if len(s.discards) > 0 {
		b.WriteString("\ndiscards:")
		for _, card := range s.discards {
			fmt.Fprintf(&b, " %s", card)
		}
	}
	return b.String()
}

// TouchedSlots computes which slots of a hand a clue touches. This is the
// single touch computation shared by the engine's legality check and by
// planning bots, so a bot's prediction can never diverge from what the
// engine does.
func TouchedSlots(rules variant.Rules, hand []deck.Card, c variant.Clue) []int {
	var touched []int
	for i, card := range hand {
		if rules.Touches(card, c) {
			touched = append(touched, i)
		}
	}
	return touched
}

// critical reports whether a card is the last copy of its kind not yet lost
// to the discard pile
func critical(rules variant.Rules, discards []deck.Card, c deck.Card) bool {
	copies := 0
	for _, r := range rules.DeckRanks() {
		if r == c.Rank {
			copies++
		}
	}
	lost := 0
	for _, d := range discards {
		if d == c {
			lost++
		}
	}
	return copies-lost == 1
}
