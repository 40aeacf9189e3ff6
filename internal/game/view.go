package game

import (
	"github.com/lox/hanabiforbots/internal/deck"
	"github.com/lox/hanabiforbots/internal/variant"
)

// View is the restricted snapshot of the board presented to one seat's bot:
// every other player's hand, every annotation, the stacks, discards, tokens
// and clue history, but never the seat's own cards. It is a deep copy taken
// when the turn starts, so nothing a bot does to it can reach the game.
type View struct {
	rules      variant.Rules
	seat       int
	numPlayers int
	turn       int
	hands      [][]deck.Card
	handSizes  []int
	notes      [][]variant.CardInfo
	stacks     Stacks
	discards   []deck.Card
	clueTokens int
	fuseTokens int
	deckSize   int
	countdown  int
	history    []ClueRecord
	status     Status
}

// View builds the restricted snapshot for seat
func (s *State) View(seat int) *View {
	v := &View{
		rules:      s.rules,
		seat:       seat,
		numPlayers: s.numPlayers,
		turn:       s.turn,
		hands:      make([][]deck.Card, s.numPlayers),
		handSizes:  make([]int, s.numPlayers),
		notes:      make([][]variant.CardInfo, s.numPlayers),
		stacks:     s.stacks.Clone(),
		discards:   s.Discards(),
		clueTokens: s.clueTokens,
		fuseTokens: s.fuseTokens,
		deckSize:   s.deck.Len(),
		countdown:  s.countdown,
		history:    copyHistory(s.history),
		status:     s.status,
	}
	for p := 0; p < s.numPlayers; p++ {
		v.handSizes[p] = len(s.hands[p])
		v.notes[p] = append([]variant.CardInfo(nil), s.notes[p]...)
		if p == seat {
			continue
		}
		v.hands[p] = append([]deck.Card(nil), s.hands[p]...)
	}
	return v
}

// Seat returns the seat this view belongs to
func (v *View) Seat() int {
	return v.seat
}

// NumPlayers returns the seat count
func (v *View) NumPlayers() int {
	return v.numPlayers
}

// Turn returns how many actions have been applied before this one
func (v *View) Turn() int {
	return v.turn
}

// ClueTokens returns the clue tokens remaining
func (v *View) ClueTokens() int {
	return v.clueTokens
}

// FuseTokens returns the fuse tokens remaining
func (v *View) FuseTokens() int {
	return v.fuseTokens
}

// DeckSize returns how many cards are left to draw
func (v *View) DeckSize() int {
	return v.deckSize
}

// TurnsLeft returns the final-round countdown, or -1 while the deck still
// has cards
func (v *View) TurnsLeft() int {
	return v.countdown
}

// Status returns the game status
func (v *View) Status() Status {
	return v.status
}

// Score returns the current score
func (v *View) Score() int {
	return v.stacks.Score()
}

// Rules returns the rule set the game runs under
func (v *View) Rules() variant.Rules {
	return v.rules
}

// Stacks returns a copy of the play stacks
func (v *View) Stacks() Stacks {
	return v.stacks.Clone()
}

// Discards returns the discard pile in discard order
func (v *View) Discards() []deck.Card {
	return v.discards
}

// History returns the public clue history
func (v *View) History() []ClueRecord {
	return v.history
}

// HandSize returns the number of cards held by seat, own seat included
func (v *View) HandSize(seat int) int {
	return v.handSizes[seat]
}

// Hand returns another player's cards, slot 0 newest. Asking for the own
// hand panics with ErrOwnHandAccess; the arena treats that as a bot
// contract violation.
func (v *View) Hand(seat int) []deck.Card {
	if seat == v.seat {
		panic(ErrOwnHandAccess)
	}
	return v.hands[seat]
}

// Annotations returns the public per-slot annotations for any seat, the own
// seat included. This is what the seat's player legitimately knows about
// their cards.
func (v *View) Annotations(seat int) []variant.CardInfo {
	return v.notes[seat]
}

// Others returns the other seats in turn order starting from the seat after
// this one
func (v *View) Others() []int {
	others := make([]int, 0, v.numPlayers-1)
	for i := 1; i < v.numPlayers; i++ {
		others = append(others, (v.seat+i)%v.numPlayers)
	}
	return others
}

// Playable reports whether the card would extend its stack right now
func (v *View) Playable(c deck.Card) bool {
	return v.stacks.Playable(c)
}

// Discardable reports whether the card's rank is already played on its color
func (v *View) Discardable(c deck.Card) bool {
	return v.stacks.Discardable(c)
}

// Critical reports whether the card is the last undiscarded copy of its kind
func (v *View) Critical(c deck.Card) bool {
	return critical(v.rules, v.discards, c)
}

// FullAccess is the cheating channel: a live window onto the authoritative
// state that can read any hand, the own one included. Accessors hand out
// copies, so even a cheating bot cannot mutate the game.
type FullAccess struct {
	state *State
	seat  int
}

// FullAccess builds the cheating window for seat
func (s *State) FullAccess(seat int) FullAccess {
	return FullAccess{state: s, seat: seat}
}

// Seat returns the seat this window belongs to
func (f FullAccess) Seat() int {
	return f.seat
}

// NumPlayers returns the seat count
func (f FullAccess) NumPlayers() int {
	return f.state.numPlayers
}

// Turn returns how many actions have been applied before this one
func (f FullAccess) Turn() int {
	return f.state.turn
}

// ClueTokens returns the clue tokens remaining
func (f FullAccess) ClueTokens() int {
	return f.state.clueTokens
}

// FuseTokens returns the fuse tokens remaining
func (f FullAccess) FuseTokens() int {
	return f.state.fuseTokens
}

// DeckSize returns how many cards are left to draw
func (f FullAccess) DeckSize() int {
	return f.state.deck.Len()
}

// TurnsLeft returns the final-round countdown, or -1 while the deck still
// has cards
func (f FullAccess) TurnsLeft() int {
	return f.state.countdown
}

// Status returns the game status
func (f FullAccess) Status() Status {
	return f.state.status
}

// Score returns the current score
func (f FullAccess) Score() int {
	return f.state.Score()
}

// Rules returns the rule set the game runs under
func (f FullAccess) Rules() variant.Rules {
	return f.state.rules
}

// Stacks returns a copy of the play stacks
func (f FullAccess) Stacks() Stacks {
	return f.state.Stacks()
}

// Discards returns a copy of the discard pile in discard order
func (f FullAccess) Discards() []deck.Card {
	return f.state.Discards()
}

// History returns a copy of the public clue history
func (f FullAccess) History() []ClueRecord {
	return f.state.History()
}

// HandSize returns the number of cards held by seat
func (f FullAccess) HandSize(seat int) int {
	return len(f.state.hands[seat])
}

// Hand returns a copy of any player's cards, the own hand included
func (f FullAccess) Hand(seat int) []deck.Card {
	return append([]deck.Card(nil), f.state.hands[seat]...)
}

// Annotations returns a copy of the public per-slot annotations for any seat
func (f FullAccess) Annotations(seat int) []variant.CardInfo {
	return append([]variant.CardInfo(nil), f.state.notes[seat]...)
}

// Others returns the other seats in turn order starting from the seat after
// this one
func (f FullAccess) Others() []int {
	others := make([]int, 0, f.state.numPlayers-1)
	for i := 1; i < f.state.numPlayers; i++ {
		others = append(others, (f.seat+i)%f.state.numPlayers)
	}
	return others
}

// Playable reports whether the card would extend its stack right now
func (f FullAccess) Playable(c deck.Card) bool {
	return f.state.stacks.Playable(c)
}

// Discardable reports whether the card's rank is already played on its color
func (f FullAccess) Discardable(c deck.Card) bool {
	return f.state.stacks.Discardable(c)
}

// Critical reports whether the card is the last undiscarded copy of its kind
func (f FullAccess) Critical(c deck.Card) bool {
	return critical(f.state.rules, f.state.discards, c)
}
