package deck

import (
	rand "math/rand/v2"
)

// Deck represents an ordered pile of Hanabi cards, consumed front to back
type Deck struct {
	cards []Card
}

// New builds an unshuffled deck: one card per color for every entry in the
// per-color rank multiset. A standard five-color deck with the
// 1,1,1,2,2,3,3,4,4,5 multiset holds 50 cards.
func New(colors []Color, ranks []Rank) *Deck {
	cards := make([]Card, 0, len(colors)*len(ranks))
	for _, c := range colors {
		for _, r := range ranks {
			cards = append(cards, NewCard(c, r))
		}
	}
	return &Deck{cards: cards}
}

// FromCards creates a deck with an explicit order, used by tests and
// fixed-deal setups
func FromCards(cards []Card) *Deck {
	d := &Deck{cards: make([]Card, len(cards))}
	copy(d.cards, cards)
	return d
}

// Shuffle randomizes the order of the remaining cards
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the top card
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

// Len returns the number of cards left
func (d *Deck) Len() int {
	return len(d.cards)
}

// Empty reports whether the deck has run out
func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

// Cards returns a copy of the remaining cards in draw order
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
