// Package variant defines the pluggable rule set a game runs under: which
// colors make up the deck, which clues are legal, which cards a clue touches,
// and what the clued player actually learns. The engine and the bots share
// one implementation of the touch computation so that planning and legality
// can never diverge.
package variant

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lox/hanabiforbots/internal/deck"
)

// Kind discriminates the two clue flavours
type Kind int

const (
	KindColor Kind = iota
	KindRank
)

// String returns the string representation of a clue kind
func (k Kind) String() string {
	switch k {
	case KindColor:
		return "color"
	case KindRank:
		return "rank"
	default:
		return "?"
	}
}

// Clue is a clue value: a color or a rank, without a target. The target
// player lives on the action, not here, so the same value can be evaluated
// against any hand during search.
type Clue struct {
	Kind  Kind
	Color deck.Color
	Rank  deck.Rank
}

// ColorClue creates a color clue value
func ColorClue(c deck.Color) Clue {
	return Clue{Kind: KindColor, Color: c}
}

// RankClue creates a rank clue value
func RankClue(r deck.Rank) Clue {
	return Clue{Kind: KindRank, Rank: r}
}

// String renders the spoken value of the clue, e.g. "r" or "3"
func (c Clue) String() string {
	switch c.Kind {
	case KindColor:
		return c.Color.String()
	case KindRank:
		return c.Rank.String()
	default:
		return "?"
	}
}

// CardInfo is the public annotation attached to one hand slot: the candidate
// colors and ranks still possible for that card given the clues so far, and
// whether any clue has touched it. What a clue writes here is the variant's
// knowledge policy, not the engine's.
type CardInfo struct {
	Colors  deck.ColorSet
	Ranks   deck.RankSet
	Touched bool
}

// String renders the annotation compactly, e.g. "*rygbp12345" for a touched
// card about which nothing else is known
func (ci CardInfo) String() string {
	var b strings.Builder
	if ci.Touched {
		b.WriteString("*")
	}
	for _, c := range ci.Colors.Colors() {
		b.WriteString(c.String())
	}
	for _, r := range ci.Ranks.Ranks() {
		b.WriteString(r.String())
	}
	return b.String()
}

// Rules is the full rule set for one variant. Implementations must be
// stateless values; the engine calls them concurrently from parallel games.
type Rules interface {
	// Name is the registry handle
	Name() string
	// Colors is the palette: deck composition and the color clue space
	Colors() []deck.Color
	// Ranks is the distinct rank list, the rank clue space
	Ranks() []deck.Rank
	// DeckRanks is the per-color rank multiset the deck is built from
	DeckRanks() []deck.Rank
	// CheckClue validates a clue value against the variant
	CheckClue(c Clue) error
	// Touches reports whether the clue touches the card. This is the one
	// canonical touch computation; the engine's legality check and every
	// planning bot go through it.
	Touches(card deck.Card, c Clue) bool
	// Annotate applies the knowledge policy to one slot's annotation after
	// a clue resolves. Called for every slot of the target hand, touched
	// or not.
	Annotate(info *CardInfo, c Clue, touched bool)
	// NewCardInfo returns the annotation for a freshly drawn card
	NewCardInfo() CardInfo
}

var (
	// ErrMalformedClue indicates a clue with an invalid kind
	ErrMalformedClue = errors.New("malformed clue")
	// ErrUnknownColor indicates a color that cannot be clued in this variant
	ErrUnknownColor = errors.New("color cannot be clued in this variant")
	// ErrUnknownRank indicates a rank that cannot be clued in this variant
	ErrUnknownRank = errors.New("rank cannot be clued in this variant")
)

var registry = map[string]Rules{
	"duck": Duck{},
}

// Get returns the rule set registered under name
func Get(name string) (Rules, error) {
	r, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown variant %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return r, nil
}

// Names returns the registered variant names, sorted
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
