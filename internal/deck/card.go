package deck

import (
	"fmt"
	"strings"
)

// Color represents a card color
type Color int

const (
	Red Color = iota
	Yellow
	Green
	Blue
	Purple
)

// String returns the one-letter code of a color
func (c Color) String() string {
	switch c {
	case Red:
		return "r"
	case Yellow:
		return "y"
	case Green:
		return "g"
	case Blue:
		return "b"
	case Purple:
		return "p"
	default:
		return "?"
	}
}

// ParseColor parses a one-letter color code
func ParseColor(s string) (Color, error) {
	switch s {
	case "r":
		return Red, nil
	case "y":
		return Yellow, nil
	case "g":
		return Green, nil
	case "b":
		return Blue, nil
	case "p":
		return Purple, nil
	default:
		return 0, fmt.Errorf("unknown color %q", s)
	}
}

// Rank represents a card rank (1 is lowest, 5 completes a stack)
type Rank int

const (
	MinRank Rank = 1
	MaxRank Rank = 5
)

// String returns the string representation of a rank
func (r Rank) String() string {
	if r < MinRank || r > MaxRank {
		return "?"
	}
	return string(rune('0' + r))
}

// Card represents a single Hanabi card
type Card struct {
	Color Color
	Rank  Rank
}

// NewCard creates a new card
func NewCard(color Color, rank Rank) Card {
	return Card{Color: color, Rank: rank}
}

// String returns the string representation of a card (e.g., "r1")
func (c Card) String() string {
	return c.Color.String() + c.Rank.String()
}

// ParseCard parses a card from its compact form, e.g. "g4"
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("malformed card %q", s)
	}
	color, err := ParseColor(s[:1])
	if err != nil {
		return Card{}, fmt.Errorf("malformed card %q: %w", s, err)
	}
	rank := Rank(s[1] - '0')
	if rank < MinRank || rank > MaxRank {
		return Card{}, fmt.Errorf("malformed card %q: rank out of range", s)
	}
	return Card{Color: color, Rank: rank}, nil
}

// ParseCards parses a space-separated list of compact cards, e.g. "r1 g4 p5"
func ParseCards(s string) ([]Card, error) {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}
