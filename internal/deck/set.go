package deck

import "math/bits"

// ColorSet represents a set of colors using a bitset for fast operations
type ColorSet uint8

// NewColorSet creates a ColorSet from a slice of colors
func NewColorSet(colors []Color) ColorSet {
	var cs ColorSet
	for _, c := range colors {
		cs.Add(c)
	}
	return cs
}

// Add adds a color to the set
func (cs *ColorSet) Add(c Color) {
	*cs |= 1 << uint(c)
}

// Del removes a color from the set
func (cs *ColorSet) Del(c Color) {
	*cs &^= 1 << uint(c)
}

// Contains reports whether the set contains the color
func (cs ColorSet) Contains(c Color) bool {
	return cs&(1<<uint(c)) != 0
}

// Len returns the number of colors in the set
func (cs ColorSet) Len() int {
	return bits.OnesCount8(uint8(cs))
}

// Colors returns the members of the set in palette order
func (cs ColorSet) Colors() []Color {
	out := make([]Color, 0, cs.Len())
	for c := Red; c <= Purple; c++ {
		if cs.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}

// RankSet represents a set of ranks using a bitset for fast operations
type RankSet uint8

// NewRankSet creates a RankSet from a slice of ranks
func NewRankSet(ranks []Rank) RankSet {
	var rs RankSet
	for _, r := range ranks {
		rs.Add(r)
	}
	return rs
}

// Add adds a rank to the set
func (rs *RankSet) Add(r Rank) {
	*rs |= 1 << uint(r)
}

// Del removes a rank from the set
func (rs *RankSet) Del(r Rank) {
	*rs &^= 1 << uint(r)
}

// Contains reports whether the set contains the rank
func (rs RankSet) Contains(r Rank) bool {
	return rs&(1<<uint(r)) != 0
}

// Len returns the number of ranks in the set
func (rs RankSet) Len() int {
	return bits.OnesCount8(uint8(rs))
}

// Ranks returns the members of the set in ascending order
func (rs RankSet) Ranks() []Rank {
	out := make([]Rank, 0, rs.Len())
	for r := MinRank; r <= MaxRank; r++ {
		if rs.Contains(r) {
			out = append(out, r)
		}
	}
	return out
}
