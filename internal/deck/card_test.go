package deck

import "testing"

func TestParseCards(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "opening hand",
			input: "r1 y2 g3 b4 p5",
			expected: []Card{
				{Color: Red, Rank: 1},
				{Color: Yellow, Rank: 2},
				{Color: Green, Rank: 3},
				{Color: Blue, Rank: 4},
				{Color: Purple, Rank: 5},
			},
		},
		{
			name:  "duplicates allowed",
			input: "r1 r1",
			expected: []Card{
				{Color: Red, Rank: 1},
				{Color: Red, Rank: 1},
			},
		},
		{
			name:     "empty",
			input:    "",
			expected: []Card{},
		},
		{
			name:    "unknown color",
			input:   "x1",
			wantErr: true,
		},
		{
			name:    "rank out of range",
			input:   "r6",
			wantErr: true,
		},
		{
			name:    "rank zero",
			input:   "r0",
			wantErr: true,
		},
		{
			name:    "too long",
			input:   "r12",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseCards(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCards(%q) unexpected error: %v", tt.input, err)
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("ParseCards(%q) = %v, want %v", tt.input, got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("card %d: got %v, want %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestCardString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		card Card
		want string
	}{
		{Card{Red, 1}, "r1"},
		{Card{Yellow, 2}, "y2"},
		{Card{Green, 3}, "g3"},
		{Card{Blue, 4}, "b4"},
		{Card{Purple, 5}, "p5"},
	}
	for _, tt := range tests {
		if got := tt.card.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.card, got, tt.want)
		}
	}
}

func TestCardStringRoundTrip(t *testing.T) {
	t.Parallel()

	for c := Red; c <= Purple; c++ {
		for r := MinRank; r <= MaxRank; r++ {
			card := NewCard(c, r)
			parsed, err := ParseCard(card.String())
			if err != nil {
				t.Fatalf("ParseCard(%q): %v", card.String(), err)
			}
			if parsed != card {
				t.Errorf("round trip %v -> %v", card, parsed)
			}
		}
	}
}
