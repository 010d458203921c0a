package deck

import "testing"

func TestRankPoints(t *testing.T) {
	tests := []struct {
		rank Rank
		want int
	}{
		{Two, 20},
		{Three, 3},
		{Four, 4},
		{Five, 5},
		{Six, 6},
		{Seven, 7},
		{Eight, 8},
		{Nine, 9},
		{Ten, 10},
		{Jack, 11},
		{Queen, 12},
		{King, 13},
		{Ace, 15},
	}

	for _, tt := range tests {
		if got := tt.rank.Points(); got != tt.want {
			t.Errorf("%s.Points() = %d, want %d", tt.rank, got, tt.want)
		}
	}
}

func TestCardString(t *testing.T) {
	tests := []struct {
		card Card
		want string
	}{
		{NewCard(Spades, Ace), "A♠"},
		{NewCard(Hearts, Ten), "10♥"},
		{NewCard(Diamonds, Two), "2♦"},
		{NewCard(Clubs, Jack), "J♣"},
	}

	for _, tt := range tests {
		if got := tt.card.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseCard(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Card
		wantErr  bool
	}{
		{
			name:     "lowercase",
			input:    "8h",
			expected: Card{Suit: Hearts, Rank: Eight},
		},
		{
			name:     "uppercase",
			input:    "AS",
			expected: Card{Suit: Spades, Rank: Ace},
		},
		{
			name:     "ten as digits",
			input:    "10c",
			expected: Card{Suit: Clubs, Rank: Ten},
		},
		{
			name:     "ten as letter",
			input:    "td",
			expected: Card{Suit: Diamonds, Rank: Ten},
		},
		{
			name:     "surrounding space",
			input:    "  js ",
			expected: Card{Suit: Spades, Rank: Jack},
		},
		{
			name:    "invalid rank",
			input:   "xs",
			wantErr: true,
		},
		{
			name:    "invalid suit",
			input:   "8x",
			wantErr: true,
		},
		{
			name:    "too short",
			input:   "8",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCard(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseCard(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCard(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseCard(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseSuit(t *testing.T) {
	tests := []struct {
		input   string
		want    Suit
		wantErr bool
	}{
		{"s", Spades, false},
		{"H", Hearts, false},
		{"♦", Diamonds, false},
		{"clubs", Clubs, false},
		{"z", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseSuit(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseSuit(%q) expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseSuit(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSuit(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
