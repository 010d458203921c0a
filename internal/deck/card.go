package deck

import (
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Suits lists all four suits in canonical order.
var Suits = [4]Suit{Spades, Hearts, Diamonds, Clubs}

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "10"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Points returns the Matatu point value of a rank. Numeric ranks score
// their face value, faces count J=11 Q=12 K=13, and the special ranks
// carry a premium (A=15, 2=20). Points only matter for the cut threshold.
func (r Rank) Points() int {
	switch {
	case r >= Three && r <= Ten:
		return int(r)
	case r == Jack:
		return 11
	case r == Queen:
		return 12
	case r == King:
		return 13
	case r == Ace:
		return 15
	case r == Two:
		return 20
	default:
		return 0
	}
}

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the string representation of a card (e.g., "A♠")
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// Points returns the point value of the card
func (c Card) Points() int {
	return c.Rank.Points()
}

// ParseSuit parses a one-letter suit code (s/h/d/c, case insensitive)
// or a suit glyph.
func ParseSuit(s string) (Suit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "s", "♠", "spades":
		return Spades, nil
	case "h", "♥", "hearts":
		return Hearts, nil
	case "d", "♦", "diamonds":
		return Diamonds, nil
	case "c", "♣", "clubs":
		return Clubs, nil
	default:
		return 0, fmt.Errorf("invalid suit %q", s)
	}
}

// ParseCard parses cards written rank-then-suit, e.g. "8h", "10s", "AS".
// Ten may be written as "10" or "t".
func ParseCard(s string) (Card, error) {
	token := strings.ToLower(strings.TrimSpace(s))
	if len(token) < 2 {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}

	suit, err := ParseSuit(token[len(token)-1:])
	if err != nil {
		return Card{}, fmt.Errorf("invalid card %q: %w", s, err)
	}

	var rank Rank
	switch token[:len(token)-1] {
	case "a":
		rank = Ace
	case "2":
		rank = Two
	case "3":
		rank = Three
	case "4":
		rank = Four
	case "5":
		rank = Five
	case "6":
		rank = Six
	case "7":
		rank = Seven
	case "8":
		rank = Eight
	case "9":
		rank = Nine
	case "10", "t":
		rank = Ten
	case "j":
		rank = Jack
	case "q":
		rank = Queen
	case "k":
		rank = King
	default:
		return Card{}, fmt.Errorf("invalid rank in card %q", s)
	}

	return Card{Suit: suit, Rank: rank}, nil
}
