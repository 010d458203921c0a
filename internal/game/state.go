package game

import (
	"fmt"

	"github.com/kampala/matatu/internal/deck"
	"github.com/kampala/matatu/internal/randutil"
)

// MaxPlayers is the largest table the deal can supply with full hands and
// the two pre-deal flips.
const MaxPlayers = 5

// pending carries effects produced by the previous action that constrain
// the upcoming turn.
type pending struct {
	// forcedDraw is the number of penalty cards still owed from chained
	// twos. While it is positive the victim may only chain another two or
	// draw.
	forcedDraw int

	// extraTurn records that the last play (an eight or a jack) kept the
	// turn with the same player. Informational for drivers; the turn index
	// simply was not advanced.
	extraTurn bool

	// wildSuit is the suit declared with the most recent ace, valid until
	// the next non-ace discard.
	wildSuit deck.Suit
	hasWild  bool
}

type playerState struct {
	hand []deck.Card
}

func (p playerState) points() int {
	total := 0
	for _, c := range p.hand {
		total += c.Points()
	}
	return total
}

func (p playerState) holds(c deck.Card) bool {
	for _, h := range p.hand {
		if h == c {
			return true
		}
	}
	return false
}

// State is a complete immutable snapshot of a game in progress. It is only
// ever constructed by NewGame and replaced wholesale by Apply; callers must
// not retain interior slices across calls.
type State struct {
	rules   Rules
	seed    int64
	players []playerState
	current int
	stock   []deck.Card
	discard []deck.Card
	cutSuit deck.Suit
	pend    pending
	over    bool
	winner  int
	turn    int
}

// NewGame shuffles a fresh deck with the given seed, fixes the cut suit,
// flips the first discard and deals rules.HandSize cards to each player.
// Player 0 acts first.
func NewGame(playerCount int, seed int64, rules Rules) (*State, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}
	if playerCount < 2 || playerCount > MaxPlayers {
		return nil, fmt.Errorf("player count must be between 2 and %d, got %d", MaxPlayers, playerCount)
	}
	if need := playerCount*rules.HandSize + 2; need > deck.Size {
		return nil, fmt.Errorf("cannot deal %d cards to %d players from a %d-card deck",
			rules.HandSize, playerCount, deck.Size)
	}

	cards := deck.New()
	deck.Shuffle(cards, randutil.New(seed))

	s := &State{
		rules:   rules,
		seed:    seed,
		players: make([]playerState, playerCount),
	}

	if rules.CutSuitFromFlip {
		// The flipped card fixes the cut suit and is slid under the deck.
		cut := cards[0]
		cards = append(cards[1:], cut)
		s.cutSuit = cut.Suit
	}

	first := cards[0]
	cards = cards[1:]
	s.discard = []deck.Card{first}
	if !rules.CutSuitFromFlip {
		s.cutSuit = first.Suit
	}

	for range rules.HandSize {
		for p := range s.players {
			s.players[p].hand = append(s.players[p].hand, cards[0])
			cards = cards[1:]
		}
	}
	s.stock = cards

	if err := s.checkInvariants(); err != nil {
		return nil, err
	}
	return s, nil
}

// NumPlayers returns the number of seats at the table.
func (s *State) NumPlayers() int {
	return len(s.players)
}

// Current returns the index of the player whose turn it is.
func (s *State) Current() int {
	return s.current
}

// Turn returns the number of actions applied so far.
func (s *State) Turn() int {
	return s.turn
}

// TopDiscard returns the discard pile's top card, which fixes the active
// suit and rank for matching.
func (s *State) TopDiscard() deck.Card {
	return s.discard[len(s.discard)-1]
}

// CutSuit returns the suit whose seven cuts the game.
func (s *State) CutSuit() deck.Suit {
	return s.cutSuit
}

// PendingDraw returns the number of forced-draw cards still owed.
func (s *State) PendingDraw() int {
	return s.pend.forcedDraw
}

// ExtraTurn reports whether the current player kept the turn by playing an
// eight or a jack.
func (s *State) ExtraTurn() bool {
	return s.pend.extraTurn
}

// DeclaredSuit returns the wild suit declared with the most recent ace, if
// one is active.
func (s *State) DeclaredSuit() (deck.Suit, bool) {
	return s.pend.wildSuit, s.pend.hasWild
}

// Hand returns a copy of player i's hand.
func (s *State) Hand(i int) []deck.Card {
	hand := make([]deck.Card, len(s.players[i].hand))
	copy(hand, s.players[i].hand)
	return hand
}

// HandCount returns how many cards player i holds.
func (s *State) HandCount(i int) int {
	return len(s.players[i].hand)
}

// HandPoints returns the point total of player i's hand.
func (s *State) HandPoints(i int) int {
	return s.players[i].points()
}

// StockCount returns the number of cards left in the draw pile. The pile's
// contents are not observable.
func (s *State) StockCount() int {
	return len(s.stock)
}

// Rules returns the conventions this game was dealt with.
func (s *State) Rules() Rules {
	return s.rules
}

// GameOver reports whether the game has ended. A finished state is
// terminal: no further actions are legal.
func (s *State) GameOver() bool {
	return s.over
}

// Winner returns the winning player's index once the game is over.
func (s *State) Winner() (int, bool) {
	if !s.over {
		return 0, false
	}
	return s.winner, true
}

// clone deep-copies the snapshot so Apply can build the successor state
// without touching the original.
func (s *State) clone() *State {
	n := *s
	n.players = make([]playerState, len(s.players))
	for i, p := range s.players {
		n.players[i].hand = make([]deck.Card, len(p.hand))
		copy(n.players[i].hand, p.hand)
	}
	n.stock = make([]deck.Card, len(s.stock))
	copy(n.stock, s.stock)
	n.discard = make([]deck.Card, len(s.discard))
	copy(n.discard, s.discard)
	return &n
}

// maybeReshuffle rebuilds the draw pile from the discard pile (keeping its
// top card) when the stock runs out. The shuffle RNG is derived from the
// game seed and turn counter so replays stay deterministic.
func (s *State) maybeReshuffle() {
	if len(s.stock) > 0 || len(s.discard) <= 1 {
		return
	}
	top := s.discard[len(s.discard)-1]
	reclaimed := make([]deck.Card, len(s.discard)-1)
	copy(reclaimed, s.discard[:len(s.discard)-1])
	deck.Shuffle(reclaimed, randutil.Derive(s.seed, uint64(s.turn)))
	s.stock = reclaimed
	s.discard = []deck.Card{top}
}

// checkInvariants verifies card conservation and pending-effect sanity.
// A non-nil result is an *InvariantViolation and indicates an engine bug.
func (s *State) checkInvariants() error {
	var seen [deck.Size]bool
	count := 0
	mark := func(c deck.Card) error {
		idx := int(c.Suit)*13 + int(c.Rank-deck.Two)
		if idx < 0 || idx >= deck.Size {
			return &InvariantViolation{Detail: fmt.Sprintf("card %s outside universe", c)}
		}
		if seen[idx] {
			return &InvariantViolation{Detail: fmt.Sprintf("card %s present twice", c)}
		}
		seen[idx] = true
		count++
		return nil
	}

	for _, c := range s.stock {
		if err := mark(c); err != nil {
			return err
		}
	}
	for _, c := range s.discard {
		if err := mark(c); err != nil {
			return err
		}
	}
	for _, p := range s.players {
		for _, c := range p.hand {
			if err := mark(c); err != nil {
				return err
			}
		}
	}
	if count != deck.Size {
		return &InvariantViolation{Detail: fmt.Sprintf("universe holds %d cards, want %d", count, deck.Size)}
	}

	if len(s.discard) == 0 {
		return &InvariantViolation{Detail: "discard pile is empty"}
	}
	if s.pend.forcedDraw < 0 {
		return &InvariantViolation{Detail: fmt.Sprintf("negative forced-draw count %d", s.pend.forcedDraw)}
	}
	if s.current < 0 || s.current >= len(s.players) {
		return &InvariantViolation{Detail: fmt.Sprintf("current player index %d out of range", s.current)}
	}
	return nil
}
