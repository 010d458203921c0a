package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kampala/matatu/internal/deck"
)

// fixture builds targeted mid-game states for tests. Hands, the discard
// pile and pending effects are set explicitly; every card not placed goes
// to the draw pile so the conservation invariant always holds.
type fixture struct {
	hands   [][]deck.Card // one per player, at least two players
	top     deck.Card
	under   []deck.Card // discard pile below the top card, oldest first
	cutSuit deck.Suit
	current int
	forced  int
	wild    *deck.Suit
	noStock bool // move every leftover card under the discard top instead
	rules   *Rules
}

func card(s string) deck.Card {
	c, err := deck.ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

func cards(names ...string) []deck.Card {
	out := make([]deck.Card, len(names))
	for i, n := range names {
		out[i] = card(n)
	}
	return out
}

func (f fixture) build(t *testing.T) *State {
	t.Helper()

	rules := DefaultRules()
	if f.rules != nil {
		rules = *f.rules
	}

	s := &State{
		rules:   rules,
		seed:    1,
		cutSuit: f.cutSuit,
		current: f.current,
	}

	used := make(map[deck.Card]bool)
	use := func(c deck.Card) {
		require.False(t, used[c], "fixture places %s twice", c)
		used[c] = true
	}

	require.GreaterOrEqual(t, len(f.hands), 2, "fixture needs at least two hands")
	s.players = make([]playerState, len(f.hands))
	for i, hand := range f.hands {
		for _, c := range hand {
			use(c)
		}
		s.players[i].hand = append([]deck.Card(nil), hand...)
	}

	for _, c := range f.under {
		use(c)
	}
	use(f.top)
	s.discard = append(append([]deck.Card(nil), f.under...), f.top)

	for _, c := range deck.New() {
		if !used[c] {
			if f.noStock {
				// Bury the leftovers in the discard pile so the draw
				// pile starts empty.
				s.discard = append([]deck.Card{c}, s.discard...)
			} else {
				s.stock = append(s.stock, c)
			}
		}
	}

	s.pend.forcedDraw = f.forced
	if f.wild != nil {
		s.pend.wildSuit = *f.wild
		s.pend.hasWild = true
	}

	require.NoError(t, s.checkInvariants())
	return s
}

func suitPtr(s deck.Suit) *deck.Suit {
	return &s
}

// snapshot captures the observable surface of a state for
// mutation-freedom assertions.
type snapshot struct {
	hands   [][]deck.Card
	top     deck.Card
	stock   int
	current int
	forced  int
	turn    int
	over    bool
}

func snap(s *State) snapshot {
	hands := make([][]deck.Card, s.NumPlayers())
	for i := range hands {
		hands[i] = s.Hand(i)
	}
	return snapshot{
		hands:   hands,
		top:     s.TopDiscard(),
		stock:   s.StockCount(),
		current: s.Current(),
		forced:  s.PendingDraw(),
		turn:    s.Turn(),
		over:    s.GameOver(),
	}
}
