// Package bot implements the CPU opponent. It consumes the engine's
// legality set and returns one member of it; it never inspects the draw
// pile or other players' hands.
package bot

import (
	rand "math/rand/v2"

	"github.com/kampala/matatu/internal/deck"
	"github.com/kampala/matatu/internal/game"
)

// specialOrder is the preference order for effect cards: penalise, keep
// the turn, go wild.
var specialOrder = []deck.Rank{deck.Two, deck.Eight, deck.Jack, deck.Ace}

// Strategy picks actions for a CPU seat.
type Strategy struct {
	rng *rand.Rand
}

// New returns a strategy using the given source of randomness for
// tie-breaking.
func New(rng *rand.Rand) *Strategy {
	return &Strategy{rng: rng}
}

// Choose returns one action from the legality set. It cuts as soon as the
// cut is legal, chains twos under a penalty, prefers special ranks,
// withholds the cut seven for a future cut, and otherwise sheds the
// highest-point card to keep its own total low.
func (b *Strategy) Choose(s *game.State, actions []game.Action) game.Action {
	if len(actions) == 0 {
		return game.Action{}
	}

	for _, a := range actions {
		if a.Kind == game.Cut {
			return a
		}
	}

	if s.PendingDraw() > 0 {
		for _, a := range actions {
			if a.Kind == game.PlayCard && a.Card.Rank == deck.Two {
				return a
			}
		}
	}

	cutSeven := deck.NewCard(s.CutSuit(), deck.Seven)

	for _, rank := range specialOrder {
		if rank == deck.Ace {
			if a, ok := b.chooseAce(s, actions); ok {
				return a
			}
			continue
		}
		for _, a := range actions {
			if a.Kind == game.PlayCard && a.Card.Rank == rank && a.Card != cutSeven {
				return a
			}
		}
	}

	// Shed the most expensive legal card, keeping the cut seven back if
	// anything else is playable.
	var best game.Action
	bestPoints := -1
	for _, a := range actions {
		if a.Kind != game.PlayCard {
			continue
		}
		if a.Card == cutSeven {
			continue
		}
		if pts := a.Card.Points(); pts > bestPoints {
			best = a
			bestPoints = pts
		}
	}
	if bestPoints >= 0 {
		return best
	}

	for _, a := range actions {
		if a.Kind == game.PlayCard {
			return a
		}
	}
	return actions[b.rng.IntN(len(actions))]
}

// chooseAce picks the ace play declaring the suit the hand holds most of,
// so later turns have the widest choice.
func (b *Strategy) chooseAce(s *game.State, actions []game.Action) (game.Action, bool) {
	var ace deck.Card
	found := false
	for _, a := range actions {
		if a.Kind == game.PlayAce {
			ace = a.Card
			found = true
			break
		}
	}
	if !found {
		return game.Action{}, false
	}

	var counts [4]int
	for _, c := range s.Hand(s.Current()) {
		if c == ace {
			continue
		}
		counts[c.Suit]++
	}
	declared := deck.Suits[0]
	for _, suit := range deck.Suits {
		if counts[suit] > counts[declared] {
			declared = suit
		}
	}

	want := game.PlayAceAction(ace, declared)
	for _, a := range actions {
		if a == want {
			return a, true
		}
	}
	return game.Action{}, false
}
