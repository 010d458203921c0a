package game

import "github.com/kampala/matatu/internal/deck"

// Apply advances the game by exactly one action and returns the successor
// state. The receiver is never modified. Actions outside the legality set
// are rejected with *IllegalActionError; a broken engine invariant in the
// successor surfaces as *InvariantViolation.
func (s *State) Apply(a Action) (*State, error) {
	if s.over {
		return nil, illegal(a, "game is over")
	}
	if !s.isLegal(a) {
		return nil, illegal(a, "not in the legality set for player %d", s.current)
	}

	n := s.clone()
	n.turn++
	n.pend.extraTurn = false

	switch a.Kind {
	case Draw:
		n.drawOne()
	case PlayCard, PlayAce:
		n.playCard(a)
	case Cut:
		n.cut()
	}

	n.maybeReshuffle()

	if err := n.checkInvariants(); err != nil {
		return nil, err
	}
	return n, nil
}

// drawOne moves one card from the stock to the current hand. Under a
// forced draw it pays one unit of the penalty; the turn passes only once
// the full amount is paid. A voluntary draw passes the turn immediately.
func (n *State) drawOne() {
	card := n.stock[0]
	n.stock = n.stock[1:]
	p := &n.players[n.current]
	p.hand = append(p.hand, card)

	if n.pend.forcedDraw > 0 {
		n.pend.forcedDraw--
		if n.pend.forcedDraw == 0 {
			n.advance()
		}
		return
	}
	n.advance()
}

// playCard moves the card from hand to the discard top and applies its
// rank effect. Legality has already vetted the move, including the rule
// that an eight or jack cannot empty the hand.
func (n *State) playCard(a Action) {
	n.removeFromHand(a.Card)
	n.discard = append(n.discard, a.Card)

	switch a.Card.Rank {
	case deck.Two:
		n.pend.hasWild = false
		n.pend.forcedDraw += 2
		n.advance()
	case deck.Eight, deck.Jack:
		n.pend.hasWild = false
		n.pend.extraTurn = true
		// Same player acts again; the index stays put.
	case deck.Ace:
		n.pend.wildSuit = a.Declared
		n.pend.hasWild = true
		n.advance()
	default:
		n.pend.hasWild = false
		n.advance()
	}

	if len(n.players[n.winCheckIndex()].hand) == 0 {
		n.over = true
		n.winner = n.winCheckIndex()
	}
}

// winCheckIndex is the seat that just played. The index has usually moved
// on already, except after an extra-turn card.
func (n *State) winCheckIndex() int {
	if n.pend.extraTurn {
		return n.current
	}
	return (n.current + len(n.players) - 1) % len(n.players)
}

// cut ends the game in the current player's favour. The cut seven lands on
// the discard pile so the final state shows how the game ended.
func (n *State) cut() {
	seven := deck.NewCard(n.cutSuit, deck.Seven)
	n.removeFromHand(seven)
	n.discard = append(n.discard, seven)
	n.over = true
	n.winner = n.current
}

func (n *State) removeFromHand(c deck.Card) {
	hand := n.players[n.current].hand
	for i, h := range hand {
		if h == c {
			n.players[n.current].hand = append(hand[:i], hand[i+1:]...)
			return
		}
	}
}

func (n *State) advance() {
	n.current = (n.current + 1) % len(n.players)
}
