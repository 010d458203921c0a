package game

import "github.com/kampala/matatu/internal/deck"

// activeSuit is the suit cards must match: the declared wild suit when an
// ace is in effect, otherwise the top discard's suit.
func (s *State) activeSuit() deck.Suit {
	if s.pend.hasWild {
		return s.pend.wildSuit
	}
	return s.TopDiscard().Suit
}

// matches reports whether c may be discarded onto the current pile top.
func (s *State) matches(c deck.Card) bool {
	return c.Suit == s.activeSuit() || c.Rank == s.TopDiscard().Rank
}

// LegalActions returns every action the current player may take. The slice
// is empty once the game is over. Apply accepts exactly the members of this
// set and nothing else.
//
// Drawing is a last resort: it is only offered when no play or cut is
// legal, except under a pending forced draw, where the victim may choose
// between chaining a two and paying the penalty one draw at a time.
func (s *State) LegalActions() []Action {
	if s.over {
		return nil
	}

	hand := s.players[s.current].hand

	if s.pend.forcedDraw > 0 {
		var actions []Action
		for _, c := range hand {
			if c.Rank == deck.Two && s.matches(c) {
				actions = append(actions, PlayCardAction(c))
			}
		}
		if len(s.stock) > 0 {
			actions = append(actions, DrawAction())
		}
		return actions
	}

	var actions []Action
	for _, c := range hand {
		if !s.matches(c) {
			continue
		}
		if c.Rank == deck.Ace {
			for _, declared := range deck.Suits {
				actions = append(actions, PlayAceAction(c, declared))
			}
			continue
		}
		// An eight or jack grants an extra turn, so it cannot be the
		// finishing card: a next play must exist.
		if len(hand) == 1 && (c.Rank == deck.Eight || c.Rank == deck.Jack) {
			continue
		}
		actions = append(actions, PlayCardAction(c))
	}

	if s.cutLegal() {
		actions = append(actions, CutAction())
	}

	if len(actions) == 0 && len(s.stock) > 0 {
		actions = append(actions, DrawAction())
	}
	return actions
}

// cutLegal reports whether the current player may cut: they must hold the
// seven of the cut suit and the scored hands must total at most the cut
// threshold. Which hands are scored is a rules convention.
func (s *State) cutLegal() bool {
	if !s.players[s.current].holds(deck.NewCard(s.cutSuit, deck.Seven)) {
		return false
	}
	total := 0
	if s.rules.CutCountsOwnHand {
		total = s.players[s.current].points()
	} else {
		for i, p := range s.players {
			if i == s.current {
				continue
			}
			total += p.points()
		}
	}
	return total <= s.rules.CutThreshold
}

// isLegal checks membership of a in the legality set for this state.
func (s *State) isLegal(a Action) bool {
	for _, legal := range s.LegalActions() {
		if a == legal {
			return true
		}
	}
	return false
}
