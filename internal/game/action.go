package game

import (
	"fmt"

	"github.com/kampala/matatu/internal/deck"
)

// ActionKind discriminates the Action variants.
type ActionKind int

const (
	// PlayCard discards a non-ace card from the current player's hand.
	PlayCard ActionKind = iota
	// PlayAce discards an ace and declares the wild suit in one step.
	PlayAce
	// Draw takes one card from the draw pile. Under a pending forced
	// draw each Draw pays down one unit of the penalty.
	Draw
	// Cut ends the game immediately by playing the cut seven.
	Cut
)

// Action is one move a player can submit to the engine. Actions are plain
// comparable values; the legality set is a slice of them and membership is
// checked with ==.
type Action struct {
	Kind ActionKind

	// Card is set for PlayCard and PlayAce.
	Card deck.Card

	// Declared is the wild suit chosen with a PlayAce.
	Declared deck.Suit
}

// PlayCardAction plays a non-ace card.
func PlayCardAction(c deck.Card) Action {
	return Action{Kind: PlayCard, Card: c}
}

// PlayAceAction plays an ace and declares the wild suit. This is the only
// way to play an ace: the two-step "play then declare" is exposed as one
// atomic action so the engine never has an awaiting-declaration sub-state.
func PlayAceAction(c deck.Card, declared deck.Suit) Action {
	return Action{Kind: PlayAce, Card: c, Declared: declared}
}

// DrawAction draws a single card.
func DrawAction() Action {
	return Action{Kind: Draw}
}

// CutAction cuts the game with the seven of the cut suit.
func CutAction() Action {
	return Action{Kind: Cut}
}

func (a Action) String() string {
	switch a.Kind {
	case PlayCard:
		return fmt.Sprintf("play %s", a.Card)
	case PlayAce:
		return fmt.Sprintf("play %s declaring %s", a.Card, a.Declared)
	case Draw:
		return "draw"
	case Cut:
		return "cut"
	default:
		return "unknown"
	}
}
