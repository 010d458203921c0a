package game

import "fmt"

// Rules holds the table conventions that the published rules leave open.
// The defaults follow the house convention this engine was written for;
// every field is overridable from the HCL config file.
type Rules struct {
	// HandSize is the number of cards dealt to each player.
	HandSize int

	// CutThreshold is the maximum point total that still permits a cut.
	CutThreshold int

	// CutCountsOwnHand selects whose cards count against CutThreshold.
	// False (default): the combined hands of all other players.
	// True: the cutting player's own remaining hand.
	CutCountsOwnHand bool

	// CutSuitFromFlip selects how the cut suit is fixed. True (default):
	// one card is flipped from the shuffled deck before the deal and its
	// suit is the cut suit for the whole game; the card itself goes to the
	// bottom of the draw pile. False: the first discard's suit is used.
	CutSuitFromFlip bool
}

// DefaultRules returns the standard conventions: seven-card hands, a cut
// threshold of 25 counting opponents' hands, and a cut suit fixed by the
// pre-deal flip.
func DefaultRules() Rules {
	return Rules{
		HandSize:        7,
		CutThreshold:    25,
		CutSuitFromFlip: true,
	}
}

// Validate checks that the rules can produce a playable game.
func (r Rules) Validate() error {
	if r.HandSize < 1 {
		return fmt.Errorf("hand size must be at least 1, got %d", r.HandSize)
	}
	if r.CutThreshold < 0 {
		return fmt.Errorf("cut threshold must be non-negative, got %d", r.CutThreshold)
	}
	return nil
}
