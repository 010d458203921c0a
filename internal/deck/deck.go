package deck

import rand "math/rand/v2"

// Size is the number of cards in the full deck.
const Size = 52

// New returns all 52 cards in a reproducible canonical order:
// suits in Suits order, ranks ascending within each suit.
func New() []Card {
	cards := make([]Card, 0, Size)
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, NewCard(suit, rank))
		}
	}
	return cards
}

// Shuffle permutes cards in place using the provided source of randomness.
func Shuffle(cards []Card, rng *rand.Rand) {
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}
