package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kampala/matatu/internal/deck"
	"github.com/kampala/matatu/internal/randutil"
)

func TestCutWinScenario(t *testing.T) {
	// Player A holds the cut seven and a matching three; the opponent is
	// under the threshold. Cutting must be offered and must end the game
	// in A's favour.
	s := fixture{
		hands: [][]deck.Card{
			cards("7s", "3h"),
			cards("4c", "8c", "9c"), // 21 points
		},
		top:     card("3s"),
		cutSuit: deck.Spades,
	}.build(t)

	actions := s.LegalActions()
	require.Contains(t, actions, CutAction())

	next, err := s.Apply(CutAction())
	require.NoError(t, err)
	assert.True(t, next.GameOver())
	winner, ok := next.Winner()
	require.True(t, ok)
	assert.Equal(t, 0, winner)
}

func TestLoneEightScenario(t *testing.T) {
	// Player A's only card is a matching eight. Playing it would grant an
	// extra turn with nothing left to play, so the engine must offer a
	// draw instead.
	s := fixture{
		hands: [][]deck.Card{
			{card("8d")},
			cards("4c", "6c"),
		},
		top:     card("8s"), // rank match
		cutSuit: deck.Hearts,
	}.build(t)

	actions := s.LegalActions()
	assert.NotContains(t, actions, PlayCardAction(card("8d")))
	assert.Contains(t, actions, DrawAction())
}

// playout drives a full game with a trivial first-legal-action policy and
// asserts the engine invariants at every step.
func playout(t *testing.T, seed int64, players int) *State {
	t.Helper()

	state, err := NewGame(players, seed, DefaultRules())
	require.NoError(t, err)

	rng := randutil.Derive(seed, 1)
	for !state.GameOver() {
		require.Less(t, state.Turn(), 5000, "seed %d: game did not terminate", seed)

		actions := state.LegalActions()
		require.NotEmpty(t, actions, "seed %d: no legal actions on turn %d", seed, state.Turn())

		next, err := state.Apply(actions[rng.IntN(len(actions))])
		require.NoError(t, err, "seed %d turn %d", seed, state.Turn())
		require.NoError(t, next.checkInvariants(), "seed %d turn %d", seed, state.Turn())
		state = next
	}
	return state
}

func TestRandomPlayoutsHoldInvariants(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		playout(t, seed, 2)
	}
	for seed := int64(1); seed <= 20; seed++ {
		playout(t, seed, 4)
	}
}

func TestPlayoutsAreDeterministic(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		a := playout(t, seed, 2)
		b := playout(t, seed, 2)

		winA, _ := a.Winner()
		winB, _ := b.Winner()
		assert.Equal(t, winA, winB, "seed %d", seed)
		assert.Equal(t, a.Turn(), b.Turn(), "seed %d", seed)
		assert.Equal(t, a.TopDiscard(), b.TopDiscard(), "seed %d", seed)
	}
}
