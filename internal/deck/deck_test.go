package deck

import (
	"testing"

	"github.com/kampala/matatu/internal/randutil"
)

func TestNewDeck(t *testing.T) {
	cards := New()
	if len(cards) != Size {
		t.Fatalf("New() returned %d cards, want %d", len(cards), Size)
	}

	seen := make(map[Card]bool, Size)
	for _, c := range cards {
		if seen[c] {
			t.Errorf("card %s appears twice", c)
		}
		seen[c] = true
	}
}

func TestShuffleDeterministic(t *testing.T) {
	a := New()
	b := New()
	Shuffle(a, randutil.New(42))
	Shuffle(b, randutil.New(42))

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different orders at index %d: %s vs %s", i, a[i], b[i])
		}
	}

	c := New()
	Shuffle(c, randutil.New(43))
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical orders")
	}
}

func TestShufflePreservesCards(t *testing.T) {
	cards := New()
	Shuffle(cards, randutil.New(7))

	seen := make(map[Card]bool, Size)
	for _, c := range cards {
		seen[c] = true
	}
	if len(seen) != Size {
		t.Errorf("shuffle lost cards: %d unique, want %d", len(seen), Size)
	}
}
