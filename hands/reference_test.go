package hands

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/lazharichir/fivecard/cards"
	"github.com/paulhankin/poker"
	"github.com/stretchr/testify/require"
)

// referenceSuits maps our suits onto the reference evaluator's 0-3 numbering.
var referenceSuits = map[cards.Suit]poker.Suit{
	cards.Clubs:    poker.Suit(0),
	cards.Diamonds: poker.Suit(1),
	cards.Hearts:   poker.Suit(2),
	cards.Spades:   poker.Suit(3),
}

// referenceScore evaluates five cards with github.com/paulhankin/poker, where a
// higher score is a stronger hand.
func referenceScore(t *testing.T, stack cards.Stack) int16 {
	t.Helper()

	var five [5]poker.Card
	for i, c := range stack {
		rank := c.Rank()
		if rank == 14 {
			rank = 1 // the reference evaluator numbers the ace 1
		}
		card, err := poker.MakeCard(referenceSuits[c.Suit], poker.Rank(rank))
		require.NoError(t, err)
		five[i] = card
	}
	return poker.Eval5(&five)
}

func sign(n int) int {
	return compareInt(n, 0)
}

func randomHands(r *rand.Rand, n int) []*Hand {
	out := make([]*Hand, n)
	for i := range out {
		deck := cards.ShuffledDeck(r)
		dealt, _ := deck.DealCards(HandSize)
		out[i] = New(dealt...)
	}
	return out
}

func TestCompare_AgreesWithReferenceEvaluator(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	hs := randomHands(r, 400)

	for i := 0; i+1 < len(hs); i += 2 {
		a, b := hs[i], hs[i+1]

		got, err := a.Compare(b)
		require.NoError(t, err)

		want := sign(int(referenceScore(t, a.Cards())) - int(referenceScore(t, b.Cards())))
		require.Equal(t, want, got, "%s vs %s", a, b)
	}
}

func TestCompare_AgreesWithReferenceOnCategories(t *testing.T) {
	// One hand per category, weakest first.
	ladder := []string{
		"2h 5d 9c Js Kh",
		"5h Jd Ah 7s 7h",
		"5h 5d Ah 7s 7h",
		"5h 5d 5c 8s 7h",
		"Ah 2s 5d 3c 4h",
		"5s Js 8s 7s 2s",
		"5h 5s 5c 8d 8h",
		"5h 5s 5c 5d Qh",
		"Jh Kh 10h Ah Qh",
	}

	for i := 1; i < len(ladder); i++ {
		lower, higher := hand(ladder[i-1]), hand(ladder[i])

		got, err := higher.Compare(lower)
		require.NoError(t, err)
		require.Equal(t, 1, got, "%s should beat %s", higher, lower)
		require.Greater(t, referenceScore(t, higher.Cards()), referenceScore(t, lower.Cards()))
	}
}

func TestCompare_Transitive(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	hs := randomHands(r, 30)

	cmp := func(a, b *Hand) int {
		got, err := a.Compare(b)
		require.NoError(t, err)
		return got
	}

	for _, a := range hs {
		for _, b := range hs {
			require.Equal(t, -cmp(b, a), cmp(a, b), "antisymmetry %s / %s", a, b)
			for _, c := range hs {
				if cmp(a, b) < 0 && cmp(b, c) < 0 {
					require.Equal(t, -1, cmp(a, c), "%s < %s < %s", a, b, c)
				}
			}
		}
	}
}

func TestHand_ConcurrentClassifyAndCanonicalize(t *testing.T) {
	h := hand("5h 7d Ah 5s 7h")
	want, err := h.Classify()
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%4 == 0 {
				_ = h.Canonicalize()
				return
			}
			got, err := h.Classify()
			if err != nil || got.Category != want.Category {
				t.Errorf("concurrent classify: got %v, %v", got.Category, err)
			}
		}(i)
	}
	wg.Wait()
}
