package hands

import (
	"golang.org/x/exp/slices"

	"github.com/lazharichir/fivecard/cards"
)

// HandSize is the number of cards a hand must hold to be classified.
const HandSize = 5

// aceLowStraight is the canonical rank order of A-2-3-4-5 before the ace is counted low.
var aceLowStraight = []int{14, 5, 4, 3, 2}

// Evaluation represents the classification of a five-card hand
type Evaluation struct {
	Category   Category    // The hand class (pair, flush, etc.)
	TieBreaker []int       // Ranks in canonical order, compared lexicographically within a category
	Cards      cards.Stack // The hand in canonical order
}

// Classifier is anything that can produce an Evaluation.
type Classifier interface {
	Classify() (Evaluation, error)
}

// rankCounts counts how many cards share each rank
func rankCounts(hand cards.Stack) map[int]int {
	counts := make(map[int]int, len(hand))
	for _, c := range hand {
		counts[c.Rank()]++
	}
	return counts
}

// canonicalOrder sorts a copy of the hand by how often each rank occurs,
// most frequent first, then by rank, highest first.
//
// e.g. 9 7 4 4 9 -> 9 9 4 4 7
//
// The positional checks in evaluate depend on exactly this key.
func canonicalOrder(hand cards.Stack) cards.Stack {
	counts := rankCounts(hand)

	sorted := make(cards.Stack, len(hand))
	copy(sorted, hand)

	slices.SortStableFunc(sorted, func(a, b cards.Card) bool {
		if fa, fb := counts[a.Rank()], counts[b.Rank()]; fa != fb {
			return fa > fb
		}
		return a.Rank() > b.Rank()
	})

	return sorted
}

// evaluate classifies a five-card hand. The caller guarantees len(hand) == HandSize.
func evaluate(hand cards.Stack) Evaluation {
	sorted := canonicalOrder(hand)
	ranks := sorted.Ranks()
	counts := rankCounts(sorted)

	tieBreaker, straight := straightTieBreaker(ranks, counts)
	flush := isFlush(sorted)

	var category Category
	switch {
	case straight && flush:
		category = StraightFlush
	case counts[ranks[0]] == 4:
		category = FourOfAKind
	case counts[ranks[0]] == 3 && counts[ranks[3]] == 2:
		category = FullHouse
	case flush:
		category = Flush
	case straight:
		category = Straight
	case counts[ranks[0]] == 3 && counts[ranks[3]] == 1:
		category = ThreeOfAKind
	case counts[ranks[0]] == 2 && counts[ranks[2]] == 2:
		category = TwoPair
	case counts[ranks[0]] == 2 && counts[ranks[2]] == 1:
		category = Pair
	default:
		category = HighCard
	}

	return Evaluation{
		Category:   category,
		TieBreaker: tieBreaker,
		Cards:      sorted,
	}
}

// straightTieBreaker reports whether the canonical ranks form a straight and
// returns the tie-breaker to use. The wheel (A-2-3-4-5) plays the ace as 1.
func straightTieBreaker(ranks []int, counts map[int]int) ([]int, bool) {
	if slices.Equal(ranks, aceLowStraight) {
		return []int{5, 4, 3, 2, 1}, true
	}

	tieBreaker := slices.Clone(ranks)
	if len(counts) != HandSize {
		return tieBreaker, false
	}
	return tieBreaker, ranks[0]-ranks[len(ranks)-1] == HandSize-1
}

// isFlush checks if all cards are of the same suit
func isFlush(hand cards.Stack) bool {
	if len(hand) == 0 {
		return false
	}

	suit := hand[0].Suit
	for _, card := range hand[1:] {
		if card.Suit != suit {
			return false
		}
	}

	return true
}

// compareEvaluations returns -1 if a is worse than b, 0 if they tie and 1 if a is better.
func compareEvaluations(a, b Evaluation) int {
	if a.Category != b.Category {
		return compareInt(int(a.Category), int(b.Category))
	}
	return slices.Compare(a.TieBreaker, b.TieBreaker)
}

// compareInt is a helper function to compare two integers
func compareInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// Compare orders two classifiable hands: -1 if a loses to b, 0 on a tie, 1 if a wins.
func Compare(a, b Classifier) (int, error) {
	evalA, err := a.Classify()
	if err != nil {
		return 0, err
	}
	evalB, err := b.Classify()
	if err != nil {
		return 0, err
	}
	return compareEvaluations(evalA, evalB), nil
}
