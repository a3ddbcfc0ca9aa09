package hands

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Result is one hand's standing after a showdown
type Result struct {
	ID         string
	Evaluation Evaluation
	IsWinner   bool
	Place      int // 0 for first place, 1 for second place, etc.
}

// RankHands classifies every hand and orders them best first.
// Tied hands share a place and the next distinct hand skips past them,
// so three hands where the top two tie get places 0, 0, 2.
// Every hand tied for place 0 is a winner. Hands that tie are listed by ID.
func RankHands(hands map[string]Classifier) ([]Result, error) {
	if len(hands) == 0 {
		return nil, nil
	}

	ids := maps.Keys(hands)
	slices.Sort(ids)

	results := make([]Result, 0, len(ids))
	for _, id := range ids {
		evaluation, err := hands[id].Classify()
		if err != nil {
			return nil, fmt.Errorf("hand %s: %w", id, err)
		}
		results = append(results, Result{ID: id, Evaluation: evaluation})
	}

	// Sort best first; the stable sort keeps ID order among ties
	slices.SortStableFunc(results, func(a, b Result) bool {
		return compareEvaluations(a.Evaluation, b.Evaluation) > 0
	})

	place := 0
	for i := range results {
		if i > 0 && compareEvaluations(results[i].Evaluation, results[i-1].Evaluation) != 0 {
			place = i
		}
		results[i].Place = place
		results[i].IsWinner = place == 0
	}

	return results, nil
}

// Winners returns the results that share first place.
func Winners(results []Result) []Result {
	var winners []Result
	for _, r := range results {
		if r.IsWinner {
			winners = append(winners, r)
		}
	}
	return winners
}
