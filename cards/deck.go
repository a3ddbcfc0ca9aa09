package cards

import (
	"math/rand"
	"time"
)

// NewDeck creates a standard deck of 52 cards, ordered by suit then face
func NewDeck() Stack {
	deck := make(Stack, 0, len(suits)*len(faces))
	for _, suit := range suits {
		for _, face := range faces {
			deck.AddCard(Card{Suit: suit, Face: face})
		}
	}
	return deck
}

// Shuffle permutes the stack in place. A nil source is seeded from the clock.
func (s Stack) Shuffle(r *rand.Rand) {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	r.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}

// ShuffledDeck returns a fresh deck shuffled with r.
func ShuffledDeck(r *rand.Rand) Stack {
	deck := NewDeck()
	deck.Shuffle(r)
	return deck
}
