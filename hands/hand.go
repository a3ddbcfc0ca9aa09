package hands

import (
	"fmt"
	"sync"

	"github.com/lazharichir/fivecard/cards"
)

// Hand holds the cards dealt to a single player. It is safe for concurrent use.
type Hand struct {
	cards cards.Stack
	mutex sync.RWMutex
}

// New creates a hand holding the given cards in order.
func New(cs ...cards.Card) *Hand {
	h := &Hand{cards: make(cards.Stack, 0, HandSize)}
	h.cards = append(h.cards, cs...)
	return h
}

// AddCard appends a card. The hand size is only checked when classifying.
func (h *Hand) AddCard(card cards.Card) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.cards = append(h.cards, card)
}

// DiscardCards removes the cards at the given positions. Positions refer to the
// order before the call, so discarding 0, 1 and 3 removes those three original
// cards. If any index is out of range nothing is removed.
func (h *Hand) DiscardCards(indices ...int) error {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	discard := make(map[int]bool, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(h.cards) {
			return fmt.Errorf("%w: discard index %d, hand has %d cards", ErrIndexOutOfRange, idx, len(h.cards))
		}
		discard[idx] = true
	}

	kept := make(cards.Stack, 0, len(h.cards)-len(discard))
	for i, c := range h.cards {
		if !discard[i] {
			kept = append(kept, c)
		}
	}
	h.cards = kept

	return nil
}

// Len returns the number of cards held
func (h *Hand) Len() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.cards)
}

// Cards returns a copy of the held cards in their current order
func (h *Hand) Cards() cards.Stack {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	out := make(cards.Stack, len(h.cards))
	copy(out, h.cards)
	return out
}

// Ranks returns each card's rank in the hand's current order, unsorted.
func (h *Hand) Ranks() []int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return h.cards.Ranks()
}

// Suits returns each card's suit in the hand's current order.
func (h *Hand) Suits() []cards.Suit {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return h.cards.Suits()
}

// Classify determines the hand's category and tie-breaker. The stored card
// order is left untouched; Evaluation.Cards carries the canonical order.
func (h *Hand) Classify() (Evaluation, error) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	if len(h.cards) != HandSize {
		return Evaluation{}, fmt.Errorf("%w: classify needs %d cards, hand has %d", ErrInvalidOperation, HandSize, len(h.cards))
	}

	return evaluate(h.cards), nil
}

// Canonicalize reorders the held cards by rank frequency, then rank, both descending.
func (h *Hand) Canonicalize() error {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if len(h.cards) != HandSize {
		return fmt.Errorf("%w: canonicalize needs %d cards, hand has %d", ErrInvalidOperation, HandSize, len(h.cards))
	}

	h.cards = canonicalOrder(h.cards)
	return nil
}

// Compare returns -1, 0 or 1 as h loses to, ties or beats other.
func (h *Hand) Compare(other Classifier) (int, error) {
	return Compare(h, other)
}

func (h *Hand) String() string {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return h.cards.String()
}
