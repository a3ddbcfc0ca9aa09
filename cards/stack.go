package cards

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyStack is returned when dealing more cards than a stack holds.
var ErrEmptyStack = errors.New("not enough cards in stack")

// Stack represents multiple cards, top card first
type Stack []Card

// NewStack creates a new stack from the given cards
func NewStack(cards ...Card) Stack {
	return Stack(cards)
}

// ParseStack parses whitespace-separated card shorthand such as "5h 5s 5c 5d Qh".
func ParseStack(s string) (Stack, error) {
	fields := strings.Fields(s)
	stack := make(Stack, 0, len(fields))
	for i, field := range fields {
		card, err := CardFromString(field)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i, err)
		}
		stack = append(stack, card)
	}
	return stack, nil
}

// MustParseStack is like ParseStack but panics on malformed input.
func MustParseStack(s string) Stack {
	stack, err := ParseStack(s)
	if err != nil {
		panic(err)
	}
	return stack
}

// String returns the cards separated by spaces
func (s Stack) String() string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Ranks returns the rank of every card, in stack order.
func (s Stack) Ranks() []int {
	ranks := make([]int, len(s))
	for i, c := range s {
		ranks[i] = c.Rank()
	}
	return ranks
}

// Suits returns the suit of every card, in stack order.
func (s Stack) Suits() []Suit {
	out := make([]Suit, len(s))
	for i, c := range s {
		out[i] = c.Suit
	}
	return out
}

// Contains reports whether the stack holds the given card.
func (s Stack) Contains(card Card) bool {
	for _, c := range s {
		if c.Equals(card) {
			return true
		}
	}
	return false
}

// AddCard adds a card to the bottom of the stack
func (s *Stack) AddCard(card Card) {
	*s = append(*s, card)
}

// AddCards adds cards to the bottom of the stack
func (s *Stack) AddCards(cards ...Card) {
	*s = append(*s, cards...)
}

// DealCard removes and returns the top card
func (s *Stack) DealCard() (Card, error) {
	if len(*s) == 0 {
		return Card{}, ErrEmptyStack
	}
	card := (*s)[0]
	*s = (*s)[1:]
	return card, nil
}

// DealCards removes and returns the top count cards. Nothing is dealt when
// the stack is too short.
func (s *Stack) DealCards(count int) (Stack, error) {
	if count < 0 || count > len(*s) {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrEmptyStack, count, len(*s))
	}
	dealt := make(Stack, count)
	copy(dealt, (*s)[:count])
	*s = (*s)[count:]
	return dealt, nil
}
