package cards

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is returned when a suit or face is outside the standard enumeration.
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit
type Suit string

const (
	Hearts   Suit = "♥"
	Spades   Suit = "♠"
	Clubs    Suit = "♣"
	Diamonds Suit = "♦"
)

// Face represents the printed value of a card
type Face string

const (
	Two   Face = "2"
	Three Face = "3"
	Four  Face = "4"
	Five  Face = "5"
	Six   Face = "6"
	Seven Face = "7"
	Eight Face = "8"
	Nine  Face = "9"
	Ten   Face = "10"
	Jack  Face = "J"
	Queen Face = "Q"
	King  Face = "K"
	Ace   Face = "A"
)

var suits = []Suit{Hearts, Spades, Clubs, Diamonds}

// faces is ordered by rank, lowest first.
var faces = []Face{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// Suits returns the four suits.
func Suits() []Suit {
	out := make([]Suit, len(suits))
	copy(out, suits)
	return out
}

// Faces returns the thirteen faces ordered from deuce to ace.
func Faces() []Face {
	out := make([]Face, len(faces))
	copy(out, faces)
	return out
}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	switch s {
	case Hearts, Spades, Clubs, Diamonds:
		return true
	}
	return false
}

// Rank returns the numeric rank of the face: 2-10 as printed, J=11, Q=12, K=13, A=14.
// It returns 0 for an unknown face.
func (f Face) Rank() int {
	switch f {
	case Two:
		return 2
	case Three:
		return 3
	case Four:
		return 4
	case Five:
		return 5
	case Six:
		return 6
	case Seven:
		return 7
	case Eight:
		return 8
	case Nine:
		return 9
	case Ten:
		return 10
	case Jack:
		return 11
	case Queen:
		return 12
	case King:
		return 13
	case Ace:
		return 14
	}
	return 0
}

// Valid reports whether f is one of the thirteen faces.
func (f Face) Valid() bool {
	return f.Rank() != 0
}

// Card represents a playing card. Cards are values and never change once built.
type Card struct {
	Suit Suit
	Face Face
}

// NewCard builds a card, rejecting suits and faces outside the standard deck.
func NewCard(suit Suit, face Face) (Card, error) {
	if !suit.Valid() {
		return Card{}, fmt.Errorf("%w: unknown suit %q", ErrInvalidCard, string(suit))
	}
	if !face.Valid() {
		return Card{}, fmt.Errorf("%w: unknown face %q", ErrInvalidCard, string(face))
	}
	return Card{Suit: suit, Face: face}, nil
}

// Rank returns the card's rank in [2,14].
func (c Card) Rank() int {
	return c.Face.Rank()
}

// String returns the string representation of a card
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Face, c.Suit)
}

// Equals checks if two cards are equal
func (c Card) Equals(other Card) bool {
	return c.Suit == other.Suit && c.Face == other.Face
}

// CardFromString creates a card from a string representation
// e.g., "10♠" or "10s" or "Ts" -> Card{Suit: Spades, Face: Ten}
func CardFromString(s string) (Card, error) {
	if len(s) < 2 {
		return Card{}, fmt.Errorf("%w: shorthand too short: %q", ErrInvalidCard, s)
	}

	// The suit may be a multi-byte symbol, so split on the last rune.
	runes := []rune(s)
	suitPart := string(runes[len(runes)-1])
	facePart := string(runes[:len(runes)-1])

	var suit Suit
	switch suitPart {
	case "♠", "s", "S":
		suit = Spades
	case "♥", "h", "H":
		suit = Hearts
	case "♦", "d", "D":
		suit = Diamonds
	case "♣", "c", "C":
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("%w: unknown suit %q", ErrInvalidCard, suitPart)
	}

	var face Face
	switch strings.ToUpper(facePart) {
	case "A":
		face = Ace
	case "K":
		face = King
	case "Q":
		face = Queen
	case "J":
		face = Jack
	case "10", "T":
		face = Ten
	case "9":
		face = Nine
	case "8":
		face = Eight
	case "7":
		face = Seven
	case "6":
		face = Six
	case "5":
		face = Five
	case "4":
		face = Four
	case "3":
		face = Three
	case "2":
		face = Two
	default:
		return Card{}, fmt.Errorf("%w: unknown face %q", ErrInvalidCard, facePart)
	}

	return Card{Suit: suit, Face: face}, nil
}
