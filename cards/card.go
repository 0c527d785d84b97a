// Package cards models a French-suited deck whose shuffles follow the Fisher-Yates
// contract of rngenie.Shuffle and rngenie.ShuffleFrom.
package cards

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	}
	return "?"
}

type Rank uint8

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	return strconv.Itoa(int(r))
}

var ErrInvalidJoker = errors.New("joker id must be >= 1")

// Card is either a standard card (suit and rank) or a joker with an id >= 1.
// Two jokers with different ids are different cards, so a 54-card deck holds unique values.
// Card is comparable and can be used directly as a map key; Equal and Hash express the
// same identity for containers that need an explicit pair.
type Card struct {
	suit    Suit
	rank    Rank
	jokerID uint8 // 0 for standard cards
}

func NewCard(suit Suit, rank Rank) Card {
	return Card{suit: suit, rank: rank}
}

func NewJoker(id uint8) (Card, error) {
	if id == 0 {
		return Card{}, fmt.Errorf("joker %d: %w", id, ErrInvalidJoker)
	}
	return Card{jokerID: id}, nil
}

func (c Card) IsJoker() bool { return c.jokerID != 0 }

// JokerID is 1.. for jokers and 0 for standard cards.
func (c Card) JokerID() uint8 { return c.jokerID }

// Suit is meaningless for jokers.
func (c Card) Suit() Suit { return c.suit }

// Rank is meaningless for jokers.
func (c Card) Rank() Rank { return c.rank }

// Equal compares standard cards by suit and rank and jokers by id.
// A joker never equals a standard card.
func (c Card) Equal(other Card) bool {
	if c.IsJoker() {
		return other.IsJoker() && c.jokerID == other.jokerID
	}
	return !other.IsJoker() && c.suit == other.suit && c.rank == other.rank
}

// Hash is consistent with Equal. Jokers hash in their own namespace (bit 16 set)
// so they never collide with a standard card.
func (c Card) Hash() uint64 {
	if c.IsJoker() {
		return 1<<16 | uint64(c.jokerID)
	}
	return uint64(c.suit)<<8 | uint64(c.rank)
}

func (c Card) String() string {
	if c.IsJoker() {
		return fmt.Sprintf("Joker (★%d)", c.jokerID)
	}
	return c.rank.String() + c.suit.String()
}

// Format renders cards separated by single spaces, e.g. "A♠ 10♥ Joker (★1)".
func Format(cards []Card) string {
	return strings.Join(lo.Map(cards, func(c Card, _ int) string {
		return c.String()
	}), " ")
}
