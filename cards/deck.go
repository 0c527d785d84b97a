package cards

import (
	"errors"
	"fmt"

	"github.com/TomTonic/rngenie"
)

var (
	ErrDeckEmpty      = errors.New("deck is empty")
	ErrNotEnoughCards = errors.New("not enough cards left")
	ErrNegativeCount  = errors.New("number of cards must be non-negative")
)

// Deck is a 52-card deck, optionally with two distinct jokers, and a draw cursor.
// Cards before the cursor have been drawn; the top of the deck is the card at the cursor.
type Deck struct {
	original []Card
	cards    []Card
	next     int // draw cursor
}

// NewDeck builds a deck in canonical order: suits Clubs..Spades, ranks Ace..King,
// then jokers 1 and 2 if requested.
func NewDeck(includeJokers bool) *Deck {
	size := 52
	if includeJokers {
		size = 54
	}
	original := make([]Card, 0, size)
	for s := Clubs; s <= Spades; s++ {
		for r := Ace; r <= King; r++ {
			original = append(original, NewCard(s, r))
		}
	}
	if includeJokers {
		original = append(original, Card{jokerID: 1}, Card{jokerID: 2})
	}
	d := &Deck{original: original, cards: make([]Card, size)}
	d.Reset()
	return d
}

// Reset restores the canonical order and puts every card back.
func (d *Deck) Reset() {
	copy(d.cards, d.original)
	d.next = 0
}

// Capacity is 52 or 54.
func (d *Deck) Capacity() int { return len(d.cards) }

// Len is the number of cards left to draw.
func (d *Deck) Len() int { return len(d.cards) - d.next }

// Remaining returns a copy of the undrawn cards, top card first.
func (d *Deck) Remaining() []Card {
	out := make([]Card, d.Len())
	copy(out, d.cards[d.next:])
	return out
}

// Shuffle shuffles the whole deck, drawn cards included, and moves the cursor back to the top.
func (d *Deck) Shuffle(rng rngenie.Source) error {
	if err := rngenie.Shuffle(rng, d.cards); err != nil {
		return fmt.Errorf("shuffle deck: %w", err)
	}
	d.next = 0
	return nil
}

// ShuffleRemaining shuffles only the undrawn cards. Drawn cards stay drawn.
func (d *Deck) ShuffleRemaining(rng rngenie.Source) error {
	if err := rngenie.ShuffleFrom(rng, d.cards, d.next); err != nil {
		return fmt.Errorf("shuffle remaining cards: %w", err)
	}
	return nil
}

// Peek returns the top card without drawing it.
func (d *Deck) Peek() (Card, error) {
	if d.Len() == 0 {
		return Card{}, ErrDeckEmpty
	}
	return d.cards[d.next], nil
}

func (d *Deck) Draw() (Card, error) {
	if d.Len() == 0 {
		return Card{}, ErrDeckEmpty
	}
	c := d.cards[d.next]
	d.next++
	return c, nil
}

// DrawN draws n cards from the top. Nothing is drawn when fewer than n cards remain.
func (d *Deck) DrawN(n int) ([]Card, error) {
	if n < 0 {
		return nil, fmt.Errorf("draw %d: %w", n, ErrNegativeCount)
	}
	if n > d.Len() {
		return nil, fmt.Errorf("draw %d of %d: %w", n, d.Len(), ErrNotEnoughCards)
	}
	out := make([]Card, n)
	copy(out, d.cards[d.next:d.next+n])
	d.next += n
	return out, nil
}
