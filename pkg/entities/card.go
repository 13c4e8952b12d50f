package entities

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// Suit represents a card suit
type Suit string

const (
	Clubs    Suit = "CLUBS"
	Diamonds Suit = "DIAMONDS"
	Hearts   Suit = "HEARTS"
	Spades   Suit = "SPADES"
)

// Suits lists the suits in deck construction order
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// Color represents the color class of a suit
type Color string

const (
	Black Color = "BLACK"
	Red   Color = "RED"
)

// Card values run from Ace (1) to King (13)
const (
	Ace      = 1
	Jack     = 11
	Queen    = 12
	King     = 13
	MinValue = Ace
	MaxValue = King
)

// Color returns the color class of the suit
func (s Suit) Color() Color {
	if s == Clubs || s == Spades {
		return Black
	}
	return Red
}

// Symbol returns the single-rune symbol for the suit
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Container is anything a card can sit in. Drop spaces satisfy it.
type Container interface {
	RemoveCard(card *Card) error
}

// Card is a playing card that can be linked into a train of cards
type Card struct {
	ID uuid.UUID

	value int
	suit  Suit
	color Color

	moveable bool

	// Train of cards
	next         *Card
	prev         *Card
	numNextCards int

	parent Container
}

// NewCard creates a card with a fresh ID
func NewCard(value int, suit Suit) *Card {
	c := &Card{ID: uuid.New()}
	c.Initialize(value, suit)
	return c
}

// Initialize sets the value and suit, derives the color and resets the train state
func (c *Card) Initialize(value int, suit Suit) {
	c.value = value
	c.suit = suit
	c.color = suit.Color()
	c.Reset()
}

// Reset clears the train links, the moveability flag and the parent space
func (c *Card) Reset() {
	c.next = nil
	c.prev = nil
	c.moveable = false
	c.numNextCards = 0
	c.parent = nil
}

// Value returns the rank, 1 (Ace) to 13 (King)
func (c *Card) Value() int {
	return c.value
}

// Suit returns the card suit
func (c *Card) Suit() Suit {
	return c.suit
}

// Color returns the card color
func (c *Card) Color() Color {
	return c.color
}

// IsMoveable reports whether the player may currently pick the card up
func (c *Card) IsMoveable() bool {
	return c.moveable
}

// SetMoveable sets the cached moveability flag
func (c *Card) SetMoveable(moveable bool) {
	c.moveable = moveable
}

// NumNextCards returns how many cards follow this one in an ordered run
func (c *Card) NumNextCards() int {
	return c.numNextCards
}

// NextCard returns the card below this one in its train
func (c *Card) NextCard() *Card {
	return c.next
}

// PrevCard returns the card above this one in its train
func (c *Card) PrevCard() *Card {
	return c.prev
}

// SetNextPrevCard links prev and next in both directions. Either may be nil.
func SetNextPrevCard(prev, next *Card) {
	if prev != nil {
		prev.SetNextCard(next)
	}
	if next != nil {
		next.SetPrevCard(prev)
	}
}

// SetNextCard rewires the forward link and repairs next's reverse link.
// The reverse link is repaired even when the pair is out of order.
func (c *Card) SetNextCard(next *Card) {
	if c.next != nil && c.next != next && c.next.prev == c {
		c.next.prev = nil
	}
	c.next = next

	if next == nil {
		c.numNextCards = 0
		c.refreshPrevCounts()
		return
	}

	// next can only hang below one card
	if next.prev != nil && next.prev != c && next.prev.next == next {
		old := next.prev
		old.next = nil
		old.numNextCards = 0
		old.refreshPrevCounts()
	}

	if c.IsNextCardInOrder(next) {
		c.numNextCards = next.numNextCards + 1
	} else {
		c.numNextCards = 0
	}
	next.prev = c
	c.refreshPrevCounts()
}

// refreshPrevCounts pushes a changed run length up through the ordered cards above c
func (c *Card) refreshPrevCounts() {
	cur := c
	for p := cur.prev; p != nil && p.next == cur; p = cur.prev {
		if !p.IsNextCardInOrder(cur) {
			return
		}
		p.numNextCards = cur.numNextCards + 1
		cur = p
	}
}

// SetPrevCard sets the reverse link only
func (c *Card) SetPrevCard(prev *Card) {
	c.prev = prev
}

// IsNextCardInOrder reports whether card may sit directly below c:
// one value lower and the other color. A nil card is always in order.
func (c *Card) IsNextCardInOrder(card *Card) bool {
	if card == nil {
		return true
	}
	return c.color != card.color && c.value == card.value+1
}

// NextCardInOrder checks c against its current next card. False when there is none.
func (c *Card) NextCardInOrder() bool {
	if c.next == nil {
		return false
	}
	return c.IsNextCardInOrder(c.next)
}

// IsPrevCardInOrder reports whether card may sit directly above c:
// one value higher and the other color. A nil card is always in order.
func (c *Card) IsPrevCardInOrder(card *Card) bool {
	if card == nil {
		return true
	}
	return c.color != card.color && c.value == card.value-1
}

// PrevCardInOrder checks c against its current prev card. False when there is none.
func (c *Card) PrevCardInOrder() bool {
	if c.prev == nil {
		return false
	}
	return c.IsPrevCardInOrder(c.prev)
}

// IsPrevCardInSuitOrder reports whether card may sit directly under c on a
// foundation: same suit and one value lower.
func (c *Card) IsPrevCardInSuitOrder(card *Card) bool {
	if card == nil {
		return false
	}
	return c.suit == card.suit && card.value == c.value-1
}

// SetPrevCardsImmovable marks every card above c as not moveable
func (c *Card) SetPrevCardsImmovable() {
	for p := c.prev; p != nil; p = p.prev {
		p.moveable = false
	}
}

// TrainLength returns the number of cards from c to the end of its train
func (c *Card) TrainLength() int {
	n := 0
	for cur := c; cur != nil; cur = cur.next {
		n++
	}
	return n
}

// Train returns c and every card linked below it
func (c *Card) Train() []*Card {
	train := make([]*Card, 0, c.TrainLength())
	for cur := c; cur != nil; cur = cur.next {
		train = append(train, cur)
	}
	return train
}

// ParentDropSpace returns the space currently holding the card, if any
func (c *Card) ParentDropSpace() Container {
	return c.parent
}

// SetParentDropSpace records the space holding the card
func (c *Card) SetParentDropSpace(parent Container) {
	c.parent = parent
}

// RemoveFromParentDropSpace detaches the card and its train from the space holding it
func (c *Card) RemoveFromParentDropSpace() error {
	if c.parent == nil {
		return nil
	}
	return c.parent.RemoveCard(c)
}

// RankName returns the short rank label: A, 2..10, J, Q, K
func RankName(value int) string {
	switch value {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return strconv.Itoa(value)
	}
}

// String returns the rank and suit symbol, e.g. "10♦"
func (c *Card) String() string {
	return fmt.Sprintf("%s%s", RankName(c.value), c.suit.Symbol())
}
