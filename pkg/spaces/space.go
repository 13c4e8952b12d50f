// Package spaces holds the drop spaces a card or train can be placed into:
// tableau play spaces, single-card free spaces and suit foundations.
//
// Every space answers the same two questions through DropSpace: may this
// card come here (CanMoveToDropSpace), and which of my cards may the player
// pick up (SetTrainMoveability). Legality is never checked by AddCard or
// MoveCardToDropSpace; callers arbitrate through CanMoveToDropSpace first.
//
// Spaces are not safe for concurrent use. The game that owns them
// serializes every mutation.
package spaces

import (
	"fmt"

	"github.com/fadedpez/trainsolitaire/internal/types"
	"github.com/fadedpez/trainsolitaire/pkg/entities"
	"github.com/google/uuid"
)

//go:generate mockgen -source=$GOFILE -destination=mock/mock.go -package=mock_spaces

// Kind names a drop space variant
type Kind string

const (
	KindPlay Kind = "play"
	KindFree Kind = "free"
	KindSuit Kind = "suit"
)

// DefaultNumMoveableCards is used when a space has no rules attached
const DefaultNumMoveableCards = 5

// MoveabilityProvider supplies the number of trailing cards of a pile that
// may be picked up
type MoveabilityProvider interface {
	GetNumMoveableCards() int
}

// DropSpace is the capability set shared by every space variant
type DropSpace interface {
	// Identity
	ID() uuid.UUID
	Kind() Kind
	Index() int

	// AddCard attaches the card, and for train-accepting spaces its whole train
	AddCard(card *entities.Card) error
	// RemoveCard detaches the card and everything chained after it
	RemoveCard(card *entities.Card) error
	// GetLastCard returns the tail card, or nil when empty
	GetLastCard() *entities.Card
	GetCards() []*entities.Card
	GetNumCards() int
	ClearCards()

	// CanMoveToDropSpace reports whether moving card here is legal. It never mutates.
	CanMoveToDropSpace(card *entities.Card) bool
	// MoveCardToDropSpace detaches card from its current space and adds it here
	MoveCardToDropSpace(card *entities.Card) error
	// SetTrainMoveability recomputes which cards may be picked up
	SetTrainMoveability(numMoveableCards int)
}

// cardList is the ordered storage shared by the space variants
type cardList struct {
	id    uuid.UUID
	kind  Kind
	index int
	rules MoveabilityProvider
	cards []*entities.Card
}

func newCardList(kind Kind, index int, rules MoveabilityProvider) cardList {
	return cardList{
		id:    uuid.New(),
		kind:  kind,
		index: index,
		rules: rules,
		cards: make([]*entities.Card, 0),
	}
}

// ID returns the stable space ID
func (l *cardList) ID() uuid.UUID {
	return l.id
}

// Kind returns the space variant
func (l *cardList) Kind() Kind {
	return l.kind
}

// Index returns the position of the space among spaces of its kind
func (l *cardList) Index() int {
	return l.index
}

func (l *cardList) numMoveableCards() int {
	if l.rules == nil {
		return DefaultNumMoveableCards
	}
	return l.rules.GetNumMoveableCards()
}

// GetLastCard returns the tail card, or nil when empty
func (l *cardList) GetLastCard() *entities.Card {
	if len(l.cards) > 0 {
		return l.cards[len(l.cards)-1]
	}
	return nil
}

// GetCards returns a copy of the cards, head first
func (l *cardList) GetCards() []*entities.Card {
	cards := make([]*entities.Card, len(l.cards))
	copy(cards, l.cards)
	return cards
}

// GetNumCards returns how many cards the space holds
func (l *cardList) GetNumCards() int {
	return len(l.cards)
}

// ClearCards empties the space and resets every card it held
func (l *cardList) ClearCards() {
	for _, card := range l.cards {
		card.Reset()
	}
	l.cards = l.cards[:0]
}

func (l *cardList) indexOf(card *entities.Card) int {
	for i, c := range l.cards {
		if c == card {
			return i
		}
	}
	return -1
}

func (l *cardList) String() string {
	return fmt.Sprintf("%s%d", l.kind, l.index+1)
}

// checkUnheld rejects cards still sitting in a space, this one included
func (l *cardList) checkUnheld(space entities.Container, card *entities.Card) error {
	if l.indexOf(card) >= 0 {
		return types.Errorf(types.ErrInvalidState, "%s is already in %s", card, l)
	}
	if parent := card.ParentDropSpace(); parent != nil && parent != space {
		return types.Errorf(types.ErrInvalidState, "%s is still held by another space", card)
	}
	return nil
}

// moveInto detaches card from its parent and hands it to add. accept runs
// first so a rejected card is never detached.
func moveInto(card *entities.Card, accept func(*entities.Card) error, add func(*entities.Card) error) error {
	if err := accept(card); err != nil {
		return err
	}
	if err := card.RemoveFromParentDropSpace(); err != nil {
		return fmt.Errorf("detaching %s: %w", card, err)
	}
	return add(card)
}
