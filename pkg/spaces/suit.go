package spaces

import (
	"github.com/fadedpez/trainsolitaire/internal/types"
	"github.com/fadedpez/trainsolitaire/pkg/entities"
)

// SuitSpace is a foundation, built up one card at a time from the Ace.
// Its cards are not linked to each other; the order lives in the list.
type SuitSpace struct {
	cardList
}

// NewSuitSpace creates an empty suit space
func NewSuitSpace(index int, rules MoveabilityProvider) *SuitSpace {
	return &SuitSpace{cardList: newCardList(KindSuit, index, rules)}
}

// Suit returns the suit being built, or "" while the space is empty
func (s *SuitSpace) Suit() entities.Suit {
	if len(s.cards) == 0 {
		return ""
	}
	return s.cards[0].Suit()
}

// IsComplete reports whether the space holds Ace through King
func (s *SuitSpace) IsComplete() bool {
	return len(s.cards) == entities.MaxValue
}

func (s *SuitSpace) accept(card *entities.Card) error {
	if card == nil {
		return types.NewGameError(types.ErrInvalidArgument, "card is nil")
	}
	if card.NextCard() != nil {
		return types.Errorf(types.ErrInvalidMove, "%s heads a train; %s takes single cards", card, s)
	}
	return nil
}

// AddCard puts card on top of the foundation. Order is not checked here.
func (s *SuitSpace) AddCard(card *entities.Card) error {
	if err := s.accept(card); err != nil {
		return err
	}
	if err := s.checkUnheld(s, card); err != nil {
		return err
	}

	card.SetPrevCard(nil)
	card.SetParentDropSpace(s)
	s.cards = append(s.cards, card)

	s.SetTrainMoveability(s.numMoveableCards())
	return nil
}

// RemoveCard takes the top card off the foundation
func (s *SuitSpace) RemoveCard(card *entities.Card) error {
	i := s.indexOf(card)
	if i < 0 {
		return types.Errorf(types.ErrCardNotFound, "%s is not in %s", card, s)
	}
	if i != len(s.cards)-1 {
		return types.Errorf(types.ErrInvalidMove, "%s is buried in %s", card, s)
	}

	card.SetParentDropSpace(nil)
	s.cards = s.cards[:i]

	s.SetTrainMoveability(s.numMoveableCards())
	return nil
}

// CanMoveToDropSpace accepts an Ace on an empty space, otherwise the next
// card of the same suit. Trains are never accepted.
func (s *SuitSpace) CanMoveToDropSpace(card *entities.Card) bool {
	if s.accept(card) != nil {
		return false
	}

	tail := s.GetLastCard()
	if tail == nil {
		return card.Value() == entities.Ace
	}
	return card.IsPrevCardInSuitOrder(tail)
}

// MoveCardToDropSpace detaches card from its space and puts it on the foundation
func (s *SuitSpace) MoveCardToDropSpace(card *entities.Card) error {
	return moveInto(card, s.accept, s.AddCard)
}

// SetTrainMoveability makes only the top card moveable
func (s *SuitSpace) SetTrainMoveability(numMoveableCards int) {
	last := len(s.cards) - 1
	for i, card := range s.cards {
		card.SetMoveable(i == last)
	}
}
