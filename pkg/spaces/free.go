package spaces

import (
	"github.com/fadedpez/trainsolitaire/internal/types"
	"github.com/fadedpez/trainsolitaire/pkg/entities"
)

// FreeSpace holds at most one single card
type FreeSpace struct {
	cardList
}

// NewFreeSpace creates an empty free space
func NewFreeSpace(index int, rules MoveabilityProvider) *FreeSpace {
	return &FreeSpace{cardList: newCardList(KindFree, index, rules)}
}

func (f *FreeSpace) accept(card *entities.Card) error {
	if card == nil {
		return types.NewGameError(types.ErrInvalidArgument, "card is nil")
	}
	if len(f.cards) > 0 {
		return types.Errorf(types.ErrSpaceOccupied, "%s already holds %s", f, f.cards[0])
	}
	if card.NextCard() != nil {
		return types.Errorf(types.ErrInvalidMove, "%s heads a train; %s takes single cards", card, f)
	}
	return nil
}

// AddCard places a single card in the empty space. A rejected card is left untouched.
func (f *FreeSpace) AddCard(card *entities.Card) error {
	if err := f.accept(card); err != nil {
		return err
	}
	if err := f.checkUnheld(f, card); err != nil {
		return err
	}

	card.SetPrevCard(nil)
	card.SetParentDropSpace(f)
	f.cards = append(f.cards, card)

	f.SetTrainMoveability(f.numMoveableCards())
	return nil
}

// RemoveCard empties the space if it holds card
func (f *FreeSpace) RemoveCard(card *entities.Card) error {
	if card == nil || f.indexOf(card) < 0 {
		return types.Errorf(types.ErrCardNotFound, "%s is not in %s", card, f)
	}

	card.SetParentDropSpace(nil)
	f.cards = f.cards[:0]
	return nil
}

// CanMoveToDropSpace is true when the space is empty and card is a single card
func (f *FreeSpace) CanMoveToDropSpace(card *entities.Card) bool {
	return f.accept(card) == nil
}

// MoveCardToDropSpace detaches card from its space and parks it here
func (f *FreeSpace) MoveCardToDropSpace(card *entities.Card) error {
	return moveInto(card, f.accept, f.AddCard)
}

// SetTrainMoveability makes the lone card moveable
func (f *FreeSpace) SetTrainMoveability(numMoveableCards int) {
	for _, card := range f.cards {
		card.SetMoveable(true)
	}
}
