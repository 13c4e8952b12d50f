package spaces

import (
	"github.com/fadedpez/trainsolitaire/internal/types"
	"github.com/fadedpez/trainsolitaire/pkg/entities"
)

// PlaySpace is a tableau pile. It accepts whole trains and stores them as one
// linked run of cards, head first.
type PlaySpace struct {
	cardList
}

// NewPlaySpace creates an empty play space
func NewPlaySpace(index int, rules MoveabilityProvider) *PlaySpace {
	return &PlaySpace{cardList: newCardList(KindPlay, index, rules)}
}

func (p *PlaySpace) accept(card *entities.Card) error {
	if card == nil {
		return types.NewGameError(types.ErrInvalidArgument, "card is nil")
	}
	return nil
}

// AddCard links card under the current tail and takes its whole train
func (p *PlaySpace) AddCard(card *entities.Card) error {
	if err := p.accept(card); err != nil {
		return err
	}
	if err := p.checkUnheld(p, card); err != nil {
		return err
	}

	tail := p.GetLastCard()
	entities.SetNextPrevCard(tail, card)

	for c := card; c != nil; c = c.NextCard() {
		p.cards = append(p.cards, c)
		c.SetParentDropSpace(p)
	}

	// A broken junction quarantines everything above it
	if tail != nil && !tail.IsNextCardInOrder(card) {
		card.SetPrevCardsImmovable()
	}

	p.SetTrainMoveability(p.numMoveableCards())
	return nil
}

// RemoveCard detaches card and every card after it, then recomputes moveability
func (p *PlaySpace) RemoveCard(card *entities.Card) error {
	i := p.indexOf(card)
	if i < 0 {
		return types.Errorf(types.ErrCardNotFound, "%s is not in %s", card, p)
	}

	for _, c := range p.cards[i:] {
		c.SetParentDropSpace(nil)
	}
	p.cards = p.cards[:i]

	if tail := p.GetLastCard(); tail != nil {
		tail.SetNextCard(nil)
	}
	card.SetPrevCard(nil)

	p.SetTrainMoveability(p.numMoveableCards())
	return nil
}

// CanMoveToDropSpace is true when the space is empty or card continues the
// descending alternating-color run from the tail. Only the junction is
// checked; the incoming train was validated when it was assembled.
func (p *PlaySpace) CanMoveToDropSpace(card *entities.Card) bool {
	if card == nil {
		return false
	}
	tail := p.GetLastCard()
	if tail == nil {
		return true
	}
	return tail.IsNextCardInOrder(card)
}

// MoveCardToDropSpace detaches card's train from its space and adds it here
func (p *PlaySpace) MoveCardToDropSpace(card *entities.Card) error {
	return moveInto(card, p.accept, p.AddCard)
}

// SetTrainMoveability walks up from the tail while cards stay in order and
// marks at most numMoveableCards of them moveable. Every other card in the
// pile is marked not moveable.
func (p *PlaySpace) SetTrainMoveability(numMoveableCards int) {
	if numMoveableCards < 1 {
		numMoveableCards = 1
	}

	marked := 0
	inRun := true
	for i := len(p.cards) - 1; i >= 0; i-- {
		card := p.cards[i]
		if inRun && i < len(p.cards)-1 {
			below := p.cards[i+1]
			inRun = below.PrevCard() == card && below.IsPrevCardInOrder(card)
		}

		moveable := inRun && marked < numMoveableCards
		if moveable {
			marked++
		}
		card.SetMoveable(moveable)
	}
}
