package spaces

import (
	"testing"

	"github.com/fadedpez/trainsolitaire/internal/types"
	"github.com/fadedpez/trainsolitaire/pkg/entities"
	"github.com/stretchr/testify/suite"
)

type FreeSpaceTestSuite struct {
	suite.Suite
	space *FreeSpace
}

func TestFreeSpaceSuite(t *testing.T) {
	suite.Run(t, new(FreeSpaceTestSuite))
}

func (s *FreeSpaceTestSuite) SetupTest() {
	s.space = NewFreeSpace(1, &fixedRules{n: 1})
}

func (s *FreeSpaceTestSuite) TestNewFreeSpace() {
	s.Equal(KindFree, s.space.Kind())
	s.Equal(1, s.space.Index())
	s.Equal("free2", s.space.String())
	s.Zero(s.space.GetNumCards())
}

func (s *FreeSpaceTestSuite) TestAddsCard() {
	// Setup
	card := entities.NewCard(5, entities.Clubs)

	// Execute
	err := s.space.AddCard(card)

	// Assert
	s.NoError(err)
	s.Same(card, s.space.GetLastCard())
	s.True(card.IsMoveable(), "Parked card is always moveable")
	s.Equal(s.space, card.ParentDropSpace())
}

func (s *FreeSpaceTestSuite) TestLimitsToOneCard() {
	// Setup
	first := entities.NewCard(5, entities.Clubs)
	second := entities.NewCard(4, entities.Diamonds)
	s.Require().NoError(s.space.AddCard(first))

	// Execute
	canMove := s.space.CanMoveToDropSpace(second)
	err := s.space.AddCard(second)

	// Assert
	s.False(canMove)
	s.True(types.IsGameError(err, types.ErrSpaceOccupied), "Second card should be refused")
	s.Equal(1, s.space.GetNumCards())
	s.Same(first, s.space.GetLastCard())
	s.Nil(second.ParentDropSpace(), "Rejected card should be untouched")
	s.Nil(first.NextCard(), "Parked card should not be linked")
}

func (s *FreeSpaceTestSuite) TestDoesNotAddCardTrain() {
	// Setup
	train := newTestTrain()

	// Execute
	canMove := s.space.CanMoveToDropSpace(train)
	err := s.space.AddCard(train)

	// Assert
	s.False(canMove)
	s.True(types.IsGameError(err, types.ErrInvalidMove))
	s.Zero(s.space.GetNumCards())
	s.Equal(3, train.TrainLength(), "Rejected train keeps its links")
}

func (s *FreeSpaceTestSuite) TestCanMoveToDropSpace() {
	s.True(s.space.CanMoveToDropSpace(entities.NewCard(entities.King, entities.Hearts)))
	s.False(s.space.CanMoveToDropSpace(nil))
}

func (s *FreeSpaceTestSuite) TestMovesTailOfPile() {
	// Setup
	pile := NewPlaySpace(0, &fixedRules{n: 3})
	run := newOrderedRun(3)
	for _, card := range run {
		s.Require().NoError(pile.AddCard(card))
	}
	tail := run[2]

	// Execute
	err := s.space.MoveCardToDropSpace(tail)

	// Assert
	s.NoError(err)
	s.Same(tail, s.space.GetLastCard())
	s.Nil(tail.PrevCard(), "Parked card should be unlinked")
	s.Equal(2, pile.GetNumCards())
	s.Nil(run[1].NextCard())
	s.True(run[1].IsMoveable())
}

func (s *FreeSpaceTestSuite) TestRejectedMoveLeavesSourceIntact() {
	// Setup
	pile := NewPlaySpace(0, &fixedRules{n: 3})
	run := newOrderedRun(3)
	for _, card := range run {
		s.Require().NoError(pile.AddCard(card))
	}

	// Execute
	err := s.space.MoveCardToDropSpace(run[1])

	// Assert
	s.True(types.IsGameError(err, types.ErrInvalidMove))
	s.Equal(3, pile.GetNumCards(), "Source should not lose the train")
	s.Same(run[2], run[1].NextCard())
	s.Equal(pile, run[1].ParentDropSpace())
}

func (s *FreeSpaceTestSuite) TestRemovesCard() {
	// Setup
	card := entities.NewCard(5, entities.Clubs)
	s.Require().NoError(s.space.AddCard(card))

	// Execute
	err := s.space.RemoveCard(card)

	// Assert
	s.NoError(err)
	s.Zero(s.space.GetNumCards())
	s.Nil(card.ParentDropSpace())
	s.True(s.space.CanMoveToDropSpace(card), "Space should be free again")
}

func (s *FreeSpaceTestSuite) TestRemoveMissingCard() {
	testCases := []struct {
		name string
		card *entities.Card
	}{
		{name: "nil card", card: nil},
		{name: "stranger", card: entities.NewCard(2, entities.Spades)},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := s.space.RemoveCard(tc.card)
			s.True(types.IsGameError(err, types.ErrCardNotFound))
		})
	}
}
