package entities

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type DeckTestSuite struct {
	suite.Suite
}

func TestDeckSuite(t *testing.T) {
	suite.Run(t, new(DeckTestSuite))
}

func (s *DeckTestSuite) TestNewDeck() {
	// Execute
	deck := NewDeck()

	// Assert
	s.Len(deck.Cards, DeckSize, "Deck should have 52 cards")

	seen := make(map[string]bool)
	ids := make(map[uuid.UUID]bool)
	for _, card := range deck.Cards {
		s.GreaterOrEqual(card.Value(), MinValue)
		s.LessOrEqual(card.Value(), MaxValue)
		seen[card.String()] = true
		ids[card.ID] = true
	}
	s.Len(seen, DeckSize, "Every rank and suit pair should appear once")
	s.Len(ids, DeckSize, "Every card should have its own ID")
}

func (s *DeckTestSuite) TestNewDeckOrder() {
	// Execute
	deck := NewDeck()

	// Assert
	s.Equal("A♣", deck.Cards[0].String())
	s.Equal("A♦", deck.Cards[1].String())
	s.Equal("A♥", deck.Cards[2].String())
	s.Equal("A♠", deck.Cards[3].String())
	s.Equal("2♣", deck.Cards[4].String())
	s.Equal("K♠", deck.Cards[DeckSize-1].String())
}

func (s *DeckTestSuite) TestShuffle() {
	// Setup
	deck := NewDeck()
	original := make([]*Card, len(deck.Cards))
	copy(original, deck.Cards)

	// Execute
	deck.Shuffle(rand.New(rand.NewSource(42)))

	// Assert
	s.Len(deck.Cards, DeckSize, "Shuffle should keep every card")
	s.ElementsMatch(original, deck.Cards, "Shuffle should only reorder")
	s.NotEqual(original, deck.Cards, "Order should change")
}

func (s *DeckTestSuite) TestShuffleIsDeterministicForSeed() {
	// Setup
	first := NewDeck()
	second := &Deck{Cards: append([]*Card(nil), first.Cards...)}

	// Execute
	first.Shuffle(rand.New(rand.NewSource(7)))
	second.Shuffle(rand.New(rand.NewSource(7)))

	// Assert
	s.Equal(first.Cards, second.Cards)
}

func (s *DeckTestSuite) TestFind() {
	// Setup
	deck := NewDeck()
	target := deck.Cards[17]

	// Assert
	s.Same(target, deck.Find(target.ID))
	s.Nil(deck.Find(uuid.New()))
	s.Same(deck.Cards[0], deck.Card(Ace, Clubs))
	s.Nil(deck.Card(14, Clubs))
}

func (s *DeckTestSuite) TestResetAll() {
	// Setup
	deck := NewDeck()
	deck.Cards[0].SetNextCard(deck.Cards[1])
	deck.Cards[0].SetMoveable(true)

	// Execute
	deck.ResetAll()

	// Assert
	for _, card := range deck.Cards {
		s.Nil(card.NextCard())
		s.Nil(card.PrevCard())
		s.False(card.IsMoveable())
	}
}
