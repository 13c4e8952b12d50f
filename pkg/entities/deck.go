package entities

import (
	"math/rand"

	"github.com/google/uuid"
)

// DeckSize is the number of cards in a full deck
const DeckSize = MaxValue * 4

// Deck is an ordered set of cards
type Deck struct {
	Cards []*Card
}

// NewDeck creates a new deck of 52 cards, one of each rank and suit.
// Ranks are the outer loop, so the deck starts A♣ A♦ A♥ A♠ 2♣.
func NewDeck() *Deck {
	cards := make([]*Card, 0, DeckSize)
	for value := MinValue; value <= MaxValue; value++ {
		for _, suit := range Suits {
			cards = append(cards, NewCard(value, suit))
		}
	}

	return &Deck{Cards: cards}
}

// Shuffle reorders the deck by repeatedly picking a uniformly random
// remaining card and moving it to the output.
func (d *Deck) Shuffle(r *rand.Rand) {
	remaining := make([]*Card, len(d.Cards))
	copy(remaining, d.Cards)

	shuffled := make([]*Card, 0, len(remaining))
	for len(remaining) > 0 {
		i := r.Intn(len(remaining))
		shuffled = append(shuffled, remaining[i])
		remaining = append(remaining[:i], remaining[i+1:]...)
	}
	d.Cards = shuffled
}

// Len returns the number of cards in the deck
func (d *Deck) Len() int {
	return len(d.Cards)
}

// Find returns the card with the given ID, or nil
func (d *Deck) Find(id uuid.UUID) *Card {
	for _, card := range d.Cards {
		if card.ID == id {
			return card
		}
	}
	return nil
}

// Card returns the card with the given value and suit, or nil
func (d *Deck) Card(value int, suit Suit) *Card {
	for _, card := range d.Cards {
		if card.value == value && card.suit == suit {
			return card
		}
	}
	return nil
}

// ResetAll clears the train state of every card in the deck
func (d *Deck) ResetAll() {
	for _, card := range d.Cards {
		card.Reset()
	}
}
