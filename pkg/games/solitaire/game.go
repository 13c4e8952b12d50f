// Package solitaire runs a single game of train solitaire: it owns the deck
// and the drop spaces, deals, and is the one place moves are arbitrated.
package solitaire

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/fadedpez/trainsolitaire/internal/logging"
	"github.com/fadedpez/trainsolitaire/internal/types"
	"github.com/fadedpez/trainsolitaire/pkg/entities"
	"github.com/fadedpez/trainsolitaire/pkg/spaces"
	"github.com/google/uuid"
)

const (
	DefaultNumPlaySpaces = 8
	DefaultNumFreeSpaces = 4
	NumSuitSpaces        = 4

	MaxNumPlaySpaces = 13
	MaxNumFreeSpaces = 8
)

// rules is what the spaces consult when they recompute moveability. It is
// only touched while the game lock is held.
type rules struct {
	numMoveableCards int
}

func (r *rules) GetNumMoveableCards() int {
	return r.numMoveableCards
}

// Game represents a single solitaire game
type Game struct {
	ID uuid.UUID

	deck       *entities.Deck
	playSpaces []*spaces.PlaySpace
	freeSpaces []*spaces.FreeSpace
	suitSpaces []*spaces.SuitSpace

	numPlaySpaces int
	numFreeSpaces int
	rules         *rules

	rng    *rand.Rand
	logger *logging.Logger
	mu     sync.Mutex
}

// Option configures a Game
type Option func(*Game)

// WithLogger sets the logger used for deals and moves
func WithLogger(logger *logging.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// WithSeed makes shuffles reproducible. A zero seed keeps the time seed.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		if seed != 0 {
			g.rng = rand.New(rand.NewSource(seed))
		}
	}
}

// WithRand sets the random source used for shuffling
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

// WithNumMoveableCards sets the initial moveability window
func WithNumMoveableCards(n int) Option {
	return func(g *Game) {
		g.rules.numMoveableCards = n
	}
}

// WithLayout sets the number of play and free spaces
func WithLayout(numPlaySpaces, numFreeSpaces int) Option {
	return func(g *Game) {
		g.numPlaySpaces = numPlaySpaces
		g.numFreeSpaces = numFreeSpaces
	}
}

// NewGame creates a game with no spaces and no cards. Call Initialize to deal.
func NewGame(opts ...Option) (*Game, error) {
	g := &Game{
		ID:            uuid.New(),
		numPlaySpaces: DefaultNumPlaySpaces,
		numFreeSpaces: DefaultNumFreeSpaces,
		rules:         &rules{numMoveableCards: spaces.DefaultNumMoveableCards},
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:        logging.Default,
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.rules.numMoveableCards < 1 {
		return nil, types.Errorf(types.ErrInvalidArgument, "number of moveable cards must be at least 1, got %d", g.rules.numMoveableCards)
	}
	if g.numPlaySpaces < 1 || g.numPlaySpaces > MaxNumPlaySpaces {
		return nil, types.Errorf(types.ErrInvalidArgument, "number of play spaces must be 1..%d, got %d", MaxNumPlaySpaces, g.numPlaySpaces)
	}
	if g.numFreeSpaces < 0 || g.numFreeSpaces > MaxNumFreeSpaces {
		return nil, types.Errorf(types.ErrInvalidArgument, "number of free spaces must be 0..%d, got %d", MaxNumFreeSpaces, g.numFreeSpaces)
	}
	if g.rng == nil || g.logger == nil {
		return nil, types.NewGameError(types.ErrInvalidArgument, "random source and logger are required")
	}

	return g, nil
}

// Initialize builds the spaces and the deck, then deals a fresh game
func (g *Game) Initialize() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.createDropSpaces()
	g.createCards()
	return g.resetGame()
}

// CreateDropSpaces replaces every space with an empty one. Cards held by the
// old spaces are reset.
func (g *Game) CreateDropSpaces() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.createDropSpaces()
}

func (g *Game) createDropSpaces() {
	g.clearSpaces()

	g.playSpaces = make([]*spaces.PlaySpace, g.numPlaySpaces)
	for i := range g.playSpaces {
		g.playSpaces[i] = spaces.NewPlaySpace(i, g.rules)
	}
	g.freeSpaces = make([]*spaces.FreeSpace, g.numFreeSpaces)
	for i := range g.freeSpaces {
		g.freeSpaces[i] = spaces.NewFreeSpace(i, g.rules)
	}
	g.suitSpaces = make([]*spaces.SuitSpace, NumSuitSpaces)
	for i := range g.suitSpaces {
		g.suitSpaces[i] = spaces.NewSuitSpace(i, g.rules)
	}
}

// CreateCards builds the 52-card deck. The deck is only ever created once.
func (g *Game) CreateCards() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.createCards()
}

func (g *Game) createCards() {
	if g.deck == nil {
		g.deck = entities.NewDeck()
	}
}

// ShuffleCards reorders the deck with the game's random source
func (g *Game) ShuffleCards() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.deck == nil {
		return types.NewGameError(types.ErrInvalidState, "no cards to shuffle")
	}
	g.deck.Shuffle(g.rng)
	return nil
}

// DealCards shuffles and deals every card round-robin over the play spaces.
// Every card must be out of play.
func (g *Game) DealCards() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.dealCards()
}

func (g *Game) dealCards() error {
	if g.deck == nil {
		return types.NewGameError(types.ErrInvalidState, "no cards to deal")
	}
	if len(g.playSpaces) == 0 {
		return types.NewGameError(types.ErrInvalidState, "no play spaces to deal into")
	}
	for _, card := range g.deck.Cards {
		if card.ParentDropSpace() != nil {
			return types.Errorf(types.ErrInvalidState, "%s is still in play", card)
		}
	}

	g.deck.Shuffle(g.rng)

	for i, card := range g.deck.Cards {
		space := g.playSpaces[i%len(g.playSpaces)]
		if err := space.AddCard(card); err != nil {
			return fmt.Errorf("dealing %s to %s: %w", card, space, err)
		}
	}

	g.logger.Info("Dealt %d cards over %d play spaces for game %s", len(g.deck.Cards), len(g.playSpaces), g.ID)
	return nil
}

// ResetGame takes every card out of play and deals a new game
func (g *Game) ResetGame() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.resetGame()
}

func (g *Game) resetGame() error {
	if g.deck == nil {
		return types.NewGameError(types.ErrInvalidState, "game has not been initialized")
	}

	g.clearSpaces()
	g.deck.ResetAll()

	if err := g.dealCards(); err != nil {
		return err
	}
	g.setTrainMoveability()
	return nil
}

func (g *Game) clearSpaces() {
	for _, space := range g.allSpaces() {
		space.ClearCards()
	}
}

func (g *Game) setTrainMoveability() {
	for _, space := range g.allSpaces() {
		space.SetTrainMoveability(g.rules.numMoveableCards)
	}
}

// MoveCard moves card, with its train, onto dest if the move is legal.
// It reports whether the move happened.
func (g *Game) MoveCard(card *entities.Card, dest spaces.DropSpace) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if card == nil || dest == nil {
		return false
	}

	parent := card.ParentDropSpace()
	if parent != nil && parent == dest {
		g.logger.Debug("Rejected move of %s: already in %v", card, dest)
		return false
	}
	if parent != nil && !card.IsMoveable() {
		g.logger.Debug("Rejected move of %s: card is not moveable", card)
		return false
	}
	if !dest.CanMoveToDropSpace(card) {
		g.logger.Debug("Rejected move of %s to %v", card, dest)
		return false
	}

	if err := dest.MoveCardToDropSpace(card); err != nil {
		g.logger.LogError(fmt.Errorf("moving %s to %v: %w", card, dest, err))
		return false
	}

	g.logger.Debug("Moved %s to %v", card, dest)
	return true
}

// GetNumMoveableCards returns the moveability window
func (g *Game) GetNumMoveableCards() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.rules.numMoveableCards
}

// SetNumMoveableCards changes the moveability window and recomputes every space
func (g *Game) SetNumMoveableCards(n int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if n < 1 {
		return types.Errorf(types.ErrInvalidArgument, "number of moveable cards must be at least 1, got %d", n)
	}

	g.rules.numMoveableCards = n
	g.setTrainMoveability()

	g.logger.Debug("Set moveable cards to %d for game %s", n, g.ID)
	return nil
}

// GetCards returns the deck in its current order
func (g *Game) GetCards() []*entities.Card {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.deck == nil {
		return nil
	}
	cards := make([]*entities.Card, len(g.deck.Cards))
	copy(cards, g.deck.Cards)
	return cards
}

func (g *Game) GetPlaySpaces() []*spaces.PlaySpace {
	g.mu.Lock()
	defer g.mu.Unlock()

	return append([]*spaces.PlaySpace(nil), g.playSpaces...)
}

func (g *Game) GetFreeSpaces() []*spaces.FreeSpace {
	g.mu.Lock()
	defer g.mu.Unlock()

	return append([]*spaces.FreeSpace(nil), g.freeSpaces...)
}

func (g *Game) GetSuitSpaces() []*spaces.SuitSpace {
	g.mu.Lock()
	defer g.mu.Unlock()

	return append([]*spaces.SuitSpace(nil), g.suitSpaces...)
}

// allSpaces returns every space, play first, then free, then suit
func (g *Game) allSpaces() []spaces.DropSpace {
	all := make([]spaces.DropSpace, 0, len(g.playSpaces)+len(g.freeSpaces)+len(g.suitSpaces))
	for _, space := range g.playSpaces {
		all = append(all, space)
	}
	for _, space := range g.freeSpaces {
		all = append(all, space)
	}
	for _, space := range g.suitSpaces {
		all = append(all, space)
	}
	return all
}

// FindSpace returns the space with the given ID
func (g *Game) FindSpace(id uuid.UUID) (spaces.DropSpace, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, space := range g.allSpaces() {
		if space.ID() == id {
			return space, nil
		}
	}
	return nil, types.Errorf(types.ErrSpaceNotFound, "no space with ID %s", id)
}

// SpaceAt returns the index-th space of the given kind, counting from 0
func (g *Game) SpaceAt(kind spaces.Kind, index int) (spaces.DropSpace, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	var count int
	switch kind {
	case spaces.KindPlay:
		count = len(g.playSpaces)
	case spaces.KindFree:
		count = len(g.freeSpaces)
	case spaces.KindSuit:
		count = len(g.suitSpaces)
	default:
		return nil, types.Errorf(types.ErrSpaceNotFound, "unknown space kind %q", kind)
	}
	if index < 0 || index >= count {
		return nil, types.Errorf(types.ErrSpaceNotFound, "no %s space %d", kind, index+1)
	}

	switch kind {
	case spaces.KindPlay:
		return g.playSpaces[index], nil
	case spaces.KindFree:
		return g.freeSpaces[index], nil
	default:
		return g.suitSpaces[index], nil
	}
}

// FindCard returns the card with the given ID
func (g *Game) FindCard(id uuid.UUID) (*entities.Card, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.deck != nil {
		if card := g.deck.Find(id); card != nil {
			return card, nil
		}
	}
	return nil, types.Errorf(types.ErrCardNotFound, "no card with ID %s", id)
}

// CardAt returns the card of the given value and suit
func (g *Game) CardAt(value int, suit entities.Suit) (*entities.Card, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.deck != nil {
		if card := g.deck.Card(value, suit); card != nil {
			return card, nil
		}
	}
	return nil, types.Errorf(types.ErrCardNotFound, "no card %s of %s", entities.RankName(value), suit)
}

// IsComplete reports whether every suit space holds Ace through King
func (g *Game) IsComplete() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.suitSpaces) == 0 {
		return false
	}
	for _, space := range g.suitSpaces {
		if !space.IsComplete() {
			return false
		}
	}
	return true
}
