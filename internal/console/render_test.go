package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fadedpez/trainsolitaire/internal/logging"
	"github.com/fadedpez/trainsolitaire/pkg/entities"
	"github.com/fadedpez/trainsolitaire/pkg/games/solitaire"
	"github.com/fatih/color"
	"github.com/stretchr/testify/suite"
)

type RenderTestSuite struct {
	suite.Suite
	out      *bytes.Buffer
	renderer *Renderer
	noColor  bool
}

func TestRenderSuite(t *testing.T) {
	suite.Run(t, new(RenderTestSuite))
}

func (s *RenderTestSuite) SetupTest() {
	s.noColor = color.NoColor
	color.NoColor = true
	s.out = &bytes.Buffer{}
	s.renderer = NewRenderer(s.out)
}

func (s *RenderTestSuite) TearDownTest() {
	color.NoColor = s.noColor
}

func (s *RenderTestSuite) TestCard() {
	s.Equal("10♦", s.renderer.Card(entities.NewCard(10, entities.Diamonds)))
	s.Equal("Q♠", s.renderer.Card(entities.NewCard(entities.Queen, entities.Spades)))
	s.Equal(emptySlot, s.renderer.Card(nil))
}

func (s *RenderTestSuite) TestCardColors() {
	// Setup
	color.NoColor = false
	red := entities.NewCard(entities.Ace, entities.Hearts)
	black := entities.NewCard(entities.Ace, entities.Clubs)

	// Execute
	redText := s.renderer.Card(red)
	blackText := s.renderer.Card(black)

	// Assert
	s.Contains(redText, "\x1b[", "Colored output should carry escape codes")
	s.Contains(redText, "A♥")
	s.NotEqual(strings.Replace(redText, "A♥", "", 1), strings.Replace(blackText, "A♣", "", 1), "Red and black cards use different colors")
}

func (s *RenderTestSuite) TestBoard() {
	// Setup
	game, err := solitaire.NewGame(solitaire.WithLogger(logging.Discard()))
	s.Require().NoError(err)
	game.CreateDropSpaces()
	game.CreateCards()

	play := game.GetPlaySpaces()[0]
	for _, c := range []struct {
		value int
		suit  entities.Suit
	}{
		{2, entities.Hearts},
		{entities.King, entities.Spades},
		{entities.Queen, entities.Hearts},
	} {
		card, err := game.CardAt(c.value, c.suit)
		s.Require().NoError(err)
		s.Require().NoError(play.AddCard(card))
	}
	seven, err := game.CardAt(7, entities.Clubs)
	s.Require().NoError(err)
	s.Require().NoError(game.GetFreeSpaces()[1].AddCard(seven))

	// Execute
	s.renderer.Board(game)

	// Assert
	output := s.out.String()
	s.Contains(output, "Free  f1 [--]  f2 [7♣]  f3 [--]  f4 [--]")
	s.Contains(output, "Suit  s1 [--]  s2 [--]  s3 [--]  s4 [--]")
	s.Contains(output, "p1    2♥ | K♠ Q♥", "Bar separates the cards that can be picked up")
	s.Contains(output, "p2    --")
	s.Contains(output, "p8    --")
	s.Contains(output, "Moveable cards: 5")
}

func (s *RenderTestSuite) TestHelp() {
	s.renderer.Help()

	s.Contains(s.out.String(), "k <n>")
	s.Contains(s.out.String(), "p1-p8")
}
