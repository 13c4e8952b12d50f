package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fadedpez/trainsolitaire/pkg/entities"
	"github.com/fadedpez/trainsolitaire/pkg/spaces"
	"github.com/fatih/color"
)

const emptySlot = "--"

// Renderer draws the board as text
type Renderer struct {
	out   io.Writer
	red   *color.Color
	black *color.Color
	dim   *color.Color
}

// NewRenderer creates a renderer writing to out. Colors follow color.NoColor.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{
		out:   out,
		red:   color.New(color.FgRed, color.Bold),
		black: color.New(color.FgWhite, color.Bold),
		dim:   color.New(color.Faint),
	}
}

// Card renders a single card in its suit color
func (r *Renderer) Card(card *entities.Card) string {
	if card == nil {
		return emptySlot
	}
	if card.Color() == entities.Red {
		return r.red.Sprint(card.String())
	}
	return r.black.Sprint(card.String())
}

// slot renders the top card of a single-card row, or an empty marker
func (r *Renderer) slot(label string, space spaces.DropSpace) string {
	return fmt.Sprintf("%s [%s]", label, r.Card(space.GetLastCard()))
}

// pile renders a play space head first. A bar separates the cards that can
// be picked up from the rest.
func (r *Renderer) pile(space spaces.DropSpace) string {
	cards := space.GetCards()
	if len(cards) == 0 {
		return r.dim.Sprint(emptySlot)
	}

	parts := make([]string, 0, len(cards)+1)
	for i, card := range cards {
		if card.IsMoveable() && i > 0 && !cards[i-1].IsMoveable() {
			parts = append(parts, r.dim.Sprint("|"))
		}
		parts = append(parts, r.Card(card))
	}
	return strings.Join(parts, " ")
}

// BoardView is the read-only view of a game the renderer needs
type BoardView interface {
	GetPlaySpaces() []*spaces.PlaySpace
	GetFreeSpaces() []*spaces.FreeSpace
	GetSuitSpaces() []*spaces.SuitSpace
	GetNumMoveableCards() int
}

// Board draws free spaces, suit spaces and every play space
func (r *Renderer) Board(board BoardView) {
	var sb strings.Builder

	frees := board.GetFreeSpaces()
	if len(frees) > 0 {
		row := make([]string, 0, len(frees))
		for i, space := range frees {
			row = append(row, r.slot(fmt.Sprintf("f%d", i+1), space))
		}
		sb.WriteString("Free  " + strings.Join(row, "  ") + "\n")
	}

	suits := board.GetSuitSpaces()
	row := make([]string, 0, len(suits))
	for i, space := range suits {
		row = append(row, r.slot(fmt.Sprintf("s%d", i+1), space))
	}
	sb.WriteString("Suit  " + strings.Join(row, "  ") + "\n\n")

	for i, space := range board.GetPlaySpaces() {
		sb.WriteString(fmt.Sprintf("p%-2d   %s\n", i+1, r.pile(space)))
	}

	sb.WriteString(fmt.Sprintf("\nMoveable cards: %d\n", board.GetNumMoveableCards()))
	fmt.Fprint(r.out, sb.String())
}

const helpText = `Commands:
  m <card> <space>  move a card and the cards below it, e.g. m 5c p3, m Ah s1, m 9d f2
  n                 deal a new game
  k <n>             set how many cards of a run can be moved
  b                 redraw the board
  h                 show this help
  q                 quit

Cards are a rank (A, 2-10, J, Q, K) and a suit (c, d, h, s).
Spaces are p1-p8 (play), f1-f4 (free) and s1-s4 (suit).
In a pile, only the cards after the | can be picked up.
`

// Help prints the command reference
func (r *Renderer) Help() {
	fmt.Fprint(r.out, helpText)
}
