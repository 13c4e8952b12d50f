package console

import (
	"strconv"
	"strings"

	"github.com/fadedpez/trainsolitaire/internal/types"
	"github.com/fadedpez/trainsolitaire/pkg/entities"
	"github.com/fadedpez/trainsolitaire/pkg/spaces"
)

// CommandKind names a console command
type CommandKind string

const (
	CmdMove     CommandKind = "move"
	CmdNew      CommandKind = "new"
	CmdMoveable CommandKind = "moveable"
	CmdShow     CommandKind = "show"
	CmdHelp     CommandKind = "help"
	CmdQuit     CommandKind = "quit"
)

// Command is one parsed line of player input
type Command struct {
	Kind CommandKind

	// Move
	Value      int
	Suit       entities.Suit
	SpaceKind  spaces.Kind
	SpaceIndex int

	// Moveable
	N int
}

var suitLetters = map[byte]entities.Suit{
	'c': entities.Clubs,
	'd': entities.Diamonds,
	'h': entities.Hearts,
	's': entities.Spades,
}

var rankNames = map[string]int{
	"a": entities.Ace,
	"j": entities.Jack,
	"q": entities.Queen,
	"k": entities.King,
}

var spaceLetters = map[byte]spaces.Kind{
	'p': spaces.KindPlay,
	'f': spaces.KindFree,
	's': spaces.KindSuit,
}

// ParseCard reads a card token such as "5c", "10d" or "Qh"
func ParseCard(token string) (int, entities.Suit, error) {
	token = strings.ToLower(strings.TrimSpace(token))
	if len(token) < 2 {
		return 0, "", types.Errorf(types.ErrInvalidCommand, "%q is not a card, try 5c or Qh", token)
	}

	suit, ok := suitLetters[token[len(token)-1]]
	if !ok {
		return 0, "", types.Errorf(types.ErrInvalidCommand, "%q has no suit, end it with c, d, h or s", token)
	}

	rank := token[:len(token)-1]
	if value, ok := rankNames[rank]; ok {
		return value, suit, nil
	}
	value, err := strconv.Atoi(rank)
	if err != nil || value < 2 || value > 10 {
		return 0, "", types.Errorf(types.ErrInvalidCommand, "%q has no rank, use A, 2-10, J, Q or K", token)
	}
	return value, suit, nil
}

// ParseSpace reads a space token such as "p3", "f1" or "s4". The returned
// index counts from 0.
func ParseSpace(token string) (spaces.Kind, int, error) {
	token = strings.ToLower(strings.TrimSpace(token))
	if len(token) < 2 {
		return "", 0, types.Errorf(types.ErrInvalidCommand, "%q is not a space, try p3, f1 or s2", token)
	}

	kind, ok := spaceLetters[token[0]]
	if !ok {
		return "", 0, types.Errorf(types.ErrInvalidCommand, "%q is not a space, start it with p, f or s", token)
	}
	n, err := strconv.Atoi(token[1:])
	if err != nil || n < 1 {
		return "", 0, types.Errorf(types.ErrInvalidCommand, "%q has no space number", token)
	}
	return kind, n - 1, nil
}

// ParseCommand reads one line of input. A blank line redraws the board.
func ParseCommand(line string) (*Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return &Command{Kind: CmdShow}, nil
	}

	switch strings.ToLower(fields[0]) {
	case "m", "move":
		if len(fields) != 3 {
			return nil, types.NewGameError(types.ErrInvalidCommand, "usage: m <card> <space>, e.g. m 5c p3")
		}
		value, suit, err := ParseCard(fields[1])
		if err != nil {
			return nil, err
		}
		kind, index, err := ParseSpace(fields[2])
		if err != nil {
			return nil, err
		}
		return &Command{Kind: CmdMove, Value: value, Suit: suit, SpaceKind: kind, SpaceIndex: index}, nil

	case "n", "new":
		return &Command{Kind: CmdNew}, nil

	case "k":
		if len(fields) != 2 {
			return nil, types.NewGameError(types.ErrInvalidCommand, "usage: k <number of moveable cards>")
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, types.Errorf(types.ErrInvalidCommand, "%q is not a number", fields[1])
		}
		return &Command{Kind: CmdMoveable, N: n}, nil

	case "b", "board":
		return &Command{Kind: CmdShow}, nil

	case "h", "help", "?":
		return &Command{Kind: CmdHelp}, nil

	case "q", "quit", "exit":
		return &Command{Kind: CmdQuit}, nil

	default:
		return nil, types.Errorf(types.ErrInvalidCommand, "unknown command %q, type h for help", fields[0])
	}
}
