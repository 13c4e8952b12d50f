// Package console is a line-oriented terminal front end for a solitaire game.
// It turns typed commands into game calls and redraws the board after each
// change.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/fadedpez/trainsolitaire/internal/logging"
	"github.com/fadedpez/trainsolitaire/internal/types"
	"github.com/fadedpez/trainsolitaire/pkg/entities"
	"github.com/fadedpez/trainsolitaire/pkg/spaces"
)

// Game is everything the console needs from a running game
type Game interface {
	BoardView
	CardAt(value int, suit entities.Suit) (*entities.Card, error)
	SpaceAt(kind spaces.Kind, index int) (spaces.DropSpace, error)
	MoveCard(card *entities.Card, dest spaces.DropSpace) bool
	ResetGame() error
	SetNumMoveableCards(n int) error
	IsComplete() bool
}

// Session reads commands from in and writes the board to out
type Session struct {
	game     Game
	in       io.Reader
	out      io.Writer
	renderer *Renderer
	logger   *logging.Logger
	prompt   bool
}

// NewSession creates a session for game
func NewSession(game Game, in io.Reader, out io.Writer, logger *logging.Logger) *Session {
	if logger == nil {
		logger = logging.Default
	}
	return &Session{
		game:     game,
		in:       in,
		out:      out,
		renderer: NewRenderer(out),
		logger:   logger,
	}
}

// SetPrompt turns the "> " prompt on, for interactive terminals
func (s *Session) SetPrompt(prompt bool) {
	s.prompt = prompt
}

// Run draws the board and handles commands until quit, end of input or ctx is done.
// A read blocked on in does not hold Run past cancellation.
func (s *Session) Run(ctx context.Context) error {
	s.renderer.Board(s.game)

	done := make(chan struct{})
	defer close(done)
	lines, readErr := s.readLines(done)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.prompt {
			fmt.Fprint(s.out, "> ")
		}

		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-readErr:
			return err
		case line = <-lines:
		}

		cmd, err := ParseCommand(line)
		if err != nil {
			s.reportError(err)
			continue
		}

		quit, err := s.Execute(cmd)
		if err != nil {
			s.reportError(err)
			continue
		}
		if quit {
			fmt.Fprintln(s.out, "Bye.")
			return nil
		}
	}
}

// readLines scans in on its own goroutine. Every line is delivered before the
// scan error, which is nil at end of input. The goroutine stops sending once
// done is closed.
func (s *Session) readLines(done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		readErr <- scanner.Err()
	}()

	return lines, readErr
}

// Execute runs one command. It reports whether the session should end.
func (s *Session) Execute(cmd *Command) (bool, error) {
	switch cmd.Kind {
	case CmdMove:
		return false, s.move(cmd)

	case CmdNew:
		if err := s.game.ResetGame(); err != nil {
			return false, fmt.Errorf("failed to deal: %w", err)
		}
		s.renderer.Board(s.game)

	case CmdMoveable:
		if err := s.game.SetNumMoveableCards(cmd.N); err != nil {
			return false, err
		}
		s.renderer.Board(s.game)

	case CmdShow:
		s.renderer.Board(s.game)

	case CmdHelp:
		s.renderer.Help()

	case CmdQuit:
		return true, nil

	default:
		return false, types.Errorf(types.ErrInvalidCommand, "unknown command %q", cmd.Kind)
	}
	return false, nil
}

func (s *Session) move(cmd *Command) error {
	card, err := s.game.CardAt(cmd.Value, cmd.Suit)
	if err != nil {
		return err
	}
	dest, err := s.game.SpaceAt(cmd.SpaceKind, cmd.SpaceIndex)
	if err != nil {
		return err
	}

	if !s.game.MoveCard(card, dest) {
		fmt.Fprintf(s.out, "Can't move %s to %s%d.\n", s.renderer.Card(card), cmd.SpaceKind, cmd.SpaceIndex+1)
		return nil
	}

	s.renderer.Board(s.game)
	if s.game.IsComplete() {
		fmt.Fprintln(s.out, "Every suit is complete. Type n to deal again.")
	}
	return nil
}

// reportError shows the player the message of a game error, or the whole
// error otherwise
func (s *Session) reportError(err error) {
	s.logger.Debug("Command failed: %v", err)

	var gameErr *types.GameError
	if types.As(err, &gameErr) {
		fmt.Fprintf(s.out, "%s\n", gameErr.Message)
		return
	}
	fmt.Fprintf(s.out, "Error: %v\n", err)
}
