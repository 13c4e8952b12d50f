package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fadedpez/trainsolitaire/internal/config"
	"github.com/fadedpez/trainsolitaire/internal/console"
	"github.com/fadedpez/trainsolitaire/internal/logging"
	"github.com/fadedpez/trainsolitaire/pkg/games/solitaire"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// rootOptions holds the flag values of one command instance
type rootOptions struct {
	moveable  int
	seed      int64
	play      int
	free      int
	rulesFile string
	noColor   bool
}

// newRootCmd builds the command that starts an interactive game on the terminal
func newRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solitaire",
		Short: "Play train solitaire in the terminal",
		Long: `Train solitaire is played on 8 piles with 4 free cells and 4 suit foundations.
Build piles down in alternating colors, move runs of cards as a train, and
collect every suit from Ace to King.

Settings come from the environment (and a .env file), an optional TOML rules
file, and finally the flags below.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.moveable, "moveable", "k", 0, "number of cards of a run that can be moved")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "shuffle seed, 0 for a random deal")
	cmd.Flags().IntVar(&opts.play, "play", 0, "number of play spaces")
	cmd.Flags().IntVar(&opts.free, "free", 0, "number of free spaces")
	cmd.Flags().StringVar(&opts.rulesFile, "rules", "", "TOML rules file")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored cards")

	return cmd
}

func (o *rootOptions) run(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := o.applyFlags(cmd, cfg); err != nil {
		return err
	}

	if o.noColor {
		color.NoColor = true
	}

	logger := logging.NewLoggerTo(os.Stderr, cfg.LogLevel)

	game, err := solitaire.NewGame(
		solitaire.WithLogger(logger),
		solitaire.WithSeed(cfg.ShuffleSeed),
		solitaire.WithNumMoveableCards(cfg.NumMoveableCards),
		solitaire.WithLayout(cfg.NumPlaySpaces, cfg.NumFreeSpaces),
	)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	if err := game.Initialize(); err != nil {
		return fmt.Errorf("failed to deal: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := console.NewSession(game, os.Stdin, cmd.OutOrStdout(), logger)
	session.SetPrompt(term.IsTerminal(int(os.Stdin.Fd())))

	if err := session.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// applyFlags overrides the loaded configuration with the flags that were set.
// The rules file is applied first so explicit flags win over it.
func (o *rootOptions) applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed("rules") {
		if err := cfg.ApplyRulesFile(o.rulesFile); err != nil {
			return err
		}
	}
	if flags.Changed("moveable") {
		cfg.NumMoveableCards = o.moveable
	}
	if flags.Changed("seed") {
		cfg.ShuffleSeed = o.seed
	}
	if flags.Changed("play") {
		cfg.NumPlaySpaces = o.play
	}
	if flags.Changed("free") {
		cfg.NumFreeSpaces = o.free
	}
	return nil
}
