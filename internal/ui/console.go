// Package ui implements the interactive human-vs-agent console loop.
// The engine's error contract does the validation; this layer only
// parses input, re-prompts, and reports.
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/NimReinforcementLearning/internal/agent"
	"github.com/mitchelldurbincs/NimReinforcementLearning/internal/game"
)

// RandomSide asks the console game to coin-flip which side the human plays.
const RandomSide = -1

var (
	// ErrInputClosed is returned when the input stream ends mid-game.
	ErrInputClosed = errors.New("input closed before the game finished")
	// ErrNoLegalMoves is returned for starting piles with nothing to take.
	ErrNoLegalMoves = errors.New("no legal moves from the starting piles")
)

// ConsoleGame alternates turns between a human reading from in and a
// trained agent playing greedily.
type ConsoleGame struct {
	agent       *agent.Agent
	piles       game.State
	humanPlayer int
	moveDelay   time.Duration
	in          *bufio.Scanner
	out         io.Writer
	logger      zerolog.Logger
}

// NewConsoleGame creates an interactive game. humanPlayer is 0, 1, or
// RandomSide; a nil rng falls back to a time-seeded source. Nil piles
// use the default opening.
func NewConsoleGame(a *agent.Agent, piles game.State, humanPlayer int, rng *rand.Rand, in io.Reader, out io.Writer) *ConsoleGame {
	if piles == nil {
		piles = game.DefaultPiles
	}
	if humanPlayer != 0 && humanPlayer != 1 {
		if rng == nil {
			rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		humanPlayer = rng.Intn(2)
	}
	return &ConsoleGame{
		agent:       a,
		piles:       piles.Clone(),
		humanPlayer: humanPlayer,
		in:          bufio.NewScanner(in),
		out:         out,
		logger:      log.With().Str("component", "console").Logger(),
	}
}

// SetMoveDelay sets a pause before each agent move, purely for pacing.
func (c *ConsoleGame) SetMoveDelay(d time.Duration) {
	c.moveDelay = d
}

// Run plays one game to completion and returns the winner's identity.
func (c *ConsoleGame) Run() (winner int, err error) {
	g := game.NewGame(c.piles)
	c.logger.Info().
		Str("game_id", g.ID.String()).
		Int("human_player", c.humanPlayer).
		Msg("Starting interactive game")

	// A game that starts with all piles empty can never reach a winner:
	// Move is the only thing that sets one.
	if g.Piles.Total() == 0 {
		return game.NoWinner, ErrNoLegalMoves
	}

	for !g.IsOver() {
		c.printPiles(g)

		if g.Player == c.humanPlayer {
			if err := c.humanMove(g); err != nil {
				return game.NoWinner, err
			}
		} else {
			c.agentMove(g)
		}
	}

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "GAME OVER")
	if g.Winner == c.humanPlayer {
		fmt.Fprintln(c.out, "Winner is Human")
	} else {
		fmt.Fprintln(c.out, "Winner is Computer")
	}
	return g.Winner, nil
}

// humanMove prompts until the engine accepts a move or input runs out.
func (c *ConsoleGame) humanMove(g *game.Game) error {
	fmt.Fprintln(c.out, "Your Turn")

	for {
		fmt.Fprint(c.out, "Choose Pile and Count: ")
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return fmt.Errorf("reading move: %w", err)
			}
			return ErrInputClosed
		}

		var pile, count int
		if _, err := fmt.Sscanf(strings.TrimSpace(c.in.Text()), "%d %d", &pile, &count); err != nil {
			fmt.Fprintln(c.out, "Enter two numbers: a pile index and a count.")
			continue
		}

		switch err := g.Move(game.Action{Pile: pile, Count: count}); {
		case errors.Is(err, game.ErrInvalidPile):
			fmt.Fprintln(c.out, "No such pile, try again.")
		case errors.Is(err, game.ErrInvalidCount):
			fmt.Fprintln(c.out, "Invalid count for that pile, try again.")
		case err != nil:
			return fmt.Errorf("applying move: %w", err)
		default:
			return nil
		}
	}
}

// agentMove plays the agent's greedy choice.
func (c *ConsoleGame) agentMove(g *game.Game) {
	if c.moveDelay > 0 {
		time.Sleep(c.moveDelay)
	}

	action, ok := c.agent.ChooseAction(g.State(), false)
	if !ok {
		// Unreachable: Run rejects empty starting piles and only calls
		// this while the game is in progress.
		return
	}

	fmt.Fprintln(c.out, "Computer's Turn")
	fmt.Fprintf(c.out, "Computer chose to take %d from pile %d.\n", action.Count, action.Pile)

	if err := g.Move(action); err != nil {
		c.logger.Error().Err(err).
			Str("game_id", g.ID.String()).
			Msg("Agent produced an illegal move")
	}
}

func (c *ConsoleGame) printPiles(g *game.Game) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "Piles:")
	for i, n := range g.Piles {
		fmt.Fprintf(c.out, "Pile %d: %d\n", i, n)
	}
	fmt.Fprintln(c.out)
}
