package ui

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/NimReinforcementLearning/internal/agent"
	"github.com/mitchelldurbincs/NimReinforcementLearning/internal/game"
)

func newGreedyAgent() *agent.Agent {
	return agent.New(agent.DefaultAlpha, 0, rand.New(rand.NewSource(9)))
}

func TestRun_HumanWinsByEmptyingBoard(t *testing.T) {
	// Human is player 0 and the board is a single object: one move ends
	// the game and the mover is the winner.
	in := strings.NewReader("0 1\n")
	var out bytes.Buffer

	c := NewConsoleGame(newGreedyAgent(), game.State{1}, 0, nil, in, &out)
	winner, err := c.Run()

	require.NoError(t, err)
	assert.Equal(t, 0, winner)
	assert.Contains(t, out.String(), "Winner is Human")
}

func TestRun_RepromptsOnInvalidInput(t *testing.T) {
	// Garbage, a bad pile, and a bad count before the real move.
	in := strings.NewReader("take two\n5 1\n0 9\n0 1\n")
	var out bytes.Buffer

	c := NewConsoleGame(newGreedyAgent(), game.State{1}, 0, nil, in, &out)
	winner, err := c.Run()

	require.NoError(t, err)
	assert.Equal(t, 0, winner)
	assert.Contains(t, out.String(), "Enter two numbers")
	assert.Contains(t, out.String(), "No such pile")
	assert.Contains(t, out.String(), "Invalid count")
}

func TestRun_AgentPlaysGreedily(t *testing.T) {
	// Human takes one from pile 0, leaving {1, 0}; the agent must take
	// the last object and win.
	in := strings.NewReader("0 1\n")
	var out bytes.Buffer

	c := NewConsoleGame(newGreedyAgent(), game.State{2}, 0, nil, in, &out)
	winner, err := c.Run()

	require.NoError(t, err)
	assert.Equal(t, 1, winner)
	assert.Contains(t, out.String(), "Winner is Computer")
	assert.Contains(t, out.String(), "Computer chose to take")
}

func TestRun_ZeroTotalPilesBailsOut(t *testing.T) {
	// Nothing to take means no move can ever set a winner; Run must
	// return instead of looping on the agent's empty turns.
	in := strings.NewReader("")
	var out bytes.Buffer

	c := NewConsoleGame(newGreedyAgent(), game.State{0}, 1, nil, in, &out)

	done := make(chan struct{})
	var winner int
	var err error
	go func() {
		winner, err = c.Run()
		close(done)
	}()

	select {
	case <-done:
		assert.ErrorIs(t, err, ErrNoLegalMoves)
		assert.Equal(t, game.NoWinner, winner)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return on zero-total piles")
	}
}

func TestRun_InputClosedMidGame(t *testing.T) {
	in := strings.NewReader("")
	var out bytes.Buffer

	c := NewConsoleGame(newGreedyAgent(), game.State{1}, 0, nil, in, &out)
	_, err := c.Run()

	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestNewConsoleGame_RandomSideIsDeterministicWithSeed(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	want := rand.New(rand.NewSource(4)).Intn(2)

	c := NewConsoleGame(newGreedyAgent(), nil, RandomSide, rng, strings.NewReader(""), &bytes.Buffer{})

	assert.Equal(t, want, c.humanPlayer)
	assert.Equal(t, game.DefaultPiles, c.piles)
}
