package testutil

import (
	"math/rand"

	"github.com/mitchelldurbincs/NimReinforcementLearning/internal/agent"
	"github.com/mitchelldurbincs/NimReinforcementLearning/internal/game"
)

// NewSeededAgent creates an agent with a fixed-seed rng so tests are
// reproducible.
func NewSeededAgent(alpha, epsilon float64, seed int64) *agent.Agent {
	return agent.New(alpha, epsilon, rand.New(rand.NewSource(seed)))
}

// NewEndgame creates a game one move away from completion: a single
// object in the last pile.
func NewEndgame() *game.Game {
	return game.NewGame(game.State{0, 0, 0, 1})
}

// PlayOut applies actions in order, stopping at the first error.
func PlayOut(g *game.Game, actions ...game.Action) error {
	for _, a := range actions {
		if err := g.Move(a); err != nil {
			return err
		}
	}
	return nil
}
