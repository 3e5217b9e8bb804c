package game

import (
	"github.com/google/uuid"
)

// NoWinner marks a game still in progress.
const NoWinner = -1

// DefaultPiles is the classic 1-3-5-7 opening.
var DefaultPiles = State{1, 3, 5, 7}

// Game tracks a live game of Nim: the piles, whose turn it is, and the
// winner once the last object has been taken.
type Game struct {
	ID     uuid.UUID
	Piles  State
	Player int
	Winner int
}

// NewGame creates an in-progress game with the given initial piles and
// player 0 to move. Nil piles fall back to DefaultPiles.
func NewGame(piles State) *Game {
	if piles == nil {
		piles = DefaultPiles
	}
	return &Game{
		ID:     uuid.New(),
		Piles:  piles.Clone(),
		Player: 0,
		Winner: NoWinner,
	}
}

// OtherPlayer flips between the two player identities.
func OtherPlayer(player int) int {
	return 1 - player
}

// SwitchPlayer hands the turn to the other player.
func (g *Game) SwitchPlayer() {
	g.Player = OtherPlayer(g.Player)
}

// IsOver reports whether the game has reached its terminal state.
func (g *Game) IsOver() bool {
	return g.Winner != NoWinner
}

// State returns an immutable snapshot of the current piles.
func (g *Game) State() State {
	return g.Piles.Clone()
}

// AvailableActions enumerates the legal actions for the current piles.
func (g *Game) AvailableActions() []Action {
	return AvailableActions(g.Piles)
}

// Move applies an action to the live game. The turn is handed over
// before the terminal check, so the winner is recorded as the opposite
// of the new current player, i.e. the player who emptied the last pile.
// State is left untouched on any error.
func (g *Game) Move(a Action) error {
	if g.IsOver() {
		return ErrGameOver
	}
	if err := a.Validate(g.Piles); err != nil {
		return err
	}

	g.Piles[a.Pile] -= a.Count
	g.SwitchPlayer()
	if g.Piles.Total() == 0 {
		g.Winner = OtherPlayer(g.Player)
	}
	return nil
}
