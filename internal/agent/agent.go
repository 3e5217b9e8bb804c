// Package agent implements a tabular Q-learning agent for Nim. The value
// table is exact: it is keyed by the precise (state, action) pair and
// grows as the agent observes new transitions.
package agent

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/NimReinforcementLearning/internal/game"
)

const (
	DefaultAlpha   = 0.5
	DefaultEpsilon = 0.1
)

// transition keys the value table by exact state and action.
type transition struct {
	state  string
	action game.Action
}

// Agent selects actions epsilon-greedily over its learned value table
// and updates the table with the one-step temporal-difference rule.
// It is not safe for concurrent use; training runs episodes sequentially
// on a single goroutine.
type Agent struct {
	Alpha   float64
	Epsilon float64

	q      map[transition]float64
	rng    *rand.Rand
	logger zerolog.Logger
}

// New creates an agent with an empty value table. A nil rng falls back
// to a time-seeded source; tests inject a fixed seed for determinism.
func New(alpha, epsilon float64, rng *rand.Rand) *Agent {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Agent{
		Alpha:   alpha,
		Epsilon: epsilon,
		q:       make(map[transition]float64),
		rng:     rng,
		logger:  log.With().Str("component", "agent").Logger(),
	}
}

// GetQ returns the stored estimate for (state, action), or 0 when the
// pair has never been updated.
func (a *Agent) GetQ(state game.State, action game.Action) float64 {
	return a.q[transition{state: state.Key(), action: action}]
}

// SetQ overwrites the entry for (state, action) with the old estimate
// nudged toward (reward + future) by a fraction Alpha.
func (a *Agent) SetQ(state game.State, action game.Action, old, reward, future float64) {
	a.q[transition{state: state.Key(), action: action}] = old + a.Alpha*((reward+future)-old)
}

// BestFutureReward returns the highest stored value across the legal
// actions for state, or 0 when the state is terminal.
func (a *Agent) BestFutureReward(state game.State) float64 {
	actions := game.AvailableActions(state)
	if len(actions) == 0 {
		return 0
	}

	best := a.GetQ(state, actions[0])
	for _, action := range actions[1:] {
		if v := a.GetQ(state, action); v > best {
			best = v
		}
	}
	return best
}

// Update records a transition: the value of the old (state, action) pair
// moves toward the received reward plus the best estimate available from
// the new state. Drivers call this after every half-move and at game end.
func (a *Agent) Update(oldState game.State, action game.Action, newState game.State, reward float64) {
	old := a.GetQ(oldState, action)
	future := a.BestFutureReward(newState)
	a.SetQ(oldState, action, old, reward, future)
}

// ChooseAction picks an action for state. With explore set, a uniformly
// random legal action is returned with probability Epsilon; otherwise
// the first maximizing action in enumeration order is returned, which
// keeps greedy play reproducible. ok is false only on a terminal state.
func (a *Agent) ChooseAction(state game.State, explore bool) (action game.Action, ok bool) {
	actions := game.AvailableActions(state)
	if len(actions) == 0 {
		return game.Action{}, false
	}

	if explore && a.rng.Float64() < a.Epsilon {
		chosen := actions[a.rng.Intn(len(actions))]
		a.logger.Debug().
			Str("state", state.Key()).
			Int("pile", chosen.Pile).
			Int("count", chosen.Count).
			Msg("Chose exploratory action")
		return chosen, true
	}

	best := actions[0]
	bestValue := a.GetQ(state, best)
	for _, candidate := range actions[1:] {
		if v := a.GetQ(state, candidate); v > bestValue {
			best = candidate
			bestValue = v
		}
	}
	return best, true
}

// TableSize returns the number of (state, action) pairs learned so far.
func (a *Agent) TableSize() int {
	return len(a.q)
}
