// Package training runs self-play episodes that feed transitions into a
// Q-learning agent. The same agent chooses the moves for both sides.
package training

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/NimReinforcementLearning/internal/agent"
	"github.com/mitchelldurbincs/NimReinforcementLearning/internal/events"
	"github.com/mitchelldurbincs/NimReinforcementLearning/internal/game"
)

// Stats accumulates results across a training run
type Stats struct {
	Episodes  int
	Wins      [2]int
	TableSize int
}

// lastMove remembers the most recent (state, action) a player took so
// its reward can be assigned once the opponent has replied.
type lastMove struct {
	state  game.State
	action game.Action
	valid  bool
}

// Trainer drives self-play training episodes
type Trainer struct {
	// ProgressInterval controls how often episode progress is logged.
	ProgressInterval int

	agent   *agent.Agent
	piles   game.State
	rewards *RewardConfig
	bus     events.Publisher
	stats   Stats
	logger  zerolog.Logger
}

// NewTrainer creates a trainer for the given agent. Nil piles fall back
// to the default opening, nil rewards to DefaultRewardConfig, and a nil
// bus to a fresh one with no subscribers.
func NewTrainer(a *agent.Agent, piles game.State, rewards *RewardConfig, bus events.Publisher) *Trainer {
	if piles == nil {
		piles = game.DefaultPiles
	}
	if rewards == nil {
		rewards = DefaultRewardConfig()
	}
	if bus == nil {
		bus = events.NewEventBus()
	}
	return &Trainer{
		ProgressInterval: 1000,
		agent:            a,
		piles:            piles.Clone(),
		rewards:          rewards,
		bus:              bus,
		logger:           log.With().Str("component", "trainer").Logger(),
	}
}

// Train runs the given number of self-play episodes and returns the
// agent, now backed by everything it learned.
func (t *Trainer) Train(episodes int) *agent.Agent {
	t.logger.Info().
		Int("episodes", episodes).
		Ints("piles", t.piles).
		Float64("alpha", t.agent.Alpha).
		Float64("epsilon", t.agent.Epsilon).
		Msg("Starting self-play training")

	for i := 0; i < episodes; i++ {
		t.runEpisode(i + 1)

		if t.ProgressInterval > 0 && (i+1)%t.ProgressInterval == 0 {
			t.logger.Info().
				Int("episode", i+1).
				Int("table_size", t.agent.TableSize()).
				Msg("Training progress")
		}
	}

	t.stats.TableSize = t.agent.TableSize()
	t.logger.Info().
		Int("episodes", t.stats.Episodes).
		Int("player_0_wins", t.stats.Wins[0]).
		Int("player_1_wins", t.stats.Wins[1]).
		Int("table_size", t.stats.TableSize).
		Msg("Training complete")

	return t.agent
}

// runEpisode plays one game to completion, updating the value table
// after every half-move and with the terminal rewards at game end.
func (t *Trainer) runEpisode(episode int) {
	g := game.NewGame(t.piles)
	gameID := g.ID.String()
	t.bus.Publish(events.NewGameStartedEvent(gameID, g.State()))

	last := map[int]*lastMove{
		0: {},
		1: {},
	}
	moves := 0

	for {
		state := g.State()
		action, ok := t.agent.ChooseAction(state, true)
		if !ok {
			// Unreachable with non-empty starting piles; bail rather
			// than loop forever on a degenerate configuration.
			t.logger.Warn().Str("game_id", gameID).Msg("No legal actions in non-terminal game")
			return
		}

		mover := g.Player
		last[mover] = &lastMove{state: state, action: action, valid: true}

		if err := g.Move(action); err != nil {
			t.logger.Error().Err(err).Str("game_id", gameID).Msg("Self-play produced an illegal move")
			return
		}
		moves++
		newState := g.State()
		t.bus.Publish(events.NewMoveAppliedEvent(gameID, mover, action, newState))

		// After Move the current player is the mover's opponent.
		opponent := last[g.Player]

		if g.IsOver() {
			t.agent.Update(state, action, newState, t.rewards.TerminalMove)
			if opponent.valid {
				t.agent.Update(opponent.state, opponent.action, newState, t.rewards.OpponentFinal)
			}

			t.stats.Episodes++
			t.stats.Wins[g.Winner]++
			t.bus.Publish(events.NewGameEndedEvent(gameID, g.Winner, moves))
			t.bus.Publish(events.NewEpisodeFinishedEvent(gameID, episode, g.Winner, t.agent.TableSize()))
			return
		}

		if opponent.valid {
			t.agent.Update(opponent.state, opponent.action, newState, t.rewards.Intermediate)
		}
	}
}

// Stats returns the accumulated results of the run so far.
func (t *Trainer) Stats() Stats {
	return t.stats
}
