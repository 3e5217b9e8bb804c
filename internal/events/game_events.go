package events

import (
	"time"

	"github.com/mitchelldurbincs/NimReinforcementLearning/internal/game"
)

// Event type constants
const (
	TypeGameStarted     = "game.started"
	TypeGameEnded       = "game.ended"
	TypeMoveApplied     = "move.applied"
	TypeEpisodeFinished = "episode.finished"
)

// GameStartedEvent is published when a new game begins
type GameStartedEvent struct {
	BaseEvent
	Piles game.State
}

// NewGameStartedEvent creates a new GameStartedEvent
func NewGameStartedEvent(gameID string, piles game.State) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeGameStarted,
			Time:      time.Now(),
			Game:      gameID,
		},
		Piles: piles,
	}
}

// MoveAppliedEvent is published after a legal move has mutated the game
type MoveAppliedEvent struct {
	BaseEvent
	Player int
	Action game.Action
	Piles  game.State
}

// NewMoveAppliedEvent creates a new MoveAppliedEvent
func NewMoveAppliedEvent(gameID string, player int, action game.Action, piles game.State) *MoveAppliedEvent {
	return &MoveAppliedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeMoveApplied,
			Time:      time.Now(),
			Game:      gameID,
		},
		Player: player,
		Action: action,
		Piles:  piles,
	}
}

// GameEndedEvent is published when the last object is taken
type GameEndedEvent struct {
	BaseEvent
	Winner int
	Moves  int
}

// NewGameEndedEvent creates a new GameEndedEvent
func NewGameEndedEvent(gameID string, winner, moves int) *GameEndedEvent {
	return &GameEndedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeGameEnded,
			Time:      time.Now(),
			Game:      gameID,
		},
		Winner: winner,
		Moves:  moves,
	}
}

// EpisodeFinishedEvent is published by the trainer after each self-play
// episode completes
type EpisodeFinishedEvent struct {
	BaseEvent
	Episode   int
	Winner    int
	TableSize int
}

// NewEpisodeFinishedEvent creates a new EpisodeFinishedEvent
func NewEpisodeFinishedEvent(gameID string, episode, winner, tableSize int) *EpisodeFinishedEvent {
	return &EpisodeFinishedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeEpisodeFinished,
			Time:      time.Now(),
			Game:      gameID,
		},
		Episode:   episode,
		Winner:    winner,
		TableSize: tableSize,
	}
}
