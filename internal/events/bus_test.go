package events

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mitchelldurbincs/NimReinforcementLearning/internal/game"
)

// recordingSubscriber captures events for assertions
type recordingSubscriber struct {
	id       string
	interest map[string]bool
	received []Event
	panics   bool
}

func (s *recordingSubscriber) ID() string { return s.id }

func (s *recordingSubscriber) InterestedIn(eventType string) bool {
	if s.interest == nil {
		return true
	}
	return s.interest[eventType]
}

func (s *recordingSubscriber) HandleEvent(event Event) {
	if s.panics {
		panic("subscriber failure")
	}
	s.received = append(s.received, event)
}

func TestEventBus_PublishToSubscriber(t *testing.T) {
	bus := NewEventBus()
	sub := &recordingSubscriber{id: "recorder"}
	bus.Subscribe(sub)

	event := NewGameStartedEvent("game-1", game.State{1, 3, 5, 7})
	bus.Publish(event)

	assert.Len(t, sub.received, 1)
	assert.Equal(t, TypeGameStarted, sub.received[0].Type())
	assert.Equal(t, "game-1", sub.received[0].GameID())
}

func TestEventBus_FiltersByInterest(t *testing.T) {
	bus := NewEventBus()
	sub := &recordingSubscriber{
		id:       "ended-only",
		interest: map[string]bool{TypeGameEnded: true},
	}
	bus.Subscribe(sub)

	bus.Publish(NewGameStartedEvent("game-1", game.State{1}))
	bus.Publish(NewGameEndedEvent("game-1", 0, 1))

	assert.Len(t, sub.received, 1)
	assert.Equal(t, TypeGameEnded, sub.received[0].Type())
}

func TestEventBus_Unsubscribe(t *testing.T) {
	bus := NewEventBus()
	sub := &recordingSubscriber{id: "recorder"}
	bus.Subscribe(sub)
	bus.Unsubscribe("recorder")

	bus.Publish(NewGameStartedEvent("game-1", game.State{1}))

	assert.Empty(t, sub.received)
}

func TestEventBus_SubscribeFunc(t *testing.T) {
	bus := NewEventBus()

	var got []Event
	bus.SubscribeFunc(TypeEpisodeFinished, func(e Event) {
		got = append(got, e)
	})

	bus.Publish(NewEpisodeFinishedEvent("game-1", 3, 1, 12))
	bus.Publish(NewGameStartedEvent("game-2", game.State{1})) // no handler registered

	assert.Len(t, got, 1)
	finished, ok := got[0].(*EpisodeFinishedEvent)
	assert.True(t, ok)
	assert.Equal(t, 3, finished.Episode)
	assert.Equal(t, 12, finished.TableSize)
}

func TestEventBus_PanicIsolation(t *testing.T) {
	bus := NewEventBus()
	bad := &recordingSubscriber{id: "bad", panics: true}
	good := &recordingSubscriber{id: "good"}
	bus.Subscribe(bad)
	bus.Subscribe(good)

	assert.NotPanics(t, func() {
		bus.Publish(NewGameEndedEvent("game-1", 0, 5))
	})
	assert.Len(t, good.received, 1, "healthy subscriber still receives the event")
}
