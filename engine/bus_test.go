package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBus(t *testing.T) {
	t.Run("publishes in subscription order", func(t *testing.T) {
		bus := newBus()
		var got []string
		bus.Subscribe(func(Event) { got = append(got, "a") })
		bus.Subscribe(func(Event) { got = append(got, "b") })

		bus.Publish(Event{Kind: EventLocked})
		assert.Equal(t, []string{"a", "b"}, got)
		assert.Equal(t, 2, bus.Len())
	})

	t.Run("unsubscribe", func(t *testing.T) {
		bus := newBus()
		calls := 0
		id := bus.Subscribe(func(Event) { calls++ })

		assert.True(t, bus.Unsubscribe(id))
		assert.False(t, bus.Unsubscribe(id))
		bus.Publish(Event{})
		assert.Equal(t, 0, calls)
		assert.Equal(t, 0, bus.Len())
	})

	t.Run("unsubscribe during publish", func(t *testing.T) {
		bus := newBus()
		var second SubscriptionID
		calls := 0
		bus.Subscribe(func(Event) { bus.Unsubscribe(second) })
		second = bus.Subscribe(func(Event) { calls++ })

		bus.Publish(Event{})
		assert.Equal(t, 0, calls)
	})
}

func TestEventsFlush(t *testing.T) {
	bus := newBus()
	var events Events
	var got []EventKind
	bus.Subscribe(func(ev Event) {
		got = append(got, ev.Kind)
		if ev.Kind == EventLocked {
			events.Emit(Event{Kind: EventScoreChanged})
		}
	})

	events.Emit(Event{Kind: EventPieceMoved})
	events.Emit(Event{Kind: EventLocked})
	assert.Equal(t, 2, events.Len())

	events.Flush(bus)
	assert.Equal(t, []EventKind{EventPieceMoved, EventLocked, EventScoreChanged}, got)
	assert.Equal(t, 0, events.Len())
}

func TestEventsCarryTick(t *testing.T) {
	g, err := New(DefaultConfig(), WithSeed(5, 5))
	assert.NoError(t, err)
	var ticks []uint64
	g.Subscribe(func(ev Event) { ticks = append(ticks, ev.Tick) })

	g.Tick(0.01, Press(MoveLeft))
	g.Tick(0.01, Press(MoveRight))
	assert.Equal(t, []uint64{1, 2}, ticks)
}

func TestBoardIsConsistentWhenHandlersRun(t *testing.T) {
	g, err := New(DefaultConfig(), WithSeed(5, 5))
	assert.NoError(t, err)
	g.Subscribe(func(ev Event) {
		if _, ok := g.Active(); ok {
			assert.Equal(t, g.Locks()*4+4, uint64(g.Board().Count()), "%s", ev.Kind)
		}
	})

	for range 3 {
		g.HardDrop()
		g.Move(1, 0)
	}
}
