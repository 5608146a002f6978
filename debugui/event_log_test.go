package debugui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/tetra/engine"
)

func TestEventLogRing(t *testing.T) {
	l := &EventLog{
		events:   make([]engine.Event, 3),
		selected: make(map[engine.EventKind]bool),
	}
	assert.Empty(t, l.Events())

	for i := 1; i <= 5; i++ {
		l.Append(engine.Event{Kind: engine.EventScoreChanged, Tick: uint64(i)})
	}

	events := l.Events()
	require.Len(t, events, 3)
	assert.Equal(t, uint64(3), events[0].Tick)
	assert.Equal(t, uint64(4), events[1].Tick)
	assert.Equal(t, uint64(5), events[2].Tick)
}

func TestEventLogSubscribes(t *testing.T) {
	g, err := engine.New(engine.DefaultConfig(), engine.WithSeed(1, 2))
	require.NoError(t, err)

	l := NewEventLog(g, 64)
	g.HardDrop()

	var kinds []engine.EventKind
	for _, ev := range l.Events() {
		kinds = append(kinds, ev.Kind)
	}
	assert.Contains(t, kinds, engine.EventLocked)
	assert.Contains(t, kinds, engine.EventPieceSpawned)
}

func TestEventLogFilter(t *testing.T) {
	l := &EventLog{
		events:   make([]engine.Event, 4),
		selected: make(map[engine.EventKind]bool),
	}
	locked := engine.Event{Kind: engine.EventLocked}
	cleared := engine.Event{Kind: engine.EventLinesCleared}

	assert.True(t, l.visible(locked))
	assert.True(t, l.visible(cleared))

	l.selected[engine.EventLinesCleared] = true
	assert.False(t, l.visible(locked))
	assert.True(t, l.visible(cleared))
}

func TestDescribe(t *testing.T) {
	cases := []struct {
		ev   engine.Event
		want string
	}{
		{engine.Event{Kind: engine.EventLocked, Shape: engine.ShapeT, Position: engine.Point{X: 1, Y: -9}, Rotation: 2}, "T at 1,-9 rot 2"},
		{engine.Event{Kind: engine.EventLinesCleared, Lines: 4}, "4 lines"},
		{engine.Event{Kind: engine.EventScoreChanged, Score: 800}, "score 800"},
		{engine.Event{Kind: engine.EventHoldChanged}, "empty"},
		{engine.Event{Kind: engine.EventHoldChanged, Shape: engine.ShapeI, HasShape: true}, "I"},
		{engine.Event{Kind: engine.EventLevelChanged, Level: 2, StepDelay: 0.8}, "level 2, step 0.80s"},
	}
	for _, tc := range cases {
		t.Run(tc.ev.Kind.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, Describe(tc.ev))
		})
	}
}
