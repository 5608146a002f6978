package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/tetra/engine"
)

func TestTrackerAward(t *testing.T) {
	tracker := engine.NewTracker(engine.DefaultConfig())
	want := map[int]int{0: 0, 1: 100, 2: 300, 3: 500, 4: 800, 5: 800}
	for lines, pts := range want {
		assert.Equal(t, pts, tracker.Award(lines), "%d lines", lines)
	}
}

func TestTrackerApply(t *testing.T) {
	t.Run("no lines changes nothing", func(t *testing.T) {
		tracker := engine.NewTracker(engine.DefaultConfig())
		assert.Equal(t, engine.Change{}, tracker.Apply(0))
		assert.Equal(t, engine.Progress{Level: 1, StepDelay: engine.DefaultStepDelay}, tracker.Progress())
	})

	t.Run("score accumulates", func(t *testing.T) {
		tracker := engine.NewTracker(engine.DefaultConfig())
		assert.Equal(t, engine.Change{Score: true}, tracker.Apply(1))
		assert.Equal(t, engine.Change{Score: true}, tracker.Apply(4))
		assert.Equal(t, 900, tracker.Progress().Score)
		assert.Equal(t, 5, tracker.Progress().Lines)
		assert.Equal(t, 1, tracker.Progress().Level)
	})

	t.Run("level follows cleared lines", func(t *testing.T) {
		tracker := engine.NewTracker(engine.DefaultConfig())
		for range 2 {
			tracker.Apply(4)
		}
		assert.Equal(t, engine.Change{Score: true, Level: true}, tracker.Apply(2))

		p := tracker.Progress()
		assert.Equal(t, 10, p.Lines)
		assert.Equal(t, 2, p.Level)
		assert.InDelta(t, 0.8, p.StepDelay, 1e-9)
	})
}

func TestLevelStepDelay(t *testing.T) {
	tracker := engine.NewTracker(engine.DefaultConfig())
	assert.InDelta(t, 0.8, tracker.LevelStepDelay(2), 1e-9)
	assert.InDelta(t, 0.5, tracker.LevelStepDelay(5), 1e-9)
	assert.InDelta(t, 0.1, tracker.LevelStepDelay(9), 1e-9)
	assert.InDelta(t, 0.1, tracker.LevelStepDelay(30), 1e-9)
}
