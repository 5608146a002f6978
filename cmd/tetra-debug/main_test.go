package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/tetra/engine"
)

func newGame(t *testing.T) *engine.Game {
	t.Helper()
	g, err := engine.New(engine.DefaultConfig(), engine.WithSeed(1, 2))
	require.NoError(t, err)
	return g
}

func TestAdvance(t *testing.T) {
	g := newGame(t)
	start, _ := g.Active()

	advance(g, false, false, func() engine.Intents { return engine.Press(engine.MoveLeft) })

	active, _ := g.Active()
	assert.Equal(t, uint64(1), g.Ticks())
	assert.Equal(t, start.Position.X-1, active.Position.X)
}

func TestAdvanceCapturedKeepsTicking(t *testing.T) {
	g := newGame(t)
	start, _ := g.Active()

	read := func() engine.Intents {
		t.Fatal("input must not be read while the overlay has the keyboard")
		return engine.Intents{}
	}
	for range 3 {
		advance(g, false, true, read)
	}

	active, _ := g.Active()
	assert.Equal(t, uint64(3), g.Ticks())
	assert.Equal(t, start.Position, active.Position)
	assert.InDelta(t, 3*tickDelta, active.FallTime, 1e-9, "gravity keeps running")
}

func TestAdvancePaused(t *testing.T) {
	g := newGame(t)

	advance(g, true, false, func() engine.Intents { return engine.Press(engine.HardDrop) })

	assert.Zero(t, g.Ticks())
	assert.Zero(t, g.Locks())
}
