package engine_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/tetra/engine"
)

func TestSnapshot(t *testing.T) {
	g, err := engine.New(engine.DefaultConfig(), engine.WithSeed(9, 9))
	require.NoError(t, err)

	snap := g.Snapshot()
	require.Len(t, snap.Rows, 20)
	require.Len(t, snap.Active, 4)
	require.Len(t, snap.Ghost, 4)
	assert.Equal(t, engine.StateFalling, snap.State)
	assert.Equal(t, g.Next(), snap.Next)
	assert.False(t, snap.HasHeld)
	assert.True(t, snap.CanHold)

	for _, c := range snap.Active {
		shape, ok := snap.At(c).Shape()
		require.True(t, ok, "active cell %v is on the board", c)
		assert.Equal(t, snap.ActiveShape, shape)
	}
	lowest := snap.Ghost[0].Y
	for _, c := range snap.Ghost {
		lowest = min(lowest, c.Y)
	}
	assert.Equal(t, snap.Bounds.YMin, lowest, "ghost rests on the floor")

	snap.Rows[0][0] = engine.CellFor(engine.ShapeI)
	assert.False(t, g.Board().Occupied(engine.Point{X: -5, Y: -10}), "snapshot shares no memory")
}

func TestSnapshotJSON(t *testing.T) {
	g, err := engine.New(engine.DefaultConfig(), engine.WithSeed(9, 9))
	require.NoError(t, err)
	g.HardDrop()

	data, err := json.Marshal(g.Snapshot())
	require.NoError(t, err)

	var decoded engine.Snapshot
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, g.Snapshot(), decoded)
}
