package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/tetra/engine"
)

func fillRow(b *engine.Board, y int, skip ...int) {
	bounds := b.Bounds()
	for x := bounds.XMin; x < bounds.XMax; x++ {
		skipped := false
		for _, s := range skip {
			if s == x {
				skipped = true
			}
		}
		if !skipped {
			b.Set([]engine.Point{{X: x, Y: y}}, engine.Point{}, engine.CellFor(engine.ShapeT))
		}
	}
}

func TestBoardBounds(t *testing.T) {
	b := engine.NewBoard(10, 20)
	assert.Equal(t, engine.Rect{XMin: -5, YMin: -10, XMax: 5, YMax: 10}, b.Bounds())
	assert.Equal(t, 10, b.Width())
	assert.Equal(t, 20, b.Height())

	tests := []struct {
		name string
		p    engine.Point
		want bool
	}{
		{"bottom left corner", engine.Point{X: -5, Y: -10}, true},
		{"top right corner", engine.Point{X: 4, Y: 9}, true},
		{"right of board", engine.Point{X: 5, Y: 0}, false},
		{"left of board", engine.Point{X: -6, Y: 0}, false},
		{"above board", engine.Point{X: 0, Y: 10}, false},
		{"below board", engine.Point{X: 0, Y: -11}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Contains(tt.p))
			assert.Equal(t, tt.want, b.IsValidPosition([]engine.Point{{}}, tt.p))
		})
	}
}

func TestBoardIsValidPosition(t *testing.T) {
	b := engine.NewBoard(10, 20)
	cells := engine.Lookup(engine.ShapeO).Cells

	assert.True(t, b.IsValidPosition(cells[:], engine.Point{X: 3, Y: -10}))
	assert.False(t, b.IsValidPosition(cells[:], engine.Point{X: 4, Y: -10}), "right column sticks out")
	assert.False(t, b.IsValidPosition(cells[:], engine.Point{X: 0, Y: 9}), "top row sticks out")

	b.Set([]engine.Point{{X: 1, Y: 1}}, engine.Point{}, engine.CellFor(engine.ShapeI))
	assert.False(t, b.IsValidPosition(cells[:], engine.Point{X: 0, Y: 0}), "overlaps a filled cell")
	assert.True(t, b.IsValidPosition(cells[:], engine.Point{X: 2, Y: 0}))

	b.Clear([]engine.Point{{X: 1, Y: 1}}, engine.Point{})
	assert.True(t, b.IsValidPosition(cells[:], engine.Point{X: 0, Y: 0}))
	assert.Equal(t, 0, b.Count())
}

func TestBoardSetIsIdempotent(t *testing.T) {
	b := engine.NewBoard(10, 20)
	cells := engine.Lookup(engine.ShapeT).Cells

	b.Set(cells[:], engine.Point{}, engine.CellFor(engine.ShapeT))
	b.Set(cells[:], engine.Point{}, engine.CellFor(engine.ShapeT))
	assert.Equal(t, 4, b.Count())

	b.Clear(cells[:], engine.Point{})
	b.Clear(cells[:], engine.Point{})
	assert.Equal(t, 0, b.Count())

	b.Set(cells[:], engine.Point{X: 100}, engine.CellFor(engine.ShapeT))
	assert.Equal(t, 0, b.Count(), "cells outside the board are ignored")
}

func TestBoardCell(t *testing.T) {
	b := engine.NewBoard(10, 20)
	p := engine.Point{X: 2, Y: 3}
	b.Set([]engine.Point{p}, engine.Point{}, engine.CellFor(engine.ShapeL))

	shape, ok := b.At(p).Shape()
	require.True(t, ok)
	assert.Equal(t, engine.ShapeL, shape)
	assert.True(t, b.Occupied(p))

	_, ok = b.At(engine.Point{}).Shape()
	assert.False(t, ok)
	assert.Equal(t, engine.CellEmpty, b.At(engine.Point{X: 50, Y: 50}))
}

func TestBoardClearFullLines(t *testing.T) {
	t.Run("single row collapses the stack", func(t *testing.T) {
		b := engine.NewBoard(10, 20)
		fillRow(b, -10, 4)
		b.Set([]engine.Point{{X: 0, Y: -9}, {X: 2, Y: 9}}, engine.Point{}, engine.CellFor(engine.ShapeS))

		b.Set([]engine.Point{{X: 4, Y: -10}}, engine.Point{}, engine.CellFor(engine.ShapeI))
		assert.Equal(t, 1, b.ClearFullLines())

		assert.True(t, b.Occupied(engine.Point{X: 0, Y: -10}), "row above moved down")
		assert.False(t, b.Occupied(engine.Point{X: 1, Y: -10}))
		assert.True(t, b.Occupied(engine.Point{X: 2, Y: 8}))
		for x := -5; x < 5; x++ {
			assert.False(t, b.Occupied(engine.Point{X: x, Y: 9}), "top row must be empty")
		}
		assert.Equal(t, 2, b.Count())
	})

	t.Run("non adjacent rows", func(t *testing.T) {
		b := engine.NewBoard(10, 20)
		fillRow(b, -10)
		b.Set([]engine.Point{{X: 0, Y: -9}}, engine.Point{}, engine.CellFor(engine.ShapeJ))
		fillRow(b, -8)
		b.Set([]engine.Point{{X: 1, Y: -7}}, engine.Point{}, engine.CellFor(engine.ShapeJ))
		fillRow(b, -3)

		assert.Equal(t, 3, b.ClearFullLines())
		assert.True(t, b.Occupied(engine.Point{X: 0, Y: -10}))
		assert.True(t, b.Occupied(engine.Point{X: 1, Y: -9}))
		assert.Equal(t, 2, b.Count())
	})

	t.Run("four stacked rows", func(t *testing.T) {
		b := engine.NewBoard(10, 20)
		for y := -10; y < -6; y++ {
			fillRow(b, y)
		}
		assert.Equal(t, 4, b.ClearFullLines())
		assert.Equal(t, 0, b.Count())
	})

	t.Run("no full rows", func(t *testing.T) {
		b := engine.NewBoard(10, 20)
		fillRow(b, -10, -5)
		assert.Equal(t, 0, b.ClearFullLines())
		assert.Equal(t, 9, b.Count())
	})
}

func TestBoardRows(t *testing.T) {
	b := engine.NewBoard(4, 2)
	b.Set([]engine.Point{{X: -2, Y: -1}, {X: 1, Y: 0}}, engine.Point{}, engine.CellFor(engine.ShapeZ))

	rows := b.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, []engine.Cell{engine.CellFor(engine.ShapeZ), 0, 0, 0}, rows[0])
	assert.Equal(t, []engine.Cell{0, 0, 0, engine.CellFor(engine.ShapeZ)}, rows[1])

	rows[0][0] = engine.CellEmpty
	assert.True(t, b.Occupied(engine.Point{X: -2, Y: -1}), "rows are a copy")

	b.Reset()
	assert.Equal(t, 0, b.Count())
}
