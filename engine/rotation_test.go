package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/tetra/engine"
)

func TestWrap(t *testing.T) {
	inputs := []int{-5, -1, 0, 3, 4, 7}
	want := []int{3, 3, 0, 3, 0, 3}
	for i, in := range inputs {
		assert.Equal(t, want[i], engine.Wrap(in, 0, 4), "Wrap(%d, 0, 4)", in)
	}
	assert.Equal(t, 7, engine.Wrap(-1, 0, 8))
	assert.Equal(t, 3, engine.Wrap(12, 2, 5))
	assert.Equal(t, 2, engine.Wrap(11, 2, 5))
}

func TestKickIndex(t *testing.T) {
	assert.Equal(t, 0, engine.KickIndex(0, 1, 8))
	assert.Equal(t, 2, engine.KickIndex(1, 1, 8))
	assert.Equal(t, 5, engine.KickIndex(3, -1, 8))
	assert.Equal(t, 7, engine.KickIndex(0, -1, 8))
}

func rotate(def engine.Definition, cells [4]engine.Point, dir int) [4]engine.Point {
	var out [4]engine.Point
	engine.RotateCells(out[:], cells[:], def.Pivot, dir)
	return out
}

func TestRotateCells(t *testing.T) {
	t.Run("O is rotation invariant", func(t *testing.T) {
		def := engine.Lookup(engine.ShapeO)
		assert.ElementsMatch(t, def.Cells, rotate(def, def.Cells, 1))
		assert.ElementsMatch(t, def.Cells, rotate(def, def.Cells, -1))
	})

	t.Run("I turns around its center", func(t *testing.T) {
		def := engine.Lookup(engine.ShapeI)
		cw := rotate(def, def.Cells, 1)
		assert.ElementsMatch(t, []engine.Point{{X: 1, Y: 2}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: -1}}, cw)

		half := rotate(def, cw, 1)
		assert.ElementsMatch(t, []engine.Point{{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, half)
	})

	t.Run("T points right after a clockwise turn", func(t *testing.T) {
		def := engine.Lookup(engine.ShapeT)
		assert.ElementsMatch(t, []engine.Point{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 0}, {X: 0, Y: -1}}, rotate(def, def.Cells, 1))
	})

	for s := range engine.Shape(engine.NumShapes) {
		t.Run(s.String()+" round trips", func(t *testing.T) {
			def := engine.Lookup(s)
			assert.ElementsMatch(t, def.Cells, rotate(def, rotate(def, def.Cells, 1), -1))

			cells := def.Cells
			for range 4 {
				cells = rotate(def, cells, 1)
			}
			assert.ElementsMatch(t, def.Cells, cells)
		})
	}
}
