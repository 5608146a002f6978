package engine_test

import (
	"testing"

	"github.com/plus3/tetra/engine"
)

func BenchmarkTick(b *testing.B) {
	g, err := engine.New(engine.DefaultConfig(), engine.WithSeed(1, 1))
	if err != nil {
		b.Fatal(err)
	}
	script := []engine.Intents{
		engine.Press(engine.MoveLeft),
		engine.Holding(engine.MoveLeft),
		engine.Press(engine.RotateCW),
		{},
		engine.Press(engine.HardDrop),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if g.Over() {
			g.Reset(1, uint64(i))
		}
		g.Tick(1.0/60, script[i%len(script)])
	}
}

func BenchmarkGhost(b *testing.B) {
	g, err := engine.New(engine.DefaultConfig(), engine.WithSeed(1, 1))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Ghost()
	}
}

func BenchmarkClearFullLines(b *testing.B) {
	board := engine.NewBoard(10, 20)
	bounds := board.Bounds()
	row := make([]engine.Point, 0, board.Width())
	for x := bounds.XMin; x < bounds.XMax; x++ {
		row = append(row, engine.Point{X: x})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for y := bounds.YMin; y < bounds.YMin+4; y++ {
			board.Set(row, engine.Point{Y: y}, engine.CellFor(engine.ShapeI))
		}
		board.ClearFullLines()
	}
}
