package main

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/plus3/tetra/engine"
)

const (
	cellSize    = 30
	boardOffset = 50
	panelWidth  = 160
)

var shapeColors = [engine.NumShapes]rl.Color{
	engine.ShapeI: rl.SkyBlue,
	engine.ShapeO: rl.Gold,
	engine.ShapeT: rl.Violet,
	engine.ShapeJ: rl.Blue,
	engine.ShapeL: rl.Orange,
	engine.ShapeS: rl.Lime,
	engine.ShapeZ: rl.Red,
}

// screenPos returns the top-left pixel of the board cell p. Board y grows
// upward, screen y downward.
func screenPos(bounds engine.Rect, p engine.Point) (int32, int32) {
	x := boardOffset + (p.X-bounds.XMin)*cellSize
	y := boardOffset + (bounds.YMax-1-p.Y)*cellSize
	return int32(x), int32(y)
}

func draw(snap engine.Snapshot) {
	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(rl.Black)

	bounds := snap.Bounds
	width := int32(bounds.Width() * cellSize)
	height := int32(bounds.Height() * cellSize)
	rl.DrawRectangleLines(boardOffset-2, boardOffset-2, width+4, height+4, rl.Gray)

	ghostColor := rl.NewColor(255, 255, 255, 80)
	for _, p := range snap.Ghost {
		x, y := screenPos(bounds, p)
		rl.DrawRectangle(x, y, cellSize, cellSize, ghostColor)
	}

	for y := bounds.YMin; y < bounds.YMax; y++ {
		for x := bounds.XMin; x < bounds.XMax; x++ {
			p := engine.Point{X: x, Y: y}
			shape, ok := snap.At(p).Shape()
			if !ok {
				continue
			}
			px, py := screenPos(bounds, p)
			rl.DrawRectangle(px, py, cellSize, cellSize, shapeColors[shape])
			rl.DrawRectangleLines(px, py, cellSize, cellSize, rl.Black)
		}
	}

	textX := int32(boardOffset) + width + 20
	textY := int32(boardOffset)
	for _, row := range []struct {
		label string
		value int
	}{
		{"SCORE", snap.Progress.Score},
		{"LEVEL", snap.Progress.Level},
		{"LINES", snap.Progress.Lines},
	} {
		rl.DrawText(row.label, textX, textY, 20, rl.White)
		rl.DrawText(fmt.Sprintf("%d", row.value), textX, textY+25, 20, rl.White)
		textY += 60
	}

	rl.DrawText("NEXT", textX, textY, 20, rl.White)
	drawPreview(snap.Next, textX, textY+25, rl.White)
	textY += 90

	holdColor := rl.White
	if !snap.CanHold {
		holdColor = rl.Gray
	}
	rl.DrawText("HOLD", textX, textY, 20, holdColor)
	if snap.HasHeld {
		drawPreview(snap.Held, textX, textY+25, holdColor)
	}

	if snap.Over {
		rl.DrawText("GAME OVER", boardOffset+20, boardOffset+height/2-10, 30, rl.Red)
		rl.DrawText("Press R to restart", boardOffset+10, boardOffset+height/2+30, 20, rl.White)
	}
}

// drawPreview draws shape's spawn cells at half size with (x, y) as the
// top-left of its 4x2 box.
func drawPreview(shape engine.Shape, x, y int32, tint rl.Color) {
	const size = cellSize / 2
	color := shapeColors[shape]
	if tint != rl.White {
		color = tint
	}
	for _, c := range engine.Lookup(shape).Cells {
		px := x + int32(c.X+1)*size
		py := y + int32(1-c.Y)*size
		rl.DrawRectangle(px, py, size, size, color)
		rl.DrawRectangleLines(px, py, size, size, rl.Black)
	}
}
