package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/tetra/engine"
)

// GameInspector shows the state of the active piece, the queue and the
// progress counters, and offers a few controls for poking at the game.
type GameInspector struct {
	game   *engine.Game
	seed   [2]int32
	Paused bool
}

func NewGameInspector(g *engine.Game) *GameInspector {
	return &GameInspector{game: g}
}

func (gi *GameInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(900, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 420), imgui.CondOnce)

	if !imgui.BeginV("Game Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	g := gi.game
	progress := g.Progress()
	seed1, seed2 := g.Seed()

	imgui.Text(fmt.Sprintf("Seed: %d, %d", seed1, seed2))
	imgui.Text(fmt.Sprintf("Tick: %d  Locks: %d", g.Ticks(), g.Locks()))
	imgui.Text(fmt.Sprintf("Score: %d  Lines: %d  Level: %d", progress.Score, progress.Lines, progress.Level))
	imgui.Text(fmt.Sprintf("Step Delay: %.2fs", g.StepDelay()))
	if g.Over() {
		imgui.Text("GAME OVER")
	}

	imgui.Separator()
	if active, ok := g.Active(); ok {
		imgui.Text(fmt.Sprintf("Active: %s (%s)", active.Shape, active.State))
		imgui.BulletText(fmt.Sprintf("Position: %d, %d", active.Position.X, active.Position.Y))
		imgui.BulletText(fmt.Sprintf("Rotation: %d", active.Rotation))
		imgui.BulletText(fmt.Sprintf("Fall Timer: %.2f", active.FallTime))
		if lockDelay := g.Config().LockDelay; active.State == engine.StateGrounded && lockDelay > 0 {
			progress := float32(min(active.GroundTime/lockDelay, 1))
			imgui.ProgressBarV(progress, imgui.NewVec2(-1, 0), fmt.Sprintf("lock %.2f/%.2fs", active.GroundTime, lockDelay))
		}
		imgui.BulletText(fmt.Sprintf("Grounded Moves: %d/%d", active.GroundedMoves, g.Config().MaxGroundedMoves))
		if ghost, ok := g.Ghost(); ok {
			imgui.BulletText(fmt.Sprintf("Ghost: %d, %d", ghost.X, ghost.Y))
		}
	} else {
		imgui.Text("Active: none")
	}

	imgui.Text(fmt.Sprintf("Next: %s", g.Next()))
	if held, ok := g.Held(); ok {
		imgui.Text(fmt.Sprintf("Held: %s (can hold: %t)", held, g.CanHold()))
	} else {
		imgui.Text(fmt.Sprintf("Held: none (can hold: %t)", g.CanHold()))
	}

	if imgui.TreeNodeStr("Board") {
		gi.renderBoard()
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Controls") {
		imgui.Checkbox("Paused", &gi.Paused)
		if imgui.Button("Hard Drop") {
			g.HardDrop()
		}
		imgui.SameLine()
		if imgui.Button("Hold") {
			g.Hold()
		}

		imgui.SetNextItemWidth(150)
		imgui.InputInt("Seed 1", &gi.seed[0])
		imgui.SetNextItemWidth(150)
		imgui.InputInt("Seed 2", &gi.seed[1])
		if imgui.Button("Reset") {
			g.Reset(uint64(gi.seed[0]), uint64(gi.seed[1]))
		}
		imgui.TreePop()
	}

	imgui.End()
}

// renderBoard draws a small map of the board, one square per cell.
func (gi *GameInspector) renderBoard() {
	const cell = 8

	board := gi.game.Board()
	bounds := board.Bounds()
	drawList := imgui.WindowDrawList()
	origin := imgui.CursorScreenPos()
	filled := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.9))
	empty := imgui.ColorU32Vec4(imgui.NewVec4(0.15, 0.15, 0.15, 1))

	for y := bounds.YMin; y < bounds.YMax; y++ {
		for x := bounds.XMin; x < bounds.XMax; x++ {
			color := empty
			if board.Occupied(engine.Point{X: x, Y: y}) {
				color = filled
			}
			px := origin.X + float32(x-bounds.XMin)*cell
			py := origin.Y + float32(bounds.YMax-1-y)*cell
			drawList.AddRectFilled(imgui.NewVec2(px, py), imgui.NewVec2(px+cell-1, py+cell-1), color)
		}
	}
	imgui.Dummy(imgui.NewVec2(float32(bounds.Width()*cell), float32(bounds.Height()*cell)))
}
