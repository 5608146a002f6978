// Command tetra-debug plays the game in an Ebiten window with Dear ImGui
// inspector windows drawn on top.
package main

import (
	"flag"
	"image/color"
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/tetra/config"
	"github.com/plus3/tetra/debugui"
	debugui_ebiten "github.com/plus3/tetra/debugui/ebiten"
	"github.com/plus3/tetra/engine"
)

const (
	cellSize    = 24
	boardOffset = 40
	tickDelta   = 1.0 / 60.0
)

var shapeColors = [engine.NumShapes]color.RGBA{
	engine.ShapeI: {0x00, 0xf0, 0xf0, 0xff},
	engine.ShapeO: {0xf0, 0xf0, 0x00, 0xff},
	engine.ShapeT: {0xa0, 0x00, 0xf0, 0xff},
	engine.ShapeJ: {0x00, 0x00, 0xf0, 0xff},
	engine.ShapeL: {0xf0, 0xa0, 0x00, 0xff},
	engine.ShapeS: {0x00, 0xf0, 0x00, 0xff},
	engine.ShapeZ: {0xf0, 0x00, 0x00, 0xff},
}

var keyBindings = map[ebiten.Key]engine.Intent{
	ebiten.KeyArrowLeft:  engine.MoveLeft,
	ebiten.KeyArrowRight: engine.MoveRight,
	ebiten.KeyArrowDown:  engine.SoftDrop,
	ebiten.KeySpace:      engine.HardDrop,
	ebiten.KeyArrowUp:    engine.RotateCW,
	ebiten.KeyX:          engine.RotateCW,
	ebiten.KeyZ:          engine.RotateCCW,
	ebiten.KeyC:          engine.Hold,
	ebiten.KeyShiftLeft:  engine.Hold,
}

// Game implements ebiten.Game.
type Game struct {
	game      *engine.Game
	backend   debugui_ebiten.ImguiBackend
	overlay   *debugui.Overlay
	inspector *debugui.GameInspector
}

func (g *Game) Update() error {
	captured := g.overlay.InputState().WantCaptureKeyboard
	if !captured && inpututil.IsKeyJustPressed(ebiten.KeyR) && g.game.Over() {
		g.game.Reset(rand.Uint64(), rand.Uint64())
	}
	advance(g.game, g.inspector.Paused, captured, readIntents)

	g.backend.Frame(g.overlay.Render)
	return nil
}

// advance ticks game unless it is paused. Keys typed into an imgui widget
// belong to the widget, so the game ticks with no input while the overlay
// captures the keyboard.
func advance(game *engine.Game, paused, captured bool, read func() engine.Intents) {
	if paused {
		return
	}
	var in engine.Intents
	if !captured {
		in = read()
	}
	game.Tick(tickDelta, in)
}

func readIntents() engine.Intents {
	var in engine.Intents
	for key, intent := range keyBindings {
		if inpututil.IsKeyJustPressed(key) {
			in.Pressed = in.Pressed.With(intent)
		}
		if ebiten.IsKeyPressed(key) {
			in.Held = in.Held.With(intent)
		}
	}
	return in
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.game.Snapshot()
	bounds := snap.Bounds

	cell := func(p engine.Point, clr color.Color) {
		x := float32(boardOffset + (p.X-bounds.XMin)*cellSize)
		y := float32(boardOffset + (bounds.YMax-1-p.Y)*cellSize)
		vector.DrawFilledRect(screen, x, y, cellSize-1, cellSize-1, clr, false)
	}

	vector.DrawFilledRect(screen, boardOffset, boardOffset,
		float32(bounds.Width()*cellSize), float32(bounds.Height()*cellSize), color.RGBA{0x20, 0x20, 0x20, 0xff}, false)
	for _, p := range snap.Ghost {
		cell(p, color.RGBA{0x50, 0x50, 0x50, 0xff})
	}
	for y := bounds.YMin; y < bounds.YMax; y++ {
		for x := bounds.XMin; x < bounds.XMax; x++ {
			p := engine.Point{X: x, Y: y}
			if shape, ok := snap.At(p).Shape(); ok {
				cell(p, shapeColors[shape])
			}
		}
	}

	status := "SCORE " + strconv.Itoa(snap.Progress.Score) + "  LINES " + strconv.Itoa(snap.Progress.Lines) + "  LEVEL " + strconv.Itoa(snap.Progress.Level)
	if snap.Over {
		status += "  GAME OVER (R to restart)"
	}
	ebitenutil.DebugPrintAt(screen, status, boardOffset, boardOffset/2)

	g.backend.DrawOver(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	envFile := flag.String("env", ".env", "Environment file to load settings from.")
	flag.Parse()

	settings, err := config.Load(*envFile)
	if err != nil {
		log.Fatal("Failed to load settings", "err", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "tetra-debug"})
	logger.SetLevel(settings.LogLevel)

	backend := debugui_ebiten.NewImguiBackend("Tetra Debug", 1280, 720)

	game, err := engine.New(settings.Engine, engine.WithLogger(logger))
	if err != nil {
		log.Fatal("Failed to create game", "err", err)
	}

	timer := debugui.NewFrameTimer()
	stats := debugui.NewPerformanceStats(game, 120)
	inspector := debugui.NewGameInspector(game)
	events := debugui.NewEventLog(game, 256)

	overlay := &debugui.Overlay{}
	overlay.Add(inspector.Render)
	overlay.Add(events.Render)
	overlay.Add(func() { stats.Render(timer.GetDeltaTime()) })

	if err := ebiten.RunGame(&Game{game: game, backend: backend, overlay: overlay, inspector: inspector}); err != nil {
		log.Fatal("Game loop failed", "err", err)
	}
}
