// Package ebiten provides the Dear ImGui backend used to draw the debug
// overlay inside an Ebiten game loop.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend creates the backend and its window. The imgui.ini file is
// disabled so window layout does not leak between runs.
func NewImguiBackend(title string, width, height int) ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return ImguiBackend{EbitenBackend: backend}
}

// Frame runs render between BeginFrame and EndFrame.
func (b ImguiBackend) Frame(render func()) {
	b.BeginFrame()
	render()
	b.EndFrame()
}

// DrawOver draws the overlay on top of screen.
func (b ImguiBackend) DrawOver(screen *ebiten.Image) {
	b.Draw(screen)
}
