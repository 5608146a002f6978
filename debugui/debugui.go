// Package debugui provides Dear ImGui inspector windows for a running game.
// Hosts call Overlay.Render between the imgui backend's BeginFrame and
// EndFrame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
)

// Item is one window of the overlay.
type Item struct {
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard
// input. Hosts should not forward keys to the game while it is.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay renders a set of items each frame.
type Overlay struct {
	items []Item
	input InputState
}

// Add appends a window render function.
func (o *Overlay) Add(render func()) {
	o.items = append(o.items, Item{Render: render})
}

// Render updates the input state and renders every item in order.
func (o *Overlay) Render() {
	io := imgui.CurrentIO()
	o.input.WantCaptureMouse = io.WantCaptureMouse()
	o.input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range o.items {
		item.Render()
	}
}

// InputState returns the capture state seen by the last Render.
func (o *Overlay) InputState() InputState {
	return o.input
}
