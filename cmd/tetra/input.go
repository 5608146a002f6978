package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/plus3/tetra/engine"
)

// binding maps a raylib key to the intent it raises.
type binding struct {
	key    int32
	intent engine.Intent
}

var bindings = []binding{
	{rl.KeyLeft, engine.MoveLeft},
	{rl.KeyRight, engine.MoveRight},
	{rl.KeyDown, engine.SoftDrop},
	{rl.KeySpace, engine.HardDrop},
	{rl.KeyUp, engine.RotateCW},
	{rl.KeyX, engine.RotateCW},
	{rl.KeyZ, engine.RotateCCW},
	{rl.KeyC, engine.Hold},
	{rl.KeyLeftShift, engine.Hold},
}

// collectIntents polls the keyboard once. pressed reports keys that went
// down this frame, down reports keys that are still held.
func collectIntents(pressed, down func(key int32) bool) engine.Intents {
	var in engine.Intents
	for _, b := range bindings {
		if pressed(b.key) {
			in.Pressed = in.Pressed.With(b.intent)
		}
		if down(b.key) {
			in.Held = in.Held.With(b.intent)
		}
	}
	return in
}
