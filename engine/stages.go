package engine

// The tick pipeline. Registration order in newPipeline is the documented
// intent order: rotate, hard drop, hold, shift, drop.

func newPipeline() *Pipeline {
	p := NewPipeline()
	p.Register(&rotateStage{})
	p.Register(&hardDropStage{})
	p.Register(&holdStage{})
	p.Register(&shiftStage{})
	p.Register(&dropStage{})
	return p
}

type rotateStage struct{}

func (s *rotateStage) Execute(frame *Frame) {
	pressed := frame.Intents.Pressed
	if pressed.Has(RotateCW) && !frame.Settled() {
		frame.Game.rotate(1)
	}
	if pressed.Has(RotateCCW) && !frame.Settled() {
		frame.Game.rotate(-1)
	}
}

type hardDropStage struct{}

func (s *hardDropStage) Execute(frame *Frame) {
	if frame.Intents.Pressed.Has(HardDrop) && !frame.Settled() {
		frame.Game.hardDrop()
	}
}

type holdStage struct{}

func (s *holdStage) Execute(frame *Frame) {
	if frame.Intents.Pressed.Has(Hold) && !frame.Settled() {
		frame.Game.hold()
	}
}

// shiftStage moves the piece sideways with key repeat.
type shiftStage struct {
	left, right float64
}

func (s *shiftStage) Execute(frame *Frame) {
	g := frame.Game
	repeat(frame, MoveLeft, &s.left, func() { g.move(-1, 0) })
	repeat(frame, MoveRight, &s.right, func() { g.move(1, 0) })
}

// dropStage handles soft drop, gravity and the lock check.
type dropStage struct {
	soft float64
}

func (s *dropStage) Execute(frame *Frame) {
	g := frame.Game
	repeat(frame, SoftDrop, &s.soft, func() { g.move(0, -1) })
	if frame.Settled() {
		return
	}
	g.fall(frame.DeltaTime)
}

// repeat fires action when intent is pressed, then once per repeat delay of
// accumulated time while it stays held. The timer resets on release.
func repeat(frame *Frame, intent Intent, timer *float64, action func()) {
	delay := frame.Game.cfg.RepeatDelay
	switch {
	case frame.Intents.Pressed.Has(intent):
		*timer = 0
		if !frame.Settled() {
			action()
		}
	case frame.Intents.Held.Has(intent):
		*timer += frame.DeltaTime
		if *timer >= delay {
			*timer -= delay
			if !frame.Settled() {
				action()
			}
		}
	default:
		*timer = 0
	}
}
