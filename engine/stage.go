package engine

// Stage is one step of the tick pipeline. Stages run in registration order
// and may keep state between ticks, such as key repeat timers.
type Stage interface {
	Execute(frame *Frame)
}
