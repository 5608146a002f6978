package engine

//go:generate go tool stringer -type=EventKind -trimprefix=Event

// EventKind identifies what an Event reports.
type EventKind uint8

const (
	// EventPieceSpawned carries Shape, Position and Rotation of a new piece.
	EventPieceSpawned EventKind = iota
	// EventPieceMoved carries the new Position and Rotation.
	EventPieceMoved
	// EventLocked carries the Shape, Position and Rotation the piece locked at.
	EventLocked
	// EventLinesCleared carries the number of Lines removed by a lock.
	EventLinesCleared
	// EventGameOver carries the final Score.
	EventGameOver
	// EventHoldChanged carries the held Shape; HasShape is false when empty.
	EventHoldChanged
	// EventScoreChanged carries the new Score.
	EventScoreChanged
	// EventLevelChanged carries the new Level and StepDelay.
	EventLevelChanged
)

// Event is a notification for renderers, audio and persistence layers.
// Only the fields documented for the Kind are set.
type Event struct {
	Kind EventKind
	// Tick is the number of the tick that raised the event; events raised by
	// direct calls between ticks carry the last tick number.
	Tick uint64

	Shape    Shape
	HasShape bool
	Position Point
	Rotation int

	Lines     int
	Score     int
	Level     int
	StepDelay float64
}

// Events buffers the events raised while the board is being mutated. They are
// dispatched in order by Flush once the active piece is back on the board.
type Events struct {
	pending []Event
}

// Emit queues ev.
func (e *Events) Emit(ev Event) {
	e.pending = append(e.pending, ev)
}

// Len returns the number of queued events.
func (e *Events) Len() int {
	return len(e.pending)
}

// Flush publishes all queued events to bus, including events queued by
// handlers while flushing, and resets the buffer.
func (e *Events) Flush(bus *Bus) {
	for len(e.pending) > 0 {
		batch := e.pending
		e.pending = nil
		for _, ev := range batch {
			bus.Publish(ev)
		}
	}
}
