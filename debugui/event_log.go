package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/tetra/engine"
)

// EventLog keeps the most recent engine events and lists them in a table,
// filtered by kind.
type EventLog struct {
	events   []engine.Event
	next     int
	full     bool
	selected map[engine.EventKind]bool
}

// NewEventLog subscribes to g and keeps the last capacity events.
func NewEventLog(g *engine.Game, capacity int) *EventLog {
	l := &EventLog{
		events:   make([]engine.Event, capacity),
		selected: make(map[engine.EventKind]bool),
	}
	g.Subscribe(l.Append)
	return l
}

// Append records ev, dropping the oldest event when the log is full.
func (l *EventLog) Append(ev engine.Event) {
	l.events[l.next] = ev
	l.next = (l.next + 1) % len(l.events)
	if l.next == 0 {
		l.full = true
	}
}

// Events returns the retained events, oldest first.
func (l *EventLog) Events() []engine.Event {
	if !l.full {
		return append([]engine.Event(nil), l.events[:l.next]...)
	}
	return append(append([]engine.Event(nil), l.events[l.next:]...), l.events[:l.next]...)
}

func (l *EventLog) visible(ev engine.Event) bool {
	return len(l.selected) == 0 || l.selected[ev.Kind]
}

func (l *EventLog) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(900, 440), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 270), imgui.CondOnce)

	if !imgui.BeginV("Event Log", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if imgui.Button("Clear Filter") {
		l.selected = make(map[engine.EventKind]bool)
	}
	for kind := engine.EventPieceSpawned; kind <= engine.EventLevelChanged; kind++ {
		selected := l.selected[kind]
		if imgui.Checkbox(kind.String(), &selected) {
			if selected {
				l.selected[kind] = true
			} else {
				delete(l.selected, kind)
			}
		}
	}

	imgui.Separator()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EventTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Tick")
		imgui.TableSetupColumn("Kind")
		imgui.TableSetupColumn("Details")
		imgui.TableHeadersRow()

		events := l.Events()
		for i := len(events) - 1; i >= 0; i-- {
			ev := events[i]
			if !l.visible(ev) {
				continue
			}
			imgui.TableNextRow()
			imgui.TableSetColumnIndex(0)
			imgui.Text(fmt.Sprintf("%d", ev.Tick))
			imgui.TableSetColumnIndex(1)
			imgui.Text(ev.Kind.String())
			imgui.TableSetColumnIndex(2)
			imgui.Text(Describe(ev))
		}

		imgui.EndTable()
	}

	imgui.End()
}

// Describe formats the fields that matter for ev's kind.
func Describe(ev engine.Event) string {
	switch ev.Kind {
	case engine.EventPieceSpawned, engine.EventPieceMoved, engine.EventLocked:
		return fmt.Sprintf("%s at %d,%d rot %d", ev.Shape, ev.Position.X, ev.Position.Y, ev.Rotation)
	case engine.EventLinesCleared:
		return fmt.Sprintf("%d lines", ev.Lines)
	case engine.EventGameOver, engine.EventScoreChanged:
		return fmt.Sprintf("score %d", ev.Score)
	case engine.EventHoldChanged:
		if !ev.HasShape {
			return "empty"
		}
		return ev.Shape.String()
	case engine.EventLevelChanged:
		return fmt.Sprintf("level %d, step %.2fs", ev.Level, ev.StepDelay)
	}
	return ""
}
