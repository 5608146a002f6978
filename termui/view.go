package termui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/plus3/tetra/engine"
)

const (
	blockGlyph = "██"
	ghostGlyph = "░░"
	emptyGlyph = " ·"
)

func (m Model) View() string {
	snap := m.game.Snapshot()

	board := m.styles.Board.Render(m.renderBoard(snap))
	panel := m.styles.Panel.Render(m.renderPanel(snap))
	body := lipgloss.JoinHorizontal(lipgloss.Top, board, " ", panel)
	view := lipgloss.JoinVertical(lipgloss.Left, body, m.styles.Help.Render(m.help.View(m.keys)))

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

func (m Model) renderBoard(snap engine.Snapshot) string {
	ghost := make(map[engine.Point]bool, len(snap.Ghost))
	for _, p := range snap.Ghost {
		ghost[p] = true
	}

	var b strings.Builder
	for y := snap.Bounds.YMax - 1; y >= snap.Bounds.YMin; y-- {
		for x := snap.Bounds.XMin; x < snap.Bounds.XMax; x++ {
			p := engine.Point{X: x, Y: y}
			switch shape, filled := snap.At(p).Shape(); {
			case filled:
				b.WriteString(m.styles.cells[shape].Render(blockGlyph))
			case ghost[p] && snap.State != engine.StateNone:
				b.WriteString(m.styles.ghost[snap.ActiveShape].Render(ghostGlyph))
			default:
				b.WriteString(m.styles.Empty.Render(emptyGlyph))
			}
		}
		if y > snap.Bounds.YMin {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// renderPreview draws a shape in its spawn orientation on a 4x2 grid.
func (m Model) renderPreview(shape engine.Shape, ok bool) string {
	var cells [4]engine.Point
	if ok {
		cells = engine.Lookup(shape).Cells
	}

	var b strings.Builder
	for y := 1; y >= 0; y-- {
		for x := -1; x <= 2; x++ {
			hit := false
			for _, c := range cells {
				if ok && c == (engine.Point{X: x, Y: y}) {
					hit = true
				}
			}
			if hit {
				b.WriteString(m.styles.cells[shape].Render(blockGlyph))
			} else {
				b.WriteString("  ")
			}
		}
		if y > 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m Model) renderPanel(snap engine.Snapshot) string {
	var b strings.Builder
	line := func(label string, value any) {
		fmt.Fprintf(&b, "%s %s\n", m.styles.Label.Render(label), m.styles.Value.Render(fmt.Sprint(value)))
	}

	b.WriteString(m.styles.Title.Render("TETRA") + "\n")
	if m.player != "" {
		b.WriteString(m.styles.Label.Render(m.player) + "\n")
	}
	b.WriteString("\n")

	line("Score", snap.Progress.Score)
	line("Lines", snap.Progress.Lines)
	line("Level", snap.Progress.Level)
	b.WriteString("\n")

	b.WriteString(m.styles.Label.Render("Next") + "\n")
	b.WriteString(m.renderPreview(snap.Next, true) + "\n\n")

	hold := "Hold"
	if !snap.CanHold {
		hold += " (used)"
	}
	b.WriteString(m.styles.Label.Render(hold) + "\n")
	b.WriteString(m.renderPreview(snap.Held, snap.HasHeld) + "\n")

	switch {
	case snap.Over:
		b.WriteString("\n" + m.styles.Over.Render("GAME OVER") + "\n")
		b.WriteString(m.styles.Label.Render("r restart · q quit"))
	case m.paused:
		b.WriteString("\n" + m.styles.Banner.Render("PAUSED"))
	case m.hud.banner != "":
		b.WriteString("\n" + m.styles.Banner.Render(m.hud.banner))
	}
	return strings.TrimRight(b.String(), "\n")
}
