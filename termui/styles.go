package termui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/plus3/tetra/engine"
)

// shapeColors are ANSI 256 colors close to the guideline piece colors.
var shapeColors = [engine.NumShapes]lipgloss.Color{
	engine.ShapeI: lipgloss.Color("51"),
	engine.ShapeO: lipgloss.Color("226"),
	engine.ShapeT: lipgloss.Color("129"),
	engine.ShapeJ: lipgloss.Color("33"),
	engine.ShapeL: lipgloss.Color("208"),
	engine.ShapeS: lipgloss.Color("46"),
	engine.ShapeZ: lipgloss.Color("196"),
}

// Styles holds every style the view uses. Build it from the renderer of
// the output it is drawn to; SSH sessions each have their own.
type Styles struct {
	Board  lipgloss.Style
	Panel  lipgloss.Style
	Title  lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Empty  lipgloss.Style
	Banner lipgloss.Style
	Over   lipgloss.Style
	Help   lipgloss.Style

	cells [engine.NumShapes]lipgloss.Style
	ghost [engine.NumShapes]lipgloss.Style
}

// NewStyles builds the default styles for r.
func NewStyles(r *lipgloss.Renderer) Styles {
	s := Styles{
		Board: r.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("240")),
		Panel: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1).
			Width(16),
		Title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		Label:  r.NewStyle().Faint(true),
		Value:  r.NewStyle().Bold(true),
		Empty:  r.NewStyle().Foreground(lipgloss.Color("236")),
		Banner: r.NewStyle().Bold(true).Foreground(lipgloss.Color("226")),
		Over: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("9")).
			Padding(0, 1),
		Help: r.NewStyle().Foreground(lipgloss.Color("240")),
	}
	for i, c := range shapeColors {
		s.cells[i] = r.NewStyle().Foreground(c)
		s.ghost[i] = r.NewStyle().Foreground(c).Faint(true)
	}
	return s
}
