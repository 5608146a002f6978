package termui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/plus3/tetra/highscore"
)

// ScoreTable renders entries as a ranked table.
func ScoreTable(entries []highscore.Entry) string {
	header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("#", "PLAYER", "SCORE", "LINES", "LEVEL", "DATE").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	for i, e := range entries {
		t.Row(
			strconv.Itoa(i+1),
			e.Player,
			strconv.Itoa(e.Score),
			strconv.Itoa(e.Lines),
			strconv.Itoa(e.Level),
			e.CreatedAt.Format("2006-01-02"),
		)
	}
	return t.String()
}
