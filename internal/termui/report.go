package termui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agenthands/ppinet/internal/core/model"
)

const panesPerRow = 3

// Render lays out notices, graph counts and one pane per ranking.
func Render(a *model.Analysis) string {
	var sections []string

	sections = append(sections, Title.Render(fmt.Sprintf("%s via %s", a.Protein, a.Provider)))
	for _, n := range a.Notices {
		style, ok := levelStyles[n.Level]
		if !ok {
			style = Muted
		}
		sections = append(sections, style.Render(fmt.Sprintf("[%s] %s", n.Level, n.Message)))
	}
	if a.Table.Empty() {
		return strings.Join(sections, "\n")
	}

	sections = append(sections, Muted.Render(fmt.Sprintf(
		"rows %d · nodes %d · edges %d · duplicate rows %d · self-interactions %d",
		a.Stats.Rows, a.NodeCount, a.EdgeCount, a.Stats.DuplicateRows, a.Stats.SelfLoops,
	)))

	var panes []string
	for _, r := range a.Rankings {
		panes = append(panes, renderRanking(r))
	}
	for len(panes) > 0 {
		n := min(panesPerRow, len(panes))
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, panes[:n]...))
		panes = panes[n:]
	}

	if a.Summary != "" {
		sections = append(sections, Pane.Width(72).Render(a.Summary))
	}
	return strings.Join(sections, "\n")
}

func renderRanking(r model.Ranking) string {
	lines := []string{Title.Render(r.Metric)}
	for i, e := range r.Entries {
		lines = append(lines, fmt.Sprintf("%d. %-10s %s", i+1, e.Symbol, Score.Render(fmt.Sprintf("%.4f", e.Score))))
	}
	return Pane.Render(strings.Join(lines, "\n"))
}
