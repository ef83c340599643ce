package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jask/birdboard/internal/screen"
	"github.com/jask/birdboard/internal/theme"
)

var titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)

func (a *App) View() string {
	if a.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Leaderboard"))
	b.WriteString("\n")
	b.WriteString(a.renderTabBar())
	b.WriteString("\n\n")
	switch {
	case a.board != nil:
		b.WriteString(renderTable(*a.board, a.screen.Theme()))
	case a.loading:
		b.WriteString(theme.Style(a.screen.Theme().SubduedText).Render("loading..."))
	default:
		b.WriteString(theme.Style(a.screen.Theme().SubduedText).Render("No data"))
	}
	b.WriteString("\n\n")
	if a.prompt {
		b.WriteString("Go to tab: " + a.input + "_\n[enter] Go  [esc] Cancel")
	} else {
		b.WriteString(a.renderHelp())
	}
	if a.status != "" {
		b.WriteString("\n" + a.status)
	}
	return b.String()
}

func (a *App) renderTabBar() string {
	th := a.screen.Theme()
	active := theme.Style(th.HighlightSelf).Bold(true).Padding(0, 1)
	inactive := theme.Style(th.SubduedText).Padding(0, 1)
	tabs := a.screen.Tabs()
	labels := tabs.Labels()
	rendered := make([]string, 0, len(labels))
	for idx, label := range labels {
		if idx == tabs.ActiveIndex() {
			rendered = append(rendered, active.Render(label))
		} else {
			rendered = append(rendered, inactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (a *App) renderHelp() string {
	parts := make([]string, 0, len(a.keys.help()))
	for _, binding := range a.keys.help() {
		h := binding.Help()
		parts = append(parts, "["+h.Key+"] "+h.Desc)
	}
	return strings.Join(parts, "  ")
}

// renderTable lays out a rendered leaderboard. The rank, player and score
// cells use the row highlight; streak and last played use the metadata style.
func renderTable(board screen.RenderedLeaderboard, th theme.Theme) string {
	cells := make([][]string, 0, len(board.Rows))
	for _, row := range board.Rows {
		cells = append(cells, []string{
			"#" + strconv.FormatUint(uint64(row.Position), 10),
			row.PlayerName,
			formatScore(row.Score),
			row.Streak,
			row.LastPlayed,
		})
	}

	header := theme.Style(th.TableHeader).Padding(0, 1)
	t := table.New().
		Headers(board.Headers...).
		Rows(cells...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderHeader(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || row < 0 || row >= len(board.Rows) {
				return header
			}
			token := board.Rows[row].HighlightStyle
			if col >= 3 {
				token = board.Rows[row].MetadataStyle
			}
			return theme.Style(token).Padding(0, 1)
		})

	out := t.Render()
	if len(cells) == 0 {
		out += "\n" + theme.Style(th.SubduedText).Render("No entries yet")
	}
	return out
}

// formatScore groups digits in threes: 1240000 -> 1,240,000.
func formatScore(score uint64) string {
	s := strconv.FormatUint(score, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
