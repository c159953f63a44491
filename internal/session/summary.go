package session

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lepinkainen/cardscout/internal/report"
)

var (
	summaryTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("10"))

	summaryLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245"))

	summaryValueStyle = lipgloss.NewStyle().
				Bold(true)
)

// RenderSummary formats the post-analysis aggregate counts for the terminal.
func RenderSummary(summary report.Summary) string {
	var b strings.Builder

	b.WriteString(summaryTitleStyle.Render("--- ANALYSIS COMPLETE ---"))
	b.WriteString("\n")

	lines := []struct {
		label string
		value int
	}{
		{"Total Games Analyzed", summary.TotalGames},
		{"Games with Card Drops Remaining", summary.CardDropsRemaining},
		{"Games with Achievements 'In Progress'", summary.AchievementsInProgress},
		{"Games with Achievements 'Not Started'", summary.AchievementsNotStarted},
	}

	for _, line := range lines {
		b.WriteString(fmt.Sprintf("%s: %s\n",
			summaryLabelStyle.Render(line.label),
			summaryValueStyle.Render(fmt.Sprintf("%d", line.value)),
		))
	}

	return b.String()
}
