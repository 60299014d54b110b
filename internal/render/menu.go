package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A")).
			Padding(0, 2)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F0F0F0"))
	itemStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
)

// MenuItem is one numbered entry with optional sub-entries.
type MenuItem struct {
	Label string
	Sub   []string
}

// Menu draws a titled, bordered menu with numbered items.
func Menu(title string, items []MenuItem) string {
	lines := []string{titleStyle.Render(title), ""}
	for i, item := range items {
		lines = append(lines, itemStyle.Render(strconv.Itoa(i+1)+". "+item.Label))
		for _, sub := range item.Sub {
			lines = append(lines, itemStyle.Render("    - "+sub))
		}
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}

