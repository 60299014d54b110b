// Package historyui provides the Bubble Tea score history interface.
package historyui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typit/internal/model"
	"github.com/verte-zerg/typit/internal/stats"
	"github.com/verte-zerg/typit/internal/store"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
)

// levelCycle is the order the level filter steps through; "" means all.
var levelCycle = []model.Difficulty{"", model.Easy, model.Medium, model.Hard}

type loadFunc func(ctx context.Context, filter model.HistoryFilter) (stats.Report, error)

// Model implements the Bubble Tea history UI.
type Model struct {
	load   loadFunc
	filter model.HistoryFilter

	report stats.Report
	errMsg string
	table  table.Model

	width  int
	height int
}

// NewModel constructs a history UI over the persisted scores.
func NewModel(st *store.Store, filter model.HistoryFilter) *Model {
	return newModel(func(ctx context.Context, f model.HistoryFilter) (stats.Report, error) {
		return stats.BuildReport(ctx, st, f)
	}, filter)
}

func newModel(load loadFunc, filter model.HistoryFilter) *Model {
	m := &Model{
		load:   load,
		filter: filter,
		table: table.New(
			table.WithColumns(historyColumns()),
			table.WithFocused(true),
			table.WithStyles(tableStyles()),
		),
	}
	m.refreshReport()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "r":
			m.refreshReport()
			return m, nil
		case "l":
			m.filter.Difficulty = nextLevel(m.filter.Difficulty)
			m.refreshReport()
			return m, nil
		case "g", "home":
			m.table.GotoTop()
			return m, nil
		case "G", "end":
			m.table.GotoBottom()
			return m, nil
		}
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	parts := []string{titleStyle.Render("Score History"), m.renderSummary(), ""}
	if len(m.report.Records) == 0 {
		parts = append(parts, mutedStyle.Render("No games found."))
	} else {
		parts = append(parts, m.table.View())
	}
	parts = append(parts, "", m.renderFooter())
	return strings.Join(parts, "\n")
}

func (m *Model) refreshReport() {
	report, err := m.load(context.Background(), m.filter)
	if err != nil {
		m.errMsg = fmt.Sprintf("failed to load history: %v", err)
		m.report = stats.Report{}
		m.table.SetRows(nil)
		return
	}
	m.errMsg = ""
	m.report = report
	rows := make([]table.Row, 0, len(report.Records))
	for _, cells := range stats.HistoryRows(report.Records) {
		rows = append(rows, table.Row(cells))
	}
	m.table.SetRows(rows)
	m.table.GotoBottom()
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.table.SetWidth(m.width)
	// title, summary, blank, blank, footer and the table header border
	m.table.SetHeight(maxInt(1, m.height-7))
}

func (m *Model) renderSummary() string {
	level := string(m.filter.Difficulty)
	if level == "" {
		level = "all"
	}
	player := m.filter.Player
	if player == "" {
		player = "any"
	}
	sum := m.report.Summary
	line := fmt.Sprintf("level=%s  player=%s  games=%d  avg=%.1f WPM  best=%d WPM",
		level, player, sum.Games, sum.AvgWPM, maxInt(sum.BestWPM, 0))
	if spark := stats.TailSparkline(m.report.Trend, 40); spark != "" {
		line += "  trend [" + spark + "]"
	}
	return headerStyle.Render(line)
}

func (m *Model) renderFooter() string {
	help := headerStyle.Render("Scroll: up/down  Level: l  Reload: r  Quit: q")
	if m.errMsg != "" {
		return help + "\n" + errorStyle.Render(m.errMsg)
	}
	return help
}

func historyColumns() []table.Column {
	widths := []int{16, 6, 16, 7, 5, 6}
	columns := make([]table.Column, len(stats.HistoryHeaders))
	for i, title := range stats.HistoryHeaders {
		columns[i] = table.Column{Title: title, Width: widths[i]}
	}
	return columns
}

func tableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func nextLevel(current model.Difficulty) model.Difficulty {
	for i, level := range levelCycle {
		if level == current {
			return levelCycle[(i+1)%len(levelCycle)]
		}
	}
	return levelCycle[0]
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
