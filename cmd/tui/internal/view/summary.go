package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hjkwon/stockroom/internal/report"
)

const maxBarWidth = 30

type SummaryModel struct {
	CommonModel
	reportService *report.Service

	summary *report.WeeklySummary
	loading bool
	err     error
}

func NewSummaryModel(reportSvc *report.Service) SummaryModel {
	return SummaryModel{
		reportService: reportSvc,
		loading:       true,
	}
}

func (m SummaryModel) Title() string     { return "Weekly Summary" }
func (m SummaryModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m SummaryModel) Init() tea.Cmd {
	return m.loadSummaryCmd()
}

func (m SummaryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadSummaryMsg:
		m.loading = false
		m.summary = msg.summary
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadSummaryCmd()
		}
	}

	return m, nil
}

func (m SummaryModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading summary...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	if m.summary == nil || len(m.summary.Items) == 0 {
		return lipgloss.NewStyle().Padding(2).Render(
			"No outbound movements this week.\n\n" + m.ShortHelp(),
		)
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Stock out, %s to %s\n\n",
		m.summary.Days[0], m.summary.Days[len(m.summary.Days)-1]))

	maxTotal := m.summary.Items[0].Total

	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	faint := lipgloss.NewStyle().Faint(true)

	for _, row := range m.summary.Items {
		width := 1
		if maxTotal > 0 {
			width = int(row.Total * maxBarWidth / maxTotal)
			if width < 1 {
				width = 1
			}
		}

		label := row.ItemName
		if len(label) > 24 {
			label = label[:21] + "..."
		}

		sb.WriteString(fmt.Sprintf("%-24s %s %s\n",
			label,
			barStyle.Render(strings.Repeat("█", width)),
			FormatQuantity(row.Total, row.Unit),
		))

		daily := make([]string, 0, len(m.summary.Days))
		for _, day := range m.summary.Days {
			daily = append(daily, fmt.Sprintf("%s:%d", day, row.DailyTotals[day]))
		}

		sb.WriteString(faint.Render("  "+strings.Join(daily, "  ")) + "\n\n")
	}

	sb.WriteString(faint.Render(m.ShortHelp()))

	return lipgloss.NewStyle().Padding(1).Render(sb.String())
}

type loadSummaryMsg struct {
	summary *report.WeeklySummary
	err     error
}

func (m SummaryModel) loadSummaryCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		summary, err := m.reportService.Weekly(ctx)
		return loadSummaryMsg{summary: summary, err: err}
	}
}
