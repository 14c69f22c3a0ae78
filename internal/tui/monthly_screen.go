package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/andy/worklog/internal/app"
	"github.com/andy/worklog/internal/domain"
	"github.com/andy/worklog/internal/report"
	"github.com/andy/worklog/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MonthlyModel shows the current month bucketed into Monday-aligned weeks
type MonthlyModel struct {
	app *app.App

	dash    *service.Dashboard
	loading bool
	err     error
}

type monthlyDataMsg struct {
	dash *service.Dashboard
	err  error
}

// NewMonthlyModel creates a new monthly model
func NewMonthlyModel(a *app.App) tea.Model {
	return &MonthlyModel{app: a, loading: true}
}

func (m *MonthlyModel) Init() tea.Cmd {
	return m.loadData()
}

func (m *MonthlyModel) loadData() tea.Cmd {
	return func() tea.Msg {
		dash, err := m.app.DashboardService.GetDashboard(
			context.Background(), m.app.CurrentUser.ID,
			report.PeriodMonth, domain.FilterState{}, time.Now())
		return monthlyDataMsg{dash: dash, err: err}
	}
}

func (m *MonthlyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case monthlyDataMsg:
		m.loading = false
		m.err = msg.err
		m.dash = msg.dash
		return m, nil

	case RefreshDataMsg:
		m.loading = true
		return m, m.loadData()
	}

	return m, nil
}

func (m *MonthlyModel) View() string {
	if m.loading {
		return "Loading monthly view..."
	}
	if m.err != nil {
		return lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("Error: %v", m.err))
	}

	s := fmt.Sprintf("  %s\n\n", titleStyle.Render(m.dash.Range.Start.Format("January 2006")))

	if m.dash.EmptyState != report.EmptyStateNone {
		return s + emptyStyle.Render("  "+emptyStateMessage(m.dash.EmptyState)) + "\n"
	}

	for _, g := range m.dash.WeekGroups {
		s += fmt.Sprintf("  %-22s %s\n", g.Label, totalStyle.Render(formatHours(g.TotalHours)))
		for _, e := range g.Entries {
			s += fmt.Sprintf("    %-10s %s\n", e.EntryDate, renderEntryLine(e))
		}
		s += "\n"
	}

	s += renderStats(m.dash.Stats)
	return s
}
