package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/andy/worklog/internal/app"
	"github.com/andy/worklog/internal/report"
	"github.com/andy/worklog/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TeamModel shows who on the team has logged time this period
type TeamModel struct {
	app *app.App

	period  report.Period
	result  *service.TeamCompliance
	loading bool
	err     error
}

type teamDataMsg struct {
	result *service.TeamCompliance
	err    error
}

// NewTeamModel creates a new team model
func NewTeamModel(a *app.App) tea.Model {
	return &TeamModel{app: a, period: report.PeriodWeek, loading: true}
}

func (m *TeamModel) Init() tea.Cmd {
	return m.loadData()
}

func (m *TeamModel) loadData() tea.Cmd {
	period := m.period
	return func() tea.Msg {
		result, err := m.app.TeamService.GetCompliance(context.Background(), period, time.Now())
		return teamDataMsg{result: result, err: err}
	}
}

func (m *TeamModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case teamDataMsg:
		m.loading = false
		m.err = msg.err
		m.result = msg.result
		return m, nil

	case RefreshDataMsg:
		m.loading = true
		return m, m.loadData()

	case tea.KeyMsg:
		if key.Matches(msg, DefaultKeyMap.Period) {
			m.period = nextPeriod(m.period)
			m.loading = true
			return m, m.loadData()
		}
	}

	return m, nil
}

func (m *TeamModel) View() string {
	if m.loading {
		return "Loading team view..."
	}
	if m.err != nil {
		return lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("Error: %v", m.err))
	}

	s := fmt.Sprintf("  %s (%s – %s)\n\n",
		titleStyle.Render("Team Compliance: "+m.result.Period.String()),
		m.result.Range.Start.Format("2 Jan"),
		m.result.Range.End.Format("2 Jan"))

	if m.result.Compliance.TeamSize == 0 {
		return s + subtitleStyle.Render("  No active team members") + "\n"
	}

	for _, member := range m.result.Members {
		mark := subtitleStyle.Render("✗")
		hours := subtitleStyle.Render("–")
		if member.HasLogged {
			mark = loggedStyle.Render("✓")
			hours = formatHours(member.Hours)
		}
		s += fmt.Sprintf("  %s %-25s %8s\n", mark, truncateStr(member.User.Name, 25), hours)
	}

	s += fmt.Sprintf("\n  %d of %d members logged time (%.0f%%)\n",
		m.result.Compliance.MembersLogged,
		m.result.Compliance.TeamSize,
		m.result.Compliance.Rate*100)
	return s
}
