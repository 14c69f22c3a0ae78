package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/andy/worklog/internal/app"
	"github.com/andy/worklog/internal/domain"
	"github.com/andy/worklog/internal/report"
	"github.com/andy/worklog/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DashboardModel shows the current user's entries grouped by day, with a
// period switch, a client filter, and free-text search.
type DashboardModel struct {
	app *app.App

	period      report.Period
	clients     []*domain.Client
	clientIdx   int // 0 = no filter, otherwise clients[clientIdx-1]
	searchInput textinput.Model
	searching   bool

	dash    *service.Dashboard
	loading bool
	err     error
}

type dashboardDataMsg struct {
	dash    *service.Dashboard
	clients []*domain.Client
	err     error
}

// NewDashboardModel creates a new dashboard model
func NewDashboardModel(a *app.App) tea.Model {
	ti := textinput.New()
	ti.Placeholder = "search entries..."
	ti.CharLimit = 64
	ti.Width = 32

	return &DashboardModel{
		app:         a,
		period:      report.PeriodToday,
		searchInput: ti,
		loading:     true,
	}
}

func (m *DashboardModel) Init() tea.Cmd {
	return m.loadData()
}

// IsCapturingInput reports whether the search box has focus
func (m *DashboardModel) IsCapturingInput() bool {
	return m.searching
}

func (m *DashboardModel) filterState() domain.FilterState {
	f := domain.FilterState{SearchQuery: m.searchInput.Value()}
	if m.clientIdx > 0 && m.clientIdx <= len(m.clients) {
		f.ClientID = &m.clients[m.clientIdx-1].ID
	}
	return f
}

func (m *DashboardModel) loadData() tea.Cmd {
	period := m.period
	filter := m.filterState()
	return func() tea.Msg {
		ctx := context.Background()
		msg := dashboardDataMsg{}

		clients, err := m.app.ClientRepo.List(ctx, false)
		if err != nil {
			msg.err = fmt.Errorf("clients: %w", err)
			return msg
		}
		msg.clients = clients

		dash, err := m.app.DashboardService.GetDashboard(
			ctx, m.app.CurrentUser.ID, period, filter, time.Now())
		if err != nil {
			msg.err = fmt.Errorf("dashboard: %w", err)
			return msg
		}
		msg.dash = dash

		return msg
	}
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardDataMsg:
		m.loading = false
		m.err = msg.err
		m.dash = msg.dash
		if msg.clients != nil {
			m.clients = msg.clients
			if m.clientIdx > len(m.clients) {
				m.clientIdx = 0
			}
		}
		return m, nil

	case RefreshDataMsg:
		m.loading = true
		return m, m.loadData()

	case tea.KeyMsg:
		if m.searching {
			switch msg.Type {
			case tea.KeyEnter:
				m.searching = false
				m.searchInput.Blur()
				m.loading = true
				return m, m.loadData()
			case tea.KeyEsc:
				m.searching = false
				m.searchInput.Blur()
				m.searchInput.SetValue("")
				m.loading = true
				return m, m.loadData()
			}
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			return m, cmd
		}

		switch {
		case key.Matches(msg, DefaultKeyMap.Period):
			m.period = nextPeriod(m.period)
			m.loading = true
			return m, m.loadData()

		case key.Matches(msg, DefaultKeyMap.ClientFilter):
			m.clientIdx = (m.clientIdx + 1) % (len(m.clients) + 1)
			m.loading = true
			return m, m.loadData()

		case key.Matches(msg, DefaultKeyMap.Search):
			m.searching = true
			return m, m.searchInput.Focus()

		case key.Matches(msg, DefaultKeyMap.Back):
			if m.searchInput.Value() != "" || m.clientIdx != 0 {
				m.searchInput.SetValue("")
				m.clientIdx = 0
				m.loading = true
				return m, m.loadData()
			}
		}
	}

	return m, nil
}

func (m *DashboardModel) View() string {
	if m.loading {
		return "Loading dashboard..."
	}
	if m.err != nil {
		return lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("Error: %v", m.err))
	}

	s := m.renderFilterBar()

	if m.dash.EmptyState != report.EmptyStateNone {
		return s + "\n" + emptyStyle.Render("  "+emptyStateMessage(m.dash.EmptyState)) + "\n"
	}

	s += "\n" + m.renderGroups()
	s += "\n" + renderStats(m.dash.Stats)
	return s
}

func (m *DashboardModel) renderFilterBar() string {
	bar := fmt.Sprintf("  Period: %s (%s – %s)",
		titleStyle.Render(m.period.String()),
		m.dash.Range.Start.Format("2 Jan"),
		m.dash.Range.End.Format("2 Jan"))

	if m.clientIdx > 0 && m.clientIdx <= len(m.clients) {
		bar += fmt.Sprintf("   Client: %s", m.clients[m.clientIdx-1].Name)
	}

	if m.searching {
		bar += "\n  Search: " + m.searchInput.View()
	} else if q := m.searchInput.Value(); q != "" {
		bar += fmt.Sprintf("   Search: %q", q)
	}

	return bar + "\n"
}

func (m *DashboardModel) renderGroups() string {
	var s string
	for _, g := range m.dash.Groups {
		if len(g.Entries) == 0 {
			s += subtitleStyle.Render(fmt.Sprintf("  %-12s –", g.Date.Format("Mon 2 Jan"))) + "\n"
			continue
		}
		s += fmt.Sprintf("  %-12s %s\n",
			g.Date.Format("Mon 2 Jan"),
			totalStyle.Render(formatHours(g.TotalHours)))
		for _, e := range g.Entries {
			s += "    " + renderEntryLine(e) + "\n"
		}
	}
	return s
}

func renderEntryLine(e *domain.TimeEntry) string {
	desc := e.JobName
	if e.ClientName != "" {
		desc = e.ClientName + " / " + desc
	}
	if e.ServiceName != "" {
		desc += " · " + e.ServiceName
	}
	line := fmt.Sprintf("%-46s %6s", truncateStr(desc, 46), formatHours(e.Hours()))
	if e.Notes != "" {
		line += subtitleStyle.Render("  " + truncateStr(e.Notes, 24))
	}
	return line
}

func renderStats(stats report.DashboardStats) string {
	s := fmt.Sprintf("  Total: %s across %d entries\n",
		totalStyle.Render(formatHours(stats.TotalHours)), stats.EntryCount)

	if stats.TopClient != nil {
		s += fmt.Sprintf("  Top client: %s (%s)\n",
			stats.TopClient.Name, formatHours(stats.TopClient.Hours))
	}
	if stats.DaysWithEntries != nil {
		s += fmt.Sprintf("  Days with entries: %d", *stats.DaysWithEntries)
		if stats.AveragePerDay != nil {
			s += fmt.Sprintf(" (avg %s/day)", formatHours(*stats.AveragePerDay))
		}
		s += "\n"
	}
	if stats.WeeksInMonth != nil && stats.AveragePerWeek != nil {
		s += fmt.Sprintf("  Weekly average: %s over %d weeks\n",
			formatHours(*stats.AveragePerWeek), *stats.WeeksInMonth)
	}
	return s
}

func emptyStateMessage(s report.EmptyState) string {
	switch s {
	case report.EmptyStateCombined:
		return "No entries match your search and client filter."
	case report.EmptyStateSearch:
		return "No entries match your search."
	case report.EmptyStateFilter:
		return "No entries for this client in this period."
	case report.EmptyStateFirstTime:
		return "Welcome! Press e to log your first entry."
	default:
		return "No entries for this period."
	}
}

func nextPeriod(p report.Period) report.Period {
	switch p {
	case report.PeriodToday:
		return report.PeriodWeek
	case report.PeriodWeek:
		return report.PeriodMonth
	default:
		return report.PeriodToday
	}
}
