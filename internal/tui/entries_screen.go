package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/andy/worklog/internal/app"
	"github.com/andy/worklog/internal/domain"
	"github.com/andy/worklog/internal/report"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// EntriesModel is a flat, scrollable list of this month's entries
type EntriesModel struct {
	app *app.App

	entries []*domain.TimeEntry
	cursor  int
	loading bool
	err     error
}

type entriesDataMsg struct {
	entries []*domain.TimeEntry
	err     error
}

// NewEntriesModel creates a new entries model
func NewEntriesModel(a *app.App) tea.Model {
	return &EntriesModel{app: a, loading: true}
}

func (m *EntriesModel) Init() tea.Cmd {
	return m.loadData()
}

func (m *EntriesModel) loadData() tea.Cmd {
	return func() tea.Msg {
		r := report.ResolveRange(report.PeriodMonth, time.Now())
		entries, err := m.app.EntryRepo.ListForRange(
			context.Background(), m.app.CurrentUser.ID,
			r.Start.Format(domain.DateLayout), r.End.Format(domain.DateLayout), nil)
		return entriesDataMsg{entries: entries, err: err}
	}
}

func (m *EntriesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case entriesDataMsg:
		m.loading = false
		m.err = msg.err
		m.entries = msg.entries
		if m.cursor >= len(m.entries) {
			m.cursor = 0
		}
		return m, nil

	case RefreshDataMsg:
		m.loading = true
		return m, m.loadData()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, DefaultKeyMap.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, DefaultKeyMap.Down):
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		}
	}

	return m, nil
}

func (m *EntriesModel) View() string {
	if m.loading {
		return "Loading entries..."
	}
	if m.err != nil {
		return lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("Error: %v", m.err))
	}

	s := fmt.Sprintf("  %s\n\n", titleStyle.Render("This Month's Entries"))

	if len(m.entries) == 0 {
		return s + subtitleStyle.Render("  No entries this month") + "\n"
	}

	// Keep the cursor visible inside a fixed window
	const window = 12
	start := 0
	if m.cursor >= window {
		start = m.cursor - window + 1
	}
	end := start + window
	if end > len(m.entries) {
		end = len(m.entries)
	}

	for i := start; i < end; i++ {
		e := m.entries[i]
		prefix := "  "
		if i == m.cursor {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%-10s %s", prefix, e.EntryDate, renderEntryLine(e))
		if i == m.cursor {
			line = titleStyle.Render(line)
		}
		s += line + "\n"
	}

	s += fmt.Sprintf("\n  %d entries\n", len(m.entries))
	return s
}
