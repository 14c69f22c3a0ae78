package service

import (
	"context"
	"testing"
	"time"

	"github.com/andy/worklog/internal/domain"
	"github.com/andy/worklog/internal/report"
)

// mock implementations
type mockEntryRepo struct {
	entries      []*domain.TimeEntry
	hasAny       bool
	hasAnyCalled bool

	lastStart    string
	lastEnd      string
	lastClientID *int64
}

func (m *mockEntryRepo) Create(ctx context.Context, entry *domain.TimeEntry) error { return nil }
func (m *mockEntryRepo) GetByID(ctx context.Context, id int64) (*domain.TimeEntry, error) {
	return nil, nil
}
func (m *mockEntryRepo) Update(ctx context.Context, entry *domain.TimeEntry, reason string) error {
	return nil
}
func (m *mockEntryRepo) SoftDelete(ctx context.Context, id int64, reason string) error { return nil }
func (m *mockEntryRepo) ListForRange(ctx context.Context, userID int64, start, end string, clientID *int64) ([]*domain.TimeEntry, error) {
	m.lastStart = start
	m.lastEnd = end
	m.lastClientID = clientID

	out := make([]*domain.TimeEntry, 0)
	for _, e := range m.entries {
		if e.UserID != userID || e.EntryDate < start || e.EntryDate > end {
			continue
		}
		if clientID != nil && e.ClientID != *clientID {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}
func (m *mockEntryRepo) ListTeamForRange(ctx context.Context, start, end string) ([]*domain.TimeEntry, error) {
	out := make([]*domain.TimeEntry, 0)
	for _, e := range m.entries {
		if e.EntryDate >= start && e.EntryDate <= end {
			out = append(out, e)
		}
	}
	return out, nil
}
func (m *mockEntryRepo) HasAnyForUser(ctx context.Context, userID int64) (bool, error) {
	m.hasAnyCalled = true
	return m.hasAny, nil
}
func (m *mockEntryRepo) GetHistory(ctx context.Context, entryID int64) ([]*domain.EntryHistory, error) {
	return nil, nil
}

func dashEntry(id int64, entryDate string, minutes int, clientID int64, clientName string) *domain.TimeEntry {
	return &domain.TimeEntry{
		ID:              id,
		UserID:          1,
		JobID:           1,
		ServiceID:       1,
		ClientID:        clientID,
		ClientName:      clientName,
		JobName:         "Redesign",
		EntryDate:       entryDate,
		DurationMinutes: minutes,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
}

func TestGetDashboard_WeekWithEntries(t *testing.T) {
	ctx := context.Background()
	// Wednesday Jan 15 2025; the week runs Jan 13 through Jan 19
	now := time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)

	repo := &mockEntryRepo{entries: []*domain.TimeEntry{
		dashEntry(1, "2025-01-13", 120, 1, "ACME"),
		dashEntry(2, "2025-01-15", 60, 1, "ACME"),
		dashEntry(3, "2025-01-10", 480, 1, "ACME"), // previous week, excluded
	}}

	svc := NewDashboardService(repo)
	dash, err := svc.GetDashboard(ctx, 1, report.PeriodWeek, domain.FilterState{}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.lastStart != "2025-01-13" || repo.lastEnd != "2025-01-19" {
		t.Fatalf("expected range 2025-01-13..2025-01-19, got %s..%s", repo.lastStart, repo.lastEnd)
	}

	if dash.Stats.EntryCount != 2 {
		t.Fatalf("expected 2 entries, got %d", dash.Stats.EntryCount)
	}
	if dash.Stats.TotalHours != 3.0 {
		t.Fatalf("expected 3.0 total hours, got %v", dash.Stats.TotalHours)
	}

	// Week view pads to a full seven days
	if len(dash.Groups) != 7 {
		t.Fatalf("expected 7 date groups, got %d", len(dash.Groups))
	}
	if dash.WeekGroups != nil {
		t.Fatalf("expected no week groups outside Month period")
	}
	if dash.EmptyState != report.EmptyStateNone {
		t.Fatalf("expected no empty state, got %v", dash.EmptyState)
	}
	if repo.hasAnyCalled {
		t.Fatalf("first-time check should not run when results exist")
	}
}

func TestGetDashboard_MonthBuildsWeekGroups(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)

	repo := &mockEntryRepo{entries: []*domain.TimeEntry{
		dashEntry(1, "2025-01-02", 60, 1, "ACME"),
		dashEntry(2, "2025-01-15", 90, 1, "ACME"),
	}}

	svc := NewDashboardService(repo)
	dash, err := svc.GetDashboard(ctx, 1, report.PeriodMonth, domain.FilterState{}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Jan 2 is week 1, Jan 15 is week 3; empty weeks are omitted
	if len(dash.WeekGroups) != 2 {
		t.Fatalf("expected 2 week groups, got %d", len(dash.WeekGroups))
	}
	if dash.WeekGroups[0].WeekNumber != 1 || dash.WeekGroups[1].WeekNumber != 3 {
		t.Fatalf("expected weeks 1 and 3, got %d and %d",
			dash.WeekGroups[0].WeekNumber, dash.WeekGroups[1].WeekNumber)
	}

	// The padded date view still covers all 31 days
	if len(dash.Groups) != 31 {
		t.Fatalf("expected 31 date groups, got %d", len(dash.Groups))
	}
}

func TestGetDashboard_ClientFilterPushedToQuery(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)

	repo := &mockEntryRepo{entries: []*domain.TimeEntry{
		dashEntry(1, "2025-01-15", 60, 1, "ACME"),
		dashEntry(2, "2025-01-15", 60, 2, "Globex"),
	}}

	clientID := int64(2)
	svc := NewDashboardService(repo)
	dash, err := svc.GetDashboard(ctx, 1, report.PeriodWeek, domain.FilterState{ClientID: &clientID}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.lastClientID == nil || *repo.lastClientID != 2 {
		t.Fatalf("expected client filter 2 passed to repository")
	}
	if dash.Stats.EntryCount != 1 {
		t.Fatalf("expected 1 entry after filter, got %d", dash.Stats.EntryCount)
	}
	if dash.Stats.TopClient == nil || dash.Stats.TopClient.Name != "Globex" {
		t.Fatalf("expected top client Globex, got %+v", dash.Stats.TopClient)
	}
}

func TestGetDashboard_SearchNarrowsResults(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)

	repo := &mockEntryRepo{entries: []*domain.TimeEntry{
		dashEntry(1, "2025-01-15", 60, 1, "ACME"),
		dashEntry(2, "2025-01-15", 60, 2, "Globex"),
	}}

	svc := NewDashboardService(repo)
	dash, err := svc.GetDashboard(ctx, 1, report.PeriodWeek, domain.FilterState{SearchQuery: "glob"}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if dash.Stats.EntryCount != 1 {
		t.Fatalf("expected 1 entry matching search, got %d", dash.Stats.EntryCount)
	}
}

func TestGetDashboard_EmptyStates(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)
	clientID := int64(9)

	tests := []struct {
		name    string
		filter  domain.FilterState
		hasAny  bool
		want    report.EmptyState
		checked bool // whether the first-time query should run
	}{
		{"search only", domain.FilterState{SearchQuery: "nothing"}, true, report.EmptyStateSearch, false},
		{"filter only", domain.FilterState{ClientID: &clientID}, true, report.EmptyStateFilter, false},
		{"search and filter", domain.FilterState{ClientID: &clientID, SearchQuery: "nothing"}, true, report.EmptyStateCombined, false},
		{"first time", domain.FilterState{}, false, report.EmptyStateFirstTime, true},
		{"empty period", domain.FilterState{}, true, report.EmptyStatePeriod, true},
		{"short query is not a search", domain.FilterState{SearchQuery: "x"}, true, report.EmptyStatePeriod, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockEntryRepo{hasAny: tt.hasAny}
			svc := NewDashboardService(repo)

			dash, err := svc.GetDashboard(ctx, 1, report.PeriodToday, tt.filter, now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if dash.EmptyState != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, dash.EmptyState)
			}
			if repo.hasAnyCalled != tt.checked {
				t.Fatalf("expected hasAnyCalled=%v, got %v", tt.checked, repo.hasAnyCalled)
			}
		})
	}
}
