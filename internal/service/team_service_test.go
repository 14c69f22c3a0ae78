package service

import (
	"context"
	"testing"
	"time"

	"github.com/andy/worklog/internal/domain"
	"github.com/andy/worklog/internal/report"
)

type mockUserRepo struct {
	users []*domain.User
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error { return nil }
func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return nil, nil
}
func (m *mockUserRepo) GetByName(ctx context.Context, name string) (*domain.User, error) {
	return nil, nil
}
func (m *mockUserRepo) List(ctx context.Context, activeOnly bool) ([]*domain.User, error) {
	return m.users, nil
}

func teamEntry(userID int64, entryDate string, minutes int) *domain.TimeEntry {
	return &domain.TimeEntry{
		UserID:          userID,
		JobID:           1,
		ServiceID:       1,
		EntryDate:       entryDate,
		DurationMinutes: minutes,
		CreatedAt:       time.Now(),
	}
}

func TestGetCompliance_PartialTeam(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)

	users := &mockUserRepo{users: []*domain.User{
		{ID: 1, Name: "Alice", IsActive: true},
		{ID: 2, Name: "Bob", IsActive: true},
		{ID: 3, Name: "Carol", IsActive: true},
		{ID: 4, Name: "Dave", IsActive: true},
	}}
	entries := &mockEntryRepo{entries: []*domain.TimeEntry{
		teamEntry(1, "2025-01-14", 120),
		teamEntry(1, "2025-01-15", 60),
		teamEntry(2, "2025-01-13", 240),
		teamEntry(7, "2025-01-13", 60), // not an active member, ignored
	}}

	svc := NewTeamService(entries, users)
	result, err := svc.GetCompliance(ctx, report.PeriodWeek, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Compliance.TeamSize != 4 {
		t.Fatalf("expected team size 4, got %d", result.Compliance.TeamSize)
	}
	if result.Compliance.MembersLogged != 2 {
		t.Fatalf("expected 2 members logged, got %d", result.Compliance.MembersLogged)
	}
	if result.Compliance.Rate != 0.5 {
		t.Fatalf("expected rate 0.5, got %v", result.Compliance.Rate)
	}

	if len(result.Members) != 4 {
		t.Fatalf("expected 4 member rows, got %d", len(result.Members))
	}
	if !result.Members[0].HasLogged || result.Members[0].Hours != 3.0 {
		t.Fatalf("expected Alice logged 3.0 hours, got %+v", result.Members[0])
	}
	if result.Members[2].HasLogged {
		t.Fatalf("expected Carol not logged")
	}
}

func TestGetCompliance_EmptyTeam(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)

	svc := NewTeamService(&mockEntryRepo{}, &mockUserRepo{})
	result, err := svc.GetCompliance(ctx, report.PeriodMonth, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Compliance.TeamSize != 0 || result.Compliance.Rate != 0 {
		t.Fatalf("expected zero team and rate, got %+v", result.Compliance)
	}
}
