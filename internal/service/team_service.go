package service

import (
	"context"
	"fmt"
	"time"

	"github.com/andy/worklog/internal/domain"
	"github.com/andy/worklog/internal/report"
	"github.com/andy/worklog/internal/repository"
)

// MemberStatus is one team member's row in the compliance view
type MemberStatus struct {
	User      *domain.User
	HasLogged bool
	Hours     float64
}

// TeamCompliance pairs the aggregate rate with per-member detail
type TeamCompliance struct {
	Period     report.Period
	Range      report.DateRange
	Compliance report.Compliance
	Members    []MemberStatus
}

// TeamService reports on team-wide logging activity
type TeamService interface {
	// GetCompliance computes how many active team members logged at least
	// one entry in the period.
	GetCompliance(ctx context.Context, period report.Period, now time.Time) (*TeamCompliance, error)
}

type teamService struct {
	entryRepo repository.TimeEntryRepository
	userRepo  repository.UserRepository
}

// NewTeamService creates a new team service
func NewTeamService(entryRepo repository.TimeEntryRepository, userRepo repository.UserRepository) TeamService {
	return &teamService{entryRepo: entryRepo, userRepo: userRepo}
}

func (s *teamService) GetCompliance(ctx context.Context, period report.Period, now time.Time) (*TeamCompliance, error) {
	users, err := s.userRepo.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}

	dateRange := report.ResolveRange(period, now)
	start := dateRange.Start.Format(domain.DateLayout)
	end := dateRange.End.Format(domain.DateLayout)

	entries, err := s.entryRepo.ListTeamForRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load team entries: %w", err)
	}

	memberIDs := make([]int64, len(users))
	minutesByUser := make(map[int64]int)
	for i, u := range users {
		memberIDs[i] = u.ID
	}
	for _, e := range entries {
		minutesByUser[e.UserID] += e.DurationMinutes
	}

	result := &TeamCompliance{
		Period:     period,
		Range:      dateRange,
		Compliance: report.ComputeCompliance(memberIDs, entries),
	}

	for _, u := range users {
		minutes := minutesByUser[u.ID]
		result.Members = append(result.Members, MemberStatus{
			User:      u,
			HasLogged: minutes > 0,
			Hours:     float64(minutes) / 60.0,
		})
	}

	return result, nil
}
