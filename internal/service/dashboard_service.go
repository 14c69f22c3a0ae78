package service

import (
	"context"
	"fmt"
	"time"

	"github.com/andy/worklog/internal/domain"
	"github.com/andy/worklog/internal/report"
	"github.com/andy/worklog/internal/repository"
)

// Dashboard is everything one dashboard render needs: the grouped entry
// list, the summary stats beside it, and the empty-state classification
// when there is nothing to show. WeekGroups is populated for the Month
// period only.
type Dashboard struct {
	Period     report.Period
	Range      report.DateRange
	Groups     []report.EntryGroup
	WeekGroups []report.WeekGroup
	Stats      report.DashboardStats
	EmptyState report.EmptyState
}

// DashboardService assembles period dashboards for a single user
type DashboardService interface {
	// GetDashboard loads the user's entries for the period, applies the
	// filters, and runs the aggregation engine over the result.
	GetDashboard(ctx context.Context, userID int64, period report.Period, filter domain.FilterState, now time.Time) (*Dashboard, error)
}

type dashboardService struct {
	entryRepo repository.TimeEntryRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(entryRepo repository.TimeEntryRepository) DashboardService {
	return &dashboardService{entryRepo: entryRepo}
}

func (s *dashboardService) GetDashboard(
	ctx context.Context,
	userID int64,
	period report.Period,
	filter domain.FilterState,
	now time.Time,
) (*Dashboard, error) {
	dateRange := report.ResolveRange(period, now)
	start := dateRange.Start.Format(domain.DateLayout)
	end := dateRange.End.Format(domain.DateLayout)

	// The client filter is pushed into the query; search runs in memory
	// over the denormalized names.
	entries, err := s.entryRepo.ListForRange(ctx, userID, start, end, filter.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	entries = report.ApplySearch(entries, filter.SearchQuery)

	dash := &Dashboard{
		Period: period,
		Range:  dateRange,
		Groups: report.GroupByDate(entries, period, now, true),
		Stats:  report.ComputeStats(entries, period, now),
	}

	if period == report.PeriodMonth {
		dash.WeekGroups = report.GroupByWeek(entries, now)
	}

	hasSearch := report.SearchActive(filter.SearchQuery)
	hasFilter := filter.HasClientFilter()

	// The all-time existence check costs a query, so it runs only when the
	// classification could actually come out as first-time.
	isFirstTime := false
	if len(entries) == 0 && !hasSearch && !hasFilter {
		hasAny, err := s.entryRepo.HasAnyForUser(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to check for existing entries: %w", err)
		}
		isFirstTime = !hasAny
	}

	dash.EmptyState = report.ClassifyEmptyState(len(entries), hasSearch, hasFilter, isFirstTime)

	return dash, nil
}
