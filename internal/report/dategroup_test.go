package report

import (
	"testing"
	"time"

	"github.com/andy/worklog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testEntry builds a minimal entry for grouping tests. createdOffset spaces
// creation timestamps apart so intra-day ordering is observable.
func testEntry(id int64, entryDate string, minutes int, createdOffset time.Duration) *domain.TimeEntry {
	base := time.Date(2025, time.January, 1, 9, 0, 0, 0, time.UTC)
	return &domain.TimeEntry{
		ID:              id,
		UserID:          1,
		JobID:           1,
		ServiceID:       1,
		EntryDate:       entryDate,
		DurationMinutes: minutes,
		CreatedAt:       base.Add(createdOffset),
	}
}

func totalMinutes(entries []*domain.TimeEntry) int {
	total := 0
	for _, e := range entries {
		total += e.DurationMinutes
	}
	return total
}

func TestGroupByDate_Sparse(t *testing.T) {
	entries := []*domain.TimeEntry{
		testEntry(1, "2025-01-13", 60, 0),
		testEntry(2, "2025-01-15", 90, time.Hour),
		testEntry(3, "2025-01-15", 30, 2*time.Hour),
	}

	groups := GroupByDate(entries, PeriodWeek, date(2025, time.January, 15), false)

	require.Len(t, groups, 2)
	// Most recent date first
	assert.Equal(t, date(2025, time.January, 15), groups[0].Date)
	assert.Equal(t, date(2025, time.January, 13), groups[1].Date)

	// Within a bucket, most recently created first
	require.Len(t, groups[0].Entries, 2)
	assert.Equal(t, int64(3), groups[0].Entries[0].ID)
	assert.Equal(t, int64(2), groups[0].Entries[1].ID)

	assert.InDelta(t, 2.0, groups[0].TotalHours, 1e-9)
	assert.InDelta(t, 1.0, groups[1].TotalHours, 1e-9)
}

func TestGroupByDate_PaddingWeek(t *testing.T) {
	// Jan 15 2025 is a Wednesday; padding the week yields exactly 7 buckets
	// spanning Jan 13-19, six of them empty.
	entries := []*domain.TimeEntry{
		testEntry(1, "2025-01-15", 120, 0),
	}

	groups := GroupByDate(entries, PeriodWeek, date(2025, time.January, 15), true)

	require.Len(t, groups, 7)
	assert.Equal(t, date(2025, time.January, 19), groups[0].Date)
	assert.Equal(t, date(2025, time.January, 13), groups[6].Date)

	emptyCount := 0
	for _, g := range groups {
		if len(g.Entries) == 0 {
			emptyCount++
			assert.Zero(t, g.TotalHours)
		}
	}
	assert.Equal(t, 6, emptyCount)
}

func TestGroupByDate_PaddingCrossYear(t *testing.T) {
	groups := GroupByDate(nil, PeriodWeek, date(2025, time.December, 31), true)

	require.Len(t, groups, 7)
	var dates []time.Time
	for _, g := range groups {
		dates = append(dates, g.Date)
	}
	assert.Contains(t, dates, date(2025, time.December, 29))
	assert.Contains(t, dates, date(2026, time.January, 4))
}

func TestGroupByDate_TodayNeverPads(t *testing.T) {
	groups := GroupByDate(nil, PeriodToday, date(2025, time.January, 15), true)
	assert.Empty(t, groups)
}

func TestGroupByDate_EmptyInput(t *testing.T) {
	groups := GroupByDate(nil, PeriodWeek, date(2025, time.January, 15), false)
	assert.Empty(t, groups)
}

func TestGroupByDate_PaddingFullMonth(t *testing.T) {
	groups := GroupByDate(nil, PeriodMonth, date(2025, time.January, 15), true)

	require.Len(t, groups, 31)
	for _, g := range groups {
		assert.Empty(t, g.Entries)
		assert.Zero(t, g.TotalHours)
	}
}

func TestGroupByDate_Conservation(t *testing.T) {
	entries := []*domain.TimeEntry{
		testEntry(1, "2025-01-13", 45, 0),
		testEntry(2, "2025-01-14", 75, time.Minute),
		testEntry(3, "2025-01-14", 15, 2*time.Minute),
		testEntry(4, "2025-01-17", 480, 3*time.Minute),
	}

	groups := GroupByDate(entries, PeriodWeek, date(2025, time.January, 15), true)

	bucketed := 0
	var bucketHours float64
	for _, g := range groups {
		bucketed += len(g.Entries)
		bucketHours += g.TotalHours
	}

	assert.Equal(t, len(entries), bucketed)
	assert.InDelta(t, float64(totalMinutes(entries)), bucketHours*60, 1e-6)
}
