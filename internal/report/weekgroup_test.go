package report

import (
	"testing"
	"time"

	"github.com/andy/worklog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthWeekSpans_MonthStartingMidWeek(t *testing.T) {
	// Jan 1 2025 is a Wednesday: partial first week, then Monday-aligned
	// weeks, last clipped at Jan 31.
	spans := MonthWeekSpans(date(2025, time.January, 15))

	require.Len(t, spans, 5)
	assert.Equal(t, date(2025, time.January, 1), spans[0].Start)
	assert.Equal(t, date(2025, time.January, 5), spans[0].End)
	assert.Equal(t, date(2025, time.January, 6), spans[1].Start)
	assert.Equal(t, date(2025, time.January, 12), spans[1].End)
	assert.Equal(t, date(2025, time.January, 27), spans[4].Start)
	assert.Equal(t, date(2025, time.January, 31), spans[4].End)
}

func TestMonthWeekSpans_MonthStartingOnMonday(t *testing.T) {
	// Sep 1 2025 is a Monday
	spans := MonthWeekSpans(date(2025, time.September, 10))

	require.Len(t, spans, 5)
	assert.Equal(t, date(2025, time.September, 1), spans[0].Start)
	assert.Equal(t, date(2025, time.September, 7), spans[0].End)
	assert.Equal(t, date(2025, time.September, 29), spans[4].Start)
	assert.Equal(t, date(2025, time.September, 30), spans[4].End)
}

func TestMonthWeekSpans_MonthEndingOnSunday(t *testing.T) {
	// Nov 30 2025 is a Sunday: the final span is a full Monday-Sunday week
	spans := MonthWeekSpans(date(2025, time.November, 5))

	require.Len(t, spans, 5)
	last := spans[len(spans)-1]
	assert.Equal(t, date(2025, time.November, 24), last.Start)
	assert.Equal(t, date(2025, time.November, 30), last.End)
	assert.Equal(t, time.Monday, last.Start.Weekday())
	assert.Equal(t, time.Sunday, last.End.Weekday())
}

func TestMonthWeekSpans_SixWeekMonth(t *testing.T) {
	// Aug 2026 starts on a Saturday and has 31 days: six buckets, the last
	// being the single day Mon Aug 31.
	spans := MonthWeekSpans(date(2026, time.August, 1))

	require.Len(t, spans, 6)
	assert.Equal(t, date(2026, time.August, 1), spans[0].Start)
	assert.Equal(t, date(2026, time.August, 2), spans[0].End)
	assert.Equal(t, date(2026, time.August, 31), spans[5].Start)
	assert.Equal(t, date(2026, time.August, 31), spans[5].End)
}

func TestMonthWeekSpans_FourWeekMonth(t *testing.T) {
	// Feb 2027 starts on a Monday and has 28 days: exactly four full weeks
	spans := MonthWeekSpans(date(2027, time.February, 14))

	require.Len(t, spans, 4)
	for _, span := range spans {
		assert.Equal(t, time.Monday, span.Start.Weekday())
		assert.Equal(t, time.Sunday, span.End.Weekday())
	}
}

func TestGroupByWeek_NumberingAndSparseness(t *testing.T) {
	entries := []*domain.TimeEntry{
		testEntry(1, "2025-01-02", 60, 0),
		testEntry(2, "2025-01-03", 60, time.Hour),
		testEntry(3, "2025-01-07", 30, 2*time.Hour),
		testEntry(4, "2025-01-15", 90, 3*time.Hour),
		testEntry(5, "2025-01-28", 120, 4*time.Hour),
	}

	groups := GroupByWeek(entries, date(2025, time.January, 1))

	// Week 4 (Jan 20-26) has no entries and is absent
	require.Len(t, groups, 4)
	assert.Equal(t, 1, groups[0].WeekNumber)
	assert.Equal(t, 2, groups[1].WeekNumber)
	assert.Equal(t, 3, groups[2].WeekNumber)
	assert.Equal(t, 5, groups[3].WeekNumber)

	assert.Len(t, groups[0].Entries, 2)
	assert.InDelta(t, 2.0, groups[0].TotalHours, 1e-9)
	assert.InDelta(t, 0.5, groups[1].TotalHours, 1e-9)
}

func TestGroupByWeek_Labels(t *testing.T) {
	entries := []*domain.TimeEntry{
		testEntry(1, "2025-01-15", 60, 0),
	}

	groups := GroupByWeek(entries, date(2025, time.January, 1))

	require.Len(t, groups, 1)
	assert.Equal(t, "Week 3 (13–19 Jan)", groups[0].Label)
}

func TestGroupByWeek_FinalWeekClipped(t *testing.T) {
	entries := []*domain.TimeEntry{
		testEntry(1, "2025-01-31", 60, 0),
	}

	groups := GroupByWeek(entries, date(2025, time.January, 1))

	require.Len(t, groups, 1)
	g := groups[0]
	assert.Equal(t, 5, g.WeekNumber)
	assert.Equal(t, date(2025, time.January, 27), g.StartDate)
	// Never extends into February
	assert.Equal(t, date(2025, time.January, 31), g.EndDate)
}

func TestGroupByWeek_OrderingWithinWeek(t *testing.T) {
	entries := []*domain.TimeEntry{
		testEntry(1, "2025-01-14", 60, 0),
		testEntry(2, "2025-01-16", 60, time.Hour),
		testEntry(3, "2025-01-16", 60, 2*time.Hour),
	}

	groups := GroupByWeek(entries, date(2025, time.January, 1))

	require.Len(t, groups, 1)
	got := groups[0].Entries
	require.Len(t, got, 3)
	// Entry date descending, then creation timestamp descending
	assert.Equal(t, int64(3), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
	assert.Equal(t, int64(1), got[2].ID)
}

func TestGroupByWeek_Conservation(t *testing.T) {
	entries := []*domain.TimeEntry{
		testEntry(1, "2025-01-01", 17, 0),
		testEntry(2, "2025-01-12", 43, time.Minute),
		testEntry(3, "2025-01-19", 240, 2*time.Minute),
		testEntry(4, "2025-01-31", 61, 3*time.Minute),
	}

	groups := GroupByWeek(entries, date(2025, time.January, 1))

	bucketed := 0
	var bucketHours float64
	for _, g := range groups {
		bucketed += len(g.Entries)
		bucketHours += g.TotalHours
	}

	assert.Equal(t, len(entries), bucketed)
	assert.InDelta(t, float64(totalMinutes(entries)), bucketHours*60, 1e-6)
}

func TestGroupByWeek_EmptyInput(t *testing.T) {
	groups := GroupByWeek(nil, date(2025, time.January, 1))
	assert.Empty(t, groups)
}
