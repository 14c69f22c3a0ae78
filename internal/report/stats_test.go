package report

import (
	"testing"
	"time"

	"github.com/andy/worklog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clientEntry(id int64, entryDate string, minutes int, clientID int64, clientName string) *domain.TimeEntry {
	e := testEntry(id, entryDate, minutes, time.Duration(id)*time.Minute)
	e.ClientID = clientID
	e.ClientName = clientName
	return e
}

func TestComputeStats_Totals(t *testing.T) {
	entries := []*domain.TimeEntry{
		clientEntry(1, "2025-01-13", 90, 1, "ACME"),
		clientEntry(2, "2025-01-14", 30, 1, "ACME"),
	}

	stats := ComputeStats(entries, PeriodToday, date(2025, time.January, 14))

	assert.Equal(t, 2, stats.EntryCount)
	assert.InDelta(t, 2.0, stats.TotalHours, 1e-9)
	// Day and week stats are not applicable for Today
	assert.Nil(t, stats.DaysWithEntries)
	assert.Nil(t, stats.AveragePerDay)
	assert.Nil(t, stats.WeeksInMonth)
	assert.Nil(t, stats.AveragePerWeek)
}

func TestComputeStats_TopClient(t *testing.T) {
	entries := []*domain.TimeEntry{
		clientEntry(1, "2025-01-13", 60, 1, "ACME"),
		clientEntry(2, "2025-01-13", 120, 2, "Globex"),
		clientEntry(3, "2025-01-14", 30, 1, "ACME"),
	}

	stats := ComputeStats(entries, PeriodWeek, date(2025, time.January, 15))

	require.NotNil(t, stats.TopClient)
	assert.Equal(t, int64(2), stats.TopClient.ID)
	assert.Equal(t, "Globex", stats.TopClient.Name)
	assert.InDelta(t, 2.0, stats.TopClient.Hours, 1e-9)
}

func TestComputeStats_TopClientTieBreak(t *testing.T) {
	// Equal hours: lexicographically smaller name wins, regardless of
	// input order.
	entries := []*domain.TimeEntry{
		clientEntry(1, "2025-01-13", 60, 2, "Globex"),
		clientEntry(2, "2025-01-13", 60, 1, "ACME"),
	}

	stats := ComputeStats(entries, PeriodWeek, date(2025, time.January, 15))

	require.NotNil(t, stats.TopClient)
	assert.Equal(t, "ACME", stats.TopClient.Name)
}

func TestComputeStats_MissingClientDenormalization(t *testing.T) {
	// An entry without client info still counts toward totals but cannot
	// contribute a top client.
	entries := []*domain.TimeEntry{
		clientEntry(1, "2025-01-13", 60, 0, ""),
	}

	stats := ComputeStats(entries, PeriodWeek, date(2025, time.January, 15))

	assert.InDelta(t, 1.0, stats.TotalHours, 1e-9)
	assert.Nil(t, stats.TopClient)
}

func TestComputeStats_WeekAverages(t *testing.T) {
	entries := []*domain.TimeEntry{
		clientEntry(1, "2025-01-13", 240, 1, "ACME"),
		clientEntry(2, "2025-01-13", 60, 1, "ACME"),
		clientEntry(3, "2025-01-15", 180, 1, "ACME"),
	}

	stats := ComputeStats(entries, PeriodWeek, date(2025, time.January, 15))

	require.NotNil(t, stats.DaysWithEntries)
	assert.Equal(t, 2, *stats.DaysWithEntries)
	require.NotNil(t, stats.AveragePerDay)
	assert.InDelta(t, 4.0, *stats.AveragePerDay, 1e-9) // 8h over 2 days
}

func TestComputeStats_MonthAverages(t *testing.T) {
	entries := []*domain.TimeEntry{
		clientEntry(1, "2025-01-13", 300, 1, "ACME"),
	}

	stats := ComputeStats(entries, PeriodMonth, date(2025, time.January, 15))

	require.NotNil(t, stats.WeeksInMonth)
	assert.Equal(t, 5, *stats.WeeksInMonth) // Jan 2025 spans 5 week buckets
	require.NotNil(t, stats.AveragePerWeek)
	assert.InDelta(t, 1.0, *stats.AveragePerWeek, 1e-9)
}

func TestComputeStats_ZeroDenominatorGuards(t *testing.T) {
	stats := ComputeStats(nil, PeriodWeek, date(2025, time.January, 15))

	require.NotNil(t, stats.DaysWithEntries)
	assert.Equal(t, 0, *stats.DaysWithEntries)
	// Never NaN: the average is simply absent
	assert.Nil(t, stats.AveragePerDay)

	stats = ComputeStats(nil, PeriodMonth, date(2025, time.January, 15))
	assert.Nil(t, stats.AveragePerDay)
	require.NotNil(t, stats.WeeksInMonth)
	require.NotNil(t, stats.AveragePerWeek) // weeks > 0 for any real month
	assert.Zero(t, *stats.AveragePerWeek)
}
