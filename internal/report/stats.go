package report

import (
	"time"

	"github.com/andy/worklog/internal/domain"
)

// TopClient is the client with the most logged hours in the period
type TopClient struct {
	ID    int64
	Name  string
	Hours float64
}

// DashboardStats are the period-level summary numbers shown next to the
// grouped list. Pointer fields are populated only for periods where they
// are meaningful: day stats for Week and Month, week stats for Month only.
// Nil means "not applicable", never zero.
type DashboardStats struct {
	TotalHours float64
	EntryCount int

	TopClient *TopClient

	DaysWithEntries *int
	AveragePerDay   *float64

	WeeksInMonth   *int
	AveragePerWeek *float64
}

// ComputeStats aggregates the same entry collection the groupers consume,
// so stats rendered beside a filtered list always agree with it. now is the
// reference time that resolved the period range; it determines which month
// the week count describes.
func ComputeStats(entries []*domain.TimeEntry, period Period, now time.Time) DashboardStats {
	stats := DashboardStats{EntryCount: len(entries)}

	totalMinutes := 0
	clientMinutes := make(map[int64]int)
	clientNames := make(map[int64]string)
	days := make(map[string]struct{})

	for _, e := range entries {
		totalMinutes += e.DurationMinutes
		days[e.EntryDate] = struct{}{}

		// An entry whose client denormalization is missing still counts
		// toward totals; it just cannot contribute a top client.
		if e.ClientID > 0 {
			clientMinutes[e.ClientID] += e.DurationMinutes
			clientNames[e.ClientID] = e.ClientName
		}
	}

	stats.TotalHours = float64(totalMinutes) / 60.0
	stats.TopClient = pickTopClient(clientMinutes, clientNames)

	if period == PeriodWeek || period == PeriodMonth {
		count := len(days)
		stats.DaysWithEntries = &count
		if count > 0 {
			avg := stats.TotalHours / float64(count)
			stats.AveragePerDay = &avg
		}
	}

	if period == PeriodMonth {
		weeks := len(MonthWeekSpans(now))
		stats.WeeksInMonth = &weeks
		if weeks > 0 {
			avg := stats.TotalHours / float64(weeks)
			stats.AveragePerWeek = &avg
		}
	}

	return stats
}

// pickTopClient selects the client with the greatest total. Ties are broken
// by lexicographically smaller name, then lower ID, so the result does not
// depend on input order.
func pickTopClient(minutes map[int64]int, names map[int64]string) *TopClient {
	var top *TopClient
	var topMinutes int

	for id, m := range minutes {
		name := names[id]
		if top == nil ||
			m > topMinutes ||
			(m == topMinutes && (name < top.Name || (name == top.Name && id < top.ID))) {
			top = &TopClient{ID: id, Name: name, Hours: float64(m) / 60.0}
			topMinutes = m
		}
	}

	return top
}
