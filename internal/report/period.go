// Package report implements the period aggregation engine: it turns a flat,
// already-scoped collection of time entries into date or week buckets,
// summary statistics, and an empty-state classification. Everything here is
// a pure function of its inputs; the reference time is always passed in
// explicitly so results are reproducible.
package report

import "time"

// Period selects the reporting window
type Period int

const (
	PeriodToday Period = iota
	PeriodWeek
	PeriodMonth
)

// String returns the period name
func (p Period) String() string {
	switch p {
	case PeriodToday:
		return "Today"
	case PeriodWeek:
		return "Week"
	case PeriodMonth:
		return "Month"
	default:
		return "Unknown"
	}
}

// DateRange is an inclusive span of calendar dates. Start and End are
// midnight UTC date values.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether d falls inside the range
func (r DateRange) Contains(d time.Time) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// ResolveRange converts a period selector plus a reference time into a
// closed calendar-date range. Week is the Monday-to-Sunday span containing
// now and correctly straddles month and year boundaries; Month is the 1st
// through the last day of now's month.
func ResolveRange(period Period, now time.Time) DateRange {
	today := dateOf(now)

	switch period {
	case PeriodWeek:
		monday := mondayOf(today)
		return DateRange{Start: monday, End: monday.AddDate(0, 0, 6)}
	case PeriodMonth:
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		return DateRange{Start: first, End: first.AddDate(0, 1, -1)}
	default:
		return DateRange{Start: today, End: today}
	}
}

// EnumerateDates returns every calendar date in the range, ascending,
// start through end inclusive.
func EnumerateDates(r DateRange) []time.Time {
	var dates []time.Time
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// dateOf strips the time of day and normalizes to UTC
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// mondayOf walks back to the Monday of the week containing d
func mondayOf(d time.Time) time.Time {
	for d.Weekday() != time.Monday {
		d = d.AddDate(0, 0, -1)
	}
	return d
}
