package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/andy/worklog/internal/domain"
)

// WeekGroup is one Monday-aligned week bucket inside a month. StartDate and
// EndDate never leave the month: the first week is partial when the month
// does not start on a Monday, and the last week is clipped to the month's
// final day.
type WeekGroup struct {
	WeekNumber int // 1-based within the month
	Label      string
	StartDate  time.Time
	EndDate    time.Time
	Entries    []*domain.TimeEntry
	TotalHours float64
}

// MonthWeekSpans partitions the month containing monthRef into week spans.
// Week 1 begins at the 1st regardless of weekday and runs through the
// Sunday ending that week (or month end, whichever comes first); each
// following span is a full Monday-Sunday week, with the last clipped to the
// month's final day. A month yields 4 to 6 spans.
func MonthWeekSpans(monthRef time.Time) []DateRange {
	first := time.Date(monthRef.Year(), monthRef.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	var spans []DateRange
	start := first
	for !start.After(last) {
		end := mondayOf(start).AddDate(0, 0, 6)
		if end.After(last) {
			end = last
		}
		spans = append(spans, DateRange{Start: start, End: end})
		start = end.AddDate(0, 0, 1)
	}
	return spans
}

// GroupByWeek partitions a month's entries into Monday-aligned week
// buckets. Weeks with no entries are omitted: the monthly view shows only
// weeks where work occurred, unlike the date grouper which can pad.
// Within a bucket entries are ordered by entry date descending, then by
// creation timestamp descending for same-date entries.
func GroupByWeek(entries []*domain.TimeEntry, monthRef time.Time) []WeekGroup {
	spans := MonthWeekSpans(monthRef)

	buckets := make([][]*domain.TimeEntry, len(spans))
	for _, e := range entries {
		d := e.Date()
		for i, span := range spans {
			if span.Contains(d) {
				buckets[i] = append(buckets[i], e)
				break
			}
		}
	}

	var groups []WeekGroup
	for i, span := range spans {
		bucket := buckets[i]
		if len(bucket) == 0 {
			continue
		}

		sort.SliceStable(bucket, func(a, b int) bool {
			if bucket[a].EntryDate != bucket[b].EntryDate {
				return bucket[a].EntryDate > bucket[b].EntryDate
			}
			return bucket[a].CreatedAt.After(bucket[b].CreatedAt)
		})

		n := i + 1
		groups = append(groups, WeekGroup{
			WeekNumber: n,
			Label:      weekLabel(n, span),
			StartDate:  span.Start,
			EndDate:    span.End,
			Entries:    bucket,
			TotalHours: sumHours(bucket),
		})
	}

	return groups
}

// weekLabel renders "Week 3 (13–19 Jan)"; single-day weeks collapse the
// span to one day.
func weekLabel(n int, span DateRange) string {
	month := span.End.Format("Jan")
	if span.Start.Day() == span.End.Day() {
		return fmt.Sprintf("Week %d (%d %s)", n, span.End.Day(), month)
	}
	return fmt.Sprintf("Week %d (%d–%d %s)", n, span.Start.Day(), span.End.Day(), month)
}
