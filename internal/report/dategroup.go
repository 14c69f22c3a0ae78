package report

import (
	"sort"
	"time"

	"github.com/andy/worklog/internal/domain"
)

// EntryGroup is one date bucket: the entries logged on a single calendar
// day plus their subtotal in hours.
type EntryGroup struct {
	Date       time.Time
	Entries    []*domain.TimeEntry
	TotalHours float64
}

// GroupByDate partitions entries into per-day buckets, most recent date
// first. When includeEmptyDays is set and the period is not Today, every
// date of the resolved range gets a bucket even if no entry falls on it;
// otherwise only dates present in the input appear. Today never pads since
// its range is a single day.
//
// Within a bucket entries are ordered by creation timestamp descending;
// multiple entries routinely share a date, so this is the intra-day
// tie-break the list views rely on.
func GroupByDate(entries []*domain.TimeEntry, period Period, now time.Time, includeEmptyDays bool) []EntryGroup {
	buckets := make(map[string][]*domain.TimeEntry)
	for _, e := range entries {
		buckets[e.EntryDate] = append(buckets[e.EntryDate], e)
	}

	var keys []string
	if includeEmptyDays && period != PeriodToday {
		for _, d := range EnumerateDates(ResolveRange(period, now)) {
			keys = append(keys, d.Format(domain.DateLayout))
		}
	} else {
		for k := range buckets {
			keys = append(keys, k)
		}
	}

	// YYYY-MM-DD strings sort chronologically, so a reverse lexicographic
	// sort yields most-recent-first.
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	groups := make([]EntryGroup, 0, len(keys))
	for _, k := range keys {
		bucket := buckets[k]
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].CreatedAt.After(bucket[j].CreatedAt)
		})

		date, _ := time.Parse(domain.DateLayout, k)
		groups = append(groups, EntryGroup{
			Date:       date,
			Entries:    bucket,
			TotalHours: sumHours(bucket),
		})
	}

	return groups
}

// sumHours totals entry durations, accumulating in whole minutes so that
// bucket subtotals always reconcile exactly with the input durations.
func sumHours(entries []*domain.TimeEntry) float64 {
	minutes := 0
	for _, e := range entries {
		minutes += e.DurationMinutes
	}
	return float64(minutes) / 60.0
}
