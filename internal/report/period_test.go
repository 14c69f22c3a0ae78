package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveRange_Today(t *testing.T) {
	now := time.Date(2025, time.January, 15, 14, 30, 0, 0, time.UTC)
	r := ResolveRange(PeriodToday, now)

	assert.Equal(t, date(2025, time.January, 15), r.Start)
	assert.Equal(t, date(2025, time.January, 15), r.End)
}

func TestResolveRange_Week_MidMonth(t *testing.T) {
	// Jan 15 2025 is a Wednesday; its week runs Mon Jan 13 - Sun Jan 19
	r := ResolveRange(PeriodWeek, date(2025, time.January, 15))

	assert.Equal(t, date(2025, time.January, 13), r.Start)
	assert.Equal(t, date(2025, time.January, 19), r.End)
}

func TestResolveRange_Week_OnMonday(t *testing.T) {
	r := ResolveRange(PeriodWeek, date(2025, time.January, 13))

	assert.Equal(t, date(2025, time.January, 13), r.Start)
	assert.Equal(t, date(2025, time.January, 19), r.End)
}

func TestResolveRange_Week_CrossYear(t *testing.T) {
	// Dec 31 2025 falls in the week Mon Dec 29 2025 - Sun Jan 4 2026
	r := ResolveRange(PeriodWeek, date(2025, time.December, 31))

	assert.Equal(t, date(2025, time.December, 29), r.Start)
	assert.Equal(t, date(2026, time.January, 4), r.End)
}

func TestResolveRange_Month(t *testing.T) {
	r := ResolveRange(PeriodMonth, date(2025, time.January, 15))
	assert.Equal(t, date(2025, time.January, 1), r.Start)
	assert.Equal(t, date(2025, time.January, 31), r.End)

	// Non-leap February
	r = ResolveRange(PeriodMonth, date(2025, time.February, 10))
	assert.Equal(t, date(2025, time.February, 28), r.End)

	// Leap February
	r = ResolveRange(PeriodMonth, date(2028, time.February, 10))
	assert.Equal(t, date(2028, time.February, 29), r.End)
}

func TestEnumerateDates(t *testing.T) {
	r := DateRange{Start: date(2025, time.January, 13), End: date(2025, time.January, 19)}
	dates := EnumerateDates(r)

	assert.Len(t, dates, 7)
	assert.Equal(t, date(2025, time.January, 13), dates[0])
	assert.Equal(t, date(2025, time.January, 19), dates[6])
}

func TestEnumerateDates_SingleDay(t *testing.T) {
	d := date(2025, time.June, 1)
	dates := EnumerateDates(DateRange{Start: d, End: d})

	assert.Len(t, dates, 1)
	assert.Equal(t, d, dates[0])
}

func TestEnumerateDates_CrossYear(t *testing.T) {
	r := DateRange{Start: date(2025, time.December, 29), End: date(2026, time.January, 4)}
	dates := EnumerateDates(r)

	assert.Len(t, dates, 7)
	assert.Equal(t, date(2025, time.December, 31), dates[2])
	assert.Equal(t, date(2026, time.January, 1), dates[3])
}
