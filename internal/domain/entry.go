package domain

import (
	"errors"
	"time"
)

// DateLayout is the calendar-date format used for entry dates. Entry dates
// are stored and compared as plain YYYY-MM-DD strings so that an entry
// logged for "2025-01-15" means that date everywhere, regardless of the
// timezone of the machine that wrote it.
const DateLayout = "2006-01-02"

// TimeEntry is a logged block of work. Job, project, client, service and
// task names are denormalized onto the entry by the repository's list
// queries so that grouping and search never need further lookups.
type TimeEntry struct {
	ID     int64
	UserID int64

	JobID     int64
	ServiceID int64
	TaskID    *int64 // nil when the entry is not tied to a task

	// Denormalized display fields (filled by repository joins)
	JobName     string
	JobNumber   string
	ProjectName string
	ClientID    int64
	ClientName  string
	ServiceName string
	TaskName    string

	DurationMinutes int
	EntryDate       string // YYYY-MM-DD
	Notes           string

	IsDeleted bool // soft delete
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTimeEntry creates a new time entry for the given user
func NewTimeEntry(userID, jobID, serviceID int64, entryDate string, minutes int) *TimeEntry {
	now := time.Now()
	return &TimeEntry{
		UserID:          userID,
		JobID:           jobID,
		ServiceID:       serviceID,
		EntryDate:       entryDate,
		DurationMinutes: minutes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Hours returns the entry duration in hours
func (e *TimeEntry) Hours() float64 {
	return float64(e.DurationMinutes) / 60.0
}

// Date parses the entry date. Returns the zero time if the stored string is
// not a valid YYYY-MM-DD date.
func (e *TimeEntry) Date() time.Time {
	t, err := time.Parse(DateLayout, e.EntryDate)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Validate returns an error if the entry is invalid
func (e *TimeEntry) Validate() error {
	if e.UserID <= 0 {
		return errors.New("user ID is required")
	}
	if e.JobID <= 0 {
		return errors.New("job ID is required")
	}
	if e.ServiceID <= 0 {
		return errors.New("service ID is required")
	}
	if e.DurationMinutes < 0 {
		return errors.New("duration cannot be negative")
	}
	if _, err := time.Parse(DateLayout, e.EntryDate); err != nil {
		return errors.New("entry date must be a valid YYYY-MM-DD date")
	}
	return nil
}
