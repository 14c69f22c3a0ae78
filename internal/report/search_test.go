package report

import (
	"testing"
	"time"

	"github.com/andy/worklog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchEntry(id int64, mutate func(*domain.TimeEntry)) *domain.TimeEntry {
	e := testEntry(id, "2025-01-15", 60, time.Duration(id)*time.Minute)
	mutate(e)
	return e
}

func TestApplySearch_BelowThresholdIsNoOp(t *testing.T) {
	entries := []*domain.TimeEntry{
		searchEntry(1, func(e *domain.TimeEntry) { e.ClientName = "ACME" }),
		searchEntry(2, func(e *domain.TimeEntry) { e.ClientName = "Globex" }),
	}

	assert.Equal(t, entries, ApplySearch(entries, ""))
	assert.Equal(t, entries, ApplySearch(entries, "a"))
	assert.Equal(t, entries, ApplySearch(entries, " a "))
}

func TestApplySearch_MatchesNotesAlone(t *testing.T) {
	entries := []*domain.TimeEntry{
		searchEntry(1, func(e *domain.TimeEntry) { e.Notes = "Quarterly Review prep" }),
		searchEntry(2, func(e *domain.TimeEntry) { e.Notes = "standup" }),
	}

	got := ApplySearch(entries, "review")

	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestApplySearch_CaseInsensitiveAcrossFields(t *testing.T) {
	entries := []*domain.TimeEntry{
		searchEntry(1, func(e *domain.TimeEntry) { e.ClientName = "ACME Corp" }),
		searchEntry(2, func(e *domain.TimeEntry) { e.ProjectName = "Acme rebrand" }),
		searchEntry(3, func(e *domain.TimeEntry) { e.JobNumber = "JOB-ACME-7" }),
		searchEntry(4, func(e *domain.TimeEntry) { e.ServiceName = "Consulting" }),
	}

	got := ApplySearch(entries, "acme")

	require.Len(t, got, 3)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
	assert.Equal(t, int64(3), got[2].ID)
}

func TestApplySearch_AbsentFieldsNeverMatch(t *testing.T) {
	entries := []*domain.TimeEntry{
		searchEntry(1, func(e *domain.TimeEntry) {}),
	}

	assert.Empty(t, ApplySearch(entries, "anything"))
}

func TestApplySearch_TaskAndJobNameFields(t *testing.T) {
	entries := []*domain.TimeEntry{
		searchEntry(1, func(e *domain.TimeEntry) { e.TaskName = "wireframes" }),
		searchEntry(2, func(e *domain.TimeEntry) { e.JobName = "Site redesign" }),
		searchEntry(3, func(e *domain.TimeEntry) { e.Notes = "misc" }),
	}

	got := ApplySearch(entries, "RE")

	// "wireframes" and "redesign" contain "re"; "misc" does not
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
}
