package report

import (
	"strings"
	"unicode/utf8"

	"github.com/andy/worklog/internal/domain"
)

// minSearchLength is the shortest query that triggers filtering. Below it
// the search is a no-op: a one-character query would match nearly every
// entry and just flicker the list.
const minSearchLength = 2

// SearchActive reports whether the query is long enough to filter. The
// empty-state classifier needs this: a one-character query leaves the list
// untouched and must not be blamed for an empty result.
func SearchActive(query string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(query)) >= minSearchLength
}

// ApplySearch keeps entries where any display field contains the query as a
// case-insensitive substring: client, project, job name, job number,
// service, task, or notes. Matching on notes alone is sufficient. Absent
// fields never match. The client-id filter is an equality filter applied by
// the repository query, not here.
func ApplySearch(entries []*domain.TimeEntry, query string) []*domain.TimeEntry {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minSearchLength {
		return entries
	}

	q := strings.ToLower(query)
	matched := make([]*domain.TimeEntry, 0, len(entries))
	for _, e := range entries {
		if entryMatches(e, q) {
			matched = append(matched, e)
		}
	}
	return matched
}

func entryMatches(e *domain.TimeEntry, q string) bool {
	fields := []string{
		e.ClientName,
		e.ProjectName,
		e.JobName,
		e.JobNumber,
		e.ServiceName,
		e.TaskName,
		e.Notes,
	}
	for _, f := range fields {
		if f == "" {
			continue
		}
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
