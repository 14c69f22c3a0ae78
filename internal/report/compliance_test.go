package report

import (
	"testing"
	"time"

	"github.com/andy/worklog/internal/domain"
	"github.com/stretchr/testify/assert"
)

func userEntry(id, userID int64) *domain.TimeEntry {
	e := testEntry(id, "2025-01-15", 60, time.Duration(id)*time.Minute)
	e.UserID = userID
	return e
}

func TestComputeCompliance(t *testing.T) {
	members := []int64{1, 2, 3, 4}
	entries := []*domain.TimeEntry{
		userEntry(1, 1),
		userEntry(2, 1),
		userEntry(3, 3),
	}

	c := ComputeCompliance(members, entries)

	assert.Equal(t, 4, c.TeamSize)
	assert.Equal(t, 2, c.MembersLogged)
	assert.InDelta(t, 0.5, c.Rate, 1e-9)
}

func TestComputeCompliance_IgnoresNonMembers(t *testing.T) {
	c := ComputeCompliance([]int64{1}, []*domain.TimeEntry{userEntry(1, 99)})

	assert.Equal(t, 0, c.MembersLogged)
	assert.Zero(t, c.Rate)
}

func TestComputeCompliance_EmptyTeam(t *testing.T) {
	c := ComputeCompliance(nil, nil)

	assert.Equal(t, 0, c.TeamSize)
	assert.Zero(t, c.Rate) // guarded, never NaN
}
