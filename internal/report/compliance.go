package report

import "github.com/andy/worklog/internal/domain"

// Compliance is the proportion of team members who logged at least one
// entry in the period.
type Compliance struct {
	TeamSize      int
	MembersLogged int
	Rate          float64 // 0..1, 0 when the team is empty
}

// ComputeCompliance counts how many of the given members appear as owners
// of at least one entry. Entries owned by users outside memberIDs (e.g.
// deactivated accounts still present in the range) are ignored.
func ComputeCompliance(memberIDs []int64, entries []*domain.TimeEntry) Compliance {
	members := make(map[int64]bool, len(memberIDs))
	for _, id := range memberIDs {
		members[id] = false
	}

	for _, e := range entries {
		if _, ok := members[e.UserID]; ok {
			members[e.UserID] = true
		}
	}

	c := Compliance{TeamSize: len(memberIDs)}
	for _, logged := range members {
		if logged {
			c.MembersLogged++
		}
	}
	if c.TeamSize > 0 {
		c.Rate = float64(c.MembersLogged) / float64(c.TeamSize)
	}
	return c
}
