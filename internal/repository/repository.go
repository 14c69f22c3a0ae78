package repository

import (
	"context"

	"github.com/andy/worklog/internal/domain"
)

// TimeEntryRepository manages time entry persistence with an audit trail.
// List queries denormalize job/project/client/service/task names onto each
// entry and exclude soft-deleted rows, so the aggregation engine downstream
// never performs lookups of its own.
type TimeEntryRepository interface {
	Create(ctx context.Context, entry *domain.TimeEntry) error
	GetByID(ctx context.Context, id int64) (*domain.TimeEntry, error)
	Update(ctx context.Context, entry *domain.TimeEntry, reason string) error // Creates audit records
	SoftDelete(ctx context.Context, id int64, reason string) error
	// ListForRange returns one user's entries with entry_date inside the
	// inclusive start..end range (YYYY-MM-DD strings), optionally filtered
	// to a single client.
	ListForRange(ctx context.Context, userID int64, start, end string, clientID *int64) ([]*domain.TimeEntry, error)
	// ListTeamForRange returns entries for all users in the range
	ListTeamForRange(ctx context.Context, start, end string) ([]*domain.TimeEntry, error)
	// HasAnyForUser reports whether the user has logged any entry at all,
	// ignoring date ranges. Used for the first-time empty state.
	HasAnyForUser(ctx context.Context, userID int64) (bool, error)
	GetHistory(ctx context.Context, entryID int64) ([]*domain.EntryHistory, error)
}

// ClientRepository manages client persistence
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	GetByName(ctx context.Context, name string) (*domain.Client, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	Archive(ctx context.Context, id int64) error
	Unarchive(ctx context.Context, id int64) error
}

// CatalogRepository manages the rest of the reference-data hierarchy:
// projects under clients, jobs under projects, services, and tasks
type CatalogRepository interface {
	CreateProject(ctx context.Context, project *domain.Project) error
	ListProjects(ctx context.Context, clientID *int64) ([]*domain.Project, error)

	CreateJob(ctx context.Context, job *domain.Job) error
	GetJob(ctx context.Context, id int64) (*domain.Job, error)
	ListJobs(ctx context.Context, projectID *int64) ([]*domain.Job, error)

	CreateService(ctx context.Context, service *domain.Service) error
	ListServices(ctx context.Context) ([]*domain.Service, error)

	CreateTask(ctx context.Context, task *domain.Task) error
	ListTasks(ctx context.Context, jobID *int64) ([]*domain.Task, error)
}

// UserRepository manages team members
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByName(ctx context.Context, name string) (*domain.User, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.User, error)
}
