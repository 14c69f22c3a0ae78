package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/andy/worklog/internal/db"
	"github.com/andy/worklog/internal/domain"
)

// CatalogRepo is a SQLite implementation of CatalogRepository
type CatalogRepo struct {
	db *db.DB
}

// NewCatalogRepo creates a new CatalogRepo
func NewCatalogRepo(database *db.DB) *CatalogRepo {
	return &CatalogRepo{db: database}
}

// CreateProject inserts a new project into the database
func (r *CatalogRepo) CreateProject(ctx context.Context, project *domain.Project) error {
	if err := project.Validate(); err != nil {
		return fmt.Errorf("invalid project: %w", err)
	}

	query := `
		INSERT INTO projects (client_id, name, is_archived, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		project.ClientID,
		project.Name,
		project.IsArchived,
		project.CreatedAt.Format(timeLayout),
		project.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get project ID: %w", err)
	}

	project.ID = id
	return nil
}

// ListProjects retrieves active projects, optionally for a single client
func (r *CatalogRepo) ListProjects(ctx context.Context, clientID *int64) ([]*domain.Project, error) {
	query := `
		SELECT id, client_id, name, is_archived, created_at, updated_at
		FROM projects
		WHERE is_archived = 0
	`
	args := []interface{}{}

	if clientID != nil {
		query += " AND client_id = ?"
		args = append(args, *clientID)
	}

	query += " ORDER BY name"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]*domain.Project, 0)
	for rows.Next() {
		p := &domain.Project{}
		var createdAt, updatedAt string

		err := rows.Scan(&p.ID, &p.ClientID, &p.Name, &p.IsArchived, &createdAt, &updatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}

		if p.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		if p.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, fmt.Errorf("failed to parse updated_at: %w", err)
		}

		projects = append(projects, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating projects: %w", err)
	}

	return projects, nil
}

// CreateJob inserts a new job into the database
func (r *CatalogRepo) CreateJob(ctx context.Context, job *domain.Job) error {
	if err := job.Validate(); err != nil {
		return fmt.Errorf("invalid job: %w", err)
	}

	query := `
		INSERT INTO jobs (project_id, name, job_number, is_archived, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		job.ProjectID,
		job.Name,
		job.JobNumber,
		job.IsArchived,
		job.CreatedAt.Format(timeLayout),
		job.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get job ID: %w", err)
	}

	job.ID = id
	return nil
}

// GetJob retrieves a job by ID
func (r *CatalogRepo) GetJob(ctx context.Context, id int64) (*domain.Job, error) {
	query := `
		SELECT id, project_id, name, COALESCE(job_number, ''), is_archived, created_at, updated_at
		FROM jobs
		WHERE id = ?
	`

	job := &domain.Job{}
	var createdAt, updatedAt string

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&job.ID,
		&job.ProjectID,
		&job.Name,
		&job.JobNumber,
		&job.IsArchived,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("job not found: %w", err)
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	if job.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if job.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return job, nil
}

// ListJobs retrieves active jobs, optionally for a single project
func (r *CatalogRepo) ListJobs(ctx context.Context, projectID *int64) ([]*domain.Job, error) {
	query := `
		SELECT id, project_id, name, COALESCE(job_number, ''), is_archived, created_at, updated_at
		FROM jobs
		WHERE is_archived = 0
	`
	args := []interface{}{}

	if projectID != nil {
		query += " AND project_id = ?"
		args = append(args, *projectID)
	}

	query += " ORDER BY name"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]*domain.Job, 0)
	for rows.Next() {
		j := &domain.Job{}
		var createdAt, updatedAt string

		err := rows.Scan(&j.ID, &j.ProjectID, &j.Name, &j.JobNumber, &j.IsArchived, &createdAt, &updatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}

		if j.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		if j.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, fmt.Errorf("failed to parse updated_at: %w", err)
		}

		jobs = append(jobs, j)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating jobs: %w", err)
	}

	return jobs, nil
}

// CreateService inserts a new service into the database
func (r *CatalogRepo) CreateService(ctx context.Context, service *domain.Service) error {
	if err := service.Validate(); err != nil {
		return fmt.Errorf("invalid service: %w", err)
	}

	query := `
		INSERT INTO services (name, is_archived, created_at, updated_at)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		service.Name,
		service.IsArchived,
		service.CreatedAt.Format(timeLayout),
		service.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get service ID: %w", err)
	}

	service.ID = id
	return nil
}

// ListServices retrieves all active services
func (r *CatalogRepo) ListServices(ctx context.Context) ([]*domain.Service, error) {
	query := `
		SELECT id, name, is_archived, created_at, updated_at
		FROM services
		WHERE is_archived = 0
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		s := &domain.Service{}
		var createdAt, updatedAt string

		err := rows.Scan(&s.ID, &s.Name, &s.IsArchived, &createdAt, &updatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}

		if s.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		if s.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, fmt.Errorf("failed to parse updated_at: %w", err)
		}

		services = append(services, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating services: %w", err)
	}

	return services, nil
}

// CreateTask inserts a new task into the database
func (r *CatalogRepo) CreateTask(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("invalid task: %w", err)
	}

	query := `
		INSERT INTO tasks (job_id, name, is_archived, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		task.JobID,
		task.Name,
		task.IsArchived,
		task.CreatedAt.Format(timeLayout),
		task.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get task ID: %w", err)
	}

	task.ID = id
	return nil
}

// ListTasks retrieves active tasks, optionally for a single job
func (r *CatalogRepo) ListTasks(ctx context.Context, jobID *int64) ([]*domain.Task, error) {
	query := `
		SELECT id, job_id, name, is_archived, created_at, updated_at
		FROM tasks
		WHERE is_archived = 0
	`
	args := []interface{}{}

	if jobID != nil {
		query += " AND job_id = ?"
		args = append(args, *jobID)
	}

	query += " ORDER BY name"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		t := &domain.Task{}
		var createdAt, updatedAt string

		err := rows.Scan(&t.ID, &t.JobID, &t.Name, &t.IsArchived, &createdAt, &updatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}

		if t.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		if t.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, fmt.Errorf("failed to parse updated_at: %w", err)
		}

		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tasks: %w", err)
	}

	return tasks, nil
}
