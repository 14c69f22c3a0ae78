package domain

import (
	"errors"
	"strings"
	"time"
)

// Project belongs to a client and groups jobs
type Project struct {
	ID         int64
	ClientID   int64
	Name       string
	IsArchived bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate returns an error if the project is invalid
func (p *Project) Validate() error {
	if p.ClientID <= 0 {
		return errors.New("client ID is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("project name is required")
	}
	return nil
}

// Job is the unit entries are booked against. The job number is the
// customer-facing reference shown next to the job name.
type Job struct {
	ID         int64
	ProjectID  int64
	Name       string
	JobNumber  string
	IsArchived bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate returns an error if the job is invalid
func (j *Job) Validate() error {
	if j.ProjectID <= 0 {
		return errors.New("project ID is required")
	}
	if strings.TrimSpace(j.Name) == "" {
		return errors.New("job name is required")
	}
	return nil
}

// Service is the kind of work performed (consulting, development, ...)
type Service struct {
	ID         int64
	Name       string
	IsArchived bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate returns an error if the service is invalid
func (s *Service) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return errors.New("service name is required")
	}
	return nil
}

// Task is an optional finer-grained label under a job
type Task struct {
	ID         int64
	JobID      int64
	Name       string
	IsArchived bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate returns an error if the task is invalid
func (t *Task) Validate() error {
	if t.JobID <= 0 {
		return errors.New("job ID is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return errors.New("task name is required")
	}
	return nil
}
