package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/andy/worklog/internal/db"
	"github.com/andy/worklog/internal/domain"
)

// EntryRepo is a SQLite implementation of TimeEntryRepository
type EntryRepo struct {
	db *db.DB
}

// NewEntryRepo creates a new EntryRepo
func NewEntryRepo(database *db.DB) *EntryRepo {
	return &EntryRepo{db: database}
}

// entrySelect is the denormalizing query shared by all list/get paths.
// LEFT JOINs keep an entry visible even when part of its reference chain
// is missing; the empty names simply cannot match search or contribute a
// top client.
const entrySelect = `
	SELECT e.id, e.user_id, e.job_id, e.service_id, e.task_id,
	       COALESCE(j.name, ''), COALESCE(j.job_number, ''),
	       COALESCE(p.name, ''), COALESCE(c.id, 0), COALESCE(c.name, ''),
	       COALESCE(s.name, ''), COALESCE(t.name, ''),
	       e.entry_date, e.duration_minutes, COALESCE(e.notes, ''),
	       e.is_deleted, e.created_at, e.updated_at
	FROM time_entries e
	LEFT JOIN jobs j ON j.id = e.job_id
	LEFT JOIN projects p ON p.id = j.project_id
	LEFT JOIN clients c ON c.id = p.client_id
	LEFT JOIN services s ON s.id = e.service_id
	LEFT JOIN tasks t ON t.id = e.task_id
`

// Create inserts a new time entry into the database
func (r *EntryRepo) Create(ctx context.Context, entry *domain.TimeEntry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("invalid time entry: %w", err)
	}

	query := `
		INSERT INTO time_entries (
			user_id, job_id, service_id, task_id, entry_date,
			duration_minutes, notes, is_deleted, created_at, updated_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var taskID interface{}
	if entry.TaskID != nil {
		taskID = *entry.TaskID
	}

	result, err := r.db.ExecContext(ctx, query,
		entry.UserID,
		entry.JobID,
		entry.ServiceID,
		taskID,
		entry.EntryDate,
		entry.DurationMinutes,
		entry.Notes,
		entry.IsDeleted,
		entry.CreatedAt.Format(timeLayout),
		entry.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to create time entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get time entry ID: %w", err)
	}

	entry.ID = id
	return nil
}

// GetByID retrieves a time entry by ID
func (r *EntryRepo) GetByID(ctx context.Context, id int64) (*domain.TimeEntry, error) {
	query := entrySelect + " WHERE e.id = ?"

	row := r.db.QueryRowContext(ctx, query, id)
	entry, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("time entry not found: %w", err)
		}
		return nil, fmt.Errorf("failed to get time entry: %w", err)
	}

	return entry, nil
}

// Update updates an existing time entry and creates audit records for
// every changed field
func (r *EntryRepo) Update(ctx context.Context, entry *domain.TimeEntry, reason string) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("invalid time entry: %w", err)
	}

	// Get current entry for audit trail
	oldEntry, err := r.GetByID(ctx, entry.ID)
	if err != nil {
		return err
	}

	// Begin transaction
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE time_entries
		SET job_id = ?, service_id = ?, task_id = ?, entry_date = ?,
		    duration_minutes = ?, notes = ?, updated_at = ?
		WHERE id = ? AND is_deleted = 0
	`

	var taskID interface{}
	if entry.TaskID != nil {
		taskID = *entry.TaskID
	}

	entry.UpdatedAt = time.Now()

	result, err := tx.ExecContext(ctx, query,
		entry.JobID,
		entry.ServiceID,
		taskID,
		entry.EntryDate,
		entry.DurationMinutes,
		entry.Notes,
		entry.UpdatedAt.Format(timeLayout),
		entry.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update time entry: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("time entry not found or already deleted")
	}

	// Create audit records for changed fields
	if err := r.createAuditRecords(ctx, tx, oldEntry, entry, reason); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// SoftDelete marks a time entry as deleted
func (r *EntryRepo) SoftDelete(ctx context.Context, id int64, reason string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE time_entries
		SET is_deleted = 1, updated_at = ?
		WHERE id = ? AND is_deleted = 0
	`

	result, err := tx.ExecContext(ctx, query, formatTime(), id)
	if err != nil {
		return fmt.Errorf("failed to delete time entry: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("time entry not found")
	}

	// Create audit record
	historyQuery := `
		INSERT INTO entry_history (entry_id, field_name, old_value, new_value, change_reason, changed_at)
		VALUES (?, 'is_deleted', '0', '1', ?, ?)
	`

	_, err = tx.ExecContext(ctx, historyQuery, id, reason, formatTime())
	if err != nil {
		return fmt.Errorf("failed to create audit record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListForRange retrieves one user's entries in the inclusive date range,
// optionally restricted to a single client. Soft-deleted rows are excluded
// here so callers never see them.
func (r *EntryRepo) ListForRange(ctx context.Context, userID int64, start, end string, clientID *int64) ([]*domain.TimeEntry, error) {
	query := entrySelect + `
		WHERE e.is_deleted = 0
		  AND e.user_id = ?
		  AND e.entry_date >= ?
		  AND e.entry_date <= ?
	`
	args := []interface{}{userID, start, end}

	if clientID != nil {
		query += " AND c.id = ?"
		args = append(args, *clientID)
	}

	query += " ORDER BY e.entry_date DESC, e.created_at DESC"

	return r.queryEntries(ctx, query, args...)
}

// ListTeamForRange retrieves entries for all users in the inclusive date
// range. Used for team compliance.
func (r *EntryRepo) ListTeamForRange(ctx context.Context, start, end string) ([]*domain.TimeEntry, error) {
	query := entrySelect + `
		WHERE e.is_deleted = 0
		  AND e.entry_date >= ?
		  AND e.entry_date <= ?
		ORDER BY e.entry_date DESC, e.created_at DESC
	`
	return r.queryEntries(ctx, query, start, end)
}

// HasAnyForUser reports whether the user has ever logged an entry
func (r *EntryRepo) HasAnyForUser(ctx context.Context, userID int64) (bool, error) {
	var one int
	query := "SELECT 1 FROM time_entries WHERE user_id = ? AND is_deleted = 0 LIMIT 1"

	err := r.db.QueryRowContext(ctx, query, userID).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check for entries: %w", err)
	}

	return true, nil
}

// GetHistory retrieves the audit trail for a time entry
func (r *EntryRepo) GetHistory(ctx context.Context, entryID int64) ([]*domain.EntryHistory, error) {
	query := `
		SELECT id, entry_id, field_name, old_value, new_value, change_reason, changed_at
		FROM entry_history
		WHERE entry_id = ?
		ORDER BY changed_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get entry history: %w", err)
	}
	defer rows.Close()

	history := make([]*domain.EntryHistory, 0)
	for rows.Next() {
		h := &domain.EntryHistory{}
		var changedAt string

		err := rows.Scan(
			&h.ID,
			&h.EntryID,
			&h.FieldName,
			&h.OldValue,
			&h.NewValue,
			&h.ChangeReason,
			&changedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history: %w", err)
		}

		if h.ChangedAt, err = parseTime(changedAt); err != nil {
			return nil, fmt.Errorf("failed to parse changed_at: %w", err)
		}

		history = append(history, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating history: %w", err)
	}

	return history, nil
}

// queryEntries runs an entrySelect-based query and scans all rows
func (r *EntryRepo) queryEntries(ctx context.Context, query string, args ...interface{}) ([]*domain.TimeEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.TimeEntry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating time entries: %w", err)
	}

	return entries, nil
}

// scanner covers both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanEntry reads one entrySelect row into a TimeEntry
func scanEntry(s scanner) (*domain.TimeEntry, error) {
	entry := &domain.TimeEntry{}
	var taskID sql.NullInt64
	var createdAt, updatedAt string

	err := s.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.JobID,
		&entry.ServiceID,
		&taskID,
		&entry.JobName,
		&entry.JobNumber,
		&entry.ProjectName,
		&entry.ClientID,
		&entry.ClientName,
		&entry.ServiceName,
		&entry.TaskName,
		&entry.EntryDate,
		&entry.DurationMinutes,
		&entry.Notes,
		&entry.IsDeleted,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if taskID.Valid {
		entry.TaskID = &taskID.Int64
	}

	if entry.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if entry.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return entry, nil
}

// createAuditRecords creates history records for changed fields
func (r *EntryRepo) createAuditRecords(ctx context.Context, tx *sql.Tx, old, new *domain.TimeEntry, reason string) error {
	changedAt := formatTime()

	insertHistory := func(fieldName, oldVal, newVal string) error {
		if oldVal == newVal {
			return nil
		}
		query := `
			INSERT INTO entry_history (entry_id, field_name, old_value, new_value, change_reason, changed_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`
		_, err := tx.ExecContext(ctx, query, new.ID, fieldName, oldVal, newVal, reason, changedAt)
		return err
	}

	if old.JobID != new.JobID {
		if err := insertHistory("job_id", strconv.FormatInt(old.JobID, 10), strconv.FormatInt(new.JobID, 10)); err != nil {
			return fmt.Errorf("failed to audit job_id change: %w", err)
		}
	}

	if old.ServiceID != new.ServiceID {
		if err := insertHistory("service_id", strconv.FormatInt(old.ServiceID, 10), strconv.FormatInt(new.ServiceID, 10)); err != nil {
			return fmt.Errorf("failed to audit service_id change: %w", err)
		}
	}

	oldTask := ""
	newTask := ""
	if old.TaskID != nil {
		oldTask = strconv.FormatInt(*old.TaskID, 10)
	}
	if new.TaskID != nil {
		newTask = strconv.FormatInt(*new.TaskID, 10)
	}
	if oldTask != newTask {
		if err := insertHistory("task_id", oldTask, newTask); err != nil {
			return fmt.Errorf("failed to audit task_id change: %w", err)
		}
	}

	if old.EntryDate != new.EntryDate {
		if err := insertHistory("entry_date", old.EntryDate, new.EntryDate); err != nil {
			return fmt.Errorf("failed to audit entry_date change: %w", err)
		}
	}

	if old.DurationMinutes != new.DurationMinutes {
		if err := insertHistory("duration_minutes", strconv.Itoa(old.DurationMinutes), strconv.Itoa(new.DurationMinutes)); err != nil {
			return fmt.Errorf("failed to audit duration_minutes change: %w", err)
		}
	}

	if old.Notes != new.Notes {
		if err := insertHistory("notes", old.Notes, new.Notes); err != nil {
			return fmt.Errorf("failed to audit notes change: %w", err)
		}
	}

	return nil
}
