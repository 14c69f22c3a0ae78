package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/andy/worklog/internal/db"
	"github.com/andy/worklog/internal/domain"
)

// UserRepo is a SQLite implementation of UserRepository
type UserRepo struct {
	db *db.DB
}

// NewUserRepo creates a new UserRepo
func NewUserRepo(database *db.DB) *UserRepo {
	return &UserRepo{db: database}
}

// Create inserts a new user into the database
func (r *UserRepo) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("invalid user: %w", err)
	}

	query := `
		INSERT INTO users (name, email, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		user.Name,
		user.Email,
		user.IsActive,
		user.CreatedAt.Format(timeLayout),
		user.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get user ID: %w", err)
	}

	user.ID = id
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `
		SELECT id, name, COALESCE(email, ''), is_active, created_at, updated_at
		FROM users
		WHERE id = ?
	`

	row := r.db.QueryRowContext(ctx, query, id)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user not found: %w", err)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// GetByName retrieves a user by name
func (r *UserRepo) GetByName(ctx context.Context, name string) (*domain.User, error) {
	query := `
		SELECT id, name, COALESCE(email, ''), is_active, created_at, updated_at
		FROM users
		WHERE name = ?
	`

	row := r.db.QueryRowContext(ctx, query, name)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user not found: %w", err)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// List retrieves all users, optionally restricted to active ones
func (r *UserRepo) List(ctx context.Context, activeOnly bool) ([]*domain.User, error) {
	query := `
		SELECT id, name, COALESCE(email, ''), is_active, created_at, updated_at
		FROM users
		WHERE is_active = 1 OR ? = 0
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

func scanUser(s scanner) (*domain.User, error) {
	user := &domain.User{}
	var createdAt, updatedAt string

	err := s.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if user.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if user.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return user, nil
}
