package domain

import (
	"errors"
	"strings"
	"time"
)

type User struct {
	ID        int64
	Name      string
	Email     string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser creates a new active user
func NewUser(name string) *User {
	now := time.Now()
	return &User{
		Name:      strings.TrimSpace(name),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate returns an error if the user is invalid
func (u *User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return errors.New("user name is required")
	}
	return nil
}
