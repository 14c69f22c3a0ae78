package domain

import "time"

// EntryHistory is one field-level audit record for a time entry edit
type EntryHistory struct {
	ID           int64
	EntryID      int64
	FieldName    string
	OldValue     string
	NewValue     string
	ChangeReason string
	ChangedAt    time.Time
}
