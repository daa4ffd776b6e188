package models

import (
	"errors"
	"strings"
	"time"
)

// Task represents a single entry in the list.
// Completed is carried on the record but nothing toggles it yet.
type Task struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks that the task has valid field values.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Text) == "" {
		return errors.New("text is required")
	}
	return nil
}
