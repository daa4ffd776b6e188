package store

import (
	"context"

	"quicklist/internal/models"
)

// Store defines the interface for task list operations.
type Store interface {
	CreateTask(ctx context.Context, task *models.Task) error
	DeleteTask(ctx context.Context, id int64) error
	ListTasks(ctx context.Context) ([]models.Task, error)
	CountTasks(ctx context.Context) (int, error)

	// Lifecycle
	Close() error
}
