// Package service defines the backend-agnostic interface for task operations.
package service

import "context"

// Service defines the interface for task backend operations.
// All REST calls go through this interface; commands never build HTTP
// requests directly.
type Service interface {
	// ListTasks returns the full task list for the current user, in API
	// order. The caller replaces any previously fetched list wholesale.
	ListTasks(ctx context.Context) ([]Task, error)

	// CreateTask creates a task from the draft and returns the created
	// task as the backend stored it.
	CreateTask(ctx context.Context, draft Draft) (Task, error)

	// UpdateTask replaces the task's mutable fields. The identifier
	// travels in the URL path and is never part of the body.
	UpdateTask(ctx context.Context, id string, draft Draft) (Task, error)

	// DeleteTask deletes a task by its server identifier.
	DeleteTask(ctx context.Context, id string) error
}
