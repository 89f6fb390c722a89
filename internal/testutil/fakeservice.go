// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"taskcli/internal/service"
)

// ErrNotFound is returned when a task is not found.
var ErrNotFound = errors.New("not found")

// FakeService is an in-memory implementation of service.Service for
// testing. IDs are minted the way a real backend would assign them.
type FakeService struct {
	mu    sync.RWMutex
	tasks []service.Task

	// Call counters for asserting what a command actually did.
	ListCalls   int
	CreateCalls int
	UpdateCalls int
	DeleteCalls int

	// LastDraft is the draft most recently passed to Create or Update.
	LastDraft service.Draft

	// Error injection for testing
	ListTasksErr  error
	CreateTaskErr error
	UpdateTaskErr error
	DeleteTaskErr error
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{}
}

// AddTask seeds a task and returns its server-assigned ID.
func (f *FakeService) AddTask(title, status, dueDate string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := uuid.NewString()
	f.tasks = append(f.tasks, service.Task{
		ID:      id,
		Title:   title,
		Status:  status,
		DueDate: dueDate,
	})
	return id
}

// Tasks returns a copy of the current task list.
func (f *FakeService) Tasks() []service.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]service.Task, len(f.tasks))
	copy(out, f.tasks)
	return out
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context) ([]service.Task, error) {
	f.mu.Lock()
	f.ListCalls++
	f.mu.Unlock()
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	return f.Tasks(), nil
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, draft service.Draft) (service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CreateCalls++
	f.LastDraft = draft
	if f.CreateTaskErr != nil {
		return service.Task{}, f.CreateTaskErr
	}
	task := service.Task{
		ID:          uuid.NewString(),
		Title:       draft.Title,
		Description: draft.Description,
		Status:      draft.Status,
		DueDate:     draft.DueDate,
	}
	f.tasks = append(f.tasks, task)
	return task, nil
}

// UpdateTask implements service.Service.
func (f *FakeService) UpdateTask(ctx context.Context, id string, draft service.Draft) (service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.UpdateCalls++
	f.LastDraft = draft
	if f.UpdateTaskErr != nil {
		return service.Task{}, f.UpdateTaskErr
	}
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks[i].Title = draft.Title
			f.tasks[i].Description = draft.Description
			f.tasks[i].Status = draft.Status
			f.tasks[i].DueDate = draft.DueDate
			return f.tasks[i], nil
		}
	}
	return service.Task{}, ErrNotFound
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DeleteCalls++
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
