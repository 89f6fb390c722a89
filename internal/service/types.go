// Package service defines the backend-agnostic interface for task operations.
package service

// Task statuses as the backend reports them.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Task represents a single task item. All fields are owned by the backend;
// the client never patches a Task in place, it replaces the whole list after
// every mutation.
type Task struct {
	// ID is the server-assigned identifier (the backend's "_id" field).
	ID          string
	Title       string
	Description string
	Status      string // "pending" or "completed"
	// DueDate is the due date as reported by the backend (date or RFC3339
	// timestamp). Empty means no due date.
	DueDate   string
	CreatedAt string
}

// Completed reports whether the task is marked completed.
func (t Task) Completed() bool {
	return t.Status == StatusCompleted
}

// Draft is the outbound payload for creating or updating a task.
// An empty DueDate means the field is omitted from the request body
// entirely, never sent as an empty string.
type Draft struct {
	Title       string
	Description string
	Status      string
	DueDate     string
}

// DraftFrom builds a Draft pre-filled from an existing task, trimming the
// due date down to its date part the way the edit form does.
func DraftFrom(t Task) Draft {
	due := t.DueDate
	if len(due) > 10 {
		due = due[:10]
	}
	return Draft{
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		DueDate:     due,
	}
}

// CountSummary holds the derived task counters shown alongside the list.
// There is no aggregation endpoint; all counts are computed client-side.
type CountSummary struct {
	Total     int
	Completed int
	Pending   int
}

// Counts derives the total/completed/pending counters from a task list.
func Counts(tasks []Task) CountSummary {
	var s CountSummary
	s.Total = len(tasks)
	for _, t := range tasks {
		if t.Completed() {
			s.Completed++
		} else {
			s.Pending++
		}
	}
	return s
}
