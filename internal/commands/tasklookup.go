package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"
	"unicode"

	"taskcli/internal/service"
)

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// findTask resolves a task reference against a freshly fetched list.
// A reference is either the task's 1-based position in the current list
// (all digits) or a raw server identifier. There is no local cache; every
// resolution re-fetches the list.
func findTask(ctx context.Context, svc service.Service, ref string) (service.Task, error) {
	tasks, err := svc.ListTasks(ctx)
	if err != nil {
		return service.Task{}, err
	}

	if isAllDigits(ref) {
		num, err := strconv.Atoi(ref)
		if err != nil || num < 1 || num > len(tasks) {
			return service.Task{}, fmt.Errorf("task number out of range: %s", ref)
		}
		return tasks[num-1], nil
	}

	for _, t := range tasks {
		if t.ID == ref {
			return t, nil
		}
	}
	return service.Task{}, fmt.Errorf("task not found: %s", ref)
}

// isAllDigits checks if a string consists only of digits.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// validateDueDate checks the YYYY-MM-DD form the backend's date fields use.
func validateDueDate(due string) error {
	if _, err := time.Parse("2006-01-02", due); err != nil {
		return fmt.Errorf("invalid due date: %s (use YYYY-MM-DD)", due)
	}
	return nil
}
