// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"taskcli/internal/service"
)

// FormatTask formats a numbered task line.
// Format: "{N:>4}  {MARK} {TITLE}{DUE}\n" where MARK is "[x]" for
// completed tasks and "[ ]" otherwise, and DUE is "  (due YYYY-MM-DD)"
// when a due date is set.
func FormatTask(w io.Writer, num int, task service.Task) {
	mark := "[ ]"
	if task.Completed() {
		mark = "[x]"
	}
	line := fmt.Sprintf("%4d  %s %s", num, mark, normalizeTitle(task.Title))
	if due := DueDate(task); due != "" {
		line += "  (due " + due + ")"
	}
	fmt.Fprintln(w, line)
}

// FormatSummary prints the derived counters under a task list.
func FormatSummary(w io.Writer, s service.CountSummary) {
	fmt.Fprintf(w, "%d tasks: %d completed, %d pending\n", s.Total, s.Completed, s.Pending)
}

// DisplayTitle returns a task's title normalized for display.
func DisplayTitle(task service.Task) string {
	return normalizeTitle(task.Title)
}

// DueDate reduces a stored due date to its date part for display. The
// backend may return either a plain date or a full timestamp.
func DueDate(task service.Task) string {
	due := strings.TrimSpace(task.DueDate)
	if len(due) > 10 {
		due = due[:10]
	}
	return due
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	// Replace newlines with spaces
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	// Trim and check for empty
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
