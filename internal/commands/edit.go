package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"taskcli/internal/config"
	"taskcli/internal/exitcode"
	"taskcli/internal/service"
	"taskcli/internal/session"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command. The draft is pre-filled from the
// referenced task; only fields given as flags change. Flags use pointers
// so "not provided" and "provided empty" can be told apart: --due ""
// clears the stored due date.
type EditCmd struct {
	title  *string
	desc   *string
	due    *string
	status *string
}

// SetTitle sets the title flag (for testing).
func (c *EditCmd) SetTitle(v string) { c.title = &v }

// SetDescription sets the description flag (for testing).
func (c *EditCmd) SetDescription(v string) { c.desc = &v }

// SetDue sets the due date flag (for testing).
func (c *EditCmd) SetDue(v string) { c.due = &v }

// SetStatus sets the status flag (for testing).
func (c *EditCmd) SetStatus(v string) { c.status = &v }

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Edit a task" }
func (c *EditCmd) Usage() string {
	return "taskcli edit [--title <text>] [--desc <text>] [--due YYYY-MM-DD] [--status pending|completed] <ref>"
}
func (c *EditCmd) NeedsAuth() bool { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.Func("title", "", func(v string) error { c.title = &v; return nil })
	fs.Func("desc", "", func(v string) error { c.desc = &v; return nil })
	fs.Func("due", "", func(v string) error { c.due = &v; return nil })
	fs.Func("status", "", func(v string) error { c.status = &v; return nil })
}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: task reference required")
		return exitcode.UserError
	}
	if c.title == nil && c.desc == nil && c.due == nil && c.status == nil {
		fmt.Fprintln(errOut, "error: nothing to change")
		return exitcode.UserError
	}

	// Validate flag values before touching the network.
	if c.title != nil && strings.TrimSpace(*c.title) == "" {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}
	if c.status != nil && *c.status != service.StatusPending && *c.status != service.StatusCompleted {
		fmt.Fprintf(errOut, "error: invalid status: %s\n", *c.status)
		return exitcode.UserError
	}
	if c.due != nil && *c.due != "" {
		if err := validateDueDate(*c.due); err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
	}

	task, err := findTask(ctx, svc, args[0])
	if err != nil {
		return reportLookupError(errOut, sess, err)
	}

	draft := service.DraftFrom(task)
	if c.title != nil {
		draft.Title = strings.TrimSpace(*c.title)
	}
	if c.desc != nil {
		draft.Description = *c.desc
	}
	if c.due != nil {
		draft.DueDate = *c.due
	}
	if c.status != nil {
		draft.Status = *c.status
	}

	// The identifier goes in the URL only; the draft never carries it.
	if _, err := svc.UpdateTask(ctx, task.ID, draft); err != nil {
		return reportError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return refreshSummary(ctx, cfg, svc, out, errOut)
}

// reportLookupError distinguishes a bad reference (user error) from a
// failed list fetch while resolving it.
func reportLookupError(errOut io.Writer, sess *session.Store, err error) int {
	if strings.Contains(err.Error(), "out of range") || strings.Contains(err.Error(), "task not found") {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	return reportListError(errOut, sess, err)
}
