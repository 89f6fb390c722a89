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
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	desc string
	due  string
}

// SetDue sets the due date flag (for testing).
func (c *AddCmd) SetDue(due string) {
	c.due = due
}

// SetDescription sets the description flag (for testing).
func (c *AddCmd) SetDescription(desc string) {
	c.desc = desc
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string {
	return "taskcli add [--desc <text>] [--due YYYY-MM-DD] <title...>"
}
func (c *AddCmd) NeedsAuth() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.desc, "desc", "", "")
	fs.StringVar(&c.desc, "d", "", "")
	fs.StringVar(&c.due, "due", "", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	// Title is required and validated before any network call.
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}

	due := strings.TrimSpace(c.due)
	if due != "" {
		if err := validateDueDate(due); err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
	}

	draft := service.Draft{
		Title:       title,
		Description: strings.TrimSpace(c.desc),
		Status:      service.StatusPending,
		// Empty due date stays empty and is omitted from the payload.
		DueDate: due,
	}

	if _, err := svc.CreateTask(ctx, draft); err != nil {
		return reportError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return refreshSummary(ctx, cfg, svc, out, errOut)
}
