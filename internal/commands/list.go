package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskcli/internal/config"
	"taskcli/internal/exitcode"
	"taskcli/internal/output"
	"taskcli/internal/service"
	"taskcli/internal/session"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command. Running taskcli with no arguments
// dispatches here as well.
type ListCmd struct{}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "taskcli list [common flags]" }
func (c *ListCmd) NeedsAuth() bool   { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintln(errOut, "error: list takes no arguments")
		return exitcode.UserError
	}

	tasks, err := svc.ListTasks(ctx)
	if err != nil {
		return reportListError(errOut, sess, err)
	}

	if len(tasks) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return exitcode.Success
	}

	for i, task := range tasks {
		output.FormatTask(out, i+1, task)
	}
	if !cfg.Quiet {
		output.FormatSummary(out, service.Counts(tasks))
	}
	return exitcode.Success
}

// refreshSummary re-fetches the full list after a mutation and prints the
// derived counters. The client never merges a mutation result locally; the
// backend's list is the only source of truth.
func refreshSummary(ctx context.Context, cfg *config.Config, svc service.Service, out, errOut io.Writer) int {
	tasks, err := svc.ListTasks(ctx)
	if err != nil {
		return reportError(errOut, err)
	}
	if !cfg.Quiet {
		output.FormatSummary(out, service.Counts(tasks))
	}
	return exitcode.Success
}
