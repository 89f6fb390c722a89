package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskcli/internal/config"
	"taskcli/internal/exitcode"
	"taskcli/internal/service"
	"taskcli/internal/session"
)

func init() {
	Register(&DoneCmd{})
}

// DoneCmd implements the done command: an update that flips the status
// to completed and leaves everything else as it was.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return []string{"complete"} }
func (c *DoneCmd) Synopsis() string  { return "Mark a task completed" }
func (c *DoneCmd) Usage() string     { return "taskcli done <ref>" }
func (c *DoneCmd) NeedsAuth() bool   { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: task reference required")
		return exitcode.UserError
	}

	task, err := findTask(ctx, svc, args[0])
	if err != nil {
		return reportLookupError(errOut, sess, err)
	}

	draft := service.DraftFrom(task)
	draft.Status = service.StatusCompleted

	if _, err := svc.UpdateTask(ctx, task.ID, draft); err != nil {
		return reportError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return refreshSummary(ctx, cfg, svc, out, errOut)
}
