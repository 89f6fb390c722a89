package commands

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"taskcli/internal/config"
	"taskcli/internal/exitcode"
	"taskcli/internal/output"
	"taskcli/internal/service"
	"taskcli/internal/session"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command. Deleting asks for confirmation unless
// --force is given; a declined confirmation issues no request at all.
type RmCmd struct {
	force bool
	in    io.Reader
}

// SetForce sets the force flag (for testing).
func (c *RmCmd) SetForce(force bool) {
	c.force = force
}

// SetInput overrides the confirmation input (for testing).
func (c *RmCmd) SetInput(r io.Reader) {
	c.in = r
}

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return []string{"delete"} }
func (c *RmCmd) Synopsis() string  { return "Delete a task" }
func (c *RmCmd) Usage() string     { return "taskcli rm [--force] <ref>" }
func (c *RmCmd) NeedsAuth() bool   { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.force, "force", false, "")
	fs.BoolVar(&c.force, "f", false, "")
}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: task reference required")
		return exitcode.UserError
	}

	task, err := findTask(ctx, svc, args[0])
	if err != nil {
		return reportLookupError(errOut, sess, err)
	}

	if !c.force {
		in := c.in
		if in == nil {
			in = os.Stdin
		}
		fmt.Fprintf(errOut, "delete %q? [y/N] ", output.DisplayTitle(task))
		line, _ := bufio.NewReader(in).ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))
		if answer != "y" && answer != "yes" {
			if !cfg.Quiet {
				fmt.Fprintln(out, "cancelled")
			}
			return exitcode.Success
		}
	}

	if err := svc.DeleteTask(ctx, task.ID); err != nil {
		return reportError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return refreshSummary(ctx, cfg, svc, out, errOut)
}
