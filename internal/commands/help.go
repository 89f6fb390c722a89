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
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "taskcli help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  taskcli                                            List tasks
  taskcli list [common flags]
  taskcli add [common flags] [--desc <text>] [--due YYYY-MM-DD] <title...>
  taskcli edit [common flags] [--title <text>] [--desc <text>] [--due YYYY-MM-DD] [--status pending|completed] <ref>
  taskcli done [common flags] <ref>
  taskcli rm [common flags] [--force] <ref>
  taskcli register [common flags] [--name <name>] [--email <email>]
  taskcli login [common flags] [email]
  taskcli logout [common flags]
  taskcli whoami [common flags]
  taskcli help
  taskcli version

A <ref> is the task's position in the current list (as printed by
taskcli list) or its server identifier.

Common flags:
  --config <dir>   Override config directory
  --api <url>      Override backend base URL (also TASKCLI_API_URL)
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
