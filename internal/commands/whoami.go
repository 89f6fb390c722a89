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
	Register(&WhoamiCmd{})
}

// WhoamiCmd reports the session state. The display name only exists in
// the process that performed the login; with just a persisted token the
// session is authenticated but has no profile to show.
type WhoamiCmd struct{}

func (c *WhoamiCmd) Name() string      { return "whoami" }
func (c *WhoamiCmd) Aliases() []string { return nil }
func (c *WhoamiCmd) Synopsis() string  { return "Show session state" }
func (c *WhoamiCmd) Usage() string     { return "taskcli whoami" }
func (c *WhoamiCmd) NeedsAuth() bool   { return false }

func (c *WhoamiCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *WhoamiCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	switch {
	case sess.Current() != nil:
		user := sess.Current()
		fmt.Fprintf(out, "%s <%s>\n", user.Name, user.Email)
	case sess.IsAuthenticated():
		fmt.Fprintln(out, "logged in")
	default:
		fmt.Fprintln(out, "not logged in")
	}
	return exitcode.Success
}
