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
	Register(&LoginCmd{})
}

// LoginCmd implements the login command. The email can be passed as the
// positional argument; the password is always prompted. A successful
// login replaces any previously persisted token.
type LoginCmd struct {
	in io.Reader
}

// SetInput overrides the prompt input (for testing).
func (c *LoginCmd) SetInput(r io.Reader) {
	c.in = r
}

func (c *LoginCmd) Name() string      { return "login" }
func (c *LoginCmd) Aliases() []string { return nil }
func (c *LoginCmd) Synopsis() string  { return "Authenticate against the backend" }
func (c *LoginCmd) Usage() string     { return "taskcli login [email]" }
func (c *LoginCmd) NeedsAuth() bool   { return false }

func (c *LoginCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *LoginCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	p := newPrompter(c.in, errOut)

	var email string
	if len(args) > 0 {
		email = args[0]
	} else {
		var err error
		if email, err = p.Line("Email: "); err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
	}
	if email == "" {
		fmt.Fprintln(errOut, "error: email required")
		return exitcode.UserError
	}

	password, err := p.Password("Password: ")
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	if password == "" {
		fmt.Fprintln(errOut, "error: password required")
		return exitcode.UserError
	}

	result := sess.Login(ctx, email, password)
	if !result.OK {
		fmt.Fprintf(errOut, "error: %s\n", result.Err)
		return exitcode.AuthError
	}

	if !cfg.Quiet {
		user := sess.Current()
		fmt.Fprintf(out, "logged in as %s <%s>\n", user.Name, user.Email)
	}
	return exitcode.Success
}
