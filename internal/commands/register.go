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

// minPasswordLength is the client-side password policy checked before any
// network call is attempted.
const minPasswordLength = 6

func init() {
	Register(&RegisterCmd{})
}

// RegisterCmd implements the register command. Name and email can be given
// as flags; anything missing is prompted for. The password and its
// confirmation are always prompted (they never appear in shell history).
type RegisterCmd struct {
	name  string
	email string
	in    io.Reader
}

// SetInput overrides the prompt input (for testing).
func (c *RegisterCmd) SetInput(r io.Reader) {
	c.in = r
}

func (c *RegisterCmd) Name() string      { return "register" }
func (c *RegisterCmd) Aliases() []string { return nil }
func (c *RegisterCmd) Synopsis() string  { return "Create an account" }
func (c *RegisterCmd) Usage() string {
	return "taskcli register [--name <name>] [--email <email>]"
}
func (c *RegisterCmd) NeedsAuth() bool { return false }

func (c *RegisterCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.name, "name", "", "")
	fs.StringVar(&c.email, "email", "", "")
}

func (c *RegisterCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	p := newPrompter(c.in, errOut)

	name := c.name
	if name == "" {
		var err error
		if name, err = p.Line("Full name: "); err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
	}
	if name == "" {
		fmt.Fprintln(errOut, "error: name required")
		return exitcode.UserError
	}

	email := c.email
	if email == "" {
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
	// Policy checks happen before the confirmation prompt and before any
	// request goes out.
	if len(password) < minPasswordLength {
		fmt.Fprintf(errOut, "error: password must be at least %d characters\n", minPasswordLength)
		return exitcode.UserError
	}

	confirm, err := p.Password("Confirm password: ")
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	if password != confirm {
		fmt.Fprintln(errOut, "error: passwords do not match")
		return exitcode.UserError
	}

	result := sess.Register(ctx, name, email, password)
	if !result.OK {
		fmt.Fprintf(errOut, "error: %s\n", result.Err)
		return exitcode.BackendError
	}

	// Registration does not authenticate the session.
	if !cfg.Quiet {
		msg := result.Message
		if msg == "" {
			msg = "registration successful"
		}
		fmt.Fprintln(out, msg)
		fmt.Fprintln(out, "run: taskcli login")
	}
	return exitcode.Success
}
