package commands

import (
	"fmt"
	"io"

	"taskcli/internal/api"
	"taskcli/internal/exitcode"
	"taskcli/internal/session"
)

// reportError surfaces a failed backend call. Authorization failures get
// the auth exit code and a login hint; everything else is a backend error.
func reportError(errOut io.Writer, err error) int {
	if api.IsUnauthorized(err) {
		fmt.Fprintf(errOut, "error: %v (run: taskcli login)\n", err)
		return exitcode.AuthError
	}
	fmt.Fprintf(errOut, "error: backend error: %v\n", err)
	return exitcode.BackendError
}

// reportListError is reportError plus forced logout: an authorization
// failure while fetching the list means the persisted token is stale, so
// the session is cleared before asking the user to log in again.
func reportListError(errOut io.Writer, sess *session.Store, err error) int {
	if api.IsUnauthorized(err) {
		_ = sess.Logout()
		fmt.Fprintln(errOut, "error: session expired (run: taskcli login)")
		return exitcode.AuthError
	}
	fmt.Fprintf(errOut, "error: backend error: %v\n", err)
	return exitcode.BackendError
}
