// Package session holds the client-side record of the current user.
//
// The store is an explicit state machine: Anonymous -> Authenticating ->
// Authenticated, falling back to Anonymous on failure or logout. The token
// is the only durable piece of state; the user object lives in memory and
// does not survive the process. A fresh process with a persisted token is
// authenticated but has no user profile, and the display name is never
// refetched from the server.
package session

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"taskcli/internal/api"
	"taskcli/internal/config"
)

// State is the session lifecycle state.
type State int

const (
	StateAnonymous State = iota
	StateAuthenticating
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// User is the in-memory identity. Name is derived client-side from the
// email local-part at login and is not authoritative.
type User struct {
	Name  string
	Email string
}

// Result is the outcome of a register or login attempt. API and network
// errors never escape the store as Go errors; they are folded into a
// failed Result with a user-facing message.
type Result struct {
	OK      bool
	Message string
	Err     string
}

func failure(msg string) Result {
	return Result{Err: msg}
}

// Store manages the session against the backend's /users endpoints.
type Store struct {
	cfg    *config.Config
	client *api.Client
	log    *logrus.Entry

	state State
	user  *User
}

// NewStore creates a session store backed by the given config and client.
func NewStore(cfg *config.Config, client *api.Client, log *logrus.Entry) *Store {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Store{cfg: cfg, client: client, log: log, state: StateAnonymous}
}

// State returns the current lifecycle state.
func (s *Store) State() State {
	return s.state
}

// Current returns the in-memory user, or nil when none was built in this
// process (anonymous, or authenticated purely via the persisted token).
func (s *Store) Current() *User {
	return s.user
}

// IsAuthenticated reports whether a user is held in memory or a token is
// persisted. The token check covers a fresh process before any user
// object exists.
func (s *Store) IsAuthenticated() bool {
	return s.user != nil || s.cfg.HasToken()
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerResponse struct {
	Message string `json:"message"`
}

// Register creates an account. It never authenticates the session; the
// caller is expected to run Login afterwards. Password policy (length,
// confirmation match) is enforced by the caller before this is reached.
func (s *Store) Register(ctx context.Context, name, email, password string) Result {
	var resp registerResponse
	err := s.client.Post(ctx, "/users/register", registerRequest{
		Name:     name,
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		s.log.Debugf("register failed: %v", err)
		return failure(err.Error())
	}
	return Result{OK: true, Message: resp.Message}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// Login authenticates against the backend. On success the exact token
// string from the response is persisted and the state becomes
// Authenticated; any failure leaves the session Anonymous.
func (s *Store) Login(ctx context.Context, email, password string) Result {
	s.state = StateAuthenticating

	var resp loginResponse
	err := s.client.Post(ctx, "/users/login", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		s.state = StateAnonymous
		s.log.Debugf("login failed: %v", err)
		return failure(err.Error())
	}
	if resp.Token == "" {
		s.state = StateAnonymous
		return failure("no token received from server")
	}

	if err := s.cfg.SaveToken(resp.Token); err != nil {
		s.state = StateAnonymous
		return failure("failed to save token: " + err.Error())
	}

	s.user = &User{Name: displayName(email), Email: email}
	s.state = StateAuthenticated
	s.log.WithField("email", email).Debug("session authenticated")
	return Result{OK: true, Message: resp.Message}
}

// Logout clears the persisted token and the in-memory user. Idempotent.
func (s *Store) Logout() error {
	err := s.cfg.RemoveToken()
	s.user = nil
	s.state = StateAnonymous
	return err
}

// displayName derives the display name from the email local-part. Login
// responses carry no profile, so the prefix before "@" stands in for the
// real name.
func displayName(email string) string {
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}
