package session_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"taskcli/internal/api"
	"taskcli/internal/config"
	"taskcli/internal/logging"
	"taskcli/internal/session"
)

func newStore(t *testing.T, handler http.HandlerFunc) (*session.Store, *config.Config) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{Dir: t.TempDir(), BaseURL: srv.URL}
	client := api.New(cfg.BaseURL, cfg, logging.Discard())
	return session.NewStore(cfg, client, logging.Discard()), cfg
}

func TestLogin_Success(t *testing.T) {
	store, cfg := newStore(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"message": "Login successful", "token": "abc123"})
	})

	result := store.Login(context.Background(), "a@b.com", "secret1")

	if !result.OK {
		t.Fatalf("expected success, got %q", result.Err)
	}
	if result.Message != "Login successful" {
		t.Errorf("expected server message, got %q", result.Message)
	}
	if store.State() != session.StateAuthenticated {
		t.Errorf("expected authenticated state, got %v", store.State())
	}
	if got := cfg.Token(); got != "abc123" {
		t.Errorf("expected token %q persisted, got %q", "abc123", got)
	}
	user := store.Current()
	if user == nil {
		t.Fatal("expected in-memory user after login")
	}
	if user.Name != "a" || user.Email != "a@b.com" {
		t.Errorf("unexpected user: %+v", user)
	}
	if !store.IsAuthenticated() {
		t.Error("expected IsAuthenticated immediately after login")
	}
}

func TestLogin_NoTokenInResponse(t *testing.T) {
	store, cfg := newStore(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"message": "Login successful"})
	})

	result := store.Login(context.Background(), "a@b.com", "secret1")

	if result.OK {
		t.Fatal("expected failure for missing token")
	}
	if result.Err != "no token received from server" {
		t.Errorf("unexpected error: %q", result.Err)
	}
	if store.State() != session.StateAnonymous {
		t.Errorf("expected anonymous state, got %v", store.State())
	}
	if cfg.HasToken() {
		t.Error("no token may be persisted")
	}
}

func TestLogin_ServerRejects(t *testing.T) {
	store, _ := newStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
	})

	result := store.Login(context.Background(), "a@b.com", "wrong")

	if result.OK {
		t.Fatal("expected failure")
	}
	if result.Err != "Invalid credentials" {
		t.Errorf("unexpected error: %q", result.Err)
	}
	if store.IsAuthenticated() {
		t.Error("session must stay anonymous on failure")
	}
}

func TestLogin_NetworkErrorFoldedIntoResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	cfg := &config.Config{Dir: t.TempDir(), BaseURL: srv.URL}
	client := api.New(cfg.BaseURL, cfg, logging.Discard())
	store := session.NewStore(cfg, client, logging.Discard())

	result := store.Login(context.Background(), "a@b.com", "secret1")

	if result.OK {
		t.Fatal("expected failure")
	}
	if result.Err == "" {
		t.Error("expected a user-facing error message")
	}
	if store.State() != session.StateAnonymous {
		t.Errorf("expected anonymous state, got %v", store.State())
	}
}

func TestRegister_DoesNotAuthenticate(t *testing.T) {
	store, cfg := newStore(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/register" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]string{"message": "User registered successfully"})
	})

	result := store.Register(context.Background(), "Alice", "alice@example.com", "secret1")

	if !result.OK {
		t.Fatalf("expected success, got %q", result.Err)
	}
	if store.IsAuthenticated() {
		t.Error("register must not authenticate the session")
	}
	if cfg.HasToken() {
		t.Error("register must not persist a token")
	}
}

func TestIsAuthenticated_PersistedTokenOnly(t *testing.T) {
	// A fresh process finds the token on disk but has no user object yet.
	cfg := &config.Config{Dir: t.TempDir(), BaseURL: "http://127.0.0.1:1"}
	if err := cfg.SaveToken("abc123"); err != nil {
		t.Fatalf("failed to save token: %v", err)
	}
	client := api.New(cfg.BaseURL, cfg, logging.Discard())
	store := session.NewStore(cfg, client, logging.Discard())

	if !store.IsAuthenticated() {
		t.Error("expected IsAuthenticated with a persisted token")
	}
	if store.Current() != nil {
		t.Error("no user object should exist before a login in this process")
	}
}

func TestLogout_Idempotent(t *testing.T) {
	store, cfg := newStore(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"message": "Login successful", "token": "abc123"})
	})

	if result := store.Login(context.Background(), "a@b.com", "secret1"); !result.OK {
		t.Fatalf("login failed: %q", result.Err)
	}

	if err := store.Logout(); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if store.IsAuthenticated() {
		t.Error("expected anonymous session after logout")
	}
	if cfg.HasToken() {
		t.Error("expected token removed after logout")
	}

	// Second logout is a no-op, not an error.
	if err := store.Logout(); err != nil {
		t.Errorf("repeat logout failed: %v", err)
	}
}
