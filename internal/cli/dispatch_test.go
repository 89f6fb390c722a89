package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"taskcli/internal/api"
	"taskcli/internal/cli"
	"taskcli/internal/commands"
	"taskcli/internal/config"
	"taskcli/internal/exitcode"
	"taskcli/internal/service"
	"taskcli/internal/testutil"
)

// testFactory creates a service factory that returns the given FakeService.
func testFactory(svc *testutil.FakeService) cli.ServiceFactory {
	return func(ctx context.Context, cfg *config.Config, client *api.Client) (service.Service, error) {
		return svc, nil
	}
}

// writeToken seeds a persisted token in the given config dir.
func writeToken(t *testing.T, dir, token string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, config.TokenFile), []byte(token), 0600); err != nil {
		t.Fatalf("failed to write token: %v", err)
	}
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeService()))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"unknowncmd"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: unknowncmd\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_FlagBeforeCommand(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeService()))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"--quiet"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: --quiet\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_UnknownFlag(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeService()))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"version", "--bogus"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown flag: -bogus\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_AuthGateBlocksAnonymous(t *testing.T) {
	factoryCalled := false
	factory := func(ctx context.Context, cfg *config.Config, client *api.Client) (service.Service, error) {
		factoryCalled = true
		return testutil.NewFakeService(), nil
	}
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	dir := t.TempDir() // no token inside
	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"list", "--config", dir}, &stdout, &stderr)

	if code != exitcode.AuthError {
		t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
	}
	expected := "error: not logged in (run: taskcli login)\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
	if factoryCalled {
		t.Error("backend must not be built for an anonymous session")
	}
}

func TestDispatcher_ListWithPersistedToken(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", service.StatusPending, "")
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(svc))

	dir := t.TempDir()
	writeToken(t, dir, "abc123")

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"list", "--config", dir}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr.String())
	}
	expected := "   1  [ ] Buy milk\n1 tasks: 0 completed, 1 pending\n"
	if stdout.String() != expected {
		t.Errorf("expected %q, got %q", expected, stdout.String())
	}
}

func TestDispatcher_HelpDispatch(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeService()))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"help"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if !bytes.Contains(stdout.Bytes(), []byte("Usage:")) {
		t.Error("expected help output to contain 'Usage:'")
	}
}

func TestDispatcher_QuietSuppressesSummary(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", service.StatusPending, "")
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(svc))

	dir := t.TempDir()
	writeToken(t, dir, "abc123")

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"list", "--config", dir, "--quiet"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	expected := "   1  [ ] Buy milk\n"
	if stdout.String() != expected {
		t.Errorf("expected %q, got %q", expected, stdout.String())
	}
}

func TestDispatcher_AliasDispatch(t *testing.T) {
	svc := testutil.NewFakeService()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(svc))

	dir := t.TempDir()
	writeToken(t, dir, "abc123")

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"ls", "--config", dir}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr.String())
	}
	if stdout.String() != "no tasks found\n" {
		t.Errorf("unexpected stdout: %q", stdout.String())
	}
}
