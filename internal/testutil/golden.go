package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// update reports whether golden files should be rewritten instead of compared.
func update() bool {
	return os.Getenv("GOLDEN_UPDATE") != ""
}

// Golden compares got against testdata/<name>.golden. With GOLDEN_UPDATE set
// in the environment it rewrites the file instead.
func Golden(t *testing.T, name string, got []byte) {
	t.Helper()
	GoldenString(t, name, string(got))
}

// GoldenString is like Golden but takes a string.
func GoldenString(t *testing.T, name string, got string) {
	t.Helper()

	path := filepath.Join("testdata", name+".golden")

	if update() {
		if err := os.MkdirAll("testdata", 0755); err != nil {
			t.Fatalf("failed to create testdata dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(got), 0644); err != nil {
			t.Fatalf("failed to update %s: %v", path, err)
		}
		return
	}

	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v\nGot:\n%s", path, err, got)
	}
	if got != string(want) {
		t.Errorf("output mismatch for %s\nWant:\n%s\nGot:\n%s", name, want, got)
	}
}
