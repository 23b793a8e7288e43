package executor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExecute(t *testing.T) {
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("no /bin/sh")
	}
	e := New()

	out, err := e.Execute(context.Background(), "/bin/sh", "-c", "echo hello")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.TrimSpace(out) != "hello" {
		t.Errorf("Execute() = %q, want hello", out)
	}
}

func TestExecuteStderrInError(t *testing.T) {
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("no /bin/sh")
	}
	e := New()

	_, err := e.Execute(context.Background(), "/bin/sh", "-c", "echo boom >&2; exit 3")
	if err == nil {
		t.Fatal("Execute() should fail")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("error %q does not include stderr", err)
	}
}

func TestExecuteInDir(t *testing.T) {
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("no /bin/sh")
	}
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "marker.txt"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	out, err := New().ExecuteInDir(context.Background(), dir, "/bin/sh", "-c", "ls")
	if err != nil {
		t.Fatalf("ExecuteInDir() error = %v", err)
	}
	if !strings.Contains(out, "marker.txt") {
		t.Errorf("ExecuteInDir() = %q, want marker.txt listed", out)
	}
}

func TestLookPathMissing(t *testing.T) {
	_, err := New().LookPath("definitely-not-a-real-binary-xyz")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("LookPath() error = %v, want ErrNotFound", err)
	}
}

func TestExecuteMissingBinary(t *testing.T) {
	_, err := New().Execute(context.Background(), "definitely-not-a-real-binary-xyz")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Execute() error = %v, want ErrNotFound", err)
	}
}
