package crossforge

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func newTestExecutor(t *testing.T) *Executor {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return NewExecutor(ctx)
}

func TestExecutor_CaptureOutput(t *testing.T) {
	exe := newTestExecutor(t)

	res, err := exe.Capture("sh", "-c", "echo out; echo err >&2")
	if err != nil {
		t.Fatalf("Capture failed: %v", err)
	}
	if strings.TrimSpace(res.Stdout) != "out" {
		t.Errorf("stdout = %q", res.Stdout)
	}
	if strings.TrimSpace(res.Stderr) != "err" {
		t.Errorf("stderr = %q", res.Stderr)
	}
	if res.ExitCode != 0 {
		t.Errorf("exit code = %d", res.ExitCode)
	}
}

func TestExecutor_CaptureNonZeroIsNotAnError(t *testing.T) {
	exe := newTestExecutor(t)

	res, err := exe.Capture("sh", "-c", "exit 42")
	if err != nil {
		t.Fatalf("Capture should not fail on a non-zero exit: %v", err)
	}
	if res.ExitCode != 42 {
		t.Errorf("exit code = %d, want 42", res.ExitCode)
	}
}

func TestExecutor_RunReturnsCommandFailed(t *testing.T) {
	exe := newTestExecutor(t)

	_, err := exe.Run("sh", "-c", "echo broken >&2; exit 3")
	if err == nil {
		t.Fatal("expected an error for a non-zero exit")
	}
	var cf *CommandFailed
	if !errors.As(err, &cf) {
		t.Fatalf("expected *CommandFailed, got %T: %v", err, err)
	}
	if cf.ExitCode != 3 {
		t.Errorf("exit code = %d, want 3", cf.ExitCode)
	}
	if !strings.Contains(cf.Stderr, "broken") {
		t.Errorf("stderr not carried: %q", cf.Stderr)
	}
	if len(cf.Argv) == 0 || cf.Argv[0] != "sh" {
		t.Errorf("argv not carried: %v", cf.Argv)
	}
}

func TestExecutor_MissingBinary(t *testing.T) {
	exe := newTestExecutor(t)

	if _, err := exe.Capture("definitely-not-a-real-binary-xyz"); err == nil {
		t.Fatal("expected a start failure for a missing binary")
	}
}

func TestExecutor_ContextCancelKillsChild(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	exe := NewExecutor(ctx)

	done := make(chan error, 1)
	go func() {
		_, err := exe.Capture("sleep", "60")
		done <- err
	}()

	time.Sleep(200 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err == nil {
			t.Fatal("expected an error after cancellation")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("child survived context cancellation")
	}
}
