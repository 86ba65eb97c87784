package crossforge

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Executor provides a consistent interface for executing toolchain
// commands, capturing their output instead of streaming it to the
// terminal.
type Executor struct {
	Context context.Context // The context to use for cancellation
}

func NewExecutor(ctx context.Context) *Executor {
	return &Executor{Context: ctx}
}

// CmdResult carries the captured outcome of one external command.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// CommandFailed is returned when a command exits non-zero and the caller
// asked for that to be an error. It keeps the attempted command line and
// the captured stderr so the failure can be reported with full context.
type CommandFailed struct {
	Argv     []string
	ExitCode int
	Stderr   string
}

func (e *CommandFailed) Error() string {
	return fmt.Sprintf("command failed: %s (exit %d)", strings.Join(e.Argv, " "), e.ExitCode)
}

// Capture runs name with args and returns whatever the process produced.
// A non-zero exit is not an error here; ExitCode carries it. The returned
// error is non-nil only when the process could not be started or was
// cancelled through the context.
func (e *Executor) Capture(name string, args ...string) (CmdResult, error) {
	var res CmdResult

	cmd := exec.CommandContext(e.Context, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	// Isolate the child in its own process group so cancellation kills
	// the whole toolchain subtree, not just the direct child.
	setProcGroup(cmd)

	if err := cmd.Start(); err != nil {
		return res, fmt.Errorf("failed to start command: %w", err)
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-e.Context.Done():
			killProcGroup(cmd)
		case <-done:
		}
	}()

	waitErr := cmd.Wait()
	res.Stdout = stdout.String()
	res.Stderr = stderr.String()
	res.ExitCode = cmd.ProcessState.ExitCode()

	if waitErr != nil {
		if e.Context.Err() != nil {
			time.Sleep(100 * time.Millisecond)
			return res, fmt.Errorf("command aborted: %v", e.Context.Err())
		}
		if _, ok := waitErr.(*exec.ExitError); !ok {
			return res, waitErr
		}
	}
	return res, nil
}

// Run executes name with args, echoing the command line and any stdout for
// progress visibility. A non-zero exit comes back as *CommandFailed; the
// caller decides whether that is fatal for the batch.
func (e *Executor) Run(name string, args ...string) (CmdResult, error) {
	printStatus("Running: %s", strings.Join(append([]string{name}, args...), " "))

	res, err := e.Capture(name, args...)
	if err != nil {
		return res, err
	}
	if res.ExitCode != 0 {
		return res, &CommandFailed{
			Argv:     append([]string{name}, args...),
			ExitCode: res.ExitCode,
			Stderr:   res.Stderr,
		}
	}
	if out := strings.TrimSpace(res.Stdout); out != "" {
		fmt.Println(out)
	}
	return res, nil
}
