//go:build windows

package crossforge

import "os/exec"

// Process groups are a POSIX notion; on Windows killing the direct child
// is the best we do.
func setProcGroup(cmd *exec.Cmd) {}

func killProcGroup(cmd *exec.Cmd) {
	if cmd.Process != nil {
		cmd.Process.Kill()
	}
}
