package crossforge

import (
	"os/exec"
	"runtime"
)

// HostEnvironment holds read-only facts about the machine running the
// build. It is queried, never mutated.
type HostEnvironment struct {
	OS string
}

func DetectHost() HostEnvironment {
	return HostEnvironment{OS: runtime.GOOS}
}

// HasTool reports whether a utility is reachable on PATH.
func (h HostEnvironment) HasTool(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
