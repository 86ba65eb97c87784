package crossforge

import (
	"os"
	"path/filepath"
)

type BuildStatus int

const (
	BuildSucceeded BuildStatus = iota
	BuildSkipped
	BuildFailed
)

// BuildResult is the outcome of one target build. Exactly one of
// BinaryPath, Reason or Err is meaningful, selected by Status.
type BuildResult struct {
	Target     Triple
	Status     BuildStatus
	BinaryPath string // Succeeded: where cargo left the binary
	Reason     string // Skipped: why the build was not attempted
	Err        error  // Failed: what the toolchain reported
}

// Builder drives cargo for a single target at a time.
type Builder struct {
	Exec       *Executor
	BinName    string
	TargetRoot string
	Strip      bool
}

// Build compiles one target in release mode. Cross-compiling a Linux
// target from a Windows host is known-broken without extra linker tooling,
// so that combination is skipped with an actionable message instead of
// failing mid-link. Every other host/target pair is attempted; the
// toolchain itself decides whether it can deliver.
func (b *Builder) Build(t Triple, host HostEnvironment) BuildResult {
	printStatus("Building for %s...", t)

	if host.OS == "windows" && t.OS == "linux" {
		printWarning("Cross-compiling from Windows to Linux is not supported here.")
		printWarning("Please use the CI workflow or build on a Linux host.")
		printStatus("Skipping build for this target...")
		return BuildResult{Target: t, Status: BuildSkipped, Reason: "unsupported host/target cross-compilation combination"}
	}

	if _, err := b.Exec.Run("cargo", "build", "--release", "--target", t.String()); err != nil {
		if cf, ok := err.(*CommandFailed); ok && cf.Stderr != "" {
			printError("Build failed for %s:", t)
			os.Stderr.WriteString(cf.Stderr)
		} else {
			printError("Build failed for %s: %v", t, err)
		}
		return BuildResult{Target: t, Status: BuildFailed, Err: err}
	}

	binaryPath := filepath.Join(b.TargetRoot, t.String(), "release", b.BinName)

	// Strip debug symbols when the host can. Best effort: a failed strip
	// still leaves a working binary, so it only warrants a warning.
	if b.Strip && host.HasTool("strip") {
		if _, err := os.Stat(binaryPath); err == nil {
			printStatus("Stripping %s binary...", t)
			if _, err := b.Exec.Run("strip", binaryPath); err != nil {
				printWarning("Failed to strip %s: %v", binaryPath, err)
			}
		}
	}

	return BuildResult{Target: t, Status: BuildSucceeded, BinaryPath: binaryPath}
}
