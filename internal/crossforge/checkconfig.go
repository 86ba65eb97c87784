package crossforge

import (
	"fmt"
	"os"
	"strings"
)

// configCheck is one named verification of the project layout.
type configCheck struct {
	Name string
	Run  func(exe *Executor) bool
}

func checkRustInstalled(exe *Executor) bool {
	res, err := exe.Capture("rustc", "--version")
	if err != nil || res.ExitCode != 0 {
		printError("Rust is not installed")
		return false
	}
	printSuccess("Rust is installed: %s", strings.TrimSpace(res.Stdout))
	return true
}

func checkFileContains(path string, needles ...string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		printError("%s not found", path)
		return false
	}
	for _, n := range needles {
		if !strings.Contains(string(data), n) {
			return false
		}
	}
	return true
}

func checkFilesExist(label string, paths ...string) bool {
	ok := true
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			printSuccess("%s found: %s", label, p)
		} else {
			printError("%s not found: %s", label, p)
			ok = false
		}
	}
	return ok
}

// runCheck verifies the project's Linux build configuration: toolchain,
// manifest entries, source-level platform support, CI workflow, build
// scripts and docs. It builds nothing; every check is an existence or
// substring test. Returns the process exit code.
func runCheck(exe *Executor) int {
	printStatus("Testing Linux build configuration...")
	fmt.Println()

	if !inProjectRoot(".") {
		printError("Please run from the project root directory")
		return 1
	}

	checks := []configCheck{
		{"Rust Installation", checkRustInstalled},
		{"Cargo.toml Configuration", func(*Executor) bool {
			if checkFileContains(cargoManifestName, "zenity-dialog") {
				printSuccess("Linux dependencies found in %s", cargoManifestName)
				return true
			}
			printError("Linux dependencies not found in %s", cargoManifestName)
			return false
		}},
		{"install.rs Linux Support", func(*Executor) bool {
			if checkFileContains("src/install.rs", "zenity_dialog", `target_os = "linux"`) {
				printSuccess("Linux support found in install.rs")
				return true
			}
			printError("Linux support not found in install.rs")
			return false
		}},
		{"CI Workflow", func(*Executor) bool {
			return checkFilesExist("CI workflow", ".github/workflows/build-linux.yml")
		}},
		{"Build Scripts", func(*Executor) bool {
			return checkFilesExist("Build script",
				"scripts/build-linux.sh",
				"scripts/build-linux.ps1",
				"scripts/build-cross-platform.py")
		}},
		{"Documentation", func(*Executor) bool {
			return checkFilesExist("Documentation", "docs/linux-builds.md")
		}},
	}

	passed := 0
	for _, c := range checks {
		printStatus("Testing %s...", c.Name)
		if c.Run(exe) {
			passed++
		}
		fmt.Println()
	}

	printStatus("Test Results: %d/%d tests passed", passed, len(checks))
	if passed == len(checks) {
		printSuccess("All tests passed! Linux build configuration is ready.")
		return 0
	}
	printError("Some tests failed. Please fix the issues above.")
	return 1
}
