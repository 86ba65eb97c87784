package crossforge

import (
	"os"
	"testing"
)

// chdirT changes the working directory for the duration of the test and
// restores it on cleanup. It stands in for testing.T.Chdir, which needs a
// newer Go toolchain than the one building this module.
func chdirT(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to change directory to %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("failed to restore working directory: %v", err)
		}
	})
}
