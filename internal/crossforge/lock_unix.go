//go:build !windows

package crossforge

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// acquireRunLock takes an exclusive flock on the lock file so a second
// concurrent run against the same project fails fast instead of
// interleaving writes into the release directory.
func acquireRunLock(path string) (func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, err
	}
	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		f.Close()
		return nil, fmt.Errorf("another crossforge run is already in progress: %v", err)
	}
	return func() {
		unix.Flock(int(f.Fd()), unix.LOCK_UN)
		f.Close()
	}, nil
}
