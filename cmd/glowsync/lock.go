package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// acquireDeviceLock takes a per-device file lock so the backlight and
// spike paths (or two processes) can never drive the same device
// concurrently. Non-blocking; a held lock is fatal at startup.
func acquireDeviceLock(deviceName string) (*flock.Flock, error) {
	path := filepath.Join(os.TempDir(), "glowsync-"+deviceName+".lock")
	lock := flock.New(path)
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("locking %s: %w", path, err)
	}
	if !locked {
		return nil, fmt.Errorf("device %s is already driven by another glowsync instance (lock %s held)", deviceName, path)
	}
	return lock, nil
}
