package main

import (
	"fmt"
	"os"

	"github.com/gofrs/flock"

	"csrwatch/internal/config"
)

// acquireRunLock takes the per-host run lock so overlapping cron schedules
// and manual invocations cannot interleave remediation copies. The returned
// release function is safe to defer immediately.
func acquireRunLock(cfg *config.Config) (func(), error) {
	if err := os.MkdirAll(cfg.Paths.LogDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure lock directory: %w", err)
	}

	lock := flock.New(cfg.LockPath())
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock %s: %w", cfg.LockPath(), err)
	}
	if !locked {
		return nil, fmt.Errorf("another csrwatch run holds %s", cfg.LockPath())
	}
	return func() { _ = lock.Unlock() }, nil
}
