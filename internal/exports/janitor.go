package exports

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"ocr-backend/internal/shared/telemetry"
)

// Janitor enforces the retention policy on generated files: anything older
// than TTL is removed on each sweep. A zero TTL disables cleanup entirely.
type Janitor struct {
	ttl      time.Duration
	interval time.Duration
	dirs     []string
}

// NewJanitor constructs a janitor over the given directories.
func NewJanitor(ttl, interval time.Duration, dirs ...string) *Janitor {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Janitor{ttl: ttl, interval: interval, dirs: dirs}
}

// Run sweeps on the configured interval until the context is cancelled.
func (j *Janitor) Run(ctx context.Context) {
	if j.ttl <= 0 {
		return
	}
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed := j.Sweep(time.Now())
			if removed > 0 {
				telemetry.Info("outputs.sweep", map[string]any{"removed": removed})
			}
		}
	}
}

// Sweep removes expired regular files and returns how many were deleted.
func (j *Janitor) Sweep(now time.Time) int {
	if j.ttl <= 0 {
		return 0
	}
	cutoff := now.Add(-j.ttl)

	removed := 0
	for _, dir := range j.dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			info, err := entry.Info()
			if err != nil {
				continue
			}
			if info.ModTime().After(cutoff) {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			if err := os.Remove(path); err != nil {
				telemetry.Warn("outputs.sweep.remove_failed", map[string]any{"path": path, "err": err.Error()})
				continue
			}
			removed++
		}
	}
	return removed
}
