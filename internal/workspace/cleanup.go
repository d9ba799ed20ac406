package workspace

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"giffer/internal/logging"
)

// CleanStaleResult contains the outcome of a stale directory cleanup operation.
type CleanStaleResult struct {
	Removed []string
	Errors  []CleanupError
}

// CleanupError pairs a directory path with its cleanup error.
type CleanupError struct {
	Path  string
	Error error
}

// CleanStale removes run directories under root older than maxAge. These
// can only be left behind by a crashed run (or one started with
// scratch.keep) since Close removes the directory on every normal exit
// path. A file lock on the scratch root keeps concurrent runs from racing
// each other's cleanup; when the lock is held elsewhere the sweep is
// skipped entirely.
func CleanStale(root string, maxAge time.Duration, logger *slog.Logger) CleanStaleResult {
	result := CleanStaleResult{}
	if logger == nil {
		logger = logging.NewNop()
	}

	root = strings.TrimSpace(root)
	if root == "" {
		return result
	}

	lock := flock.New(filepath.Join(root, ".giffer.lock"))
	locked, err := lock.TryLock()
	if err != nil || !locked {
		if err != nil {
			logger.Debug("skipping stale cleanup", logging.Error(err))
		}
		return result
	}
	defer func() {
		_ = lock.Unlock()
	}()

	entries, err := os.ReadDir(root)
	if err != nil {
		if !os.IsNotExist(err) {
			result.Errors = append(result.Errors, CleanupError{Path: root, Error: err})
		}
		return result
	}

	cutoff := time.Now().Add(-maxAge)

	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), runPrefix) {
			continue
		}

		dirPath := filepath.Join(root, entry.Name())
		info, err := entry.Info()
		if err != nil {
			result.Errors = append(result.Errors, CleanupError{Path: dirPath, Error: err})
			continue
		}
		if !info.ModTime().Before(cutoff) {
			continue
		}

		if err := os.RemoveAll(dirPath); err != nil {
			result.Errors = append(result.Errors, CleanupError{Path: dirPath, Error: err})
			logger.Warn("failed to remove stale run directory",
				logging.String("path", dirPath),
				logging.Error(err),
			)
			continue
		}
		result.Removed = append(result.Removed, dirPath)
		logger.Info("removed stale run directory",
			logging.String("path", dirPath),
			logging.Duration("age", time.Since(info.ModTime())),
		)
	}

	return result
}
