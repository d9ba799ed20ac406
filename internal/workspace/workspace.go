// Package workspace owns the private per-run scratch directory holding
// every intermediate artifact of a pipeline run.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const runPrefix = "giffer-"

// Workspace is a per-run scratch directory. It is created under the
// configured scratch root and removed unconditionally by Close unless the
// run asked to keep it.
type Workspace struct {
	Dir  string
	keep bool
}

// New allocates a fresh run directory under root.
func New(root string, keep bool) (*Workspace, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return nil, errors.New("workspace: empty scratch root")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create scratch root %q: %w", root, err)
	}

	dir := filepath.Join(root, runPrefix+uuid.NewString())
	if err := os.Mkdir(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create run directory %q: %w", dir, err)
	}

	return &Workspace{Dir: dir, keep: keep}, nil
}

// Path returns the absolute path for a named artifact inside the workspace.
func (w *Workspace) Path(name string) string {
	return filepath.Join(w.Dir, name)
}

// Close removes the run directory and everything in it. Safe to call on
// every exit path, including after a partial run.
func (w *Workspace) Close() error {
	if w == nil || w.Dir == "" {
		return nil
	}
	if w.keep {
		return nil
	}
	return os.RemoveAll(w.Dir)
}
