// Package fsutil provides the small filesystem pieces the fixture patterns
// are demonstrated with: sorted directory listing and a disposable workspace
// with an explicit cleanup guard.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
)

// SortedFileNames returns the names of the entries in dir, sorted.
func SortedFileNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Workspace is a disposable directory with its cleanup attached. The guard
// travels with the resource, so release happens on every exit path instead
// of relying on an external collector of side effects.
type Workspace struct {
	Dir string

	removed bool
}

// NewWorkspace creates a uniquely named directory under parent (os.TempDir
// when parent is empty). The uuid suffix keeps parallel users from
// colliding.
func NewWorkspace(parent string) (*Workspace, error) {
	if parent == "" {
		parent = os.TempDir()
	}
	dir := filepath.Join(parent, "devtasks-"+uuid.NewString())
	if err := os.Mkdir(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}
	return &Workspace{Dir: dir}, nil
}

// Close removes the workspace directory and everything in it. Safe to call
// more than once; defer it right after NewWorkspace succeeds.
func (w *Workspace) Close() error {
	if w.removed {
		return nil
	}
	if err := os.RemoveAll(w.Dir); err != nil {
		return fmt.Errorf("remove workspace: %w", err)
	}
	w.removed = true
	return nil
}
