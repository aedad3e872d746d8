package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/dirkit/internal/logging"
)

// DefaultKeyword is the folder name searched for when no keyword is given.
const DefaultKeyword = "data"

var (
	// ErrNotFound reports a missing file, folder, or search match.
	ErrNotFound = errors.New("not found")

	// ErrInvalidKind reports an unsupported entry kind.
	ErrInvalidKind = errors.New("invalid kind")
)

// Workspace tracks a current directory and cached metadata about it.
type Workspace struct {
	mu      sync.RWMutex
	path    string
	parent  string
	entries []string

	home string

	// originParent is the parent of the directory the workspace was
	// constructed at, kept for callers that want the starting point
	// back after navigating away.
	originParent string

	log *logging.Logger
}

// New creates a workspace rooted at the process working directory.
// Failing to read the working directory is a fatal construction error.
func New(log *logging.Logger) (*Workspace, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to read working directory: %w", err)
	}
	return At(cwd, log)
}

// At creates a workspace rooted at an explicit directory.
func At(root string, log *logging.Logger) (*Workspace, error) {
	if log == nil {
		log = logging.NewNop()
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root %s: %w", root, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to stat root %s: %w", abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %s is not a directory", abs)
	}

	// Home lookup failure is not fatal; Home() just reports empty.
	home, _ := os.UserHomeDir()

	w := &Workspace{
		path:         abs,
		parent:       filepath.Dir(abs),
		home:         home,
		originParent: filepath.Dir(abs),
		log:          log,
	}
	if err := w.Refresh(); err != nil {
		return nil, err
	}
	return w, nil
}

// Path returns the current directory.
func (w *Workspace) Path() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.path
}

// Parent returns the parent of the current directory.
func (w *Workspace) Parent() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.parent
}

// Home returns the user home directory captured at construction.
func (w *Workspace) Home() string {
	return w.home
}

// OriginParent returns the parent of the directory the workspace was
// constructed at. Unlike Parent it does not move with Navigate.
func (w *Workspace) OriginParent() string {
	return w.originParent
}

// Entries returns a copy of the cached entry names at the current path.
func (w *Workspace) Entries() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]string, len(w.entries))
	copy(out, w.entries)
	return out
}

// Navigate re-roots the workspace at path and refreshes the cached
// parent and entry listing. Relative paths resolve against the current
// directory. The process working directory is never touched.
func (w *Workspace) Navigate(path string) error {
	target := w.Resolve(path)

	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("navigate to %s failed: %w", target, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("navigate target %s is not a directory", target)
	}

	names, err := readNames(target)
	if err != nil {
		return fmt.Errorf("navigate to %s failed: %w", target, err)
	}

	w.mu.Lock()
	w.path = target
	w.parent = filepath.Dir(target)
	w.entries = names
	w.mu.Unlock()

	w.log.Debug("workspace moved", zap.String("path", target))
	return nil
}

// Refresh re-reads the entry listing at the current path.
func (w *Workspace) Refresh() error {
	names, err := readNames(w.Path())
	if err != nil {
		return fmt.Errorf("refresh failed: %w", err)
	}

	w.mu.Lock()
	w.entries = names
	w.mu.Unlock()
	return nil
}

// Resolve makes path absolute relative to the current directory.
func (w *Workspace) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(w.Path(), path)
}

func readNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names, nil
}
