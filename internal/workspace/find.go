package workspace

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// FindUp searches for a subdirectory named exactly keyword, starting at
// the current path and walking toward the filesystem root. The first
// match wins. The walk stops after checking the root itself, detected
// by a directory whose parent equals the directory.
func (w *Workspace) FindUp(keyword string) (string, error) {
	if keyword == "" {
		keyword = DefaultKeyword
	}

	cur := w.Path()
	for {
		candidate := filepath.Join(cur, keyword)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", fmt.Errorf("no %q folder above %s: %w", keyword, w.Path(), ErrNotFound)
		}

		w.log.Debug("searching upward for folder",
			zap.String("keyword", keyword),
			zap.String("dir", parent),
		)
		cur = parent
	}
}

// FindDown searches the tree rooted at the current path for the first
// directory whose name contains keyword as a substring. Traversal is
// pre-order with lexicographic sibling order, so results are
// reproducible. Large trees cost time linear in entries visited; there
// is no depth limit.
func (w *Workspace) FindDown(keyword string) (string, error) {
	if keyword == "" {
		keyword = DefaultKeyword
	}

	root := w.Path()
	w.log.Debug("searching downward for folder",
		zap.String("keyword", keyword),
		zap.String("root", root),
	)

	var found string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable entries are skipped, not fatal
		}
		if path == root || !d.IsDir() {
			return nil
		}
		if strings.Contains(d.Name(), keyword) {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("downward search failed: %w", err)
	}
	if found == "" {
		return "", fmt.Errorf("no folder matching %q under %s: %w", keyword, root, ErrNotFound)
	}
	return found, nil
}
