package workspace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"
	"go.uber.org/zap"
)

// SearchNames recursively collects paths of files whose name contains
// pattern as a substring. Substring match, not glob. Results are sorted
// because the underlying walk is parallel.
func (w *Workspace) SearchNames(pattern string) ([]string, error) {
	root := w.Path()

	var mu sync.Mutex
	matches := []string{}
	conf := fastwalk.Config{Follow: false}

	err := fastwalk.Walk(&conf, root, func(p string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if strings.Contains(filepath.Base(p), pattern) {
			mu.Lock()
			matches = append(matches, p)
			mu.Unlock()
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	sort.Strings(matches)
	return matches, nil
}

// Glob matches paths under the current directory with doublestar
// patterns, e.g. "**/*.csv".
func (w *Workspace) Glob(pattern string) ([]string, error) {
	root := w.Path()

	matches, err := doublestar.FilepathGlob(filepath.Join(root, pattern))
	if err != nil {
		return nil, fmt.Errorf("glob failed: %w", err)
	}

	rel := make([]string, 0, len(matches))
	for _, m := range matches {
		if r, err := filepath.Rel(root, m); err == nil {
			rel = append(rel, r)
		}
	}
	return rel, nil
}

// Move moves the named file from the current directory into destDir,
// creating destDir when absent. A missing source and an I/O failure
// during the move are both logged and returned as non-fatal errors;
// neither leaves a partial copy in destDir.
func (w *Workspace) Move(name, destDir string) error {
	src := w.Resolve(name)
	dest := w.Resolve(destDir)

	if _, err := os.Stat(src); os.IsNotExist(err) {
		w.log.Warn("move skipped, source missing",
			zap.String("file", name),
			zap.String("dest", destDir),
		)
		return fmt.Errorf("%s: %w", name, ErrNotFound)
	}

	if err := os.MkdirAll(dest, 0o755); err != nil {
		return fmt.Errorf("failed to create destination %s: %w", destDir, err)
	}

	target := filepath.Join(dest, filepath.Base(src))
	if err := os.Rename(src, target); err != nil {
		// Rename fails across filesystems; fall back to copy+remove.
		if cerr := copyFile(src, target); cerr != nil {
			w.log.Error("move failed",
				zap.String("file", name),
				zap.String("dest", destDir),
				zap.Error(err),
			)
			return fmt.Errorf("failed to move %s to %s: %w", name, destDir, err)
		}
		if err := os.Remove(src); err != nil {
			w.log.Warn("source left behind after copy",
				zap.String("file", name),
				zap.Error(err),
			)
		}
	}

	_ = w.Refresh()
	w.log.Info("file moved",
		zap.String("file", name),
		zap.String("dest", destDir),
	)
	return nil
}

// Remove deletes the named file under the current path. Absent files
// are a silent no-op.
func (w *Workspace) Remove(name string) error {
	full := w.Resolve(name)

	if _, err := os.Stat(full); os.IsNotExist(err) {
		w.log.Debug("delete skipped, file missing", zap.String("file", name))
		return nil
	}

	if err := os.Remove(full); err != nil {
		return fmt.Errorf("failed to delete %s: %w", name, err)
	}

	_ = w.Refresh()
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	return out.Close()
}
