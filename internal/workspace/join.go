package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureSegments joins each segment onto the current path in order,
// creating every level that does not exist yet. Creation is one level
// at a time (os.Mkdir, not MkdirAll): a segment containing several
// missing levels fails. Returns the final joined path without changing
// the current directory. Calling it again with the same segments is a
// no-op.
func (w *Workspace) EnsureSegments(segments ...string) (string, error) {
	cur := w.Path()
	for _, seg := range segments {
		cur = filepath.Join(cur, seg)

		info, err := os.Stat(cur)
		switch {
		case err == nil:
			if !info.IsDir() {
				return "", fmt.Errorf("segment %s exists and is not a directory", cur)
			}
		case os.IsNotExist(err):
			if err := os.Mkdir(cur, 0o755); err != nil {
				return "", fmt.Errorf("failed to create %s: %w", cur, err)
			}
		default:
			return "", fmt.Errorf("failed to stat %s: %w", cur, err)
		}
	}

	// The first segment may have landed in the current directory.
	if len(segments) > 0 {
		_ = w.Refresh()
	}
	return cur, nil
}
