package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// Kind selects which entries Count classifies.
type Kind string

const (
	KindFiles       Kind = "files"
	KindDirectories Kind = "directories"
)

// Info describes a file under the current path.
type Info struct {
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	Size      int64     `json:"size"`
	Mode      string    `json:"mode"`
	Modified  time.Time `json:"modified"`
	Extension string    `json:"extension,omitempty"`
	MIMEType  string    `json:"mime_type,omitempty"`
}

// List returns the immediate children of path. Relative paths resolve
// against the current directory; empty means the current directory.
func (w *Workspace) List(path string) ([]string, error) {
	if path == "" {
		path = w.Path()
	}
	names, err := readNames(w.Resolve(path))
	if err != nil {
		return nil, fmt.Errorf("list %s failed: %w", path, err)
	}
	return names, nil
}

// Count counts immediate children of path classified as kind. A kind
// other than files or directories is an invalid-argument error.
func (w *Workspace) Count(path string, kind Kind) (int, error) {
	if kind != KindFiles && kind != KindDirectories {
		return 0, fmt.Errorf("%w: kind must be %q or %q, got %q",
			ErrInvalidKind, KindFiles, KindDirectories, kind)
	}

	if path == "" {
		path = w.Path()
	}
	entries, err := os.ReadDir(w.Resolve(path))
	if err != nil {
		return 0, fmt.Errorf("count %s failed: %w", path, err)
	}

	count := 0
	for _, e := range entries {
		if (kind == KindDirectories) == e.IsDir() {
			count++
		}
	}
	return count, nil
}

// Stat returns size, modification time, and permissions for a file
// under the current path. A missing file is reported as ErrNotFound,
// never a hard failure.
func (w *Workspace) Stat(name string) (*Info, error) {
	full := w.Resolve(name)

	fi, err := os.Stat(full)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("stat %s failed: %w", name, err)
	}

	info := &Info{
		Name:     filepath.Base(full),
		Path:     full,
		Size:     fi.Size(),
		Mode:     fmt.Sprintf("%03o", fi.Mode().Perm()),
		Modified: fi.ModTime(),
	}

	if fi.Mode().IsRegular() {
		info.Extension = filepath.Ext(full)
		if mtype, err := mimetype.DetectFile(full); err == nil {
			info.MIMEType = mtype.String()
		}
	}
	return info, nil
}
