package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/GriffinCanCode/dirkit/internal/dataset"
)

// SaveCSVDir writes one <name>.csv per table into folder, creating the
// folder when absent. A failure partway leaves the files written so far.
func SaveCSVDir(folder string, c dataset.Collection) error {
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return fmt.Errorf("failed to create folder %s: %w", folder, err)
	}

	for _, name := range c.Names() {
		path := filepath.Join(folder, name+".csv")
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		if err := c[name].WriteCSV(f); err != nil {
			f.Close()
			return fmt.Errorf("failed to write table %s: %w", name, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to close %s: %w", path, err)
		}
	}
	return nil
}

// LoadCSVDir reads every *.csv in folder into a collection keyed by the
// file name without extension. A missing folder is ErrNotFound.
func LoadCSVDir(folder string) (dataset.Collection, error) {
	entries, err := os.ReadDir(folder)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: %w", folder, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read folder %s: %w", folder, err)
	}

	out := dataset.Collection{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".csv") {
			continue
		}

		path := filepath.Join(folder, e.Name())
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}

		t, err := dataset.ReadCSV(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read table %s: %w", e.Name(), err)
		}

		out[strings.TrimSuffix(e.Name(), ".csv")] = t
	}
	return out, nil
}
