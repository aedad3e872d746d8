package store

import (
	"archive/zip"
	"encoding/gob"
	"fmt"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/GriffinCanCode/dirkit/internal/dataset"
)

// SaveStore writes the collection as a single table-store file: a ZIP
// container with one entry per table name, each a zstd-compressed gob
// encoding of the table. The format is specific to this package; no
// external tooling reads it.
func SaveStore(path string, c dataset.Collection) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	zw := zip.NewWriter(f)
	for _, name := range c.Names() {
		entry, err := zw.Create(name)
		if err != nil {
			f.Close()
			return fmt.Errorf("failed to add table %s: %w", name, err)
		}

		enc, err := zstd.NewWriter(entry)
		if err != nil {
			f.Close()
			return fmt.Errorf("zstd init failed: %w", err)
		}
		if err := gob.NewEncoder(enc).Encode(c[name]); err != nil {
			enc.Close()
			f.Close()
			return fmt.Errorf("failed to encode table %s: %w", name, err)
		}
		if err := enc.Close(); err != nil {
			f.Close()
			return fmt.Errorf("failed to flush table %s: %w", name, err)
		}
	}

	if err := zw.Close(); err != nil {
		f.Close()
		return fmt.Errorf("failed to finalize %s: %w", path, err)
	}
	return f.Close()
}

// LoadStore reads every table from a table-store file. A missing file
// is ErrNotFound.
func LoadStore(path string) (dataset.Collection, error) {
	zr, err := zip.OpenReader(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer zr.Close()

	out := dataset.Collection{}
	for _, zf := range zr.File {
		rc, err := zf.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open table %s: %w", zf.Name, err)
		}

		dec, err := zstd.NewReader(rc)
		if err != nil {
			rc.Close()
			return nil, fmt.Errorf("zstd init failed: %w", err)
		}

		var t dataset.Table
		if err := gob.NewDecoder(dec).Decode(&t); err != nil {
			dec.Close()
			rc.Close()
			return nil, fmt.Errorf("failed to decode table %s: %w", zf.Name, err)
		}
		dec.Close()
		rc.Close()

		out[zf.Name] = &t
	}
	return out, nil
}
