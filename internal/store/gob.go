package store

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/GriffinCanCode/dirkit/internal/dataset"
)

func init() {
	// Values arriving through the JSON API decode to these dynamic
	// types; register them so gob can round-trip interface payloads.
	gob.Register(map[string]interface{}{})
	gob.Register([]interface{}{})
}

// SaveGob writes v with the Go-native binary codec, overwriting path.
// Gob blobs are Go-only; they are not readable by other languages.
func SaveGob(path string, v interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := gob.NewEncoder(f).Encode(&v); err != nil {
		f.Close()
		return fmt.Errorf("gob encoding error: %w", err)
	}
	return f.Close()
}

// LoadGob reads a gob-encoded value from path. A missing file is
// ErrNotFound.
func LoadGob(path string) (interface{}, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var v interface{}
	if err := gob.NewDecoder(f).Decode(&v); err != nil {
		return nil, fmt.Errorf("gob decoding error: %w", err)
	}
	return v, nil
}

// SaveBlob writes a whole collection as one gob blob, overwriting path.
func SaveBlob(path string, c dataset.Collection) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := gob.NewEncoder(f).Encode(c); err != nil {
		f.Close()
		return fmt.Errorf("gob encoding error: %w", err)
	}
	return f.Close()
}

// LoadBlob reads a collection gob blob. A missing file is ErrNotFound.
func LoadBlob(path string) (dataset.Collection, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var c dataset.Collection
	if err := gob.NewDecoder(f).Decode(&c); err != nil {
		return nil, fmt.Errorf("gob decoding error: %w", err)
	}
	return c, nil
}
