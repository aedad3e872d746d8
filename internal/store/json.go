package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/bytedance/sonic"
)

// ErrNotFound reports a missing file or folder on load.
var ErrNotFound = errors.New("not found")

// sonicThreshold is the payload size above which sonic decodes instead
// of encoding/json.
const sonicThreshold = 10 * 1024

// SaveJSON writes v as indented UTF-8 JSON, overwriting path.
func SaveJSON(path string, v interface{}) error {
	data, err := sonic.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON encoding error: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// LoadJSON reads JSON from path into v. A missing file is ErrNotFound.
func LoadJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	// sonic pays off on large payloads; encoding/json wins small ones.
	if len(data) > sonicThreshold {
		if err := sonic.Unmarshal(data, v); err != nil {
			return fmt.Errorf("JSON parse error: %w", err)
		}
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("JSON parse error: %w", err)
	}
	return nil
}
