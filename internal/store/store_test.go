package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/dirkit/internal/dataset"
)

func sampleCollection() dataset.Collection {
	return dataset.Collection{
		"measurements": {
			Columns: []string{"ts", "value"},
			Rows: [][]string{
				{"1700000000", "3.5"},
				{"1700000060", "3.7"},
			},
		},
		"labels": {
			Columns: []string{"id", "label"},
			Rows:    [][]string{{"1", "ok"}},
		},
	}
}

func assertCollectionsEqual(t *testing.T, want, got dataset.Collection) {
	t.Helper()
	require.Equal(t, want.Names(), got.Names())
	for _, name := range want.Names() {
		assert.True(t, want[name].Equal(got[name]), "table %s differs", name)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	in := map[string]interface{}{
		"name":  "run-42",
		"count": float64(7),
		"tags":  []interface{}{"a", "b"},
	}

	require.NoError(t, SaveJSON(path, in))

	var out map[string]interface{}
	require.NoError(t, LoadJSON(path, &out))
	assert.Equal(t, in, out)
}

func TestJSONOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, SaveJSON(path, map[string]interface{}{"v": "first"}))
	require.NoError(t, SaveJSON(path, map[string]interface{}{"v": "second"}))

	var out map[string]interface{}
	require.NoError(t, LoadJSON(path, &out))
	assert.Equal(t, "second", out["v"])
}

func TestLoadJSONMissing(t *testing.T) {
	var out interface{}
	err := LoadJSON(filepath.Join(t.TempDir(), "nope.json"), &out)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGobRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.gob")
	in := map[string]interface{}{
		"name":  "run-42",
		"items": []interface{}{"a", "b"},
	}

	require.NoError(t, SaveGob(path, in))

	out, err := LoadGob(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoadGobMissing(t *testing.T) {
	_, err := LoadGob(filepath.Join(t.TempDir(), "nope.gob"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBlobRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.gob")
	in := sampleCollection()

	require.NoError(t, SaveBlob(path, in))

	out, err := LoadBlob(path)
	require.NoError(t, err)
	assertCollectionsEqual(t, in, out)
}

func TestLoadBlobMissing(t *testing.T) {
	_, err := LoadBlob(filepath.Join(t.TempDir(), "nope.gob"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.store")
	in := sampleCollection()

	require.NoError(t, SaveStore(path, in))

	out, err := LoadStore(path)
	require.NoError(t, err)
	assertCollectionsEqual(t, in, out)
}

func TestStoreOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.store")
	require.NoError(t, SaveStore(path, sampleCollection()))

	small := dataset.Collection{"only": {Columns: []string{"x"}, Rows: nil}}
	require.NoError(t, SaveStore(path, small))

	out, err := LoadStore(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"only"}, out.Names())
}

func TestLoadStoreMissing(t *testing.T) {
	_, err := LoadStore(filepath.Join(t.TempDir(), "nope.store"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCSVDirRoundTrip(t *testing.T) {
	folder := filepath.Join(t.TempDir(), "export")
	in := sampleCollection()

	require.NoError(t, SaveCSVDir(folder, in))

	// One file per table, named <table>.csv.
	entries, err := os.ReadDir(folder)
	require.NoError(t, err)
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	assert.ElementsMatch(t, []string{"labels.csv", "measurements.csv"}, names)

	out, err := LoadCSVDir(folder)
	require.NoError(t, err)
	assertCollectionsEqual(t, in, out)
}

func TestLoadCSVDirSkipsOtherFiles(t *testing.T) {
	folder := t.TempDir()
	require.NoError(t, SaveCSVDir(folder, sampleCollection()))
	require.NoError(t, os.WriteFile(filepath.Join(folder, "readme.txt"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(folder, "sub"), 0o755))

	out, err := LoadCSVDir(folder)
	require.NoError(t, err)
	assert.Equal(t, []string{"labels", "measurements"}, out.Names())
}

func TestLoadCSVDirMissing(t *testing.T) {
	_, err := LoadCSVDir(filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, ErrNotFound)
}
