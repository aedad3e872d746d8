package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/dirkit/internal/logging"
)

func newTestWorkspace(t *testing.T) *Workspace {
	t.Helper()
	w, err := At(t.TempDir(), logging.NewNop())
	require.NoError(t, err)
	return w
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// TestAt tests workspace construction at an explicit root
func TestAt(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "a")
	require.NoError(t, os.Mkdir(filepath.Join(root, "sub"), 0o755))

	w, err := At(root, nil)
	require.NoError(t, err)

	assert.Equal(t, root, w.Path())
	assert.Equal(t, filepath.Dir(root), w.Parent())
	assert.ElementsMatch(t, []string{"a.txt", "sub"}, w.Entries())
}

func TestAtRejectsFile(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "plain.txt")
	writeFile(t, file, "x")

	_, err := At(file, nil)
	assert.Error(t, err)
}

func TestAtRejectsMissing(t *testing.T) {
	_, err := At(filepath.Join(t.TempDir(), "nope"), nil)
	assert.Error(t, err)
}

// TestNavigate tests re-rooting and cache consistency
func TestNavigate(t *testing.T) {
	w := newTestWorkspace(t)
	sub := filepath.Join(w.Path(), "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writeFile(t, filepath.Join(sub, "inner.txt"), "i")

	require.NoError(t, w.Navigate("sub"))

	assert.Equal(t, sub, w.Path())
	assert.Equal(t, filepath.Dir(sub), w.Parent())
	assert.Equal(t, []string{"inner.txt"}, w.Entries())
}

func TestNavigateMissing(t *testing.T) {
	w := newTestWorkspace(t)
	before := w.Path()

	err := w.Navigate("does-not-exist")
	assert.Error(t, err)
	// Failed navigation leaves the workspace where it was.
	assert.Equal(t, before, w.Path())
}

func TestNavigateAbsolute(t *testing.T) {
	w := newTestWorkspace(t)
	other := t.TempDir()

	require.NoError(t, w.Navigate(other))
	assert.Equal(t, other, w.Path())
}

func TestEntriesReturnsCopy(t *testing.T) {
	w := newTestWorkspace(t)
	writeFile(t, filepath.Join(w.Path(), "a.txt"), "a")
	require.NoError(t, w.Refresh())

	entries := w.Entries()
	require.Len(t, entries, 1)
	entries[0] = "mutated"

	assert.Equal(t, []string{"a.txt"}, w.Entries())
}

// TestEnsureSegments tests single-level creation and idempotence
func TestEnsureSegments(t *testing.T) {
	w := newTestWorkspace(t)

	path, err := w.EnsureSegments("raw", "2026", "jan")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(w.Path(), "raw", "2026", "jan"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Second call is a no-op with the same result.
	again, err := w.EnsureSegments("raw", "2026", "jan")
	require.NoError(t, err)
	assert.Equal(t, path, again)

	// Current directory is unchanged, but the first level shows up
	// in the cached listing.
	assert.Contains(t, w.Entries(), "raw")
}

func TestEnsureSegmentsFileCollision(t *testing.T) {
	w := newTestWorkspace(t)
	writeFile(t, filepath.Join(w.Path(), "raw"), "not a dir")

	_, err := w.EnsureSegments("raw", "2026")
	assert.Error(t, err)
}

func TestListAndCount(t *testing.T) {
	w := newTestWorkspace(t)
	writeFile(t, filepath.Join(w.Path(), "a.txt"), "a")
	writeFile(t, filepath.Join(w.Path(), "b.txt"), "b")
	require.NoError(t, os.Mkdir(filepath.Join(w.Path(), "sub"), 0o755))

	entries, err := w.List("")
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	files, err := w.Count("", KindFiles)
	require.NoError(t, err)
	assert.Equal(t, 2, files)

	dirs, err := w.Count("", KindDirectories)
	require.NoError(t, err)
	assert.Equal(t, 1, dirs)

	// Count of files plus directories covers every entry.
	assert.Equal(t, len(entries), files+dirs)
}

func TestCountInvalidKind(t *testing.T) {
	w := newTestWorkspace(t)

	_, err := w.Count("", Kind("symlinks"))
	assert.ErrorIs(t, err, ErrInvalidKind)
}

func TestStat(t *testing.T) {
	w := newTestWorkspace(t)
	writeFile(t, filepath.Join(w.Path(), "report.json"), `{"ok":true}`)

	info, err := w.Stat("report.json")
	require.NoError(t, err)

	assert.Equal(t, "report.json", info.Name)
	assert.Equal(t, int64(11), info.Size)
	assert.Equal(t, "644", info.Mode)
	assert.Equal(t, ".json", info.Extension)
	assert.False(t, info.Modified.IsZero())
	assert.NotEmpty(t, info.MIMEType)
}

func TestStatMissing(t *testing.T) {
	w := newTestWorkspace(t)

	_, err := w.Stat("ghost.txt")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemove(t *testing.T) {
	w := newTestWorkspace(t)
	writeFile(t, filepath.Join(w.Path(), "doomed.txt"), "x")
	require.NoError(t, w.Refresh())

	require.NoError(t, w.Remove("doomed.txt"))

	_, err := w.Stat("doomed.txt")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotContains(t, w.Entries(), "doomed.txt")
}

func TestRemoveMissingIsNoop(t *testing.T) {
	w := newTestWorkspace(t)
	assert.NoError(t, w.Remove("never-existed.txt"))
}

func TestMove(t *testing.T) {
	w := newTestWorkspace(t)
	writeFile(t, filepath.Join(w.Path(), "payload.txt"), "payload")

	require.NoError(t, w.Move("payload.txt", "archive"))

	moved, err := os.ReadFile(filepath.Join(w.Path(), "archive", "payload.txt"))
	require.NoError(t, err)
	assert.Equal(t, "payload", string(moved))

	_, err = os.Stat(filepath.Join(w.Path(), "payload.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestMoveMissingSource(t *testing.T) {
	w := newTestWorkspace(t)

	err := w.Move("ghost.txt", "archive")
	assert.ErrorIs(t, err, ErrNotFound)

	// Destination folder is created before the move happens; the
	// missing-source check fires first, so nothing is created here.
	_, statErr := os.Stat(filepath.Join(w.Path(), "archive"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestSearchNames(t *testing.T) {
	w := newTestWorkspace(t)
	sub := filepath.Join(w.Path(), "nested")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writeFile(t, filepath.Join(w.Path(), "report_jan.csv"), "a")
	writeFile(t, filepath.Join(sub, "report_feb.csv"), "b")
	writeFile(t, filepath.Join(sub, "notes.txt"), "c")

	matches, err := w.SearchNames("report")
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(w.Path(), "nested", "report_feb.csv"),
		filepath.Join(w.Path(), "report_jan.csv"),
	}, matches)
}

func TestGlob(t *testing.T) {
	w := newTestWorkspace(t)
	sub := filepath.Join(w.Path(), "nested")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writeFile(t, filepath.Join(w.Path(), "top.csv"), "a")
	writeFile(t, filepath.Join(sub, "deep.csv"), "b")
	writeFile(t, filepath.Join(sub, "deep.txt"), "c")

	matches, err := w.Glob("**/*.csv")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"top.csv",
		filepath.Join("nested", "deep.csv"),
	}, matches)
}
