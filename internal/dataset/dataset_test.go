package dataset

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() *Table {
	return &Table{
		Columns: []string{"id", "name", "score"},
		Rows: [][]string{
			{"1", "alpha", "0.5"},
			{"2", "beta", "1.25"},
			{"3", "gamma, with comma", "2"},
		},
	}
}

func TestWriteReadCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleTable().WriteCSV(&buf))

	got, err := ReadCSV(&buf)
	require.NoError(t, err)
	assert.True(t, sampleTable().Equal(got))
}

func TestWriteCSVHeaderFirst(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleTable().WriteCSV(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "id,name,score", lines[0])
}

func TestReadCSVEmpty(t *testing.T) {
	got, err := ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, got.NumRows())
	assert.Empty(t, got.Columns)
}

func TestReadCSVHeaderOnly(t *testing.T) {
	got, err := ReadCSV(strings.NewReader("a,b,c\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got.Columns)
	assert.Equal(t, 0, got.NumRows())
}

func TestEqual(t *testing.T) {
	a := sampleTable()
	assert.True(t, a.Equal(sampleTable()))
	assert.False(t, a.Equal(nil))

	b := sampleTable()
	b.Rows[1][1] = "changed"
	assert.False(t, a.Equal(b))

	c := sampleTable()
	c.Columns = []string{"id", "name"}
	assert.False(t, a.Equal(c))
}

func TestCollectionNames(t *testing.T) {
	c := Collection{
		"zulu":  sampleTable(),
		"alpha": sampleTable(),
		"mike":  sampleTable(),
	}
	assert.Equal(t, []string{"alpha", "mike", "zulu"}, c.Names())
}
