// Package dataset models named collections of tabular data: ordered
// columns and string-valued rows. The payload is opaque to the rest of
// the system; nothing here validates or transforms cell values.
package dataset

import "sort"

// Table is an in-memory table with a header row and string cells.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// Equal reports whether two tables have identical columns and cells.
func (t *Table) Equal(other *Table) bool {
	if other == nil || len(t.Columns) != len(other.Columns) || len(t.Rows) != len(other.Rows) {
		return false
	}
	for i, c := range t.Columns {
		if other.Columns[i] != c {
			return false
		}
	}
	for i, row := range t.Rows {
		if len(row) != len(other.Rows[i]) {
			return false
		}
		for j, cell := range row {
			if other.Rows[i][j] != cell {
				return false
			}
		}
	}
	return true
}

// Collection maps table names to tables.
type Collection map[string]*Table

// Names returns the table names in sorted order.
func (c Collection) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
