package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ReadCSV parses a table from CSV. The first record is the header; no
// index column is expected.
func ReadCSV(r io.Reader) (*Table, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("CSV parse error: %w", err)
	}

	if len(records) == 0 {
		return &Table{}, nil
	}
	return &Table{
		Columns: records[0],
		Rows:    records[1:],
	}, nil
}

// WriteCSV writes the table as CSV: header row first, no index column.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("CSV write error: %w", err)
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("CSV write error: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("CSV flush error: %w", err)
	}
	return nil
}
