package domain

import "fmt"

// Table describes a set of columns to be rendered with every cell centred
// in a fixed-width field. Rows may be ragged; short rows are padded with
// empty cells at render time.
type Table struct {
	// Headers are the column labels. The header count fixes the column
	// count for the whole table.
	Headers []string

	// Rows are the data cells, one slice per line.
	Rows [][]string

	// ColumnWidth is the field width applied to every cell. 0 renders
	// cells verbatim with no padding.
	ColumnWidth int
}

// Validate checks the table for internal consistency.
func (t Table) Validate() error {
	if len(t.Headers) == 0 {
		return fmt.Errorf("%w: table needs at least one column", ErrInvalidInput)
	}
	if t.ColumnWidth < 0 {
		return fmt.Errorf("%w: column width must not be negative, got %d", ErrInvalidInput, t.ColumnWidth)
	}
	for i, row := range t.Rows {
		if len(row) > len(t.Headers) {
			return fmt.Errorf("%w: row %d has %d cells but the table has %d columns",
				ErrInvalidInput, i, len(row), len(t.Headers))
		}
	}
	return nil
}

// Columns returns the number of columns in the table.
func (t Table) Columns() int {
	return len(t.Headers)
}
