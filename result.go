package mockstore

import (
	"fmt"
	"strings"
)

// Result is the column-named, row-ordered tabular response handed back on
// a successful query match. Rows are appended in registration order and
// every row carries exactly one cell per column.
type Result struct {
	columns []string
	rows    [][]Value
}

// NewResult creates an empty result with the given column names.
func NewResult(columns ...string) *Result {
	return &Result{columns: columns}
}

// AddRow appends a row of cells. The row arity must match the column
// count; a mismatch is a test-authoring error and is rejected here so it
// surfaces at registration rather than deep inside the system under test.
func (r *Result) AddRow(cells ...Value) error {
	if len(cells) != len(r.columns) {
		return fmt.Errorf("row has %d cells, result has %d columns %v",
			len(cells), len(r.columns), r.columns)
	}
	r.rows = append(r.rows, cells)
	return nil
}

// Columns returns a copy of the column names.
func (r *Result) Columns() []string {
	cols := make([]string, len(r.columns))
	copy(cols, r.columns)
	return cols
}

// ColumnCount returns the number of columns.
func (r *Result) ColumnCount() int {
	return len(r.columns)
}

// RowCount returns the number of rows.
func (r *Result) RowCount() int {
	return len(r.rows)
}

// Row returns the cells of row i in column order.
// Panics if i is out of range, mirroring slice indexing.
func (r *Result) Row(i int) []Value {
	row := make([]Value, len(r.rows[i]))
	copy(row, r.rows[i])
	return row
}

// Get returns the cell at row i for the named column.
// The second return is false when the column does not exist.
func (r *Result) Get(i int, column string) (Value, bool) {
	for c, name := range r.columns {
		if name == column {
			return r.rows[i][c], true
		}
	}
	return nil, false
}

// String renders the result for diagnostics: the column list followed by
// one line per row.
func (r *Result) String() string {
	var b strings.Builder
	b.WriteString(renderStringList(r.columns))
	for _, row := range r.rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = RenderValue(cell)
		}
		b.WriteString("\n")
		b.WriteString(renderStringList(cells))
	}
	return b.String()
}
