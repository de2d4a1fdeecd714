// Package fitstable reads FITS binary tables, the columnar format radio
// interferometry packages use to ship per-channel beam parameters alongside
// image cubes.
//
// Only the subset of the FITS 3.0 standard needed for such tables is
// implemented: header keyword records, BINTABLE extensions with scalar and
// fixed-array fields, and gzip-compressed input. Image HDUs are skipped.
package fitstable

import (
	"errors"
	"fmt"
)

// ErrNoSuchColumn is returned when a named column is absent from a table.
var ErrNoSuchColumn = errors.New("no such column")

// Column is a single named column of a binary table.
type Column struct {
	Name   string
	Values []any
}

// BinTable is an in-memory FITS binary table: a fixed number of rows over
// named, ordered columns. Values are the decoded Go representations of the
// FITS field types (bool, uint8, int16, int32, int64, float32, float64,
// string, or slices of those for array fields).
type BinTable struct {
	names []string
	cols  map[string][]any
	nrows int
}

// NewBinTable assembles a table from columns. All columns must have the
// same number of values and distinct names; column order is preserved.
func NewBinTable(columns []Column) (*BinTable, error) {
	t := &BinTable{cols: make(map[string][]any, len(columns))}
	for i, c := range columns {
		if _, dup := t.cols[c.Name]; dup {
			return nil, fmt.Errorf("fitstable: duplicate column %q", c.Name)
		}
		if i == 0 {
			t.nrows = len(c.Values)
		} else if len(c.Values) != t.nrows {
			return nil, fmt.Errorf("fitstable: column %q has %d rows, want %d", c.Name, len(c.Values), t.nrows)
		}
		t.names = append(t.names, c.Name)
		t.cols[c.Name] = c.Values
	}
	return t, nil
}

// NumRows returns the number of rows.
func (t *BinTable) NumRows() int { return t.nrows }

// Columns returns the column names in table order.
func (t *BinTable) Columns() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// HasColumn reports whether a column with the given name exists.
func (t *BinTable) HasColumn(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// Column returns all values of the named column in row order.
func (t *BinTable) Column(name string) ([]any, error) {
	col, ok := t.cols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSuchColumn, name)
	}
	return col, nil
}

// Value returns the cell at the named column and row.
func (t *BinTable) Value(name string, row int) (any, error) {
	col, ok := t.cols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSuchColumn, name)
	}
	if row < 0 || row >= t.nrows {
		return nil, fmt.Errorf("fitstable: row %d out of range [0,%d)", row, t.nrows)
	}
	return col[row], nil
}

// Row returns one row as a name-to-value mapping.
func (t *BinTable) Row(row int) (map[string]any, error) {
	if row < 0 || row >= t.nrows {
		return nil, fmt.Errorf("fitstable: row %d out of range [0,%d)", row, t.nrows)
	}
	out := make(map[string]any, len(t.names))
	for _, name := range t.names {
		out[name] = t.cols[name][row]
	}
	return out, nil
}

// Float64Column returns a numeric column widened to float64. It fails on
// non-numeric or array-valued cells.
func (t *BinTable) Float64Column(name string) ([]float64, error) {
	col, ok := t.cols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSuchColumn, name)
	}
	out := make([]float64, len(col))
	for i, v := range col {
		switch x := v.(type) {
		case float64:
			out[i] = x
		case float32:
			out[i] = float64(x)
		case int64:
			out[i] = float64(x)
		case int32:
			out[i] = float64(x)
		case int16:
			out[i] = float64(x)
		case uint8:
			out[i] = float64(x)
		default:
			return nil, fmt.Errorf("fitstable: column %q row %d is %T, not numeric", name, i, v)
		}
	}
	return out, nil
}
