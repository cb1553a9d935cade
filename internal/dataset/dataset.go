// Package dataset holds the in-memory tabular model handed to the conversion
// engine: ordered named columns, ordered rows, each cell a scalar or absent.
package dataset

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Cell is a single tabular value: a string, a number, a timestamp, or absent.
type Cell struct {
	v any
}

// String returns a Cell holding a text value.
func String(s string) Cell { return Cell{v: s} }

// Number returns a Cell holding a numeric value.
func Number(f float64) Cell { return Cell{v: f} }

// Time returns a Cell holding a native timestamp, as produced by spreadsheet
// readers for date-formatted cells.
func Time(t time.Time) Cell { return Cell{v: t} }

// Empty returns an absent Cell.
func Empty() Cell { return Cell{} }

// IsEmpty reports whether the cell is absent: nil, a whitespace-only string,
// or a numeric NaN.
func (c Cell) IsEmpty() bool {
	switch v := c.v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case float64:
		return math.IsNaN(v)
	default:
		return false
	}
}

// String renders the cell as text. Absent cells render as "".
func (c Cell) String() string {
	switch v := c.v.(type) {
	case string:
		return v
	case float64:
		if math.IsNaN(v) {
			return ""
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		return v.Format("02/01/2006")
	default:
		return ""
	}
}

// Time returns the cell's native timestamp, if it holds one.
func (c Cell) Time() (time.Time, bool) {
	t, ok := c.v.(time.Time)
	return t, ok
}

// Dataset is an ordered collection of named columns and rows.
type Dataset struct {
	Columns []string
	Rows    [][]Cell

	index map[string]int
}

// New creates an empty Dataset with the given column names. Column order is
// preserved; lookups go through an index built once here.
func New(columns []string) *Dataset {
	idx := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, dup := idx[c]; !dup {
			idx[c] = i
		}
	}
	return &Dataset{Columns: columns, index: idx}
}

// AppendRow adds a row, padding or truncating to the column count.
func (d *Dataset) AppendRow(cells []Cell) {
	row := make([]Cell, len(d.Columns))
	copy(row, cells)
	d.Rows = append(d.Rows, row)
}

// AppendStringRow adds a row of raw text cells.
func (d *Dataset) AppendStringRow(values []string) {
	cells := make([]Cell, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			cells = append(cells, Empty())
			continue
		}
		cells = append(cells, String(v))
	}
	d.AppendRow(cells)
}

// NumRows returns the row count.
func (d *Dataset) NumRows() int { return len(d.Rows) }

// Value returns the cell at the given row for the named column. Unknown
// columns and out-of-range rows yield an absent cell, never an error.
func (d *Dataset) Value(row int, column string) Cell {
	if row < 0 || row >= len(d.Rows) {
		return Empty()
	}
	i, ok := d.index[column]
	if !ok || i >= len(d.Rows[row]) {
		return Empty()
	}
	return d.Rows[row][i]
}

// Column returns the ordered cells of the named column, or nil if unknown.
func (d *Dataset) Column(column string) []Cell {
	i, ok := d.index[column]
	if !ok {
		return nil
	}
	out := make([]Cell, len(d.Rows))
	for r, row := range d.Rows {
		if i < len(row) {
			out[r] = row[i]
		}
	}
	return out
}
