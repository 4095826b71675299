// Package dataset holds benchmark timing tables: ordered, named float64 columns
// loaded from delimited text, Excel workbooks or Go benchmark output.
package dataset

import (
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrColumnNotFound is returned when a requested column is absent.
	ErrColumnNotFound = errors.New("column not found")
	// ErrRaggedColumns is returned when columns (or rows) differ in length.
	ErrRaggedColumns = errors.New("columns have unequal length")
	// ErrDuplicateColumn is returned when two columns share a name.
	ErrDuplicateColumn = errors.New("duplicate column name")
	// ErrEmpty is returned for a source with no header row.
	ErrEmpty = errors.New("empty table")
	// ErrUnsupportedFormat is returned when no loader matches a path.
	ErrUnsupportedFormat = errors.New("unsupported table format")
)

// Dataset is an immutable table of equal-length numeric columns.
type Dataset struct {
	names  []string
	index  map[string]int
	cols   [][]float64
	source string
}

// New builds a dataset from column names and column-major values. Inputs are
// copied.
func New(names []string, cols [][]float64) (*Dataset, error) {
	if len(names) == 0 {
		return nil, ErrEmpty
	}
	if len(names) != len(cols) {
		return nil, errors.Wrapf(ErrRaggedColumns, "%d names for %d columns", len(names), len(cols))
	}
	d := &Dataset{
		names: make([]string, len(names)),
		index: make(map[string]int, len(names)),
		cols:  make([][]float64, len(cols)),
	}
	rows := len(cols[0])
	for i, n := range names {
		n = strings.TrimSpace(n)
		if _, dup := d.index[n]; dup {
			return nil, errors.Wrapf(ErrDuplicateColumn, "%q", n)
		}
		if len(cols[i]) != rows {
			return nil, errors.Wrapf(ErrRaggedColumns, "column %q has %d rows, want %d", n, len(cols[i]), rows)
		}
		d.names[i] = n
		d.index[n] = i
		d.cols[i] = append([]float64(nil), cols[i]...)
	}
	return d, nil
}

// Columns returns the column names in their original order.
func (d *Dataset) Columns() []string { return append([]string(nil), d.names...) }

// Len returns the number of rows.
func (d *Dataset) Len() int {
	if len(d.cols) == 0 {
		return 0
	}
	return len(d.cols[0])
}

// Has reports whether the named column exists.
func (d *Dataset) Has(name string) bool {
	_, ok := d.index[name]
	return ok
}

// Column returns a copy of the named column.
func (d *Dataset) Column(name string) ([]float64, error) {
	i, ok := d.index[name]
	if !ok {
		return nil, errors.Wrapf(ErrColumnNotFound, "%q", name)
	}
	return append([]float64(nil), d.cols[i]...), nil
}

// Source is the path the dataset was loaded from, if any.
func (d *Dataset) Source() string { return d.source }

// Others returns every column name except the given ones, in original order.
func (d *Dataset) Others(skip ...string) []string {
	out := make([]string, 0, len(d.names))
	for _, n := range d.names {
		if !contains(skip, n) {
			out = append(out, n)
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
