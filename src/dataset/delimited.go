package dataset

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ReadDelimited parses a header row followed by numeric rows.
func ReadDelimited(r io.Reader, comma rune) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, errors.Wrap(err, "read header")
	}
	names := make([]string, len(header))
	for i, h := range header {
		names[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}
	cols := make([][]float64, len(names))
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) && errors.Is(pe.Err, csv.ErrFieldCount) {
				return nil, errors.Wrapf(ErrRaggedColumns, "line %d", pe.Line)
			}
			return nil, errors.Wrapf(err, "line %d", line)
		}
		if isBlank(rec) {
			continue
		}
		for i, cell := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d column %q", line, names[i])
			}
			cols[i] = append(cols[i], v)
		}
	}
	return New(names, cols)
}

// WriteDelimited writes the dataset with a header row. Integral values are
// written without a fractional part.
func WriteDelimited(w io.Writer, d *Dataset, comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	if err := cw.Write(d.names); err != nil {
		return errors.Wrap(err, "write header")
	}
	rec := make([]string, len(d.names))
	for row := 0; row < d.Len(); row++ {
		for i := range d.cols {
			rec[i] = strconv.FormatFloat(d.cols[i][row], 'f', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return errors.Wrapf(err, "write row %d", row)
		}
	}
	cw.Flush()
	return cw.Error()
}

func isBlank(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
