package dataset

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// Sheet pairs a dataset with the worksheet name it is written to.
type Sheet struct {
	Name string
	Data *Dataset
}

// ReadXLSX reads one worksheet: the named one, or the first when sheet is "".
// The first row is the header; trailing blank rows are ignored.
func ReadXLSX(r io.Reader, sheet string) (*Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "open workbook")
	}
	defer f.Close()
	if sheet == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, ErrEmpty
		}
		sheet = list[0]
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrapf(err, "sheet %q", sheet)
	}
	for len(rows) > 0 && isBlank(rows[len(rows)-1]) {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, ErrEmpty
	}
	names := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		names[i] = strings.TrimSpace(h)
	}
	cols := make([][]float64, len(names))
	for ri, row := range rows[1:] {
		// excelize drops trailing empty cells, so a short row is a missing value.
		if len(row) != len(names) {
			return nil, errors.Wrapf(ErrRaggedColumns, "sheet %q row %d has %d cells, want %d", sheet, ri+2, len(row), len(names))
		}
		for ci, cell := range row {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, errors.Wrapf(err, "sheet %q row %d column %q", sheet, ri+2, names[ci])
			}
			cols[ci] = append(cols[ci], v)
		}
	}
	return New(names, cols)
}

// WriteXLSX writes each dataset to its own worksheet, in order.
func WriteXLSX(w io.Writer, sheets []Sheet) error {
	if len(sheets) == 0 {
		return ErrEmpty
	}
	f := excelize.NewFile()
	defer f.Close()
	const defaultSheet = "Sheet1"
	for i, s := range sheets {
		idx, err := f.NewSheet(s.Name)
		if err != nil {
			return errors.Wrapf(err, "sheet %q", s.Name)
		}
		if i == 0 {
			f.SetActiveSheet(idx)
		}
		header := make([]interface{}, len(s.Data.names))
		for ci, n := range s.Data.names {
			header[ci] = n
		}
		if err := f.SetSheetRow(s.Name, "A1", &header); err != nil {
			return errors.Wrapf(err, "sheet %q header", s.Name)
		}
		row := make([]interface{}, len(s.Data.cols))
		for ri := 0; ri < s.Data.Len(); ri++ {
			for ci := range s.Data.cols {
				row[ci] = s.Data.cols[ci][ri]
			}
			cell, err := excelize.CoordinatesToCellName(1, ri+2)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(s.Name, cell, &row); err != nil {
				return errors.Wrapf(err, "sheet %q row %d", s.Name, ri+2)
			}
		}
	}
	if !containsSheet(sheets, defaultSheet) {
		if err := f.DeleteSheet(defaultSheet); err != nil {
			return err
		}
	}
	return f.Write(w)
}

func containsSheet(sheets []Sheet, name string) bool {
	for _, s := range sheets {
		if s.Name == name {
			return true
		}
	}
	return false
}
