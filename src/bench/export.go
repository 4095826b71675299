package bench

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/randytbushman/sorteval/src/dataset"
)

// SheetName labels an experiment inside a workbook.
func SheetName(minValue, maxValue int64) string {
	return fmt.Sprintf("%d-%d", minValue, maxValue)
}

// ExportXLSX writes every experiment table to one workbook, one sheet per
// value range in ascending order.
func ExportXLSX(path string, exps []Experiment) (err error) {
	var sheets []dataset.Sheet
	for _, e := range Sorted(exps) {
		if e.Table == nil {
			continue
		}
		sheets = append(sheets, dataset.Sheet{Name: SheetName(e.MinValue, e.MaxValue), Data: e.Table})
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create workbook dir")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create workbook")
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "close workbook")
		}
	}()
	return dataset.WriteXLSX(f, sheets)
}
