package main

import (
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/randytbushman/sorteval/src/dataset"
)

// columnStat is one row of the Columns tab.
type columnStat struct {
	Name           string
	Min, Mean, Max float64
	Empty          bool
}

func summarize(ds *dataset.Dataset) []columnStat {
	out := make([]columnStat, 0, len(ds.Columns()))
	for _, name := range ds.Columns() {
		col, err := ds.Column(name)
		if err != nil || len(col) == 0 {
			out = append(out, columnStat{Name: name, Empty: true})
			continue
		}
		out = append(out, columnStat{Name: name, Min: floats.Min(col), Mean: stat.Mean(col, nil), Max: floats.Max(col)})
	}
	return out
}

var statHeader = [4]string{"Column", "Min", "Mean", "Max"}

// statCell renders the table cell at row, col; row 0 is the header.
func statCell(stats []columnStat, row, col int) string {
	if row == 0 {
		return statHeader[col]
	}
	if row-1 >= len(stats) {
		return ""
	}
	s := stats[row-1]
	if col == 0 {
		return s.Name
	}
	if s.Empty {
		return "-"
	}
	v := [3]float64{s.Min, s.Mean, s.Max}[col-1]
	return strconv.FormatFloat(v, 'f', -1, 64)
}
