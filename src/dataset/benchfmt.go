package dataset

import (
	"bytes"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/perf/benchfmt"
	"gonum.org/v1/gonum/stat"
)

// BenchOptions selects which sub-benchmark keys become the table axes.
type BenchOptions struct {
	// AlgKey names the sub-benchmark key holding the algorithm, e.g. "alg" in
	// BenchmarkSort/alg=QR_Sort/n=1000. Underscores in its value become spaces.
	AlgKey string
	// LengthKey names the key holding the array length.
	LengthKey string
	// XColumn is the name of the produced length column.
	XColumn string
}

// DefaultBenchOptions matches the benchmarks in the sorting package.
func DefaultBenchOptions() BenchOptions {
	return BenchOptions{AlgKey: "alg", LengthKey: "n", XColumn: "Length"}
}

// ReadBenchfmt converts Go benchmark output into a table with one row per
// length and one column per algorithm. Times are microseconds per op; repeated
// runs (-count) are averaged.
func ReadBenchfmt(r io.Reader, fileName string, opts BenchOptions) (*Dataset, error) {
	if opts.AlgKey == "" || opts.LengthKey == "" || opts.XColumn == "" {
		opts = DefaultBenchOptions()
	}
	samples := map[string]map[float64][]float64{}
	var algs []string
	lengths := map[float64]struct{}{}

	rd := benchfmt.NewReader(r, fileName)
	for rd.Scan() {
		res, ok := rd.Result().(*benchfmt.Result)
		if !ok {
			// Syntax errors and unit metadata lines are skipped.
			continue
		}
		alg, n, ok := benchKeys(res.Name, opts)
		if !ok {
			continue
		}
		us, ok := microsPerOp(res.Values)
		if !ok {
			continue
		}
		byLen, seen := samples[alg]
		if !seen {
			byLen = map[float64][]float64{}
			samples[alg] = byLen
			algs = append(algs, alg)
		}
		byLen[n] = append(byLen[n], us)
		lengths[n] = struct{}{}
	}
	if err := rd.Err(); err != nil {
		return nil, errors.Wrap(err, "read benchmarks")
	}
	if len(algs) == 0 {
		return nil, errors.Wrapf(ErrEmpty, "no %s=/%s= benchmarks in %s", opts.AlgKey, opts.LengthKey, fileName)
	}

	xs := make([]float64, 0, len(lengths))
	for n := range lengths {
		xs = append(xs, n)
	}
	sort.Float64s(xs)

	names := append([]string{opts.XColumn}, algs...)
	cols := make([][]float64, len(names))
	cols[0] = xs
	for i, alg := range algs {
		col := make([]float64, len(xs))
		for j, n := range xs {
			vals := samples[alg][n]
			if len(vals) == 0 {
				return nil, errors.Wrapf(ErrRaggedColumns, "%s has no result for %s=%v", alg, opts.LengthKey, n)
			}
			col[j] = stat.Mean(vals, nil)
		}
		cols[i+1] = col
	}
	return New(names, cols)
}

func benchKeys(name benchfmt.Name, opts BenchOptions) (string, float64, bool) {
	_, parts := name.Parts()
	var alg string
	var n float64
	var haveAlg, haveN bool
	for _, p := range parts {
		if len(p) == 0 || p[0] != '/' {
			continue
		}
		k, v, ok := bytes.Cut(p[1:], []byte("="))
		if !ok {
			continue
		}
		switch string(k) {
		case opts.AlgKey:
			alg = strings.ReplaceAll(string(v), "_", " ")
			haveAlg = alg != ""
		case opts.LengthKey:
			f, err := strconv.ParseFloat(string(v), 64)
			if err == nil {
				n, haveN = f, true
			}
		}
	}
	return alg, n, haveAlg && haveN
}

func microsPerOp(values []benchfmt.Value) (float64, bool) {
	for _, v := range values {
		switch v.Unit {
		case "sec/op":
			return v.Value * 1e6, true
		case "ns/op":
			return v.Value / 1e3, true
		}
	}
	return 0, false
}
