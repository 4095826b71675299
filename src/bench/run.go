package bench

import (
	"context"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/randytbushman/sorteval/src/applog"
	"github.com/randytbushman/sorteval/src/dataset"
	"github.com/randytbushman/sorteval/src/sorting"
)

// LengthColumn heads the x column of every table.
const LengthColumn = "Length"

// ErrNotSorted is returned by a verified run when an algorithm leaves its
// input out of order.
var ErrNotSorted = errors.New("output not sorted")

var (
	benchLog    = applog.New("bench")
	progressLog = applog.New("bench progress")
)

// Experiment is the table for one value range.
type Experiment struct {
	MinValue, MaxValue int64
	Table              *dataset.Dataset
	// Path is where the CSV was written.
	Path string
	// Skipped lists algorithms left out for exceeding MaxCountingRange.
	Skipped []string
}

// Run executes one experiment per max value, at most cfg.Workers at a time,
// and writes each table as soon as it completes. Results keep MaxValues order.
func Run(ctx context.Context, cfg Config) ([]Experiment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create output dir")
	}
	defer applog.TimeTrack(time.Now(), "bench run")

	lengths := cfg.Lengths()
	prog := startProgress(cfg.ProgressInterval, len(lengths)*len(cfg.MaxValues), cfg.Workers)
	defer prog.close()

	out := make([]Experiment, len(cfg.MaxValues))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, maxValue := range cfg.MaxValues {
		g.Go(func() error {
			// Each experiment owns its generator so results do not depend on
			// scheduling.
			rng := rand.New(rand.NewSource(cfg.Seed + int64(i)))
			exp, err := runExperiment(ctx, cfg, maxValue, lengths, rng, prog)
			if err != nil {
				return err
			}
			exp.Path = filepath.Join(cfg.OutputDir, FileName(cfg.MinValue, maxValue))
			if err := dataset.SaveCSV(exp.Path, exp.Table); err != nil {
				return err
			}
			benchLog.Infof("Done with experiment %s", exp.Path)
			out[i] = exp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if cfg.XLSXPath != "" {
		if err := ExportXLSX(cfg.XLSXPath, out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func runExperiment(ctx context.Context, cfg Config, maxValue int64, lengths []int, rng *rand.Rand, prog *progress) (Experiment, error) {
	name := FileName(cfg.MinValue, maxValue)
	valueRange := maxValue - cfg.MinValue
	exp := Experiment{MinValue: cfg.MinValue, MaxValue: maxValue}

	var algs []sorting.Algorithm
	for _, a := range cfg.algorithms() {
		if need := a.CountsFor(cfg.EndLength, valueRange); cfg.MaxCountingRange > 0 && need > cfg.MaxCountingRange {
			benchLog.Warnf("%s: skipping %s, needs %d counters (limit %d)", name, a.Name, need, cfg.MaxCountingRange)
			exp.Skipped = append(exp.Skipped, a.Name)
			continue
		}
		algs = append(algs, a)
	}
	benchLog.Infof("Begin experiment with range %d-%d", cfg.MinValue, maxValue)
	prog.begin(name)
	defer prog.end(name)

	cols := make([][]float64, len(algs)+1)
	for i := range cols {
		cols[i] = make([]float64, 0, len(lengths))
	}
	buf := &sorting.Buffers{}
	times := make([][]float64, len(algs))
	for _, n := range lengths {
		if err := ctx.Err(); err != nil {
			return Experiment{}, err
		}
		prog.at(name, n)
		benchLog.Debugf("%s: begin trials with length %d", name, n)
		base := sorting.Linspace(cfg.MinValue, maxValue, n)
		work := make([]int64, n)
		for i := range times {
			times[i] = times[i][:0]
		}
		for trial := 0; trial < cfg.Trials; trial++ {
			rng.Shuffle(len(base), func(a, b int) { base[a], base[b] = base[b], base[a] })
			for i, a := range algs {
				copy(work, base)
				start := time.Now()
				err := a.Sort(work, buf)
				elapsed := time.Since(start)
				if err != nil {
					return Experiment{}, errors.Wrapf(err, "%s at length %d", a.Name, n)
				}
				if cfg.Verify && !sorting.IsSorted(work) {
					return Experiment{}, errors.Wrapf(ErrNotSorted, "%s at length %d", a.Name, n)
				}
				times[i] = append(times[i], float64(elapsed.Microseconds()))
			}
		}
		cols[0] = append(cols[0], float64(n))
		for i := range algs {
			cols[i+1] = append(cols[i+1], math.Trunc(stat.Mean(times[i], nil)))
		}
		prog.lengthDone()
	}

	names := []string{LengthColumn}
	for _, a := range algs {
		names = append(names, a.Name)
	}
	table, err := dataset.New(names, cols)
	if err != nil {
		return Experiment{}, err
	}
	exp.Table = table
	return exp, nil
}

// Sorted returns the experiments ordered by max value.
func Sorted(exps []Experiment) []Experiment {
	out := slices.Clone(exps)
	slices.SortFunc(out, func(a, b Experiment) int {
		switch {
		case a.MaxValue < b.MaxValue:
			return -1
		case a.MaxValue > b.MaxValue:
			return 1
		}
		return 0
	})
	return out
}
