// Package bench times the sorting algorithms over growing arrays and writes
// one table per value range.
package bench

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/randytbushman/sorteval/src/sorting"
)

// ErrInvalidConfig wraps every configuration problem.
var ErrInvalidConfig = errors.New("invalid bench config")

// Config controls a benchmark run.
type Config struct {
	// Trials is how many shuffles each length is timed on.
	Trials      int
	StartLength int
	EndLength   int
	Increment   int
	MinValue    int64
	// MaxValues starts one experiment per entry.
	MaxValues []int64
	// Workers bounds concurrently running experiments. Above 1 the timings
	// disturb each other.
	Workers   int
	OutputDir string
	Seed      int64
	// Algorithms selects table columns by name; empty means all, in registry
	// order.
	Algorithms []string
	// Verify checks every sorted copy.
	Verify bool
	// MaxCountingRange caps the count table an algorithm may allocate;
	// algorithms above it are left out of that experiment.
	MaxCountingRange int64
	// ProgressInterval between progress lines; 0 disables them.
	ProgressInterval time.Duration
	// XLSXPath, when set, also writes every table into one workbook.
	XLSXPath string
}

// DefaultConfig mirrors the original harness defaults, with one worker.
func DefaultConfig() Config {
	return Config{
		Trials:           3,
		StartLength:      10000,
		EndLength:        1000000,
		Increment:        10000,
		MinValue:         0,
		MaxValues:        []int64{1_000_000_000},
		Workers:          1,
		OutputDir:        "./results",
		Seed:             42,
		MaxCountingRange: 1 << 27,
		ProgressInterval: 5 * time.Second,
	}
}

// Validate reports every problem at once.
func (c Config) Validate() error {
	var problems []string
	add := func(format string, a ...interface{}) { problems = append(problems, fmt.Sprintf(format, a...)) }
	if c.Trials < 1 {
		add("trials must be at least 1")
	}
	if c.StartLength < 1 {
		add("start length must be at least 1")
	}
	if c.EndLength < c.StartLength {
		add("end length %d below start length %d", c.EndLength, c.StartLength)
	}
	if c.Increment < 1 {
		add("increment must be at least 1")
	}
	if len(c.MaxValues) == 0 {
		add("no max values")
	}
	for _, m := range c.MaxValues {
		if m <= c.MinValue {
			add("max value %d not above min value %d", m, c.MinValue)
		}
	}
	if c.Workers < 1 {
		add("workers must be at least 1")
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		add("output dir is required")
	}
	for _, n := range c.Algorithms {
		if _, ok := sorting.Lookup(n); !ok {
			add("unknown algorithm %q", n)
		}
	}
	if len(problems) > 0 {
		return errors.Wrap(ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// Lengths lists the array lengths timed, StartLength to EndLength inclusive.
func (c Config) Lengths() []int {
	var out []int
	for n := c.StartLength; n <= c.EndLength; n += c.Increment {
		out = append(out, n)
	}
	return out
}

func (c Config) algorithms() []sorting.Algorithm {
	if len(c.Algorithms) == 0 {
		return sorting.Algorithms()
	}
	var out []sorting.Algorithm
	for _, n := range c.Algorithms {
		if a, ok := sorting.Lookup(n); ok {
			out = append(out, a)
		}
	}
	return out
}

// FileName is the table name for one value range.
func FileName(minValue, maxValue int64) string {
	return fmt.Sprintf("%dmin_value-%dmax_value.csv", minValue, maxValue)
}
