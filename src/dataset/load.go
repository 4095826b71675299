package dataset

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Format identifies a table encoding.
type Format string

const (
	FormatAuto     Format = ""
	FormatCSV      Format = "csv"
	FormatTSV      Format = "tsv"
	FormatXLSX     Format = "xlsx"
	FormatBenchfmt Format = "benchfmt"
)

// LoadOptions tune Load. The zero value detects the format from the extension.
type LoadOptions struct {
	Format Format
	// Sheet selects an XLSX worksheet; "" means the first one.
	Sheet string
	Bench BenchOptions
}

// DetectFormat maps a file extension to a Format.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".tsv", ".tab":
		return FormatTSV, nil
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	case ".txt", ".bench", ".benchfmt":
		return FormatBenchfmt, nil
	}
	return FormatAuto, errors.Wrapf(ErrUnsupportedFormat, "%s", path)
}

// Load reads a table file, detecting its format from the extension.
func Load(path string) (*Dataset, error) {
	return LoadWithOptions(path, LoadOptions{})
}

// LoadWithOptions reads a table file.
func LoadWithOptions(path string, opts LoadOptions) (*Dataset, error) {
	format := opts.Format
	if format == FormatAuto {
		var err error
		if format, err = DetectFormat(path); err != nil {
			return nil, err
		}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "load table")
	}
	defer f.Close()

	var d *Dataset
	switch format {
	case FormatCSV:
		d, err = ReadDelimited(f, ',')
	case FormatTSV:
		d, err = ReadDelimited(f, '\t')
	case FormatXLSX:
		d, err = ReadXLSX(f, opts.Sheet)
	case FormatBenchfmt:
		d, err = ReadBenchfmt(f, path, opts.Bench)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	d.source = path
	return d, nil
}

// SaveCSV writes the dataset to path as comma-separated text, creating parent
// directories.
func SaveCSV(path string, d *Dataset) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create output dir")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create table")
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return WriteDelimited(f, d, ',')
}
