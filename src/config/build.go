package config

import (
	"math"

	"github.com/pkg/errors"

	"github.com/randytbushman/sorteval/src/applog"
	"github.com/randytbushman/sorteval/src/dataset"
	"github.com/randytbushman/sorteval/src/figure"
	"github.com/randytbushman/sorteval/src/plotter"
)

// Build loads every panel table, plots it, annotates it and unifies the y
// limits across panels.
func Build(cfg *Figure) (*figure.Figure, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	fig, err := figure.New(cfg.Rows, cfg.Cols, cfg.Size.Width, cfg.Size.Height, cfg.DPI)
	if err != nil {
		return nil, err
	}
	req := plotter.Request{
		XColumn: cfg.XColumn,
		Include: cfg.Columns,
		Exclude: cfg.Exclude,
		XScale:  cfg.XScale,
	}

	// A nil legend panel means the first panel.
	legend := 0
	if cfg.LegendPanel != nil {
		legend = *cfg.LegendPanel
	}
	globalMax := 0.0
	for i, p := range cfg.Panels {
		path := cfg.Resolve(p.File)
		ds, err := dataset.LoadWithOptions(path, dataset.LoadOptions{Sheet: p.Sheet})
		if err != nil {
			return nil, errors.Wrapf(err, "panel %s", p.Title)
		}
		ax := fig.Panel(i)
		ax.Title = p.Title
		ax.XLabel = cfg.Labels.X
		ax.YLabel = cfg.Labels.Y
		ax.Legend = i == legend
		m, err := plotter.PlotSeries(ax, ds, req, nil, opts)
		if err != nil {
			return nil, errors.Wrapf(err, "panel %s (%s)", p.Title, path)
		}
		applog.Debugf("panel %s: %d series from %s, max %.3f ms", p.Title, len(ax.Traces()), path, m)
		globalMax = math.Max(globalMax, m)
		if p.Annotation != "" {
			plotter.Annotate(ax, p.Annotation)
		}
	}
	fig.ShareY(globalMax, cfg.YMargin)
	if len(cfg.XLimit) == 2 {
		fig.ShareX(cfg.XLimit[0], cfg.XLimit[1])
	}
	return fig, nil
}
