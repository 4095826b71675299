// Command sortevalviewer is a desktop viewer for benchmark result tables.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/randytbushman/sorteval/cmd/sortevalviewer/uihelpers"
	"github.com/randytbushman/sorteval/src/applog"
	"github.com/randytbushman/sorteval/src/config"
	"github.com/randytbushman/sorteval/src/dataset"
)

type uiState struct {
	app      fyne.App
	window   fyne.Window
	filePath string

	data    *dataset.Dataset
	stats   []columnStat
	lastMax float64

	// axis
	xColumn    string
	xScale     float64
	title      string
	annotation string

	// toggles
	hidden     map[string]bool
	markers    map[string]bool
	monochrome bool
	endLabels  bool
	showHints  bool
	dark       bool

	// widgets
	imgCanvas   *canvas.Image
	seriesGroup *widget.CheckGroup
	markerGroup *widget.CheckGroup
	table       *widget.Table
	fileLabel   *widget.Label
}

// variantTheme pins the default theme to one variant.
type variantTheme struct{ variant fyne.ThemeVariant }

func (t *variantTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, t.variant)
}
func (t *variantTheme) Font(style fyne.TextStyle) fyne.Resource { return theme.DefaultTheme().Font(style) }
func (t *variantTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}
func (t *variantTheme) Size(name fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(name) }

func main() {
	var (
		fileFlag   string
		exportDir  string
		xColumn    string
		xScale     float64
		annotation string
		logLevel   string
	)
	flag.StringVar(&fileFlag, "file", "", "Results table to open (.csv, .tsv, .xlsx, Go benchmark output)")
	flag.StringVar(&exportDir, "export-dir", "", "Render chart variants of -file into this directory and exit")
	flag.StringVar(&xColumn, "x", config.DefaultXColumn, "Independent column")
	flag.Float64Var(&xScale, "x-scale", config.DefaultXScale, "Divide x values by this")
	flag.StringVar(&annotation, "annotate", "", "Text for the bottom-right corner")
	flag.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()
	if !applog.SetLogLevel(logLevel) {
		fmt.Fprintf(os.Stderr, "unknown log level %q\n", logLevel)
		os.Exit(2)
	}

	if exportDir != "" {
		if fileFlag == "" {
			fmt.Fprintln(os.Stderr, "-export-dir needs -file")
			os.Exit(2)
		}
		if err := RunExportMode(fileFlag, exportDir, xColumn, xScale, annotation); err != nil {
			viewerLog.Errorf("export: %v", err)
			os.Exit(1)
		}
		return
	}

	a := app.NewWithID("com.sorteval.viewer")
	w := a.NewWindow("Sort Evaluation Viewer")
	w.Resize(fyne.NewSize(1300, 800))

	state := &uiState{
		app:        a,
		window:     w,
		filePath:   fileFlag,
		xColumn:    xColumn,
		xScale:     xScale,
		annotation: annotation,
		hidden:     map[string]bool{},
		markers:    map[string]bool{},
	}
	loadPrefs(state)
	applyTheme(state)

	state.fileLabel = widget.NewLabel(uihelpers.TruncatePath(state.filePath, 60))
	state.imgCanvas = canvas.NewImageFromImage(blank(100, 60))
	state.imgCanvas.FillMode = canvas.ImageFillContain

	state.seriesGroup = widget.NewCheckGroup(nil, func(selected []string) {
		for _, c := range state.seriesGroup.Options {
			state.hidden[c] = !contains(selected, c)
		}
		redrawChart(state)
	})
	state.markerGroup = widget.NewCheckGroup(nil, func(selected []string) {
		state.markers = map[string]bool{}
		for _, c := range selected {
			state.markers[c] = true
		}
		redrawChart(state)
	})

	colorSelect := widget.NewSelect([]string{"Color", "Monochrome"}, func(v string) {
		state.monochrome = v == "Monochrome"
		savePrefs(state)
		redrawChart(state)
	})
	if state.monochrome {
		colorSelect.Selected = "Monochrome"
	} else {
		colorSelect.Selected = "Color"
	}
	endLabelsChk := widget.NewCheck("End labels", func(b bool) {
		state.endLabels = b
		savePrefs(state)
		redrawChart(state)
	})
	endLabelsChk.SetChecked(state.endLabels)
	hintsChk := widget.NewCheck("Hints", func(b bool) {
		state.showHints = b
		savePrefs(state)
		redrawChart(state)
	})
	hintsChk.SetChecked(state.showHints)
	darkChk := widget.NewCheck("Dark", func(b bool) {
		state.dark = b
		savePrefs(state)
		applyTheme(state)
	})
	darkChk.SetChecked(state.dark)

	titleEntry := widget.NewEntry()
	titleEntry.SetPlaceHolder("Title")
	titleEntry.OnSubmitted = func(s string) { state.title = s; redrawChart(state) }
	annEntry := widget.NewEntry()
	annEntry.SetPlaceHolder("Annotation, e.g. range = 10⁹")
	annEntry.SetText(state.annotation)
	annEntry.OnSubmitted = func(s string) { state.annotation = s; redrawChart(state) }

	state.table = widget.NewTable(
		func() (int, int) { return len(state.stats) + 1, 4 },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.TableCellID, o fyne.CanvasObject) {
			o.(*widget.Label).SetText(statCell(state.stats, id.Row, id.Col))
		},
	)
	updateColumnWidths(state)

	side := container.NewVBox(
		widget.NewLabelWithStyle("Series", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		state.seriesGroup,
		widget.NewLabelWithStyle("Markers", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		state.markerGroup,
		widget.NewSeparator(),
		colorSelect, endLabelsChk, hintsChk, darkChk,
		titleEntry, annEntry,
	)
	chartTab := container.NewHSplit(container.NewScroll(state.imgCanvas), container.NewVScroll(side))
	chartTab.Offset = 0.75
	tabs := container.NewAppTabs(
		container.NewTabItem("Chart", chartTab),
		container.NewTabItem("Columns", state.table),
	)
	top := container.NewHBox(widget.NewButton("Open…", func() { openFileDialog(state) }), state.fileLabel)
	w.SetContent(container.NewBorder(top, nil, nil, nil, tabs))
	buildMenus(state)

	w.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyF5 {
			loadAll(state)
		}
	})
	if state.filePath != "" {
		loadAll(state)
	} else {
		redrawChart(state)
	}
	w.ShowAndRun()
}

func applyTheme(state *uiState) {
	v := theme.VariantLight
	if state.dark {
		v = theme.VariantDark
	}
	state.app.Settings().SetTheme(&variantTheme{variant: v})
}

func buildMenus(state *uiState) {
	if state == nil || state.window == nil || state.app == nil {
		return
	}
	var items []*fyne.MenuItem
	for _, f := range recentFiles(state) {
		items = append(items, fyne.NewMenuItem(uihelpers.TruncatePath(f, 60), func() {
			state.filePath = f
			loadAll(state)
		}))
	}
	clearRecent := fyne.NewMenuItem("Clear Recent", func() { clearRecentFiles(state); buildMenus(state) })
	recentMenu := fyne.NewMenu("Open Recent", append(items, clearRecent)...)
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open…", func() { openFileDialog(state) }),
		fyne.NewMenuItem("Reload", func() { loadAll(state) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Chart…", func() { exportChartPNG(state) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { state.window.Close() }),
	)
	state.window.SetMainMenu(fyne.NewMainMenu(fileMenu, recentMenu))

	if canv := state.window.Canvas(); canv != nil {
		for _, mod := range []fyne.KeyModifier{fyne.KeyModifierSuper, fyne.KeyModifierControl} {
			canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: mod}, func(fyne.Shortcut) { openFileDialog(state) })
			canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyR, Modifier: mod}, func(fyne.Shortcut) { loadAll(state) })
			canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyE, Modifier: mod}, func(fyne.Shortcut) { exportChartPNG(state) })
		}
	}
}

func openFileDialog(state *uiState) {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		defer rc.Close()
		state.filePath = rc.URI().Path()
		loadAll(state)
	}, state.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".csv", ".tsv", ".tab", ".xlsx", ".txt", ".bench"}))
	d.Show()
}

// loadAll reads the table off the UI goroutine and swaps it in.
func loadAll(state *uiState) {
	path := state.filePath
	if path == "" {
		return
	}
	go func() {
		ds, err := dataset.Load(path)
		fyne.Do(func() {
			if err != nil {
				dialog.ShowError(err, state.window)
				return
			}
			applyDataset(state, ds)
			state.fileLabel.SetText(uihelpers.TruncatePath(path, 60))
			addRecentFile(state, path)
			savePrefs(state)
			buildMenus(state)
			redrawChart(state)
		})
	}()
}

// applyDataset installs ds and resets toggles for columns it does not have.
func applyDataset(state *uiState, ds *dataset.Dataset) {
	state.data = ds
	state.stats = summarize(ds)
	cols := ds.Others(state.xColumn)
	for name := range state.hidden {
		if !ds.Has(name) {
			delete(state.hidden, name)
		}
	}
	for name := range state.markers {
		if !ds.Has(name) {
			delete(state.markers, name)
		}
	}
	if state.seriesGroup != nil {
		state.seriesGroup.Options = cols
		state.seriesGroup.Selected = visibleSeries(state)
		state.seriesGroup.Refresh()
	}
	if state.markerGroup != nil {
		state.markerGroup.Options = cols
		var marked []string
		for _, c := range cols {
			if state.markers[c] {
				marked = append(marked, c)
			}
		}
		state.markerGroup.Selected = marked
		state.markerGroup.Refresh()
	}
	if state.table != nil {
		state.table.Refresh()
	}
}

func redrawChart(state *uiState) {
	img := renderChart(state)
	if img == nil || state.imgCanvas == nil {
		return
	}
	state.imgCanvas.Image = img
	cw, ch := chartSize(state)
	state.imgCanvas.SetMinSize(fyne.NewSize(float32(cw), float32(ch)))
	state.imgCanvas.Refresh()
}

func updateColumnWidths(state *uiState) {
	if state.table == nil || state.window == nil {
		return
	}
	for i, w := range uihelpers.ComputeTableColumnWidths(state.window.Canvas().Size().Width) {
		state.table.SetColumnWidth(i, float32(w))
	}
}

func exportChartPNG(state *uiState) {
	if state.imgCanvas == nil || state.imgCanvas.Image == nil || state.data == nil {
		dialog.ShowInformation("Export", "No chart to export.", state.window)
		return
	}
	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		if err := png.Encode(wc, state.imgCanvas.Image); err != nil {
			dialog.ShowError(err, state.window)
		}
	}, state.window)
	base := strings.TrimSuffix(filepath.Base(state.filePath), filepath.Ext(state.filePath))
	fs.SetFileName(base + ".png")
	fs.Show()
}

func recentFiles(state *uiState) []string {
	raw := state.app.Preferences().StringWithFallback("recentFiles", "")
	if raw == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(raw, "\n") {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			out = append(out, p)
		}
	}
	return out
}

func addRecentFile(state *uiState, path string) {
	list := uihelpers.PushRecent(recentFiles(state), path, 10)
	state.app.Preferences().SetString("recentFiles", strings.Join(list, "\n"))
}

func clearRecentFiles(state *uiState) {
	if state == nil || state.app == nil {
		return
	}
	state.app.Preferences().SetString("recentFiles", "")
}

func savePrefs(state *uiState) {
	if state == nil || state.app == nil {
		return
	}
	prefs := state.app.Preferences()
	prefs.SetString("lastFile", state.filePath)
	prefs.SetBool("monochrome", state.monochrome)
	prefs.SetBool("endLabels", state.endLabels)
	prefs.SetBool("showHints", state.showHints)
	prefs.SetBool("dark", state.dark)
}

func loadPrefs(state *uiState) {
	prefs := state.app.Preferences()
	if state.filePath == "" {
		state.filePath = prefs.StringWithFallback("lastFile", "")
	}
	state.monochrome = prefs.BoolWithFallback("monochrome", false)
	state.endLabels = prefs.BoolWithFallback("endLabels", false)
	state.showHints = prefs.BoolWithFallback("showHints", false)
	state.dark = prefs.BoolWithFallback("dark", false)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
