// Command fyneprobe opens a window with a small rendered chart and closes it
// after a timeout. It checks that the GUI driver and the chart renderer work
// on this machine before running sortevalviewer.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/randytbushman/sorteval/src/dataset"
	"github.com/randytbushman/sorteval/src/plotter"
	"github.com/randytbushman/sorteval/src/style"
)

func main() {
	timeout := flag.Duration("timeout", 5*time.Second, "Close the window after this long")
	flag.Parse()

	img, err := probeChart(480, 300)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[fyneprobe] render failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("[fyneprobe] chart rendered, starting Fyne app")
	a := app.New()
	w := a.NewWindow("Fyne Probe")
	chart := canvas.NewImageFromImage(img)
	chart.FillMode = canvas.ImageFillOriginal
	w.SetContent(container.NewBorder(widget.NewLabel(fmt.Sprintf("Closing in %s", *timeout)), nil, nil, nil, chart))
	go func() {
		time.Sleep(*timeout)
		fmt.Println("[fyneprobe] closing window via fyne.Do")
		fyne.Do(func() { w.Close() })
	}()
	w.ShowAndRun()
	fmt.Println("[fyneprobe] exited cleanly")
}

// probeChart draws two fixed series through the same path the viewer uses.
func probeChart(w, h int) (image.Image, error) {
	ds, err := dataset.New(
		[]string{"Length", "QR Sort", "Merge Sort"},
		[][]float64{{10000, 20000, 30000}, {1500, 3000, 4600}, {900, 1900, 3000}},
	)
	if err != nil {
		return nil, err
	}
	ax := plotter.NewAxes("Fyne Probe")
	ax.Legend = true
	if _, err := plotter.PlotSeries(ax, ds, plotter.Request{XColumn: "Length", XScale: 1000}, nil, style.DefaultOptions()); err != nil {
		return nil, err
	}
	return ax.RenderImage(w, h, 96)
}
