// Package desktop is the native window front-end. It owns layout and event
// wiring only; loading, summarizing and plotting go through the same shared
// operations as the browser app.
package desktop

import (
	"bytes"
	"image"
	"image/png"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/CosmicViraj/go-data-analyzer/domain/table"
	"github.com/CosmicViraj/go-data-analyzer/internal"
	"github.com/CosmicViraj/go-data-analyzer/internal/analysis"
	"github.com/CosmicViraj/go-data-analyzer/internal/config"
	"github.com/CosmicViraj/go-data-analyzer/internal/dataset"
	"github.com/CosmicViraj/go-data-analyzer/internal/errors"
	"github.com/CosmicViraj/go-data-analyzer/internal/render"
)

// Window is the desktop session: it owns the currently loaded table and all
// widgets. There is no ambient state outside this struct.
type Window struct {
	app fyne.App
	win fyne.Window
	cfg *config.Config
	log *internal.Logger

	table *table.Table

	status    *widget.Label
	output    *widget.Label
	colSelect *widget.Select
	statsBtn  *widget.Button
	plotBtn   *widget.Button
	chart     *canvas.Image
}

// New builds the window with analysis controls disabled until a file loads.
func New(cfg *config.Config) *Window {
	a := app.New()
	w := &Window{
		app: a,
		win: a.NewWindow("Data Analyzer"),
		cfg: cfg,
		log: internal.NewDefaultLogger("desktop"),
	}
	w.build()
	return w
}

func (w *Window) build() {
	w.status = widget.NewLabel("No file loaded.")

	w.output = widget.NewLabel("")
	w.output.TextStyle = fyne.TextStyle{Monospace: true}
	w.output.Wrapping = fyne.TextWrapOff

	w.colSelect = widget.NewSelect(nil, nil)
	w.colSelect.PlaceHolder = "(no columns)"

	w.statsBtn = widget.NewButton("Show Statistics", w.showStatistics)
	w.statsBtn.Disable()
	w.plotBtn = widget.NewButton("Plot Histogram", w.plotHistogram)
	w.plotBtn.Disable()

	w.chart = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 100, 60)))
	w.chart.FillMode = canvas.ImageFillContain
	w.chart.SetMinSize(fyne.NewSize(520, 400))

	top := container.NewHBox(
		widget.NewButton("Load CSV File", w.openFile),
		w.status,
	)
	controls := container.NewHBox(
		w.statsBtn,
		widget.NewLabel("Column for Plot:"),
		w.colSelect,
		w.plotBtn,
	)

	split := container.NewHSplit(container.NewScroll(w.output), w.chart)
	split.Offset = 0.45

	w.win.SetContent(container.NewBorder(container.NewVBox(top, controls), nil, nil, nil, split))
	w.win.Resize(fyne.NewSize(1000, 640))
}

// ShowAndRun shows the window and runs the event loop until close.
func (w *Window) ShowAndRun() {
	w.win.ShowAndRun()
}

// openFile shows the file dialog and loads the selection. A failed load
// clears the window state so stale statistics cannot be shown for a file
// that did not load.
func (w *Window) openFile() {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, w.win)
			return
		}
		if rc == nil {
			return
		}
		defer rc.Close()
		w.loadFrom(rc)
	}, w.win)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".csv", ".xlsx"}))
	d.Show()
}

func (w *Window) loadFrom(rc fyne.URIReadCloser) {
	name := rc.URI().Name()
	t, err := dataset.Load(name, rc)
	if err != nil {
		w.log.Warn("load failed for %s: %v", name, err)
		w.table = nil
		w.status.SetText("Error loading file: " + err.Error())
		w.output.SetText("")
		w.colSelect.Options = nil
		w.colSelect.ClearSelected()
		w.statsBtn.Disable()
		w.plotBtn.Disable()
		dialog.ShowError(err, w.win)
		return
	}

	w.table = t
	w.status.SetText("File loaded: " + name)
	w.output.SetText("")

	numeric := t.NumericColumns()
	w.colSelect.Options = numeric
	if len(numeric) > 0 {
		w.colSelect.SetSelected(numeric[0])
	} else {
		w.colSelect.ClearSelected()
	}
	w.colSelect.Refresh()

	w.statsBtn.Enable()
	w.plotBtn.Enable()
	w.log.Info("loaded %s: %d columns, %d rows", name, len(t.Headers()), t.Len())
}

func (w *Window) showStatistics() {
	if w.table == nil {
		return
	}
	w.output.SetText(FormatSummaries(analysis.Summarize(w.table)))
}

func (w *Window) plotHistogram() {
	if w.table == nil {
		return
	}
	column := w.colSelect.Selected
	if column == "" {
		dialog.ShowError(errors.New(errors.CodeColumnNotFound, "Please select a numerical column for visualization"), w.win)
		return
	}

	hist, err := analysis.BuildHistogram(w.table, column, w.cfg.Plot.Bins)
	if err != nil {
		dialog.ShowError(err, w.win)
		return
	}

	data, err := render.HistogramPNG(hist, w.cfg.Plot.Width, w.cfg.Plot.Height)
	if err != nil {
		w.log.Error("histogram render failed: %v", err)
		dialog.ShowError(err, w.win)
		return
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		dialog.ShowError(err, w.win)
		return
	}

	w.chart.Image = img
	w.chart.Refresh()
}
