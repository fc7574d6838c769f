//go:build !nogui
// +build !nogui

// Package gui is the desktop front end: a single window mirroring the
// terminal browser, with a folder chooser, a geometry-probe toggle, a
// live filter entry, the five-column catalog table with per-row
// checkboxes, a load button, and a tier-colored progress readout.
package gui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"gadget/internal/catalog"
	"gadget/internal/config"
	"gadget/internal/host"
	"gadget/internal/log"
	"gadget/internal/scan"
	"gadget/pkg/types"
)

var tierColors = map[types.Tier]color.NRGBA{
	types.TierLow:  {R: 0xd9, G: 0x3a, B: 0x2b, A: 0xff},
	types.TierMid:  {R: 0xe8, G: 0xc0, B: 0x2e, A: 0xff},
	types.TierHigh: {R: 0x4c, G: 0xaf, B: 0x50, A: 0xff},
}

// App is the GUI application.
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window

	cfg     *config.Config
	engine  *scan.Engine
	catalog *catalog.Catalog
	loader  *host.Loader

	table         *widget.Table
	filterEntry   *widget.Entry
	geometryCheck *widget.Check
	progressBar   *widget.ProgressBar
	progressChunk *canvas.Rectangle
	progressLabel *widget.Label
	statusLabel   *widget.Label
}

// NewApp creates the GUI application.
func NewApp(cfg *config.Config) *App {
	fyneApp := app.NewWithID("io.github.gadget")
	opener := host.NewVectorOpener()

	engine := scan.NewWithConfig(cfg)
	engine.SetOpener(opener)

	a := &App{
		fyneApp: fyneApp,
		cfg:     cfg,
		engine:  engine,
		catalog: catalog.New(),
		loader:  host.NewLoader(opener, host.NewProject()),
	}
	a.buildWindow()
	return a
}

// Run shows the window and enters the event loop.
func (a *App) Run() {
	a.mainWindow.ShowAndRun()
}

// StartGUI builds and runs the application window.
func StartGUI(cfg *config.Config) error {
	NewApp(cfg).Run()
	return nil
}

// IsGUIAvailable returns whether the GUI is available in this build
func IsGUIAvailable() bool {
	return true
}

func (a *App) buildWindow() {
	w := a.fyneApp.NewWindow("Gadget — vector file catalog")
	a.mainWindow = w

	selectButton := widget.NewButton("Select a directory", func() {
		dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
			if err != nil || uri == nil {
				return
			}
			a.scanDirectory(uri.Path())
		}, w).Show()
	})

	a.geometryCheck = widget.NewCheck("Show geometry type", func(checked bool) {
		a.cfg.Scan.GeometryTypes = checked
	})
	a.geometryCheck.SetChecked(a.cfg.Scan.GeometryTypes)

	a.filterEntry = widget.NewEntry()
	a.filterEntry.SetPlaceHolder("Search for a file...")
	a.filterEntry.OnChanged = func(text string) {
		a.catalog.SetFilter(text)
		a.table.Refresh()
	}

	a.table = a.buildTable()

	loadButton := widget.NewButton("Load selected layers", a.loadSelected)

	a.progressBar = widget.NewProgressBar()
	a.progressChunk = canvas.NewRectangle(tierColors[types.TierLow])
	a.progressChunk.SetMinSize(fyne.NewSize(16, 16))
	a.progressLabel = widget.NewLabel("")
	a.statusLabel = widget.NewLabel("Select a directory to scan")

	progressRow := container.NewBorder(nil, nil, a.progressChunk, a.progressLabel, a.progressBar)

	top := container.NewVBox(
		selectButton,
		a.geometryCheck,
		a.filterEntry,
	)
	bottom := container.NewVBox(
		loadButton,
		progressRow,
		a.statusLabel,
	)

	w.SetContent(container.NewBorder(top, bottom, nil, nil, a.table))
	w.Resize(fyne.NewSize(900, 600))
}

func (a *App) buildTable() *widget.Table {
	headers := []string{"", "File name", "Modified", "Directory", "Geometry type", "Extension"}
	widths := []float32{36, 200, 100, 280, 130, 80}

	t := widget.NewTable(
		func() (int, int) {
			return a.catalog.ViewLen() + 1, len(headers) // +1 header row
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			label := obj.(*widget.Label)
			label.TextStyle = fyne.TextStyle{}
			if id.Row == 0 {
				label.TextStyle = fyne.TextStyle{Bold: true}
				label.SetText(headers[id.Col])
				return
			}
			view := a.catalog.View()
			if id.Row-1 >= len(view) {
				label.SetText("")
				return
			}
			rec := view[id.Row-1]
			switch id.Col {
			case 0:
				switch a.catalog.State(rec.Path) {
				case types.Checked:
					label.SetText("☑")
				case types.PartiallyChecked:
					label.SetText("▣")
				default:
					label.SetText("☐")
				}
			case 1:
				label.SetText(rec.Name)
			case 2:
				label.SetText(rec.ModDate)
			case 3:
				label.SetText(rec.Dir)
			case 4:
				label.SetText(rec.GeometryType)
			case 5:
				label.SetText(rec.Extension)
			}
		},
	)
	for i, w := range widths {
		t.SetColumnWidth(i, w)
	}

	// A tap on the checkbox column toggles the row.
	t.OnSelected = func(id widget.TableCellID) {
		defer t.UnselectAll()
		if id.Row == 0 || id.Col != 0 {
			return
		}
		view := a.catalog.View()
		if id.Row-1 >= len(view) {
			return
		}
		a.catalog.Toggle(view[id.Row-1].Path)
		t.Refresh()
	}

	return t
}

// scanDirectory runs the two-pass scan and feeds the progress widgets
// after every file, like the original dialog did.
func (a *App) scanDirectory(root string) {
	records, err := a.engine.Scan(root, func(p types.Progress) {
		a.progressBar.SetValue(p.Percent / 100)
		a.progressChunk.FillColor = tierColors[p.Tier]
		a.progressChunk.Refresh()
		a.progressLabel.SetText(p.String())
	})
	if err != nil {
		log.LogWithFields(log.F("root", root), log.F("error", err)).Errorf("scan failed")
		dialog.ShowError(err, a.mainWindow)
		return
	}

	a.catalog.Replace(records)
	a.table.Refresh()
	a.statusLabel.SetText(fmt.Sprintf("%d files cataloged under %s", a.catalog.Len(), root))
}

func (a *App) loadSelected() {
	checked := a.catalog.Checked()
	if len(checked) == 0 {
		a.statusLabel.SetText("No rows checked")
		return
	}
	loaded, failed := a.loader.Load(checked)
	if len(failed) > 0 {
		a.statusLabel.SetText(fmt.Sprintf("Loaded %d layers, %d failed (see log)", loaded, len(failed)))
		return
	}
	a.statusLabel.SetText(fmt.Sprintf("Loaded %d layers", loaded))
}
