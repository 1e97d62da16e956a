package main

import (
	"fmt"
	"image/color"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/UcdVrLab/Visualisation-of-the-aqueducts-of-the-Greater-Iraklio-Area/pkg/analysis"
	"github.com/UcdVrLab/Visualisation-of-the-aqueducts-of-the-Greater-Iraklio-Area/pkg/measure"
	"github.com/UcdVrLab/Visualisation-of-the-aqueducts-of-the-Greater-Iraklio-Area/pkg/mesh"
	"github.com/UcdVrLab/Visualisation-of-the-aqueducts-of-the-Greater-Iraklio-Area/pkg/viewer"
)

var (
	okColor    = color.RGBA{80, 220, 100, 255}
	errorColor = color.RGBA{255, 100, 100, 255}
)

type App struct {
	window fyne.Window
	model  *mesh.Model
	scan   *viewer.ScanWidget
	tool   *measure.Tool

	refEntry   *widget.Entry
	refBox     *fyne.Container
	resultText *canvas.Text
	overlayBox *fyne.Container
	measureBtn *widget.Button
	modelInfo  *widget.Label
}

func main() {
	a := app.New()
	w := a.NewWindow("Aqueduct Viewer")

	appInstance := &App{window: w}

	if len(os.Args) > 1 {
		appInstance.loadFile(os.Args[1])
	} else {
		appInstance.showWelcomeScreen()
	}

	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()
}

func (a *App) showWelcomeScreen() {
	welcomeLabel := widget.NewLabel("Aqueduct Viewer")
	welcomeLabel.TextStyle = fyne.TextStyle{Bold: true}

	instructionLabel := widget.NewLabel("Click 'Open Scan' to load a 3D scan (.stl, .glb, .gltf)")

	openButton := widget.NewButton("Open Scan", func() {
		a.showFileDialog()
	})

	content := container.NewVBox(
		layout.NewSpacer(),
		container.NewCenter(welcomeLabel),
		container.NewCenter(instructionLabel),
		layout.NewSpacer(),
		container.NewCenter(openButton),
		layout.NewSpacer(),
	)

	a.window.SetContent(content)
}

func (a *App) showFileDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		a.loadFile(reader.URI().Path())
	}, a.window)
}

func (a *App) loadFile(filename string) {
	model, err := mesh.Load(filename)
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to load scan: %w", err), a.window)
		return
	}

	a.model = model

	// Reopening: swap the model in place, drop the measurement session
	if a.scan != nil {
		a.scan.SetModel(model)
		a.tool.Disable()
		a.tool.ShowButton()
		a.modelInfo.SetText(describeModel(model))
		return
	}

	a.setupMainUI()
}

func describeModel(model *mesh.Model) string {
	stats := analysis.Describe(model)
	return fmt.Sprintf(
		"Scan: %s\nTriangles: %d\nSurface Area: %.2f\n\nDimensions:\n  X: %.2f\n  Y: %.2f\n  Z: %.2f",
		model.Name,
		stats.TriangleCount,
		stats.SurfaceArea,
		stats.Dimensions.X,
		stats.Dimensions.Y,
		stats.Dimensions.Z,
	)
}

// entryInput adapts the reference entry to measure.ReferenceInput. The box
// around the entry is what gets hidden, so the label disappears too.
type entryInput struct {
	entry *widget.Entry
	box   *fyne.Container
}

func (e *entryInput) Value() string { return e.entry.Text }
func (e *entryInput) Clear()        { e.entry.SetText("") }
func (e *entryInput) Show()         { e.box.Show() }
func (e *entryInput) Hide()         { e.box.Hide() }

// textDisplay adapts a colored canvas text to measure.Display
type textDisplay struct {
	text *canvas.Text
}

func (d *textDisplay) SetText(text string, status measure.Status) {
	d.text.Text = text
	if status == measure.StatusError {
		d.text.Color = errorColor
	} else {
		d.text.Color = okColor
	}
	d.text.Refresh()
}

// objectPanel adapts any canvas object to measure.Panel
type objectPanel struct {
	obj fyne.CanvasObject
}

func (p *objectPanel) Show() { p.obj.Show() }
func (p *objectPanel) Hide() { p.obj.Hide() }

func (a *App) setupMainUI() {
	a.scan = viewer.NewScanWidget(a.model)

	a.refEntry = widget.NewEntry()
	a.refEntry.SetPlaceHolder(`e.g. 75 cm`)
	a.refBox = container.NewVBox(
		widget.NewLabel("Reference length:"),
		a.refEntry,
	)

	a.resultText = canvas.NewText("", okColor)
	a.resultText.TextSize = 16

	closeButton := widget.NewButton("Close", func() {
		a.tool.Disable()
		a.tool.ShowButton()
		a.scan.RefreshMarkers()
	})

	instructions := widget.NewLabel(
		"• Click: first measurement point\n" +
			"• Right Click: second measurement point\n" +
			"• Ctrl+Click: reference points\n" +
			"• Drag to rotate, scroll to zoom",
	)
	instructions.Wrapping = fyne.TextWrapWord

	a.overlayBox = container.NewVBox(
		widget.NewLabel("Measure"),
		widget.NewSeparator(),
		a.refBox,
		a.resultText,
		widget.NewSeparator(),
		instructions,
		closeButton,
	)

	a.measureBtn = widget.NewButton("Measure", func() {
		a.tool.Enable()
		a.tool.Refresh()
	})

	a.tool = measure.NewTool(measure.Deps{
		Picks:     a.scan,
		Surface:   a.scan.Shapes,
		Reference: &entryInput{entry: a.refEntry, box: a.refBox},
		Display:   &textDisplay{text: a.resultText},
		Overlay:   &objectPanel{obj: a.overlayBox},
		Activate:  &objectPanel{obj: a.measureBtn},
	})
	a.tool.ShowButton()

	a.refEntry.OnChanged = func(string) {
		a.tool.Refresh()
	}

	a.modelInfo = widget.NewLabel(describeModel(a.model))

	openButton := widget.NewButton("Open Scan", func() {
		a.showFileDialog()
	})

	filledModeCheck := widget.NewCheck("Show Filled", func(checked bool) {
		a.scan.SetFilledMode(checked)
	})
	filledModeCheck.SetChecked(false)

	infoPanel := container.NewVBox(
		widget.NewLabel("Scan Information:"),
		widget.NewSeparator(),
		a.modelInfo,
		widget.NewSeparator(),
		a.measureBtn,
		a.overlayBox,
		widget.NewSeparator(),
		widget.NewLabel("Display Options:"),
		filledModeCheck,
		widget.NewSeparator(),
		openButton,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(300, 0))

	content := container.NewBorder(
		nil,        // top
		nil,        // bottom
		nil,        // left
		infoScroll, // right
		a.scan,     // center
	)

	a.window.SetContent(content)
}
