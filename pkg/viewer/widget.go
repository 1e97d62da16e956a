package viewer

import (
	"image"
	"image/color"
	"math"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/UcdVrLab/Visualisation-of-the-aqueducts-of-the-Greater-Iraklio-Area/pkg/geometry"
	"github.com/UcdVrLab/Visualisation-of-the-aqueducts-of-the-Greater-Iraklio-Area/pkg/measure"
	"github.com/UcdVrLab/Visualisation-of-the-aqueducts-of-the-Greater-Iraklio-Area/pkg/mesh"
)

// pickTolerance is the largest screen distance between a click and a
// projected vertex that still counts as a hit, in pixels.
const pickTolerance = 20.0

var (
	measureFill   = color.RGBA{80, 220, 100, 255}
	referenceFill = color.RGBA{255, 180, 60, 255}
)

type widgetPress struct {
	active   bool
	pos      fyne.Position
	start    time.Time
	modifier bool
}

// ScanWidget renders a scan model and emits pick events for the
// measurement tool. It owns the shared marker store so the render pass can
// draw whatever the tool placed.
type ScanWidget struct {
	widget.BaseWidget

	model  *mesh.Model
	camera *Camera
	Shapes *measure.Shapes

	showFilled bool

	lines        []*canvas.Line
	segmentLines []*canvas.Line
	markerDots   []*canvas.Circle
	raster       *canvas.Raster

	width, height float64

	nextID   int
	handlers map[int]func(measure.PickEvent)

	presses    [2]widgetPress
	isDragging bool
	dragStart  *fyne.Position
}

// NewScanWidget creates a widget displaying the given model
func NewScanWidget(model *mesh.Model) *ScanWidget {
	w := &ScanWidget{
		model:    model,
		camera:   NewCamera(model.BoundingBox()),
		Shapes:   measure.NewShapes(),
		handlers: make(map[int]func(measure.PickEvent)),
	}
	w.raster = canvas.NewRaster(w.renderFilled)
	w.ExtendBaseWidget(w)
	return w
}

// SetModel swaps the displayed model and resets the camera
func (w *ScanWidget) SetModel(model *mesh.Model) {
	w.model = model
	w.camera = NewCamera(model.BoundingBox())
	w.Render(w.width, w.height)
}

// SetFilledMode toggles the software-rasterized surface under the wireframe
func (w *ScanWidget) SetFilledMode(filled bool) {
	w.showFilled = filled
	w.Render(w.width, w.height)
}

// Subscribe registers a pick handler; part of measure.PickSource
func (w *ScanWidget) Subscribe(handler func(measure.PickEvent)) measure.Subscription {
	id := w.nextID
	w.nextID++
	w.handlers[id] = handler
	return &widgetSub{widget: w, id: id}
}

type widgetSub struct {
	widget *ScanWidget
	id     int
}

func (s *widgetSub) Close() {
	delete(s.widget.handlers, s.id)
}

// CreateRenderer creates the renderer for the widget
func (w *ScanWidget) CreateRenderer() fyne.WidgetRenderer {
	return &scanWidgetRenderer{widget: w}
}

// Render reprojects the wireframe and markers for the given size
func (w *ScanWidget) Render(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	w.width = width
	w.height = height

	w.lines = w.lines[:0]

	for _, triangle := range w.model.Triangles {
		vertices := []geometry.Vector3{triangle.V1, triangle.V2, triangle.V3}

		for i := 0; i < 3; i++ {
			v1 := vertices[i]
			v2 := vertices[(i+1)%3]

			x1, y1, z1 := w.camera.Project(v1, width, height)
			x2, y2, z2 := w.camera.Project(v2, width, height)

			// Simple depth-based shade
			avgZ := (z1 + z2) / 2
			brightness := uint8(math.Max(50, math.Min(255, 100+avgZ*5)))

			line := canvas.NewLine(color.RGBA{brightness, brightness, brightness, 255})
			line.StrokeWidth = 1
			line.Position1 = fyne.NewPos(float32(x1), float32(y1))
			line.Position2 = fyne.NewPos(float32(x2), float32(y2))
			w.lines = append(w.lines, line)
		}
	}

	w.updateMarkers()
	w.Refresh()
}

func roleFill(role measure.Role) color.Color {
	if role == measure.RoleRefA || role == measure.RoleRefB {
		return referenceFill
	}
	return measureFill
}

// updateMarkers rebuilds the canvas objects for the tool's points and
// segments from the shared shape store.
func (w *ScanWidget) updateMarkers() {
	w.segmentLines = w.segmentLines[:0]
	w.markerDots = w.markerDots[:0]

	for _, segment := range w.Shapes.Segments {
		if !segment.Drawable() {
			continue
		}
		x1, y1, _ := w.camera.Project(segment.A.Position(), w.width, w.height)
		x2, y2, _ := w.camera.Project(segment.B.Position(), w.width, w.height)

		fill := measureFill
		if point, ok := segment.A.(*measure.Point); ok && (point.Role() == measure.RoleRefA || point.Role() == measure.RoleRefB) {
			fill = referenceFill
		}

		line := canvas.NewLine(fill)
		line.StrokeWidth = 2
		line.Position1 = fyne.NewPos(float32(x1), float32(y1))
		line.Position2 = fyne.NewPos(float32(x2), float32(y2))
		w.segmentLines = append(w.segmentLines, line)
	}

	for _, point := range w.Shapes.Points {
		if !point.Visible() {
			continue
		}
		x, y, _ := w.camera.Project(point.Position(), w.width, w.height)

		marker := canvas.NewCircle(roleFill(point.Role()))
		marker.StrokeColor = color.White
		marker.StrokeWidth = 2
		size := float32(10)
		marker.Resize(fyne.NewSize(size, size))
		marker.Move(fyne.NewPos(float32(x)-size/2, float32(y)-size/2))
		w.markerDots = append(w.markerDots, marker)
	}
}

// renderFilled rasterizes the shaded surface with a depth buffer
func (w *ScanWidget) renderFilled(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if !w.showFilled || width == 0 || height == 0 {
		return img
	}

	zbuffer := make([]float64, width*height)
	for i := range zbuffer {
		zbuffer[i] = math.MaxFloat64
	}

	fw := float64(width)
	fh := float64(height)
	lightDir := geometry.NewVector3(-0.5, -1.0, -0.5).Normalize()

	for _, triangle := range w.model.Triangles {
		normal := triangle.CalculateNormal()
		intensity := math.Max(0.3, -normal.Dot(lightDir))
		col := color.RGBA{
			R: uint8(140 * intensity),
			G: uint8(130 * intensity),
			B: uint8(110 * intensity),
			A: 255,
		}

		x1, y1, z1 := w.camera.Project(triangle.V1, fw, fh)
		x2, y2, z2 := w.camera.Project(triangle.V2, fw, fh)
		x3, y3, z3 := w.camera.Project(triangle.V3, fw, fh)

		fillTriangleDepth(img, zbuffer, x1, y1, z1, x2, y2, z2, x3, y3, z3, col)
	}

	return img
}

// MouseDown starts a press/release cycle; part of desktop.Mouseable
func (w *ScanWidget) MouseDown(ev *desktop.MouseEvent) {
	button, ok := pickButton(ev.Button)
	if !ok {
		return
	}
	w.presses[button] = widgetPress{
		active:   true,
		pos:      ev.Position,
		start:    time.Now(),
		modifier: ev.Modifier&fyne.KeyModifierControl != 0,
	}
}

// MouseUp completes the cycle and publishes the pick event
func (w *ScanWidget) MouseUp(ev *desktop.MouseEvent) {
	button, ok := pickButton(ev.Button)
	if !ok {
		return
	}
	press := &w.presses[button]
	if !press.active {
		return
	}
	press.active = false

	if len(w.handlers) == 0 {
		return
	}

	held := time.Since(press.start)

	var hit *geometry.Vector3
	if held <= measure.ClickThreshold && press.pos == ev.Position {
		hit = w.vertexAt(float64(ev.Position.X), float64(ev.Position.Y))
	}

	event := measure.PickEvent{
		Press:    geometry.NewVector2(float64(press.pos.X), float64(press.pos.Y)),
		Release:  geometry.NewVector2(float64(ev.Position.X), float64(ev.Position.Y)),
		Held:     held,
		Button:   button,
		Modifier: press.modifier,
		Hit:      hit,
	}
	for _, handler := range w.handlers {
		handler(event)
	}

	w.RefreshMarkers()
}

// RefreshMarkers redraws the points and segments after the tool changed
// them outside of a pick event, e.g. when the tool is disabled.
func (w *ScanWidget) RefreshMarkers() {
	w.updateMarkers()
	w.Refresh()
}

func pickButton(b desktop.MouseButton) (measure.Button, bool) {
	switch b {
	case desktop.MouseButtonPrimary:
		return measure.ButtonPrimary, true
	case desktop.MouseButtonSecondary:
		return measure.ButtonSecondary, true
	}
	return 0, false
}

// vertexAt finds the model vertex nearest to screen coordinates, or nil
// when nothing is within the pick tolerance.
func (w *ScanWidget) vertexAt(screenX, screenY float64) *geometry.Vector3 {
	var nearest geometry.Vector3
	minDist := math.MaxFloat64

	seen := make(map[geometry.Vector3]bool)
	for _, triangle := range w.model.Triangles {
		for _, vertex := range []geometry.Vector3{triangle.V1, triangle.V2, triangle.V3} {
			if seen[vertex] {
				continue
			}
			seen[vertex] = true

			x, y, z := w.camera.Project(vertex, w.width, w.height)
			if z <= 0.01 {
				continue // Behind the camera
			}
			dist := math.Hypot(x-screenX, y-screenY)
			if dist < minDist {
				minDist = dist
				nearest = vertex
			}
		}
	}

	if minDist > pickTolerance {
		return nil
	}
	return &nearest
}

// Dragged rotates the camera; part of fyne.Draggable
func (w *ScanWidget) Dragged(event *fyne.DragEvent) {
	if w.dragStart != nil {
		deltaX := event.Position.X - w.dragStart.X
		deltaY := event.Position.Y - w.dragStart.Y

		w.camera.Rotate(float64(-deltaY)*0.01, float64(deltaX)*0.01)
		w.Render(w.width, w.height)
	}
	pos := event.Position
	w.dragStart = &pos
	w.isDragging = true
}

// DragEnd handles the end of a drag event
func (w *ScanWidget) DragEnd() {
	w.dragStart = nil
	w.isDragging = false
}

// Scrolled zooms the camera; part of fyne.Scrollable
func (w *ScanWidget) Scrolled(event *fyne.ScrollEvent) {
	delta := -float64(event.Scrolled.DY) * 0.001
	w.camera.Zoom(delta)
	w.Render(w.width, w.height)
}

// scanWidgetRenderer implements fyne.WidgetRenderer
type scanWidgetRenderer struct {
	widget  *ScanWidget
	objects []fyne.CanvasObject
}

func (r *scanWidgetRenderer) Layout(size fyne.Size) {
	r.widget.raster.Resize(size)
	r.widget.Render(float64(size.Width), float64(size.Height))
}

func (r *scanWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *scanWidgetRenderer) Refresh() {
	w := r.widget
	r.objects = r.objects[:0]

	if w.showFilled {
		r.objects = append(r.objects, w.raster)
	}
	for _, line := range w.lines {
		r.objects = append(r.objects, line)
	}
	for _, line := range w.segmentLines {
		r.objects = append(r.objects, line)
	}
	for _, marker := range w.markerDots {
		r.objects = append(r.objects, marker)
	}

	canvas.Refresh(w)
}

func (r *scanWidgetRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *scanWidgetRenderer) Destroy() {}
