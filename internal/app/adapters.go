package app

import (
	"github.com/UcdVrLab/Visualisation-of-the-aqueducts-of-the-Greater-Iraklio-Area/pkg/measure"
)

// pickBus delivers pick events built by the input code to the measurement
// tool. Everything runs on the main thread, so a plain map is enough.
type pickBus struct {
	nextID   int
	handlers map[int]func(measure.PickEvent)
}

func newPickBus() *pickBus {
	return &pickBus{handlers: make(map[int]func(measure.PickEvent))}
}

func (b *pickBus) Subscribe(handler func(measure.PickEvent)) measure.Subscription {
	id := b.nextID
	b.nextID++
	b.handlers[id] = handler
	return &pickSub{bus: b, id: id}
}

func (b *pickBus) publish(ev measure.PickEvent) {
	for _, handler := range b.handlers {
		handler(ev)
	}
}

// active reports whether anyone is listening, so the input code can skip
// ray casting entirely while the tool is off.
func (b *pickBus) active() bool {
	return len(b.handlers) > 0
}

type pickSub struct {
	bus *pickBus
	id  int
}

func (s *pickSub) Close() {
	delete(s.bus.handlers, s.id)
}

// referenceField exposes the overlay text box as a measure.ReferenceInput
type referenceField struct {
	ui *MeasureUI
}

func (f *referenceField) Value() string { return f.ui.refText }

func (f *referenceField) Clear() {
	f.ui.refText = ""
	f.ui.refFocused = false
}

func (f *referenceField) Show() { f.ui.refVisible = true }

func (f *referenceField) Hide() {
	f.ui.refVisible = false
	f.ui.refFocused = false
}

// resultDisplay exposes the overlay result line as a measure.Display
type resultDisplay struct {
	ui *MeasureUI
}

func (d *resultDisplay) SetText(text string, status measure.Status) {
	d.ui.resultText = text
	d.ui.resultStatus = status
}

// overlayPanel exposes the measurement overlay as a measure.Panel
type overlayPanel struct {
	ui *MeasureUI
}

func (p *overlayPanel) Show() { p.ui.overlayVisible = true }

func (p *overlayPanel) Hide() { p.ui.overlayVisible = false }

// activateButton exposes the Measure button as a measure.Panel
type activateButton struct {
	ui *MeasureUI
}

func (b *activateButton) Show() { b.ui.buttonVisible = true }

func (b *activateButton) Hide() { b.ui.buttonVisible = false }

// newMeasureUI wires the tool to the overlay widgets
func newMeasureUI() *MeasureUI {
	ui := &MeasureUI{
		bus:        newPickBus(),
		shapes:     measure.NewShapes(),
		refVisible: true,
	}
	ui.tool = measure.NewTool(measure.Deps{
		Picks:     ui.bus,
		Surface:   ui.shapes,
		Reference: &referenceField{ui: ui},
		Display:   &resultDisplay{ui: ui},
		Overlay:   &overlayPanel{ui: ui},
		Activate:  &activateButton{ui: ui},
	})
	return ui
}
