package measure

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/UcdVrLab/Visualisation-of-the-aqueducts-of-the-Greater-Iraklio-Area/pkg/geometry"
)

type stubMarker struct {
	role       Role
	pos        geometry.Vector3
	visible    bool
	placements int
}

func (m *stubMarker) SetPosition(p geometry.Vector3) { m.pos = p; m.placements++ }
func (m *stubMarker) Position() geometry.Vector3     { return m.pos }
func (m *stubMarker) SetVisible(v bool)              { m.visible = v }
func (m *stubMarker) Visible() bool                  { return m.visible }

type stubLine struct {
	a, b    *stubMarker
	visible bool
}

func (l *stubLine) SetVisible(v bool) { l.visible = v }
func (l *stubLine) Visible() bool     { return l.visible }

type stubSub struct {
	source  *stubSource
	handler func(PickEvent)
}

func (s *stubSub) Close() { s.source.remove(s) }

type stubSource struct {
	subs       []*stubSub
	subscribes int
}

func (s *stubSource) Subscribe(h func(PickEvent)) Subscription {
	s.subscribes++
	sub := &stubSub{source: s, handler: h}
	s.subs = append(s.subs, sub)
	return sub
}

func (s *stubSource) remove(sub *stubSub) {
	for i, cur := range s.subs {
		if cur == sub {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}

func (s *stubSource) emit(ev PickEvent) {
	for _, sub := range s.subs {
		sub.handler(ev)
	}
}

func (s *stubSource) active() int { return len(s.subs) }

type stubPanel struct{ visible bool }

func (p *stubPanel) Show() { p.visible = true }
func (p *stubPanel) Hide() { p.visible = false }

type stubInput struct {
	text    string
	hidden  bool
	cleared int
}

func (i *stubInput) Value() string { return i.text }
func (i *stubInput) Clear()        { i.text = ""; i.cleared++ }
func (i *stubInput) Show()         { i.hidden = false }
func (i *stubInput) Hide()         { i.hidden = true }

type stubDisplay struct {
	text   string
	status Status
}

func (d *stubDisplay) SetText(text string, status Status) {
	d.text = text
	d.status = status
}

type stubFactory struct {
	markers map[Role]*stubMarker
	lines   []*stubLine
}

func (f *stubFactory) NewMarker(role Role) Marker {
	m := &stubMarker{role: role}
	f.markers[role] = m
	return m
}

func (f *stubFactory) NewLine(a, b Marker) Line {
	l := &stubLine{a: a.(*stubMarker), b: b.(*stubMarker)}
	f.lines = append(f.lines, l)
	return l
}

type fixture struct {
	tool     *Tool
	source   *stubSource
	factory  *stubFactory
	input    *stubInput
	display  *stubDisplay
	overlay  *stubPanel
	activate *stubPanel
}

func newFixture() *fixture {
	f := &fixture{
		source:   &stubSource{},
		factory:  &stubFactory{markers: make(map[Role]*stubMarker)},
		input:    &stubInput{},
		display:  &stubDisplay{},
		overlay:  &stubPanel{},
		activate: &stubPanel{visible: true},
	}
	f.tool = NewTool(Deps{
		Picks:     f.source,
		Surface:   f.factory,
		Reference: f.input,
		Display:   f.display,
		Overlay:   f.overlay,
		Activate:  f.activate,
	})
	return f
}

func click(hit geometry.Vector3, button Button, modifier bool) PickEvent {
	pos := geometry.NewVector2(100, 100)
	return PickEvent{
		Press:    pos,
		Release:  pos,
		Held:     50 * time.Millisecond,
		Button:   button,
		Modifier: modifier,
		Hit:      &hit,
	}
}

// placePairs places the measurement pair (and optionally the reference pair)
// through the pick protocol.
func (f *fixture) placeMeasurement(a, b geometry.Vector3) {
	f.source.emit(click(a, ButtonPrimary, false))
	f.source.emit(click(b, ButtonSecondary, false))
}

func (f *fixture) placeReference(a, b geometry.Vector3) {
	f.source.emit(click(a, ButtonPrimary, true))
	f.source.emit(click(b, ButtonSecondary, true))
}

func TestNewToolStartsHidden(t *testing.T) {
	f := newFixture()

	if len(f.factory.markers) != 4 {
		t.Fatalf("expected 4 markers, got %d", len(f.factory.markers))
	}
	for role, m := range f.factory.markers {
		if m.visible {
			t.Errorf("marker %v should start hidden", role)
		}
	}
	if len(f.factory.lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(f.factory.lines))
	}
	for i, l := range f.factory.lines {
		if l.visible {
			t.Errorf("line %d should start hidden", i)
		}
	}
	if f.tool.Enabled() {
		t.Error("tool should start disabled")
	}
}

func TestEnableIsIdempotent(t *testing.T) {
	f := newFixture()

	f.tool.Enable()
	f.tool.Enable()

	if f.source.active() != 1 {
		t.Errorf("expected exactly one subscription, got %d", f.source.active())
	}
	if f.source.subscribes != 1 {
		t.Errorf("Subscribe called %d times, want 1", f.source.subscribes)
	}
	if f.activate.visible {
		t.Error("activate affordance should be hidden while enabled")
	}
	if !f.overlay.visible {
		t.Error("overlay should be visible while enabled")
	}
}

func TestDisableRemovesSubscription(t *testing.T) {
	f := newFixture()

	f.tool.Enable()
	f.tool.Enable()
	f.tool.Disable()

	if f.source.active() != 0 {
		t.Errorf("expected zero subscriptions after disable, got %d", f.source.active())
	}

	// Disable on a disabled tool is a no-op
	f.tool.Disable()
	if f.source.active() != 0 {
		t.Errorf("expected zero subscriptions, got %d", f.source.active())
	}
}

func TestPickAfterDisableIgnored(t *testing.T) {
	f := newFixture()

	f.tool.Enable()
	f.tool.Disable()
	f.source.emit(click(geometry.NewVector3(1, 2, 3), ButtonPrimary, false))

	if f.factory.markers[RoleMeasureA].placements != 0 {
		t.Error("pick after disable must not reach the tool")
	}
}

func TestRejectsSlowClick(t *testing.T) {
	f := newFixture()
	f.tool.Enable()

	ev := click(geometry.NewVector3(1, 0, 0), ButtonPrimary, false)
	ev.Held = 151 * time.Millisecond
	f.source.emit(ev)

	for role, m := range f.factory.markers {
		if m.placements != 0 || m.visible {
			t.Errorf("marker %v mutated by a slow click", role)
		}
	}
}

func TestRejectsDrag(t *testing.T) {
	f := newFixture()
	f.tool.Enable()

	ev := click(geometry.NewVector3(1, 0, 0), ButtonPrimary, false)
	ev.Press = geometry.NewVector2(10, 10)
	ev.Release = geometry.NewVector2(10, 11)
	f.source.emit(ev)

	for role, m := range f.factory.markers {
		if m.placements != 0 || m.visible {
			t.Errorf("marker %v mutated by a drag", role)
		}
	}
}

func TestRejectsMissedPick(t *testing.T) {
	f := newFixture()
	f.tool.Enable()

	ev := click(geometry.Vector3{}, ButtonPrimary, false)
	ev.Hit = nil
	f.source.emit(ev)

	for role, m := range f.factory.markers {
		if m.placements != 0 || m.visible {
			t.Errorf("marker %v mutated by a pick without a hit", role)
		}
	}
}

func TestUnknownButtonIgnored(t *testing.T) {
	f := newFixture()
	f.tool.Enable()

	f.source.emit(click(geometry.NewVector3(1, 0, 0), Button(4), false))

	for role, m := range f.factory.markers {
		if m.placements != 0 {
			t.Errorf("marker %v mutated by an unknown button", role)
		}
	}
}

func TestRoleSelection(t *testing.T) {
	f := newFixture()
	f.tool.Enable()

	f.source.emit(click(geometry.NewVector3(1, 0, 0), ButtonPrimary, false))
	f.source.emit(click(geometry.NewVector3(2, 0, 0), ButtonPrimary, true))
	f.source.emit(click(geometry.NewVector3(3, 0, 0), ButtonSecondary, false))
	f.source.emit(click(geometry.NewVector3(4, 0, 0), ButtonSecondary, true))

	got := map[Role]geometry.Vector3{}
	for role, m := range f.factory.markers {
		got[role] = m.pos
	}
	want := map[Role]geometry.Vector3{
		RoleMeasureA: geometry.NewVector3(1, 0, 0),
		RoleRefA:     geometry.NewVector3(2, 0, 0),
		RoleMeasureB: geometry.NewVector3(3, 0, 0),
		RoleRefB:     geometry.NewVector3(4, 0, 0),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("role selection mismatch (-want +got):\n%s", diff)
	}
}

func TestLineVisibleOnlyWhenBothEndpointsAre(t *testing.T) {
	f := newFixture()
	f.tool.Enable()

	f.source.emit(click(geometry.NewVector3(0, 0, 0), ButtonPrimary, false))
	measLine := f.factory.lines[1]
	if measLine.visible {
		t.Error("line visible with a single endpoint placed")
	}

	f.source.emit(click(geometry.NewVector3(1, 0, 0), ButtonSecondary, false))
	if !measLine.visible {
		t.Error("line should be visible once both endpoints are")
	}
}

func TestDisplayPrecedenceMeasurementFirst(t *testing.T) {
	f := newFixture()
	f.tool.Enable()

	// Full reference pair but only one measurement endpoint: the missing
	// measurement line wins regardless of reference state.
	f.placeReference(geometry.NewVector3(0, 0, 0), geometry.NewVector3(2, 0, 0))
	f.source.emit(click(geometry.NewVector3(0, 0, 0), ButtonPrimary, false))

	if f.display.text != MsgMeasureNotDrawn {
		t.Errorf("expected %q, got %q", MsgMeasureNotDrawn, f.display.text)
	}
	if f.display.status != StatusError {
		t.Errorf("expected error status, got %v", f.display.status)
	}
}

func TestReferenceNotDrawn(t *testing.T) {
	f := newFixture()
	f.tool.Enable()

	f.placeMeasurement(geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 0, 0))

	if f.display.text != MsgReferenceNotDrawn {
		t.Errorf("expected %q, got %q", MsgReferenceNotDrawn, f.display.text)
	}
}

func TestReferenceZeroLength(t *testing.T) {
	f := newFixture()
	f.tool.Enable()

	f.placeMeasurement(geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 0, 0))
	f.placeReference(geometry.NewVector3(5, 5, 5), geometry.NewVector3(5, 5, 5))

	if f.display.text != MsgReferenceZero {
		t.Errorf("expected %q, got %q", MsgReferenceZero, f.display.text)
	}
}

func TestReferenceLengthInvalid(t *testing.T) {
	f := newFixture()
	f.tool.Enable()
	f.input.text = "abc"

	f.placeMeasurement(geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 0, 0))
	f.placeReference(geometry.NewVector3(0, 0, 0), geometry.NewVector3(2, 0, 0))

	if f.display.text != MsgReferenceInvalid {
		t.Errorf("expected %q, got %q", MsgReferenceInvalid, f.display.text)
	}
}

func TestManualScaleMeasurement(t *testing.T) {
	f := newFixture()
	f.tool.Enable()
	f.input.text = "4 m"

	f.placeMeasurement(geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 0, 0))
	f.placeReference(geometry.NewVector3(0, 0, 0), geometry.NewVector3(2, 0, 0))

	// scale = 4m / 2 units = 2, distance = 1 unit * 2 = 2m
	if f.display.text != "2.000 m" {
		t.Errorf("expected %q, got %q", "2.000 m", f.display.text)
	}
	if f.display.status != StatusOK {
		t.Errorf("expected ok status, got %v", f.display.status)
	}
}

func TestFixedScaleBypassesReference(t *testing.T) {
	f := newFixture()
	f.tool.Enable()
	f.tool.SetScale(0.5)

	if !f.input.hidden {
		t.Error("reference input should be hidden under a fixed scale")
	}

	f.placeMeasurement(geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 0, 0))

	if f.display.text != "50.000 cm" {
		t.Errorf("expected %q, got %q", "50.000 cm", f.display.text)
	}
	if f.display.status != StatusOK {
		t.Errorf("expected ok status, got %v", f.display.status)
	}
}

func TestResetScaleRestoresManualEntry(t *testing.T) {
	f := newFixture()
	f.tool.Enable()
	f.tool.SetScale(0.5)
	f.placeMeasurement(geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 0, 0))

	f.tool.ResetScale()

	if f.input.hidden {
		t.Error("reference input should be shown again after ResetScale")
	}
	if f.display.text != MsgReferenceNotDrawn {
		t.Errorf("expected %q after reverting to manual scale, got %q", MsgReferenceNotDrawn, f.display.text)
	}
}

func TestDisableHidesEverythingKeepsPositions(t *testing.T) {
	f := newFixture()
	f.tool.Enable()
	f.placeMeasurement(geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 0, 0))

	f.tool.Disable()

	for role, m := range f.factory.markers {
		if m.visible {
			t.Errorf("marker %v should be hidden after disable", role)
		}
	}
	for i, l := range f.factory.lines {
		if l.visible {
			t.Errorf("line %d should be hidden after disable", i)
		}
	}
	if f.input.cleared == 0 {
		t.Error("reference input should be cleared on disable")
	}
	if f.overlay.visible {
		t.Error("overlay should be hidden after disable")
	}

	// Positions survive the disable/enable cycle, only visibility resets
	if f.factory.markers[RoleMeasureB].pos != geometry.NewVector3(1, 0, 0) {
		t.Error("marker position should survive disable")
	}
}

func TestShowHideButton(t *testing.T) {
	f := newFixture()

	f.tool.HideButton()
	if f.activate.visible {
		t.Error("HideButton should hide the affordance")
	}
	f.tool.ShowButton()
	if !f.activate.visible {
		t.Error("ShowButton should show the affordance")
	}
}
