// Package measure implements the point-to-point measurement tool: two pairs
// of user-placed markers (a reference pair of known real-world length and a
// measurement pair) and the state machine that turns them into a
// human-readable distance.
//
// The tool knows nothing about the rendering engine. Everything it touches
// on screen comes in through the Deps struct, so the same tool drives both
// the raylib viewer and the fyne front-end.
package measure

import (
	"math"
	"time"

	"github.com/UcdVrLab/Visualisation-of-the-aqueducts-of-the-Greater-Iraklio-Area/pkg/units"
)

// ClickThreshold is the longest press/release interval still counted as a
// click. Longer presses and drags are camera interactions, not placements.
const ClickThreshold = 150 * time.Millisecond

// Diagnostic display strings, shown with StatusError
const (
	MsgMeasureNotDrawn   = "Measurement line is not drawn"
	MsgReferenceNotDrawn = "Reference line is not drawn"
	MsgReferenceZero     = "Reference line can't have a length of 0"
	MsgReferenceInvalid  = "Reference line length is invalid"
)

// Deps are the external surfaces the tool collaborates with.
type Deps struct {
	Picks     PickSource
	Surface   Factory
	Reference ReferenceInput
	Display   Display
	Overlay   Panel
	Activate  Panel
}

// Tool owns the four markers, the two lines and the scale state. All
// methods must be called from the thread servicing the UI event loop.
type Tool struct {
	deps Deps

	refA, refB   Marker
	measA, measB Marker
	refLine      Line
	measLine     Line

	sub   Subscription
	scale Scale
}

// NewTool creates the tool in the disabled state with all markers hidden
// and their positions unset.
func NewTool(deps Deps) *Tool {
	t := &Tool{deps: deps, scale: ManualScale()}

	t.refA = deps.Surface.NewMarker(RoleRefA)
	t.refB = deps.Surface.NewMarker(RoleRefB)
	t.measA = deps.Surface.NewMarker(RoleMeasureA)
	t.measB = deps.Surface.NewMarker(RoleMeasureB)
	for _, m := range []Marker{t.refA, t.refB, t.measA, t.measB} {
		m.SetVisible(false)
	}

	t.refLine = deps.Surface.NewLine(t.refA, t.refB)
	t.measLine = deps.Surface.NewLine(t.measA, t.measB)
	t.refLine.SetVisible(false)
	t.measLine.SetVisible(false)

	return t
}

// Enabled reports whether the tool currently holds a pick subscription.
func (t *Tool) Enabled() bool {
	return t.sub != nil
}

// Enable activates the tool: hides the activate affordance, shows the
// overlay and subscribes to pick events. Calling Enable on an enabled tool
// is a no-op; it never creates a second subscription. Previously placed
// points are kept.
func (t *Tool) Enable() {
	if t.sub != nil {
		return
	}
	t.deps.Activate.Hide()
	t.deps.Overlay.Show()
	t.sub = t.deps.Picks.Subscribe(t.handlePick)
}

// Disable removes the pick subscription, clears the reference length text,
// hides all markers, lines and the overlay. The subscription is gone before
// Disable returns, so no pick event reaches the tool afterwards. Safe to
// call when already disabled.
func (t *Tool) Disable() {
	if t.sub != nil {
		t.sub.Close()
		t.sub = nil
	}

	t.deps.Reference.Clear()
	for _, m := range []Marker{t.refA, t.refB, t.measA, t.measB} {
		m.SetVisible(false)
	}
	t.refLine.SetVisible(false)
	t.measLine.SetVisible(false)
	t.deps.Overlay.Hide()
}

// SetScale installs a fixed real-world-meters-per-model-unit factor and
// hides the manual reference entry.
func (t *Tool) SetScale(factor float64) {
	t.scale = FixedScale(factor)
	t.deps.Reference.Hide()
	t.Refresh()
}

// ResetScale reverts to deriving the factor from the reference line and
// shows the manual reference entry again.
func (t *Tool) ResetScale() {
	t.scale = ManualScale()
	t.deps.Reference.Show()
	t.Refresh()
}

// Scale returns the current conversion basis.
func (t *Tool) Scale() Scale {
	return t.scale
}

// ShowButton shows the activate affordance.
func (t *Tool) ShowButton() {
	t.deps.Activate.Show()
}

// HideButton hides the activate affordance.
func (t *Tool) HideButton() {
	t.deps.Activate.Hide()
}

// handlePick applies the placement protocol to one pick event.
func (t *Tool) handlePick(ev PickEvent) {
	if ev.Held > ClickThreshold || ev.Press != ev.Release || ev.Hit == nil {
		return
	}

	var target, partner Marker
	var line Line
	switch {
	case ev.Button == ButtonPrimary && !ev.Modifier:
		target, partner, line = t.measA, t.measB, t.measLine
	case ev.Button == ButtonPrimary && ev.Modifier:
		target, partner, line = t.refA, t.refB, t.refLine
	case ev.Button == ButtonSecondary && !ev.Modifier:
		target, partner, line = t.measB, t.measA, t.measLine
	case ev.Button == ButtonSecondary && ev.Modifier:
		target, partner, line = t.refB, t.refA, t.refLine
	default:
		return
	}

	target.SetPosition(*ev.Hit)
	target.SetVisible(true)
	if partner.Visible() {
		line.SetVisible(true)
	}

	t.Refresh()
}

// Refresh recomputes the display text. The UI layer also calls this
// whenever the reference length text changes.
func (t *Tool) Refresh() {
	t.deps.Display.SetText(t.evaluate())
}

// evaluate resolves the current display text and status. The reference
// length string is re-parsed on every call, never cached.
func (t *Tool) evaluate() (string, Status) {
	if !t.measA.Visible() || !t.measB.Visible() {
		return MsgMeasureNotDrawn, StatusError
	}
	span := t.measA.Position().Distance(t.measB.Position())

	if factor, ok := t.scale.Fixed(); ok {
		return units.FormatMeters(span*factor, units.DefaultDecimals), StatusOK
	}

	if !t.refA.Visible() || !t.refB.Visible() {
		return MsgReferenceNotDrawn, StatusError
	}
	refSpan := t.refA.Position().Distance(t.refB.Position())
	if refSpan == 0 {
		return MsgReferenceZero, StatusError
	}

	refMeters := units.ParseLength(t.deps.Reference.Value())
	if math.IsNaN(refMeters) {
		return MsgReferenceInvalid, StatusError
	}

	return units.FormatMeters(span*(refMeters/refSpan), units.DefaultDecimals), StatusOK
}
