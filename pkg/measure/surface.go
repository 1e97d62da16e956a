package measure

import (
	"time"

	"github.com/UcdVrLab/Visualisation-of-the-aqueducts-of-the-Greater-Iraklio-Area/pkg/geometry"
)

// Button identifies the pointer button that finished a pick.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
)

// Role names the four marker slots owned by the tool.
type Role int

const (
	RoleRefA Role = iota
	RoleRefB
	RoleMeasureA
	RoleMeasureB
)

func (r Role) String() string {
	switch r {
	case RoleRefA:
		return "refA"
	case RoleRefB:
		return "refB"
	case RoleMeasureA:
		return "measA"
	case RoleMeasureB:
		return "measB"
	}
	return "unknown"
}

// PickEvent describes one press/release cycle on the rendered surface.
// Hit is nil when the click did not land on the mesh.
type PickEvent struct {
	Press    geometry.Vector2
	Release  geometry.Vector2
	Held     time.Duration
	Button   Button
	Modifier bool
	Hit      *geometry.Vector3
}

// Subscription is a held handle for an active pick-event registration.
// Close removes the handler synchronously; no events are delivered after
// Close returns.
type Subscription interface {
	Close()
}

// PickSource delivers pick events from the rendered surface.
type PickSource interface {
	Subscribe(handler func(PickEvent)) Subscription
}

// Marker is the visual endpoint of a reference or measurement line.
// Markers are mutated only by the tool; the rendering layer reads them.
type Marker interface {
	SetPosition(geometry.Vector3)
	Position() geometry.Vector3
	SetVisible(bool)
	Visible() bool
}

// Line is the visual segment connecting two markers.
type Line interface {
	SetVisible(bool)
	Visible() bool
}

// Factory creates the marker and line primitives the tool owns.
type Factory interface {
	NewMarker(role Role) Marker
	NewLine(a, b Marker) Line
}

// ReferenceInput is the text field holding the reference length string.
type ReferenceInput interface {
	Value() string
	Clear()
	Show()
	Hide()
}

// Status classifies the display text.
type Status int

const (
	StatusOK Status = iota
	StatusError
)

// Display receives the measured distance or a diagnostic message.
type Display interface {
	SetText(text string, status Status)
}

// Panel is a visibility surface such as the measurement overlay or the
// activate affordance.
type Panel interface {
	Show()
	Hide()
}
